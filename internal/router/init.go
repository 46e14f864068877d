package router

import (
	"github.com/realtexai/realtex-api/internal/application"
	"github.com/realtexai/realtex-api/internal/container"
	pginfra "github.com/realtexai/realtex-api/internal/infrastructure/postgres"
	handlers "github.com/realtexai/realtex-api/internal/interface/http"
	"github.com/realtexai/realtex-api/internal/router/modules"
)

// InitModules builds repositories, services and handlers from the container
// singletons and registers all feature modules. Called once at startup.
func InitModules(r *Registry) {
	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	areaRepo := pginfra.NewAreaRepository(container.GetPGPool())
	propertyRepo := pginfra.NewPropertyRepository(container.GetPGPool())
	predictionRepo := pginfra.NewPredictionRepository(container.GetPGPool())

	userSvc := application.NewUserService(
		userRepo,
		container.GetJWT(),
		container.GetRabbitPub(),
		container.GetLogger(),
		container.GetConfig(),
	)
	valuationSvc := application.NewValuationService(
		userRepo,
		areaRepo,
		container.GetRedis(),
		container.GetLogger(),
	)
	propertySvc := application.NewPropertyService(
		userRepo,
		propertyRepo,
		predictionRepo,
		container.GetLogger(),
	)

	authHandler := handlers.NewAuthHandler(userSvc, container.GetLogger())
	adminHandler := handlers.NewAdminHandler(userSvc, container.GetLogger())
	predictionHandler := handlers.NewPredictionHandler(valuationSvc, container.GetLogger())
	propertyHandler := handlers.NewPropertyHandler(propertySvc, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewAdminModule(adminHandler, container.GetJWT(), userRepo))
	r.Add(modules.NewPredictionModule(predictionHandler, container.GetJWT()))
	r.Add(modules.NewPropertyModule(propertyHandler, container.GetJWT()))
}
