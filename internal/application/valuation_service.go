package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/realtexai/realtex-api/internal/domain/entity"
	"github.com/realtexai/realtex-api/internal/domain/repository"
	"github.com/realtexai/realtex-api/internal/valuation"
	"github.com/realtexai/realtex-api/pkg/helpers"
)

const areaCacheTTL = 12 * time.Hour

// ValuationService wraps the pure valuation rules with the per-request
// identity check and the area cache. Postgres is the source of truth for
// area rows; redis only shortcuts repeat lookups.
type ValuationService struct {
	Users  repository.UserRepository
	Areas  repository.AreaRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewValuationService(users repository.UserRepository, areas repository.AreaRepository, rdb *redis.Client, logger *logrus.Logger) *ValuationService {
	return &ValuationService{Users: users, Areas: areas, Redis: rdb, Logger: logger}
}

// requireActive re-loads the caller on every request so a deactivated account
// loses access immediately, not at token expiry.
func (s *ValuationService) requireActive(userID string) error {
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return ErrUserNotFound
	}
	if !u.IsActive {
		return ErrInactiveAccount
	}
	return nil
}

func (s *ValuationService) PredictPrice(ctx context.Context, userID string, in valuation.PropertyInput) (float64, error) {
	if err := s.requireActive(userID); err != nil {
		return 0, err
	}
	return valuation.Price(in), nil
}

func (s *ValuationService) PredictRent(ctx context.Context, userID string, in valuation.PropertyInput) (valuation.RentEstimate, error) {
	if err := s.requireActive(userID); err != nil {
		return valuation.RentEstimate{}, err
	}
	return valuation.Rent(in), nil
}

func (s *ValuationService) PredictCapitalGrowth(ctx context.Context, userID, location, propertyType string) (valuation.GrowthEstimate, error) {
	if err := s.requireActive(userID); err != nil {
		return valuation.GrowthEstimate{}, err
	}
	return valuation.CapitalGrowth(location, propertyType), nil
}

func areaCacheKey(areaName, country string) string {
	return "area:score:" + country + ":" + areaName
}

// GetAreaScore returns the market statistics for (areaName, country). On a
// cache miss the values are derived from the rule table and persisted; the
// stored row is the permanent answer for that key thereafter.
func (s *ValuationService) GetAreaScore(ctx context.Context, userID, areaName, country string) (*entity.Area, error) {
	if err := s.requireActive(userID); err != nil {
		return nil, err
	}

	key := areaCacheKey(areaName, country)
	if s.Redis != nil {
		var cached entity.Area
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	profile := valuation.DeriveAreaProfile(areaName)
	area, err := s.Areas.GetOrCreate(&entity.Area{
		AreaName:        areaName,
		Country:         country,
		AvgPrice:        profile.AvgPrice,
		AvgRent:         profile.AvgRent,
		RentalYield:     profile.RentalYield,
		InvestmentScore: profile.InvestmentScore,
	})
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, area, areaCacheTTL); err != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("area cache write failed")
		}
	}
	return area, nil
}
