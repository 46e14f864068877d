package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/realtexai/realtex-api/internal/domain/entity"
	"github.com/realtexai/realtex-api/internal/domain/repository"
	"github.com/realtexai/realtex-api/internal/valuation"
)

// PropertyService manages the property catalog and persisted valuation
// snapshots. The interactive prediction endpoints compute on the fly; this
// surface exists for properties worth keeping a valuation history for.
type PropertyService struct {
	Users  repository.UserRepository
	Props  repository.PropertyRepository
	Preds  repository.PredictionRepository
	Logger *logrus.Logger
}

func NewPropertyService(users repository.UserRepository, props repository.PropertyRepository, preds repository.PredictionRepository, logger *logrus.Logger) *PropertyService {
	return &PropertyService{Users: users, Props: props, Preds: preds, Logger: logger}
}

func (s *PropertyService) requireActive(userID string) error {
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return ErrUserNotFound
	}
	if !u.IsActive {
		return ErrInactiveAccount
	}
	return nil
}

type CreatePropertyInput struct {
	Address      string
	City         string
	Country      string
	Postcode     string
	Latitude     *float64
	Longitude    *float64
	SizeSqft     float64
	NumBedrooms  int
	NumBathrooms int
	ListingPrice float64
	PropertyType string
}

func (s *PropertyService) Create(ctx context.Context, userID string, in CreatePropertyInput) (*entity.Property, error) {
	if err := s.requireActive(userID); err != nil {
		return nil, err
	}
	p := &entity.Property{
		Address:      in.Address,
		City:         in.City,
		Country:      in.Country,
		Postcode:     in.Postcode,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		SizeSqft:     in.SizeSqft,
		NumBedrooms:  in.NumBedrooms,
		NumBathrooms: in.NumBathrooms,
		ListingPrice: in.ListingPrice,
		PropertyType: in.PropertyType,
	}
	if err := s.Props.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PropertyService) Get(ctx context.Context, userID, propertyID string) (*entity.Property, error) {
	if err := s.requireActive(userID); err != nil {
		return nil, err
	}
	p, err := s.Props.GetByID(propertyID)
	if err != nil {
		return nil, ErrPropertyNotFound
	}
	return p, nil
}

func (s *PropertyService) List(ctx context.Context, userID string) ([]*entity.Property, error) {
	if err := s.requireActive(userID); err != nil {
		return nil, err
	}
	return s.Props.List()
}

// Delete removes a property and, via foreign key cascade, its valuation
// history.
func (s *PropertyService) Delete(ctx context.Context, userID, propertyID string) error {
	if err := s.requireActive(userID); err != nil {
		return err
	}
	if err := s.Props.Delete(propertyID); err != nil {
		return ErrPropertyNotFound
	}
	return nil
}

// Valuate runs the full rule model against a stored property and persists the
// result as an immutable snapshot tagged with the model version.
func (s *PropertyService) Valuate(ctx context.Context, userID, propertyID string) (*entity.Prediction, error) {
	if err := s.requireActive(userID); err != nil {
		return nil, err
	}
	p, err := s.Props.GetByID(propertyID)
	if err != nil {
		return nil, ErrPropertyNotFound
	}

	in := valuation.PropertyInput{
		Location:     p.City + ", " + p.Country,
		SizeSqft:     p.SizeSqft,
		NumBedrooms:  p.NumBedrooms,
		NumBathrooms: p.NumBathrooms,
		PropertyType: p.PropertyType,
	}
	rent := valuation.Rent(in)
	growth := valuation.CapitalGrowth(in.Location, in.PropertyType)
	profile := valuation.DeriveAreaProfile(p.City)

	pred := &entity.Prediction{
		PropertyID:               p.ID,
		PredictedSalePrice:       valuation.Price(in),
		PredictedRentalYield:     rent.RentalYield,
		PredictedCapitalGrowth1Y: growth.OneYear,
		PredictedCapitalGrowth3Y: growth.ThreeYear,
		PredictedCapitalGrowth5Y: growth.FiveYear,
		InvestmentScore:          profile.InvestmentScore,
		ModelVersion:             valuation.ModelVersion,
	}
	if err := s.Preds.Create(pred); err != nil {
		return nil, err
	}
	return pred, nil
}

// Valuations returns the snapshot history for a property, newest first.
func (s *PropertyService) Valuations(ctx context.Context, userID, propertyID string) ([]*entity.Prediction, error) {
	if err := s.requireActive(userID); err != nil {
		return nil, err
	}
	if _, err := s.Props.GetByID(propertyID); err != nil {
		return nil, ErrPropertyNotFound
	}
	return s.Preds.ListByProperty(propertyID)
}
