package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realtexai/realtex-api/internal/valuation"
)

func newTestPropertyService(t *testing.T) (*PropertyService, *memUserRepo, *memPredictionRepo) {
	t.Helper()
	users := newMemUserRepo()
	preds := newMemPredictionRepo()
	svc := NewPropertyService(users, newMemPropertyRepo(), preds, testLogger())
	return svc, users, preds
}

func londonProperty() CreatePropertyInput {
	return CreatePropertyInput{
		Address:      "1 Example Street",
		City:         "London",
		Country:      "UK",
		Postcode:     "E1 6AN",
		SizeSqft:     1200,
		NumBedrooms:  3,
		NumBathrooms: 2,
		ListingPrice: 1300000,
		PropertyType: "Apartment",
	}
}

func TestPropertyLifecycle(t *testing.T) {
	svc, users, _ := newTestPropertyService(t)
	u := seedActiveUser(t, users, "buyer@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, u.ID, londonProperty())
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	got, err := svc.Get(ctx, u.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "London", got.City)

	list, err := svc.List(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, u.ID, p.ID))
	_, err = svc.Get(ctx, u.ID, p.ID)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestPropertyRequiresActiveCaller(t *testing.T) {
	svc, _, _ := newTestPropertyService(t)

	_, err := svc.Create(context.Background(), "no-such-user", londonProperty())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestValuateSnapshotsTheRuleModel(t *testing.T) {
	svc, users, _ := newTestPropertyService(t)
	u := seedActiveUser(t, users, "buyer@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, u.ID, londonProperty())
	require.NoError(t, err)

	pred, err := svc.Valuate(ctx, u.ID, p.ID)
	require.NoError(t, err)

	in := valuation.PropertyInput{
		Location:     "London, UK",
		SizeSqft:     1200,
		NumBedrooms:  3,
		NumBathrooms: 2,
		PropertyType: "Apartment",
	}
	assert.Equal(t, p.ID, pred.PropertyID)
	assert.Equal(t, valuation.Price(in), pred.PredictedSalePrice)
	assert.Equal(t, valuation.Rent(in).RentalYield, pred.PredictedRentalYield)
	assert.Equal(t, valuation.CapitalGrowth("London, UK", "Apartment").OneYear, pred.PredictedCapitalGrowth1Y)
	assert.Equal(t, 78.5, pred.InvestmentScore)
	assert.Equal(t, valuation.ModelVersion, pred.ModelVersion)
}

func TestValuationsNewestFirst(t *testing.T) {
	svc, users, _ := newTestPropertyService(t)
	u := seedActiveUser(t, users, "buyer@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, u.ID, londonProperty())
	require.NoError(t, err)

	first, err := svc.Valuate(ctx, u.ID, p.ID)
	require.NoError(t, err)
	second, err := svc.Valuate(ctx, u.ID, p.ID)
	require.NoError(t, err)

	history, err := svc.Valuations(ctx, u.ID, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
}

func TestValuateUnknownProperty(t *testing.T) {
	svc, users, _ := newTestPropertyService(t)
	u := seedActiveUser(t, users, "buyer@example.com")

	_, err := svc.Valuate(context.Background(), u.ID, "no-such-property")
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	_, err = svc.Valuations(context.Background(), u.ID, "no-such-property")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}
