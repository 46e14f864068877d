// Package valuation implements the deterministic pricing model: explicit rule
// tables rather than a trained estimator, so identical inputs always produce
// identical outputs.
package valuation

// PropertyInput carries the attributes every money valuation consumes.
type PropertyInput struct {
	Location     string
	SizeSqft     float64
	NumBedrooms  int
	NumBathrooms int
	PropertyType string
}

// RentEstimate is the output of the rent model.
type RentEstimate struct {
	MonthlyRent float64
	AnnualRent  float64
	RentalYield float64
}

// GrowthEstimate holds the projected capital growth percentages per horizon.
type GrowthEstimate struct {
	OneYear   float64
	ThreeYear float64
	FiveYear  float64
}

const (
	priceBase        = 200000.0
	pricePerSqft     = 200.0
	pricePerBedroom  = 25000.0
	pricePerBathroom = 15000.0

	rentBase        = 1000.0
	rentPerSqft     = 0.5
	rentPerBedroom  = 300.0
	rentPerBathroom = 150.0

	growthBase1Y = 3.0
	growthBase3Y = 9.5
	growthBase5Y = 16.0
)

// Price computes the predicted sale price for in.
func Price(in PropertyInput) float64 {
	base := priceBase +
		in.SizeSqft*pricePerSqft +
		float64(in.NumBedrooms)*pricePerBedroom +
		float64(in.NumBathrooms)*pricePerBathroom
	return base * priceLocationFactors.Resolve(in.Location) * priceTypeFactors.Resolve(in.PropertyType)
}

// Rent computes the predicted monthly and annual rent plus the rental yield.
// The yield denominator is a fresh Price computation for the same input, not
// a value cached from an earlier call.
func Rent(in PropertyInput) RentEstimate {
	price := Price(in)
	monthly := (rentBase +
		in.SizeSqft*rentPerSqft +
		float64(in.NumBedrooms)*rentPerBedroom +
		float64(in.NumBathrooms)*rentPerBathroom) *
		rentLocationFactors.Resolve(in.Location) * rentTypeFactors.Resolve(in.PropertyType)
	annual := monthly * 12
	return RentEstimate{
		MonthlyRent: monthly,
		AnnualRent:  annual,
		RentalYield: annual / price * 100,
	}
}

// CapitalGrowth computes growth percentages for the 1, 3 and 5 year horizons.
// Only location and property type matter here.
func CapitalGrowth(location, propertyType string) GrowthEstimate {
	factor := growthLocationFactors.Resolve(location) * growthTypeFactors.Resolve(propertyType)
	return GrowthEstimate{
		OneYear:   growthBase1Y * factor,
		ThreeYear: growthBase3Y * factor,
		FiveYear:  growthBase5Y * factor,
	}
}
