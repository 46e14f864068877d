package valuation

import "strings"

// ModelVersion tags every valuation output so persisted predictions can be
// traced back to the rule tables that produced them.
const ModelVersion = "rules-v1"

// FactorRule maps a substring pattern to a multiplier. Rules are evaluated in
// declared order against the raw input string; the first match wins and an
// unmatched input resolves to the table's neutral default of 1.0.
type FactorRule struct {
	Pattern string
	Factor  float64
}

// FactorTable is an ordered rule list with first-match-wins semantics.
type FactorTable []FactorRule

// Resolve returns the factor of the first rule whose pattern occurs in input,
// or 1.0 when no rule matches.
func (t FactorTable) Resolve(input string) float64 {
	for _, r := range t {
		if strings.Contains(input, r.Pattern) {
			return r.Factor
		}
	}
	return 1.0
}

// Price model: base + size*200 + bedrooms*25000 + bathrooms*15000, scaled by
// location and property type.
var (
	priceLocationFactors = FactorTable{
		{"London", 2.5},
		{"New York", 3.0},
		{"Paris", 2.2},
		{"Dubai", 1.8},
	}
	priceTypeFactors = FactorTable{
		{"Detached House", 1.5},
		{"Semi-detached House", 1.3},
		{"Townhouse", 1.2},
		{"Villa", 1.8},
	}
)

// Rent model: base 1000 + size*0.5 + bedrooms*300 + bathrooms*150, with its
// own factor tables. Rental yield is derived against a freshly computed price.
var (
	rentLocationFactors = FactorTable{
		{"London", 1.8},
		{"New York", 2.2},
		{"Paris", 1.6},
		{"Dubai", 1.4},
	}
	rentTypeFactors = FactorTable{
		{"Detached House", 1.3},
		{"Semi-detached House", 1.2},
		{"Townhouse", 1.1},
		{"Villa", 1.5},
	}
)

// Capital growth: fixed base rates per horizon, no size or room dependence.
var (
	growthLocationFactors = FactorTable{
		{"London", 1.2},
		{"New York", 1.3},
		{"Paris", 1.1},
		{"Dubai", 1.4},
	}
	growthTypeFactors = FactorTable{
		{"Detached House", 1.1},
		{"Land Plot", 1.2},
	}
)

// AreaProfile is the derived market statistics for an area on a cache miss.
type AreaProfile struct {
	InvestmentScore float64
	AvgPrice        float64
	AvgRent         float64
	RentalYield     float64
}

type areaRule struct {
	Patterns []string
	Profile  AreaProfile
}

// areaRules follows the same ordered, first-match policy as the factor
// tables, with an explicit fallback profile for unknown areas.
var areaRules = []areaRule{
	{[]string{"London", "New York"}, AreaProfile{InvestmentScore: 78.5, AvgPrice: 750000, AvgRent: 3000, RentalYield: 4.8}},
	{[]string{"Paris", "Berlin"}, AreaProfile{InvestmentScore: 72.0, AvgPrice: 550000, AvgRent: 2200, RentalYield: 4.8}},
	{[]string{"Dubai"}, AreaProfile{InvestmentScore: 81.0, AvgPrice: 650000, AvgRent: 3500, RentalYield: 6.5}},
}

var defaultAreaProfile = AreaProfile{InvestmentScore: 65.0, AvgPrice: 350000, AvgRent: 1500, RentalYield: 5.1}

// DeriveAreaProfile resolves the market statistics for an area name.
func DeriveAreaProfile(areaName string) AreaProfile {
	for _, r := range areaRules {
		for _, p := range r.Patterns {
			if strings.Contains(areaName, p) {
				return r.Profile
			}
		}
	}
	return defaultAreaProfile
}
