package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactorTableResolve(t *testing.T) {
	table := FactorTable{
		{"London", 2.5},
		{"New York", 3.0},
	}

	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"matches substring", "London, UK", 2.5},
		{"first match wins", "London New York", 2.5},
		{"second rule", "Brooklyn, New York", 3.0},
		{"no match defaults to neutral", "Lisbon, Portugal", 1.0},
		{"empty input defaults to neutral", "", 1.0},
		{"match is case sensitive", "london, uk", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Resolve(tt.input))
		})
	}
}

func TestDeriveAreaProfile(t *testing.T) {
	tests := []struct {
		name     string
		areaName string
		want     AreaProfile
	}{
		{"london tier", "Central London", AreaProfile{InvestmentScore: 78.5, AvgPrice: 750000, AvgRent: 3000, RentalYield: 4.8}},
		{"new york tier", "New York Upper East", AreaProfile{InvestmentScore: 78.5, AvgPrice: 750000, AvgRent: 3000, RentalYield: 4.8}},
		{"paris tier", "Paris 7e", AreaProfile{InvestmentScore: 72.0, AvgPrice: 550000, AvgRent: 2200, RentalYield: 4.8}},
		{"berlin tier", "Berlin Mitte", AreaProfile{InvestmentScore: 72.0, AvgPrice: 550000, AvgRent: 2200, RentalYield: 4.8}},
		{"dubai tier", "Dubai Marina", AreaProfile{InvestmentScore: 81.0, AvgPrice: 650000, AvgRent: 3500, RentalYield: 6.5}},
		{"unknown area falls back", "Springfield", AreaProfile{InvestmentScore: 65.0, AvgPrice: 350000, AvgRent: 1500, RentalYield: 5.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveAreaProfile(tt.areaName))
		})
	}
}
