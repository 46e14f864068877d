package entity

import "time"

// Area holds market statistics for one (AreaName, Country) pair. Rows are
// created on first lookup and never recomputed afterwards; the pair is unique.
type Area struct {
	ID              string
	AreaName        string
	Country         string
	AvgPrice        float64
	AvgRent         float64
	RentalYield     float64
	InvestmentScore float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
