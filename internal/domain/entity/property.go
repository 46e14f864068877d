package entity

import "time"

// Property is pass-through input for valuations; the API never mutates it.
type Property struct {
	ID           string
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
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
