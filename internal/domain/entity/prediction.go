package entity

import "time"

// Prediction is a persisted snapshot of one valuation run for a property.
// Rows are written once and only replaced by a recomputation under a new
// model version; the interactive endpoints compute on the fly instead.
type Prediction struct {
	ID                       string
	PropertyID               string
	PredictedSalePrice       float64
	PredictedRentalYield     float64
	PredictedCapitalGrowth1Y float64
	PredictedCapitalGrowth3Y float64
	PredictedCapitalGrowth5Y float64
	InvestmentScore          float64
	ModelVersion             string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}
