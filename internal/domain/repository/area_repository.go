package repository

import "github.com/realtexai/realtex-api/internal/domain/entity"

// AreaRepository is the lookup-or-create store for area market statistics.
type AreaRepository interface {
	Get(areaName, country string) (*entity.Area, error)
	// GetOrCreate returns the existing row for (areaName, country) or persists
	// candidate and returns it. Concurrent first-time lookups must converge on
	// a single row; losers of the insert race get the winner's row back.
	GetOrCreate(candidate *entity.Area) (*entity.Area, error)
}
