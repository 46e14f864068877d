package repository

import "github.com/realtexai/realtex-api/internal/domain/entity"

// PropertyRepository stores the property catalog that persisted valuations
// reference.
type PropertyRepository interface {
	Create(p *entity.Property) error
	GetByID(id string) (*entity.Property, error)
	List() ([]*entity.Property, error)
	Delete(id string) error
}

// PredictionRepository stores valuation snapshots. Rows are append-only;
// deleting a property cascades to its predictions.
type PredictionRepository interface {
	Create(p *entity.Prediction) error
	ListByProperty(propertyID string) ([]*entity.Prediction, error)
}
