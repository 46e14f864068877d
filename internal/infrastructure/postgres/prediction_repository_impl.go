package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/realtexai/realtex-api/internal/domain/entity"
	"github.com/realtexai/realtex-api/internal/domain/repository"
)

const predictionColumns = `id, property_id, predicted_sale_price, predicted_rental_yield,
	predicted_capital_growth_1y, predicted_capital_growth_3y, predicted_capital_growth_5y,
	investment_score, model_version, created_at, updated_at`

type PredictionRepository struct {
	pool *pgxpool.Pool
}

func NewPredictionRepository(pool *pgxpool.Pool) *PredictionRepository {
	return &PredictionRepository{pool: pool}
}

func scanPrediction(row pgx.Row) (*entity.Prediction, error) {
	p := &entity.Prediction{}
	if err := row.Scan(&p.ID, &p.PropertyID, &p.PredictedSalePrice, &p.PredictedRentalYield,
		&p.PredictedCapitalGrowth1Y, &p.PredictedCapitalGrowth3Y, &p.PredictedCapitalGrowth5Y,
		&p.InvestmentScore, &p.ModelVersion, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PredictionRepository) Create(p *entity.Prediction) error {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO predictions (property_id, predicted_sale_price, predicted_rental_yield,
			predicted_capital_growth_1y, predicted_capital_growth_3y, predicted_capital_growth_5y,
			investment_score, model_version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, p.PropertyID, p.PredictedSalePrice, p.PredictedRentalYield,
		p.PredictedCapitalGrowth1Y, p.PredictedCapitalGrowth3Y, p.PredictedCapitalGrowth5Y,
		p.InvestmentScore, p.ModelVersion)
	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PredictionRepository) ListByProperty(propertyID string) ([]*entity.Prediction, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+predictionColumns+` FROM predictions WHERE property_id = $1 ORDER BY created_at DESC`,
		propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var preds []*entity.Prediction
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	return preds, rows.Err()
}

var _ repository.PredictionRepository = (*PredictionRepository)(nil)
