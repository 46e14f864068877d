package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/realtexai/realtex-api/internal/domain/entity"
	"github.com/realtexai/realtex-api/internal/domain/repository"
)

const areaColumns = `id, area_name, country, avg_price, avg_rent, rental_yield,
	investment_score, created_at, updated_at`

type AreaRepository struct {
	pool *pgxpool.Pool
}

func NewAreaRepository(pool *pgxpool.Pool) *AreaRepository {
	return &AreaRepository{pool: pool}
}

func scanArea(row pgx.Row) (*entity.Area, error) {
	a := &entity.Area{}
	if err := row.Scan(&a.ID, &a.AreaName, &a.Country, &a.AvgPrice, &a.AvgRent,
		&a.RentalYield, &a.InvestmentScore, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AreaRepository) Get(areaName, country string) (*entity.Area, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+areaColumns+` FROM areas WHERE area_name = $1 AND country = $2`,
		areaName, country)
	return scanArea(row)
}

// GetOrCreate inserts candidate unless a row already exists for its
// (area_name, country) pair. The unique constraint plus ON CONFLICT DO
// NOTHING makes the lookup-then-create path atomic: a loser of a concurrent
// first-time insert gets no row back and re-fetches the winner's.
func (r *AreaRepository) GetOrCreate(candidate *entity.Area) (*entity.Area, error) {
	if existing, err := r.Get(candidate.AreaName, candidate.Country); err == nil {
		return existing, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO areas (area_name, country, avg_price, avg_rent, rental_yield, investment_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (area_name, country) DO NOTHING
		RETURNING `+areaColumns,
		candidate.AreaName, candidate.Country, candidate.AvgPrice, candidate.AvgRent,
		candidate.RentalYield, candidate.InvestmentScore)

	created, err := scanArea(row)
	if errors.Is(err, repository.ErrNotFound) {
		// Lost the insert race; the winner's row is the permanent answer.
		return r.Get(candidate.AreaName, candidate.Country)
	}
	return created, err
}

var _ repository.AreaRepository = (*AreaRepository)(nil)
