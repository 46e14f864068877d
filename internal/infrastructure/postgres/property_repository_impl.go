package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/realtexai/realtex-api/internal/domain/entity"
	"github.com/realtexai/realtex-api/internal/domain/repository"
)

const propertyColumns = `id, address, city, country, postcode, latitude, longitude,
	size_sqft, num_bedrooms, num_bathrooms, listing_price, property_type, created_at, updated_at`

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func scanProperty(row pgx.Row) (*entity.Property, error) {
	p := &entity.Property{}
	if err := row.Scan(&p.ID, &p.Address, &p.City, &p.Country, &p.Postcode,
		&p.Latitude, &p.Longitude, &p.SizeSqft, &p.NumBedrooms, &p.NumBathrooms,
		&p.ListingPrice, &p.PropertyType, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PropertyRepository) Create(p *entity.Property) error {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO properties (address, city, country, postcode, latitude, longitude,
			size_sqft, num_bedrooms, num_bathrooms, listing_price, property_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, p.Address, p.City, p.Country, p.Postcode, p.Latitude, p.Longitude,
		p.SizeSqft, p.NumBedrooms, p.NumBathrooms, p.ListingPrice, p.PropertyType)
	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PropertyRepository) GetByID(id string) (*entity.Property, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id)
	return scanProperty(row)
}

func (r *PropertyRepository) List() ([]*entity.Property, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+propertyColumns+` FROM properties ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var props []*entity.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, rows.Err()
}

// Delete removes the property; its predictions cascade via foreign key.
func (r *PropertyRepository) Delete(id string) error {
	res, err := r.pool.Exec(context.Background(), `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.PropertyRepository = (*PropertyRepository)(nil)
