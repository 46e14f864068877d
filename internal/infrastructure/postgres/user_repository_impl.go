package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/realtexai/realtex-api/internal/domain/entity"
	"github.com/realtexai/realtex-api/internal/domain/repository"
)

const uniqueViolation = "23505"

const userColumns = `id, email, password_hash, first_name, last_name, is_admin, is_active,
	invitation_token, invitation_sent_at, invitation_accepted_at, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.IsAdmin, &u.IsActive, &u.InvitationToken, &u.InvitationSentAt,
		&u.InvitationAcceptedAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func mapUniqueEmail(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicateEmail
	}
	return err
}

func (r *UserRepository) Create(u *entity.User) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, first_name, last_name, is_admin, is_active,
			invitation_token, invitation_sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.IsAdmin, u.IsActive,
		u.InvitationToken, u.InvitationSentAt)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return mapUniqueEmail(err)
	}
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) GetByInvitationToken(token string) (*entity.User, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE invitation_token = $1`, token)
	return scanUser(row)
}

func (r *UserRepository) List() ([]*entity.User, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(u *entity.User) error {
	u.UpdatedAt = time.Now()

	res, err := r.pool.Exec(context.Background(), `
		UPDATE users
		SET email = $1, password_hash = $2, first_name = $3, last_name = $4,
			is_admin = $5, is_active = $6, invitation_token = $7,
			invitation_sent_at = $8, invitation_accepted_at = $9, updated_at = $10
		WHERE id = $11
	`, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.IsAdmin, u.IsActive,
		u.InvitationToken, u.InvitationSentAt, u.InvitationAcceptedAt, u.UpdatedAt, u.ID)
	if err != nil {
		return mapUniqueEmail(err)
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the user; predictions owned by the user's properties cascade
// via foreign keys.
func (r *UserRepository) Delete(id string) error {
	res, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
