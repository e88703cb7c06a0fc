package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"simply-jobs-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// CreateWithProfile inserts the user row and the empty profile row of the
// matching kind in one transaction, so a failure cannot leave an identity
// without a profile.
func (r *userRepo) CreateWithProfile(ctx context.Context, user *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	user.CreatedAt = time.Now()
	user.IsActive = true

	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, role, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		user.Username, user.PasswordHash, user.Role, user.IsActive, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}

	switch user.Role {
	case domain.RoleEmployer:
		_, err = tx.Exec(ctx,
			`INSERT INTO employer_profiles (user_id) VALUES ($1)`, user.ID)
	case domain.RoleJobSeeker:
		_, err = tx.Exec(ctx,
			`INSERT INTO jobseeker_profiles (user_id, email) VALUES ($1, '')`, user.ID)
	default:
		err = fmt.Errorf("unknown role %q", user.Role)
	}
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.get(ctx, `WHERE username = $1`, username)
}

func (r *userRepo) get(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `SELECT id, username, password_hash, role, is_active, created_at FROM users ` + where

	var user domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
