package postgres

import (
	"context"
	"errors"

	"simply-jobs-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	var profile domain.EmployerProfile
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, has_seen_tutorial FROM employer_profiles WHERE user_id = $1`,
		userID,
	).Scan(&profile.ID, &profile.UserID, &profile.HasSeenTutorial)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *employerRepo) SetTutorialSeen(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE employer_profiles SET has_seen_tutorial = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
