package postgres

import (
	"context"
	"errors"

	"simply-jobs-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

func (r *experienceRepo) ListByProfile(ctx context.Context, profileID int64) ([]domain.Experience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, jobseeker_id, title, job_type, company, start_date, end_date, description
		 FROM experiences WHERE jobseeker_id = $1 ORDER BY id`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var experiences []domain.Experience
	for rows.Next() {
		var exp domain.Experience
		if err := rows.Scan(&exp.ID, &exp.JobSeekerID, &exp.Title, &exp.JobType,
			&exp.Company, &exp.StartDate, &exp.EndDate, &exp.Description); err != nil {
			return nil, err
		}
		experiences = append(experiences, exp)
	}
	return experiences, rows.Err()
}

func (r *experienceRepo) Create(ctx context.Context, exp *domain.Experience) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO experiences (jobseeker_id, title, job_type, company, start_date, end_date, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		exp.JobSeekerID, exp.Title, exp.JobType, exp.Company, exp.StartDate, exp.EndDate, exp.Description,
	).Scan(&exp.ID)
}

func (r *experienceRepo) GetOwned(ctx context.Context, id, profileID int64) (*domain.Experience, error) {
	var exp domain.Experience
	err := r.db.QueryRow(ctx,
		`SELECT id, jobseeker_id, title, job_type, company, start_date, end_date, description
		 FROM experiences WHERE id = $1 AND jobseeker_id = $2`, id, profileID,
	).Scan(&exp.ID, &exp.JobSeekerID, &exp.Title, &exp.JobType,
		&exp.Company, &exp.StartDate, &exp.EndDate, &exp.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &exp, nil
}

func (r *experienceRepo) UpdateOwned(ctx context.Context, exp *domain.Experience) error {
	result, err := r.db.Exec(ctx,
		`UPDATE experiences SET title = $3, job_type = $4, company = $5, start_date = $6, end_date = $7, description = $8
		 WHERE id = $1 AND jobseeker_id = $2`,
		exp.ID, exp.JobSeekerID, exp.Title, exp.JobType, exp.Company, exp.StartDate, exp.EndDate, exp.Description,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *experienceRepo) DeleteOwned(ctx context.Context, id, profileID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM experiences WHERE id = $1 AND jobseeker_id = $2`, id, profileID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
