package postgres

import (
	"context"
	"errors"

	"simply-jobs-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type educationRepo struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

func (r *educationRepo) ListByProfile(ctx context.Context, profileID int64) ([]domain.Education, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, jobseeker_id, school, degree, field_of_study, start_date, end_date
		 FROM educations WHERE jobseeker_id = $1 ORDER BY id`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var educations []domain.Education
	for rows.Next() {
		var edu domain.Education
		if err := rows.Scan(&edu.ID, &edu.JobSeekerID, &edu.School, &edu.Degree,
			&edu.FieldOfStudy, &edu.StartDate, &edu.EndDate); err != nil {
			return nil, err
		}
		educations = append(educations, edu)
	}
	return educations, rows.Err()
}

func (r *educationRepo) Create(ctx context.Context, edu *domain.Education) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO educations (jobseeker_id, school, degree, field_of_study, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		edu.JobSeekerID, edu.School, edu.Degree, edu.FieldOfStudy, edu.StartDate, edu.EndDate,
	).Scan(&edu.ID)
}

// GetOwned fetches a record only when it belongs to the given profile;
// someone else's record reads as not found.
func (r *educationRepo) GetOwned(ctx context.Context, id, profileID int64) (*domain.Education, error) {
	var edu domain.Education
	err := r.db.QueryRow(ctx,
		`SELECT id, jobseeker_id, school, degree, field_of_study, start_date, end_date
		 FROM educations WHERE id = $1 AND jobseeker_id = $2`, id, profileID,
	).Scan(&edu.ID, &edu.JobSeekerID, &edu.School, &edu.Degree,
		&edu.FieldOfStudy, &edu.StartDate, &edu.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &edu, nil
}

func (r *educationRepo) UpdateOwned(ctx context.Context, edu *domain.Education) error {
	result, err := r.db.Exec(ctx,
		`UPDATE educations SET school = $3, degree = $4, field_of_study = $5, start_date = $6, end_date = $7
		 WHERE id = $1 AND jobseeker_id = $2`,
		edu.ID, edu.JobSeekerID, edu.School, edu.Degree, edu.FieldOfStudy, edu.StartDate, edu.EndDate,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *educationRepo) DeleteOwned(ctx context.Context, id, profileID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM educations WHERE id = $1 AND jobseeker_id = $2`, id, profileID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
