package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"simply-jobs-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	job.CreatedAt = time.Now()
	return r.db.QueryRow(ctx,
		`INSERT INTO jobs (employer_id, company, title, description, location, salary, job_type, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		job.EmployerID, job.Company, job.Title, job.Description,
		job.Location, job.Salary, job.JobType, job.CreatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	var job domain.Job
	err := r.db.QueryRow(ctx,
		`SELECT id, employer_id, company, title, description, location, salary, job_type, created_at
		 FROM jobs WHERE id = $1`, id,
	).Scan(&job.ID, &job.EmployerID, &job.Company, &job.Title, &job.Description,
		&job.Location, &job.Salary, &job.JobType, &job.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Fetch builds the WHERE clause from whichever filter fields are set.
// All conditions combine with AND; results come back newest-first.
func (r *jobRepo) Fetch(ctx context.Context, filter *domain.JobFilter, employerID *int64) ([]domain.Job, error) {
	var conditions []string
	var args []any

	addCondition := func(column string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if employerID != nil {
		addCondition("employer_id", *employerID)
	}
	if filter != nil {
		if filter.Company != nil {
			addCondition("company", *filter.Company)
		}
		if filter.JobType != nil {
			addCondition("job_type", *filter.JobType)
		}
		if filter.Location != nil {
			addCondition("location", *filter.Location)
		}
		if filter.Salary != nil {
			addCondition("salary", *filter.Salary)
		}
	}

	query := `SELECT id, employer_id, company, title, description, location, salary, job_type, created_at FROM jobs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(&job.ID, &job.EmployerID, &job.Company, &job.Title,
			&job.Description, &job.Location, &job.Salary, &job.JobType, &job.CreatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) DeleteOwned(ctx context.Context, id, employerID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM jobs WHERE id = $1 AND employer_id = $2`, id, employerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
