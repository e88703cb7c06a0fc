package postgres

import (
	"context"
	"time"

	"simply-jobs-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	app.Status = domain.ApplicationStatusPending
	app.AppliedAt = time.Now()

	err := r.db.QueryRow(ctx,
		`INSERT INTO applications (job_id, jobseeker_id, status, applied_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		app.JobID, app.JobSeekerID, app.Status, app.AppliedAt,
	).Scan(&app.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *applicationRepo) Exists(ctx context.Context, jobID, jobSeekerID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND jobseeker_id = $2)`,
		jobID, jobSeekerID,
	).Scan(&exists)
	return exists, err
}

// ListByJob returns a job's applications with the applicant's username
// joined in, optionally narrowed to one status.
func (r *applicationRepo) ListByJob(ctx context.Context, jobID int64, status *string) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.jobseeker_id, a.status, a.applied_at, u.username
		FROM applications a
		JOIN jobseeker_profiles p ON a.jobseeker_id = p.id
		JOIN users u ON p.user_id = u.id
		WHERE a.job_id = $1`
	args := []any{jobID}

	if status != nil {
		query += ` AND a.status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		var applicant string
		if err := rows.Scan(&app.ID, &app.JobID, &app.JobSeekerID,
			&app.Status, &app.AppliedAt, &applicant); err != nil {
			return nil, err
		}
		app.Applicant = &applicant
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// ListBySeeker returns the seeker's applications newest-first, each with
// the posting it targets embedded.
func (r *applicationRepo) ListBySeeker(ctx context.Context, jobSeekerID int64) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.job_id, a.jobseeker_id, a.status, a.applied_at,
		       j.id, j.employer_id, j.company, j.title, j.description,
		       j.location, j.salary, j.job_type, j.created_at
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE a.jobseeker_id = $1
		ORDER BY a.applied_at DESC`, jobSeekerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		var job domain.Job
		if err := rows.Scan(&app.ID, &app.JobID, &app.JobSeekerID, &app.Status, &app.AppliedAt,
			&job.ID, &job.EmployerID, &job.Company, &job.Title, &job.Description,
			&job.Location, &job.Salary, &job.JobType, &job.CreatedAt); err != nil {
			return nil, err
		}
		app.Job = &job
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// UpdateStatusOwned runs one UPDATE joined against jobs, so ids whose
// posting belongs to someone else simply don't match and aren't counted.
func (r *applicationRepo) UpdateStatusOwned(ctx context.Context, ids []int64, status string, employerID int64) (int64, error) {
	result, err := r.db.Exec(ctx, `
		UPDATE applications a SET status = $1
		FROM jobs j
		WHERE a.job_id = j.id AND a.id = ANY($2) AND j.employer_id = $3`,
		status, ids, employerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (r *applicationRepo) DeleteOwned(ctx context.Context, id, jobSeekerID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM applications WHERE id = $1 AND jobseeker_id = $2`, id, jobSeekerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
