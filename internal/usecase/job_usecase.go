package usecase

import (
	"context"
	"errors"

	"simply-jobs-backend/internal/domain"
	"simply-jobs-backend/pkg/apperror"
)

type jobUsecase struct {
	jobs domain.JobRepository
}

func NewJobUsecase(jobs domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobs: jobs}
}

// ListJobs returns every posting for job seekers and anonymous callers.
// An employer sees only their own postings, which is what their dashboard
// renders.
func (u *jobUsecase) ListJobs(ctx context.Context, identity *domain.Identity, filter *domain.JobFilter) ([]domain.Job, error) {
	var employerID *int64
	if identity != nil && identity.Employer != nil {
		employerID = &identity.Employer.ID
	}
	return u.jobs.Fetch(ctx, filter, employerID)
}

func (u *jobUsecase) CreateJob(ctx context.Context, identity *domain.Identity, job *domain.Job) error {
	employer, err := requireEmployer(identity)
	if err != nil {
		return err
	}
	if job.Title == "" || job.Company == "" {
		return apperror.BadRequest("title and company are required")
	}
	if job.Salary < 0 {
		return apperror.BadRequest("salary cannot be negative")
	}

	job.EmployerID = employer.ID
	return u.jobs.Create(ctx, job)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, identity *domain.Identity, jobID int64) error {
	employer, err := requireEmployer(identity)
	if err != nil {
		return err
	}
	if err := u.jobs.DeleteOwned(ctx, jobID, employer.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("job not found")
		}
		return err
	}
	return nil
}
