package usecase

import (
	"context"
	"errors"

	"simply-jobs-backend/internal/domain"
	"simply-jobs-backend/pkg/apperror"
)

type applicationUsecase struct {
	applications domain.ApplicationRepository
	jobs         domain.JobRepository
}

func NewApplicationUsecase(applications domain.ApplicationRepository, jobs domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{applications: applications, jobs: jobs}
}

func (u *applicationUsecase) ApplyToJob(ctx context.Context, identity *domain.Identity, jobID int64) (*domain.Application, error) {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return nil, err
	}

	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("job not found")
		}
		return nil, err
	}

	// Cheap pre-check for the common repeat-click case; the unique
	// constraint below stays authoritative under concurrency.
	exists, err := u.applications.Exists(ctx, jobID, seeker.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("you have already applied to this job")
	}

	app := &domain.Application{JobID: jobID, JobSeekerID: seeker.ID}
	if err := u.applications.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("you have already applied to this job")
		}
		return nil, err
	}
	return app, nil
}

// ListApplicants answers only for the employer owning the posting; a foreign
// job id reads as not found rather than revealing its applicants exist.
func (u *applicationUsecase) ListApplicants(ctx context.Context, identity *domain.Identity, jobID int64, status *string) ([]domain.Application, error) {
	employer, err := requireEmployer(identity)
	if err != nil {
		return nil, err
	}
	if status != nil && !domain.ValidApplicationStatus(*status) {
		return nil, apperror.BadRequest("status must be PENDING, SHORTLISTED or REJECTED")
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("job not found")
		}
		return nil, err
	}
	if job.EmployerID != employer.ID {
		return nil, apperror.NotFound("job not found")
	}

	return u.applications.ListByJob(ctx, jobID, status)
}

// UpdateStatus flips the given applications to the new status and reports how
// many actually changed; ids under someone else's posting are silently
// skipped rather than rejected wholesale.
func (u *applicationUsecase) UpdateStatus(ctx context.Context, identity *domain.Identity, ids []int64, status string) (int64, error) {
	employer, err := requireEmployer(identity)
	if err != nil {
		return 0, err
	}
	if !domain.ValidApplicationStatus(status) {
		return 0, apperror.BadRequest("status must be PENDING, SHORTLISTED or REJECTED")
	}
	if len(ids) == 0 {
		return 0, apperror.BadRequest("application_ids must not be empty")
	}
	return u.applications.UpdateStatusOwned(ctx, ids, status, employer.ID)
}

func (u *applicationUsecase) ListMyApplications(ctx context.Context, identity *domain.Identity) ([]domain.Application, error) {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return nil, err
	}
	return u.applications.ListBySeeker(ctx, seeker.ID)
}

func (u *applicationUsecase) DeleteApplication(ctx context.Context, identity *domain.Identity, id int64) error {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return err
	}
	if err := u.applications.DeleteOwned(ctx, id, seeker.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("application not found")
		}
		return err
	}
	return nil
}
