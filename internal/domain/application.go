package domain

import (
	"context"
	"time"
)

// Application status values. PENDING is assigned at creation; only the
// employer owning the job's posting moves it onward.
const (
	ApplicationStatusPending     = "PENDING"
	ApplicationStatusShortlisted = "SHORTLISTED"
	ApplicationStatusRejected    = "REJECTED"
)

func ValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationStatusPending, ApplicationStatusShortlisted, ApplicationStatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	JobSeekerID int64     `json:"jobseeker_id"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`

	// Joined data for list responses
	Job       *Job    `json:"job,omitempty"`
	Applicant *string `json:"applicant,omitempty"`
}

type ApplicationRepository interface {
	// Create inserts the application; the (job, jobseeker) unique constraint
	// is authoritative for duplicates and surfaces as ErrDuplicate.
	Create(ctx context.Context, app *Application) error
	Exists(ctx context.Context, jobID, jobSeekerID int64) (bool, error)
	ListByJob(ctx context.Context, jobID int64, status *string) ([]Application, error)
	ListBySeeker(ctx context.Context, jobSeekerID int64) ([]Application, error)
	// UpdateStatusOwned flips status on the subset of ids whose job belongs
	// to the employer, in one statement, and reports how many rows changed.
	UpdateStatusOwned(ctx context.Context, ids []int64, status string, employerID int64) (int64, error)
	DeleteOwned(ctx context.Context, id, jobSeekerID int64) error
}

type ApplicationUsecase interface {
	ApplyToJob(ctx context.Context, identity *Identity, jobID int64) (*Application, error)
	ListApplicants(ctx context.Context, identity *Identity, jobID int64, status *string) ([]Application, error)
	UpdateStatus(ctx context.Context, identity *Identity, ids []int64, status string) (int64, error)
	ListMyApplications(ctx context.Context, identity *Identity) ([]Application, error)
	DeleteApplication(ctx context.Context, identity *Identity, id int64) error
}
