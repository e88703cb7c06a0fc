package domain

import (
	"context"
	"time"
)

type Job struct {
	ID          int64     `json:"id"`
	EmployerID  int64     `json:"employer"`
	Company     string    `json:"company"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Salary      int64     `json:"salary"`
	JobType     string    `json:"job_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// JobFilter narrows a listing; nil fields are ignored, set fields are
// exact-match and combine with AND.
type JobFilter struct {
	Company  *string
	JobType  *string
	Location *string
	Salary   *int64
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// Fetch lists postings newest-first. A non-nil employerID restricts the
	// result to that employer's postings.
	Fetch(ctx context.Context, filter *JobFilter, employerID *int64) ([]Job, error)
	// DeleteOwned removes a posting only when it belongs to the employer;
	// foreign or unknown ids report ErrNotFound.
	DeleteOwned(ctx context.Context, id, employerID int64) error
}

type JobUsecase interface {
	// ListJobs scopes to the caller's own postings when the identity has an
	// employer profile; job seekers and anonymous callers see everything.
	ListJobs(ctx context.Context, identity *Identity, filter *JobFilter) ([]Job, error)
	CreateJob(ctx context.Context, identity *Identity, job *Job) error
	DeleteJob(ctx context.Context, identity *Identity, jobID int64) error
}
