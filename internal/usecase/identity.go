package usecase

import (
	"simply-jobs-backend/internal/domain"
	"simply-jobs-backend/pkg/apperror"
)

// requireJobSeeker returns the caller's job seeker profile or a 403 when the
// identity carries the other profile kind.
func requireJobSeeker(identity *domain.Identity) (*domain.JobSeekerProfile, error) {
	if identity == nil || identity.User == nil {
		return nil, apperror.Unauthorized("authentication required")
	}
	if identity.JobSeeker == nil {
		return nil, apperror.Forbidden("only job seekers can perform this action")
	}
	return identity.JobSeeker, nil
}

func requireEmployer(identity *domain.Identity) (*domain.EmployerProfile, error) {
	if identity == nil || identity.User == nil {
		return nil, apperror.Unauthorized("authentication required")
	}
	if identity.Employer == nil {
		return nil, apperror.Forbidden("only employers can perform this action")
	}
	return identity.Employer, nil
}
