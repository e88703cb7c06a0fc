package usecase

import (
	"context"
	"errors"
	"net/http"

	"simply-jobs-backend/internal/domain"
	"simply-jobs-backend/pkg/apperror"
	"simply-jobs-backend/pkg/storage"
)

const (
	resumePrefix  = "resumes"
	picturePrefix = "profile-pictures"
)

type profileUsecase struct {
	jobSeekers  domain.JobSeekerRepository
	employers   domain.EmployerRepository
	educations  domain.EducationRepository
	experiences domain.ExperienceRepository
	blobs       storage.BlobStore
}

func NewProfileUsecase(
	jobSeekers domain.JobSeekerRepository,
	employers domain.EmployerRepository,
	educations domain.EducationRepository,
	experiences domain.ExperienceRepository,
	blobs storage.BlobStore,
) domain.ProfileUsecase {
	return &profileUsecase{
		jobSeekers:  jobSeekers,
		employers:   employers,
		educations:  educations,
		experiences: experiences,
		blobs:       blobs,
	}
}

func (u *profileUsecase) GetMyProfile(ctx context.Context, identity *domain.Identity) (*domain.JobSeekerProfile, error) {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return nil, err
	}
	return u.jobSeekers.GetByUserID(ctx, seeker.UserID)
}

func (u *profileUsecase) EditMyProfile(ctx context.Context, identity *domain.Identity, patch *domain.ProfilePatch) (*domain.JobSeekerProfile, error) {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return nil, err
	}
	if err := u.jobSeekers.UpdateFields(ctx, seeker.ID, patch); err != nil {
		return nil, err
	}
	return u.jobSeekers.GetByUserID(ctx, seeker.UserID)
}

func (u *profileUsecase) GetProfileByUsername(ctx context.Context, username string) (*domain.JobSeekerProfile, error) {
	profile, err := u.jobSeekers.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) AttachResume(ctx context.Context, identity *domain.Identity, filename string, data []byte) (string, error) {
	return u.attach(ctx, identity, storage.KindResume, resumePrefix, filename, data)
}

func (u *profileUsecase) AttachProfilePicture(ctx context.Context, identity *domain.Identity, filename string, data []byte) (string, error) {
	return u.attach(ctx, identity, storage.KindImage, picturePrefix, filename, data)
}

func (u *profileUsecase) attach(ctx context.Context, identity *domain.Identity, kind storage.FileKind, prefix, filename string, data []byte) (string, error) {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return "", err
	}
	// The blob store is optional at startup; without it uploads are
	// unavailable rather than a crash.
	if u.blobs == nil {
		return "", apperror.New(http.StatusServiceUnavailable, "file storage is not configured", nil)
	}
	if err := storage.ValidateUpload(kind, filename, data); err != nil {
		return "", apperror.BadRequest(err.Error())
	}

	url, err := u.blobs.Put(ctx, prefix, filename, data)
	if err != nil {
		return "", err
	}

	var previous *string
	switch kind {
	case storage.KindResume:
		previous = seeker.Resume
		err = u.jobSeekers.SetResume(ctx, seeker.ID, url)
	default:
		previous = seeker.ProfilePicture
		err = u.jobSeekers.SetProfilePicture(ctx, seeker.ID, url)
	}
	if err != nil {
		return "", err
	}

	// Best effort: the replaced object is orphaned either way, and a failed
	// delete must not fail the upload.
	if previous != nil && *previous != "" {
		_ = u.blobs.Delete(ctx, *previous)
	}
	return url, nil
}

func (u *profileUsecase) ListEducations(ctx context.Context, identity *domain.Identity) ([]domain.Education, error) {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return nil, err
	}
	return u.educations.ListByProfile(ctx, seeker.ID)
}

func (u *profileUsecase) AddEducation(ctx context.Context, identity *domain.Identity, edu *domain.Education) error {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return err
	}
	if edu.School == "" {
		return apperror.BadRequest("school is required")
	}
	edu.JobSeekerID = seeker.ID
	return u.educations.Create(ctx, edu)
}

func (u *profileUsecase) GetEducation(ctx context.Context, identity *domain.Identity, id int64) (*domain.Education, error) {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return nil, err
	}
	edu, err := u.educations.GetOwned(ctx, id, seeker.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("education not found")
		}
		return nil, err
	}
	return edu, nil
}

func (u *profileUsecase) UpdateEducation(ctx context.Context, identity *domain.Identity, edu *domain.Education) error {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return err
	}
	if edu.School == "" {
		return apperror.BadRequest("school is required")
	}
	edu.JobSeekerID = seeker.ID
	if err := u.educations.UpdateOwned(ctx, edu); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("education not found")
		}
		return err
	}
	return nil
}

func (u *profileUsecase) DeleteEducation(ctx context.Context, identity *domain.Identity, id int64) error {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return err
	}
	if err := u.educations.DeleteOwned(ctx, id, seeker.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("education not found")
		}
		return err
	}
	return nil
}

func (u *profileUsecase) ListExperiences(ctx context.Context, identity *domain.Identity) ([]domain.Experience, error) {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return nil, err
	}
	return u.experiences.ListByProfile(ctx, seeker.ID)
}

func (u *profileUsecase) AddExperience(ctx context.Context, identity *domain.Identity, exp *domain.Experience) error {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return err
	}
	if exp.Title == "" {
		return apperror.BadRequest("title is required")
	}
	exp.JobSeekerID = seeker.ID
	return u.experiences.Create(ctx, exp)
}

func (u *profileUsecase) GetExperience(ctx context.Context, identity *domain.Identity, id int64) (*domain.Experience, error) {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return nil, err
	}
	exp, err := u.experiences.GetOwned(ctx, id, seeker.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("experience not found")
		}
		return nil, err
	}
	return exp, nil
}

func (u *profileUsecase) UpdateExperience(ctx context.Context, identity *domain.Identity, exp *domain.Experience) error {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return err
	}
	if exp.Title == "" {
		return apperror.BadRequest("title is required")
	}
	exp.JobSeekerID = seeker.ID
	if err := u.experiences.UpdateOwned(ctx, exp); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("experience not found")
		}
		return err
	}
	return nil
}

func (u *profileUsecase) DeleteExperience(ctx context.Context, identity *domain.Identity, id int64) error {
	seeker, err := requireJobSeeker(identity)
	if err != nil {
		return err
	}
	if err := u.experiences.DeleteOwned(ctx, id, seeker.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("experience not found")
		}
		return err
	}
	return nil
}

// GetTutorialSeen works for either profile kind; both carry the flag.
func (u *profileUsecase) GetTutorialSeen(ctx context.Context, identity *domain.Identity) (bool, error) {
	switch {
	case identity == nil || identity.User == nil:
		return false, apperror.Unauthorized("authentication required")
	case identity.JobSeeker != nil:
		return identity.JobSeeker.HasSeenTutorial, nil
	case identity.Employer != nil:
		return identity.Employer.HasSeenTutorial, nil
	}
	return false, apperror.BadRequest("account has no profile")
}

func (u *profileUsecase) MarkTutorialSeen(ctx context.Context, identity *domain.Identity) error {
	switch {
	case identity == nil || identity.User == nil:
		return apperror.Unauthorized("authentication required")
	case identity.JobSeeker != nil:
		return u.jobSeekers.SetTutorialSeen(ctx, identity.JobSeeker.ID)
	case identity.Employer != nil:
		return u.employers.SetTutorialSeen(ctx, identity.Employer.ID)
	}
	return apperror.BadRequest("account has no profile")
}
