package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"simply-jobs-backend/internal/domain"
	"simply-jobs-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// minimal valid PDF header for upload tests
var pdfBytes = append([]byte("%PDF-1.4\n"), make([]byte, 64)...)

type profileMocks struct {
	seekers     *MockJobSeekerRepo
	employers   *MockEmployerRepo
	educations  *MockEducationRepo
	experiences *MockExperienceRepo
	blobs       *MockBlobStore
}

func newProfileUsecase() (domain.ProfileUsecase, *profileMocks) {
	m := &profileMocks{
		seekers:     new(MockJobSeekerRepo),
		employers:   new(MockEmployerRepo),
		educations:  new(MockEducationRepo),
		experiences: new(MockExperienceRepo),
		blobs:       new(MockBlobStore),
	}
	uc := usecase.NewProfileUsecase(m.seekers, m.employers, m.educations, m.experiences, m.blobs)
	return uc, m
}

func TestEditMyProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies the patch to the caller's own profile", func(t *testing.T) {
		uc, m := newProfileUsecase()
		first := "Dana"
		patch := &domain.ProfilePatch{FirstName: &first}

		m.seekers.On("UpdateFields", mock.Anything, int64(3), patch).Return(nil)
		m.seekers.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.JobSeekerProfile{
			ID: 3, UserID: 7, FirstName: "Dana",
		}, nil)

		profile, err := uc.EditMyProfile(ctx, seekerIdentity(7, 3, "dana"), patch)
		assert.NoError(t, err)
		assert.Equal(t, "Dana", profile.FirstName)
	})

	t.Run("Forbids employers", func(t *testing.T) {
		uc, _ := newProfileUsecase()
		_, err := uc.EditMyProfile(ctx, employerIdentity(9, 4, "acme"), &domain.ProfilePatch{})
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
	})
}

func TestGetProfileByUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the public profile with history", func(t *testing.T) {
		uc, m := newProfileUsecase()
		m.seekers.On("GetByUsername", mock.Anything, "dana").Return(&domain.JobSeekerProfile{
			ID: 3, Username: "dana",
			Educations:  []domain.Education{{ID: 1, School: "MIT"}},
			Experiences: []domain.Experience{{ID: 2, Title: "Engineer"}},
		}, nil)

		profile, err := uc.GetProfileByUsername(ctx, "dana")
		assert.NoError(t, err)
		assert.Len(t, profile.Educations, 1)
		assert.Len(t, profile.Experiences, 1)
	})

	t.Run("Unknown username is not found", func(t *testing.T) {
		uc, m := newProfileUsecase()
		m.seekers.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.GetProfileByUsername(ctx, "ghost")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}

func TestAttachResume(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores the file and persists the URL", func(t *testing.T) {
		uc, m := newProfileUsecase()
		m.blobs.On("Put", mock.Anything, "resumes", "cv.pdf", pdfBytes).Return("https://blobs/resumes/x.pdf", nil)
		m.seekers.On("SetResume", mock.Anything, int64(3), "https://blobs/resumes/x.pdf").Return(nil)

		url, err := uc.AttachResume(ctx, seekerIdentity(7, 3, "dana"), "cv.pdf", pdfBytes)
		assert.NoError(t, err)
		assert.Equal(t, "https://blobs/resumes/x.pdf", url)
		m.blobs.AssertExpectations(t)
	})

	t.Run("Replacing a resume deletes the previous blob", func(t *testing.T) {
		uc, m := newProfileUsecase()
		identity := seekerIdentity(7, 3, "dana")
		old := "https://blobs/resumes/old.pdf"
		identity.JobSeeker.Resume = &old

		m.blobs.On("Put", mock.Anything, "resumes", "cv.pdf", pdfBytes).Return("https://blobs/resumes/new.pdf", nil)
		m.seekers.On("SetResume", mock.Anything, int64(3), "https://blobs/resumes/new.pdf").Return(nil)
		m.blobs.On("Delete", mock.Anything, old).Return(nil)

		_, err := uc.AttachResume(ctx, identity, "cv.pdf", pdfBytes)
		assert.NoError(t, err)
		m.blobs.AssertCalled(t, "Delete", mock.Anything, old)
	})

	t.Run("Rejects a file whose content does not match the extension", func(t *testing.T) {
		uc, m := newProfileUsecase()
		_, err := uc.AttachResume(ctx, seekerIdentity(7, 3, "dana"), "cv.pdf", []byte("not a pdf at all"))
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		m.blobs.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("An unconfigured blob store reports unavailable instead of panicking", func(t *testing.T) {
		m := &profileMocks{
			seekers:     new(MockJobSeekerRepo),
			employers:   new(MockEmployerRepo),
			educations:  new(MockEducationRepo),
			experiences: new(MockExperienceRepo),
		}
		uc := usecase.NewProfileUsecase(m.seekers, m.employers, m.educations, m.experiences, nil)

		assert.NotPanics(t, func() {
			_, err := uc.AttachResume(ctx, seekerIdentity(7, 3, "dana"), "cv.pdf", pdfBytes)
			assert.Error(t, err)
			assert.Equal(t, http.StatusServiceUnavailable, appErrCode(t, err))
		})

		assert.NotPanics(t, func() {
			_, err := uc.AttachProfilePicture(ctx, seekerIdentity(7, 3, "dana"), "avatar.png", pdfBytes)
			assert.Error(t, err)
		})
	})

	t.Run("Rejects an image posted as a resume", func(t *testing.T) {
		uc, _ := newProfileUsecase()
		png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0}
		_, err := uc.AttachResume(ctx, seekerIdentity(7, 3, "dana"), "cv.png", png)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
	})
}

func TestEducationOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("Create pins the record to the caller's profile", func(t *testing.T) {
		uc, m := newProfileUsecase()
		m.educations.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.Education) bool {
			return e.JobSeekerID == 3
		})).Return(nil)

		edu := &domain.Education{JobSeekerID: 999, School: "MIT"}
		assert.NoError(t, uc.AddEducation(ctx, seekerIdentity(7, 3, "dana"), edu))
		assert.Equal(t, int64(3), edu.JobSeekerID)
	})

	t.Run("Someone else's record reads as not found", func(t *testing.T) {
		uc, m := newProfileUsecase()
		m.educations.On("GetOwned", mock.Anything, int64(42), int64(3)).Return(nil, domain.ErrNotFound)

		_, err := uc.GetEducation(ctx, seekerIdentity(7, 3, "dana"), 42)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})

	t.Run("Employers cannot touch history records", func(t *testing.T) {
		uc, _ := newProfileUsecase()
		err := uc.DeleteExperience(ctx, employerIdentity(9, 4, "acme"), 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
	})
}

func TestTutorialSeen(t *testing.T) {
	ctx := context.Background()

	t.Run("Reads the flag from either profile kind", func(t *testing.T) {
		uc, _ := newProfileUsecase()

		dana := seekerIdentity(7, 3, "dana")
		dana.JobSeeker.HasSeenTutorial = true
		seen, err := uc.GetTutorialSeen(ctx, dana)
		assert.NoError(t, err)
		assert.True(t, seen)

		acme := employerIdentity(9, 4, "acme")
		seen, err = uc.GetTutorialSeen(ctx, acme)
		assert.NoError(t, err)
		assert.False(t, seen)
	})

	t.Run("Marking routes to the right table", func(t *testing.T) {
		uc, m := newProfileUsecase()
		m.seekers.On("SetTutorialSeen", mock.Anything, int64(3)).Return(nil)
		m.employers.On("SetTutorialSeen", mock.Anything, int64(4)).Return(nil)

		assert.NoError(t, uc.MarkTutorialSeen(ctx, seekerIdentity(7, 3, "dana")))
		assert.NoError(t, uc.MarkTutorialSeen(ctx, employerIdentity(9, 4, "acme")))
		m.seekers.AssertExpectations(t)
		m.employers.AssertExpectations(t)
	})

	t.Run("Unauthenticated callers are rejected", func(t *testing.T) {
		uc, _ := newProfileUsecase()
		_, err := uc.GetTutorialSeen(ctx, nil)
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, err))
	})
}
