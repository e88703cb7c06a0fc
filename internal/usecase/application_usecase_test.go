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

func TestApplyToJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create a pending application", func(t *testing.T) {
		apps := new(MockApplicationRepo)
		jobs := new(MockJobRepo)
		jobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, EmployerID: 4}, nil)
		apps.On("Exists", mock.Anything, int64(1), int64(3)).Return(false, nil)
		apps.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Application) bool {
			return a.JobID == 1 && a.JobSeekerID == 3
		})).Return(nil)
		uc := usecase.NewApplicationUsecase(apps, jobs)

		app, err := uc.ApplyToJob(ctx, seekerIdentity(7, 3, "dana"), 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), app.JobSeekerID)
		apps.AssertExpectations(t)
	})

	t.Run("Should forbid employers", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo))
		_, err := uc.ApplyToJob(ctx, employerIdentity(9, 4, "acme"), 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
	})

	t.Run("Unknown job is not found", func(t *testing.T) {
		apps := new(MockApplicationRepo)
		jobs := new(MockJobRepo)
		jobs.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewApplicationUsecase(apps, jobs)

		_, err := uc.ApplyToJob(ctx, seekerIdentity(7, 3, "dana"), 99)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})

	t.Run("Repeat application conflicts on the fast path", func(t *testing.T) {
		apps := new(MockApplicationRepo)
		jobs := new(MockJobRepo)
		jobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1}, nil)
		apps.On("Exists", mock.Anything, int64(1), int64(3)).Return(true, nil)
		uc := usecase.NewApplicationUsecase(apps, jobs)

		_, err := uc.ApplyToJob(ctx, seekerIdentity(7, 3, "dana"), 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
		apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("A concurrent duplicate caught by the constraint also conflicts", func(t *testing.T) {
		apps := new(MockApplicationRepo)
		jobs := new(MockJobRepo)
		jobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1}, nil)
		apps.On("Exists", mock.Anything, int64(1), int64(3)).Return(false, nil)
		apps.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)
		uc := usecase.NewApplicationUsecase(apps, jobs)

		_, err := uc.ApplyToJob(ctx, seekerIdentity(7, 3, "dana"), 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
	})
}

func TestListApplicants(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner sees the applicants", func(t *testing.T) {
		apps := new(MockApplicationRepo)
		jobs := new(MockJobRepo)
		jobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, EmployerID: 4}, nil)
		apps.On("ListByJob", mock.Anything, int64(1), (*string)(nil)).
			Return([]domain.Application{{ID: 10, JobID: 1}}, nil)
		uc := usecase.NewApplicationUsecase(apps, jobs)

		result, err := uc.ListApplicants(ctx, employerIdentity(9, 4, "acme"), 1, nil)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("A foreign job reads as not found", func(t *testing.T) {
		apps := new(MockApplicationRepo)
		jobs := new(MockJobRepo)
		jobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, EmployerID: 555}, nil)
		uc := usecase.NewApplicationUsecase(apps, jobs)

		_, err := uc.ListApplicants(ctx, employerIdentity(9, 4, "acme"), 1, nil)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
		apps.AssertNotCalled(t, "ListByJob", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Bad status filter is rejected", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo))
		bogus := "HIRED"
		_, err := uc.ListApplicants(ctx, employerIdentity(9, 4, "acme"), 1, &bogus)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns how many owned rows actually changed", func(t *testing.T) {
		apps := new(MockApplicationRepo)
		apps.On("UpdateStatusOwned", mock.Anything, []int64{10, 11, 99}, domain.ApplicationStatusShortlisted, int64(4)).
			Return(int64(2), nil)
		uc := usecase.NewApplicationUsecase(apps, new(MockJobRepo))

		updated, err := uc.UpdateStatus(ctx, employerIdentity(9, 4, "acme"), []int64{10, 11, 99}, domain.ApplicationStatusShortlisted)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), updated)
	})

	t.Run("Rejects an unknown status", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo))
		_, err := uc.UpdateStatus(ctx, employerIdentity(9, 4, "acme"), []int64{10}, "HIRED")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
	})

	t.Run("Rejects an empty id list", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo))
		_, err := uc.UpdateStatus(ctx, employerIdentity(9, 4, "acme"), nil, domain.ApplicationStatusRejected)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
	})

	t.Run("Forbids job seekers", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo))
		_, err := uc.UpdateStatus(ctx, seekerIdentity(7, 3, "dana"), []int64{10}, domain.ApplicationStatusRejected)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
	})
}

func TestDeleteApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("Withdraws an owned application", func(t *testing.T) {
		apps := new(MockApplicationRepo)
		apps.On("DeleteOwned", mock.Anything, int64(10), int64(3)).Return(nil)
		uc := usecase.NewApplicationUsecase(apps, new(MockJobRepo))

		assert.NoError(t, uc.DeleteApplication(ctx, seekerIdentity(7, 3, "dana"), 10))
	})

	t.Run("A foreign application reads as not found", func(t *testing.T) {
		apps := new(MockApplicationRepo)
		apps.On("DeleteOwned", mock.Anything, int64(10), int64(3)).Return(domain.ErrNotFound)
		uc := usecase.NewApplicationUsecase(apps, new(MockJobRepo))

		err := uc.DeleteApplication(ctx, seekerIdentity(7, 3, "dana"), 10)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}

// TestHiringFlow drives the whole posting-to-decision path the way the two
// roles experience it: acme posts a job, dana applies, acme reviews and
// shortlists, dana checks back and sees the new status.
func TestHiringFlow(t *testing.T) {
	ctx := context.Background()
	acme := employerIdentity(9, 4, "acme")
	dana := seekerIdentity(7, 3, "dana")

	jobs := new(MockJobRepo)
	apps := new(MockApplicationRepo)
	jobUC := usecase.NewJobUsecase(jobs)
	appUC := usecase.NewApplicationUsecase(apps, jobs)

	// acme posts.
	jobs.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Job).ID = 1
	}).Return(nil)
	job := &domain.Job{Company: "Acme", Title: "Engineer"}
	assert.NoError(t, jobUC.CreateJob(ctx, acme, job))
	assert.Equal(t, int64(1), job.ID)
	assert.Equal(t, int64(4), job.EmployerID)

	// dana applies.
	jobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, EmployerID: 4}, nil)
	apps.On("Exists", mock.Anything, int64(1), int64(3)).Return(false, nil)
	apps.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Application).ID = 10
	}).Return(nil)
	app, err := appUC.ApplyToJob(ctx, dana, 1)
	assert.NoError(t, err)

	// acme reviews the applicants and shortlists dana.
	applicant := "dana"
	apps.On("ListByJob", mock.Anything, int64(1), (*string)(nil)).Return([]domain.Application{
		{ID: 10, JobID: 1, JobSeekerID: 3, Status: domain.ApplicationStatusPending, Applicant: &applicant},
	}, nil)
	pending, err := appUC.ListApplicants(ctx, acme, 1, nil)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)

	apps.On("UpdateStatusOwned", mock.Anything, []int64{10}, domain.ApplicationStatusShortlisted, int64(4)).
		Return(int64(1), nil)
	updated, err := appUC.UpdateStatus(ctx, acme, []int64{app.ID}, domain.ApplicationStatusShortlisted)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	// dana sees the decision.
	apps.On("ListBySeeker", mock.Anything, int64(3)).Return([]domain.Application{
		{ID: 10, JobID: 1, JobSeekerID: 3, Status: domain.ApplicationStatusShortlisted, Job: &domain.Job{ID: 1, Title: "Engineer"}},
	}, nil)
	mine, err := appUC.ListMyApplications(ctx, dana)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, domain.ApplicationStatusShortlisted, mine[0].Status)
}
