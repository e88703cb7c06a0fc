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

func TestListJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("Anonymous callers see every posting", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("Fetch", mock.Anything, mock.Anything, (*int64)(nil)).
			Return([]domain.Job{{ID: 1}, {ID: 2}}, nil)
		uc := usecase.NewJobUsecase(jobs)

		result, err := uc.ListJobs(ctx, nil, &domain.JobFilter{})
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		jobs.AssertExpectations(t)
	})

	t.Run("Job seekers see every posting", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("Fetch", mock.Anything, mock.Anything, (*int64)(nil)).
			Return([]domain.Job{{ID: 1}}, nil)
		uc := usecase.NewJobUsecase(jobs)

		_, err := uc.ListJobs(ctx, seekerIdentity(7, 3, "dana"), nil)
		assert.NoError(t, err)
		jobs.AssertExpectations(t)
	})

	t.Run("Employers see only their own postings", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("Fetch", mock.Anything, mock.Anything, mock.MatchedBy(func(id *int64) bool {
			return id != nil && *id == 4
		})).Return([]domain.Job{{ID: 1, EmployerID: 4}}, nil)
		uc := usecase.NewJobUsecase(jobs)

		result, err := uc.ListJobs(ctx, employerIdentity(9, 4, "acme"), nil)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		jobs.AssertExpectations(t)
	})
}

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should force the owner from the identity", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("Create", mock.Anything, mock.MatchedBy(func(j *domain.Job) bool {
			return j.EmployerID == 4
		})).Return(nil)
		uc := usecase.NewJobUsecase(jobs)

		job := &domain.Job{EmployerID: 999, Company: "Acme", Title: "Engineer"}
		err := uc.CreateJob(ctx, employerIdentity(9, 4, "acme"), job)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), job.EmployerID)
	})

	t.Run("Should forbid job seekers", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		err := uc.CreateJob(ctx, seekerIdentity(7, 3, "dana"), &domain.Job{Company: "Acme", Title: "Engineer"})
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
	})

	t.Run("Should reject a negative salary", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		err := uc.CreateJob(ctx, employerIdentity(9, 4, "acme"), &domain.Job{Company: "Acme", Title: "Engineer", Salary: -1})
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
	})
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete an owned posting", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("DeleteOwned", mock.Anything, int64(1), int64(4)).Return(nil)
		uc := usecase.NewJobUsecase(jobs)

		assert.NoError(t, uc.DeleteJob(ctx, employerIdentity(9, 4, "acme"), 1))
	})

	t.Run("A foreign posting reads as not found", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("DeleteOwned", mock.Anything, int64(1), int64(4)).Return(domain.ErrNotFound)
		uc := usecase.NewJobUsecase(jobs)

		err := uc.DeleteJob(ctx, employerIdentity(9, 4, "acme"), 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})

	t.Run("Should forbid job seekers", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		err := uc.DeleteJob(ctx, seekerIdentity(7, 3, "dana"), 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
	})
}
