package usecase_test

import (
	"context"

	"simply-jobs-backend/internal/domain"
	"simply-jobs-backend/pkg/auth"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateWithProfile(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobSeekerRepo struct {
	mock.Mock
}

func (m *MockJobSeekerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.JobSeekerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSeekerProfile), args.Error(1)
}
func (m *MockJobSeekerRepo) GetByUsername(ctx context.Context, username string) (*domain.JobSeekerProfile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSeekerProfile), args.Error(1)
}
func (m *MockJobSeekerRepo) UpdateFields(ctx context.Context, id int64, patch *domain.ProfilePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}
func (m *MockJobSeekerRepo) SetResume(ctx context.Context, id int64, url string) error {
	return m.Called(ctx, id, url).Error(0)
}
func (m *MockJobSeekerRepo) SetProfilePicture(ctx context.Context, id int64, url string) error {
	return m.Called(ctx, id, url).Error(0)
}
func (m *MockJobSeekerRepo) SetTutorialSeen(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}
func (m *MockEmployerRepo) SetTutorialSeen(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Fetch(ctx context.Context, filter *domain.JobFilter, employerID *int64) ([]domain.Job, error) {
	args := m.Called(ctx, filter, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) DeleteOwned(ctx context.Context, id, employerID int64) error {
	return m.Called(ctx, id, employerID).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, jobID, jobSeekerID int64) (bool, error) {
	args := m.Called(ctx, jobID, jobSeekerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) ListByJob(ctx context.Context, jobID int64, status *string) ([]domain.Application, error) {
	args := m.Called(ctx, jobID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListBySeeker(ctx context.Context, jobSeekerID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobSeekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatusOwned(ctx context.Context, ids []int64, status string, employerID int64) (int64, error) {
	args := m.Called(ctx, ids, status, employerID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockApplicationRepo) DeleteOwned(ctx context.Context, id, jobSeekerID int64) error {
	return m.Called(ctx, id, jobSeekerID).Error(0)
}

type MockEducationRepo struct {
	mock.Mock
}

func (m *MockEducationRepo) ListByProfile(ctx context.Context, profileID int64) ([]domain.Education, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}
func (m *MockEducationRepo) Create(ctx context.Context, edu *domain.Education) error {
	return m.Called(ctx, edu).Error(0)
}
func (m *MockEducationRepo) GetOwned(ctx context.Context, id, profileID int64) (*domain.Education, error) {
	args := m.Called(ctx, id, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Education), args.Error(1)
}
func (m *MockEducationRepo) UpdateOwned(ctx context.Context, edu *domain.Education) error {
	return m.Called(ctx, edu).Error(0)
}
func (m *MockEducationRepo) DeleteOwned(ctx context.Context, id, profileID int64) error {
	return m.Called(ctx, id, profileID).Error(0)
}

type MockExperienceRepo struct {
	mock.Mock
}

func (m *MockExperienceRepo) ListByProfile(ctx context.Context, profileID int64) ([]domain.Experience, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}
func (m *MockExperienceRepo) Create(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}
func (m *MockExperienceRepo) GetOwned(ctx context.Context, id, profileID int64) (*domain.Experience, error) {
	args := m.Called(ctx, id, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Experience), args.Error(1)
}
func (m *MockExperienceRepo) UpdateOwned(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}
func (m *MockExperienceRepo) DeleteOwned(ctx context.Context, id, profileID int64) error {
	return m.Called(ctx, id, profileID).Error(0)
}

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, prefix, filename string, data []byte) (string, error) {
	args := m.Called(ctx, prefix, filename, data)
	return args.String(0), args.Error(1)
}
func (m *MockBlobStore) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssuePair(userID int64, username, role string) (string, string, error) {
	args := m.Called(userID, username, role)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) Verify(tokenString string) (*auth.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

// Identity helpers shared by the tests.

func seekerIdentity(userID, profileID int64, username string) *domain.Identity {
	return &domain.Identity{
		User:      &domain.User{ID: userID, Username: username, Role: domain.RoleJobSeeker, IsActive: true},
		JobSeeker: &domain.JobSeekerProfile{ID: profileID, UserID: userID, Username: username},
	}
}

func employerIdentity(userID, profileID int64, username string) *domain.Identity {
	return &domain.Identity{
		User:     &domain.User{ID: userID, Username: username, Role: domain.RoleEmployer, IsActive: true},
		Employer: &domain.EmployerProfile{ID: profileID, UserID: userID},
	}
}
