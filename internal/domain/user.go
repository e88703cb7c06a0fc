package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors. Repositories translate driver-level failures into
// these so usecases never inspect SQL state directly.
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
)

// Account roles. A role is fixed at registration; there is no migration
// path between the two.
const (
	RoleJobSeeker = "JOBSEEKER"
	RoleEmployer  = "EMPLOYER"
)

func ValidRole(role string) bool {
	return role == RoleJobSeeker || role == RoleEmployer
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is a resolved authenticated caller: the user row plus the single
// profile kind its role attaches. Registration guarantees exactly one of
// JobSeeker/Employer is non-nil; handlers and usecases branch on which.
type Identity struct {
	User      *User
	JobSeeker *JobSeekerProfile
	Employer  *EmployerProfile
}

type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

type UserRepository interface {
	// CreateWithProfile inserts the user and its empty profile row of the
	// matching kind in a single transaction. Returns ErrDuplicate when the
	// username is taken.
	CreateWithProfile(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// Delete removes the user; profiles, jobs and applications go with it
	// via FK cascade.
	Delete(ctx context.Context, id int64) error
}

type AuthUsecase interface {
	Register(ctx context.Context, username, password, role string) (*User, error)
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// ResolveIdentity loads the user and its attached profile for an
	// authenticated user id. Used by the auth middleware on every request.
	ResolveIdentity(ctx context.Context, userID int64) (*Identity, error)
	// DeleteAccount removes the caller's own account; the profile and
	// everything hanging off it go with it via FK cascade.
	DeleteAccount(ctx context.Context, identity *Identity) error
}
