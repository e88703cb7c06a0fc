package usecase

import (
	"context"
	"errors"

	"simply-jobs-backend/internal/domain"
	"simply-jobs-backend/pkg/apperror"
	"simply-jobs-backend/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type authUsecase struct {
	users      domain.UserRepository
	jobSeekers domain.JobSeekerRepository
	employers  domain.EmployerRepository
	tokens     auth.TokenService
}

func NewAuthUsecase(
	users domain.UserRepository,
	jobSeekers domain.JobSeekerRepository,
	employers domain.EmployerRepository,
	tokens auth.TokenService,
) domain.AuthUsecase {
	return &authUsecase{
		users:      users,
		jobSeekers: jobSeekers,
		employers:  employers,
		tokens:     tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" {
		return nil, apperror.BadRequest("username is required")
	}
	if len(password) < minPasswordLength {
		return nil, apperror.BadRequest("password must be at least 8 characters")
	}
	if !domain.ValidRole(role) {
		return nil, apperror.BadRequest("account must be JOBSEEKER or EMPLOYER")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := u.users.CreateWithProfile(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("username is already taken")
		}
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("invalid username or password")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("invalid username or password")
	}
	if !user.IsActive {
		return nil, apperror.Unauthorized("account is disabled")
	}

	access, refresh, err := u.tokens.IssuePair(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := u.tokens.Verify(refreshToken)
	if err != nil || claims.TokenType != auth.TokenTypeRefresh {
		return nil, apperror.Unauthorized("invalid refresh token")
	}

	// Re-read the user so a deleted or deactivated account cannot keep
	// minting tokens for the remainder of the refresh window.
	user, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("invalid refresh token")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperror.Unauthorized("account is disabled")
	}

	access, refresh, err := u.tokens.IssuePair(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (u *authUsecase) DeleteAccount(ctx context.Context, identity *domain.Identity) error {
	if identity == nil || identity.User == nil {
		return apperror.Unauthorized("authentication required")
	}
	if err := u.users.Delete(ctx, identity.User.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("account not found")
		}
		return err
	}
	return nil
}

func (u *authUsecase) ResolveIdentity(ctx context.Context, userID int64) (*domain.Identity, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("account no longer exists")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperror.Unauthorized("account is disabled")
	}

	identity := &domain.Identity{User: user}
	switch user.Role {
	case domain.RoleJobSeeker:
		identity.JobSeeker, err = u.jobSeekers.GetByUserID(ctx, userID)
	case domain.RoleEmployer:
		identity.Employer, err = u.employers.GetByUserID(ctx, userID)
	default:
		return nil, apperror.Unauthorized("account has no valid role")
	}
	if err != nil {
		return nil, err
	}
	return identity, nil
}
