package domain

import "context"

type EmployerProfile struct {
	ID              int64 `json:"id"`
	UserID          int64 `json:"user_id"`
	HasSeenTutorial bool  `json:"has_seen_tutorial"`
}

type EmployerRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*EmployerProfile, error)
	SetTutorialSeen(ctx context.Context, id int64) error
}
