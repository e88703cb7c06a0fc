package domain

import (
	"context"
	"time"
)

// JobSeekerProfile holds the contact and biography fields a job seeker can
// edit, plus references to uploaded documents. Username is joined from the
// owning user row for display. Educations/Experiences are populated only on
// the public profile read.
type JobSeekerProfile struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	Username        string  `json:"username"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	PhoneNumber     string  `json:"phone_number"`
	Bio             string  `json:"bio"`
	City            string  `json:"city"`
	Country         string  `json:"country"`
	Resume          *string `json:"resume"`
	ProfilePicture  *string `json:"profile_picture"`
	HasSeenTutorial bool    `json:"has_seen_tutorial"`

	Educations  []Education  `json:"educations,omitempty"`
	Experiences []Experience `json:"experiences,omitempty"`
}

// ProfilePatch carries a partial update; nil fields are left untouched.
type ProfilePatch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Bio         *string
	City        *string
	Country     *string
}

type Education struct {
	ID           int64      `json:"id"`
	JobSeekerID  int64      `json:"jobseeker"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

type Experience struct {
	ID          int64      `json:"id"`
	JobSeekerID int64      `json:"jobseeker"`
	Title       string     `json:"title"`
	JobType     string     `json:"job_type"`
	Company     string     `json:"company"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
}

type JobSeekerRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*JobSeekerProfile, error)
	// GetByUsername resolves the public profile, including education and
	// experience collections, by the owning user's username.
	GetByUsername(ctx context.Context, username string) (*JobSeekerProfile, error)
	UpdateFields(ctx context.Context, id int64, patch *ProfilePatch) error
	SetResume(ctx context.Context, id int64, url string) error
	SetProfilePicture(ctx context.Context, id int64, url string) error
	SetTutorialSeen(ctx context.Context, id int64) error
}

// EducationRepository scopes every single-row operation by the owning
// profile id so one seeker can never reach another's records.
type EducationRepository interface {
	ListByProfile(ctx context.Context, profileID int64) ([]Education, error)
	Create(ctx context.Context, edu *Education) error
	GetOwned(ctx context.Context, id, profileID int64) (*Education, error)
	UpdateOwned(ctx context.Context, edu *Education) error
	DeleteOwned(ctx context.Context, id, profileID int64) error
}

type ExperienceRepository interface {
	ListByProfile(ctx context.Context, profileID int64) ([]Experience, error)
	Create(ctx context.Context, exp *Experience) error
	GetOwned(ctx context.Context, id, profileID int64) (*Experience, error)
	UpdateOwned(ctx context.Context, exp *Experience) error
	DeleteOwned(ctx context.Context, id, profileID int64) error
}

// ProfileUsecase covers everything a job seeker manages about themselves,
// plus the tutorial flag shared with employers and the public profile read.
type ProfileUsecase interface {
	GetMyProfile(ctx context.Context, identity *Identity) (*JobSeekerProfile, error)
	EditMyProfile(ctx context.Context, identity *Identity, patch *ProfilePatch) (*JobSeekerProfile, error)
	GetProfileByUsername(ctx context.Context, username string) (*JobSeekerProfile, error)

	AttachResume(ctx context.Context, identity *Identity, filename string, data []byte) (string, error)
	AttachProfilePicture(ctx context.Context, identity *Identity, filename string, data []byte) (string, error)

	ListEducations(ctx context.Context, identity *Identity) ([]Education, error)
	AddEducation(ctx context.Context, identity *Identity, edu *Education) error
	GetEducation(ctx context.Context, identity *Identity, id int64) (*Education, error)
	UpdateEducation(ctx context.Context, identity *Identity, edu *Education) error
	DeleteEducation(ctx context.Context, identity *Identity, id int64) error

	ListExperiences(ctx context.Context, identity *Identity) ([]Experience, error)
	AddExperience(ctx context.Context, identity *Identity, exp *Experience) error
	GetExperience(ctx context.Context, identity *Identity, id int64) (*Experience, error)
	UpdateExperience(ctx context.Context, identity *Identity, exp *Experience) error
	DeleteExperience(ctx context.Context, identity *Identity, id int64) error

	GetTutorialSeen(ctx context.Context, identity *Identity) (bool, error)
	MarkTutorialSeen(ctx context.Context, identity *Identity) error
}
