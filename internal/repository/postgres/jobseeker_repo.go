package postgres

import (
	"context"
	"errors"

	"simply-jobs-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobSeekerRepo struct {
	db *pgxpool.Pool
}

func NewJobSeekerRepository(db *pgxpool.Pool) domain.JobSeekerRepository {
	return &jobSeekerRepo{db: db}
}

const jobSeekerColumns = `
	p.id, p.user_id, u.username, p.first_name, p.last_name, p.email,
	p.phone_number, p.bio, p.city, p.country, p.resume, p.profile_picture,
	p.has_seen_tutorial`

func (r *jobSeekerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.JobSeekerProfile, error) {
	query := `SELECT ` + jobSeekerColumns + `
		FROM jobseeker_profiles p
		JOIN users u ON p.user_id = u.id
		WHERE p.user_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

// GetByUsername loads the public profile including its education and
// experience collections, ordered by creation.
func (r *jobSeekerRepo) GetByUsername(ctx context.Context, username string) (*domain.JobSeekerProfile, error) {
	query := `SELECT ` + jobSeekerColumns + `
		FROM jobseeker_profiles p
		JOIN users u ON p.user_id = u.id
		WHERE u.username = $1`
	profile, err := r.scanOne(r.db.QueryRow(ctx, query, username))
	if err != nil {
		return nil, err
	}

	if profile.Educations, err = r.listEducations(ctx, profile.ID); err != nil {
		return nil, err
	}
	if profile.Experiences, err = r.listExperiences(ctx, profile.ID); err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *jobSeekerRepo) scanOne(row pgx.Row) (*domain.JobSeekerProfile, error) {
	var p domain.JobSeekerProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Username, &p.FirstName, &p.LastName, &p.Email,
		&p.PhoneNumber, &p.Bio, &p.City, &p.Country, &p.Resume, &p.ProfilePicture,
		&p.HasSeenTutorial,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// UpdateFields applies the non-nil patch fields via COALESCE so one
// statement covers any combination of edited columns.
func (r *jobSeekerRepo) UpdateFields(ctx context.Context, id int64, patch *domain.ProfilePatch) error {
	query := `UPDATE jobseeker_profiles SET
		first_name   = COALESCE($2, first_name),
		last_name    = COALESCE($3, last_name),
		email        = COALESCE($4, email),
		phone_number = COALESCE($5, phone_number),
		bio          = COALESCE($6, bio),
		city         = COALESCE($7, city),
		country      = COALESCE($8, country)
	WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id,
		patch.FirstName, patch.LastName, patch.Email, patch.PhoneNumber,
		patch.Bio, patch.City, patch.Country,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobSeekerRepo) SetResume(ctx context.Context, id int64, url string) error {
	return r.setColumn(ctx, `UPDATE jobseeker_profiles SET resume = $2 WHERE id = $1`, id, url)
}

func (r *jobSeekerRepo) SetProfilePicture(ctx context.Context, id int64, url string) error {
	return r.setColumn(ctx, `UPDATE jobseeker_profiles SET profile_picture = $2 WHERE id = $1`, id, url)
}

func (r *jobSeekerRepo) SetTutorialSeen(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE jobseeker_profiles SET has_seen_tutorial = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobSeekerRepo) setColumn(ctx context.Context, query string, id int64, url string) error {
	result, err := r.db.Exec(ctx, query, id, url)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobSeekerRepo) listEducations(ctx context.Context, profileID int64) ([]domain.Education, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, jobseeker_id, school, degree, field_of_study, start_date, end_date
		 FROM educations WHERE jobseeker_id = $1 ORDER BY id`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var educations []domain.Education
	for rows.Next() {
		var edu domain.Education
		if err := rows.Scan(&edu.ID, &edu.JobSeekerID, &edu.School, &edu.Degree,
			&edu.FieldOfStudy, &edu.StartDate, &edu.EndDate); err != nil {
			return nil, err
		}
		educations = append(educations, edu)
	}
	return educations, rows.Err()
}

func (r *jobSeekerRepo) listExperiences(ctx context.Context, profileID int64) ([]domain.Experience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, jobseeker_id, title, job_type, company, start_date, end_date, description
		 FROM experiences WHERE jobseeker_id = $1 ORDER BY id`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var experiences []domain.Experience
	for rows.Next() {
		var exp domain.Experience
		if err := rows.Scan(&exp.ID, &exp.JobSeekerID, &exp.Title, &exp.JobType,
			&exp.Company, &exp.StartDate, &exp.EndDate, &exp.Description); err != nil {
			return nil, err
		}
		experiences = append(experiences, exp)
	}
	return experiences, rows.Err()
}
