package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"legalease/internal/config"
	"legalease/internal/domain"
	"legalease/internal/domain/models"
)

type LawyerRepository struct {
	DB *sql.DB
}

func (r LawyerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// LawyerFilter narrows the lawyer list; zero values mean "no filter".
type LawyerFilter struct {
	Status         string
	Specialization string
	City           string
	Query          string // matches name or specialization
}

const lawyerColumns = `
	id, COALESCE(user_id, 0), COALESCE(name, ''), COALESCE(email, ''), COALESCE(phone, ''),
	COALESCE(city, ''), COALESCE(specialization, ''), COALESCE(bio, ''),
	COALESCE(hourly_rate, 0), COALESCE(commission_percent, 0),
	COALESCE(discount_percent, 0), COALESCE(discount_min_hours, 0),
	COALESCE(rating, 0), COALESCE(review_count, 0), COALESCE(experience_years, 0),
	COALESCE(photo, ''), COALESCE(status, 'Pending'), COALESCE(verify_status, 0),
	COALESCE(DATE_FORMAT(approve_at, '%Y-%m-%d %H:%i:%s'), ''), COALESCE(approve_by, 0),
	COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), ''),
	COALESCE(DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s'), '')`

func scanLawyer(row interface{ Scan(...any) error }) (models.Lawyer, error) {
	var l models.Lawyer
	err := row.Scan(
		&l.ID, &l.UserID, &l.Name, &l.Email, &l.Phone,
		&l.City, &l.Specialization, &l.Bio,
		&l.HourlyRate, &l.CommissionPercent,
		&l.DiscountPercent, &l.DiscountMinHours,
		&l.Rating, &l.ReviewCount, &l.ExperienceYears,
		&l.Photo, &l.Status, &l.VerifyStatus,
		&l.ApproveAt, &l.ApproveBy,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r LawyerRepository) List(f LawyerFilter) ([]models.Lawyer, error) {
	where := []string{}
	args := []any{}

	if s := strings.TrimSpace(f.Status); s != "" {
		where = append(where, "status = ?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.Specialization); s != "" {
		where = append(where, "specialization = ?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.City); s != "" {
		where = append(where, "city = ?")
		args = append(args, s)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		where = append(where, "(name LIKE ? OR specialization LIKE ?)")
		args = append(args, "%"+q+"%", "%"+q+"%")
	}

	query := `SELECT ` + lawyerColumns + ` FROM lawyers`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY rating DESC, id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lawyers := []models.Lawyer{}
	for rows.Next() {
		l, err := scanLawyer(rows)
		if err != nil {
			return nil, err
		}
		lawyers = append(lawyers, l)
	}
	return lawyers, rows.Err()
}

func (r LawyerRepository) GetByID(id int64) (models.Lawyer, error) {
	l, err := scanLawyer(r.db().QueryRow(`SELECT `+lawyerColumns+` FROM lawyers WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return l, domain.NotFoundError{Resource: "lawyer", Err: err}
		}
		return l, err
	}
	return l, nil
}

func (r LawyerRepository) GetByUserID(userID int64) (models.Lawyer, error) {
	l, err := scanLawyer(r.db().QueryRow(`SELECT `+lawyerColumns+` FROM lawyers WHERE user_id = ?`, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return l, domain.NotFoundError{Resource: "lawyer", Err: err}
		}
		return l, err
	}
	return l, nil
}

// Create inserts a lawyer profile. New registrations always start Pending with
// verify_status false, whatever the payload says.
func (r LawyerRepository) Create(l models.Lawyer) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO lawyers
			(user_id, name, email, phone, city, specialization, bio,
			 hourly_rate, commission_percent, discount_percent, discount_min_hours,
			 experience_years, photo, status, verify_status, created_at, updated_at)
		VALUES (NULLIF(?, 0), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'Pending', 0, NOW(), NOW())
	`,
		l.UserID, l.Name, l.Email, l.Phone, l.City, l.Specialization, l.Bio,
		l.HourlyRate, l.CommissionPercent, l.DiscountPercent, l.DiscountMinHours,
		l.ExperienceYears, l.Photo,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r LawyerRepository) Update(id int64, l models.Lawyer) error {
	res, err := r.db().Exec(`
		UPDATE lawyers
		SET name = ?, email = ?, phone = ?, city = ?, specialization = ?, bio = ?,
		    hourly_rate = ?, commission_percent = ?, discount_percent = ?, discount_min_hours = ?,
		    experience_years = ?, photo = ?, updated_at = NOW()
		WHERE id = ?
	`,
		l.Name, l.Email, l.Phone, l.City, l.Specialization, l.Bio,
		l.HourlyRate, l.CommissionPercent, l.DiscountPercent, l.DiscountMinHours,
		l.ExperienceYears, l.Photo, id,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}

// SetApproval performs the one-way Pending -> Approved/Rejected transition.
// The WHERE clause is the guard: zero rows affected means the lawyer was not
// Pending anymore (or does not exist).
func (r LawyerRepository) SetApproval(id int64, status string, verify bool, approvedBy int64) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE lawyers
		SET status = ?, verify_status = ?, approve_at = NOW(), approve_by = ?, updated_at = NOW()
		WHERE id = ? AND status = 'Pending'
	`, status, verify, approvedBy, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SetRating stores the recomputed review average.
func (r LawyerRepository) SetRating(id int64, rating float64, count int) error {
	_, err := r.db().Exec(`
		UPDATE lawyers SET rating = ?, review_count = ?, updated_at = NOW() WHERE id = ?
	`, rating, count, id)
	return err
}

func (r LawyerRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM lawyers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "lawyer"}
	}
	return nil
}
