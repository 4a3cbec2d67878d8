package repositories

import (
	"database/sql"

	"legalease/internal/config"
	intdb "legalease/internal/db"
	"legalease/internal/domain/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

func (r ReviewRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r ReviewRepository) ListByLawyer(lawyerID int64) ([]models.Review, error) {
	rows, err := r.db().Query(`
		SELECT id, lawyer_id, customer_id, COALESCE(appointment_id, 0),
		       COALESCE(rating, 0), COALESCE(comment, ''),
		       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM reviews
		WHERE lawyer_id = ?
		ORDER BY id DESC
	`, lawyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.ID, &rev.LawyerID, &rev.CustomerID, &rev.AppointmentID,
			&rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r ReviewRepository) Create(rev models.Review) (int64, error) {
	// Databases migrated before the appointment link existed store reviews
	// without one.
	if !intdb.HasColumn(r.db(), "reviews", "appointment_id") {
		res, err := r.db().Exec(`
			INSERT INTO reviews (lawyer_id, customer_id, rating, comment, created_at)
			VALUES (?, ?, ?, ?, NOW())
		`, rev.LawyerID, rev.CustomerID, rev.Rating, rev.Comment)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}

	res, err := r.db().Exec(`
		INSERT INTO reviews (lawyer_id, customer_id, appointment_id, rating, comment, created_at)
		VALUES (?, ?, NULLIF(?, 0), ?, ?, NOW())
	`, rev.LawyerID, rev.CustomerID, rev.AppointmentID, rev.Rating, rev.Comment)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Average returns the mean rating and review count for a lawyer.
func (r ReviewRepository) Average(lawyerID int64) (float64, int, error) {
	var (
		avg   sql.NullFloat64
		count int
	)
	err := r.db().QueryRow(`
		SELECT AVG(rating), COUNT(*) FROM reviews WHERE lawyer_id = ?
	`, lawyerID).Scan(&avg, &count)
	if err != nil {
		return 0, 0, err
	}
	return avg.Float64, count, nil
}
