package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"legalease/internal/config"
	"legalease/internal/domain"
	"legalease/internal/domain/models"
)

type AppointmentRepository struct {
	DB *sql.DB
}

func (r AppointmentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

type AppointmentFilter struct {
	LawyerID   int64
	CustomerID int64
	Status     string
	Date       string
}

const appointmentColumns = `
	id, lawyer_id, customer_id,
	COALESCE(DATE_FORMAT(appointment_date, '%Y-%m-%d'), ''),
	COALESCE(TIME_FORMAT(appointment_time, '%H:%i'), ''),
	COALESCE(slot_duration, 0), COALESCE(total_price, 0),
	COALESCE(status, 'pending'), COALESCE(notes, ''), COALESCE(is_reviewed, 0),
	COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), ''),
	COALESCE(DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s'), '')`

func scanAppointment(row interface{ Scan(...any) error }) (models.Appointment, error) {
	var a models.Appointment
	err := row.Scan(
		&a.ID, &a.LawyerID, &a.CustomerID,
		&a.AppointmentDate, &a.AppointmentTime,
		&a.SlotDuration, &a.TotalPrice,
		&a.Status, &a.Notes, &a.IsReviewed,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r AppointmentRepository) List(f AppointmentFilter) ([]models.Appointment, error) {
	where := []string{}
	args := []any{}

	if f.LawyerID > 0 {
		where = append(where, "lawyer_id = ?")
		args = append(args, f.LawyerID)
	}
	if f.CustomerID > 0 {
		where = append(where, "customer_id = ?")
		args = append(args, f.CustomerID)
	}
	if s := strings.TrimSpace(f.Status); s != "" {
		where = append(where, "status = ?")
		args = append(args, s)
	}
	if d := strings.TrimSpace(f.Date); d != "" {
		where = append(where, "appointment_date = ?")
		args = append(args, d)
	}

	query := `SELECT ` + appointmentColumns + ` FROM appointments`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY appointment_date DESC, appointment_time DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appts := []models.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func (r AppointmentRepository) GetByID(id int64) (models.Appointment, error) {
	a, err := scanAppointment(r.db().QueryRow(`SELECT `+appointmentColumns+` FROM appointments WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, domain.NotFoundError{Resource: "appointment", Err: err}
		}
		return a, err
	}
	return a, nil
}

// BookSlot inserts a pending appointment only when no live appointment already
// occupies (lawyer, date, time). The conditional INSERT...SELECT is a single
// atomic statement, so two concurrent bookings cannot both pass the guard.
func (r AppointmentRepository) BookSlot(a models.Appointment) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO appointments
			(lawyer_id, customer_id, appointment_date, appointment_time,
			 slot_duration, total_price, status, notes, is_reviewed, created_at, updated_at)
		SELECT ?, ?, ?, ?, ?, ?, 'pending', ?, 0, NOW(), NOW()
		FROM DUAL
		WHERE NOT EXISTS (
			SELECT 1 FROM appointments
			WHERE lawyer_id = ?
			  AND appointment_date = ?
			  AND appointment_time = ?
			  AND status <> 'cancelled'
		)
	`,
		a.LawyerID, a.CustomerID, a.AppointmentDate, a.AppointmentTime,
		a.SlotDuration, a.TotalPrice, a.Notes,
		a.LawyerID, a.AppointmentDate, a.AppointmentTime,
	)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, domain.ConflictError{Resource: "slot", Msg: "already booked for that date and time"}
	}
	return res.LastInsertId()
}

// SetStatus transitions an appointment, guarded by the set of statuses the
// transition may start from. Zero rows affected means the guard failed.
func (r AppointmentRepository) SetStatus(id int64, to string, from ...string) (bool, error) {
	if len(from) == 0 {
		return false, domain.ValidationError{Field: "from", Msg: "transition guard required"}
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(from)), ",")
	args := []any{to}
	for _, s := range from {
		args = append(args, s)
	}
	args = append(args, id)

	res, err := r.db().Exec(
		`UPDATE appointments SET status = ?, updated_at = NOW() WHERE status IN (`+placeholders+`) AND id = ?`,
		args...,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r AppointmentRepository) SetNotes(id int64, notes string) error {
	_, err := r.db().Exec(`UPDATE appointments SET notes = ?, updated_at = NOW() WHERE id = ?`, notes, id)
	return err
}

func (r AppointmentRepository) MarkReviewed(id int64) error {
	_, err := r.db().Exec(`UPDATE appointments SET is_reviewed = 1, updated_at = NOW() WHERE id = ?`, id)
	return err
}

func (r AppointmentRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM appointments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "appointment"}
	}
	return nil
}
