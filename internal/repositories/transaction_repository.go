package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"legalease/internal/config"
	"legalease/internal/domain"
	"legalease/internal/domain/models"
)

type TransactionRepository struct {
	DB *sql.DB
}

func (r TransactionRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

type TransactionFilter struct {
	LawyerID   int64
	CustomerID int64
	Status     string
	StartDate  string
	EndDate    string
}

const transactionColumns = `
	id, COALESCE(reference, ''), appointment_id, customer_id, lawyer_id,
	COALESCE(amount, 0), COALESCE(status, 'Pending'), COALESCE(payment_method, ''),
	COALESCE(DATE_FORMAT(paid_at, '%Y-%m-%d %H:%i:%s'), ''),
	COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')`

func scanTransaction(row interface{ Scan(...any) error }) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.ID, &t.Reference, &t.AppointmentID, &t.CustomerID, &t.LawyerID,
		&t.Amount, &t.Status, &t.PaymentMethod, &t.PaidAt, &t.CreatedAt,
	)
	return t, err
}

func (r TransactionRepository) List(f TransactionFilter) ([]models.Transaction, error) {
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
	if d := strings.TrimSpace(f.StartDate); d != "" {
		where = append(where, "DATE(created_at) >= ?")
		args = append(args, d)
	}
	if d := strings.TrimSpace(f.EndDate); d != "" {
		where = append(where, "DATE(created_at) <= ?")
		args = append(args, d)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (r TransactionRepository) GetByID(id int64) (models.Transaction, error) {
	t, err := scanTransaction(r.db().QueryRow(`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return t, domain.NotFoundError{Resource: "transaction", Err: err}
		}
		return t, err
	}
	return t, nil
}

func (r TransactionRepository) Create(t models.Transaction) (int64, string, error) {
	ref := t.Reference
	if strings.TrimSpace(ref) == "" {
		ref = uuid.NewString()
	}
	res, err := r.db().Exec(`
		INSERT INTO transactions
			(reference, appointment_id, customer_id, lawyer_id, amount, status, payment_method, created_at)
		VALUES (?, ?, ?, ?, ?, 'Pending', ?, NOW())
	`, ref, t.AppointmentID, t.CustomerID, t.LawyerID, t.Amount, t.PaymentMethod)
	if err != nil {
		return 0, "", err
	}
	id, err := res.LastInsertId()
	return id, ref, err
}

// SetStatus updates payment status; Success also stamps paid_at.
func (r TransactionRepository) SetStatus(id int64, status string) error {
	var err error
	if status == models.TransactionSuccess {
		_, err = r.db().Exec(`UPDATE transactions SET status = ?, paid_at = NOW() WHERE id = ?`, status, id)
	} else {
		_, err = r.db().Exec(`UPDATE transactions SET status = ? WHERE id = ?`, status, id)
	}
	return err
}

func (r TransactionRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "transaction"}
	}
	return nil
}

// StatusTotal is one row of the admin transaction report.
type StatusTotal struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// TotalsByStatus aggregates count and amount per transaction status within an
// optional date range.
func (r TransactionRepository) TotalsByStatus(startDate, endDate string) ([]StatusTotal, error) {
	where := []string{}
	args := []any{}
	if d := strings.TrimSpace(startDate); d != "" {
		where = append(where, "DATE(created_at) >= ?")
		args = append(args, d)
	}
	if d := strings.TrimSpace(endDate); d != "" {
		where = append(where, "DATE(created_at) <= ?")
		args = append(args, d)
	}

	query := `SELECT COALESCE(status, 'Pending'), COUNT(*), COALESCE(SUM(amount), 0) FROM transactions`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` GROUP BY status ORDER BY status`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []StatusTotal{}
	for rows.Next() {
		var t StatusTotal
		if err := rows.Scan(&t.Status, &t.Count, &t.Amount); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
