package repositories

import (
	"database/sql"
	"errors"

	"legalease/internal/config"
	"legalease/internal/domain"
	"legalease/internal/domain/models"
)

type CustomerRepository struct {
	DB *sql.DB
}

func (r CustomerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const customerColumns = `
	id, COALESCE(user_id, 0), COALESCE(fullname, ''), COALESCE(email, ''),
	COALESCE(phone, ''), COALESCE(address, ''), COALESCE(status, 'Active'),
	COALESCE(DATE_FORMAT(register_date, '%Y-%m-%d'), '')`

func scanCustomer(row interface{ Scan(...any) error }) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(&c.ID, &c.UserID, &c.Fullname, &c.Email, &c.Phone, &c.Address, &c.Status, &c.RegisterDate)
	return c, err
}

func (r CustomerRepository) List() ([]models.Customer, error) {
	rows, err := r.db().Query(`SELECT ` + customerColumns + ` FROM customers ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r CustomerRepository) GetByID(id int64) (models.Customer, error) {
	c, err := scanCustomer(r.db().QueryRow(`SELECT `+customerColumns+` FROM customers WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, domain.NotFoundError{Resource: "customer", Err: err}
		}
		return c, err
	}
	return c, nil
}

func (r CustomerRepository) GetByUserID(userID int64) (models.Customer, error) {
	c, err := scanCustomer(r.db().QueryRow(`SELECT `+customerColumns+` FROM customers WHERE user_id = ?`, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, domain.NotFoundError{Resource: "customer", Err: err}
		}
		return c, err
	}
	return c, nil
}

func (r CustomerRepository) Create(c models.Customer) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO customers (user_id, fullname, email, phone, address, status, register_date)
		VALUES (NULLIF(?, 0), ?, ?, ?, ?, 'Active', CURDATE())
	`, c.UserID, c.Fullname, c.Email, c.Phone, c.Address)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r CustomerRepository) Update(id int64, c models.Customer) error {
	res, err := r.db().Exec(`
		UPDATE customers
		SET fullname = ?, email = ?, phone = ?, address = ?, status = ?
		WHERE id = ?
	`, c.Fullname, c.Email, c.Phone, c.Address, c.Status, id)
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

func (r CustomerRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "customer"}
	}
	return nil
}
