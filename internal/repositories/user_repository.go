package repositories

import (
	"database/sql"
	"errors"

	"legalease/internal/config"
	"legalease/internal/domain"
	"legalease/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r UserRepository) GetByEmail(email string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, name, email, COALESCE(phone, ''), password_hash, role, status, created_at, updated_at
		FROM users
		WHERE email = ?
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &hash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, "", domain.NotFoundError{Resource: "user", Err: err}
		}
		return u, "", err
	}
	return u, hash, nil
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, name, email, COALESCE(phone, ''), '', role, status, created_at, updated_at
		FROM users
		WHERE id = ?
	`, id).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, domain.NotFoundError{Resource: "user", Err: err}
		}
		return u, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (r UserRepository) EmailExists(email string) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts an auth account and returns its id. The caller links the
// role-specific profile row (lawyer/customer) to it.
func (r UserRepository) Create(name, email, phone, passwordHash, role string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, email, phone, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 'active', NOW(), NOW())
	`, name, email, phone, passwordHash, role)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
