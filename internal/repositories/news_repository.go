package repositories

import (
	"database/sql"
	"errors"

	"legalease/internal/config"
	intdb "legalease/internal/db"
	"legalease/internal/domain"
	"legalease/internal/domain/models"
)

type NewsRepository struct {
	DB *sql.DB
}

func (r NewsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const newsColumns = `
	id, COALESCE(title, ''), COALESCE(content, ''), COALESCE(image, ''),
	COALESCE(DATE_FORMAT(published_at, '%Y-%m-%d %H:%i:%s'), ''), COALESCE(created_by, 0)`

func scanNews(row interface{ Scan(...any) error }) (models.News, error) {
	var n models.News
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Image, &n.PublishedAt, &n.CreatedBy)
	return n, err
}

func (r NewsRepository) List() ([]models.News, error) {
	rows, err := r.db().Query(`SELECT ` + newsColumns + ` FROM news ORDER BY published_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.News{}
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r NewsRepository) GetByID(id int64) (models.News, error) {
	n, err := scanNews(r.db().QueryRow(`SELECT `+newsColumns+` FROM news WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return n, domain.NotFoundError{Resource: "news", Err: err}
		}
		return n, err
	}
	return n, nil
}

func (r NewsRepository) Create(n models.News) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO news (title, content, image, published_at, created_by)
		VALUES (?, ?, ?, NOW(), NULLIF(?, 0))
	`, n.Title, n.Content, intdb.NullIfEmpty(n.Image), n.CreatedBy)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Replace is a full PUT-style overwrite of a news item.
func (r NewsRepository) Replace(id int64, n models.News) error {
	res, err := r.db().Exec(`
		UPDATE news SET title = ?, content = ?, image = ? WHERE id = ?
	`, n.Title, n.Content, n.Image, id)
	if err != nil {
		return err
	}
	if cnt, _ := res.RowsAffected(); cnt == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}

func (r NewsRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM news WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "news"}
	}
	return nil
}

// ListCities returns the static city reference list. Older databases may not
// carry the table yet; those get an empty list instead of an error.
func (r NewsRepository) ListCities() ([]models.City, error) {
	if !intdb.HasTable(r.db(), "cities") {
		return []models.City{}, nil
	}
	rows, err := r.db().Query(`SELECT id, COALESCE(name, '') FROM cities ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := []models.City{}
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}
