package coupon

import (
	"database/sql"
)

// PostgresRules reads the coupon rule table from the coupons table.
type PostgresRules struct {
	db *sql.DB
}

func NewPostgresRules(db *sql.DB) *PostgresRules {
	return &PostgresRules{db: db}
}

func (r *PostgresRules) Lookup(code string) (Coupon, error) {
	var (
		c    Coupon
		desc sql.NullString
	)
	err := r.db.QueryRow(`SELECT code, discount_pct, description FROM coupons WHERE code = $1`, code).
		Scan(&c.Code, &c.DiscountPercentage, &desc)
	if err == sql.ErrNoRows {
		return Coupon{}, ErrNotFound
	}
	if err != nil {
		return Coupon{}, err
	}
	if desc.Valid {
		c.Description = desc.String
	}
	return c, nil
}

func (r *PostgresRules) List() ([]Coupon, error) {
	rows, err := r.db.Query(`SELECT code, discount_pct, description FROM coupons ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Coupon, 0)
	for rows.Next() {
		var (
			c    Coupon
			desc sql.NullString
		)
		if err := rows.Scan(&c.Code, &c.DiscountPercentage, &desc); err != nil {
			return nil, err
		}
		if desc.Valid {
			c.Description = desc.String
		}
		out = append(out, c)
	}
	return out, nil
}
