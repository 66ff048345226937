package product

import (
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// PostgresRepository implements Repository using the products table.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `product_id, product_name, product_desc, product_price, images, category_id, rating, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (Product, error) {
	var (
		p         Product
		desc      sql.NullString
		imagesRaw []byte
		createdAt sql.NullString
		updatedAt sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &desc, &p.Price, &imagesRaw, &p.CategoryID, &p.Rating, &createdAt, &updatedAt); err != nil {
		return Product{}, err
	}
	if desc.Valid {
		p.Description = desc.String
	}
	if len(imagesRaw) > 0 {
		json.Unmarshal(imagesRaw, &p.Images)
	}
	if createdAt.Valid {
		p.CreatedAt = &createdAt.String
	}
	if updatedAt.Valid {
		p.UpdatedAt = &updatedAt.String
	}
	return p, nil
}

// List returns the whole catalog in insertion order. On query failure it
// returns an empty slice so read endpoints stay resilient.
func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(`SELECT ` + productColumns + ` FROM products ORDER BY product_id`)
	if err != nil {
		logrus.WithError(err).Warn("product: list query failed")
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE product_id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

// ListByIDs returns products matching ids, ordered the same way as the ids
// argument. Unknown ids are simply absent from the result.
func (r *PostgresRepository) ListByIDs(ids []int) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}

	rows, err := r.db.Query(`SELECT `+productColumns+` FROM products
		WHERE product_id = ANY($1::int[])
		ORDER BY array_position($1::int[], product_id)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0, len(ids))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return Product{}, err
	}
	err = r.db.QueryRow(`INSERT INTO products (product_name, product_desc, product_price, images, category_id, rating, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING product_id`,
		p.Name, p.Description, p.Price, imagesJSON, p.CategoryID, p.Rating, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return Product{}, err
	}
	res, err := r.db.Exec(`UPDATE products SET product_name=$1, product_desc=$2, product_price=$3, images=$4, category_id=$5, rating=$6, updated_at=$7
		WHERE product_id=$8`,
		p.Name, p.Description, p.Price, imagesJSON, p.CategoryID, p.Rating, p.UpdatedAt, id)
	if err != nil {
		return Product{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE product_id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Reset clears the table and inserts the provided products, keeping their
// ids when set. Used by dev seeding only.
func (r *PostgresRepository) Reset(products []Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		return err
	}
	for _, p := range products {
		imagesJSON, err := json.Marshal(p.Images)
		if err != nil {
			return err
		}
		if p.ID != 0 {
			_, err = tx.Exec(`INSERT INTO products (product_id, product_name, product_desc, product_price, images, category_id, rating, created_at, updated_at)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
				p.ID, p.Name, p.Description, p.Price, imagesJSON, p.CategoryID, p.Rating, p.CreatedAt, p.UpdatedAt)
		} else {
			_, err = tx.Exec(`INSERT INTO products (product_name, product_desc, product_price, images, category_id, rating, created_at, updated_at)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
				p.Name, p.Description, p.Price, imagesJSON, p.CategoryID, p.Rating, p.CreatedAt, p.UpdatedAt)
		}
		if err != nil {
			return err
		}
	}
	if _, err := tx.Exec(`SELECT setval(pg_get_serial_sequence('products','product_id'), COALESCE((SELECT MAX(product_id) FROM products), 1))`); err != nil {
		return err
	}
	return tx.Commit()
}
