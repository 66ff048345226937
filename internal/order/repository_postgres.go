package order

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	cartJSON, err := json.Marshal(ord.Cart)
	if err != nil {
		return Order{}, err
	}

	_, err = r.db.Exec(`INSERT INTO orders (order_id, session_id, cart, quantity, subtotal, discount, shipping_price, grand_price, coupon_code, customer_name, customer_email, shipping_address, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		ord.OrderID, ord.SessionID, cartJSON, ord.Quantity, ord.Subtotal, ord.Discount, ord.ShippingPrice, ord.GrandPrice,
		ord.CouponCode, ord.CustomerName, ord.CustomerEmail, ord.ShippingAddress, ord.Status, ord.CreatedAt, ord.UpdatedAt)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) ListBySession(sessionID string) ([]Order, error) {
	rows, err := r.db.Query(`SELECT order_id, session_id, cart, quantity, subtotal, discount, shipping_price, grand_price, coupon_code, customer_name, customer_email, shipping_address, status, created_at, updated_at
		FROM orders
		WHERE session_id = $1
		ORDER BY created_at`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var (
			ord      Order
			cartJSON []byte
			coupon   sql.NullString
		)
		if err := rows.Scan(&ord.OrderID, &ord.SessionID, &cartJSON, &ord.Quantity, &ord.Subtotal, &ord.Discount, &ord.ShippingPrice, &ord.GrandPrice,
			&coupon, &ord.CustomerName, &ord.CustomerEmail, &ord.ShippingAddress, &ord.Status, &ord.CreatedAt, &ord.UpdatedAt); err != nil {
			return nil, err
		}
		if coupon.Valid {
			ord.CouponCode = coupon.String
		}
		json.Unmarshal(cartJSON, &ord.Cart)
		orders = append(orders, ord)
	}
	return orders, nil
}
