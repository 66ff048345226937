package order

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var orderCols = []string{"order_id", "session_id", "cart", "quantity", "subtotal", "discount", "shipping_price", "grand_price", "coupon_code", "customer_name", "customer_email", "shipping_address", "status", "created_at", "updated_at"}

func TestPostgresCreate_InsertsAllColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("INSERT INTO orders").
		WithArgs("ord-1", "sess-1", []byte(`{"1":2}`), 2, 100.0, 10.0, 25.0, 115.0,
			"WELCOME10", "June Okafor", "june@example.com", "12 Cedar Row, Portland, 97201, US", StatusCreated,
			"2026-08-30T10:00:00Z", "2026-08-30T10:00:00Z").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ord := Order{
		OrderID:         "ord-1",
		SessionID:       "sess-1",
		Cart:            map[string]int{"1": 2},
		Quantity:        2,
		Subtotal:        100,
		Discount:        10,
		ShippingPrice:   25,
		GrandPrice:      115,
		CouponCode:      "WELCOME10",
		CustomerName:    "June Okafor",
		CustomerEmail:   "june@example.com",
		ShippingAddress: "12 Cedar Row, Portland, 97201, US",
		Status:          StatusCreated,
		CreatedAt:       "2026-08-30T10:00:00Z",
		UpdatedAt:       "2026-08-30T10:00:00Z",
	}
	if _, err := repo.Create(ord); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresListBySession_ScansCartAndNullCoupon(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(orderCols).
		AddRow("ord-1", "sess-1", []byte(`{"1":2,"3":1}`), 3, 140.0, 14.0, 25.0, 151.0,
			"WELCOME10", "June Okafor", "june@example.com", "12 Cedar Row", StatusCreated, "t1", "t1").
		AddRow("ord-2", "sess-1", []byte(`{"2":1}`), 1, 30.0, 0.0, 25.0, 55.0,
			nil, "June Okafor", "june@example.com", "12 Cedar Row", StatusCreated, "t2", "t2")
	mock.ExpectQuery("SELECT .* FROM orders").WithArgs("sess-1").WillReturnRows(rows)

	orders, err := repo.ListBySession("sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].Cart["1"] != 2 || orders[0].Cart["3"] != 1 {
		t.Fatalf("cart not decoded: %+v", orders[0].Cart)
	}
	if orders[0].CouponCode != "WELCOME10" {
		t.Fatalf("unexpected coupon %q", orders[0].CouponCode)
	}
	if orders[1].CouponCode != "" {
		t.Fatalf("NULL coupon should scan as empty string, got %q", orders[1].CouponCode)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
