package cart

import (
	"database/sql"
	"encoding/json"
	"strconv"
	"time"
)

// PostgresRepository persists carts in a single jsonb column keyed by
// session id. The map is read, mutated in Go and written back; carts are
// tiny, so a read-modify-write round trip is fine.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) load(sessionID string) (map[int]int, error) {
	var raw []byte
	err := r.db.QueryRow(`SELECT items FROM carts WHERE session_id = $1`, sessionID).Scan(&raw)
	if err == sql.ErrNoRows {
		return map[int]int{}, nil
	}
	if err != nil {
		return nil, err
	}

	// jsonb object keys are strings; convert back to product ids
	asStrings := map[string]int{}
	if err := json.Unmarshal(raw, &asStrings); err != nil {
		return nil, err
	}
	items := make(map[int]int, len(asStrings))
	for k, v := range asStrings {
		id, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		items[id] = v
	}
	return items, nil
}

func (r *PostgresRepository) store(sessionID string, items map[int]int) error {
	asStrings := make(map[string]int, len(items))
	for id, q := range items {
		asStrings[strconv.Itoa(id)] = q
	}
	raw, err := json.Marshal(asStrings)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = r.db.Exec(`INSERT INTO carts (session_id, items, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (session_id) DO UPDATE SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at`,
		sessionID, raw, now)
	return err
}

func (r *PostgresRepository) Add(sessionID string, productID, delta int) ([]Line, error) {
	items, err := r.load(sessionID)
	if err != nil {
		return nil, err
	}
	items[productID] += delta
	if items[productID] <= 0 {
		delete(items, productID)
	}
	if err := r.store(sessionID, items); err != nil {
		return nil, err
	}
	return linesFromMap(items), nil
}

func (r *PostgresRepository) SetQuantity(sessionID string, productID, qty int) ([]Line, error) {
	items, err := r.load(sessionID)
	if err != nil {
		return nil, err
	}
	if qty <= 0 {
		delete(items, productID)
	} else {
		items[productID] = qty
	}
	if err := r.store(sessionID, items); err != nil {
		return nil, err
	}
	return linesFromMap(items), nil
}

func (r *PostgresRepository) Remove(sessionID string, productID int) ([]Line, error) {
	items, err := r.load(sessionID)
	if err != nil {
		return nil, err
	}
	delete(items, productID)
	if err := r.store(sessionID, items); err != nil {
		return nil, err
	}
	return linesFromMap(items), nil
}

func (r *PostgresRepository) Get(sessionID string) ([]Line, error) {
	items, err := r.load(sessionID)
	if err != nil {
		return nil, err
	}
	return linesFromMap(items), nil
}

func (r *PostgresRepository) Clear(sessionID string) error {
	_, err := r.db.Exec(`DELETE FROM carts WHERE session_id = $1`, sessionID)
	return err
}
