package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PostgresStorage persists carts as JSONB documents keyed by session id.
//
// Expected table:
//
//	CREATE TABLE session_carts (
//	    session_id TEXT PRIMARY KEY,
//	    payload    JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (p *PostgresStorage) Load(ctx context.Context, sessionID string) (Cart, error) {
	var data []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT payload FROM session_carts WHERE session_id = $1`,
		sessionID,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Cart{}, nil
		}
		return Cart{}, err
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (p *PostgresStorage) Save(ctx context.Context, sessionID string, c Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	_, err = p.db.ExecContext(ctx,
		`INSERT INTO session_carts (session_id, payload, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (session_id)
		 DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		sessionID, data,
	)
	return err
}

func (p *PostgresStorage) Delete(ctx context.Context, sessionID string) error {
	_, err := p.db.ExecContext(ctx,
		`DELETE FROM session_carts WHERE session_id = $1`,
		sessionID,
	)
	return err
}
