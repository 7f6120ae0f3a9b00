package store

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresMedium persists planner records in the planner_records table.
// Failures are logged and degrade to absent reads / dropped writes per
// the Medium contract.
type PostgresMedium struct {
	pool *pgxpool.Pool
}

func NewPostgresMedium(pool *pgxpool.Pool) *PostgresMedium {
	return &PostgresMedium{pool: pool}
}

func (m *PostgresMedium) Get(ctx context.Context, key string) (string, bool) {
	var value string
	err := m.pool.QueryRow(ctx,
		"SELECT value FROM planner_records WHERE key = $1", key,
	).Scan(&value)
	if err != nil {
		if err != pgx.ErrNoRows {
			log.Printf("planner store read failed for %q: %v", key, err)
		}
		return "", false
	}
	return value, true
}

func (m *PostgresMedium) Set(ctx context.Context, key, value string) bool {
	_, err := m.pool.Exec(ctx, `
		INSERT INTO planner_records (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, value)
	if err != nil {
		log.Printf("planner store write failed for %q: %v", key, err)
		return false
	}
	return true
}

func (m *PostgresMedium) Delete(ctx context.Context, key string) bool {
	_, err := m.pool.Exec(ctx, "DELETE FROM planner_records WHERE key = $1", key)
	if err != nil {
		log.Printf("planner store delete failed for %q: %v", key, err)
		return false
	}
	return true
}
