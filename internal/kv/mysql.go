package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MySQL stores values in the kv_store table created by database.OpenDBWithDSN.
type MySQL struct {
	db *sql.DB
}

func NewMySQL(db *sql.DB) *MySQL {
	return &MySQL{db: db}
}

func (m *MySQL) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v []byte
	err := m.db.QueryRowContext(ctx, "SELECT v FROM kv_store WHERE k = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kv/mysql: get %s: %w", key, err)
	}
	return v, true, nil
}

func (m *MySQL) Set(ctx context.Context, key string, value []byte) error {
	// Upsert: one row per key.
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO kv_store (k, v) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE v = VALUES(v)`,
		key, value)
	if err != nil {
		return fmt.Errorf("kv/mysql: set %s: %w", key, err)
	}
	return nil
}

func (m *MySQL) Delete(ctx context.Context, key string) error {
	if _, err := m.db.ExecContext(ctx, "DELETE FROM kv_store WHERE k = ?", key); err != nil {
		return fmt.Errorf("kv/mysql: delete %s: %w", key, err)
	}
	return nil
}

func (m *MySQL) Close() error {
	return m.db.Close()
}
