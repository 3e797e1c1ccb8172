package database

import (
	"context"
	"database/sql"
	"errors"
)

func (d *Database) Get(ctx context.Context, key string) (string, bool, error) {
	if d.DB == nil {
		return "", false, &OpError{Op: "get", Key: key, Err: ErrClosed}
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var value string
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &OpError{Op: "get", Key: key, Err: err}
	}
	return value, true, nil
}

func (d *Database) Set(ctx context.Context, key, value string) error {
	if d.DB == nil {
		return &OpError{Op: "set", Key: key, Err: ErrClosed}
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	_, err := d.DB.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return &OpError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (d *Database) Delete(ctx context.Context, key string) error {
	if d.DB == nil {
		return &OpError{Op: "delete", Key: key, Err: ErrClosed}
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	if _, err := d.DB.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return &OpError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// Keys lists every stored key in lexical order.
func (d *Database) Keys(ctx context.Context) ([]string, error) {
	if d.DB == nil {
		return nil, &OpError{Op: "keys", Err: ErrClosed}
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, "SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, &OpError{Op: "keys", Err: err}
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, &OpError{Op: "keys", Err: err}
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
