package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultDBTimeout = 5 * time.Second

// Database is the sqlite-backed key/value store holding every persisted blob.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (creating if needed) the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &OpError{Op: "open", Key: path, Err: err}
		}
	}
	conn, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, &OpError{Op: "open", Key: path, Err: err}
	}
	// sqlite serialises writers; one connection avoids SQLITE_BUSY churn.
	conn.SetMaxOpenConns(1)

	d := &Database{DB: conn, dbFile: path}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, &OpError{Op: "ping", Key: path, Err: err}
	}
	if err := d.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return &OpError{Op: "migrate", Key: "kv", Err: fmt.Errorf("%w: %s", err, query)}
		}
	}
	return nil
}

// Close releases the connection. It is safe to call more than once.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	err := d.DB.Close()
	d.DB = nil
	return err
}

// Path returns the file the database was opened from.
func (d *Database) Path() string { return d.dbFile }

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
