package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// import the SQLite driver to register it with the database/sql package.
	_ "modernc.org/sqlite"
)

type SQLiteStorage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(ctx context.Context, path string) (*SQLiteStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("can't create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	// sqlite allows a single writer
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	st := &SQLiteStorage{Connection: conn}
	if err = st.Init(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return st, nil
}

func (that *SQLiteStorage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS records (name TEXT PRIMARY KEY, payload TEXT NOT NULL)`

	_, err := that.Connection.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *SQLiteStorage) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT payload FROM records WHERE name = ?`

	var value string

	err := that.Connection.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("can't get %s: %w", key, err)
	}

	return value, nil
}

func (that *SQLiteStorage) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO records (name, payload) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`

	if _, err := that.Connection.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("can't set %s: %w", key, err)
	}

	return nil
}

func (that *SQLiteStorage) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM records WHERE name = ?`

	if _, err := that.Connection.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("can't remove %s: %w", key, err)
	}

	return nil
}

func (that *SQLiteStorage) Close() error {
	return that.Connection.Close()
}
