package cache

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

type sqliteStore struct{ db *sql.DB }

// openSQLite connects with the modernc.org/sqlite driver and ensures the schema exists.
func openSQLite(ctx context.Context, dsn string) (*sqliteStore, error) {
	path := strings.TrimPrefix(dsn, "sqlite://")
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	dbh, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := dbh.ExecContext(ctx, `PRAGMA journal_mode=WAL;`); err != nil {
		_ = dbh.Close()
		return nil, err
	}
	if err := migrate(ctx, dbh); err != nil {
		_ = dbh.Close()
		return nil, err
	}
	return &sqliteStore{db: dbh}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS renders (
  key TEXT PRIMARY KEY,
  html TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL
);
`)
	return err
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, error) {
	var html string
	err := s.db.QueryRowContext(ctx, `SELECT html FROM renders WHERE key = ?`, key).Scan(&html)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return html, nil
}

func (s *sqliteStore) Put(ctx context.Context, key, html string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO renders(key, html, created_at) VALUES(?, ?, ?)
ON CONFLICT(key) DO UPDATE SET html = excluded.html, created_at = excluded.created_at`,
		key, html, time.Now().UTC())
	return err
}

func (s *sqliteStore) Close() error { return s.db.Close() }
