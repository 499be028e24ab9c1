package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Store keeps rendered HTML keyed by a content digest.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, html string) error
	Close() error
}

var ErrNotFound = errors.New("not found")

// Open returns a Store for dsn: "mem://" for an in-memory store or
// "sqlite://<path>" for a SQLite file.
func Open(ctx context.Context, dsn string) (Store, error) {
	switch {
	case dsn == "" || strings.HasPrefix(dsn, "mem://"):
		return newMemStore(), nil
	case strings.HasPrefix(dsn, "sqlite://"):
		s, err := openSQLite(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported cache dsn %q", dsn)
	}
}
