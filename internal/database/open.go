package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// DefaultURL is used when DATABASE_URL is not set.
const DefaultURL = "sqlite:////tmp/test.db"

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// Target is a parsed DATABASE_URL: which dialect, which database/sql driver
// and the DSN handed to it.
type Target struct {
	Dialect Dialect
	Driver  string
	DSN     string
}

// ParseURL resolves a DATABASE_URL. postgres:// is rewritten to
// postgresql://; sqlite URLs follow the sqlite:///relative and
// sqlite:////absolute convention.
func ParseURL(raw string) (Target, error) {
	if raw == "" {
		raw = DefaultURL
	}
	switch {
	case strings.HasPrefix(raw, "postgres://"):
		return Target{Dialect: Postgres, Driver: "pgx", DSN: "postgresql://" + strings.TrimPrefix(raw, "postgres://")}, nil
	case strings.HasPrefix(raw, "postgresql://"):
		return Target{Dialect: Postgres, Driver: "pgx", DSN: raw}, nil
	case strings.HasPrefix(raw, "sqlite:///"):
		path := strings.TrimPrefix(raw, "sqlite:///")
		if path == "" {
			return Target{}, fmt.Errorf("sqlite url %q has no path", raw)
		}
		return Target{Dialect: SQLite, Driver: "sqlite", DSN: path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"}, nil
	default:
		return Target{}, fmt.Errorf("unsupported database url %q", raw)
	}
}

var sqlOpenDB = sql.Open

// Open parses url, opens the pool and checks it answers a ping.
func Open(ctx context.Context, url string) (DB, error) {
	target, err := ParseURL(url)
	if err != nil {
		return nil, err
	}
	db, err := sqlOpenDB(target.Driver, target.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", target.Dialect, err)
	}
	if target.Dialect == SQLite {
		// one writer at a time; sqlite would answer SQLITE_BUSY otherwise
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", target.Dialect, err)
	}
	return db, nil
}
