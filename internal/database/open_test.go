package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    Target
		wantErr bool
	}{
		{
			name: "default",
			in:   "",
			want: Target{Dialect: SQLite, Driver: "sqlite", DSN: "/tmp/test.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		},
		{
			name: "relative sqlite",
			in:   "sqlite:///blog.db",
			want: Target{Dialect: SQLite, Driver: "sqlite", DSN: "blog.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		},
		{
			name: "postgres scheme rewritten",
			in:   "postgres://u:p@localhost:5432/blog",
			want: Target{Dialect: Postgres, Driver: "pgx", DSN: "postgresql://u:p@localhost:5432/blog"},
		},
		{
			name: "postgresql kept",
			in:   "postgresql://localhost/blog?sslmode=disable",
			want: Target{Dialect: Postgres, Driver: "pgx", DSN: "postgresql://localhost/blog?sslmode=disable"},
		},
		{name: "empty sqlite path", in: "sqlite:///", wantErr: true},
		{name: "unknown scheme", in: "mysql://localhost/blog", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseURL(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestOpen(t *testing.T) {
	t.Cleanup(func() { sqlOpenDB = sql.Open })

	_, err := Open(context.Background(), "mysql://x")
	require.Error(t, err)

	sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
	_, err = Open(context.Background(), "")
	require.ErrorContains(t, err, "open sqlite")

	sqlOpenDB = sql.Open
	db, err := Open(context.Background(), "sqlite:///"+filepath.Join(t.TempDir(), "open.db"))
	require.NoError(t, err)
	require.NoError(t, db.PingContext(context.Background()))
	require.NoError(t, db.Close())
}
