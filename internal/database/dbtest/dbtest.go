// Package dbtest hands tests a migrated SQLite database in a temp dir.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"starwars-api/internal/database"

	"github.com/stretchr/testify/require"
)

// New opens a fresh, migrated database that is closed when the test ends.
func New(t testing.TB) database.DB {
	t.Helper()
	url := "sqlite:///" + filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(url))
	db, err := database.Open(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// Planet inserts a planet row and returns its id.
func Planet(t testing.TB, db database.DB, name string, terrain *string) int {
	t.Helper()
	var terrainArg any
	if terrain != nil {
		terrainArg = *terrain
	}
	var id int
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO planets (name, terrain) VALUES ($1, $2) RETURNING id`,
		name, terrainArg,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// Person inserts a people row and returns its id.
func Person(t testing.TB, db database.DB, name, spice string) int {
	t.Helper()
	var id int
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO people (name, spice) VALUES ($1, $2) RETURNING id`,
		name, spice,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// User inserts a user row and returns its id.
func User(t testing.TB, db database.DB, email string) int {
	t.Helper()
	var id int
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO "user" (email, password, is_active) VALUES ($1, $2, $3) RETURNING id`,
		email, "secret", true,
	).Scan(&id)
	require.NoError(t, err)
	return id
}
