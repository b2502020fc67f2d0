package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

type migrateInstance interface {
	Up() error
}

var (
	newDatabaseDriver = func(d Dialect, db *sql.DB) (dbdriver.Driver, error) {
		switch d {
		case Postgres:
			return postgres.WithInstance(db, &postgres.Config{})
		case SQLite:
			return sqlite.WithInstance(db, &sqlite.Config{})
		}
		return nil, fmt.Errorf("no migration driver for %q", d)
	}
	iofsNewFn              = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
)

// RunMigrations applies every embedded migration of the url's dialect.
func RunMigrations(url string) error {
	target, err := ParseURL(url)
	if err != nil {
		return err
	}

	sqlDB, err := sqlOpenDB(target.Driver, target.DSN)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	driver, err := newDatabaseDriver(target.Dialect, sqlDB)
	if err != nil {
		return err
	}

	sourceDriver, err := iofsNewFn(migrationsFS, "migrations/"+string(target.Dialect))
	if err != nil {
		return err
	}

	m, err := migrateNewWithInstance("iofs", sourceDriver, string(target.Dialect), driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
