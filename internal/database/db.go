package database

import (
	"context"
	"database/sql"
)

// DB is the slice of *sql.DB the stores and handlers depend on.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PingContext(ctx context.Context) error
	Close() error
}

type FakeDB struct {
	ExecFn     func(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryFn    func(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowFn func(ctx context.Context, query string, args ...any) *sql.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func() error
}

func (f *FakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	panic("unexpected ExecContext")
}

func (f *FakeDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	panic("unexpected QueryContext")
}

func (f *FakeDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	if f.QueryRowFn != nil {
		return f.QueryRowFn(ctx, query, args...)
	}
	panic("unexpected QueryRowContext")
}

func (f *FakeDB) PingContext(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected PingContext")
}

func (f *FakeDB) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
