package postgres

import (
	"context"
	"database/sql"
	"errors"
)

// fakeRowScanner implements RowScanner for tests. A nil value scans as NULL.
type fakeRowScanner struct {
	rows   [][]any
	i      int
	err    error
	closed bool
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		d, ok := dest[i].(*sql.NullString)
		if !ok {
			return errors.New("unsupported dest type")
		}
		switch v := row[i].(type) {
		case nil:
			*d = sql.NullString{}
		case string:
			*d = sql.NullString{String: v, Valid: true}
		default:
			return errors.New("type assertion to string failed")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	f.closed = true
	return nil
}

// fakeResult implements sql.Result for tests.
type fakeResult struct {
	rowsAffected int64
}

func (f *fakeResult) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeResult) RowsAffected() (int64, error) {
	return f.rowsAffected, nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn    func(ctx context.Context, query string, args ...any) (RowScanner, error)
	ExecFn     func(ctx context.Context, query string, args ...any) (sql.Result, error)
	lastQuery  string
	lastArgs   []any
	called     bool
	execCalled bool
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.called = true
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execCalled = true
	f.lastQuery = query
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return &fakeResult{rowsAffected: 1}, nil
}
