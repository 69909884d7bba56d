package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"salary-viz-service/internal/salaries/core/domain"
)

func record() domain.Record {
	return domain.Record{
		ExperienceLevel: "SE",
		EmploymentType:  "FT",
		Salary:          120000,
		CostOfLiving:    domain.Some(70.2),
		Country:         "US",
		CountryCode:     "USA",
		WorkYear:        domain.Some(2023),
	}
}

// ------------------------------------------------------------
// SUCCESS (created)
// ------------------------------------------------------------

func TestRecordWriter_InsertRecord_Created(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "INSERT INTO salaries") {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeResult{rowsAffected: 1}, nil
		},
	}

	created, err := NewRecordWriter(db).InsertRecord(context.Background(), record(), "dk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true, got false")
	}
	if len(db.lastArgs) != 11 {
		t.Fatalf("expected 11 args, got %d", len(db.lastArgs))
	}
	if db.lastArgs[10] != "dk" {
		t.Fatalf("expected dedupe key last, got %v", db.lastArgs[10])
	}
	// boş opsiyonel alanlar NULL yazılır
	if db.lastArgs[3] != nil || db.lastArgs[9] != nil {
		t.Fatalf("expected NULL job_title and remote_ratio, got %v", db.lastArgs)
	}
	if db.lastArgs[7] != 70.2 {
		t.Fatalf("expected cost_of_living 70.2, got %v", db.lastArgs[7])
	}
}

// ------------------------------------------------------------
// DUPLICATE (rowsAffected=0)
// ------------------------------------------------------------

func TestRecordWriter_InsertRecord_Duplicate(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return &fakeResult{rowsAffected: 0}, nil
		},
	}

	created, err := NewRecordWriter(db).InsertRecord(context.Background(), record(), "dk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for duplicate")
	}
}

// ------------------------------------------------------------
// DB ERROR
// ------------------------------------------------------------

func TestRecordWriter_InsertRecord_Error(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return nil, errors.New("db error")
		},
	}

	created, err := NewRecordWriter(db).InsertRecord(context.Background(), record(), "dk")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if created {
		t.Fatalf("expected created=false on error")
	}
}

func TestRecordWriter_EnsureSchema(t *testing.T) {
	db := &fakeDB{}

	if err := NewRecordWriter(db).EnsureSchema(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !db.execCalled || !strings.Contains(db.lastQuery, "CREATE TABLE IF NOT EXISTS salaries") {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "dedupe_key") {
		t.Fatalf("expected dedupe_key column")
	}
}
