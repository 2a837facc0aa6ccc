package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jmoiron/sqlx"
	"github.com/shandysiswandi/golaunch/internal/launch/entity"
)

func sampleRecords() []entity.Record {
	return []entity.Record{
		{FlightNumber: 1, Site: "CCAFS LC-40", PayloadMass: 0, BoosterCategory: "v1.0", Outcome: entity.OutcomeFailure},
		{FlightNumber: 2, Site: "VAFB SLC-4E", PayloadMass: 500, BoosterCategory: "v1.1", Outcome: entity.OutcomeFailure},
		{FlightNumber: 3, Site: "KSC LC-39A", PayloadMass: 2490, BoosterCategory: "FT", Outcome: entity.OutcomeSuccess},
		{FlightNumber: 4, Site: "KSC LC-39A", PayloadMass: 5300, BoosterCategory: "FT", Outcome: entity.OutcomeSuccess},
	}
}

func openTestSQLite(t *testing.T, path string) *SQLiteStore {
	t.Helper()

	s, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenSQLite() err = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestSQLiteStore_ReplaceAndRead(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t, filepath.Join(t.TempDir(), "launches.db"))

	if err := s.ReplaceRecords(ctx, sampleRecords()); err != nil {
		t.Fatalf("ReplaceRecords() err = %v", err)
	}

	got, err := s.Records(ctx)
	if err != nil {
		t.Fatalf("Records() err = %v", err)
	}
	if diff := cmp.Diff(sampleRecords(), got); diff != "" {
		t.Fatalf("Records() mismatch (-want +got):\n%s", diff)
	}

	counts, err := s.CountBySite(ctx)
	if err != nil {
		t.Fatalf("CountBySite() err = %v", err)
	}
	want := map[string]int{"CCAFS LC-40": 1, "VAFB SLC-4E": 1, "KSC LC-39A": 2}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Fatalf("CountBySite() mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteStore_ReplaceOverwrites(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t, filepath.Join(t.TempDir(), "launches.db"))

	if err := s.ReplaceRecords(ctx, sampleRecords()); err != nil {
		t.Fatalf("ReplaceRecords() err = %v", err)
	}

	second := sampleRecords()[:1]
	if err := s.ReplaceRecords(ctx, second); err != nil {
		t.Fatalf("ReplaceRecords() err = %v", err)
	}

	got, err := s.Records(ctx)
	if err != nil {
		t.Fatalf("Records() err = %v", err)
	}
	if diff := cmp.Diff(second, got); diff != "" {
		t.Fatalf("Records() mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "launches.db")

	first, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite() err = %v", err)
	}
	if err := first.ReplaceRecords(ctx, sampleRecords()); err != nil {
		t.Fatalf("ReplaceRecords() err = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() err = %v", err)
	}

	reopened := openTestSQLite(t, path)
	got, err := reopened.Records(ctx)
	if err != nil {
		t.Fatalf("Records() err = %v", err)
	}
	if len(got) != len(sampleRecords()) {
		t.Fatalf("Records() len = %d, want %d", len(got), len(sampleRecords()))
	}
}

func TestSQLiteStore_RejectsInvalidOutcome(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t, filepath.Join(t.TempDir(), "launches.db"))

	bad := []entity.Record{{Site: "KSC LC-39A", PayloadMass: 10, BoosterCategory: "FT", Outcome: 7}}
	if err := s.ReplaceRecords(ctx, bad); err == nil {
		t.Fatal("ReplaceRecords() expected error, got nil")
	}
}

func createForeignSQLite(t *testing.T, path string, stmts ...string) {
	t.Helper()

	db, err := sqlx.Connect("sqlite", "file:"+path)
	if err != nil {
		t.Fatalf("sqlx.Connect() err = %v", err)
	}
	defer db.Close()

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Exec(%q) err = %v", stmt, err)
		}
	}
}

func sqliteTables(t *testing.T, path string) []string {
	t.Helper()

	db, err := sqlx.Connect("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		t.Fatalf("sqlx.Connect() err = %v", err)
	}
	defer db.Close()

	var tables []string
	if err := db.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`); err != nil {
		t.Fatalf("Select() err = %v", err)
	}
	return tables
}

func TestSQLiteStore_ReadOnly(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "launches.db")

	s := openTestSQLite(t, path)
	if err := s.ReplaceRecords(ctx, sampleRecords()); err != nil {
		t.Fatalf("ReplaceRecords() err = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() err = %v", err)
	}

	ro, err := OpenSQLiteReadOnly(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLiteReadOnly() err = %v", err)
	}
	defer ro.Close()

	got, err := ro.Records(ctx)
	if err != nil {
		t.Fatalf("Records() err = %v", err)
	}
	if diff := cmp.Diff(sampleRecords(), got); diff != "" {
		t.Fatalf("Records() mismatch (-want +got):\n%s", diff)
	}

	if err := ro.ReplaceRecords(ctx, sampleRecords()[:1]); err == nil {
		t.Fatal("ReplaceRecords() on read-only store expected error, got nil")
	}
}

func TestSQLiteStore_ReadOnlyRejectsForeignFile(t *testing.T) {
	tests := []struct {
		name  string
		stmts []string
		want  []string
	}{
		{
			name:  "unrelated tables",
			stmts: []string{`CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)`},
			want:  []string{"notes"},
		},
		{
			name: "launches without migration history",
			stmts: []string{`CREATE TABLE launches (id INTEGER PRIMARY KEY, launch_site TEXT, payload_mass_kg REAL,
				booster_version_category TEXT, class INTEGER, flight_number INTEGER)`},
			want: []string{"launches"},
		},
		{
			name: "outdated migration history",
			stmts: []string{
				`CREATE TABLE launches (id INTEGER PRIMARY KEY)`,
				`CREATE TABLE goose_db_version (id INTEGER PRIMARY KEY AUTOINCREMENT, version_id INTEGER NOT NULL,
					is_applied INTEGER NOT NULL, tstamp TIMESTAMP DEFAULT (datetime('now')))`,
				`INSERT INTO goose_db_version (version_id, is_applied) VALUES (0, 1)`,
			},
			want: []string{"goose_db_version", "launches", "sqlite_sequence"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "foreign.db")
			createForeignSQLite(t, path, tt.stmts...)

			s, err := OpenSQLiteReadOnly(context.Background(), path)
			if !errors.Is(err, ErrNotDataset) {
				if s != nil {
					s.Close()
				}
				t.Fatalf("OpenSQLiteReadOnly() err = %v, want %v", err, ErrNotDataset)
			}

			if diff := cmp.Diff(tt.want, sqliteTables(t, path)); diff != "" {
				t.Fatalf("tables changed (-want +got):\n%s", diff)
			}
		})
	}
}
