package store

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/shandysiswandi/golaunch/internal/launch/entity"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type launchRow struct {
	FlightNumber           int     `db:"flight_number"`
	LaunchSite             string  `db:"launch_site"`
	PayloadMassKg          float64 `db:"payload_mass_kg"`
	BoosterVersionCategory string  `db:"booster_version_category"`
	Class                  int     `db:"class"`
}

// SQLiteStore reads and writes launch records in a SQLite dataset file.
type SQLiteStore struct {
	db *sqlx.DB
}

// ErrNotDataset reports a SQLite file that was not written by the import command
// or carries an older schema than this build expects.
var ErrNotDataset = errors.New("sqlite file is not a launch dataset")

// OpenSQLite connects to the SQLite file at path and applies pending migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path))
	if err != nil {
		return nil, fmt.Errorf("connecting to sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := setupGoose(); err != nil {
		db.Close()
		return nil, err
	}

	if err := goose.UpContext(ctx, db.DB, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// OpenSQLiteReadOnly connects to an existing dataset file without writing to it.
// The file must hold the launches table at the latest embedded migration version.
func OpenSQLiteReadOnly(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite", fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", path))
	if err != nil {
		return nil, fmt.Errorf("connecting to sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := checkSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func setupGoose() error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		return fmt.Errorf("setting dialect for migrations: %w", err)
	}
	return nil
}

func checkSchema(ctx context.Context, db *sqlx.DB) error {
	var tables []string
	query := `SELECT name FROM sqlite_master WHERE type = 'table' AND name IN (?, ?)`
	if err := db.SelectContext(ctx, &tables, query, "launches", goose.TableName()); err != nil {
		return fmt.Errorf("reading sqlite schema: %w", err)
	}

	// GetDBVersion creates a missing version table.
	if len(tables) != 2 {
		return fmt.Errorf("%w: missing launches or %s table", ErrNotDataset, goose.TableName())
	}

	if err := setupGoose(); err != nil {
		return err
	}

	current, err := goose.GetDBVersionContext(ctx, db.DB)
	if err != nil {
		return fmt.Errorf("reading migration version: %w", err)
	}

	migrations, err := goose.CollectMigrations("migrations", 0, goose.MaxVersion)
	if err != nil {
		return fmt.Errorf("collecting migrations: %w", err)
	}
	latest, err := migrations.Last()
	if err != nil {
		return fmt.Errorf("collecting migrations: %w", err)
	}

	if current < latest.Version {
		return fmt.Errorf("%w: schema version %d, want %d", ErrNotDataset, current, latest.Version)
	}

	return nil
}

// Close terminates the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing sqlite: %w", err)
	}
	return nil
}

// ReplaceRecords swaps the stored launches for records in one transaction.
func (s *SQLiteStore) ReplaceRecords(ctx context.Context, records []entity.Record) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	//nolint:errcheck // no-op after commit
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM launches`); err != nil {
		return fmt.Errorf("clearing launches: %w", err)
	}

	const insert = `INSERT INTO launches (flight_number, launch_site, payload_mass_kg, booster_version_category, class)
		VALUES (:flight_number, :launch_site, :payload_mass_kg, :booster_version_category, :class)`

	for _, rec := range records {
		row := launchRow{
			FlightNumber:           rec.FlightNumber,
			LaunchSite:             rec.Site,
			PayloadMassKg:          rec.PayloadMass,
			BoosterVersionCategory: rec.BoosterCategory,
			Class:                  int(rec.Outcome),
		}
		if _, err := tx.NamedExecContext(ctx, insert, row); err != nil {
			return fmt.Errorf("inserting flight %d: %w", rec.FlightNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing launches: %w", err)
	}

	return nil
}

// Records returns every stored launch in insertion order.
func (s *SQLiteStore) Records(ctx context.Context) ([]entity.Record, error) {
	var rows []launchRow
	query := `SELECT flight_number, launch_site, payload_mass_kg, booster_version_category, class
		FROM launches ORDER BY id`

	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("selecting launches: %w", err)
	}

	records := make([]entity.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, entity.Record{
			FlightNumber:    row.FlightNumber,
			Site:            row.LaunchSite,
			PayloadMass:     row.PayloadMassKg,
			BoosterCategory: row.BoosterVersionCategory,
			Outcome:         entity.Outcome(row.Class),
		})
	}

	return records, nil
}

// CountBySite returns how many launches each site has.
func (s *SQLiteStore) CountBySite(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Site  string `db:"launch_site"`
		Total int    `db:"total"`
	}
	query := `SELECT launch_site, COUNT(*) AS total FROM launches GROUP BY launch_site`

	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("counting launches by site: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Site] = row.Total
	}

	return counts, nil
}
