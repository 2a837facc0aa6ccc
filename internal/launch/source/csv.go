package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/shandysiswandi/golaunch/internal/launch/entity"
)

const (
	colFlightNumber    = "flight number"
	colLaunchSite      = "launch site"
	colPayloadMass     = "payload mass (kg)"
	colBoosterCategory = "booster version category"
	colClass           = "class"
)

//nolint:gochecknoglobals // fixed header contract
var requiredColumns = []string{colLaunchSite, colPayloadMass, colBoosterCategory, colClass}

// ErrMissingColumn is returned when the CSV header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

type columns map[string]int

func (c columns) value(row []string, name string) (string, bool) {
	idx, ok := c[name]
	if !ok {
		return "", false
	}
	return strings.TrimSpace(row[idx]), true
}

func readHeader(header []string) (columns, error) {
	cols := make(columns, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	return cols, nil
}

// readCSV parses launch records from r. Malformed rows are logged, counted
// and skipped; a bad header or unreadable stream aborts the load.
func readCSV(ctx context.Context, r io.Reader) ([]entity.Record, entity.LoadStats, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var stats entity.LoadStats

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, stats, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, stats, fmt.Errorf("reading csv header: %w", err)
	}

	cols, err := readHeader(header)
	if err != nil {
		return nil, stats, err
	}

	var records []entity.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			stats.ParseErr++
			slog.WarnContext(ctx, "failed to read csv line", "error", err)
			return nil, stats, fmt.Errorf("reading csv line: %w", err)
		}

		stats.TotalLines++
		rec, err := parseRow(cols, len(header), row)
		if err != nil {
			stats.ParseErr++
			slog.WarnContext(ctx, "failed to parse csv record", "line", stats.TotalLines+1, "error", err)
			continue
		}

		stats.ParsedOK++
		records = append(records, rec)
	}

	return records, stats, nil
}

func parseRow(cols columns, width int, row []string) (entity.Record, error) {
	if len(row) != width {
		return entity.Record{}, fmt.Errorf("expected %d fields, got %d", width, len(row))
	}

	site, _ := cols.value(row, colLaunchSite)
	category, _ := cols.value(row, colBoosterCategory)

	rawMass, _ := cols.value(row, colPayloadMass)
	mass, err := strconv.ParseFloat(rawMass, 64)
	if err != nil {
		return entity.Record{}, fmt.Errorf("invalid payload mass: %w", err)
	}

	rawClass, _ := cols.value(row, colClass)
	outcome, err := parseOutcome(rawClass)
	if err != nil {
		return entity.Record{}, err
	}

	var flight int
	if raw, ok := cols.value(row, colFlightNumber); ok && raw != "" {
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || n != math.Trunc(n) {
			return entity.Record{}, fmt.Errorf("invalid flight number: %q", raw)
		}
		flight = int(n)
	}

	rec := entity.Record{
		FlightNumber:    flight,
		Site:            site,
		PayloadMass:     mass,
		BoosterCategory: category,
		Outcome:         outcome,
	}

	return rec, validateRecord(rec)
}

func parseOutcome(value string) (entity.Outcome, error) {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid class: %q", value)
	}

	switch n {
	case 0:
		return entity.OutcomeFailure, nil
	case 1:
		return entity.OutcomeSuccess, nil
	default:
		return 0, fmt.Errorf("invalid class: %q", value)
	}
}

func validateRecord(rec entity.Record) error {
	switch {
	case rec.Site == "":
		return errors.New("empty launch site")
	case rec.BoosterCategory == "":
		return errors.New("empty booster version category")
	case math.IsNaN(rec.PayloadMass) || math.IsInf(rec.PayloadMass, 0):
		return fmt.Errorf("invalid payload mass: %v", rec.PayloadMass)
	case rec.PayloadMass < 0:
		return fmt.Errorf("negative payload mass: %v", rec.PayloadMass)
	case !rec.Outcome.Valid():
		return fmt.Errorf("invalid class: %d", rec.Outcome)
	default:
		return nil
	}
}
