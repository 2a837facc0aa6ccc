package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/shandysiswandi/golaunch/internal/launch/entity"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgerror"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkguid"
)

// ParseFormat maps a configured format name to a Format. Empty means auto.
func ParseFormat(value string) (entity.Format, error) {
	switch f := entity.Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "", entity.FormatAuto:
		return entity.FormatAuto, nil
	case entity.FormatCSV, entity.FormatSQLite, entity.FormatParquet:
		return f, nil
	default:
		return "", pkgerror.NewUnsupported(fmt.Sprintf("unsupported dataset format %q", value))
	}
}

// DetectFormat guesses the dataset encoding from the file extension and,
// failing that, from the file content.
func DetectFormat(path string) (entity.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return entity.FormatCSV, nil
	case ".db", ".sqlite", ".sqlite3":
		return entity.FormatSQLite, nil
	case ".parquet":
		return entity.FormatParquet, nil
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("detecting dataset format: %w", err)
	}

	switch {
	case mt.Is("application/vnd.sqlite3"):
		return entity.FormatSQLite, nil
	case mt.Is("application/vnd.apache.parquet"):
		return entity.FormatParquet, nil
	case mt.Is("text/csv"), strings.HasPrefix(mt.String(), "text/"):
		return entity.FormatCSV, nil
	default:
		return "", pkgerror.NewUnsupported(fmt.Sprintf("unsupported dataset content %q", mt.String()))
	}
}

// Loader reads a dataset file into an entity.Dataset.
type Loader struct {
	ids pkguid.NumberID
	now func() time.Time
}

func NewLoader(ids pkguid.NumberID) *Loader {
	return &Loader{ids: ids, now: time.Now}
}

// Load reads every record of the dataset at path. Rows that fail validation
// are skipped and counted; only an unreadable source is an error.
func (l *Loader) Load(ctx context.Context, path string, format entity.Format) (entity.Dataset, error) {
	if format == "" || format == entity.FormatAuto {
		detected, err := DetectFormat(path)
		if err != nil {
			return entity.Dataset{}, err
		}
		format = detected
	}

	var (
		records []entity.Record
		stats   entity.LoadStats
		err     error
	)

	switch format {
	case entity.FormatCSV:
		records, stats, err = l.loadCSV(ctx, path)
	case entity.FormatSQLite:
		records, stats, err = readSQLite(ctx, path)
	case entity.FormatParquet:
		records, stats, err = readParquet(ctx, path)
	default:
		err = pkgerror.NewUnsupported(fmt.Sprintf("unsupported dataset format %q", format))
	}
	if err != nil {
		return entity.Dataset{}, err
	}

	ds := entity.Dataset{
		Source:   path,
		Format:   format,
		Records:  records,
		Stats:    stats,
		LoadedAt: l.now().Unix(),
	}
	if l.ids != nil {
		ds.ID = l.ids.Generate()
	}

	slog.InfoContext(ctx, "dataset loaded",
		"id", ds.ID,
		"source", path,
		"format", format,
		"total_lines", stats.TotalLines,
		"parsed_ok", stats.ParsedOK,
		"parse_err", stats.ParseErr,
	)

	return ds, nil
}

func (l *Loader) loadCSV(ctx context.Context, path string) ([]entity.Record, entity.LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, entity.LoadStats{}, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	return readCSV(ctx, f)
}
