package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shandysiswandi/golaunch/internal/launch/entity"
	"github.com/shandysiswandi/golaunch/internal/launch/store"
)

func readSQLite(ctx context.Context, path string) ([]entity.Record, entity.LoadStats, error) {
	// opening a missing file would create an empty database
	if _, err := os.Stat(path); err != nil {
		return nil, entity.LoadStats{}, fmt.Errorf("opening dataset: %w", err)
	}

	db, err := store.OpenSQLiteReadOnly(ctx, path)
	if err != nil {
		return nil, entity.LoadStats{}, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.WarnContext(ctx, "failed to close sqlite dataset", "error", err)
		}
	}()

	rows, err := db.Records(ctx)
	if err != nil {
		return nil, entity.LoadStats{}, err
	}

	var stats entity.LoadStats
	records := make([]entity.Record, 0, len(rows))

	for _, rec := range rows {
		stats.TotalLines++
		if err := validateRecord(rec); err != nil {
			stats.ParseErr++
			slog.WarnContext(ctx, "failed to parse sqlite row", "row", stats.TotalLines, "error", err)
			continue
		}

		stats.ParsedOK++
		records = append(records, rec)
	}

	return records, stats, nil
}
