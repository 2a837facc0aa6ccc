package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/parquet-go/parquet-go"
	"github.com/shandysiswandi/golaunch/internal/launch/entity"
)

type parquetRow struct {
	FlightNumber           int64   `parquet:"flight_number"`
	LaunchSite             string  `parquet:"launch_site"`
	PayloadMassKg          float64 `parquet:"payload_mass_kg"`
	BoosterVersionCategory string  `parquet:"booster_version_category"`
	Class                  int64   `parquet:"class"`
}

func readParquet(ctx context.Context, path string) ([]entity.Record, entity.LoadStats, error) {
	rows, err := parquet.ReadFile[parquetRow](path)
	if err != nil {
		return nil, entity.LoadStats{}, fmt.Errorf("reading parquet: %w", err)
	}

	var stats entity.LoadStats
	records := make([]entity.Record, 0, len(rows))

	for _, row := range rows {
		stats.TotalLines++

		rec := entity.Record{
			FlightNumber:    int(row.FlightNumber),
			Site:            row.LaunchSite,
			PayloadMass:     row.PayloadMassKg,
			BoosterCategory: row.BoosterVersionCategory,
			Outcome:         entity.Outcome(row.Class),
		}
		if err := validateRecord(rec); err != nil {
			stats.ParseErr++
			slog.WarnContext(ctx, "failed to parse parquet row", "row", stats.TotalLines, "error", err)
			continue
		}

		stats.ParsedOK++
		records = append(records, rec)
	}

	return records, stats, nil
}

// WriteParquet stores records as a parquet dataset file at path.
func WriteParquet(path string, records []entity.Record) error {
	rows := make([]parquetRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, parquetRow{
			FlightNumber:           int64(rec.FlightNumber),
			LaunchSite:             rec.Site,
			PayloadMassKg:          rec.PayloadMass,
			BoosterVersionCategory: rec.BoosterCategory,
			Class:                  int64(rec.Outcome),
		})
	}

	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("writing parquet: %w", err)
	}

	return nil
}
