package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/lo"
	"github.com/shandysiswandi/golaunch/internal/launch/entity"
	"github.com/shandysiswandi/golaunch/internal/launch/source"
	"github.com/shandysiswandi/golaunch/internal/launch/store"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkguid"
	"github.com/spf13/cobra"
)

var errNoOutput = errors.New("at least one of --db or --parquet is required")

type importOptions struct {
	csvPath     string
	dbPath      string
	parquetPath string
}

func newImportCommand() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Convert a CSV launch dataset into SQLite and/or Parquet",
		Long: `Read a launch records CSV file and write its valid rows into a SQLite
dataset file (--db) and/or a Parquet dataset file (--parquet). Either file can
then be served by pointing dataset.path at it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.csvPath, "csv", "", "Source CSV file")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "Target SQLite file")
	cmd.Flags().StringVar(&opts.parquetPath, "parquet", "", "Target Parquet file")
	//nolint:errcheck // flag is defined above
	cmd.MarkFlagRequired("csv")

	return cmd
}

func runImport(cmd *cobra.Command, opts importOptions) error {
	if opts.dbPath == "" && opts.parquetPath == "" {
		return errNoOutput
	}

	ctx := cmd.Context()

	ids, err := pkguid.NewSnowflake()
	if err != nil {
		return fmt.Errorf("init snowflake: %w", err)
	}

	ds, err := source.NewLoader(ids).Load(ctx, opts.csvPath, entity.FormatCSV)
	if err != nil {
		return err
	}

	if opts.dbPath != "" {
		db, err := store.OpenSQLite(ctx, opts.dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.ReplaceRecords(ctx, ds.Records); err != nil {
			return err
		}

		counts, err := db.CountBySite(ctx)
		if err != nil {
			return err
		}
		sites := lo.Keys(counts)
		slices.Sort(sites)
		for _, site := range sites {
			slog.InfoContext(ctx, "imported launches", "site", site, "count", counts[site])
		}
	}

	if opts.parquetPath != "" {
		if err := source.WriteParquet(opts.parquetPath, ds.Records); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d records (%d skipped) from %s\n",
		len(ds.Records), ds.Stats.ParseErr, opts.csvPath)

	return nil
}
