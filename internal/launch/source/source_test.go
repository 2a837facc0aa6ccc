package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jmoiron/sqlx"
	"github.com/shandysiswandi/golaunch/internal/launch/entity"
	"github.com/shandysiswandi/golaunch/internal/launch/store"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgerror"
)

type fixedID int64

func (f fixedID) Generate() int64 { return int64(f) }

const goodCSV = `,Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category
0,1,CCAFS LC-40,0,0.0,F9 v1.0  B0003,v1.0
1,2,CCAFS LC-40,0,525.0,F9 v1.0  B0005,v1.0
2,3,KSC LC-39A,1,2490.0,F9 FT B1031.1,FT
`

func wantGoodRecords() []entity.Record {
	return []entity.Record{
		{FlightNumber: 1, Site: "CCAFS LC-40", PayloadMass: 0, BoosterCategory: "v1.0", Outcome: entity.OutcomeFailure},
		{FlightNumber: 2, Site: "CCAFS LC-40", PayloadMass: 525, BoosterCategory: "v1.0", Outcome: entity.OutcomeFailure},
		{FlightNumber: 3, Site: "KSC LC-39A", PayloadMass: 2490, BoosterCategory: "FT", Outcome: entity.OutcomeSuccess},
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() err = %v", err)
	}

	return path
}

func newTestLoader() *Loader {
	l := NewLoader(fixedID(7))
	l.now = func() time.Time { return time.Unix(1700000000, 0) }
	return l
}

func TestReadCSV_Valid(t *testing.T) {
	t.Parallel()

	records, stats, err := readCSV(context.Background(), strings.NewReader(goodCSV))
	if err != nil {
		t.Fatalf("readCSV() err = %v", err)
	}

	if diff := cmp.Diff(wantGoodRecords(), records); diff != "" {
		t.Fatalf("readCSV() mismatch (-want +got):\n%s", diff)
	}
	if stats != (entity.LoadStats{TotalLines: 3, ParsedOK: 3}) {
		t.Fatalf("readCSV() stats = %+v", stats)
	}
}

func TestReadCSV_SkipsMalformedRows(t *testing.T) {
	t.Parallel()

	input := `Launch Site,Payload Mass (kg),Booster Version Category,class
CCAFS LC-40,100,v1.0,0
CCAFS LC-40,heavy,v1.0,0
CCAFS LC-40,-5,v1.0,1
CCAFS LC-40,200,v1.0,2
CCAFS LC-40,300,v1.0
,400,FT,1
KSC LC-39A,500,FT,1
`

	records, stats, err := readCSV(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("readCSV() err = %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("readCSV() len = %d, want 2", len(records))
	}
	if stats != (entity.LoadStats{TotalLines: 7, ParsedOK: 2, ParseErr: 5}) {
		t.Fatalf("readCSV() stats = %+v", stats)
	}
	if records[0].FlightNumber != 0 {
		t.Fatalf("FlightNumber = %d, want 0 when column absent", records[0].FlightNumber)
	}
}

func TestReadCSV_HeaderCaseInsensitive(t *testing.T) {
	t.Parallel()

	input := " launch site , PAYLOAD MASS (KG),booster version category,Class\nVAFB SLC-4E,9600,B4,1\n"

	records, _, err := readCSV(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("readCSV() err = %v", err)
	}
	if len(records) != 1 || records[0].Site != "VAFB SLC-4E" || records[0].PayloadMass != 9600 {
		t.Fatalf("readCSV() = %+v", records)
	}
}

func TestReadCSV_MissingColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "no class", input: "Launch Site,Payload Mass (kg),Booster Version Category\nA,1,FT\n"},
		{name: "empty file", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := readCSV(context.Background(), strings.NewReader(tt.input))
			if !errors.Is(err, ErrMissingColumn) {
				t.Fatalf("readCSV() err = %v, want %v", err, ErrMissingColumn)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		body string
		want entity.Format
	}{
		{name: "csv extension", file: "a.csv", body: goodCSV, want: entity.FormatCSV},
		{name: "db extension", file: "a.db", body: "", want: entity.FormatSQLite},
		{name: "sqlite3 extension", file: "a.SQLITE3", body: "", want: entity.FormatSQLite},
		{name: "parquet extension", file: "a.parquet", body: "", want: entity.FormatParquet},
		{name: "sniffed text", file: "launches", body: goodCSV, want: entity.FormatCSV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DetectFormat(writeFile(t, tt.file, tt.body))
			if err != nil {
				t.Fatalf("DetectFormat() err = %v", err)
			}
			if got != tt.want {
				t.Fatalf("DetectFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "blob", "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	_, err := DetectFormat(path)
	if !pkgerror.HasCode(err, pkgerror.CodeUnsupported) {
		t.Fatalf("DetectFormat() err = %v, want unsupported", err)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]entity.Format{"": entity.FormatAuto, "AUTO": entity.FormatAuto, " csv ": entity.FormatCSV, "parquet": entity.FormatParquet} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ParseFormat("xlsx"); !pkgerror.HasCode(err, pkgerror.CodeUnsupported) {
		t.Fatalf("ParseFormat(xlsx) err = %v, want unsupported", err)
	}
}

func TestLoader_LoadCSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "launches.csv", goodCSV)

	ds, err := newTestLoader().Load(context.Background(), path, entity.FormatAuto)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}

	if ds.ID != 7 || ds.Format != entity.FormatCSV || ds.Source != path || ds.LoadedAt != 1700000000 {
		t.Fatalf("Load() = %+v", ds)
	}
	if diff := cmp.Diff(wantGoodRecords(), ds.Records); diff != "" {
		t.Fatalf("Load().Records mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_LoadParquet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "launches.parquet")
	input := append(wantGoodRecords(), entity.Record{Site: "KSC LC-39A", PayloadMass: -1, BoosterCategory: "FT"})
	if err := WriteParquet(path, input); err != nil {
		t.Fatalf("WriteParquet() err = %v", err)
	}

	ds, err := newTestLoader().Load(context.Background(), path, entity.FormatParquet)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}

	if diff := cmp.Diff(wantGoodRecords(), ds.Records); diff != "" {
		t.Fatalf("Load().Records mismatch (-want +got):\n%s", diff)
	}
	if ds.Stats != (entity.LoadStats{TotalLines: 4, ParsedOK: 3, ParseErr: 1}) {
		t.Fatalf("Load().Stats = %+v", ds.Stats)
	}
}

func TestLoader_LoadSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "launches.db")

	db, err := store.OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite() err = %v", err)
	}
	if err := db.ReplaceRecords(ctx, wantGoodRecords()); err != nil {
		t.Fatalf("ReplaceRecords() err = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() err = %v", err)
	}

	ds, err := newTestLoader().Load(ctx, path, entity.FormatAuto)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}

	if ds.Format != entity.FormatSQLite {
		t.Fatalf("Load().Format = %q", ds.Format)
	}
	if diff := cmp.Diff(wantGoodRecords(), ds.Records); diff != "" {
		t.Fatalf("Load().Records mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_LoadForeignSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.db")

	db, err := sqlx.Connect("sqlite", "file:"+path)
	if err != nil {
		t.Fatalf("sqlx.Connect() err = %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)`); err != nil {
		t.Fatalf("Exec() err = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() err = %v", err)
	}

	if _, err := NewLoader(nil).Load(ctx, path, entity.FormatAuto); !errors.Is(err, store.ErrNotDataset) {
		t.Fatalf("Load() err = %v, want %v", err, store.ErrNotDataset)
	}

	ro, err := sqlx.Connect("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		t.Fatalf("sqlx.Connect() err = %v", err)
	}
	defer ro.Close()

	var tables []string
	if err := ro.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`); err != nil {
		t.Fatalf("Select() err = %v", err)
	}
	if diff := cmp.Diff([]string{"notes"}, tables); diff != "" {
		t.Fatalf("Load() modified the dataset file (-want +got):\n%s", diff)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.db")

	if _, err := newTestLoader().Load(context.Background(), missing, entity.FormatSQLite); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load() err = %v, want %v", err, os.ErrNotExist)
	}
	if _, err := os.Stat(missing); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("Load() created the missing sqlite file")
	}
}
