package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shandysiswandi/golaunch/internal/launch/entity"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgerror"
)

func TestInMemoryStore_Dataset_NotLoaded(t *testing.T) {
	t.Parallel()

	store := NewInMemoryStore()

	_, err := store.Dataset(context.Background())
	if !errors.Is(err, pkgerror.ErrNotFound) {
		t.Fatalf("Dataset() err = %v, want %v", err, pkgerror.ErrNotFound)
	}
}

func TestInMemoryStore_Load_Twice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewInMemoryStore()
	ds := entity.Dataset{ID: 1, Source: "a.csv", Format: entity.FormatCSV}

	if err := store.Load(ctx, ds); err != nil {
		t.Fatalf("Load() err = %v", err)
	}

	err := store.Load(ctx, entity.Dataset{ID: 2})
	if err == nil {
		t.Fatal("Load() expected error, got nil")
	}

	var perr *pkgerror.Error
	if !errors.As(err, &perr) {
		t.Fatalf("Load() expected pkgerror.Error, got %T", err)
	}
	if perr.Code() != pkgerror.CodeConflict {
		t.Fatalf("Load() error code = %v, want %v", perr.Code(), pkgerror.CodeConflict)
	}

	got, err := store.Dataset(ctx)
	if err != nil {
		t.Fatalf("Dataset() err = %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("Dataset().ID = %d, want 1", got.ID)
	}
}

func TestInMemoryStore_Load_CopiesRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewInMemoryStore()
	records := []entity.Record{
		{FlightNumber: 1, Site: "CCAFS LC-40", PayloadMass: 0, BoosterCategory: "v1.0"},
		{FlightNumber: 2, Site: "KSC LC-39A", PayloadMass: 2490, BoosterCategory: "FT", Outcome: entity.OutcomeSuccess},
	}
	want := append([]entity.Record(nil), records...)

	if err := store.Load(ctx, entity.Dataset{Records: records}); err != nil {
		t.Fatalf("Load() err = %v", err)
	}

	records[0].Site = "mutated"

	got, err := store.Dataset(ctx)
	if err != nil {
		t.Fatalf("Dataset() err = %v", err)
	}
	if diff := cmp.Diff(want, got.Records); diff != "" {
		t.Fatalf("Dataset().Records mismatch (-want +got):\n%s", diff)
	}
}
