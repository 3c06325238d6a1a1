package catalog

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-pagemeta/catalog"
)

func newTestSource(t *testing.T) *BunSource {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })

	db := NewDB(sqldb, "sqlite3")
	t.Cleanup(func() { _ = db.Close() })

	source, err := NewBunSource(db)
	if err != nil {
		t.Fatalf("NewBunSource: %v", err)
	}
	if err := source.CreateTable(context.Background()); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return source
}

func TestBunSource_SeedAndLoad(t *testing.T) {
	source := newTestSource(t)
	ctx := context.Background()

	if err := source.Seed(ctx, []*catalog.PageRecord{
		{
			ID:       "services",
			Path:     "/services",
			Title:    catalog.LocalizedText{EN: "Services", AR: "الخدمات"},
			Category: "main",
			Order:    3,
			Tags:     []string{"services"},
		},
		{
			ID:       "home",
			Path:     "/",
			Title:    catalog.LocalizedText{EN: "Home"},
			Category: "main",
			Order:    1,
		},
	}); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	records, err := source.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// sort_order drives catalog order, not insertion order.
	if records[0].ID != "home" || records[1].ID != "services" {
		t.Fatalf("unexpected order: %s, %s", records[0].ID, records[1].ID)
	}
	if records[1].Title.AR != "الخدمات" {
		t.Fatalf("Arabic title lost in round trip: %+v", records[1])
	}
	if len(records[1].Tags) != 1 || records[1].Tags[0] != "services" {
		t.Fatalf("tags lost in round trip: %+v", records[1].Tags)
	}
}

func TestBunSource_SeedIsIdempotent(t *testing.T) {
	source := newTestSource(t)
	ctx := context.Background()

	record := &catalog.PageRecord{
		ID:    "about",
		Path:  "/about",
		Title: catalog.LocalizedText{EN: "About"},
	}
	if err := source.Seed(ctx, []*catalog.PageRecord{record}); err != nil {
		t.Fatalf("Seed first: %v", err)
	}

	record.Title.EN = "About Us"
	if err := source.Seed(ctx, []*catalog.PageRecord{record}); err != nil {
		t.Fatalf("Seed second: %v", err)
	}

	records, err := source.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("reseed duplicated the row: %d records", len(records))
	}
	if records[0].Title.EN != "About Us" {
		t.Fatalf("reseed did not update the row: %q", records[0].Title.EN)
	}
}

func TestBunSource_GetByPageID_NotFound(t *testing.T) {
	source := newTestSource(t)

	_, err := source.GetByPageID(context.Background(), "ghost")
	if err == nil {
		t.Fatalf("expected error for missing page id")
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestBunSource_FeedsStore(t *testing.T) {
	source := newTestSource(t)
	ctx := context.Background()

	if err := source.Seed(ctx, demoSQLRecords()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	store := NewStore(source)
	record, err := store.GetByPath(ctx, "/contact")
	if err != nil {
		t.Fatalf("GetByPath via store: %v", err)
	}
	if record.ID != "contact" {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func demoSQLRecords() []*catalog.PageRecord {
	return []*catalog.PageRecord{
		{ID: "home", Path: "/", Title: catalog.LocalizedText{EN: "Home"}, Category: "main", Order: 1},
		{ID: "contact", Path: "/contact", Title: catalog.LocalizedText{EN: "Contact"}, Category: "main", Order: 2},
	}
}
