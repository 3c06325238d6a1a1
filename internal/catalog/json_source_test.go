package catalog_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	catalogsvc "github.com/goliatone/go-pagemeta/internal/catalog"
	"github.com/goliatone/go-pagemeta/internal/validation"
)

func TestJSONSource_Load(t *testing.T) {
	fsys := fstest.MapFS{
		"pages.json": &fstest.MapFile{Data: []byte(`{
			"pages": [
				{
					"id": "home",
					"path": "/",
					"title": {"en": "Home", "ar": "الرئيسية"},
					"category": "main",
					"order": 1
				},
				{
					"id": "about",
					"path": "/about",
					"title": {"en": "About Us"},
					"tags": ["company"],
					"relatedPages": ["home"]
				}
			]
		}`)},
	}

	source, err := catalogsvc.NewJSONSource("pages.json", catalogsvc.WithFS(fsys))
	if err != nil {
		t.Fatalf("NewJSONSource: %v", err)
	}
	records, err := source.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "home" || records[0].Title.AR != "الرئيسية" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].RelatedPages[0] != "home" {
		t.Fatalf("relatedPages not decoded: %+v", records[1])
	}
}

func TestJSONSource_Load_SchemaViolation(t *testing.T) {
	fsys := fstest.MapFS{
		"pages.json": &fstest.MapFile{Data: []byte(`{
			"pages": [
				{"id": "broken", "path": "no-leading-slash", "title": {"en": "Broken"}}
			]
		}`)},
	}

	source, err := catalogsvc.NewJSONSource("pages.json", catalogsvc.WithFS(fsys))
	if err != nil {
		t.Fatalf("NewJSONSource: %v", err)
	}
	_, err = source.Load(context.Background())
	if err == nil {
		t.Fatalf("expected schema violation")
	}
	if !errors.Is(err, validation.ErrDocumentInvalid) {
		t.Fatalf("expected ErrDocumentInvalid, got %v", err)
	}
}

func TestJSONSource_Load_MalformedJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"pages.json": &fstest.MapFile{Data: []byte(`{"pages": [`)},
	}

	source, err := catalogsvc.NewJSONSource("pages.json", catalogsvc.WithFS(fsys))
	if err != nil {
		t.Fatalf("NewJSONSource: %v", err)
	}
	if _, err := source.Load(context.Background()); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestJSONSource_RequiresPath(t *testing.T) {
	if _, err := catalogsvc.NewJSONSource("  "); !errors.Is(err, catalogsvc.ErrDocumentRequired) {
		t.Fatalf("expected ErrDocumentRequired, got %v", err)
	}
}
