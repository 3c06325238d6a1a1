package catalog_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	catalogsvc "github.com/goliatone/go-pagemeta/internal/catalog"
)

func TestMarkdownSource_Load(t *testing.T) {
	fsys := fstest.MapFS{
		"content/01-home.md": &fstest.MapFile{Data: []byte(`---
id: home
path: /
title: Home
title_ar: الرئيسية
description: Welcome to our company.
category: main
order: 1
---

Body text is ignored when a description is present.
`)},
		"content/02-services.md": &fstest.MapFile{Data: []byte(`---
title: Our Services
category: main
order: 3
tags:
  - services
related:
  - home
---

Everything we offer, from consulting to support.

A second paragraph that must not leak into the description.
`)},
	}

	source, err := catalogsvc.NewMarkdownSource("content", catalogsvc.WithContentFS(fsys))
	if err != nil {
		t.Fatalf("NewMarkdownSource: %v", err)
	}
	records, err := source.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	home := records[0]
	if home.ID != "home" || home.Path != "/" || home.Title.AR != "الرئيسية" {
		t.Fatalf("unexpected home record: %+v", home)
	}
	if home.Description.EN != "Welcome to our company." {
		t.Fatalf("frontmatter description not preferred: %q", home.Description.EN)
	}

	services := records[1]
	if services.ID != "our-services" {
		t.Fatalf("expected slug derived from title, got %q", services.ID)
	}
	if services.Path != "/our-services" {
		t.Fatalf("expected derived path, got %q", services.Path)
	}
	if services.Description.EN != "Everything we offer, from consulting to support." {
		t.Fatalf("expected first body paragraph as description, got %q", services.Description.EN)
	}
	if len(services.Tags) != 1 || services.Tags[0] != "services" {
		t.Fatalf("tags not decoded: %+v", services.Tags)
	}
	if len(services.RelatedPages) != 1 || services.RelatedPages[0] != "home" {
		t.Fatalf("related not decoded: %+v", services.RelatedPages)
	}
}

func TestMarkdownSource_Load_LexicalOrderIsCatalogOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"content/b.md": &fstest.MapFile{Data: []byte("---\ntitle: Beta\n---\n")},
		"content/a.md": &fstest.MapFile{Data: []byte("---\ntitle: Alpha\n---\n")},
	}

	source, err := catalogsvc.NewMarkdownSource("content", catalogsvc.WithContentFS(fsys))
	if err != nil {
		t.Fatalf("NewMarkdownSource: %v", err)
	}
	records, err := source.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 || records[0].ID != "alpha" || records[1].ID != "beta" {
		t.Fatalf("expected lexical file order, got %+v", records)
	}
}

func TestMarkdownSource_Load_BadFrontmatter(t *testing.T) {
	fsys := fstest.MapFS{
		"content/broken.md": &fstest.MapFile{Data: []byte("---\ntitle: [unclosed\n---\n")},
	}

	source, err := catalogsvc.NewMarkdownSource("content", catalogsvc.WithContentFS(fsys))
	if err != nil {
		t.Fatalf("NewMarkdownSource: %v", err)
	}
	if _, err := source.Load(context.Background()); err == nil {
		t.Fatalf("expected frontmatter parse error")
	}
}

func TestMarkdownSource_RequiresDir(t *testing.T) {
	if _, err := catalogsvc.NewMarkdownSource(""); !errors.Is(err, catalogsvc.ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}
