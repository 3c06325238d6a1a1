package catalogcmd_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/goliatone/go-pagemeta/catalog"
	catalogsvc "github.com/goliatone/go-pagemeta/internal/catalog"
	catalogcmd "github.com/goliatone/go-pagemeta/internal/commands/catalog"
)

type reloadSource struct {
	mu    sync.Mutex
	loads int
}

func (s *reloadSource) Load(context.Context) ([]*catalog.PageRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	return []*catalog.PageRecord{
		{ID: "home", Path: "/", Title: catalog.LocalizedText{EN: "Home"}},
	}, nil
}

func (s *reloadSource) loadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

func TestReloadCatalog_ForcesReload(t *testing.T) {
	source := &reloadSource{}
	store := catalogsvc.NewStore(source)
	store.GetAll(context.Background())

	handler := catalogcmd.NewReloadCatalogHandler(store, nil, catalogcmd.FeatureGates{})
	if err := handler.Execute(context.Background(), catalogcmd.ReloadCatalogCommand{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	store.GetAll(context.Background())
	if got := source.loadCount(); got != 2 {
		t.Fatalf("expected reload after command, got %d loads", got)
	}
}

func TestReloadCatalog_WarmReloadsEagerly(t *testing.T) {
	source := &reloadSource{}
	store := catalogsvc.NewStore(source)
	store.GetAll(context.Background())

	handler := catalogcmd.NewReloadCatalogHandler(store, nil, catalogcmd.FeatureGates{})
	if err := handler.Execute(context.Background(), catalogcmd.ReloadCatalogCommand{Warm: true}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got := source.loadCount(); got != 2 {
		t.Fatalf("expected eager reload, got %d loads", got)
	}
}

func TestReloadCatalog_DisabledGate(t *testing.T) {
	store := catalogsvc.NewStore(&reloadSource{})
	handler := catalogcmd.NewReloadCatalogHandler(store, nil, catalogcmd.FeatureGates{
		CatalogEnabled: func() bool { return false },
	})

	err := handler.Execute(context.Background(), catalogcmd.ReloadCatalogCommand{})
	if err == nil {
		t.Fatalf("expected error when module disabled")
	}
	if !errors.Is(err, catalogcmd.ErrCatalogDisabled) {
		t.Fatalf("expected ErrCatalogDisabled, got %v", err)
	}
}
