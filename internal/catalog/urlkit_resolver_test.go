package catalog_test

import (
	"context"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-pagemeta/catalog"
	catalogsvc "github.com/goliatone/go-pagemeta/internal/catalog"
)

func newRouteManager() *urlkit.RouteManager {
	return urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "frontend",
				BaseURL: "https://example.com",
				Paths:   map[string]string{"page": "/:path"},
				Groups: []urlkit.GroupConfig{
					{
						Name:  "ar",
						Path:  "/ar",
						Paths: map[string]string{"page": "/:path"},
					},
				},
			},
		},
	})
}

func TestURLKitResolver_DefaultGroup(t *testing.T) {
	resolver := catalogsvc.NewURLKitResolver(catalogsvc.URLKitResolverOptions{
		Manager:      newRouteManager(),
		DefaultGroup: "frontend",
	})

	got := resolver.Resolve(context.Background(), "/about", catalog.LanguageEN)
	if got != "https://example.com/about" {
		t.Fatalf("unexpected url: %q", got)
	}
}

func TestURLKitResolver_LocaleGroup(t *testing.T) {
	resolver := catalogsvc.NewURLKitResolver(catalogsvc.URLKitResolverOptions{
		Manager:      newRouteManager(),
		DefaultGroup: "frontend",
		LocaleGroups: map[string]string{"ar": "frontend.ar"},
	})

	got := resolver.Resolve(context.Background(), "/about", catalog.LanguageAR)
	if got != "https://example.com/ar/about" {
		t.Fatalf("unexpected localized url: %q", got)
	}
}

func TestURLKitResolver_UnknownGroupDegrades(t *testing.T) {
	resolver := catalogsvc.NewURLKitResolver(catalogsvc.URLKitResolverOptions{
		Manager:      newRouteManager(),
		DefaultGroup: "missing",
	})

	if got := resolver.Resolve(context.Background(), "/about", catalog.LanguageEN); got != "" {
		t.Fatalf("expected empty url for unknown group, got %q", got)
	}
}

func TestURLKitResolver_NilManagerDegrades(t *testing.T) {
	resolver := catalogsvc.NewURLKitResolver(catalogsvc.URLKitResolverOptions{
		DefaultGroup: "frontend",
	})

	if got := resolver.Resolve(context.Background(), "/about", catalog.LanguageEN); got != "" {
		t.Fatalf("expected empty url without manager, got %q", got)
	}
}
