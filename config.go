package pagemeta

import (
	"github.com/goliatone/go-pagemeta/internal/runtimeconfig"
)

// Config exports the module configuration for consumers of the pagemeta package.
type Config = runtimeconfig.Config

// CatalogConfig exports the catalog source configuration.
type CatalogConfig = runtimeconfig.CatalogConfig

// NavigationConfig exports the navigation routing configuration.
type NavigationConfig = runtimeconfig.NavigationConfig

// URLKitResolverConfig exports the go-urlkit resolver configuration.
type URLKitResolverConfig = runtimeconfig.URLKitResolverConfig

// RelatedConfig exports the related-pages configuration.
type RelatedConfig = runtimeconfig.RelatedConfig

// LoggingConfig exports the logging configuration.
type LoggingConfig = runtimeconfig.LoggingConfig

// Features exports the module feature toggles.
type Features = runtimeconfig.Features

// Catalog provider identifiers accepted by CatalogConfig.Provider.
const (
	CatalogProviderJSON     = runtimeconfig.CatalogProviderJSON
	CatalogProviderMarkdown = runtimeconfig.CatalogProviderMarkdown
	CatalogProviderSQL      = runtimeconfig.CatalogProviderSQL
)

// DefaultConfig returns the baseline module configuration.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
