package runtimeconfig

import (
	"errors"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"
)

var ErrCatalogProviderUnknown = errors.New("pagemeta config: catalog provider is invalid")
var ErrCatalogPathRequired = errors.New("pagemeta config: catalog document path is required for the json provider")
var ErrCatalogContentDirRequired = errors.New("pagemeta config: content directory is required for the markdown provider")
var ErrCatalogDatabaseRequired = errors.New("pagemeta config: database handle is required for the sql provider")
var ErrDefaultLanguageInvalid = errors.New("pagemeta config: default language must be en or ar")
var ErrRelatedLimitInvalid = errors.New("pagemeta config: related pages limit must be zero or positive")
var ErrLoggingProviderUnknown = errors.New("pagemeta config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("pagemeta config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("pagemeta config: logging format is invalid")

// Catalog provider identifiers accepted by CatalogConfig.Provider.
const (
	CatalogProviderJSON     = "json"
	CatalogProviderMarkdown = "markdown"
	CatalogProviderSQL      = "sql"
)

// Config aggregates feature flags and adapter bindings for the page metadata
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Enabled         bool
	DefaultLanguage string
	Catalog         CatalogConfig
	Navigation      NavigationConfig
	Related         RelatedConfig
	Logging         LoggingConfig
	Features        Features
}

// CatalogConfig selects and parameterizes the catalog source.
type CatalogConfig struct {
	// Provider is one of json, markdown, or sql. Empty defaults to json.
	Provider string
	// Path locates the JSON catalog document (json provider).
	Path string
	// ContentDir locates the markdown content tree (markdown provider).
	ContentDir string
	// DB supplies the database handle for the sql provider.
	DB *bun.DB
}

// NavigationConfig captures routing configuration for locale-aware URL
// resolution of navigation nodes.
type NavigationConfig struct {
	RouteConfig *urlkit.Config
	URLKit      URLKitResolverConfig
}

// URLKitResolverConfig configures the go-urlkit based resolver.
type URLKitResolverConfig struct {
	DefaultGroup string
	LocaleGroups map[string]string
	Route        string
	PathParam    string
}

// RelatedConfig bounds related-page discovery.
type RelatedConfig struct {
	// DefaultLimit caps related results when the caller does not pass one.
	DefaultLimit int
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	HTTP     bool
	Commands bool
	Logger   bool
}

// DefaultConfig returns the baseline configuration: JSON catalog, English
// default language, related limit of six, logging disabled.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		DefaultLanguage: "en",
		Catalog: CatalogConfig{
			Provider: CatalogProviderJSON,
		},
		Related: RelatedConfig{
			DefaultLimit: 6,
		},
	}
}

// Validate ensures configuration invariants hold before the module boots.
func (c Config) Validate() error {
	switch strings.TrimSpace(c.DefaultLanguage) {
	case "", "en", "ar":
	default:
		return ErrDefaultLanguageInvalid
	}

	if c.Related.DefaultLimit < 0 {
		return ErrRelatedLimitInvalid
	}

	switch strings.TrimSpace(c.Catalog.Provider) {
	case "", CatalogProviderJSON:
		if strings.TrimSpace(c.Catalog.Path) == "" {
			return ErrCatalogPathRequired
		}
	case CatalogProviderMarkdown:
		if strings.TrimSpace(c.Catalog.ContentDir) == "" {
			return ErrCatalogContentDirRequired
		}
	case CatalogProviderSQL:
		if c.Catalog.DB == nil {
			return ErrCatalogDatabaseRequired
		}
	default:
		return ErrCatalogProviderUnknown
	}

	if c.Features.Logger {
		if err := c.Logging.validate(); err != nil {
			return err
		}
	}

	return nil
}

func (l LoggingConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Provider)) {
	case "", "gologger", "console", "noop":
	default:
		return ErrLoggingProviderUnknown
	}

	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	return nil
}
