// Package pagemeta provides bilingual page metadata for marketing sites:
// a cached page catalog plus navigation trees, breadcrumbs, related pages,
// sibling links, and ranked search, with English/Arabic localization.
package pagemeta

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-pagemeta/catalog"
	catalogsvc "github.com/goliatone/go-pagemeta/internal/catalog"
	catalogcmd "github.com/goliatone/go-pagemeta/internal/commands/catalog"
	pmhttp "github.com/goliatone/go-pagemeta/internal/http"
	"github.com/goliatone/go-pagemeta/internal/logging"
	"github.com/goliatone/go-pagemeta/internal/logging/console"
	"github.com/goliatone/go-pagemeta/internal/logging/gologger"
	"github.com/goliatone/go-pagemeta/internal/runtimeconfig"
	"github.com/goliatone/go-pagemeta/pkg/interfaces"
)

// ErrModuleDisabled indicates the module was constructed with Enabled false.
var ErrModuleDisabled = errors.New("pagemeta: module is disabled")

// Service exports the metadata service contract for consumers of the
// pagemeta package.
type Service = catalogsvc.Service

// Language exports the supported language type.
type Language = catalog.Language

// PageRecord exports the catalog record DTO.
type PageRecord = catalog.PageRecord

// LocalizedText exports the bilingual text pair.
type LocalizedText = catalog.LocalizedText

// NavigationNode exports the navigation tree node DTO.
type NavigationNode = catalog.NavigationNode

// BreadcrumbItem exports the breadcrumb trail entry DTO.
type BreadcrumbItem = catalog.BreadcrumbItem

// PageSiblings exports the previous/next sibling pair DTO.
type PageSiblings = catalog.PageSiblings

// NavigationQuery exports the navigation query options.
type NavigationQuery = catalogsvc.NavigationQuery

// Source exports the catalog source contract so hosts can plug custom
// backends.
type Source = catalogsvc.Source

// Module is the top level page metadata runtime façade.
type Module struct {
	cfg      runtimeconfig.Config
	provider interfaces.LoggerProvider
	store    *catalogsvc.Store
	service  catalogsvc.Service
	api      *pmhttp.API
	reload   *catalogcmd.ReloadCatalogHandler
}

// Option overrides pieces of the default wiring.
type Option func(*moduleOptions)

type moduleOptions struct {
	source      catalogsvc.Source
	provider    interfaces.LoggerProvider
	resolver    catalogsvc.NavigationURLResolver
	exposeError bool
}

// WithSource replaces the config-selected catalog source with a custom one.
func WithSource(source catalogsvc.Source) Option {
	return func(o *moduleOptions) {
		o.source = source
	}
}

// WithLoggerProvider injects a host logger provider instead of the one built
// from LoggingConfig.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		o.provider = provider
	}
}

// WithURLResolver overrides the navigation URL resolver.
func WithURLResolver(resolver catalogsvc.NavigationURLResolver) Option {
	return func(o *moduleOptions) {
		o.resolver = resolver
	}
}

// WithExposedErrorDetails includes raw error text in HTTP INTERNAL_ERROR
// responses. Intended for local debugging only.
func WithExposedErrorDetails() Option {
	return func(o *moduleOptions) {
		o.exposeError = true
	}
}

// New constructs the page metadata module from configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if !cfg.Enabled {
		return nil, ErrModuleDisabled
	}

	options := &moduleOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	if options.source == nil {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	} else if err := cfg.Validate(); err != nil && !isCatalogBindingError(err) {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		built, err := buildLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	source := options.source
	if source == nil {
		built, err := buildSource(cfg.Catalog)
		if err != nil {
			return nil, err
		}
		source = built
	}

	store := catalogsvc.NewStore(source,
		catalogsvc.WithStoreLogger(logging.CatalogLogger(provider)),
	)

	resolver := options.resolver
	if resolver == nil && cfg.Navigation.RouteConfig != nil {
		manager := urlkit.NewRouteManager(cfg.Navigation.RouteConfig)
		resolver = catalogsvc.NewURLKitResolver(catalogsvc.URLKitResolverOptions{
			Manager:      manager,
			DefaultGroup: strings.TrimSpace(cfg.Navigation.URLKit.DefaultGroup),
			LocaleGroups: cfg.Navigation.URLKit.LocaleGroups,
			Route:        strings.TrimSpace(cfg.Navigation.URLKit.Route),
			PathParam:    strings.TrimSpace(cfg.Navigation.URLKit.PathParam),
		})
	}

	serviceOpts := []catalogsvc.ServiceOption{
		catalogsvc.WithLogger(logging.CatalogLogger(provider)),
	}
	if resolver != nil {
		serviceOpts = append(serviceOpts, catalogsvc.WithURLResolver(resolver))
	}
	if cfg.Related.DefaultLimit > 0 {
		serviceOpts = append(serviceOpts, catalogsvc.WithRelatedLimit(cfg.Related.DefaultLimit))
	}
	service := catalogsvc.NewService(store, serviceOpts...)

	m := &Module{
		cfg:      cfg,
		provider: provider,
		store:    store,
		service:  service,
	}

	if cfg.Features.HTTP {
		apiOpts := []pmhttp.Option{
			pmhttp.WithLogger(logging.HTTPLogger(provider)),
			pmhttp.WithDefaultLanguage(catalog.NormalizeLanguage(cfg.DefaultLanguage)),
		}
		if options.exposeError {
			apiOpts = append(apiOpts, pmhttp.WithExposeErrorDetails(true))
		}
		m.api = pmhttp.NewAPI(service, apiOpts...)
	}

	if cfg.Features.Commands {
		m.reload = catalogcmd.NewReloadCatalogHandler(store, logging.CatalogLogger(provider), catalogcmd.FeatureGates{
			CatalogEnabled: func() bool { return cfg.Enabled },
		})
	}

	return m, nil
}

// Service returns the page metadata service.
func (m *Module) Service() Service {
	if m == nil {
		return nil
	}
	return m.service
}

// Store returns the catalog store for administrative operations.
func (m *Module) Store() *catalogsvc.Store {
	if m == nil {
		return nil
	}
	return m.store
}

// Handler returns the HTTP handler, or nil when Features.HTTP is off.
func (m *Module) Handler() http.Handler {
	if m == nil || m.api == nil {
		return nil
	}
	return m.api.Handler()
}

// RegisterRoutes mounts the HTTP endpoints on the provided mux when
// Features.HTTP is on.
func (m *Module) RegisterRoutes(mux *http.ServeMux) {
	if m == nil || m.api == nil {
		return
	}
	m.api.Register(mux)
}

// ReloadCatalog clears the cached catalog; Warm reloads it eagerly. Requires
// Features.Commands.
func (m *Module) ReloadCatalog() *catalogcmd.ReloadCatalogHandler {
	if m == nil {
		return nil
	}
	return m.reload
}

// LoggerProvider exposes the provider the module logs through.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil {
		return nil
	}
	return m.provider
}

func buildSource(cfg runtimeconfig.CatalogConfig) (catalogsvc.Source, error) {
	switch strings.TrimSpace(cfg.Provider) {
	case "", runtimeconfig.CatalogProviderJSON:
		return catalogsvc.NewJSONSource(cfg.Path)
	case runtimeconfig.CatalogProviderMarkdown:
		return catalogsvc.NewMarkdownSource(cfg.ContentDir)
	case runtimeconfig.CatalogProviderSQL:
		return catalogsvc.NewBunSource(cfg.DB)
	default:
		return nil, fmt.Errorf("pagemeta: %w: %q", runtimeconfig.ErrCatalogProviderUnknown, cfg.Provider)
	}
}

func buildLoggerProvider(cfg runtimeconfig.Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return noopProvider{}, nil
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "noop":
		return noopProvider{}, nil
	case "console":
		level := consoleLevel(cfg.Logging.Level)
		return console.NewProvider(console.Options{MinLevel: &level}), nil
	default:
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	}
}

func consoleLevel(level string) console.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace
	case "debug":
		return console.LevelDebug
	case "warn", "warning":
		return console.LevelWarn
	case "error":
		return console.LevelError
	case "fatal":
		return console.LevelFatal
	default:
		return console.LevelInfo
	}
}

// isCatalogBindingError reports whether the validation failure only concerns
// the catalog source bindings, which do not matter once a custom source is
// injected.
func isCatalogBindingError(err error) bool {
	return errors.Is(err, runtimeconfig.ErrCatalogPathRequired) ||
		errors.Is(err, runtimeconfig.ErrCatalogContentDirRequired) ||
		errors.Is(err, runtimeconfig.ErrCatalogDatabaseRequired)
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger { return logging.NoOp() }
