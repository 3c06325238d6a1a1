// Package http exposes the page metadata service over a read-only JSON API.
package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-pagemeta/catalog"
	catalogsvc "github.com/goliatone/go-pagemeta/internal/catalog"
	"github.com/goliatone/go-pagemeta/internal/logging"
	"github.com/goliatone/go-pagemeta/pkg/interfaces"
)

// API registers the page metadata endpoints on a standard library mux.
type API struct {
	basePath     string
	service      catalogsvc.Service
	logger       interfaces.Logger
	defaultLang  catalog.Language
	exposeErrors bool
}

// Option mutates the API configuration.
type Option func(*API)

// NewAPI constructs an API instance.
func NewAPI(service catalogsvc.Service, opts ...Option) *API {
	api := &API{
		basePath:    "/pages",
		service:     service,
		logger:      logging.NoOp(),
		defaultLang: catalog.LanguageEN,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/pages").
func WithBasePath(path string) Option {
	return func(api *API) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = "/" + strings.Trim(trimmed, "/")
		}
	}
}

// WithLogger wires the logger used by the handlers.
func WithLogger(logger interfaces.Logger) Option {
	return func(api *API) {
		if api == nil || logger == nil {
			return
		}
		api.logger = logger
	}
}

// WithDefaultLanguage sets the language used when a request carries no lang
// parameter (defaults to English).
func WithDefaultLanguage(lang catalog.Language) Option {
	return func(api *API) {
		if api == nil {
			return
		}
		api.defaultLang = catalog.NormalizeLanguage(string(lang))
	}
}

// WithExposeErrorDetails includes raw error text in INTERNAL_ERROR responses.
// Intended for local debugging only.
func WithExposeErrorDetails(expose bool) Option {
	return func(api *API) {
		if api != nil {
			api.exposeErrors = expose
		}
	}
}

// Register mounts all routes on the provided mux. Fixed segments are
// registered before the catch-all page lookup so the mux resolves them first.
func (api *API) Register(mux *http.ServeMux) {
	if api == nil || mux == nil {
		return
	}
	root := api.basePath
	mux.HandleFunc("GET "+root, api.recovered(api.handleList))
	mux.HandleFunc("GET "+root+"/navigation", api.recovered(api.handleNavigation))
	mux.HandleFunc("GET "+root+"/breadcrumbs", api.recovered(api.handleBreadcrumbs))
	mux.HandleFunc("GET "+root+"/related", api.recovered(api.handleRelated))
	mux.HandleFunc("GET "+root+"/siblings", api.recovered(api.handleSiblings))
	mux.HandleFunc("GET "+root+"/search", api.recovered(api.handleSearch))
	mux.HandleFunc("GET "+root+"/{path...}", api.recovered(api.handleGet))
}

// Handler returns a mux with all routes registered, ready to serve.
func (api *API) Handler() http.Handler {
	mux := http.NewServeMux()
	api.Register(mux)
	return mux
}
