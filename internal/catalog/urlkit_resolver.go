package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-pagemeta/catalog"
)

// URLKitResolverOptions configures the go-urlkit backed resolver.
type URLKitResolverOptions struct {
	Manager      *urlkit.RouteManager
	DefaultGroup string
	// LocaleGroups maps a language code onto a dot-separated group path,
	// e.g. "ar" -> "frontend.ar".
	LocaleGroups map[string]string
	// Route names the route used for page URLs; defaults to "page".
	Route string
	// PathParam names the route parameter receiving the page path; defaults
	// to "path".
	PathParam string
}

// URLKitResolver rewrites navigation node paths into locale-aware URLs using
// a go-urlkit RouteManager. Resolution is best effort: any failure yields an
// empty string so callers fall back to the record path.
type URLKitResolver struct {
	manager      *urlkit.RouteManager
	defaultGroup string
	localeGroups map[string]string
	route        string
	pathParam    string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

var _ NavigationURLResolver = (*URLKitResolver)(nil)

// NewURLKitResolver constructs a resolver backed by go-urlkit.
func NewURLKitResolver(opts URLKitResolverOptions) *URLKitResolver {
	if opts.Route == "" {
		opts.Route = "page"
	}
	if opts.PathParam == "" {
		opts.PathParam = "path"
	}
	return &URLKitResolver{
		manager:      opts.Manager,
		defaultGroup: strings.TrimSpace(opts.DefaultGroup),
		localeGroups: opts.LocaleGroups,
		route:        opts.Route,
		pathParam:    opts.PathParam,
		groupCache:   make(map[string]*urlkit.Group),
	}
}

// Resolve implements NavigationURLResolver.
func (r *URLKitResolver) Resolve(_ context.Context, path string, lang catalog.Language) string {
	if r == nil || r.manager == nil || path == "" {
		return ""
	}

	groupPath := r.defaultGroup
	if r.localeGroups != nil {
		if mapped, ok := r.localeGroups[string(lang)]; ok && strings.TrimSpace(mapped) != "" {
			groupPath = strings.TrimSpace(mapped)
		}
	}
	if groupPath == "" {
		return ""
	}

	group, err := r.groupForPath(groupPath)
	if err != nil || group == nil {
		return ""
	}

	builder, err := safeBuilder(group, r.route)
	if err != nil || builder == nil {
		return ""
	}

	builder.WithParam(r.pathParam, strings.TrimPrefix(path, "/"))
	url, err := builder.Build()
	if err != nil {
		return ""
	}
	return url
}

func (r *URLKitResolver) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	root, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

// The urlkit group and builder accessors panic on unknown names; the lookup
// helpers convert that into an error so resolution can degrade quietly.
func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("catalog: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("catalog: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("catalog: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("catalog: parent group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("catalog: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
