package catalog

import (
	"context"
	"sort"

	"github.com/goliatone/go-pagemeta/catalog"
	"github.com/goliatone/go-pagemeta/internal/logging"
	"github.com/goliatone/go-pagemeta/pkg/interfaces"
)

// DefaultRelatedLimit caps related-page results when callers pass no limit.
const DefaultRelatedLimit = 6

// Service derives localized, structured views from the raw catalog. Every
// operation is a pure read over the store's snapshot: not-found conditions
// produce empty or nil results, never errors.
type Service interface {
	GetPageMetadata(ctx context.Context, path string, lang catalog.Language) *catalog.PageRecord
	GetAllPagesMetadata(ctx context.Context, lang catalog.Language) []*catalog.PageRecord
	GetNavigationStructure(ctx context.Context, query NavigationQuery) []catalog.NavigationNode
	GetBreadcrumbs(ctx context.Context, path string, lang catalog.Language) []catalog.BreadcrumbItem
	GetRelatedPages(ctx context.Context, path string, limit int, lang catalog.Language) []*catalog.PageRecord
	GetPageSiblings(ctx context.Context, path string, lang catalog.Language) catalog.PageSiblings
	SearchPages(ctx context.Context, query string, lang catalog.Language) []*catalog.PageRecord
}

// NavigationQuery parameterizes navigation-tree assembly.
type NavigationQuery struct {
	// Section restricts the tree to one category; empty selects all records.
	Section string
	// CurrentPath marks the matching node as active for this request.
	CurrentPath string
	Language    catalog.Language
}

// NavigationURLResolver optionally rewrites a node's path into a
// locale-aware URL. Implementations return empty to keep the record path.
type NavigationURLResolver interface {
	Resolve(ctx context.Context, path string, lang catalog.Language) string
}

// ServiceOption configures a service instance.
type ServiceOption func(*service)

// WithLogger injects the logger used for diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithURLResolver attaches a locale-aware URL resolver for navigation nodes.
func WithURLResolver(resolver NavigationURLResolver) ServiceOption {
	return func(s *service) {
		s.resolver = resolver
	}
}

// WithRelatedLimit overrides the default related-page cap.
func WithRelatedLimit(limit int) ServiceOption {
	return func(s *service) {
		if limit >= 0 {
			s.relatedLimit = limit
		}
	}
}

type service struct {
	store        *Store
	logger       interfaces.Logger
	resolver     NavigationURLResolver
	relatedLimit int
}

// NewService constructs the metadata service on top of a catalog store.
func NewService(store *Store, opts ...ServiceOption) Service {
	svc := &service{
		store:        store,
		logger:       logging.NoOp(),
		relatedLimit: DefaultRelatedLimit,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// GetPageMetadata returns the record at path with both language variants
// preserved verbatim; callers needing a single display string resolve it
// through the localized-field helper. Nil when the path is unknown or the
// record is invalid.
func (s *service) GetPageMetadata(ctx context.Context, path string, _ catalog.Language) *catalog.PageRecord {
	record, err := s.store.GetByPath(ctx, path)
	if err != nil || !validRecord(record) {
		return nil
	}
	return record
}

// GetAllPagesMetadata returns every valid record in catalog order.
func (s *service) GetAllPagesMetadata(ctx context.Context, _ catalog.Language) []*catalog.PageRecord {
	return filterValid(s.store.GetAll(ctx))
}

// GetNavigationStructure assembles the per-request navigation tree: records
// sorted by order, one node each, children attached under their parents.
// Nodes whose parent is absent, unknown, or part of a parent cycle become
// roots; hierarchy depth is unbounded.
func (s *service) GetNavigationStructure(ctx context.Context, query NavigationQuery) []catalog.NavigationNode {
	var records []*catalog.PageRecord
	if query.Section != "" {
		records = s.store.GetByCategory(ctx, query.Section)
	} else {
		records = s.store.GetAll(ctx)
	}
	records = filterValid(records)

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Order < records[j].Order
	})

	nodes := make(map[string]*catalog.NavigationNode, len(records))
	order := make([]string, 0, len(records))
	byID := make(map[string]*catalog.PageRecord, len(records))
	for _, record := range records {
		node := &catalog.NavigationNode{
			ID:       record.ID,
			Path:     s.resolvePath(ctx, record.Path, query.Language),
			Title:    LocalizedField(record.Title, query.Language),
			Icon:     record.Icon,
			Order:    record.Order,
			IsActive: query.CurrentPath != "" && record.Path == query.CurrentPath,
		}
		nodes[record.ID] = node
		order = append(order, record.ID)
		byID[record.ID] = record
	}

	roots := make([]catalog.NavigationNode, 0, len(order))
	childIDs := make(map[string][]string, len(order))
	for _, id := range order {
		record := byID[id]
		if record.Parent != "" && nodes[record.Parent] != nil && !parentCycleMember(byID, record) {
			childIDs[record.Parent] = append(childIDs[record.Parent], id)
		} else {
			roots = append(roots, *nodes[id])
		}
	}

	// Children inherit the stable order-ascending sort of the selection pass,
	// so attaching in selection order keeps each sibling list sorted.
	var attach func(node *catalog.NavigationNode)
	attach = func(node *catalog.NavigationNode) {
		for _, childID := range childIDs[node.ID] {
			child := *nodes[childID]
			attach(&child)
			node.Children = append(node.Children, child)
		}
	}
	for i := range roots {
		attach(&roots[i])
	}
	return roots
}

// GetBreadcrumbs walks parent links upward from the record at path,
// prepending each ancestor. The root path and unknown paths yield an empty
// trail. A visited-id set bounds the walk; a revisited node stops it
// immediately since that indicates malformed data, not a runtime fault.
func (s *service) GetBreadcrumbs(ctx context.Context, path string, lang catalog.Language) []catalog.BreadcrumbItem {
	trail := []catalog.BreadcrumbItem{}
	if path == "/" {
		return trail
	}
	record, err := s.store.GetByPath(ctx, path)
	if err != nil || !validRecord(record) {
		return trail
	}

	visited := map[string]bool{}
	for record != nil && validRecord(record) {
		if visited[record.ID] {
			s.logger.Warn("catalog.breadcrumbs.cycle", "page", record.ID)
			break
		}
		visited[record.ID] = true
		trail = append([]catalog.BreadcrumbItem{{
			Title: LocalizedField(record.Title, lang),
			Path:  record.Path,
		}}, trail...)

		if record.Parent == "" {
			break
		}
		parent, err := s.store.GetByID(ctx, record.Parent)
		if err != nil {
			break
		}
		record = parent
	}
	return trail
}

// GetRelatedPages unions three relatedness sources in precedence order:
// author-curated ids, shared category, shared tags. First-seen order is
// preserved across the phases, the page itself is excluded, invalid records
// are filtered before the limit truncates the merged list. A negative limit
// means "unspecified" and falls back to the configured default.
func (s *service) GetRelatedPages(ctx context.Context, path string, limit int, lang catalog.Language) []*catalog.PageRecord {
	if limit < 0 {
		limit = s.relatedLimit
	}
	results := []*catalog.PageRecord{}
	page, err := s.store.GetByPath(ctx, path)
	if err != nil || !validRecord(page) {
		return results
	}

	seen := map[string]bool{page.ID: true}
	collect := func(candidate *catalog.PageRecord) {
		if candidate == nil || seen[candidate.ID] || !validRecord(candidate) {
			return
		}
		seen[candidate.ID] = true
		results = append(results, candidate)
	}

	for _, id := range page.RelatedPages {
		if related, err := s.store.GetByID(ctx, id); err == nil {
			collect(related)
		}
	}
	if page.Category != "" {
		for _, candidate := range s.store.GetByCategory(ctx, page.Category) {
			collect(candidate)
		}
	}
	for _, tag := range page.Tags {
		for _, candidate := range s.store.GetByTag(ctx, tag) {
			collect(candidate)
		}
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// GetPageSiblings locates the page inside its category's order-sorted valid
// records and returns the immediate neighbours, nil at either boundary.
func (s *service) GetPageSiblings(ctx context.Context, path string, _ catalog.Language) catalog.PageSiblings {
	siblings := catalog.PageSiblings{}
	page, err := s.store.GetByPath(ctx, path)
	if err != nil || !validRecord(page) {
		return siblings
	}

	candidates := filterValid(s.store.GetByCategory(ctx, page.Category))
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Order < candidates[j].Order
	})

	for i, candidate := range candidates {
		if candidate.ID != page.ID {
			continue
		}
		if i > 0 {
			siblings.Previous = candidates[i-1]
		}
		if i < len(candidates)-1 {
			siblings.Next = candidates[i+1]
		}
		break
	}
	return siblings
}

// SearchPages ranks valid records against the query using the localized
// title and description. An empty query (after trimming) yields an empty
// result. Ties keep catalog order: the stable sort over the catalog-ordered
// input is the tie-break.
func (s *service) SearchPages(ctx context.Context, query string, lang catalog.Language) []*catalog.PageRecord {
	results := []*catalog.PageRecord{}
	normalized := normalizeQuery(query)
	if normalized == "" {
		return results
	}

	type scored struct {
		record *catalog.PageRecord
		score  int
	}
	matches := []scored{}
	for _, record := range filterValid(s.store.GetAll(ctx)) {
		score := scoreRecord(record, normalized, lang)
		if score > 0 {
			matches = append(matches, scored{record: record, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	for _, match := range matches {
		results = append(results, match.record)
	}
	return results
}

func (s *service) resolvePath(ctx context.Context, path string, lang catalog.Language) string {
	if s.resolver == nil {
		return path
	}
	if resolved := s.resolver.Resolve(ctx, path, lang); resolved != "" {
		return resolved
	}
	return path
}

// parentCycleMember reports whether record sits on a parent cycle, that is
// whether walking parent links from it leads back to the record itself.
// Records whose ancestry merely passes through someone else's cycle keep
// their parent attachment.
func parentCycleMember(byID map[string]*catalog.PageRecord, record *catalog.PageRecord) bool {
	visited := map[string]bool{}
	current := byID[record.Parent]
	for current != nil {
		if current.ID == record.ID {
			return true
		}
		if visited[current.ID] || current.Parent == "" {
			return false
		}
		visited[current.ID] = true
		current = byID[current.Parent]
	}
	return false
}
