package catalog

import (
	"context"
	"sync"

	"github.com/goliatone/go-pagemeta/catalog"
	"github.com/goliatone/go-pagemeta/internal/logging"
	"github.com/goliatone/go-pagemeta/pkg/interfaces"
)

// Store is the single cached view of the page catalog. It loads records from
// its Source exactly once per load cycle, builds the four lookup indexes in a
// single pass, and serves cloned records on every read. Records are never
// mutated in place; ClearCache discards everything and the next read reloads.
//
// Concurrent reads after the first load are safe without additional locking;
// the lazy first load itself is guarded so two cold readers cannot race.
type Store struct {
	source Source
	logger interfaces.Logger

	mu         sync.RWMutex
	loaded     bool
	records    []*catalog.PageRecord
	byPath     map[string]*catalog.PageRecord
	byID       map[string]*catalog.PageRecord
	byCategory map[string][]*catalog.PageRecord
	byTag      map[string][]*catalog.PageRecord
}

// StoreOption configures a Store instance.
type StoreOption func(*Store)

// WithStoreLogger injects the logger used for load diagnostics.
func WithStoreLogger(logger interfaces.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore constructs a catalog store backed by the provided source.
func NewStore(source Source, opts ...StoreOption) *Store {
	store := &Store{
		source: source,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// GetAll returns every record in catalog order. The first call triggers the
// lazy load; a failed load degrades to an empty catalog rather than an error.
func (s *Store) GetAll(ctx context.Context) []*catalog.PageRecord {
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*catalog.PageRecord, len(s.records))
	for i, record := range s.records {
		out[i] = record.Clone()
	}
	return out
}

// GetByPath resolves a record by its canonical URL path.
func (s *Store) GetByPath(ctx context.Context, path string) (*catalog.PageRecord, error) {
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.byPath[path]
	if !ok {
		return nil, &NotFoundError{Resource: "path", Key: path}
	}
	return record.Clone(), nil
}

// GetByID resolves a record by its stable identifier.
func (s *Store) GetByID(ctx context.Context, id string) (*catalog.PageRecord, error) {
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "id", Key: id}
	}
	return record.Clone(), nil
}

// GetByCategory returns all records grouped under a category, in catalog
// order. Unknown or empty categories yield an empty slice, never an error.
func (s *Store) GetByCategory(ctx context.Context, category string) []*catalog.PageRecord {
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.byCategory[category])
}

// GetByTag returns all records carrying a tag, with the same contract as
// GetByCategory.
func (s *Store) GetByTag(ctx context.Context, tag string) []*catalog.PageRecord {
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.byTag[tag])
}

// ClearCache discards the cached records and indexes. The next read reloads
// from the source. Intended for administrative and test use, not as a
// steady-state concurrent write path.
func (s *Store) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = false
	s.records = nil
	s.byPath = nil
	s.byID = nil
	s.byCategory = nil
	s.byTag = nil
}

func (s *Store) ensureLoaded(ctx context.Context) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}

	var records []*catalog.PageRecord
	if s.source == nil {
		s.logger.Error("catalog.load.failed", "error", ErrSourceRequired)
	} else if loadedRecords, err := s.source.Load(ctx); err != nil {
		// Degrade to an empty catalog; callers must tolerate it. The broken
		// source is not retried until ClearCache.
		s.logger.Error("catalog.load.failed", "error", err)
	} else {
		records = loadedRecords
	}

	s.index(records)
	s.loaded = true
	s.logger.Debug("catalog.load.complete", "records", len(s.records))
}

// index builds all four lookup maps in one pass. It runs under the write
// lock; no reader can observe a partially built index.
func (s *Store) index(records []*catalog.PageRecord) {
	s.records = make([]*catalog.PageRecord, 0, len(records))
	s.byPath = make(map[string]*catalog.PageRecord, len(records))
	s.byID = make(map[string]*catalog.PageRecord, len(records))
	s.byCategory = make(map[string][]*catalog.PageRecord)
	s.byTag = make(map[string][]*catalog.PageRecord)

	for _, record := range records {
		if record == nil {
			continue
		}
		cloned := record.Clone()
		s.records = append(s.records, cloned)
		if cloned.Path != "" {
			s.byPath[cloned.Path] = cloned
		}
		if cloned.ID != "" {
			s.byID[cloned.ID] = cloned
		}
		if cloned.Category != "" {
			s.byCategory[cloned.Category] = append(s.byCategory[cloned.Category], cloned)
		}
		for _, tag := range cloned.Tags {
			if tag == "" {
				continue
			}
			s.byTag[tag] = append(s.byTag[tag], cloned)
		}
	}
}

func cloneSlice(records []*catalog.PageRecord) []*catalog.PageRecord {
	out := make([]*catalog.PageRecord, len(records))
	for i, record := range records {
		out[i] = record.Clone()
	}
	return out
}
