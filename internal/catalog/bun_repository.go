package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-pagemeta/catalog"
)

// NewDB wraps a database handle with the bun dialect matching the driver.
// Only sqlite and postgres are supported; anything else defaults to sqlite,
// which is the dialect the module's own tooling exercises.
func NewDB(sqldb *sql.DB, driver string) *bun.DB {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "postgres", "pg", "pgx":
		return bun.NewDB(sqldb, pgdialect.New())
	default:
		return bun.NewDB(sqldb, sqlitedialect.New())
	}
}

// NewPageRowRepository creates a typed repository for PageRow entities.
func NewPageRowRepository(db *bun.DB) repository.Repository[*PageRow] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PageRow]{
		NewRecord: func() *PageRow { return &PageRow{} },
		GetID: func(row *PageRow) uuid.UUID {
			return row.ID
		},
		SetID: func(row *PageRow, id uuid.UUID) {
			row.ID = id
		},
		GetIdentifier: func() string {
			return "page_id"
		},
		GetIdentifierValue: func(row *PageRow) string {
			return row.PageID
		},
	})
}

// BunSource loads the catalog from a page_records table, with optional
// per-row caching.
type BunSource struct {
	db           *bun.DB
	repo         repository.Repository[*PageRow]
	cacheService cache.CacheService
	cachePrefix  string
}

const pageRowNamespace = "page_record"

// NewBunSource creates a SQL-backed catalog source without caching.
func NewBunSource(db *bun.DB) (*BunSource, error) {
	return NewBunSourceWithCache(db, nil, nil)
}

// NewBunSourceWithCache creates a SQL-backed catalog source with caching
// services. Passing nil for either cache argument disables the wrapper.
func NewBunSourceWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) (*BunSource, error) {
	if db == nil {
		return nil, ErrDatabaseRequired
	}
	base := NewPageRowRepository(db)
	var svc cache.CacheService
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		svc = cacheService
	}
	prefix := ""
	if svc != nil {
		prefix = "pagemeta:" + pageRowNamespace + ":"
	}
	return &BunSource{
		db:           db,
		repo:         base,
		cacheService: svc,
		cachePrefix:  prefix,
	}, nil
}

// Load implements Source. Rows come back ordered by sort position then page
// id so the catalog order is stable across loads.
func (s *BunSource) Load(ctx context.Context) ([]*catalog.PageRecord, error) {
	rows, _, err := s.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("sort_order ASC").Order("page_id ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, pageRowNamespace, "")
	}

	records := make([]*catalog.PageRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToRecord())
	}
	return records, nil
}

// GetByPageID fetches a single row by its stable page identifier.
func (s *BunSource) GetByPageID(ctx context.Context, pageID string) (*catalog.PageRecord, error) {
	row, err := s.repo.GetByIdentifier(ctx, pageID)
	if err != nil {
		return nil, mapRepositoryError(err, pageRowNamespace, pageID)
	}
	return row.ToRecord(), nil
}

// Seed upserts the provided records, keyed by their deterministic row ids.
// Existing rows for the same page id are replaced.
func (s *BunSource) Seed(ctx context.Context, records []*catalog.PageRecord) error {
	for _, record := range records {
		row := NewPageRow(record)
		if row == nil {
			continue
		}
		if _, err := s.db.NewInsert().
			Model(row).
			On("CONFLICT (id) DO UPDATE").
			Exec(ctx); err != nil {
			return fmt.Errorf("catalog: seed page %s: %w", row.PageID, err)
		}
	}
	return s.InvalidateCache(ctx)
}

// InvalidateCache drops cached row lookups when a cache service is attached.
func (s *BunSource) InvalidateCache(ctx context.Context) error {
	if s.cacheService == nil || s.cachePrefix == "" {
		return nil
	}
	return s.cacheService.DeleteByPrefix(ctx, s.cachePrefix)
}

// CreateTable creates the backing table when it does not exist. Intended for
// tests and bootstrap tooling.
func (s *BunSource) CreateTable(ctx context.Context) error {
	_, err := s.db.NewCreateTable().Model((*PageRow)(nil)).IfNotExists().Exec(ctx)
	return err
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
