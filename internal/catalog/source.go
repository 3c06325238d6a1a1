package catalog

import (
	"context"

	"github.com/goliatone/go-pagemeta/catalog"
)

// Source loads the full set of page records from a backing document or
// storage. Implementations must return the records in their canonical
// document order; that order is the catalog order every derived view and the
// search tie-break rely on.
type Source interface {
	Load(ctx context.Context) ([]*catalog.PageRecord, error)
}

// SourceFunc adapts a plain function into a Source.
type SourceFunc func(ctx context.Context) ([]*catalog.PageRecord, error)

// Load implements Source.
func (f SourceFunc) Load(ctx context.Context) ([]*catalog.PageRecord, error) {
	return f(ctx)
}

// StaticSource wraps a fixed record slice, primarily for tests and embedded
// catalogs.
func StaticSource(records []*catalog.PageRecord) Source {
	return SourceFunc(func(context.Context) ([]*catalog.PageRecord, error) {
		cloned := make([]*catalog.PageRecord, len(records))
		for i, record := range records {
			cloned[i] = record.Clone()
		}
		return cloned, nil
	})
}
