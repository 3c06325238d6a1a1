package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-pagemeta/catalog"
	"github.com/goliatone/go-pagemeta/internal/validation"
)

// catalogDocument mirrors the persisted document shape: page records under a
// top-level "pages" key.
type catalogDocument struct {
	Pages []*catalog.PageRecord `json:"pages"`
}

// JSONSource loads the catalog from a static JSON document. The raw document
// is validated against the catalog schema before decoding so malformed
// structures are rejected with issue locations instead of partial decodes.
type JSONSource struct {
	path string
	fsys fs.FS
}

// JSONSourceOption configures a JSONSource.
type JSONSourceOption func(*JSONSource)

// WithFS reads the document from the provided filesystem instead of the OS.
func WithFS(fsys fs.FS) JSONSourceOption {
	return func(s *JSONSource) {
		s.fsys = fsys
	}
}

// NewJSONSource constructs a source reading the document at path.
func NewJSONSource(path string, opts ...JSONSourceOption) (*JSONSource, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrDocumentRequired
	}
	source := &JSONSource{path: path}
	for _, opt := range opts {
		opt(source)
	}
	return source, nil
}

// Load implements Source.
func (s *JSONSource) Load(_ context.Context) ([]*catalog.PageRecord, error) {
	raw, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("catalog: read document %s: %w", s.path, err)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("catalog: parse document %s: %w", s.path, err)
	}
	if err := validation.ValidateCatalogDocument(generic); err != nil {
		return nil, fmt.Errorf("catalog: document %s: %w", s.path, err)
	}

	var document catalogDocument
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("catalog: decode document %s: %w", s.path, err)
	}
	return document.Pages, nil
}

func (s *JSONSource) read() ([]byte, error) {
	if s.fsys != nil {
		return fs.ReadFile(s.fsys, s.path)
	}
	return os.ReadFile(s.path)
}
