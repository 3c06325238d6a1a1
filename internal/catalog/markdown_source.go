package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/goliatone/go-slug"
	"github.com/yuin/goldmark"

	"github.com/goliatone/go-pagemeta/catalog"
)

// pageFrontMatter is the YAML header expected at the top of every content
// file. English fields use the bare key; Arabic variants take an _ar suffix.
type pageFrontMatter struct {
	ID            string   `yaml:"id"`
	Path          string   `yaml:"path"`
	Title         string   `yaml:"title"`
	TitleAR       string   `yaml:"title_ar"`
	Description   string   `yaml:"description"`
	DescriptionAR string   `yaml:"description_ar"`
	Icon          string   `yaml:"icon"`
	Category      string   `yaml:"category"`
	Order         int      `yaml:"order"`
	Parent        string   `yaml:"parent"`
	Tags          []string `yaml:"tags"`
	Related       []string `yaml:"related"`
}

// MarkdownSource loads page records from a directory tree of markdown files
// with YAML frontmatter. Missing ids and paths are derived from the title or
// file name; a missing English description falls back to the first body
// paragraph.
type MarkdownSource struct {
	dir    string
	fsys   fs.FS
	render goldmark.Markdown
}

// MarkdownSourceOption configures a MarkdownSource.
type MarkdownSourceOption func(*MarkdownSource)

// WithContentFS walks the provided filesystem instead of the OS directory.
func WithContentFS(fsys fs.FS) MarkdownSourceOption {
	return func(s *MarkdownSource) {
		s.fsys = fsys
	}
}

// NewMarkdownSource constructs a source walking dir for *.md files.
func NewMarkdownSource(dir string, opts ...MarkdownSourceOption) (*MarkdownSource, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, ErrContentDirRequired
	}
	source := &MarkdownSource{
		dir:    dir,
		render: goldmark.New(),
	}
	for _, opt := range opts {
		opt(source)
	}
	return source, nil
}

// Load implements Source. Files are visited in lexical order so the catalog
// order stays deterministic across loads.
func (s *MarkdownSource) Load(_ context.Context) ([]*catalog.PageRecord, error) {
	fsys := s.fsys
	root := s.dir
	if fsys == nil {
		fsys = os.DirFS(s.dir)
		root = "."
	}

	var files []string
	err := fs.WalkDir(fsys, root, func(entry string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(entry, ".md") {
			return nil
		}
		files = append(files, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: walk content dir %s: %w", s.dir, err)
	}
	sort.Strings(files)

	records := make([]*catalog.PageRecord, 0, len(files))
	for _, file := range files {
		raw, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", file, err)
		}
		record, err := s.decode(file, raw)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *MarkdownSource) decode(file string, raw []byte) (*catalog.PageRecord, error) {
	var meta pageFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse frontmatter %s: %w", file, err)
	}

	id := strings.TrimSpace(meta.ID)
	if id == "" {
		id = s.deriveSlug(meta.Title, file)
	}
	pagePath := strings.TrimSpace(meta.Path)
	if pagePath == "" {
		pagePath = "/" + s.deriveSlug(meta.Title, file)
	}

	description := strings.TrimSpace(meta.Description)
	if description == "" {
		description = s.firstParagraph(body)
	}

	return &catalog.PageRecord{
		ID:   id,
		Path: pagePath,
		Title: catalog.LocalizedText{
			EN: strings.TrimSpace(meta.Title),
			AR: strings.TrimSpace(meta.TitleAR),
		},
		Description: catalog.LocalizedText{
			EN: description,
			AR: strings.TrimSpace(meta.DescriptionAR),
		},
		Icon:         strings.TrimSpace(meta.Icon),
		Category:     strings.TrimSpace(meta.Category),
		Order:        meta.Order,
		Parent:       strings.TrimSpace(meta.Parent),
		Tags:         meta.Tags,
		RelatedPages: meta.Related,
	}, nil
}

// deriveSlug prefers the frontmatter title, falling back to the file name
// without extension.
func (s *MarkdownSource) deriveSlug(title, file string) string {
	candidate := strings.TrimSpace(title)
	if candidate == "" {
		candidate = strings.TrimSuffix(path.Base(file), ".md")
	}
	normalized, err := slug.Normalize(candidate)
	if err != nil || normalized == "" {
		return strings.ToLower(strings.TrimSuffix(path.Base(file), ".md"))
	}
	return normalized
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// firstParagraph renders the markdown body and strips markup, returning the
// first non-empty line of text as a description fallback.
func (s *MarkdownSource) firstParagraph(body []byte) string {
	var buf bytes.Buffer
	if err := s.render.Convert(body, &buf); err != nil {
		return ""
	}
	text := htmlTagPattern.ReplaceAllString(buf.String(), "")
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
