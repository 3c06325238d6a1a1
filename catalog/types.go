package catalog

import "strings"

// Language identifies one of the two content languages served by the catalog.
type Language string

const (
	// LanguageEN is the default language; every valid record carries an
	// English title.
	LanguageEN Language = "en"
	// LanguageAR is the secondary language and may be missing per field.
	LanguageAR Language = "ar"
)

// NormalizeLanguage maps arbitrary caller input onto a supported language.
// Anything other than exactly "ar" resolves to English.
func NormalizeLanguage(raw string) Language {
	if strings.TrimSpace(raw) == string(LanguageAR) {
		return LanguageAR
	}
	return LanguageEN
}

// LocalizedText is a bilingual string pair. EN must be non-empty for the
// owning record to be considered valid; AR may be empty and falls back to EN.
type LocalizedText struct {
	EN string `json:"en"`
	AR string `json:"ar,omitempty"`
}

// IsZero reports whether neither variant carries text.
func (t LocalizedText) IsZero() bool {
	return t.EN == "" && t.AR == ""
}

// In resolves the variant for the requested language, applying the fallback
// chain requested -> en -> ar -> "".
func (t LocalizedText) In(lang Language) string {
	if lang == LanguageAR && t.AR != "" {
		return t.AR
	}
	if t.EN != "" {
		return t.EN
	}
	return t.AR
}

// PageRecord is one page's structured metadata as stored in the catalog
// document. Records are immutable once loaded; every read path hands out
// independent copies.
type PageRecord struct {
	ID           string        `json:"id"`
	Path         string        `json:"path"`
	Title        LocalizedText `json:"title"`
	Description  LocalizedText `json:"description"`
	Icon         string        `json:"icon,omitempty"`
	Category     string        `json:"category,omitempty"`
	Order        int           `json:"order"`
	Parent       string        `json:"parent,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	RelatedPages []string      `json:"relatedPages,omitempty"`
}

// Clone returns a deep copy so cached records cannot be mutated through
// service results.
func (r *PageRecord) Clone() *PageRecord {
	if r == nil {
		return nil
	}
	cloned := *r
	if len(r.Tags) > 0 {
		cloned.Tags = append([]string(nil), r.Tags...)
	}
	if len(r.RelatedPages) > 0 {
		cloned.RelatedPages = append([]string(nil), r.RelatedPages...)
	}
	return &cloned
}

// HasTag reports whether the record carries the given tag.
func (r *PageRecord) HasTag(tag string) bool {
	for _, candidate := range r.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

// NavigationNode is a derived, per-request tree element representing one page
// in a menu hierarchy. Title is already localized; IsActive reflects the
// request path the tree was built for.
type NavigationNode struct {
	ID       string           `json:"id"`
	Path     string           `json:"path"`
	Title    string           `json:"title"`
	Icon     string           `json:"icon,omitempty"`
	Order    int              `json:"order"`
	IsActive bool             `json:"isActive"`
	Children []NavigationNode `json:"children,omitempty"`
}

// BreadcrumbItem is one entry in the ancestor chain from root to a page.
type BreadcrumbItem struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

// PageSiblings holds the previous/next records within a page's category,
// ordered by the records' Order field. Either side is nil at a boundary.
type PageSiblings struct {
	Previous *PageRecord `json:"previous"`
	Next     *PageRecord `json:"next"`
}
