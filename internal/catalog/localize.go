package catalog

import (
	"strings"

	"github.com/goliatone/go-pagemeta/catalog"
)

// LocalizedField resolves a single display string from a bilingual pair,
// applying the module-wide fallback chain: requested language, then English,
// then Arabic, then empty. This is the central i18n contract; every place
// that needs one string (navigation titles, breadcrumb titles, search
// matching) goes through it.
func LocalizedField(text catalog.LocalizedText, lang catalog.Language) string {
	return text.In(lang)
}

// validRecord reports whether a record is usable by any public operation.
// Records without an English title or a path are silently excluded; they are
// never surfaced and never produce an error.
func validRecord(record *catalog.PageRecord) bool {
	if record == nil {
		return false
	}
	return strings.TrimSpace(record.Title.EN) != "" && strings.TrimSpace(record.Path) != ""
}

// filterValid returns the valid subset of records, preserving order.
func filterValid(records []*catalog.PageRecord) []*catalog.PageRecord {
	out := make([]*catalog.PageRecord, 0, len(records))
	for _, record := range records {
		if validRecord(record) {
			out = append(out, record)
		}
	}
	return out
}
