package catalog

import (
	"strings"

	"github.com/goliatone/go-pagemeta/catalog"
)

// Search scoring weights. A record accumulates at most one title-based score
// (the strongest applicable rung) plus the description score.
const (
	scoreTitleExact    = 100
	scoreTitlePrefix   = 50
	scoreTitleContains = 30
	scoreDescription   = 10
)

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// scoreRecord computes the relevance of a record for an already-normalized
// query, matching against the localized title and description.
func scoreRecord(record *catalog.PageRecord, query string, lang catalog.Language) int {
	title := strings.ToLower(LocalizedField(record.Title, lang))
	description := strings.ToLower(LocalizedField(record.Description, lang))

	score := 0
	switch {
	case title == query:
		score += scoreTitleExact
	case strings.HasPrefix(title, query):
		score += scoreTitlePrefix
	case strings.Contains(title, query):
		score += scoreTitleContains
	}
	if strings.Contains(description, query) {
		score += scoreDescription
	}
	return score
}
