package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-pagemeta/catalog"
	"github.com/goliatone/go-pagemeta/internal/identity"
)

// PageRow is the SQL projection of a page record. Primary keys are derived
// deterministically from the page id so repeated seeds stay idempotent.
type PageRow struct {
	bun.BaseModel `bun:"table:page_records,alias:pr"`

	ID            uuid.UUID `bun:",pk,type:uuid" json:"id"`
	PageID        string    `bun:"page_id,notnull" json:"page_id"`
	Path          string    `bun:"path,notnull" json:"path"`
	TitleEN       string    `bun:"title_en,notnull" json:"title_en"`
	TitleAR       string    `bun:"title_ar" json:"title_ar,omitempty"`
	DescriptionEN string    `bun:"description_en" json:"description_en,omitempty"`
	DescriptionAR string    `bun:"description_ar" json:"description_ar,omitempty"`
	Icon          string    `bun:"icon" json:"icon,omitempty"`
	Category      string    `bun:"category" json:"category,omitempty"`
	SortOrder     int       `bun:"sort_order,notnull,default:0" json:"sort_order"`
	Parent        string    `bun:"parent" json:"parent,omitempty"`
	Tags          []string  `bun:"tags,type:jsonb" json:"tags,omitempty"`
	Related       []string  `bun:"related,type:jsonb" json:"related,omitempty"`
	CreatedAt     time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// ToRecord converts the row into the domain record.
func (r *PageRow) ToRecord() *catalog.PageRecord {
	if r == nil {
		return nil
	}
	return &catalog.PageRecord{
		ID:   r.PageID,
		Path: r.Path,
		Title: catalog.LocalizedText{
			EN: r.TitleEN,
			AR: r.TitleAR,
		},
		Description: catalog.LocalizedText{
			EN: r.DescriptionEN,
			AR: r.DescriptionAR,
		},
		Icon:         r.Icon,
		Category:     r.Category,
		Order:        r.SortOrder,
		Parent:       r.Parent,
		Tags:         append([]string(nil), r.Tags...),
		RelatedPages: append([]string(nil), r.Related...),
	}
}

// NewPageRow projects a domain record into its SQL row.
func NewPageRow(record *catalog.PageRecord) *PageRow {
	if record == nil {
		return nil
	}
	return &PageRow{
		ID:            identity.PageUUID(record.ID),
		PageID:        record.ID,
		Path:          record.Path,
		TitleEN:       record.Title.EN,
		TitleAR:       record.Title.AR,
		DescriptionEN: record.Description.EN,
		DescriptionAR: record.Description.AR,
		Icon:          record.Icon,
		Category:      record.Category,
		SortOrder:     record.Order,
		Parent:        record.Parent,
		Tags:          append([]string(nil), record.Tags...),
		Related:       append([]string(nil), record.RelatedPages...),
	}
}
