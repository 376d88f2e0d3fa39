package audit

import (
	"time"

	"careerhub/internal/common"
)

// Entry is an immutable record of a destructive action. It is written before
// the corresponding delete is issued and is never updated or removed.
type Entry struct {
	ID             common.UUID `json:"id"`
	DeletedBy      string      `json:"deleted_by"`
	PostedBy       string      `json:"posted_by"`
	DeletedDate    string      `json:"deleted_date"`
	EntityType     string      `json:"entity_type"`
	DeletedContent string      `json:"deleted_content"`
	Reason         string      `json:"reason"`
	CreatedAt      time.Time   `json:"created_at"`
}

// DeletedDateLayout is the human-readable timestamp recorded in entries. The
// source system stored a localized display string rather than an epoch, and
// downstream audit tooling expects that shape.
const DeletedDateLayout = "Jan 2, 2006 3:04:05 PM"

func FormatDeletedDate(t time.Time) string {
	return t.Format(DeletedDateLayout)
}
