package domain

import (
	"math"
	"time"

	"github.com/draftmark/draftmark-backend/internal/common"
)

// History listing limits
const (
	HistoryLimitMin     = 1
	HistoryLimitMax     = 200
	HistoryLimitDefault = 50
)

// Revision is an immutable snapshot of a content item's editable fields.
// Rev numbers are contiguous from 1 per item; rows above the current pointer
// form the redo branch and are discarded by the next edit.
type Revision struct {
	ID        uint64        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ContentID uint64        `gorm:"column:content_id;uniqueIndex:uq_revisions_content_rev" json:"content_id"`
	Rev       int64         `gorm:"column:rev;uniqueIndex:uq_revisions_content_rev" json:"rev"`
	Title     string        `gorm:"column:title;type:varchar(255)" json:"title"`
	Slug      string        `gorm:"column:slug;type:varchar(190)" json:"slug"`
	Body      string        `gorm:"column:body;type:mediumtext" json:"body"`
	Template  string        `gorm:"column:template;type:varchar(100)" json:"template"`
	Status    ContentStatus `gorm:"column:status;type:varchar(10)" json:"status"`
	EditedBy  *uint64       `gorm:"column:edited_by" json:"edited_by,omitempty"`
	CreatedAt time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Revision) TableName() string { return "content_revisions" }

// RevisionMeta is the bodyless listing projection, cheap enough for history
// views of large documents.
type RevisionMeta struct {
	Rev       int64         `json:"rev"`
	Title     string        `json:"title"`
	Status    ContentStatus `json:"status"`
	EditedBy  *uint64       `json:"edited_by,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// Snapshot captures the item's current editable fields as revision rev.
func Snapshot(c *ContentItem, rev int64, actorID *uint64) *Revision {
	return &Revision{
		ContentID: c.ID,
		Rev:       rev,
		Title:     c.Title,
		Slug:      c.Slug,
		Body:      c.Body,
		Template:  c.Template,
		Status:    c.Status,
		EditedBy:  actorID,
	}
}

// RestoreInto overwrites the item's editable fields from the snapshot and
// moves the current pointer. PublishedAt is deliberately left alone: restoring
// a draft snapshot does not erase the item's publish history marker.
func (r *Revision) RestoreInto(c *ContentItem, now time.Time) {
	c.Title = r.Title
	c.Slug = r.Slug
	c.Body = r.Body
	c.Template = r.Template
	c.Status = r.Status
	c.CurrentRev = r.Rev
	c.EditedAt = now
}

// NextRev returns current+1 with an explicit overflow check. The counter never
// wraps; hitting the ceiling is fatal for the operation.
func NextRev(current int64) (int64, error) {
	if current >= math.MaxInt64 {
		return 0, common.ErrRevisionOverflow
	}
	return current + 1, nil
}

// UndoTarget returns the revision undo moves to. Undo at rev 1 stays at rev 1.
func UndoTarget(current int64) int64 {
	if current <= 1 {
		return 1
	}
	return current - 1
}

// ClampHistoryLimit bounds a requested listing limit to [1, 200].
func ClampHistoryLimit(limit int) int {
	if limit < HistoryLimitMin {
		return HistoryLimitMin
	}
	if limit > HistoryLimitMax {
		return HistoryLimitMax
	}
	return limit
}
