package domain

import "time"

// ContentKind distinguishes pages from posts. The pair (kind, slug) is unique.
type ContentKind string

const (
	KindPage ContentKind = "page"
	KindPost ContentKind = "post"
)

// ContentStatus is the publication state of a content item.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
)

// ContentItem is the mutable "current" projection of a content item.
// CurrentRev points into the revision log; 0 means the item has never been
// bootstrapped into the log.
type ContentItem struct {
	ID          uint64        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OwnerID     *uint64       `gorm:"column:owner_id;index" json:"owner_id,omitempty"`
	Kind        ContentKind   `gorm:"column:kind;type:varchar(10);uniqueIndex:uq_contents_kind_slug" json:"kind"`
	Slug        string        `gorm:"column:slug;type:varchar(190);uniqueIndex:uq_contents_kind_slug" json:"slug"`
	Status      ContentStatus `gorm:"column:status;type:varchar(10)" json:"status"`
	Title       string        `gorm:"column:title;type:varchar(255)" json:"title"`
	Body        string        `gorm:"column:body;type:mediumtext" json:"body"`
	Template    string        `gorm:"column:template;type:varchar(100)" json:"template"`
	CurrentRev  int64         `gorm:"column:current_rev" json:"current_rev"`
	CreatedAt   time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	EditedAt    time.Time     `gorm:"column:edited_at" json:"edited_at"`
	PublishedAt *time.Time    `gorm:"column:published_at" json:"published_at,omitempty"`
}

func (ContentItem) TableName() string { return "contents" }

// Owned reports whether the item has an owner. Owner-less items are legacy
// content: universally viewable and editable, without a collaborator roster.
func (c *ContentItem) Owned() bool { return c.OwnerID != nil }

// IsOwner reports whether userID is the item's owner.
func (c *ContentItem) IsOwner(userID uint64) bool {
	return c.OwnerID != nil && userID != 0 && *c.OwnerID == userID
}

// MarkPublished switches the item to published and bumps the edited timestamp.
// The publish timestamp is set exactly once: republishing keeps the original.
func (c *ContentItem) MarkPublished(now time.Time) {
	c.Status = StatusPublished
	c.EditedAt = now
	if c.PublishedAt == nil {
		t := now
		c.PublishedAt = &t
	}
}

// CreateContentRequest carries the fields for creating a content item.
// New items always start as drafts.
type CreateContentRequest struct {
	Kind     ContentKind `json:"kind" binding:"required"`
	Slug     string      `json:"slug" binding:"required"`
	Title    string      `json:"title"`
	Body     string      `json:"body"`
	Template string      `json:"template"`
}

// ContentPatch is a partial update: nil fields keep their previous value.
// "No change" is expressed as absence, not as an empty string.
type ContentPatch struct {
	Slug     *string `json:"slug"`
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	Template *string `json:"template"`
}

// Empty reports whether the patch changes nothing.
func (p *ContentPatch) Empty() bool {
	return p.Slug == nil && p.Title == nil && p.Body == nil && p.Template == nil
}

// Apply merges the patch into the item and bumps the edited timestamp.
func (p *ContentPatch) Apply(c *ContentItem, now time.Time) {
	if p.Slug != nil {
		c.Slug = *p.Slug
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Body != nil {
		c.Body = *p.Body
	}
	if p.Template != nil {
		c.Template = *p.Template
	}
	c.EditedAt = now
}
