package domain

import "time"

// Template is a named rendering template referenced by content items.
// Names are unique; a duplicate surfaces as a conflict.
type Template struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(100);uniqueIndex" json:"name"`
	Description string    `gorm:"column:description;type:varchar(255)" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Template) TableName() string { return "templates" }

// DefaultTemplateName is seeded by migration and used when a content item
// does not specify a template.
const DefaultTemplateName = "default"
