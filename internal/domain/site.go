package domain

import "time"

// Site groups content under one hostname. Thin CRUD, no invariants beyond the
// unique subdomain.
type Site struct {
	ID         string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Name       string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Subdomain  string    `gorm:"column:subdomain;type:varchar(63);uniqueIndex" json:"subdomain"`
	OwnerEmail string    `gorm:"column:owner_email;type:varchar(190)" json:"owner_email"`
	Active     bool      `gorm:"column:active" json:"active"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Site) TableName() string { return "sites" }

// CreateSiteRequest carries the fields for creating a site.
type CreateSiteRequest struct {
	Name       string `json:"name" binding:"required"`
	Subdomain  string `json:"subdomain" binding:"required"`
	OwnerEmail string `json:"owner_email" binding:"required,email"`
}
