package domain

import "time"

// SystemSettingsID is the primary key of the singleton settings row.
const SystemSettingsID uint64 = 1

// SystemSettings is a singleton row. AdminAssigned is the compare-and-set
// guard for one-time first-admin assignment: the row lock serializes
// concurrent claims the same way item row locks serialize revision writes.
type SystemSettings struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	AdminAssigned bool      `gorm:"column:admin_assigned" json:"admin_assigned"`
	FirstAdminID  *uint64   `gorm:"column:first_admin_id" json:"first_admin_id,omitempty"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SystemSettings) TableName() string { return "system_settings" }
