package domain

import "time"

// User is an authenticated account referenced by ownership, collaborator
// rosters and revision authorship.
type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(190);uniqueIndex" json:"email"`
	Nickname  string    `gorm:"column:nickname;type:varchar(100)" json:"nickname"`
	IsAdmin   bool      `gorm:"column:is_admin" json:"is_admin"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }
