package domain

import "time"

// CollaboratorRole scopes what a collaborator may do with one content item.
type CollaboratorRole string

const (
	RoleViewer CollaboratorRole = "viewer"
	RoleEditor CollaboratorRole = "editor"
)

// Valid reports whether the role is one of the known values.
func (r CollaboratorRole) Valid() bool {
	return r == RoleViewer || r == RoleEditor
}

// Collaborator grants a non-owner user access to one owned content item.
// Rows only exist for items that have an owner.
type Collaborator struct {
	ContentID uint64           `gorm:"column:content_id;primaryKey;autoIncrement:false" json:"content_id"`
	UserID    uint64           `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	Role      CollaboratorRole `gorm:"column:role;type:varchar(10)" json:"role"`
	InvitedBy uint64           `gorm:"column:invited_by" json:"invited_by"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Collaborator) TableName() string { return "content_collaborators" }

// AddCollaboratorRequest invites a user by email with a role.
type AddCollaboratorRequest struct {
	Email string           `json:"email" binding:"required"`
	Role  CollaboratorRole `json:"role" binding:"required"`
}

// SetCollaboratorRoleRequest changes an existing collaborator's role.
type SetCollaboratorRoleRequest struct {
	Role CollaboratorRole `json:"role" binding:"required"`
}
