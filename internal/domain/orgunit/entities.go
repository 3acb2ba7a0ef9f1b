package orgunit

import (
	"time"
)

// OrgUnit is one node in the organizational tree. Root units have a nil
// ParentID; a unit with no children is a leaf and is the only kind of unit a
// proposal may be submitted from.
type OrgUnit struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	UnitID    string    `gorm:"column:unit_id;type:char(32);not null;uniqueIndex:ux_org_units_unit_id" json:"unit_id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	ParentID  *uint64   `gorm:"column:parent_id;index" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrgUnit) TableName() string { return "org_units" }

// Membership binds a user (by the auth collaborator's 32-hex id) to an org
// unit under a role. One row per (user, role, unit).
type Membership struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID    string    `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_memberships_user_role_unit,priority:1;index:idx_memberships_user" json:"user_id"`
	Role      string    `gorm:"column:role;size:32;not null;uniqueIndex:ux_memberships_user_role_unit,priority:2" json:"role"`
	OrgUnitID uint64    `gorm:"column:org_unit_id;not null;uniqueIndex:ux_memberships_user_role_unit,priority:3;index" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Membership) TableName() string { return "memberships" }
