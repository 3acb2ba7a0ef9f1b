package notice

import (
	"time"
)

type Type string

const (
	TypeJustNotice  Type = "JUST_NOTICE"
	TypeConceptNote Type = "CONCEPT_NOTE"
	TypeProposal    Type = "PROPOSAL"
)

func ValidType(t Type) bool {
	switch t {
	case TypeJustNotice, TypeConceptNote, TypeProposal:
		return true
	}
	return false
}

// Notice is a published call for proposals. Never hard-deleted; Hidden is the
// soft-delete flag and a hidden notice is no longer mutable.
type Notice struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	NoticeID    string    `gorm:"column:notice_id;type:char(32);not null;uniqueIndex:ux_notices_notice_id" json:"notice_id"`
	Title       string    `gorm:"column:title;size:255;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Type        Type      `gorm:"column:type;size:16;not null" json:"type"`
	ExpiresAt   time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	Active      bool      `gorm:"column:active;default:true" json:"active"`
	Hidden      bool      `gorm:"column:hidden;default:false" json:"-"`
	CreatedBy   string    `gorm:"column:created_by;type:char(32);not null" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Notice) TableName() string { return "notices" }

func (n *Notice) Expired(now time.Time) bool { return now.After(n.ExpiresAt) }

// Target is one (notice, org unit) association. The set is replaced by diff
// reconciliation on update, never delete-then-recreate.
type Target struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	NoticeID  uint64    `gorm:"column:notice_id;not null;uniqueIndex:ux_notice_targets_pair,priority:1" json:"-"`
	OrgUnitID uint64    `gorm:"column:org_unit_id;not null;uniqueIndex:ux_notice_targets_pair,priority:2;index" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Target) TableName() string { return "notice_targets" }

// Forward is one append-only notice forwarding record. The natural key
// (notice, org unit, user) is unique at the storage layer, so a concurrent
// duplicate forward loses cleanly instead of double-inserting.
type Forward struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	NoticeID      uint64    `gorm:"column:notice_id;not null;uniqueIndex:ux_notice_forwards_key,priority:1" json:"-"`
	OrgUnitID     uint64    `gorm:"column:org_unit_id;not null;uniqueIndex:ux_notice_forwards_key,priority:2" json:"-"`
	UserID        string    `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_notice_forwards_key,priority:3" json:"user_id"`
	ForwardedBy   string    `gorm:"column:forwarded_by;type:char(32);not null" json:"forwarded_by"`
	ForwarderRole string    `gorm:"column:forwarder_role;size:32;not null;index" json:"forwarder_role"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Forward) TableName() string { return "notice_forwards" }
