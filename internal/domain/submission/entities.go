package submission

import (
	"time"

	"github.com/shopspring/decimal"

	"grantflow-backend/internal/domain/notice"
)

type ReviewStatus string

const (
	ReviewPending           ReviewStatus = "PENDING"
	ReviewAccepted          ReviewStatus = "ACCEPTED"
	ReviewRejected          ReviewStatus = "REJECTED"
	ReviewNeedsModification ReviewStatus = "NEEDS_MODIFICATION"
)

func ValidReviewVerdict(s ReviewStatus) bool {
	switch s {
	case ReviewAccepted, ReviewRejected, ReviewNeedsModification:
		return true
	}
	return false
}

type DecisionStatus string

const (
	DecisionAccepted DecisionStatus = "ACCEPTED"
	DecisionRejected DecisionStatus = "REJECTED"
)

func ValidDecisionStatus(s DecisionStatus) bool {
	return s == DecisionAccepted || s == DecisionRejected
}

// Submission ties a submitter to a notice. One per (notice, submitter),
// enforced by the composite unique index. Content lives in Versions.
type Submission struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	SubmissionID string    `gorm:"column:submission_id;type:char(32);not null;uniqueIndex:ux_submissions_submission_id" json:"submission_id"`
	NoticeID     uint64    `gorm:"column:notice_id;not null;uniqueIndex:ux_submissions_notice_submitter,priority:1;index" json:"-"`
	SubmitterID  string    `gorm:"column:submitter_id;type:char(32);not null;uniqueIndex:ux_submissions_notice_submitter,priority:2" json:"submitter_id"`
	OrgUnitID    uint64    `gorm:"column:org_unit_id;not null;index" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Submission) TableName() string { return "submissions" }

// Version is an immutable content snapshot. Version numbers are contiguous
// from 1; (submission, version_number) is unique so two racing resubmits
// cannot both claim the same slot.
type Version struct {
	ID              uint64      `gorm:"primaryKey;column:id" json:"-"`
	VersionID       string      `gorm:"column:version_id;type:char(32);not null;uniqueIndex:ux_versions_version_id" json:"version_id"`
	SubmissionID    uint64      `gorm:"column:submission_id;not null;uniqueIndex:ux_versions_submission_number,priority:1;index" json:"-"`
	VersionNumber   int         `gorm:"column:version_number;not null;uniqueIndex:ux_versions_submission_number,priority:2" json:"version_number"`
	Title           string      `gorm:"column:title;size:255;not null" json:"title"`
	Description     string      `gorm:"column:description;type:text" json:"description"`
	Participants    string      `gorm:"column:participants;type:text" json:"participants"`
	FileURL         string      `gorm:"column:file_url;type:text" json:"file_url"`
	Type            notice.Type `gorm:"column:type;size:16;not null" json:"type"`
	ResubmitAllowed bool        `gorm:"column:resubmit_allowed;default:true" json:"resubmit_allowed"`
	CreatedAt       time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Version) TableName() string { return "proposal_versions" }

// Review is one reviewer's verdict on one version. At most one per
// (version, reviewer); re-review updates in place.
type Review struct {
	ID         uint64       `gorm:"primaryKey;column:id" json:"-"`
	ReviewID   string       `gorm:"column:review_id;type:char(32);not null;uniqueIndex:ux_reviews_review_id" json:"review_id"`
	VersionID  uint64       `gorm:"column:version_id;not null;uniqueIndex:ux_reviews_version_reviewer,priority:1;index" json:"-"`
	ReviewerID string       `gorm:"column:reviewer_id;type:char(32);not null;uniqueIndex:ux_reviews_version_reviewer,priority:2" json:"reviewer_id"`
	Status     ReviewStatus `gorm:"column:status;size:32;not null;default:'PENDING'" json:"status"`
	CreatedAt  time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Review) TableName() string { return "proposal_reviews" }

// Comment is an authored remark on a review, editable and deletable only by
// its author.
type Comment struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	CommentID string    `gorm:"column:comment_id;type:char(32);not null;uniqueIndex:ux_review_comments_comment_id" json:"comment_id"`
	ReviewID  uint64    `gorm:"column:review_id;not null;index" json:"-"`
	AuthorID  string    `gorm:"column:author_id;type:char(32);not null" json:"author_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Comment) TableName() string { return "review_comments" }

// Decision is the single terminal verdict. submission_id is unique: the
// second decision loses at the storage layer no matter how the race goes.
type Decision struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"-"`
	DecisionID   string         `gorm:"column:decision_id;type:char(32);not null;uniqueIndex:ux_decisions_decision_id" json:"decision_id"`
	SubmissionID uint64         `gorm:"column:submission_id;not null;uniqueIndex:ux_decisions_submission" json:"-"`
	Status       DecisionStatus `gorm:"column:status;size:16;not null" json:"status"`
	Reason       string         `gorm:"column:reason;type:text;not null" json:"reason"`
	DecidedBy    string         `gorm:"column:decided_by;type:char(32);not null" json:"decided_by"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Decision) TableName() string { return "final_decisions" }

// DirectorApproval is the second, budget-aware gate. Also single-shot per
// submission; an ACCEPTED approval creates exactly one project in the same
// transaction.
type DirectorApproval struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"-"`
	ApprovalID      string          `gorm:"column:approval_id;type:char(32);not null;uniqueIndex:ux_director_approvals_approval_id" json:"approval_id"`
	SubmissionID    uint64          `gorm:"column:submission_id;not null;uniqueIndex:ux_director_approvals_submission" json:"-"`
	Status          ReviewStatus    `gorm:"column:status;size:32;not null" json:"status"`
	Reason          string          `gorm:"column:reason;type:text" json:"reason"`
	SignedFileURL   string          `gorm:"column:signed_file_url;type:text" json:"signed_file_url,omitempty"`
	AllocatedBudget decimal.Decimal `gorm:"column:allocated_budget;type:decimal(18,2);not null" json:"allocated_budget"`
	ApprovedBy      string          `gorm:"column:approved_by;type:char(32);not null" json:"approved_by"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DirectorApproval) TableName() string { return "director_approvals" }

// Forward escalates a submission from its org unit to the parent unit.
// At most one per submission (unique index); re-forwarding is a no-op.
type Forward struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	SubmissionID  uint64    `gorm:"column:submission_id;not null;uniqueIndex:ux_proposal_forwards_submission" json:"-"`
	FromOrgUnitID uint64    `gorm:"column:from_org_unit_id;not null" json:"-"`
	ToOrgUnitID   uint64    `gorm:"column:to_org_unit_id;not null;index" json:"-"`
	TargetRole    string    `gorm:"column:target_role;size:32;not null" json:"target_role"`
	Remarks       string    `gorm:"column:remarks;type:text" json:"remarks"`
	ForwardedBy   string    `gorm:"column:forwarded_by;type:char(32);not null" json:"forwarded_by"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Forward) TableName() string { return "proposal_forwards" }
