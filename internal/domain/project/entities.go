package project

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusOngoing   Status = "ONGOING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusOnHold    Status = "ON_HOLD"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusOngoing, StatusCompleted, StatusCancelled, StatusOnHold:
		return true
	}
	return false
}

// Project is the funded outcome of an accepted submission. One per
// submission, created only by an ACCEPTED director approval.
type Project struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	ProjectID    string          `gorm:"column:project_id;type:char(32);not null;uniqueIndex:ux_projects_project_id" json:"project_id"`
	SubmissionID uint64          `gorm:"column:submission_id;not null;uniqueIndex:ux_projects_submission" json:"-"`
	Title        string          `gorm:"column:title;size:255;not null" json:"title"`
	Description  string          `gorm:"column:description;type:text" json:"description"`
	TotalBudget  decimal.Decimal `gorm:"column:total_budget;type:decimal(18,2);not null" json:"total_budget"`
	Status       Status          `gorm:"column:status;size:16;not null;default:'ONGOING'" json:"status"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

// Budget is one spend line item. spent is never stored; it is recomputed as
// the sum of amounts on every read.
type Budget struct {
	ID        uint64          `gorm:"primaryKey;column:id" json:"-"`
	BudgetID  string          `gorm:"column:budget_id;type:char(32);not null;uniqueIndex:ux_project_budgets_budget_id" json:"budget_id"`
	ProjectID uint64          `gorm:"column:project_id;not null;index" json:"-"`
	ItemLabel string          `gorm:"column:item_label;size:255;not null" json:"item_label"`
	Amount    decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Budget) TableName() string { return "project_budgets" }

// Task is a work item under a project.
type Task struct {
	ID          uint64     `gorm:"primaryKey;column:id" json:"-"`
	TaskID      string     `gorm:"column:task_id;type:char(32);not null;uniqueIndex:ux_project_tasks_task_id" json:"task_id"`
	ProjectID   uint64     `gorm:"column:project_id;not null;index" json:"-"`
	Title       string     `gorm:"column:title;size:255;not null" json:"title"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	Done        bool       `gorm:"column:done;default:false" json:"done"`
	DueAt       *time.Time `gorm:"column:due_at" json:"due_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Task) TableName() string { return "project_tasks" }
