package project

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id uint64) (*Project, error)
	GetByProjectID(ctx context.Context, projectID string) (*Project, error)
	GetBySubmissionID(ctx context.Context, submissionID uint64) (*Project, error)
	Save(ctx context.Context, p *Project) error

	CreateBudget(ctx context.Context, b *Budget) error
	GetBudgetByBudgetID(ctx context.Context, budgetID string) (*Budget, error)
	SaveBudget(ctx context.Context, b *Budget) error
	DeleteBudget(ctx context.Context, id uint64) error
	ListBudgets(ctx context.Context, projectID uint64) ([]Budget, error)
	SumBudgets(ctx context.Context, projectID uint64) (decimal.Decimal, error)

	CreateTask(ctx context.Context, t *Task) error
	GetTaskByTaskID(ctx context.Context, taskID string) (*Task, error)
	SaveTask(ctx context.Context, t *Task) error
	ListTasks(ctx context.Context, projectID uint64) ([]Task, error)
}
