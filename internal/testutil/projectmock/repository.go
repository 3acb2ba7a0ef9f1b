package projectmock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "grantflow-backend/internal/domain/project"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies project.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, p *domain.Project) error
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.Project, error)
	GetByProjectIDFn    func(ctx context.Context, projectID string) (*domain.Project, error)
	GetBySubmissionIDFn func(ctx context.Context, submissionID uint64) (*domain.Project, error)
	SaveFn              func(ctx context.Context, p *domain.Project) error

	CreateBudgetFn        func(ctx context.Context, b *domain.Budget) error
	GetBudgetByBudgetIDFn func(ctx context.Context, budgetID string) (*domain.Budget, error)
	SaveBudgetFn          func(ctx context.Context, b *domain.Budget) error
	DeleteBudgetFn        func(ctx context.Context, id uint64) error
	ListBudgetsFn         func(ctx context.Context, projectID uint64) ([]domain.Budget, error)
	SumBudgetsFn          func(ctx context.Context, projectID uint64) (decimal.Decimal, error)

	CreateTaskFn       func(ctx context.Context, t *domain.Task) error
	GetTaskByTaskIDFn  func(ctx context.Context, taskID string) (*domain.Task, error)
	SaveTaskFn         func(ctx context.Context, t *domain.Task) error
	ListTasksFn        func(ctx context.Context, projectID uint64) ([]domain.Task, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Project) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Project, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByProjectID(ctx context.Context, projectID string) (*domain.Project, error) {
	if m.GetByProjectIDFn != nil {
		return m.GetByProjectIDFn(ctx, projectID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetBySubmissionID(ctx context.Context, submissionID uint64) (*domain.Project, error) {
	if m.GetBySubmissionIDFn != nil {
		return m.GetBySubmissionIDFn(ctx, submissionID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, p *domain.Project) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) CreateBudget(ctx context.Context, b *domain.Budget) error {
	if m.CreateBudgetFn != nil {
		return m.CreateBudgetFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetBudgetByBudgetID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	if m.GetBudgetByBudgetIDFn != nil {
		return m.GetBudgetByBudgetIDFn(ctx, budgetID)
	}
	return nil, context.Canceled
}

func (m *Repo) SaveBudget(ctx context.Context, b *domain.Budget) error {
	if m.SaveBudgetFn != nil {
		return m.SaveBudgetFn(ctx, b)
	}
	return nil
}

func (m *Repo) DeleteBudget(ctx context.Context, id uint64) error {
	if m.DeleteBudgetFn != nil {
		return m.DeleteBudgetFn(ctx, id)
	}
	return nil
}

func (m *Repo) ListBudgets(ctx context.Context, projectID uint64) ([]domain.Budget, error) {
	if m.ListBudgetsFn != nil {
		return m.ListBudgetsFn(ctx, projectID)
	}
	return nil, nil
}

func (m *Repo) SumBudgets(ctx context.Context, projectID uint64) (decimal.Decimal, error) {
	if m.SumBudgetsFn != nil {
		return m.SumBudgetsFn(ctx, projectID)
	}
	return decimal.Zero, nil
}

func (m *Repo) CreateTask(ctx context.Context, t *domain.Task) error {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetTaskByTaskID(ctx context.Context, taskID string) (*domain.Task, error) {
	if m.GetTaskByTaskIDFn != nil {
		return m.GetTaskByTaskIDFn(ctx, taskID)
	}
	return nil, context.Canceled
}

func (m *Repo) SaveTask(ctx context.Context, t *domain.Task) error {
	if m.SaveTaskFn != nil {
		return m.SaveTaskFn(ctx, t)
	}
	return nil
}

func (m *Repo) ListTasks(ctx context.Context, projectID uint64) ([]domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, projectID)
	}
	return nil, nil
}
