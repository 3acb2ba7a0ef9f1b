package mysql

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	projDomain "grantflow-backend/internal/domain/project"
)

type ProjectRepository struct{ db *gorm.DB }

func NewProjectRepository(db *gorm.DB) *ProjectRepository { return &ProjectRepository{db: db} }

func (r *ProjectRepository) Create(ctx context.Context, p *projDomain.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint64) (*projDomain.Project, error) {
	var out projDomain.Project
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) GetByProjectID(ctx context.Context, projectID string) (*projDomain.Project, error) {
	var out projDomain.Project
	res := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) GetBySubmissionID(ctx context.Context, submissionID uint64) (*projDomain.Project, error) {
	var out projDomain.Project
	res := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) Save(ctx context.Context, p *projDomain.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProjectRepository) CreateBudget(ctx context.Context, b *projDomain.Budget) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *ProjectRepository) GetBudgetByBudgetID(ctx context.Context, budgetID string) (*projDomain.Budget, error) {
	var out projDomain.Budget
	res := r.db.WithContext(ctx).Where("budget_id = ?", budgetID).First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) SaveBudget(ctx context.Context, b *projDomain.Budget) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *ProjectRepository) DeleteBudget(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&projDomain.Budget{}).Error
}

func (r *ProjectRepository) ListBudgets(ctx context.Context, projectID uint64) ([]projDomain.Budget, error) {
	var out []projDomain.Budget
	res := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id ASC").Find(&out)
	return out, res.Error
}

// SumBudgets computes spent in SQL. COALESCE keeps an empty ledger at zero
// instead of NULL.
func (r *ProjectRepository) SumBudgets(ctx context.Context, projectID uint64) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	res := r.db.WithContext(ctx).
		Model(&projDomain.Budget{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (r *ProjectRepository) CreateTask(ctx context.Context, t *projDomain.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ProjectRepository) GetTaskByTaskID(ctx context.Context, taskID string) (*projDomain.Task, error) {
	var out projDomain.Task
	res := r.db.WithContext(ctx).Where("task_id = ?", taskID).First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) SaveTask(ctx context.Context, t *projDomain.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *ProjectRepository) ListTasks(ctx context.Context, projectID uint64) ([]projDomain.Task, error) {
	var out []projDomain.Task
	res := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id ASC").Find(&out)
	return out, res.Error
}
