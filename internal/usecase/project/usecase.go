package project

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"grantflow-backend/internal/domain/actor"
	domain "grantflow-backend/internal/domain/project"
	"grantflow-backend/pkg/apperr"
	"grantflow-backend/pkg/id"
)

type Usecase struct {
	projects domain.Repository
}

func NewUsecase(projects domain.Repository) *Usecase {
	return &Usecase{projects: projects}
}

type ProjectDTO struct {
	ProjectID   string          `json:"project_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	TotalBudget decimal.Decimal `json:"total_budget"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (u *Usecase) Get(ctx context.Context, projectID string) (*ProjectDTO, error) {
	p, err := u.get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

// UpdateStatus moves a project between lifecycle states. CANCELLED is
// terminal.
func (u *Usecase) UpdateStatus(ctx context.Context, act actor.Actor, projectID string, status string) (*ProjectDTO, error) {
	next := domain.Status(status)
	if !domain.ValidStatus(next) {
		return nil, apperr.Validation("status must be one of ONGOING, COMPLETED, CANCELLED, ON_HOLD")
	}
	if !act.HasAny(actor.RoleDirector, actor.RoleAdmin) {
		return nil, apperr.Forbidden("role cannot change project status")
	}

	p, err := u.get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.Status == domain.StatusCancelled && next != domain.StatusCancelled {
		return nil, apperr.Conflict("project is cancelled")
	}
	p.Status = next
	if err := u.projects.Save(ctx, p); err != nil {
		return nil, apperr.Storage(err)
	}
	return toDTO(p), nil
}

type TaskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueAt       *time.Time `json:"due_at"`
}

type TaskDTO struct {
	TaskID      string     `json:"task_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Done        bool       `json:"done"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (u *Usecase) AddTask(ctx context.Context, projectID string, in TaskInput) (*TaskDTO, error) {
	if in.Title == "" {
		return nil, apperr.Validation("title is required")
	}
	p, err := u.get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	t := &domain.Task{
		TaskID:      id.NewID32(),
		ProjectID:   p.ID,
		Title:       in.Title,
		Description: in.Description,
		DueAt:       in.DueAt,
	}
	if err := u.projects.CreateTask(ctx, t); err != nil {
		return nil, apperr.Storage(err)
	}
	return toTaskDTO(t), nil
}

func (u *Usecase) SetTaskDone(ctx context.Context, taskID string, done bool) (*TaskDTO, error) {
	t, err := u.projects.GetTaskByTaskID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("task %s not found", taskID)
		}
		return nil, apperr.Storage(err)
	}
	t.Done = done
	if err := u.projects.SaveTask(ctx, t); err != nil {
		return nil, apperr.Storage(err)
	}
	return toTaskDTO(t), nil
}

func (u *Usecase) ListTasks(ctx context.Context, projectID string) ([]TaskDTO, error) {
	p, err := u.get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	tasks, err := u.projects.ListTasks(ctx, p.ID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	out := make([]TaskDTO, 0, len(tasks))
	for i := range tasks {
		out = append(out, *toTaskDTO(&tasks[i]))
	}
	return out, nil
}

func (u *Usecase) get(ctx context.Context, projectID string) (*domain.Project, error) {
	p, err := u.projects.GetByProjectID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("project %s not found", projectID)
		}
		return nil, apperr.Storage(err)
	}
	return p, nil
}

func toDTO(p *domain.Project) *ProjectDTO {
	return &ProjectDTO{
		ProjectID:   p.ProjectID,
		Title:       p.Title,
		Description: p.Description,
		TotalBudget: p.TotalBudget,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
	}
}

func toTaskDTO(t *domain.Task) *TaskDTO {
	return &TaskDTO{
		TaskID:      t.TaskID,
		Title:       t.Title,
		Description: t.Description,
		Done:        t.Done,
		DueAt:       t.DueAt,
		CreatedAt:   t.CreatedAt,
	}
}
