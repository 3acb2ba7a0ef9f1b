package project

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"grantflow-backend/internal/domain/actor"
	domain "grantflow-backend/internal/domain/project"
	"grantflow-backend/internal/testutil/projectmock"
	"grantflow-backend/pkg/apperr"
)

var (
	director = actor.Actor{UserID: "11111111111111111111111111111111", Roles: []actor.Role{actor.RoleDirector}}
	dean     = actor.Actor{UserID: "22222222222222222222222222222222", Roles: []actor.Role{actor.RoleDean}}
)

func ongoing() *domain.Project {
	return &domain.Project{
		ID:          1,
		ProjectID:   "pppppppppppppppppppppppppppppppp",
		Title:       "Soil study",
		TotalBudget: decimal.NewFromInt(200),
		Status:      domain.StatusOngoing,
	}
}

func TestUsecase_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		act      actor.Actor
		from     domain.Status
		to       string
		wantKind error
	}{
		{name: "director completes", act: director, from: domain.StatusOngoing, to: "COMPLETED"},
		{name: "director pauses", act: director, from: domain.StatusOngoing, to: "ON_HOLD"},
		{name: "resume from hold", act: director, from: domain.StatusOnHold, to: "ONGOING"},
		{name: "cancel", act: director, from: domain.StatusOngoing, to: "CANCELLED"},
		{name: "cancelled is terminal", act: director, from: domain.StatusCancelled, to: "ONGOING", wantKind: apperr.ErrConflict},
		{name: "dean forbidden", act: dean, from: domain.StatusOngoing, to: "COMPLETED", wantKind: apperr.ErrForbidden},
		{name: "unknown status", act: director, from: domain.StatusOngoing, to: "PAUSED", wantKind: apperr.ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := ongoing()
			p.Status = tc.from
			repo := &projectmock.Repo{
				GetByProjectIDFn: func(context.Context, string) (*domain.Project, error) { return p, nil },
			}
			uc := NewUsecase(repo)

			dto, err := uc.UpdateStatus(context.Background(), tc.act, p.ProjectID, tc.to)
			if tc.wantKind != nil {
				if !errors.Is(err, tc.wantKind) {
					t.Fatalf("err = %v, want kind %v", err, tc.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("update: %v", err)
			}
			if dto.Status != tc.to {
				t.Fatalf("status = %s, want %s", dto.Status, tc.to)
			}
		})
	}
}

func TestUsecase_Tasks(t *testing.T) {
	p := ongoing()

	t.Run("add", func(t *testing.T) {
		var created *domain.Task
		repo := &projectmock.Repo{
			GetByProjectIDFn: func(context.Context, string) (*domain.Project, error) { return p, nil },
			CreateTaskFn: func(ctx context.Context, task *domain.Task) error {
				created = task
				return nil
			},
		}
		uc := NewUsecase(repo)

		dto, err := uc.AddTask(context.Background(), p.ProjectID, TaskInput{Title: "collect samples"})
		if err != nil {
			t.Fatalf("add task: %v", err)
		}
		if created.ProjectID != p.ID || dto.Done {
			t.Fatalf("task = %+v dto = %+v", created, dto)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		uc := NewUsecase(&projectmock.Repo{})
		if _, err := uc.AddTask(context.Background(), p.ProjectID, TaskInput{}); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("err = %v, want validation", err)
		}
	})

	t.Run("mark done", func(t *testing.T) {
		task := &domain.Task{ID: 5, TaskID: "tttttttttttttttttttttttttttttttt", ProjectID: p.ID, Title: "collect samples"}
		repo := &projectmock.Repo{
			GetTaskByTaskIDFn: func(context.Context, string) (*domain.Task, error) { return task, nil },
		}
		uc := NewUsecase(repo)

		dto, err := uc.SetTaskDone(context.Background(), task.TaskID, true)
		if err != nil {
			t.Fatalf("set done: %v", err)
		}
		if !dto.Done || !task.Done {
			t.Fatal("task not marked done")
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		repo := &projectmock.Repo{
			GetTaskByTaskIDFn: func(context.Context, string) (*domain.Task, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		uc := NewUsecase(repo)
		if _, err := uc.SetTaskDone(context.Background(), "missing", true); !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("err = %v, want not found", err)
		}
	})
}

func TestUsecase_Get(t *testing.T) {
	repo := &projectmock.Repo{
		GetByProjectIDFn: func(context.Context, string) (*domain.Project, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(repo)
	if _, err := uc.Get(context.Background(), "missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}
