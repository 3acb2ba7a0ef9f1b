package mysql

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	projDomain "grantflow-backend/internal/domain/project"
	"grantflow-backend/pkg/id"
)

func makeProject(submissionID uint64, total int64) *projDomain.Project {
	return &projDomain.Project{
		ProjectID:    id.NewID32(),
		SubmissionID: submissionID,
		Title:        "Soil study",
		TotalBudget:  decimal.NewFromInt(total),
		Status:       projDomain.StatusOngoing,
	}
}

func TestProjectRepository_OnePerSubmission(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := makeProject(1, 200)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, makeProject(1, 300)); err == nil {
		t.Fatal("second project for same submission succeeded")
	}

	got, err := repo.GetBySubmissionID(ctx, 1)
	if err != nil {
		t.Fatalf("GetBySubmissionID: %v", err)
	}
	if got.ProjectID != p.ProjectID {
		t.Fatalf("project = %s, want %s", got.ProjectID, p.ProjectID)
	}
}

func TestProjectRepository_SumBudgets(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := makeProject(1, 200)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Empty ledger sums to zero, not NULL.
	sum, err := repo.SumBudgets(ctx, p.ID)
	if err != nil {
		t.Fatalf("SumBudgets: %v", err)
	}
	if !sum.Equal(decimal.Zero) {
		t.Fatalf("empty sum = %s, want 0", sum)
	}

	for _, amount := range []string{"100", "50", "0.25"} {
		amt, _ := decimal.NewFromString(amount)
		b := &projDomain.Budget{BudgetID: id.NewID32(), ProjectID: p.ID, ItemLabel: "item", Amount: amt}
		if err := repo.CreateBudget(ctx, b); err != nil {
			t.Fatalf("CreateBudget %s: %v", amount, err)
		}
	}

	sum, err = repo.SumBudgets(ctx, p.ID)
	if err != nil {
		t.Fatalf("SumBudgets: %v", err)
	}
	want, _ := decimal.NewFromString("150.25")
	if !sum.Equal(want) {
		t.Fatalf("sum = %s, want %s", sum, want)
	}
}

func TestProjectRepository_BudgetLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := makeProject(1, 200)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	b := &projDomain.Budget{BudgetID: id.NewID32(), ProjectID: p.ID, ItemLabel: "equipment", Amount: decimal.NewFromInt(100)}
	if err := repo.CreateBudget(ctx, b); err != nil {
		t.Fatalf("CreateBudget: %v", err)
	}

	b.Amount = decimal.NewFromInt(80)
	if err := repo.SaveBudget(ctx, b); err != nil {
		t.Fatalf("SaveBudget: %v", err)
	}
	got, err := repo.GetBudgetByBudgetID(ctx, b.BudgetID)
	if err != nil {
		t.Fatalf("GetBudgetByBudgetID: %v", err)
	}
	if !got.Amount.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("amount = %s, want 80", got.Amount)
	}

	if err := repo.DeleteBudget(ctx, b.ID); err != nil {
		t.Fatalf("DeleteBudget: %v", err)
	}
	items, err := repo.ListBudgets(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListBudgets: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("items = %d, want 0", len(items))
	}
}

func TestProjectRepository_Tasks(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := makeProject(1, 200)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	task := &projDomain.Task{TaskID: id.NewID32(), ProjectID: p.ID, Title: "collect samples"}
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	task.Done = true
	if err := repo.SaveTask(ctx, task); err != nil {
		t.Fatalf("SaveTask: %v", err)
	}

	tasks, err := repo.ListTasks(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 1 || !tasks[0].Done {
		t.Fatalf("tasks = %+v", tasks)
	}
}
