package budget

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "grantflow-backend/internal/domain/project"
	"grantflow-backend/internal/domain/uow"
	"grantflow-backend/pkg/apperr"
	"grantflow-backend/pkg/id"
)

type Usecase struct {
	projects domain.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(projects domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{projects: projects, uow: tx}
}

type ItemInput struct {
	ItemLabel string          `json:"item_label"`
	Amount    decimal.Decimal `json:"amount"`
}

type ItemDTO struct {
	BudgetID  string          `json:"budget_id"`
	ItemLabel string          `json:"item_label"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// Summary is recomputed inside the mutating transaction, so callers never see
// totals derived from stale state. Remaining is signed; negative means
// overrun.
type Summary struct {
	TotalAllocated decimal.Decimal `json:"total_allocated"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	Remaining      decimal.Decimal `json:"remaining"`
}

type LedgerDTO struct {
	ProjectID string    `json:"project_id"`
	Items     []ItemDTO `json:"items"`
	Summary   Summary   `json:"summary"`
}

func (u *Usecase) List(ctx context.Context, projectID string) (*LedgerDTO, error) {
	p, err := u.getProject(ctx, u.projects, projectID)
	if err != nil {
		return nil, err
	}
	return u.ledger(ctx, u.projects, p)
}

func (u *Usecase) Add(ctx context.Context, projectID string, in ItemInput) (*LedgerDTO, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}
	var dto *LedgerDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := u.getProject(ctx, r.Projects, projectID)
		if err != nil {
			return err
		}
		b := &domain.Budget{
			BudgetID:  id.NewID32(),
			ProjectID: p.ID,
			ItemLabel: in.ItemLabel,
			Amount:    in.Amount,
		}
		if err := r.Projects.CreateBudget(ctx, b); err != nil {
			return apperr.Storage(err)
		}
		dto, err = u.ledger(ctx, r.Projects, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Edit(ctx context.Context, budgetID string, in ItemInput) (*LedgerDTO, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}
	var dto *LedgerDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := u.getBudget(ctx, r.Projects, budgetID)
		if err != nil {
			return err
		}
		b.ItemLabel = in.ItemLabel
		b.Amount = in.Amount
		if err := r.Projects.SaveBudget(ctx, b); err != nil {
			return apperr.Storage(err)
		}
		p, err := u.projectByNumericID(ctx, r.Projects, b.ProjectID)
		if err != nil {
			return err
		}
		dto, err = u.ledger(ctx, r.Projects, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Delete(ctx context.Context, budgetID string) (*LedgerDTO, error) {
	var dto *LedgerDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := u.getBudget(ctx, r.Projects, budgetID)
		if err != nil {
			return err
		}
		if err := r.Projects.DeleteBudget(ctx, b.ID); err != nil {
			return apperr.Storage(err)
		}
		p, err := u.projectByNumericID(ctx, r.Projects, b.ProjectID)
		if err != nil {
			return err
		}
		dto, err = u.ledger(ctx, r.Projects, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func validateItem(in ItemInput) error {
	if in.ItemLabel == "" {
		return apperr.Validation("item_label is required")
	}
	if in.Amount.IsNegative() {
		return apperr.Validation("amount must not be negative")
	}
	return nil
}

func (u *Usecase) ledger(ctx context.Context, repo domain.Repository, p *domain.Project) (*LedgerDTO, error) {
	items, err := repo.ListBudgets(ctx, p.ID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	spent := decimal.Zero
	dto := &LedgerDTO{ProjectID: p.ProjectID}
	for i := range items {
		spent = spent.Add(items[i].Amount)
		dto.Items = append(dto.Items, ItemDTO{
			BudgetID:  items[i].BudgetID,
			ItemLabel: items[i].ItemLabel,
			Amount:    items[i].Amount,
			CreatedAt: items[i].CreatedAt,
		})
	}
	dto.Summary = Summary{
		TotalAllocated: p.TotalBudget,
		TotalSpent:     spent,
		Remaining:      p.TotalBudget.Sub(spent),
	}
	return dto, nil
}

func (u *Usecase) getProject(ctx context.Context, repo domain.Repository, projectID string) (*domain.Project, error) {
	p, err := repo.GetByProjectID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("project %s not found", projectID)
		}
		return nil, apperr.Storage(err)
	}
	return p, nil
}

func (u *Usecase) getBudget(ctx context.Context, repo domain.Repository, budgetID string) (*domain.Budget, error) {
	b, err := repo.GetBudgetByBudgetID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("budget item %s not found", budgetID)
		}
		return nil, apperr.Storage(err)
	}
	return b, nil
}

func (u *Usecase) projectByNumericID(ctx context.Context, repo domain.Repository, id uint64) (*domain.Project, error) {
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return p, nil
}
