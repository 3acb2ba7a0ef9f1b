package decision

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"grantflow-backend/internal/domain/actor"
	"grantflow-backend/internal/domain/project"
	domain "grantflow-backend/internal/domain/submission"
	"grantflow-backend/internal/domain/uow"
	"grantflow-backend/pkg/apperr"
	"grantflow-backend/pkg/id"
)

type Usecase struct {
	submissions domain.Repository
	uow         uow.UnitOfWork
}

func NewUsecase(submissions domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{submissions: submissions, uow: tx}
}

type DecideInput struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type DecisionDTO struct {
	DecisionID   string    `json:"decision_id"`
	SubmissionID string    `json:"submission_id"`
	Status       string    `json:"status"`
	Reason       string    `json:"reason"`
	DecidedBy    string    `json:"decided_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// Decide records the single terminal verdict. There is no update path: a
// second decision is a conflict, and under a race the storage-level unique
// index on submission_id makes exactly one insert win.
func (u *Usecase) Decide(ctx context.Context, act actor.Actor, submissionID string, in DecideInput) (*DecisionDTO, error) {
	status := domain.DecisionStatus(in.Status)
	if !domain.ValidDecisionStatus(status) {
		return nil, apperr.Validation("status must be ACCEPTED or REJECTED")
	}
	if in.Reason == "" {
		return nil, apperr.Validation("reason is required")
	}
	if !act.HasAny(actor.RoleDean, actor.RoleHead, actor.RoleCoordinator) {
		return nil, apperr.Forbidden("role cannot record final decisions")
	}

	var dto *DecisionDTO
	err := u.uow.WithinSubmissionTx(ctx, submissionID, func(r uow.Repos, s *domain.Submission) error {
		if _, err := r.Submissions.GetDecision(ctx, s.ID); err == nil {
			return apperr.Conflict("decision already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Storage(err)
		}

		d := &domain.Decision{
			DecisionID:   id.NewID32(),
			SubmissionID: s.ID,
			Status:       status,
			Reason:       in.Reason,
			DecidedBy:    act.UserID,
		}
		if err := r.Submissions.CreateDecision(ctx, d); err != nil {
			return apperr.Storage(err)
		}
		dto = &DecisionDTO{
			DecisionID:   d.DecisionID,
			SubmissionID: s.SubmissionID,
			Status:       string(d.Status),
			Reason:       d.Reason,
			DecidedBy:    d.DecidedBy,
			CreatedAt:    d.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type ApproveInput struct {
	Status          string          `json:"status"`
	Reason          string          `json:"reason"`
	AllocatedBudget decimal.Decimal `json:"allocated_budget"`
	SignedFileURL   string          `json:"signed_file_url"`
}

type ApprovalDTO struct {
	ApprovalID      string          `json:"approval_id"`
	SubmissionID    string          `json:"submission_id"`
	Status          string          `json:"status"`
	Reason          string          `json:"reason"`
	AllocatedBudget decimal.Decimal `json:"allocated_budget"`
	ProjectID       string          `json:"project_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Approve is the director's budget-aware gate, single-shot like Decide. An
// ACCEPTED approval creates exactly one project in the same transaction,
// copying title and description from the latest version.
func (u *Usecase) Approve(ctx context.Context, act actor.Actor, submissionID string, in ApproveInput) (*ApprovalDTO, error) {
	status := domain.ReviewStatus(in.Status)
	switch status {
	case domain.ReviewAccepted, domain.ReviewRejected, domain.ReviewNeedsModification, domain.ReviewPending:
	default:
		return nil, apperr.Validation("invalid approval status")
	}
	if !act.Has(actor.RoleDirector) {
		return nil, apperr.Forbidden("only a director may approve")
	}
	if status == domain.ReviewAccepted && in.AllocatedBudget.IsNegative() {
		return nil, apperr.Validation("allocated budget must not be negative")
	}

	var dto *ApprovalDTO
	err := u.uow.WithinSubmissionTx(ctx, submissionID, func(r uow.Repos, s *domain.Submission) error {
		if _, err := r.Submissions.GetApproval(ctx, s.ID); err == nil {
			return apperr.Conflict("approval already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Storage(err)
		}

		a := &domain.DirectorApproval{
			ApprovalID:      id.NewID32(),
			SubmissionID:    s.ID,
			Status:          status,
			Reason:          in.Reason,
			SignedFileURL:   in.SignedFileURL,
			AllocatedBudget: in.AllocatedBudget,
			ApprovedBy:      act.UserID,
		}
		if err := r.Submissions.CreateApproval(ctx, a); err != nil {
			return apperr.Storage(err)
		}

		dto = &ApprovalDTO{
			ApprovalID:      a.ApprovalID,
			SubmissionID:    s.SubmissionID,
			Status:          string(a.Status),
			Reason:          a.Reason,
			AllocatedBudget: a.AllocatedBudget,
			CreatedAt:       a.CreatedAt,
		}

		if status != domain.ReviewAccepted {
			return nil
		}

		latest, err := r.Submissions.LatestVersion(ctx, s.ID)
		if err != nil {
			return apperr.Storage(err)
		}
		p := &project.Project{
			ProjectID:    id.NewID32(),
			SubmissionID: s.ID,
			Title:        latest.Title,
			Description:  latest.Description,
			TotalBudget:  in.AllocatedBudget,
			Status:       project.StatusOngoing,
		}
		if err := r.Projects.Create(ctx, p); err != nil {
			return apperr.Storage(err)
		}
		dto.ProjectID = p.ProjectID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
