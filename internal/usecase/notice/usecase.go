package notice

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"grantflow-backend/internal/domain/actor"
	domainNotice "grantflow-backend/internal/domain/notice"
	"grantflow-backend/internal/domain/orgunit"
	"grantflow-backend/internal/domain/uow"
	"grantflow-backend/pkg/apperr"
	"grantflow-backend/pkg/id"
)

type Usecase struct {
	notices  domainNotice.Repository
	orgUnits orgunit.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(notices domainNotice.Repository, orgUnits orgunit.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{notices: notices, orgUnits: orgUnits, uow: tx}
}

type CreateNoticeInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	ExpiresAt   time.Time `json:"expires_at"`
	OrgUnitIDs  []string  `json:"org_unit_ids"`
}

type NoticeDTO struct {
	NoticeID   string    `json:"notice_id"`
	Title      string    `json:"title"`
	Desc       string    `json:"description"`
	Type       string    `json:"type"`
	ExpiresAt  time.Time `json:"expires_at"`
	Active     bool      `json:"active"`
	OrgUnitIDs []string  `json:"org_unit_ids"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *Usecase) validatePayload(in CreateNoticeInput) error {
	if in.Title == "" {
		return apperr.Validation("title is required")
	}
	if in.ExpiresAt.IsZero() {
		return apperr.Validation("expires_at is required")
	}
	if !domainNotice.ValidType(domainNotice.Type(in.Type)) {
		return apperr.Validation("type must be one of JUST_NOTICE, CONCEPT_NOTE, PROPOSAL")
	}
	return nil
}

// Create publishes a new call. Unknown org unit ids are silently filtered out
// rather than failing the whole create.
func (u *Usecase) Create(ctx context.Context, act actor.Actor, in CreateNoticeInput) (*NoticeDTO, error) {
	if !act.HasAny(actor.RoleAdmin, actor.RoleDean) {
		return nil, apperr.Forbidden("role cannot publish notices")
	}
	if err := u.validatePayload(in); err != nil {
		return nil, err
	}

	units, err := u.orgUnits.GetByUnitIDs(ctx, in.OrgUnitIDs)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	n := &domainNotice.Notice{
		NoticeID:    id.NewID32(),
		Title:       in.Title,
		Description: in.Description,
		Type:        domainNotice.Type(in.Type),
		ExpiresAt:   in.ExpiresAt.UTC(),
		Active:      true,
		CreatedBy:   act.UserID,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Notices.Create(ctx, n); err != nil {
			return apperr.Storage(err)
		}
		unitIDs := make([]uint64, 0, len(units))
		for _, unit := range units {
			unitIDs = append(unitIDs, unit.ID)
		}
		if len(unitIDs) > 0 {
			if err := r.Notices.AddTargets(ctx, n.ID, unitIDs); err != nil {
				return apperr.Storage(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toDTO(n, unitPublicIDs(units)), nil
}

// Update edits a notice and reconciles the target org-unit set by diff,
// so readers never observe an empty association set mid-update.
func (u *Usecase) Update(ctx context.Context, act actor.Actor, noticeID string, in CreateNoticeInput) (*NoticeDTO, error) {
	if !act.HasAny(actor.RoleAdmin, actor.RoleDean) {
		return nil, apperr.Forbidden("role cannot edit notices")
	}
	if err := u.validatePayload(in); err != nil {
		return nil, err
	}

	units, err := u.orgUnits.GetByUnitIDs(ctx, in.OrgUnitIDs)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	var n *domainNotice.Notice
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		n, err = r.Notices.GetByNoticeID(ctx, noticeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("notice %s not found", noticeID)
			}
			return apperr.Storage(err)
		}
		if n.Hidden {
			return apperr.Conflict("notice %s is deleted", noticeID)
		}

		n.Title = in.Title
		n.Description = in.Description
		n.Type = domainNotice.Type(in.Type)
		n.ExpiresAt = in.ExpiresAt.UTC()
		if err := r.Notices.Save(ctx, n); err != nil {
			return apperr.Storage(err)
		}

		current, err := r.Notices.ListTargetUnitIDs(ctx, n.ID)
		if err != nil {
			return apperr.Storage(err)
		}
		toAdd, toRemove := diffTargets(current, units)
		if len(toAdd) > 0 {
			if err := r.Notices.AddTargets(ctx, n.ID, toAdd); err != nil {
				return apperr.Storage(err)
			}
		}
		if len(toRemove) > 0 {
			if err := r.Notices.RemoveTargets(ctx, n.ID, toRemove); err != nil {
				return apperr.Storage(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toDTO(n, unitPublicIDs(units)), nil
}

// SoftDelete hides the notice. The row and its history stay.
func (u *Usecase) SoftDelete(ctx context.Context, act actor.Actor, noticeID string) error {
	if !act.HasAny(actor.RoleAdmin, actor.RoleDean) {
		return apperr.Forbidden("role cannot delete notices")
	}
	n, err := u.notices.GetByNoticeID(ctx, noticeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("notice %s not found", noticeID)
		}
		return apperr.Storage(err)
	}
	if n.Hidden {
		return nil
	}
	n.Hidden = true
	if err := u.notices.Save(ctx, n); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// ListVisible applies the chain visibility rule: deans see everything
// targeted at their subtree; every other role sees a notice only once its
// chain predecessor has forwarded it into one of their units (or to them
// directly).
func (u *Usecase) ListVisible(ctx context.Context, act actor.Actor) ([]NoticeDTO, error) {
	units, err := u.orgUnits.ListUnitsForUser(ctx, act.UserID)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	var notices []domainNotice.Notice
	switch {
	case act.Has(actor.RoleDean) || act.Has(actor.RoleAdmin):
		var subtree []uint64
		for _, unit := range units {
			ids, err := u.orgUnits.ListSubtreeIDs(ctx, unit.ID)
			if err != nil {
				return nil, apperr.Storage(err)
			}
			subtree = append(subtree, ids...)
		}
		notices, err = u.notices.ListTargetedAtUnits(ctx, subtree)
		if err != nil {
			return nil, apperr.Storage(err)
		}
	default:
		pred, ok := chainPredecessor(act)
		if !ok {
			return nil, apperr.Forbidden("role has no notice visibility")
		}
		unitIDs := make([]uint64, 0, len(units))
		for _, unit := range units {
			unitIDs = append(unitIDs, unit.ID)
		}
		noticeIDs, err := u.notices.ListForwardedNoticeIDs(ctx, string(pred), unitIDs, act.UserID)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		notices, err = u.notices.GetByIDs(ctx, noticeIDs)
		if err != nil {
			return nil, apperr.Storage(err)
		}
	}

	out := make([]NoticeDTO, 0, len(notices))
	for i := range notices {
		out = append(out, *toDTO(&notices[i], nil))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, noticeID string) (*NoticeDTO, error) {
	n, err := u.notices.GetByNoticeID(ctx, noticeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("notice %s not found", noticeID)
		}
		return nil, apperr.Storage(err)
	}
	return toDTO(n, nil), nil
}

// chainPredecessor maps a role to the role whose forwarding makes a notice
// visible to it: dean → coordinator → head → staff.
func chainPredecessor(act actor.Actor) (actor.Role, bool) {
	switch {
	case act.Has(actor.RoleCoordinator):
		return actor.RoleDean, true
	case act.Has(actor.RoleHead):
		return actor.RoleCoordinator, true
	case act.Has(actor.RoleStaff):
		return actor.RoleHead, true
	}
	return "", false
}

func diffTargets(current []uint64, want []orgunit.OrgUnit) (toAdd, toRemove []uint64) {
	cur := make(map[uint64]struct{}, len(current))
	for _, id := range current {
		cur[id] = struct{}{}
	}
	wanted := make(map[uint64]struct{}, len(want))
	for _, unit := range want {
		wanted[unit.ID] = struct{}{}
		if _, ok := cur[unit.ID]; !ok {
			toAdd = append(toAdd, unit.ID)
		}
	}
	for _, id := range current {
		if _, ok := wanted[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}

func unitPublicIDs(units []orgunit.OrgUnit) []string {
	out := make([]string, 0, len(units))
	for _, unit := range units {
		out = append(out, unit.UnitID)
	}
	return out
}

func toDTO(n *domainNotice.Notice, unitIDs []string) *NoticeDTO {
	return &NoticeDTO{
		NoticeID:   n.NoticeID,
		Title:      n.Title,
		Desc:       n.Description,
		Type:       string(n.Type),
		ExpiresAt:  n.ExpiresAt,
		Active:     n.Active,
		OrgUnitIDs: unitIDs,
		CreatedBy:  n.CreatedBy,
		CreatedAt:  n.CreatedAt,
	}
}
