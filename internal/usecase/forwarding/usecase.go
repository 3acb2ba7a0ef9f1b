package forwarding

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"grantflow-backend/internal/domain/actor"
	domainNotice "grantflow-backend/internal/domain/notice"
	"grantflow-backend/internal/domain/orgunit"
	domainSubmission "grantflow-backend/internal/domain/submission"
	"grantflow-backend/internal/domain/uow"
	"grantflow-backend/pkg/apperr"
)

type Usecase struct {
	notices     domainNotice.Repository
	orgUnits    orgunit.Repository
	submissions domainSubmission.Repository
	uow         uow.UnitOfWork
}

func NewUsecase(notices domainNotice.Repository, orgUnits orgunit.Repository, submissions domainSubmission.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{notices: notices, orgUnits: orgUnits, submissions: submissions, uow: tx}
}

type ForwardDTO struct {
	UserID        string    `json:"user_id"`
	OrgUnitID     string    `json:"org_unit_id"`
	ForwarderRole string    `json:"forwarder_role"`
	CreatedAt     time.Time `json:"created_at"`
}

type ForwardNoticeResult struct {
	Created          []ForwardDTO `json:"created"`
	AlreadyForwarded int          `json:"already_forwarded"`
}

// ForwardNotice pushes a notice one tier down the role chain. Coordinators
// fan out to the heads sharing their units; deans and heads tag their own
// units. Re-forwarding an already-covered target is reported, not failed.
func (u *Usecase) ForwardNotice(ctx context.Context, act actor.Actor, noticeID string) (*ForwardNoticeResult, error) {
	role, ok := forwardingRole(act)
	if !ok {
		return nil, apperr.Forbidden("role cannot forward notices")
	}

	n, err := u.notices.GetByNoticeID(ctx, noticeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("notice %s not found", noticeID)
		}
		return nil, apperr.Storage(err)
	}
	if n.Hidden {
		return nil, apperr.NotFound("notice %s not found", noticeID)
	}

	units, err := u.orgUnits.ListUnitsForUser(ctx, act.UserID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if len(units) == 0 {
		return nil, apperr.Validation("user has no org unit assignment")
	}

	var result ForwardNoticeResult
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if role == actor.RoleCoordinator {
			return u.fanOutToHeads(ctx, r, n, act, units, &result)
		}
		return u.tagOwnUnits(ctx, r, n, act, role, units, &result)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// fanOutToHeads creates one record per head user not yet covered, all tagged
// with the coordinator's first org unit.
func (u *Usecase) fanOutToHeads(ctx context.Context, r uow.Repos, n *domainNotice.Notice, act actor.Actor, units []orgunit.OrgUnit, result *ForwardNoticeResult) error {
	unitIDs := make([]uint64, 0, len(units))
	for _, unit := range units {
		unitIDs = append(unitIDs, unit.ID)
	}
	heads, err := r.OrgUnits.ListUserIDsByRoleInUnits(ctx, string(actor.RoleHead), unitIDs)
	if err != nil {
		return apperr.Storage(err)
	}
	tag := units[0]
	for _, headID := range heads {
		exists, err := r.Notices.ForwardExists(ctx, n.ID, tag.ID, headID)
		if err != nil {
			return apperr.Storage(err)
		}
		if exists {
			result.AlreadyForwarded++
			continue
		}
		f := &domainNotice.Forward{
			NoticeID:      n.ID,
			OrgUnitID:     tag.ID,
			UserID:        headID,
			ForwardedBy:   act.UserID,
			ForwarderRole: string(actor.RoleCoordinator),
		}
		if err := r.Notices.CreateForward(ctx, f); err != nil {
			return apperr.Storage(err)
		}
		result.Created = append(result.Created, ForwardDTO{
			UserID:        headID,
			OrgUnitID:     tag.UnitID,
			ForwarderRole: f.ForwarderRole,
			CreatedAt:     f.CreatedAt,
		})
	}
	return nil
}

// tagOwnUnits creates one self-tagged record per not-yet-forwarded unit of
// the actor (dean and head path).
func (u *Usecase) tagOwnUnits(ctx context.Context, r uow.Repos, n *domainNotice.Notice, act actor.Actor, role actor.Role, units []orgunit.OrgUnit, result *ForwardNoticeResult) error {
	for _, unit := range units {
		exists, err := r.Notices.ForwardExists(ctx, n.ID, unit.ID, act.UserID)
		if err != nil {
			return apperr.Storage(err)
		}
		if exists {
			result.AlreadyForwarded++
			continue
		}
		f := &domainNotice.Forward{
			NoticeID:      n.ID,
			OrgUnitID:     unit.ID,
			UserID:        act.UserID,
			ForwardedBy:   act.UserID,
			ForwarderRole: string(role),
		}
		if err := r.Notices.CreateForward(ctx, f); err != nil {
			return apperr.Storage(err)
		}
		result.Created = append(result.Created, ForwardDTO{
			UserID:        act.UserID,
			OrgUnitID:     unit.UnitID,
			ForwarderRole: f.ForwarderRole,
			CreatedAt:     f.CreatedAt,
		})
	}
	return nil
}

type ForwardProposalInput struct {
	TargetRole string `json:"target_role"`
	Remarks    string `json:"remarks"`
}

type ProposalForwardDTO struct {
	SubmissionID string    `json:"submission_id"`
	TargetRole   string    `json:"target_role"`
	Remarks      string    `json:"remarks"`
	AlreadyDone  bool      `json:"already_forwarded"`
	CreatedAt    time.Time `json:"created_at"`
}

// ForwardProposal escalates a submission from its org unit to the parent
// unit. At most one forward per submission; repeats return the existing
// record flagged as a no-op.
func (u *Usecase) ForwardProposal(ctx context.Context, act actor.Actor, submissionID string, in ForwardProposalInput) (*ProposalForwardDTO, error) {
	if !act.HasAny(actor.RoleCoordinator, actor.RoleHead, actor.RoleDean) {
		return nil, apperr.Forbidden("role cannot forward proposals")
	}
	targetRole, err := actor.ParseRole(in.TargetRole)
	if err != nil {
		return nil, err
	}

	var dto *ProposalForwardDTO
	err = u.uow.WithinSubmissionTx(ctx, submissionID, func(r uow.Repos, s *domainSubmission.Submission) error {
		existing, err := r.Submissions.GetForward(ctx, s.ID)
		switch {
		case err == nil:
			dto = &ProposalForwardDTO{
				SubmissionID: s.SubmissionID,
				TargetRole:   existing.TargetRole,
				Remarks:      existing.Remarks,
				AlreadyDone:  true,
				CreatedAt:    existing.CreatedAt,
			}
			return nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return apperr.Storage(err)
		}

		parent, err := r.OrgUnits.GetParent(ctx, s.OrgUnitID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Validation("submission org unit has no parent to escalate to")
			}
			return apperr.Storage(err)
		}

		f := &domainSubmission.Forward{
			SubmissionID:  s.ID,
			FromOrgUnitID: s.OrgUnitID,
			ToOrgUnitID:   parent.ID,
			TargetRole:    string(targetRole),
			Remarks:       in.Remarks,
			ForwardedBy:   act.UserID,
		}
		if err := r.Submissions.CreateForward(ctx, f); err != nil {
			return apperr.Storage(err)
		}
		dto = &ProposalForwardDTO{
			SubmissionID: s.SubmissionID,
			TargetRole:   f.TargetRole,
			Remarks:      f.Remarks,
			CreatedAt:    f.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func forwardingRole(act actor.Actor) (actor.Role, bool) {
	switch {
	case act.Has(actor.RoleDean):
		return actor.RoleDean, true
	case act.Has(actor.RoleCoordinator):
		return actor.RoleCoordinator, true
	case act.Has(actor.RoleHead):
		return actor.RoleHead, true
	}
	return "", false
}
