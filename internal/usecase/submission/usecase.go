package submission

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"grantflow-backend/internal/domain/actor"
	domainNotice "grantflow-backend/internal/domain/notice"
	"grantflow-backend/internal/domain/orgunit"
	domain "grantflow-backend/internal/domain/submission"
	"grantflow-backend/internal/domain/uow"
	"grantflow-backend/pkg/apperr"
	"grantflow-backend/pkg/id"
)

type Usecase struct {
	notices     domainNotice.Repository
	orgUnits    orgunit.Repository
	submissions domain.Repository
	uow         uow.UnitOfWork
	now         func() time.Time
}

func NewUsecase(notices domainNotice.Repository, orgUnits orgunit.Repository, submissions domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{notices: notices, orgUnits: orgUnits, submissions: submissions, uow: tx, now: time.Now}
}

// WithClock overrides the time source; tests pin expiry checks with it.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

type SubmitInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Participants string `json:"participants"`
	FileURL      string `json:"file_url"`
}

type VersionDTO struct {
	VersionID       string    `json:"version_id"`
	VersionNumber   int       `json:"version_number"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Participants    string    `json:"participants"`
	FileURL         string    `json:"file_url"`
	Type            string    `json:"type"`
	ResubmitAllowed bool      `json:"resubmit_allowed"`
	CreatedAt       time.Time `json:"created_at"`
}

type SubmissionDTO struct {
	SubmissionID string       `json:"submission_id"`
	NoticeID     string       `json:"notice_id"`
	SubmitterID  string       `json:"submitter_id"`
	OrgUnitID    string       `json:"org_unit_id"`
	Versions     []VersionDTO `json:"versions,omitempty"`
	Latest       *VersionDTO  `json:"latest_version,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Submit creates a submission with version 1. The notice must be active and
// unexpired, the submitter must hold at least one leaf org unit, and a second
// submission for the same (notice, submitter) pair is a conflict.
func (u *Usecase) Submit(ctx context.Context, act actor.Actor, noticeID string, in SubmitInput) (*SubmissionDTO, error) {
	if in.Title == "" {
		return nil, apperr.Validation("title is required")
	}

	n, err := u.notices.GetByNoticeID(ctx, noticeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("notice %s not found", noticeID)
		}
		return nil, apperr.Storage(err)
	}
	if n.Hidden || !n.Active {
		return nil, apperr.Validation("notice is not open for submissions")
	}
	if n.Expired(u.now().UTC()) {
		return nil, apperr.Validation("notice has expired")
	}

	leaves, err := u.orgUnits.ListLeafUnitsForUser(ctx, act.UserID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if len(leaves) == 0 {
		return nil, apperr.Validation("user has no leaf org unit assignment")
	}
	unit := leaves[0]

	var dto *SubmissionDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.Submissions.GetByNoticeAndSubmitter(ctx, n.ID, act.UserID)
		switch {
		case err == nil:
			return apperr.Conflict("already submitted")
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return apperr.Storage(err)
		}

		s := &domain.Submission{
			SubmissionID: id.NewID32(),
			NoticeID:     n.ID,
			SubmitterID:  act.UserID,
			OrgUnitID:    unit.ID,
		}
		if err := r.Submissions.Create(ctx, s); err != nil {
			return apperr.Storage(err)
		}

		v := &domain.Version{
			VersionID:       id.NewID32(),
			SubmissionID:    s.ID,
			VersionNumber:   1,
			Title:           in.Title,
			Description:     in.Description,
			Participants:    in.Participants,
			FileURL:         in.FileURL,
			Type:            n.Type,
			ResubmitAllowed: true,
		}
		if err := r.Submissions.CreateVersion(ctx, v); err != nil {
			return apperr.Storage(err)
		}

		dto = &SubmissionDTO{
			SubmissionID: s.SubmissionID,
			NoticeID:     n.NoticeID,
			SubmitterID:  s.SubmitterID,
			OrgUnitID:    unit.UnitID,
			Latest:       toVersionDTO(v),
			CreatedAt:    s.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Resubmit appends the next version. Legal only while no final decision
// exists. The new version inherits type and resubmit flag from the version it
// replaces, and the reviewer set is carried over as fresh PENDING reviews
// with no comments.
func (u *Usecase) Resubmit(ctx context.Context, act actor.Actor, submissionID string, in SubmitInput) (*VersionDTO, error) {
	if in.Title == "" {
		return nil, apperr.Validation("title is required")
	}

	var dto *VersionDTO
	err := u.uow.WithinSubmissionTx(ctx, submissionID, func(r uow.Repos, s *domain.Submission) error {
		if s.SubmitterID != act.UserID {
			return apperr.Forbidden("only the submitter may resubmit")
		}

		if _, err := r.Submissions.GetDecision(ctx, s.ID); err == nil {
			return apperr.Conflict("decision already final")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Storage(err)
		}

		prev, err := r.Submissions.LatestVersion(ctx, s.ID)
		if err != nil {
			return apperr.Storage(err)
		}

		next := &domain.Version{
			VersionID:       id.NewID32(),
			SubmissionID:    s.ID,
			VersionNumber:   prev.VersionNumber + 1,
			Title:           in.Title,
			Description:     in.Description,
			Participants:    in.Participants,
			FileURL:         in.FileURL,
			Type:            prev.Type,
			ResubmitAllowed: prev.ResubmitAllowed,
		}
		if err := r.Submissions.CreateVersion(ctx, next); err != nil {
			return apperr.Storage(err)
		}

		// Reviewer identity carries over; verdicts and comments do not.
		prevReviews, err := r.Submissions.ListReviews(ctx, prev.ID)
		if err != nil {
			return apperr.Storage(err)
		}
		for _, pr := range prevReviews {
			fresh := &domain.Review{
				ReviewID:   id.NewID32(),
				VersionID:  next.ID,
				ReviewerID: pr.ReviewerID,
				Status:     domain.ReviewPending,
			}
			if err := r.Submissions.CreateReview(ctx, fresh); err != nil {
				return apperr.Storage(err)
			}
		}

		dto = toVersionDTO(next)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ListForNotice returns every submission made against a notice, latest
// version attached. Restricted to the roles that run the review chain.
func (u *Usecase) ListForNotice(ctx context.Context, act actor.Actor, noticeID string) ([]SubmissionDTO, error) {
	if !act.HasAny(actor.RoleAdmin, actor.RoleDean, actor.RoleCoordinator, actor.RoleHead, actor.RoleDirector) {
		return nil, apperr.Forbidden("role cannot list submissions")
	}

	n, err := u.notices.GetByNoticeID(ctx, noticeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("notice %s not found", noticeID)
		}
		return nil, apperr.Storage(err)
	}

	subs, err := u.submissions.ListByNotice(ctx, n.ID)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	out := make([]SubmissionDTO, 0, len(subs))
	for i := range subs {
		s := &subs[i]
		dto := SubmissionDTO{
			SubmissionID: s.SubmissionID,
			NoticeID:     n.NoticeID,
			SubmitterID:  s.SubmitterID,
			CreatedAt:    s.CreatedAt,
		}
		latest, err := u.submissions.LatestVersion(ctx, s.ID)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		dto.Latest = toVersionDTO(latest)
		out = append(out, dto)
	}
	return out, nil
}

// Get returns the submission with all versions, latest last.
func (u *Usecase) Get(ctx context.Context, submissionID string) (*SubmissionDTO, error) {
	s, err := u.submissions.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("submission %s not found", submissionID)
		}
		return nil, apperr.Storage(err)
	}
	versions, err := u.submissions.ListVersions(ctx, s.ID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	dto := &SubmissionDTO{
		SubmissionID: s.SubmissionID,
		SubmitterID:  s.SubmitterID,
		CreatedAt:    s.CreatedAt,
	}
	for i := range versions {
		dto.Versions = append(dto.Versions, *toVersionDTO(&versions[i]))
	}
	if len(dto.Versions) > 0 {
		dto.Latest = &dto.Versions[len(dto.Versions)-1]
	}
	return dto, nil
}

func toVersionDTO(v *domain.Version) *VersionDTO {
	return &VersionDTO{
		VersionID:       v.VersionID,
		VersionNumber:   v.VersionNumber,
		Title:           v.Title,
		Description:     v.Description,
		Participants:    v.Participants,
		FileURL:         v.FileURL,
		Type:            string(v.Type),
		ResubmitAllowed: v.ResubmitAllowed,
		CreatedAt:       v.CreatedAt,
	}
}
