package review

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"grantflow-backend/internal/domain/actor"
	domainNotice "grantflow-backend/internal/domain/notice"
	domain "grantflow-backend/internal/domain/submission"
	"grantflow-backend/internal/domain/uow"
	"grantflow-backend/pkg/apperr"
	"grantflow-backend/pkg/id"
)

type Usecase struct {
	submissions domain.Repository
	notices     domainNotice.Repository
	uow         uow.UnitOfWork
}

func NewUsecase(submissions domain.Repository, notices domainNotice.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{submissions: submissions, notices: notices, uow: tx}
}

type ReviewDTO struct {
	ReviewID   string    `json:"review_id"`
	VersionID  string    `json:"version_id"`
	ReviewerID string    `json:"reviewer_id"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AssignResult struct {
	Assigned []ReviewDTO `json:"assigned"`
	Skipped  []string    `json:"skipped"`
}

// AssignReviewers creates PENDING records for reviewers not yet on the
// version; already-assigned ids are skipped silently.
func (u *Usecase) AssignReviewers(ctx context.Context, act actor.Actor, versionID string, reviewerIDs []string) (*AssignResult, error) {
	if !act.HasAny(actor.RoleCoordinator, actor.RoleHead, actor.RoleDean, actor.RoleAdmin) {
		return nil, apperr.Forbidden("role cannot assign reviewers")
	}
	if len(reviewerIDs) == 0 {
		return nil, apperr.Validation("reviewer_ids is required")
	}

	var result AssignResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		v, err := r.Submissions.GetVersionByVersionID(ctx, versionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("version %s not found", versionID)
			}
			return apperr.Storage(err)
		}
		if err := u.ensureNotDecided(ctx, r, v.SubmissionID); err != nil {
			return err
		}

		for _, reviewerID := range reviewerIDs {
			_, err := r.Submissions.GetReview(ctx, v.ID, reviewerID)
			switch {
			case err == nil:
				result.Skipped = append(result.Skipped, reviewerID)
				continue
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return apperr.Storage(err)
			}
			rec := &domain.Review{
				ReviewID:   id.NewID32(),
				VersionID:  v.ID,
				ReviewerID: reviewerID,
				Status:     domain.ReviewPending,
			}
			if err := r.Submissions.CreateReview(ctx, rec); err != nil {
				return apperr.Storage(err)
			}
			result.Assigned = append(result.Assigned, toDTO(rec, versionID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

type RecordReviewInput struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

// RecordReview upserts the acting reviewer's verdict on a version. Verdicts
// stay re-enterable until a final decision freezes the submission.
func (u *Usecase) RecordReview(ctx context.Context, act actor.Actor, versionID string, in RecordReviewInput) (*ReviewDTO, error) {
	status := domain.ReviewStatus(in.Status)
	if !domain.ValidReviewVerdict(status) {
		return nil, apperr.Validation("status must be one of ACCEPTED, REJECTED, NEEDS_MODIFICATION")
	}

	var dto ReviewDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		v, err := r.Submissions.GetVersionByVersionID(ctx, versionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("version %s not found", versionID)
			}
			return apperr.Storage(err)
		}
		if err := u.ensureNotDecided(ctx, r, v.SubmissionID); err != nil {
			return err
		}

		rec, err := r.Submissions.GetReview(ctx, v.ID, act.UserID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			rec = &domain.Review{
				ReviewID:   id.NewID32(),
				VersionID:  v.ID,
				ReviewerID: act.UserID,
				Status:     status,
			}
			if err := r.Submissions.CreateReview(ctx, rec); err != nil {
				return apperr.Storage(err)
			}
		case err != nil:
			return apperr.Storage(err)
		default:
			rec.Status = status
			if err := r.Submissions.SaveReview(ctx, rec); err != nil {
				return apperr.Storage(err)
			}
		}

		if in.Comment != "" {
			c := &domain.Comment{
				CommentID: id.NewID32(),
				ReviewID:  rec.ID,
				AuthorID:  act.UserID,
				Content:   in.Comment,
			}
			if err := r.Submissions.CreateComment(ctx, c); err != nil {
				return apperr.Storage(err)
			}
		}

		dto = toDTO(rec, versionID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

type CommentDTO struct {
	CommentID string    `json:"comment_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *Usecase) AddComment(ctx context.Context, act actor.Actor, reviewID, content string) (*CommentDTO, error) {
	if content == "" {
		return nil, apperr.Validation("content is required")
	}
	rec, err := u.submissions.GetReviewByReviewID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("review %s not found", reviewID)
		}
		return nil, apperr.Storage(err)
	}
	if err := u.ensureReviewNotFrozen(ctx, rec); err != nil {
		return nil, err
	}

	c := &domain.Comment{
		CommentID: id.NewID32(),
		ReviewID:  rec.ID,
		AuthorID:  act.UserID,
		Content:   content,
	}
	if err := u.submissions.CreateComment(ctx, c); err != nil {
		return nil, apperr.Storage(err)
	}
	return toCommentDTO(c), nil
}

func (u *Usecase) EditComment(ctx context.Context, act actor.Actor, commentID, content string) (*CommentDTO, error) {
	if content == "" {
		return nil, apperr.Validation("content is required")
	}
	c, err := u.getOwnComment(ctx, act, commentID)
	if err != nil {
		return nil, err
	}
	c.Content = content
	if err := u.submissions.SaveComment(ctx, c); err != nil {
		return nil, apperr.Storage(err)
	}
	return toCommentDTO(c), nil
}

func (u *Usecase) DeleteComment(ctx context.Context, act actor.Actor, commentID string) error {
	c, err := u.getOwnComment(ctx, act, commentID)
	if err != nil {
		return err
	}
	if err := u.submissions.DeleteComment(ctx, c.ID); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func (u *Usecase) ListReviews(ctx context.Context, versionID string) ([]ReviewDTO, error) {
	v, err := u.submissions.GetVersionByVersionID(ctx, versionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("version %s not found", versionID)
		}
		return nil, apperr.Storage(err)
	}
	reviews, err := u.submissions.ListReviews(ctx, v.ID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	out := make([]ReviewDTO, 0, len(reviews))
	for i := range reviews {
		out = append(out, toDTO(&reviews[i], versionID))
	}
	return out, nil
}

type ChangeTypeInput struct {
	NewType string `json:"new_type"`
	Comment string `json:"comment"`
}

type ChangeTypeResult struct {
	NoticeID   string `json:"notice_id"`
	NoticeType string `json:"notice_type"`
	Review     ReviewDTO
}

// ChangeType retypes the parent notice (concept note to full proposal and
// the reverse), forces the acting reviewer's own review on the latest version
// to NEEDS_MODIFICATION, and records the explanation as a comment. Other
// reviewers' verdicts are left untouched.
func (u *Usecase) ChangeType(ctx context.Context, act actor.Actor, submissionID string, in ChangeTypeInput) (*ChangeTypeResult, error) {
	newType := domainNotice.Type(in.NewType)
	if !domainNotice.ValidType(newType) {
		return nil, apperr.Validation("new_type must be one of JUST_NOTICE, CONCEPT_NOTE, PROPOSAL")
	}
	if !act.HasAny(actor.RoleCoordinator, actor.RoleHead, actor.RoleDean) {
		return nil, apperr.Forbidden("role cannot change submission type")
	}

	var result ChangeTypeResult
	err := u.uow.WithinSubmissionTx(ctx, submissionID, func(r uow.Repos, s *domain.Submission) error {
		if err := u.ensureNotDecided(ctx, r, s.ID); err != nil {
			return err
		}

		latest, err := r.Submissions.LatestVersion(ctx, s.ID)
		if err != nil {
			return apperr.Storage(err)
		}
		rec, err := r.Submissions.GetReview(ctx, latest.ID, act.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("no review found for acting reviewer")
			}
			return apperr.Storage(err)
		}

		n, err := u.noticeByID(ctx, r, s.NoticeID)
		if err != nil {
			return err
		}
		n.Type = newType
		if err := r.Notices.Save(ctx, n); err != nil {
			return apperr.Storage(err)
		}

		rec.Status = domain.ReviewNeedsModification
		if err := r.Submissions.SaveReview(ctx, rec); err != nil {
			return apperr.Storage(err)
		}

		if in.Comment != "" {
			c := &domain.Comment{
				CommentID: id.NewID32(),
				ReviewID:  rec.ID,
				AuthorID:  act.UserID,
				Content:   in.Comment,
			}
			if err := r.Submissions.CreateComment(ctx, c); err != nil {
				return apperr.Storage(err)
			}
		}

		result = ChangeTypeResult{
			NoticeID:   n.NoticeID,
			NoticeType: string(n.Type),
			Review:     toDTO(rec, latest.VersionID),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (u *Usecase) getOwnComment(ctx context.Context, act actor.Actor, commentID string) (*domain.Comment, error) {
	c, err := u.submissions.GetCommentByCommentID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("comment %s not found", commentID)
		}
		return nil, apperr.Storage(err)
	}
	if c.AuthorID != act.UserID {
		return nil, apperr.Forbidden("only the author may modify a comment")
	}
	rec, err := u.submissions.GetReviewByID(ctx, c.ReviewID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if err := u.ensureReviewNotFrozen(ctx, rec); err != nil {
		return nil, err
	}
	return c, nil
}

// ensureReviewNotFrozen walks review -> version -> submission and rejects the
// mutation once a final decision exists.
func (u *Usecase) ensureReviewNotFrozen(ctx context.Context, rec *domain.Review) error {
	v, err := u.submissions.GetVersionByID(ctx, rec.VersionID)
	if err != nil {
		return apperr.Storage(err)
	}
	if _, err := u.submissions.GetDecision(ctx, v.SubmissionID); err == nil {
		return apperr.Conflict("decision already final")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Storage(err)
	}
	return nil
}

func (u *Usecase) ensureNotDecided(ctx context.Context, r uow.Repos, submissionNumericID uint64) error {
	if _, err := r.Submissions.GetDecision(ctx, submissionNumericID); err == nil {
		return apperr.Conflict("decision already final")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Storage(err)
	}
	return nil
}

func (u *Usecase) noticeByID(ctx context.Context, r uow.Repos, noticeNumericID uint64) (*domainNotice.Notice, error) {
	notices, err := r.Notices.GetByIDs(ctx, []uint64{noticeNumericID})
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if len(notices) == 0 {
		return nil, apperr.NotFound("notice not found")
	}
	return &notices[0], nil
}

func toDTO(r *domain.Review, versionID string) ReviewDTO {
	return ReviewDTO{
		ReviewID:   r.ReviewID,
		VersionID:  versionID,
		ReviewerID: r.ReviewerID,
		Status:     string(r.Status),
		UpdatedAt:  r.UpdatedAt,
	}
}

func toCommentDTO(c *domain.Comment) *CommentDTO {
	return &CommentDTO{
		CommentID: c.CommentID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
