package submissionmock

import (
	"context"

	domain "grantflow-backend/internal/domain/submission"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies submission.Repository.
// Unset getter fields return context.Canceled so a test that forgot to stub
// one fails loudly.
type Repo struct {
	CreateFn                     func(ctx context.Context, s *domain.Submission) error
	GetByIDFn                    func(ctx context.Context, id uint64) (*domain.Submission, error)
	GetBySubmissionIDFn          func(ctx context.Context, submissionID string) (*domain.Submission, error)
	GetBySubmissionIDForUpdateFn func(ctx context.Context, submissionID string) (*domain.Submission, error)
	GetByNoticeAndSubmitterFn    func(ctx context.Context, noticeID uint64, submitterID string) (*domain.Submission, error)
	ListByNoticeFn               func(ctx context.Context, noticeID uint64) ([]domain.Submission, error)
	SaveFn                       func(ctx context.Context, s *domain.Submission) error

	CreateVersionFn        func(ctx context.Context, v *domain.Version) error
	GetVersionByIDFn       func(ctx context.Context, id uint64) (*domain.Version, error)
	GetVersionByVersionIDFn func(ctx context.Context, versionID string) (*domain.Version, error)
	LatestVersionFn        func(ctx context.Context, submissionID uint64) (*domain.Version, error)
	ListVersionsFn         func(ctx context.Context, submissionID uint64) ([]domain.Version, error)

	CreateReviewFn        func(ctx context.Context, r *domain.Review) error
	SaveReviewFn          func(ctx context.Context, r *domain.Review) error
	GetReviewFn           func(ctx context.Context, versionID uint64, reviewerID string) (*domain.Review, error)
	GetReviewByIDFn       func(ctx context.Context, id uint64) (*domain.Review, error)
	GetReviewByReviewIDFn func(ctx context.Context, reviewID string) (*domain.Review, error)
	ListReviewsFn         func(ctx context.Context, versionID uint64) ([]domain.Review, error)

	CreateCommentFn         func(ctx context.Context, c *domain.Comment) error
	GetCommentByCommentIDFn func(ctx context.Context, commentID string) (*domain.Comment, error)
	SaveCommentFn           func(ctx context.Context, c *domain.Comment) error
	DeleteCommentFn         func(ctx context.Context, id uint64) error
	ListCommentsFn          func(ctx context.Context, reviewID uint64) ([]domain.Comment, error)

	CreateDecisionFn func(ctx context.Context, d *domain.Decision) error
	GetDecisionFn    func(ctx context.Context, submissionID uint64) (*domain.Decision, error)

	CreateApprovalFn func(ctx context.Context, a *domain.DirectorApproval) error
	GetApprovalFn    func(ctx context.Context, submissionID uint64) (*domain.DirectorApproval, error)

	CreateForwardFn func(ctx context.Context, f *domain.Forward) error
	GetForwardFn    func(ctx context.Context, submissionID uint64) (*domain.Forward, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Submission) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Submission, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetBySubmissionID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	if m.GetBySubmissionIDFn != nil {
		return m.GetBySubmissionIDFn(ctx, submissionID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*domain.Submission, error) {
	if m.GetBySubmissionIDForUpdateFn != nil {
		return m.GetBySubmissionIDForUpdateFn(ctx, submissionID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByNoticeAndSubmitter(ctx context.Context, noticeID uint64, submitterID string) (*domain.Submission, error) {
	if m.GetByNoticeAndSubmitterFn != nil {
		return m.GetByNoticeAndSubmitterFn(ctx, noticeID, submitterID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByNotice(ctx context.Context, noticeID uint64) ([]domain.Submission, error) {
	if m.ListByNoticeFn != nil {
		return m.ListByNoticeFn(ctx, noticeID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, s *domain.Submission) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *Repo) CreateVersion(ctx context.Context, v *domain.Version) error {
	if m.CreateVersionFn != nil {
		return m.CreateVersionFn(ctx, v)
	}
	return nil
}

func (m *Repo) GetVersionByID(ctx context.Context, id uint64) (*domain.Version, error) {
	if m.GetVersionByIDFn != nil {
		return m.GetVersionByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetVersionByVersionID(ctx context.Context, versionID string) (*domain.Version, error) {
	if m.GetVersionByVersionIDFn != nil {
		return m.GetVersionByVersionIDFn(ctx, versionID)
	}
	return nil, context.Canceled
}

func (m *Repo) LatestVersion(ctx context.Context, submissionID uint64) (*domain.Version, error) {
	if m.LatestVersionFn != nil {
		return m.LatestVersionFn(ctx, submissionID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListVersions(ctx context.Context, submissionID uint64) ([]domain.Version, error) {
	if m.ListVersionsFn != nil {
		return m.ListVersionsFn(ctx, submissionID)
	}
	return nil, nil
}

func (m *Repo) CreateReview(ctx context.Context, r *domain.Review) error {
	if m.CreateReviewFn != nil {
		return m.CreateReviewFn(ctx, r)
	}
	return nil
}

func (m *Repo) SaveReview(ctx context.Context, r *domain.Review) error {
	if m.SaveReviewFn != nil {
		return m.SaveReviewFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetReview(ctx context.Context, versionID uint64, reviewerID string) (*domain.Review, error) {
	if m.GetReviewFn != nil {
		return m.GetReviewFn(ctx, versionID, reviewerID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetReviewByID(ctx context.Context, id uint64) (*domain.Review, error) {
	if m.GetReviewByIDFn != nil {
		return m.GetReviewByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetReviewByReviewID(ctx context.Context, reviewID string) (*domain.Review, error) {
	if m.GetReviewByReviewIDFn != nil {
		return m.GetReviewByReviewIDFn(ctx, reviewID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListReviews(ctx context.Context, versionID uint64) ([]domain.Review, error) {
	if m.ListReviewsFn != nil {
		return m.ListReviewsFn(ctx, versionID)
	}
	return nil, nil
}

func (m *Repo) CreateComment(ctx context.Context, c *domain.Comment) error {
	if m.CreateCommentFn != nil {
		return m.CreateCommentFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetCommentByCommentID(ctx context.Context, commentID string) (*domain.Comment, error) {
	if m.GetCommentByCommentIDFn != nil {
		return m.GetCommentByCommentIDFn(ctx, commentID)
	}
	return nil, context.Canceled
}

func (m *Repo) SaveComment(ctx context.Context, c *domain.Comment) error {
	if m.SaveCommentFn != nil {
		return m.SaveCommentFn(ctx, c)
	}
	return nil
}

func (m *Repo) DeleteComment(ctx context.Context, id uint64) error {
	if m.DeleteCommentFn != nil {
		return m.DeleteCommentFn(ctx, id)
	}
	return nil
}

func (m *Repo) ListComments(ctx context.Context, reviewID uint64) ([]domain.Comment, error) {
	if m.ListCommentsFn != nil {
		return m.ListCommentsFn(ctx, reviewID)
	}
	return nil, nil
}

func (m *Repo) CreateDecision(ctx context.Context, d *domain.Decision) error {
	if m.CreateDecisionFn != nil {
		return m.CreateDecisionFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetDecision(ctx context.Context, submissionID uint64) (*domain.Decision, error) {
	if m.GetDecisionFn != nil {
		return m.GetDecisionFn(ctx, submissionID)
	}
	return nil, context.Canceled
}

func (m *Repo) CreateApproval(ctx context.Context, a *domain.DirectorApproval) error {
	if m.CreateApprovalFn != nil {
		return m.CreateApprovalFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetApproval(ctx context.Context, submissionID uint64) (*domain.DirectorApproval, error) {
	if m.GetApprovalFn != nil {
		return m.GetApprovalFn(ctx, submissionID)
	}
	return nil, context.Canceled
}

func (m *Repo) CreateForward(ctx context.Context, f *domain.Forward) error {
	if m.CreateForwardFn != nil {
		return m.CreateForwardFn(ctx, f)
	}
	return nil
}

func (m *Repo) GetForward(ctx context.Context, submissionID uint64) (*domain.Forward, error) {
	if m.GetForwardFn != nil {
		return m.GetForwardFn(ctx, submissionID)
	}
	return nil, context.Canceled
}
