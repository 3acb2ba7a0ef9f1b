package submission

import "context"

type Repository interface {
	Create(ctx context.Context, s *Submission) error
	GetByID(ctx context.Context, id uint64) (*Submission, error)
	GetBySubmissionID(ctx context.Context, submissionID string) (*Submission, error)
	// GetBySubmissionIDForUpdate locks the submission row for the duration of
	// the surrounding transaction.
	GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*Submission, error)
	GetByNoticeAndSubmitter(ctx context.Context, noticeID uint64, submitterID string) (*Submission, error)
	ListByNotice(ctx context.Context, noticeID uint64) ([]Submission, error)
	Save(ctx context.Context, s *Submission) error

	CreateVersion(ctx context.Context, v *Version) error
	GetVersionByID(ctx context.Context, id uint64) (*Version, error)
	GetVersionByVersionID(ctx context.Context, versionID string) (*Version, error)
	// LatestVersion is the single authoritative accessor for "current"
	// version state.
	LatestVersion(ctx context.Context, submissionID uint64) (*Version, error)
	ListVersions(ctx context.Context, submissionID uint64) ([]Version, error)

	CreateReview(ctx context.Context, r *Review) error
	SaveReview(ctx context.Context, r *Review) error
	GetReview(ctx context.Context, versionID uint64, reviewerID string) (*Review, error)
	GetReviewByID(ctx context.Context, id uint64) (*Review, error)
	GetReviewByReviewID(ctx context.Context, reviewID string) (*Review, error)
	ListReviews(ctx context.Context, versionID uint64) ([]Review, error)

	CreateComment(ctx context.Context, c *Comment) error
	GetCommentByCommentID(ctx context.Context, commentID string) (*Comment, error)
	SaveComment(ctx context.Context, c *Comment) error
	DeleteComment(ctx context.Context, id uint64) error
	ListComments(ctx context.Context, reviewID uint64) ([]Comment, error)

	CreateDecision(ctx context.Context, d *Decision) error
	GetDecision(ctx context.Context, submissionID uint64) (*Decision, error)

	CreateApproval(ctx context.Context, a *DirectorApproval) error
	GetApproval(ctx context.Context, submissionID uint64) (*DirectorApproval, error)

	CreateForward(ctx context.Context, f *Forward) error
	GetForward(ctx context.Context, submissionID uint64) (*Forward, error)
}
