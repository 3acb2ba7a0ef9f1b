package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	subDomain "grantflow-backend/internal/domain/submission"
)

type SubmissionRepository struct{ db *gorm.DB }

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *subDomain.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id uint64) (*subDomain.Submission, error) {
	var out subDomain.Submission
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) GetBySubmissionID(ctx context.Context, submissionID string) (*subDomain.Submission, error) {
	var out subDomain.Submission
	res := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*subDomain.Submission, error) {
	q := r.db.WithContext(ctx)
	// sqlite has no FOR UPDATE; its tx already serializes writers.
	if r.db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out subDomain.Submission
	res := q.Where("submission_id = ?", submissionID).First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) GetByNoticeAndSubmitter(ctx context.Context, noticeID uint64, submitterID string) (*subDomain.Submission, error) {
	var out subDomain.Submission
	res := r.db.WithContext(ctx).
		Where("notice_id = ? AND submitter_id = ?", noticeID, submitterID).
		First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) ListByNotice(ctx context.Context, noticeID uint64) ([]subDomain.Submission, error) {
	var out []subDomain.Submission
	res := r.db.WithContext(ctx).Where("notice_id = ?", noticeID).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *SubmissionRepository) Save(ctx context.Context, s *subDomain.Submission) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SubmissionRepository) CreateVersion(ctx context.Context, v *subDomain.Version) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *SubmissionRepository) GetVersionByID(ctx context.Context, id uint64) (*subDomain.Version, error) {
	var out subDomain.Version
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) GetVersionByVersionID(ctx context.Context, versionID string) (*subDomain.Version, error) {
	var out subDomain.Version
	res := r.db.WithContext(ctx).Where("version_id = ?", versionID).First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) LatestVersion(ctx context.Context, submissionID uint64) (*subDomain.Version, error) {
	var out subDomain.Version
	res := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("version_number DESC").
		First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) ListVersions(ctx context.Context, submissionID uint64) ([]subDomain.Version, error) {
	var out []subDomain.Version
	res := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("version_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *SubmissionRepository) CreateReview(ctx context.Context, rec *subDomain.Review) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *SubmissionRepository) SaveReview(ctx context.Context, rec *subDomain.Review) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *SubmissionRepository) GetReview(ctx context.Context, versionID uint64, reviewerID string) (*subDomain.Review, error) {
	var out subDomain.Review
	res := r.db.WithContext(ctx).
		Where("version_id = ? AND reviewer_id = ?", versionID, reviewerID).
		First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) GetReviewByID(ctx context.Context, id uint64) (*subDomain.Review, error) {
	var out subDomain.Review
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) GetReviewByReviewID(ctx context.Context, reviewID string) (*subDomain.Review, error) {
	var out subDomain.Review
	res := r.db.WithContext(ctx).Where("review_id = ?", reviewID).First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) ListReviews(ctx context.Context, versionID uint64) ([]subDomain.Review, error) {
	var out []subDomain.Review
	res := r.db.WithContext(ctx).Where("version_id = ?", versionID).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *SubmissionRepository) CreateComment(ctx context.Context, c *subDomain.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *SubmissionRepository) GetCommentByCommentID(ctx context.Context, commentID string) (*subDomain.Comment, error) {
	var out subDomain.Comment
	res := r.db.WithContext(ctx).Where("comment_id = ?", commentID).First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) SaveComment(ctx context.Context, c *subDomain.Comment) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *SubmissionRepository) DeleteComment(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&subDomain.Comment{}).Error
}

func (r *SubmissionRepository) ListComments(ctx context.Context, reviewID uint64) ([]subDomain.Comment, error) {
	var out []subDomain.Comment
	res := r.db.WithContext(ctx).Where("review_id = ?", reviewID).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *SubmissionRepository) CreateDecision(ctx context.Context, d *subDomain.Decision) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *SubmissionRepository) GetDecision(ctx context.Context, submissionID uint64) (*subDomain.Decision, error) {
	var out subDomain.Decision
	res := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) CreateApproval(ctx context.Context, a *subDomain.DirectorApproval) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *SubmissionRepository) GetApproval(ctx context.Context, submissionID uint64) (*subDomain.DirectorApproval, error) {
	var out subDomain.DirectorApproval
	res := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) CreateForward(ctx context.Context, f *subDomain.Forward) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *SubmissionRepository) GetForward(ctx context.Context, submissionID uint64) (*subDomain.Forward, error) {
	var out subDomain.Forward
	res := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&out)
	return &out, res.Error
}
