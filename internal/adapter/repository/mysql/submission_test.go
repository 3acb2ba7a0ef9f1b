package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	noticeDomain "grantflow-backend/internal/domain/notice"
	orgDomain "grantflow-backend/internal/domain/orgunit"
	projDomain "grantflow-backend/internal/domain/project"
	subDomain "grantflow-backend/internal/domain/submission"
	"grantflow-backend/pkg/id"
)

// openTestDB migrates the full schema into an in-memory sqlite DB. The
// domain models carry no MySQL-only column types, so they migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&orgDomain.OrgUnit{}, &orgDomain.Membership{},
		&noticeDomain.Notice{}, &noticeDomain.Target{}, &noticeDomain.Forward{},
		&subDomain.Submission{}, &subDomain.Version{}, &subDomain.Review{},
		&subDomain.Comment{}, &subDomain.Decision{}, &subDomain.DirectorApproval{},
		&subDomain.Forward{},
		&projDomain.Project{}, &projDomain.Budget{}, &projDomain.Task{},
	)
	if err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeSubmission(noticeID uint64, submitterID string) *subDomain.Submission {
	return &subDomain.Submission{
		SubmissionID: id.NewID32(),
		NoticeID:     noticeID,
		SubmitterID:  submitterID,
		OrgUnitID:    1,
	}
}

func makeVersion(submissionID uint64, number int) *subDomain.Version {
	return &subDomain.Version{
		VersionID:     id.NewID32(),
		SubmissionID:  submissionID,
		VersionNumber: number,
		Title:         "Soil study",
		Type:          noticeDomain.TypeConceptNote,
	}
}

func TestSubmissionRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	s := makeSubmission(1, id.NewID32())
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.ID == 0 {
		t.Fatal("Create did not set auto-increment ID")
	}

	got, err := repo.GetBySubmissionID(ctx, s.SubmissionID)
	if err != nil {
		t.Fatalf("GetBySubmissionID: %v", err)
	}
	if got.SubmitterID != s.SubmitterID {
		t.Fatalf("submitter = %s, want %s", got.SubmitterID, s.SubmitterID)
	}

	if _, err := repo.GetBySubmissionID(ctx, "nope"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing submission err = %v", err)
	}
}

func TestSubmissionRepository_OnePerNoticeAndSubmitter(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	submitter := id.NewID32()
	if err := repo.Create(ctx, makeSubmission(1, submitter)); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if err := repo.Create(ctx, makeSubmission(1, submitter)); err == nil {
		t.Fatal("duplicate (notice, submitter) insert succeeded")
	}
	// Same submitter, different notice is fine.
	if err := repo.Create(ctx, makeSubmission(2, submitter)); err != nil {
		t.Fatalf("Create on other notice: %v", err)
	}
}

func TestSubmissionRepository_VersionNumbersUniquePerSubmission(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	s := makeSubmission(1, id.NewID32())
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	for n := 1; n <= 3; n++ {
		if err := repo.CreateVersion(ctx, makeVersion(s.ID, n)); err != nil {
			t.Fatalf("CreateVersion %d: %v", n, err)
		}
	}
	if err := repo.CreateVersion(ctx, makeVersion(s.ID, 2)); err == nil {
		t.Fatal("duplicate version number insert succeeded")
	}

	latest, err := repo.LatestVersion(ctx, s.ID)
	if err != nil {
		t.Fatalf("LatestVersion: %v", err)
	}
	if latest.VersionNumber != 3 {
		t.Fatalf("latest = %d, want 3", latest.VersionNumber)
	}

	versions, err := repo.ListVersions(ctx, s.ID)
	if err != nil {
		t.Fatalf("ListVersions: %v", err)
	}
	for i, v := range versions {
		if v.VersionNumber != i+1 {
			t.Fatalf("versions out of order: %v", versions)
		}
	}
}

func TestSubmissionRepository_OneReviewPerReviewerAndVersion(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	s := makeSubmission(1, id.NewID32())
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	v := makeVersion(s.ID, 1)
	if err := repo.CreateVersion(ctx, v); err != nil {
		t.Fatalf("CreateVersion: %v", err)
	}

	reviewer := id.NewID32()
	rec := &subDomain.Review{ReviewID: id.NewID32(), VersionID: v.ID, ReviewerID: reviewer, Status: subDomain.ReviewPending}
	if err := repo.CreateReview(ctx, rec); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	dup := &subDomain.Review{ReviewID: id.NewID32(), VersionID: v.ID, ReviewerID: reviewer, Status: subDomain.ReviewPending}
	if err := repo.CreateReview(ctx, dup); err == nil {
		t.Fatal("duplicate reviewer insert succeeded")
	}

	// Re-review updates in place instead.
	rec.Status = subDomain.ReviewAccepted
	if err := repo.SaveReview(ctx, rec); err != nil {
		t.Fatalf("SaveReview: %v", err)
	}
	got, err := repo.GetReview(ctx, v.ID, reviewer)
	if err != nil {
		t.Fatalf("GetReview: %v", err)
	}
	if got.Status != subDomain.ReviewAccepted {
		t.Fatalf("status = %s, want ACCEPTED", got.Status)
	}
}

func TestSubmissionRepository_DecisionSingleShot(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	s := makeSubmission(1, id.NewID32())
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}

	d := &subDomain.Decision{DecisionID: id.NewID32(), SubmissionID: s.ID, Status: subDomain.DecisionAccepted, Reason: "strong", DecidedBy: id.NewID32()}
	if err := repo.CreateDecision(ctx, d); err != nil {
		t.Fatalf("CreateDecision: %v", err)
	}
	second := &subDomain.Decision{DecisionID: id.NewID32(), SubmissionID: s.ID, Status: subDomain.DecisionRejected, Reason: "changed mind", DecidedBy: id.NewID32()}
	if err := repo.CreateDecision(ctx, second); err == nil {
		t.Fatal("second decision insert succeeded")
	}

	got, err := repo.GetDecision(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetDecision: %v", err)
	}
	if got.Status != subDomain.DecisionAccepted {
		t.Fatalf("status = %s, first decision should stand", got.Status)
	}
}

func TestSubmissionRepository_ApprovalAndForwardSingleShot(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	s := makeSubmission(1, id.NewID32())
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}

	a := &subDomain.DirectorApproval{
		ApprovalID:      id.NewID32(),
		SubmissionID:    s.ID,
		Status:          subDomain.ReviewAccepted,
		AllocatedBudget: decimal.NewFromInt(200),
		ApprovedBy:      id.NewID32(),
	}
	if err := repo.CreateApproval(ctx, a); err != nil {
		t.Fatalf("CreateApproval: %v", err)
	}
	a2 := &subDomain.DirectorApproval{ApprovalID: id.NewID32(), SubmissionID: s.ID, Status: subDomain.ReviewRejected, AllocatedBudget: decimal.Zero, ApprovedBy: id.NewID32()}
	if err := repo.CreateApproval(ctx, a2); err == nil {
		t.Fatal("second approval insert succeeded")
	}

	got, err := repo.GetApproval(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetApproval: %v", err)
	}
	if !got.AllocatedBudget.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("allocated = %s, want 200", got.AllocatedBudget)
	}

	f := &subDomain.Forward{SubmissionID: s.ID, FromOrgUnitID: 1, ToOrgUnitID: 2, TargetRole: "dean", ForwardedBy: id.NewID32()}
	if err := repo.CreateForward(ctx, f); err != nil {
		t.Fatalf("CreateForward: %v", err)
	}
	f2 := &subDomain.Forward{SubmissionID: s.ID, FromOrgUnitID: 1, ToOrgUnitID: 2, TargetRole: "dean", ForwardedBy: id.NewID32()}
	if err := repo.CreateForward(ctx, f2); err == nil {
		t.Fatal("second proposal forward insert succeeded")
	}
}

func TestSubmissionRepository_Comments(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	s := makeSubmission(1, id.NewID32())
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	v := makeVersion(s.ID, 1)
	if err := repo.CreateVersion(ctx, v); err != nil {
		t.Fatalf("CreateVersion: %v", err)
	}
	rec := &subDomain.Review{ReviewID: id.NewID32(), VersionID: v.ID, ReviewerID: id.NewID32(), Status: subDomain.ReviewPending}
	if err := repo.CreateReview(ctx, rec); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	c := &subDomain.Comment{CommentID: id.NewID32(), ReviewID: rec.ID, AuthorID: rec.ReviewerID, Content: "section 3 is thin"}
	if err := repo.CreateComment(ctx, c); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	c.Content = "section 3 needs data"
	time.Sleep(5 * time.Millisecond) // let updated_at move
	if err := repo.SaveComment(ctx, c); err != nil {
		t.Fatalf("SaveComment: %v", err)
	}
	got, err := repo.GetCommentByCommentID(ctx, c.CommentID)
	if err != nil {
		t.Fatalf("GetCommentByCommentID: %v", err)
	}
	if got.Content != "section 3 needs data" {
		t.Fatalf("content = %s", got.Content)
	}

	if err := repo.DeleteComment(ctx, c.ID); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if _, err := repo.GetCommentByCommentID(ctx, c.CommentID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("deleted comment err = %v", err)
	}

	list, err := repo.ListComments(ctx, rec.ID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("comments = %d, want 0", len(list))
	}
}
