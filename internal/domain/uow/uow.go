package uow

import (
	"context"

	"grantflow-backend/internal/domain/notice"
	"grantflow-backend/internal/domain/orgunit"
	"grantflow-backend/internal/domain/project"
	"grantflow-backend/internal/domain/submission"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	OrgUnits    orgunit.Repository
	Notices     notice.Repository
	Submissions submission.Repository
	Projects    project.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the submission row first, then pass it in
	WithinSubmissionTx(ctx context.Context, submissionID string, fn func(r Repos, s *submission.Submission) error) error
}
