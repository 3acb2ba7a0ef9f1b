package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"grantflow-backend/internal/domain/submission"
	"grantflow-backend/internal/domain/uow"
	"grantflow-backend/pkg/apperr"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		OrgUnits:    &OrgUnitRepository{db: tx},
		Notices:     &NoticeRepository{db: tx},
		Submissions: &SubmissionRepository{db: tx},
		Projects:    &ProjectRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinSubmissionTx(ctx context.Context, submissionID string, fn func(r uow.Repos, s *submission.Submission) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the submission row up-front to prevent races
		s, err := r.Submissions.GetBySubmissionIDForUpdate(ctx, submissionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("submission %s not found", submissionID)
			}
			return apperr.Storage(err)
		}
		return fn(r, s)
	})
}
