package noticemock

import (
	"context"

	domain "grantflow-backend/internal/domain/notice"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies notice.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, n *domain.Notice) error
	GetByNoticeIDFn           func(ctx context.Context, noticeID string) (*domain.Notice, error)
	SaveFn                    func(ctx context.Context, n *domain.Notice) error
	ListTargetUnitIDsFn       func(ctx context.Context, noticeID uint64) ([]uint64, error)
	AddTargetsFn              func(ctx context.Context, noticeID uint64, orgUnitIDs []uint64) error
	RemoveTargetsFn           func(ctx context.Context, noticeID uint64, orgUnitIDs []uint64) error
	ListTargetedAtUnitsFn     func(ctx context.Context, orgUnitIDs []uint64) ([]domain.Notice, error)
	CreateForwardFn           func(ctx context.Context, f *domain.Forward) error
	ForwardExistsFn           func(ctx context.Context, noticeID, orgUnitID uint64, userID string) (bool, error)
	ListForwardsFn            func(ctx context.Context, noticeID uint64) ([]domain.Forward, error)
	ListForwardedNoticeIDsFn  func(ctx context.Context, forwarderRole string, orgUnitIDs []uint64, userID string) ([]uint64, error)
	GetByIDsFn                func(ctx context.Context, ids []uint64) ([]domain.Notice, error)
}

func (m *Repo) Create(ctx context.Context, n *domain.Notice) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}

func (m *Repo) GetByNoticeID(ctx context.Context, noticeID string) (*domain.Notice, error) {
	if m.GetByNoticeIDFn != nil {
		return m.GetByNoticeIDFn(ctx, noticeID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, n *domain.Notice) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, n)
	}
	return nil
}

func (m *Repo) ListTargetUnitIDs(ctx context.Context, noticeID uint64) ([]uint64, error) {
	if m.ListTargetUnitIDsFn != nil {
		return m.ListTargetUnitIDsFn(ctx, noticeID)
	}
	return nil, nil
}

func (m *Repo) AddTargets(ctx context.Context, noticeID uint64, orgUnitIDs []uint64) error {
	if m.AddTargetsFn != nil {
		return m.AddTargetsFn(ctx, noticeID, orgUnitIDs)
	}
	return nil
}

func (m *Repo) RemoveTargets(ctx context.Context, noticeID uint64, orgUnitIDs []uint64) error {
	if m.RemoveTargetsFn != nil {
		return m.RemoveTargetsFn(ctx, noticeID, orgUnitIDs)
	}
	return nil
}

func (m *Repo) ListTargetedAtUnits(ctx context.Context, orgUnitIDs []uint64) ([]domain.Notice, error) {
	if m.ListTargetedAtUnitsFn != nil {
		return m.ListTargetedAtUnitsFn(ctx, orgUnitIDs)
	}
	return nil, nil
}

func (m *Repo) CreateForward(ctx context.Context, f *domain.Forward) error {
	if m.CreateForwardFn != nil {
		return m.CreateForwardFn(ctx, f)
	}
	return nil
}

func (m *Repo) ForwardExists(ctx context.Context, noticeID, orgUnitID uint64, userID string) (bool, error) {
	if m.ForwardExistsFn != nil {
		return m.ForwardExistsFn(ctx, noticeID, orgUnitID, userID)
	}
	return false, nil
}

func (m *Repo) ListForwards(ctx context.Context, noticeID uint64) ([]domain.Forward, error) {
	if m.ListForwardsFn != nil {
		return m.ListForwardsFn(ctx, noticeID)
	}
	return nil, nil
}

func (m *Repo) ListForwardedNoticeIDs(ctx context.Context, forwarderRole string, orgUnitIDs []uint64, userID string) ([]uint64, error) {
	if m.ListForwardedNoticeIDsFn != nil {
		return m.ListForwardedNoticeIDsFn(ctx, forwarderRole, orgUnitIDs, userID)
	}
	return nil, nil
}

func (m *Repo) GetByIDs(ctx context.Context, ids []uint64) ([]domain.Notice, error) {
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}
	return nil, nil
}
