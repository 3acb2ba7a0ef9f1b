package orgunitmock

import (
	"context"

	domain "grantflow-backend/internal/domain/orgunit"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies orgunit.Repository.
// Fill in only the function fields a test needs.
type Repo struct {
	GetByUnitIDFn              func(ctx context.Context, unitID string) (*domain.OrgUnit, error)
	GetByUnitIDsFn             func(ctx context.Context, unitIDs []string) ([]domain.OrgUnit, error)
	GetParentFn                func(ctx context.Context, id uint64) (*domain.OrgUnit, error)
	HasChildrenFn              func(ctx context.Context, id uint64) (bool, error)
	ListUnitsForUserFn         func(ctx context.Context, userID string) ([]domain.OrgUnit, error)
	ListUnitsForUserRoleFn     func(ctx context.Context, userID, role string) ([]domain.OrgUnit, error)
	ListLeafUnitsForUserFn     func(ctx context.Context, userID string) ([]domain.OrgUnit, error)
	ListUserIDsByRoleInUnitsFn func(ctx context.Context, role string, unitIDs []uint64) ([]string, error)
	ListSubtreeIDsFn           func(ctx context.Context, rootID uint64) ([]uint64, error)
}

func (m *Repo) GetByUnitID(ctx context.Context, unitID string) (*domain.OrgUnit, error) {
	if m.GetByUnitIDFn != nil {
		return m.GetByUnitIDFn(ctx, unitID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByUnitIDs(ctx context.Context, unitIDs []string) ([]domain.OrgUnit, error) {
	if m.GetByUnitIDsFn != nil {
		return m.GetByUnitIDsFn(ctx, unitIDs)
	}
	return nil, nil
}

func (m *Repo) GetParent(ctx context.Context, id uint64) (*domain.OrgUnit, error) {
	if m.GetParentFn != nil {
		return m.GetParentFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) HasChildren(ctx context.Context, id uint64) (bool, error) {
	if m.HasChildrenFn != nil {
		return m.HasChildrenFn(ctx, id)
	}
	return false, nil
}

func (m *Repo) ListUnitsForUser(ctx context.Context, userID string) ([]domain.OrgUnit, error) {
	if m.ListUnitsForUserFn != nil {
		return m.ListUnitsForUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) ListUnitsForUserRole(ctx context.Context, userID, role string) ([]domain.OrgUnit, error) {
	if m.ListUnitsForUserRoleFn != nil {
		return m.ListUnitsForUserRoleFn(ctx, userID, role)
	}
	return nil, nil
}

func (m *Repo) ListLeafUnitsForUser(ctx context.Context, userID string) ([]domain.OrgUnit, error) {
	if m.ListLeafUnitsForUserFn != nil {
		return m.ListLeafUnitsForUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) ListUserIDsByRoleInUnits(ctx context.Context, role string, unitIDs []uint64) ([]string, error) {
	if m.ListUserIDsByRoleInUnitsFn != nil {
		return m.ListUserIDsByRoleInUnitsFn(ctx, role, unitIDs)
	}
	return nil, nil
}

func (m *Repo) ListSubtreeIDs(ctx context.Context, rootID uint64) ([]uint64, error) {
	if m.ListSubtreeIDsFn != nil {
		return m.ListSubtreeIDsFn(ctx, rootID)
	}
	return []uint64{rootID}, nil
}
