package mysql

import (
	"context"

	"gorm.io/gorm"

	orgDomain "grantflow-backend/internal/domain/orgunit"
)

type OrgUnitRepository struct{ db *gorm.DB }

func NewOrgUnitRepository(db *gorm.DB) *OrgUnitRepository { return &OrgUnitRepository{db: db} }

func (r *OrgUnitRepository) GetByUnitID(ctx context.Context, unitID string) (*orgDomain.OrgUnit, error) {
	var out orgDomain.OrgUnit
	res := r.db.WithContext(ctx).Where("unit_id = ?", unitID).First(&out)
	return &out, res.Error
}

func (r *OrgUnitRepository) GetByUnitIDs(ctx context.Context, unitIDs []string) ([]orgDomain.OrgUnit, error) {
	if len(unitIDs) == 0 {
		return nil, nil
	}
	var out []orgDomain.OrgUnit
	res := r.db.WithContext(ctx).Where("unit_id IN ?", unitIDs).Find(&out)
	return out, res.Error
}

func (r *OrgUnitRepository) GetParent(ctx context.Context, id uint64) (*orgDomain.OrgUnit, error) {
	var unit orgDomain.OrgUnit
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&unit).Error; err != nil {
		return nil, err
	}
	if unit.ParentID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	var parent orgDomain.OrgUnit
	res := r.db.WithContext(ctx).Where("id = ?", *unit.ParentID).First(&parent)
	return &parent, res.Error
}

func (r *OrgUnitRepository) HasChildren(ctx context.Context, id uint64) (bool, error) {
	var count int64
	res := r.db.WithContext(ctx).Model(&orgDomain.OrgUnit{}).Where("parent_id = ?", id).Count(&count)
	return count > 0, res.Error
}

func (r *OrgUnitRepository) ListUnitsForUser(ctx context.Context, userID string) ([]orgDomain.OrgUnit, error) {
	var out []orgDomain.OrgUnit
	res := r.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.org_unit_id = org_units.id").
		Where("memberships.user_id = ?", userID).
		Distinct("org_units.*").
		Find(&out)
	return out, res.Error
}

func (r *OrgUnitRepository) ListUnitsForUserRole(ctx context.Context, userID, role string) ([]orgDomain.OrgUnit, error) {
	var out []orgDomain.OrgUnit
	res := r.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.org_unit_id = org_units.id").
		Where("memberships.user_id = ? AND memberships.role = ?", userID, role).
		Distinct("org_units.*").
		Find(&out)
	return out, res.Error
}

// ListLeafUnitsForUser filters the user's units down to those with no child
// units.
func (r *OrgUnitRepository) ListLeafUnitsForUser(ctx context.Context, userID string) ([]orgDomain.OrgUnit, error) {
	units, err := r.ListUnitsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	leaves := make([]orgDomain.OrgUnit, 0, len(units))
	for _, unit := range units {
		hasChildren, err := r.HasChildren(ctx, unit.ID)
		if err != nil {
			return nil, err
		}
		if !hasChildren {
			leaves = append(leaves, unit)
		}
	}
	return leaves, nil
}

func (r *OrgUnitRepository) ListUserIDsByRoleInUnits(ctx context.Context, role string, unitIDs []uint64) ([]string, error) {
	if len(unitIDs) == 0 {
		return nil, nil
	}
	var out []string
	res := r.db.WithContext(ctx).
		Model(&orgDomain.Membership{}).
		Where("role = ? AND org_unit_id IN ?", role, unitIDs).
		Distinct().
		Pluck("user_id", &out)
	return out, res.Error
}

// ListSubtreeIDs walks down the tree level by level. Org trees are shallow,
// so a query per level beats a recursive CTE tied to one dialect.
func (r *OrgUnitRepository) ListSubtreeIDs(ctx context.Context, rootID uint64) ([]uint64, error) {
	ids := []uint64{rootID}
	frontier := []uint64{rootID}
	for len(frontier) > 0 {
		var children []uint64
		res := r.db.WithContext(ctx).
			Model(&orgDomain.OrgUnit{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &children)
		if res.Error != nil {
			return nil, res.Error
		}
		ids = append(ids, children...)
		frontier = children
	}
	return ids, nil
}
