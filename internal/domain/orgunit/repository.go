package orgunit

import "context"

type Repository interface {
	GetByUnitID(ctx context.Context, unitID string) (*OrgUnit, error)
	// GetByUnitIDs returns the units that exist; unknown ids are simply
	// absent from the result, never an error.
	GetByUnitIDs(ctx context.Context, unitIDs []string) ([]OrgUnit, error)
	GetParent(ctx context.Context, id uint64) (*OrgUnit, error)
	HasChildren(ctx context.Context, id uint64) (bool, error)

	// ListUnitsForUser returns every unit the user holds any role in.
	ListUnitsForUser(ctx context.Context, userID string) ([]OrgUnit, error)
	// ListUnitsForUserRole narrows to one role.
	ListUnitsForUserRole(ctx context.Context, userID, role string) ([]OrgUnit, error)
	// ListLeafUnitsForUser returns the user's units that have no children.
	ListLeafUnitsForUser(ctx context.Context, userID string) ([]OrgUnit, error)
	// ListUserIDsByRoleInUnits returns the distinct users holding role in any
	// of the given units.
	ListUserIDsByRoleInUnits(ctx context.Context, role string, unitIDs []uint64) ([]string, error)
	// ListSubtreeIDs returns the ids of root and every unit below it.
	ListSubtreeIDs(ctx context.Context, rootID uint64) ([]uint64, error)
}
