package actor

import (
	"strings"

	"grantflow-backend/pkg/apperr"
)

// Role is the closed set of roles the core understands. Anything else is
// rejected at the boundary; the core never compares free-text role strings.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleDean        Role = "dean"
	RoleCoordinator Role = "coordinator"
	RoleHead        Role = "head"
	RoleStaff       Role = "staff"
	RoleDirector    Role = "director"
	RoleReviewer    Role = "reviewer"
)

var validRoles = map[Role]struct{}{
	RoleAdmin:       {},
	RoleDean:        {},
	RoleCoordinator: {},
	RoleHead:        {},
	RoleStaff:       {},
	RoleDirector:    {},
	RoleReviewer:    {},
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := validRoles[r]; !ok {
		return "", apperr.Validation("unknown role %q", s)
	}
	return r, nil
}

// Actor is the identity every core operation receives explicitly. It is
// resolved once at the boundary from the authentication collaborator and
// trusted as given.
type Actor struct {
	UserID string
	Roles  []Role
}

func (a Actor) Has(r Role) bool {
	for _, have := range a.Roles {
		if have == r {
			return true
		}
	}
	return false
}

func (a Actor) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if a.Has(r) {
			return true
		}
	}
	return false
}
