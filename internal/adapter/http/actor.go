package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"grantflow-backend/internal/domain/actor"
	"grantflow-backend/pkg/apperr"
)

// ResolveActor builds the explicit actor from the trusted auth headers. The
// auth collaborator terminates credentials upstream; here we only parse.
func ResolveActor(c echo.Context) (actor.Actor, error) {
	userID := strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Id"))
	if userID == "" {
		return actor.Actor{}, apperr.Validation("missing Ax-Actor-Id")
	}
	rawRoles := strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Roles"))
	if rawRoles == "" {
		return actor.Actor{}, apperr.Validation("missing Ax-Actor-Roles")
	}

	var roles []actor.Role
	for _, part := range strings.Split(rawRoles, ",") {
		if part = strings.TrimSpace(part); part == "" {
			continue
		}
		role, err := actor.ParseRole(part)
		if err != nil {
			return actor.Actor{}, err
		}
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		return actor.Actor{}, apperr.Validation("missing Ax-Actor-Roles")
	}
	return actor.Actor{UserID: userID, Roles: roles}, nil
}
