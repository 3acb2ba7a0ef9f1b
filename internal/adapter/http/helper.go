package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"grantflow-backend/internal/logging"
	"grantflow-backend/pkg/apperr"
)

// writeErr maps the error taxonomy onto status codes. Storage failures are
// logged with their cause but surfaced as an opaque 500.
func writeErr(c echo.Context, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case apperr.KindNotFound:
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case apperr.KindForbidden:
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case apperr.KindConflict:
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		logging.LogError("http", "writeErr", c.Path(), nil, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
