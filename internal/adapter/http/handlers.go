package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler carries routes that need no usecase behind them.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// Health is the liveness probe. It reports server time so operators can
// spot clock drift against the Ax-Request-At skew window.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}
