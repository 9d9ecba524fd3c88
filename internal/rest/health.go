package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type (
	HealthHandler struct {
		interactionService HealthService
	}

	HealthService interface {
		HealthCounts(ctx context.Context) (users int64, events int64, err error)
	}
)

func NewHealthHandler(svc HealthService) *HealthHandler {
	return &HealthHandler{
		interactionService: svc,
	}
}

// GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	users, events, err := h.interactionService.HealthCounts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":       "ok",
		"users_known":  users,
		"events_known": events,
		"timestamp":    time.Now().Unix(),
	})
}
