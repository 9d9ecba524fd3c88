package rest

import (
	"context"
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	InteractionHandler struct {
		validate           *validator.Validate
		interactionService InteractionService
	}

	InteractionService interface {
		RecordInteraction(ctx context.Context, userID uint, eventID uint64, actionType string) error
	}

	InteractionRequest struct {
		EventID    uint64 `json:"event_id" validate:"required"`
		ActionType string `json:"action_type" validate:"required,oneof=interested not_interested"`
	}
)

func NewInteractionHandler(svc InteractionService) *InteractionHandler {
	return &InteractionHandler{
		validate:           validator.New(),
		interactionService: svc,
	}
}

// POST /api/v1/interactions
func (h *InteractionHandler) Record(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req InteractionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.interactionService.RecordInteraction(c.Request().Context(), userID, req.EventID, req.ActionType); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("interaction recorded"))
}
