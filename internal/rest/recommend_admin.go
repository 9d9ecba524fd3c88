package rest

import (
	"context"
	"net/http"

	"eventRadar/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendAdminHandler struct {
		validate   *validator.Validate
		configRepo EngineConfigStore
	}

	EngineConfigStore interface {
		GetConfig(ctx context.Context) (domain.EngineConfig, bool, error)
		UpsertConfig(ctx context.Context, cfg domain.EngineConfig) error
	}

	EngineConfigRequest struct {
		WCollaborative       float64 `json:"w_collaborative" validate:"gte=0,lte=1"`
		WContent             float64 `json:"w_content" validate:"gte=0,lte=1"`
		WPopularity          float64 `json:"w_popularity" validate:"gte=0,lte=1"`
		DistanceWeight       float64 `json:"distance_weight" validate:"gte=0"`
		DistanceCap          float64 `json:"distance_cap" validate:"gte=0"`
		RecencyWindowSeconds int     `json:"recency_window_seconds" validate:"gte=0"`
		ExcludeSeen          bool    `json:"exclude_seen"`
		DefaultTopN          int     `json:"default_top_n" validate:"gte=0"`
	}
)

func NewRecommendAdminHandler(configRepo EngineConfigStore) *RecommendAdminHandler {
	return &RecommendAdminHandler{
		validate:   validator.New(),
		configRepo: configRepo,
	}
}

// GET /api/v1/admin/recommendations/config
func (h *RecommendAdminHandler) GetConfig(c echo.Context) error {
	cfg, ok, err := h.configRepo.GetConfig(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "no config override stored"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cfg))
}

// PUT /api/v1/admin/recommendations/config
func (h *RecommendAdminHandler) UpsertConfig(c echo.Context) error {
	var req EngineConfigRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	cfg := domain.EngineConfig{
		WCollaborative:       req.WCollaborative,
		WContent:             req.WContent,
		WPopularity:          req.WPopularity,
		DistanceWeight:       req.DistanceWeight,
		DistanceCap:          req.DistanceCap,
		RecencyWindowSeconds: req.RecencyWindowSeconds,
		ExcludeSeen:          req.ExcludeSeen,
		DefaultTopN:          req.DefaultTopN,
	}

	if err := h.configRepo.UpsertConfig(c.Request().Context(), cfg); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("config updated"))
}
