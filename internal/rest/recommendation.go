package rest

import (
	"context"
	"net/http"
	"time"

	"eventRadar/domain"
	"eventRadar/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate         *validator.Validate
		recommendService RecommendationService
	}

	RecommendationService interface {
		Rank(ctx context.Context, userID uint, topN int) ([]uint64, error)
		DebugRank(ctx context.Context, userID uint, topN int) ([]domain.DebugRecommendation, error)
	}

	RecommendQuery struct {
		N int `query:"n"`
	}
)

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:         validator.New(),
		recommendService: svc,
	}
}

// GET /api/v1/recommendations?n=10
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	start := time.Now()
	ids, err := h.recommendService.Rank(c.Request().Context(), userID, q.N)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ids))
}

// GET /api/v1/recommendations/debug?n=10
func (h *RecommendationHandler) DebugRecommend(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	recs, err := h.recommendService.DebugRank(c.Request().Context(), userID, q.N)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}
