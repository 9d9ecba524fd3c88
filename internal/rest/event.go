package rest

import (
	"context"
	"net/http"
	"strconv"

	"eventRadar/business/event"
	"eventRadar/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	EventHandler struct {
		eventService EventService
	}

	EventService interface {
		ListEvents(ctx context.Context, filter domain.EventFilter) (event.EventPage, error)
		GetEventByID(ctx context.Context, id uint64) (domain.Event, error)
		GetCategories(ctx context.Context) ([]string, error)
		GetStatistics(ctx context.Context) ([]domain.CategoryCount, error)
		GetMonthlyStatistics(ctx context.Context) ([]domain.MonthCount, error)
	}

	EventListQuery struct {
		Year      int    `query:"year"`
		Month     int    `query:"month"`
		EventType string `query:"event_type"`
		Search    string `query:"search"`
		Page      int    `query:"page"`
		Limit     int    `query:"limit"`
	}
)

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		eventService: svc,
	}
}

// GET /api/v1/events?year=&month=&event_type=&search=&page=&limit=
func (h *EventHandler) ListEvents(c echo.Context) error {
	var q EventListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	page, err := h.eventService.ListEvents(c.Request().Context(), domain.EventFilter{
		Year:      q.Year,
		Month:     q.Month,
		EventType: q.EventType,
		Search:    q.Search,
		Page:      q.Page,
		Limit:     q.Limit,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(page))
}

func (h *EventHandler) GetEventByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid event id"})
	}

	ev, err := h.eventService.GetEventByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ev))
}

func (h *EventHandler) GetCategories(c echo.Context) error {
	categories, err := h.eventService.GetCategories(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(categories))
}

func (h *EventHandler) GetStatistics(c echo.Context) error {
	counts, err := h.eventService.GetStatistics(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(counts))
}

func (h *EventHandler) GetMonthlyStatistics(c echo.Context) error {
	counts, err := h.eventService.GetMonthlyStatistics(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(counts))
}
