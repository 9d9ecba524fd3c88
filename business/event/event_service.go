package event

import (
	"context"
	"errors"
	"fmt"

	"eventRadar/domain"
	"eventRadar/pkg/logger"
)

// EventRepository contract interface
type EventRepository interface {
	FindFiltered(ctx context.Context, filter domain.EventFilter) ([]domain.Event, int64, error)
	FindByID(ctx context.Context, id uint64) (domain.Event, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	CountByCategory(ctx context.Context) ([]domain.CategoryCount, error)
	CountByMonth(ctx context.Context) ([]domain.MonthCount, error)
}

type eventService struct {
	eventRepo EventRepository
}

func NewEventService(eventRepo EventRepository) *eventService {
	return &eventService{
		eventRepo: eventRepo,
	}
}

const (
	defaultPageSize = 4
	maxPageSize     = 100
)

// EventPage is one page of the filtered catalog listing.
type EventPage struct {
	Events     []domain.Event `json:"events"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

func (s *eventService) ListEvents(ctx context.Context, filter domain.EventFilter) (EventPage, error) {
	if err := ctx.Err(); err != nil {
		return EventPage{}, fmt.Errorf("context error: %w", err)
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	events, total, err := s.eventRepo.FindFiltered(ctx, filter)
	if err != nil {
		logger.Error("Failed to list events", err)
		return EventPage{}, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return EventPage{
		Events:     events,
		Total:      total,
		Page:       filter.Page,
		TotalPages: totalPages,
	}, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id uint64) (domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return domain.Event{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		logger.Error("Invalid event id")
		return domain.Event{}, errors.New("invalid event id")
	}

	ev, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find event", err)
		return domain.Event{}, err
	}

	return ev, nil
}

func (s *eventService) GetCategories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	categories, err := s.eventRepo.DistinctCategories(ctx)
	if err != nil {
		logger.Error("Failed to load event categories", err)
		return nil, err
	}

	return categories, nil
}

func (s *eventService) GetStatistics(ctx context.Context) ([]domain.CategoryCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	counts, err := s.eventRepo.CountByCategory(ctx)
	if err != nil {
		logger.Error("Failed to load event statistics", err)
		return nil, err
	}

	return counts, nil
}

func (s *eventService) GetMonthlyStatistics(ctx context.Context) ([]domain.MonthCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	counts, err := s.eventRepo.CountByMonth(ctx)
	if err != nil {
		logger.Error("Failed to load monthly event statistics", err)
		return nil, err
	}

	return counts, nil
}
