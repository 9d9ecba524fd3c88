package postgres

import (
	"context"
	"errors"
	"fmt"

	"eventRadar/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

// FindAll returns the full catalog in a fixed order. The ranker uses this
// order as its tie-break, so it must be stable across calls.
func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.Event
	if err := r.DB.WithContext(ctx).
		Order("event_start_date DESC, id ASC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint64) (domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return domain.Event{}, fmt.Errorf("context error: %w", err)
	}

	var ev domain.Event
	err := r.DB.WithContext(ctx).First(&ev, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Event{}, errors.New("event not found")
		}
		return domain.Event{}, fmt.Errorf("failed to find event: %w", err)
	}

	return ev, nil
}

// FindFiltered applies the catalog listing filters with pagination and
// returns the page plus the total match count.
func (r *EventRepository) FindFiltered(ctx context.Context, filter domain.EventFilter) ([]domain.Event, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, fmt.Errorf("context error: %w", err)
	}

	q := r.DB.WithContext(ctx).Model(&domain.Event{})

	if filter.Year > 0 {
		q = q.Where("EXTRACT(YEAR FROM event_start_date) = ?", filter.Year)
	}
	if filter.Month > 0 {
		q = q.Where("EXTRACT(MONTH FROM event_start_date) = ?", filter.Month)
	}
	if filter.EventType != "" && filter.EventType != "All" {
		q = q.Where("event_type = ?", filter.EventType)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("title ILIKE ? OR location ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	var events []domain.Event
	offset := (filter.Page - 1) * filter.Limit
	if err := q.
		Order("event_start_date DESC, created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&events).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query events: %w", err)
	}

	return events, total, nil
}

func (r *EventRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var categories []string
	if err := r.DB.WithContext(ctx).
		Model(&domain.Event{}).
		Distinct().
		Where("event_type IS NOT NULL AND event_type <> ''").
		Order("event_type ASC").
		Pluck("event_type", &categories).Error; err != nil {
		return nil, fmt.Errorf("failed to query event categories: %w", err)
	}

	return categories, nil
}

func (r *EventRepository) CountByMonth(ctx context.Context) ([]domain.MonthCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var counts []domain.MonthCount
	if err := r.DB.WithContext(ctx).
		Model(&domain.Event{}).
		Select("EXTRACT(YEAR FROM event_start_date)::int AS year, EXTRACT(MONTH FROM event_start_date)::int AS month, COUNT(*) AS count").
		Where("event_start_date IS NOT NULL").
		Group("year, month").
		Order("year ASC, month ASC").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count events by month: %w", err)
	}

	return counts, nil
}

func (r *EventRepository) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var counts []domain.CategoryCount
	if err := r.DB.WithContext(ctx).
		Model(&domain.Event{}).
		Select("COALESCE(NULLIF(event_type, ''), 'Uncategorized') AS event_type, COUNT(*) AS count").
		Group("COALESCE(NULLIF(event_type, ''), 'Uncategorized')").
		Order("count DESC").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count events by category: %w", err)
	}

	return counts, nil
}
