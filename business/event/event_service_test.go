package event

import (
	"context"
	"testing"

	"eventRadar/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events    []domain.Event
	total     int64
	gotFilter domain.EventFilter
}

func (f *fakeEventRepo) FindFiltered(ctx context.Context, filter domain.EventFilter) ([]domain.Event, int64, error) {
	f.gotFilter = filter
	return f.events, f.total, nil
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id uint64) (domain.Event, error) {
	return domain.Event{ID: id}, nil
}

func (f *fakeEventRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	return []string{"Koncert", "Divadlo"}, nil
}

func (f *fakeEventRepo) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	return []domain.CategoryCount{{EventType: "Koncert", Count: 3}}, nil
}

func (f *fakeEventRepo) CountByMonth(ctx context.Context) ([]domain.MonthCount, error) {
	return []domain.MonthCount{{Year: 2026, Month: 3, Count: 5}}, nil
}

func TestListEvents_Pagination(t *testing.T) {
	repo := &fakeEventRepo{events: []domain.Event{{ID: 1}}, total: 9}
	svc := NewEventService(repo)

	page, err := svc.ListEvents(context.Background(), domain.EventFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.gotFilter.Page, "page defaults to 1")
	assert.Equal(t, defaultPageSize, repo.gotFilter.Limit)
	assert.Equal(t, int64(9), page.Total)
	assert.Equal(t, 3, page.TotalPages, "9 events over pages of 4")
}

func TestListEvents_LimitClamped(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventService(repo)

	_, err := svc.ListEvents(context.Background(), domain.EventFilter{Limit: 10000})
	require.NoError(t, err)

	assert.Equal(t, maxPageSize, repo.gotFilter.Limit)
}

func TestGetEventByID_RejectsZero(t *testing.T) {
	svc := NewEventService(&fakeEventRepo{})

	_, err := svc.GetEventByID(context.Background(), 0)
	assert.Error(t, err)
}

func TestGetCategories(t *testing.T) {
	svc := NewEventService(&fakeEventRepo{})

	categories, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Koncert", "Divadlo"}, categories)
}
