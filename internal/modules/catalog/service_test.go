package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"goeventcity/internal/domain"
)

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockEventRepo) Update(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *mockEventRepo) List(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

type mockPurger struct {
	mock.Mock
}

func (m *mockPurger) PurgeTags(ctx context.Context, tags ...string) error {
	args := m.Called(ctx, tags)
	return args.Error(0)
}

func createReq() CreateEventRequest {
	return CreateEventRequest{
		Title:     "Riverside Nights",
		EventType: "festival",
		VenueID:   "venue-1",
		StartsAt:  time.Date(2026, 10, 3, 19, 0, 0, 0, time.UTC),
		Capacity:  2000,
	}
}

func TestCreateEvent_PurgesListingTags(t *testing.T) {
	events := new(mockEventRepo)
	purger := new(mockPurger)
	svc := NewService(events, nil, nil, purger)

	events.On("Create", mock.Anything, mock.Anything).Return(nil)
	purger.On("PurgeTags", mock.Anything, mock.MatchedBy(func(tags []string) bool {
		seen := map[string]bool{}
		for _, tag := range tags {
			seen[tag] = true
		}
		return seen["events"] && seen["venue:venue-1"]
	})).Return(nil)

	e, err := svc.CreateEvent(context.Background(), createReq())
	require.NoError(t, err)
	assert.Equal(t, "Riverside Nights", e.Title)
	purger.AssertExpectations(t)
}

// A purge failure never surfaces: the write already succeeded.
func TestCreateEvent_PurgeFailureIsSwallowed(t *testing.T) {
	events := new(mockEventRepo)
	purger := new(mockPurger)
	svc := NewService(events, nil, nil, purger)

	events.On("Create", mock.Anything, mock.Anything).Return(nil)
	purger.On("PurgeTags", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	e, err := svc.CreateEvent(context.Background(), createReq())
	require.NoError(t, err)
	assert.NotNil(t, e)
	purger.AssertExpectations(t)
}

func TestUpdateEvent_PurgeFailureIsSwallowed(t *testing.T) {
	events := new(mockEventRepo)
	purger := new(mockPurger)
	svc := NewService(events, nil, nil, purger)

	events.On("GetByID", mock.Anything, "e-1").
		Return(&domain.Event{ID: "e-1", Title: "Old", VenueID: "venue-1"}, nil)
	events.On("Update", mock.Anything, mock.Anything).Return(nil)
	purger.On("PurgeTags", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	e, err := svc.UpdateEvent(context.Background(), "e-1", UpdateEventRequest{Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", e.Title)
}

func TestUpdateEvent_NotFound(t *testing.T) {
	events := new(mockEventRepo)
	svc := NewService(events, nil, nil, nil)

	events.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateEvent(context.Background(), "missing", UpdateEventRequest{Title: "New"})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestUpdateEvent_PartialPatch(t *testing.T) {
	events := new(mockEventRepo)
	svc := NewService(events, nil, nil, nil)

	events.On("GetByID", mock.Anything, "e-1").
		Return(&domain.Event{ID: "e-1", Title: "Old", EventType: "concert", Capacity: 100}, nil)
	events.On("Update", mock.Anything, mock.Anything).Return(nil)

	e, err := svc.UpdateEvent(context.Background(), "e-1", UpdateEventRequest{Capacity: 250})
	require.NoError(t, err)
	assert.Equal(t, "Old", e.Title)
	assert.Equal(t, "concert", e.EventType)
	assert.Equal(t, 250, e.Capacity)
}

func TestListEvents_ClampsLimit(t *testing.T) {
	events := new(mockEventRepo)
	svc := NewService(events, nil, nil, nil)

	events.On("List", mock.Anything, 20, 0).Return([]domain.Event{}, nil)

	_, err := svc.ListEvents(context.Background(), 500, 0)
	require.NoError(t, err)
	events.AssertExpectations(t)
}
