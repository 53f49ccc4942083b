package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"goeventcity/internal/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestBookingSessionRepository_RoundTrip(t *testing.T) {
	repo := NewBookingSessionRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, map[string]string{"event_name": "Summer Gala"}, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, created.CurrentStep)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Summer Gala", got.Data["event_name"])
	assert.False(t, got.Expired(time.Now()))
}

func TestBookingSessionRepository_UpdateReplacesData(t *testing.T) {
	repo := NewBookingSessionRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, map[string]string{"event_name": "Summer Gala"}, time.Hour)
	require.NoError(t, err)

	err = repo.Update(ctx, created.ID, 2, map[string]string{
		"event_name": "Summer Gala",
		"venue_id":   "venue-1",
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentStep)
	assert.Equal(t, "venue-1", got.Data["venue_id"])
}

func TestBookingSessionRepository_UpdateMissing(t *testing.T) {
	repo := NewBookingSessionRepository(newTestDB(t))

	err := repo.Update(context.Background(), "no-such-id", 2, map[string]string{})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookingSessionRepository_DeleteExpired(t *testing.T) {
	repo := NewBookingSessionRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, nil, -time.Minute)
	require.NoError(t, err)
	_, err = repo.Create(ctx, nil, -time.Second)
	require.NoError(t, err)
	live, err := repo.Create(ctx, nil, time.Hour)
	require.NoError(t, err)

	removed, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = repo.Get(ctx, live.ID)
	assert.NoError(t, err)
}
