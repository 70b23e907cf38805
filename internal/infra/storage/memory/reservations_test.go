package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuedesk/internal/domain/reservation"
	"venuedesk/internal/domain/schedule"
)

func seedReservation(t *testing.T, repo *ReservationRepository, venueID, startDate, startTime string) *reservation.Reservation {
	t.Helper()
	rec := &reservation.Reservation{
		VenueID:    venueID,
		EventTitle: "Test Event",
		StartDate:  schedule.Date(startDate),
		EndDate:    schedule.Date(startDate),
		StartTime:  schedule.Clock(startTime),
		EndTime:    "23:00",
		Status:     reservation.StatusProcessing,
	}
	require.NoError(t, repo.Create(context.Background(), rec))
	return rec
}

func TestReservationCreateAssignsIdentity(t *testing.T) {
	repo := NewReservationRepository()
	rec := seedReservation(t, repo, "venue-1", "2026-03-10", "09:00")

	assert.NotEmpty(t, rec.ID)
	assert.EqualValues(t, 1, rec.Version)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)
}

func TestReservationByID(t *testing.T) {
	repo := NewReservationRepository()
	ctx := context.Background()
	rec := seedReservation(t, repo, "venue-1", "2026-03-10", "09:00")

	got, err := repo.ByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)

	// Reads return copies; mutating them must not leak into the store.
	got.EventTitle = "mutated"
	again, err := repo.ByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Event", again.EventTitle)

	_, err = repo.ByID(ctx, "missing")
	assert.ErrorIs(t, err, reservation.ErrNotFound)
}

func TestReservationUpdateVersioning(t *testing.T) {
	repo := NewReservationRepository()
	ctx := context.Background()
	rec := seedReservation(t, repo, "venue-1", "2026-03-10", "09:00")

	first, err := repo.ByID(ctx, rec.ID)
	require.NoError(t, err)
	second, err := repo.ByID(ctx, rec.ID)
	require.NoError(t, err)

	first.Notes = "first writer"
	require.NoError(t, repo.Update(ctx, first))
	assert.EqualValues(t, 2, first.Version)

	// The second writer still holds version 1 and must lose.
	second.Notes = "second writer"
	assert.ErrorIs(t, repo.Update(ctx, second), reservation.ErrVersionConflict)

	stored, err := repo.ByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "first writer", stored.Notes)

	missing := *first
	missing.ID = "missing"
	assert.ErrorIs(t, repo.Update(ctx, &missing), reservation.ErrNotFound)
}

func TestReservationQueries(t *testing.T) {
	repo := NewReservationRepository()
	ctx := context.Background()

	seedReservation(t, repo, "venue-1", "2026-03-12", "09:00")
	seedReservation(t, repo, "venue-1", "2026-03-10", "14:00")
	seedReservation(t, repo, "venue-2", "2026-03-10", "08:00")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Store order: start date, then start time.
	assert.Equal(t, schedule.Clock("08:00"), list[0].StartTime)
	assert.Equal(t, schedule.Clock("14:00"), list[1].StartTime)
	assert.Equal(t, schedule.Date("2026-03-12"), list[2].StartDate)

	byVenue, err := repo.ByVenue(ctx, "venue-1")
	require.NoError(t, err)
	assert.Len(t, byVenue, 2)

	todays, err := repo.ListToday(ctx, "2026-03-10")
	require.NoError(t, err)
	assert.Len(t, todays, 2)

	upcoming, err := repo.ListUpcoming(ctx, "2026-03-10")
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, schedule.Date("2026-03-12"), upcoming[0].StartDate)
}

func TestReservationDelete(t *testing.T) {
	repo := NewReservationRepository()
	ctx := context.Background()
	rec := seedReservation(t, repo, "venue-1", "2026-03-10", "09:00")

	require.NoError(t, repo.Delete(ctx, rec.ID))
	_, err := repo.ByID(ctx, rec.ID)
	assert.ErrorIs(t, err, reservation.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, rec.ID), reservation.ErrNotFound)
}
