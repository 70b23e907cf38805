package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuedesk/internal/domain/borrowing"
	"venuedesk/internal/domain/schedule"
)

func seedBorrowing(t *testing.T, repo *BorrowingRepository, date, startTime string, itemIDs ...string) *borrowing.Borrowing {
	t.Helper()
	rec := &borrowing.Borrowing{
		BorrowerName: "Test Borrower",
		ItemIDs:      itemIDs,
		Date:         schedule.Date(date),
		StartTime:    schedule.Clock(startTime),
		EndTime:      "23:00",
		Status:       borrowing.StatusReserved,
	}
	require.NoError(t, repo.Create(context.Background(), rec))
	return rec
}

func TestBorrowingCreateAssignsIdentity(t *testing.T) {
	repo := NewBorrowingRepository()
	rec := seedBorrowing(t, repo, "2026-03-10", "09:00", "item-1")

	assert.NotEmpty(t, rec.ID)
	assert.EqualValues(t, 1, rec.Version)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestBorrowingReadsAreCopies(t *testing.T) {
	repo := NewBorrowingRepository()
	ctx := context.Background()
	rec := seedBorrowing(t, repo, "2026-03-10", "09:00", "item-1", "item-2")

	got, err := repo.ByID(ctx, rec.ID)
	require.NoError(t, err)
	got.ItemIDs[0] = "mutated"

	again, err := repo.ByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"item-1", "item-2"}, again.ItemIDs)
}

func TestBorrowingUpdateVersioning(t *testing.T) {
	repo := NewBorrowingRepository()
	ctx := context.Background()
	rec := seedBorrowing(t, repo, "2026-03-10", "09:00", "item-1")

	stale, err := repo.ByID(ctx, rec.ID)
	require.NoError(t, err)

	rec.RoomLocation = "AVR"
	require.NoError(t, repo.Update(ctx, rec))
	assert.EqualValues(t, 2, rec.Version)

	stale.RoomLocation = "Library"
	assert.ErrorIs(t, repo.Update(ctx, stale), borrowing.ErrVersionConflict)
}

func TestBorrowingByDate(t *testing.T) {
	repo := NewBorrowingRepository()
	ctx := context.Background()

	seedBorrowing(t, repo, "2026-03-10", "14:00", "item-1")
	seedBorrowing(t, repo, "2026-03-10", "08:00", "item-2")
	seedBorrowing(t, repo, "2026-03-11", "09:00", "item-1")

	list, err := repo.ByDate(ctx, "2026-03-10")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, schedule.Clock("08:00"), list[0].StartTime, "sorted by start time within a day")

	none, err := repo.ByDate(ctx, "2026-03-12")
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestBorrowingDelete(t *testing.T) {
	repo := NewBorrowingRepository()
	ctx := context.Background()
	rec := seedBorrowing(t, repo, "2026-03-10", "09:00", "item-1")

	require.NoError(t, repo.Delete(ctx, rec.ID))
	_, err := repo.ByID(ctx, rec.ID)
	assert.ErrorIs(t, err, borrowing.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, rec.ID), borrowing.ErrNotFound)
}
