package borrowing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuedesk/internal/domain/schedule"
)

func validParams() CreateParams {
	return CreateParams{
		BorrowerName: "J. Reyes",
		ItemIDs:      []string{"item-1", "item-2"},
		Date:         "2026-03-10",
		StartTime:    "13:00",
		EndTime:      "15:00",
		BookedOn:     time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestNew(t *testing.T) {
	rec, err := New(validParams())
	require.NoError(t, err)
	assert.Equal(t, StatusReserved, rec.Status, "status defaults to Reserved")
	assert.Empty(t, rec.ID)

	// The item list is copied, not aliased.
	params := validParams()
	rec, err = New(params)
	require.NoError(t, err)
	params.ItemIDs[0] = "mutated"
	assert.Equal(t, "item-1", rec.ItemIDs[0])
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateParams)
		wantErr error
	}{
		{name: "missing_borrower", mutate: func(p *CreateParams) { p.BorrowerName = "  " }, wantErr: ErrBorrowerRequired},
		{name: "no_items", mutate: func(p *CreateParams) { p.ItemIDs = nil }, wantErr: schedule.ErrNoResources},
		{name: "bad_status", mutate: func(p *CreateParams) { p.Status = "Returned" }, wantErr: ErrUnknownStatus},
		{name: "bad_date", mutate: func(p *CreateParams) { p.Date = "tomorrow" }, wantErr: schedule.ErrBadDate},
		{name: "empty_time_window", mutate: func(p *CreateParams) { p.EndTime = "13:00" }, wantErr: schedule.ErrTimeRangeEmpty},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := validParams()
			tc.mutate(&params)
			_, err := New(params)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestInterval(t *testing.T) {
	rec, err := New(validParams())
	require.NoError(t, err)
	iv := rec.Interval()
	assert.Equal(t, schedule.Date("2026-03-10"), iv.Dates.Start)
	assert.Equal(t, iv.Dates.Start, iv.Dates.End, "borrowings are single-day")
}

func TestEntry(t *testing.T) {
	rec, err := New(validParams())
	require.NoError(t, err)
	rec.ID = "bor-1"

	e := rec.Entry()
	assert.Equal(t, []string{"item-1", "item-2"}, e.ResourceIDs)
	assert.False(t, e.Cancelled)

	rec.Status = StatusCancelled
	assert.True(t, rec.Entry().Cancelled)
}

func TestPatchScheduleComplete(t *testing.T) {
	date := schedule.Date("2026-03-11")
	from, to := schedule.Clock("09:00"), schedule.Clock("10:00")

	full := Patch{ItemIDs: []string{"item-1"}, Date: &date, StartTime: &from, EndTime: &to}
	assert.True(t, full.ScheduleComplete())

	noItems := full
	noItems.ItemIDs = nil
	assert.False(t, noItems.ScheduleComplete())

	status := StatusCancelled
	assert.False(t, Patch{Status: &status}.ScheduleComplete())
}

func TestPatchApply(t *testing.T) {
	rec, err := New(validParams())
	require.NoError(t, err)

	status := StatusCancelled
	room := "AVR 2"
	Patch{Status: &status, RoomLocation: &room}.Apply(rec)

	assert.Equal(t, StatusCancelled, rec.Status)
	assert.Equal(t, "AVR 2", rec.RoomLocation)
	assert.Equal(t, []string{"item-1", "item-2"}, rec.ItemIDs)

	Patch{ItemIDs: []string{"item-9"}}.Apply(rec)
	assert.Equal(t, []string{"item-9"}, rec.ItemIDs)
}
