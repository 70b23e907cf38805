package reservations

import (
	"context"

	"venuedesk/internal/app/conflict"
	"venuedesk/internal/domain/reservation"
	"venuedesk/internal/domain/schedule"
)

// CheckParams describe a slot to test without writing anything.
// ReservationID is set when the form is editing an existing record so the
// scan excludes it.
type CheckParams struct {
	ReservationID string
	VenueID       string
	StartDate     schedule.Date
	EndDate       schedule.Date
	StartTime     schedule.Clock
	EndTime       schedule.Clock
}

// CheckConflict runs the venue conflict scan and reports the outcome without
// persisting. Forms use it for pre-submission feedback; the authoritative
// check still runs inside Create and Update.
func (s *Service) CheckConflict(ctx context.Context, params CheckParams) (conflict.Result, error) {
	if params.VenueID == "" {
		return conflict.Result{}, reservation.ErrVenueRequired
	}
	candidate := schedule.Candidate{
		ID:          params.ReservationID,
		ResourceIDs: []string{params.VenueID},
		Interval: schedule.Interval{
			Dates: schedule.DateRange{Start: params.StartDate, End: params.EndDate},
			Times: schedule.TimeRange{Start: params.StartTime, End: params.EndTime},
		},
	}
	if err := candidate.Validate(); err != nil {
		return conflict.Result{}, err
	}

	venue, err := s.venue(ctx, params.VenueID)
	if err != nil {
		return conflict.Result{}, err
	}
	entries, err := s.existingForVenue(ctx, params.VenueID)
	if err != nil {
		return conflict.Result{}, err
	}
	if report := schedule.Scan(candidate, entries); !report.Empty() {
		return conflict.ResultOf([]string{venue.Name}), nil
	}
	return conflict.ResultOK(), nil
}
