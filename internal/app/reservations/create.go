package reservations

import (
	"context"
	"fmt"
	"time"

	"venuedesk/internal/app/conflict"
	"venuedesk/internal/app/events"
	"venuedesk/internal/domain/reservation"
	"venuedesk/internal/domain/schedule"
)

// Create validates the proposed reservation, scans the venue's existing
// bookings for overlaps and persists on success. A conflict rejects the
// request before any write.
func (s *Service) Create(ctx context.Context, params reservation.CreateParams) (*reservation.Reservation, error) {
	venue, err := s.venue(ctx, params.VenueID)
	if err != nil {
		return nil, err
	}
	params.VenueName = venue.Name

	rec, err := reservation.New(params)
	if err != nil {
		return nil, err
	}

	entries, err := s.existingForVenue(ctx, rec.VenueID)
	if err != nil {
		return nil, err
	}
	report := schedule.Scan(schedule.Candidate{
		ResourceIDs: []string{rec.VenueID},
		Interval:    rec.Interval(),
	}, entries)
	if !report.Empty() {
		return nil, &conflict.Error{ResourceNames: []string{venue.Name}}
	}

	if err := s.Reservations.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	// The fetch-scan-write sequence is not transactional, so a concurrent
	// create for the same venue can slip in between the scan and the insert.
	// Re-scan after the write and compensate by removing our record when the
	// slot turned out to be contested.
	if entries, err := s.existingForVenue(ctx, rec.VenueID); err == nil {
		recheck := schedule.Scan(schedule.Candidate{
			ID:          rec.ID,
			ResourceIDs: []string{rec.VenueID},
			Interval:    rec.Interval(),
		}, entries)
		if !recheck.Empty() {
			if delErr := s.Reservations.Delete(ctx, rec.ID); delErr != nil && s.Logger != nil {
				s.Logger.Error("conflict compensation failed", "reservation_id", rec.ID, "error", delErr)
			}
			return nil, &conflict.Error{ResourceNames: []string{venue.Name}}
		}
	} else if s.Logger != nil {
		s.Logger.Warn("post-write conflict recheck skipped", "reservation_id", rec.ID, "error", err)
	}

	events.Emit(ctx, s.Events, s.Logger, events.ReservationCreated{
		ReservationID: rec.ID,
		VenueID:       rec.VenueID,
		StartDate:     string(rec.StartDate),
		EndDate:       string(rec.EndDate),
		At:            time.Now().UTC(),
	})
	return rec, nil
}
