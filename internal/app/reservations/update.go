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

// Update applies a partial edit. The conflict scan runs only when the patch
// fully specifies the schedule (venue, both dates, both times); a
// metadata-only edit such as changing notes never re-validates the slot. The
// record's own prior state is excluded from the scan.
func (s *Service) Update(ctx context.Context, id string, patch reservation.Patch) (*reservation.Reservation, error) {
	current, err := s.Reservations.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	patch.Apply(&updated)
	if err := updated.Status.Validate(); err != nil {
		return nil, err
	}
	if err := updated.Interval().Validate(); err != nil {
		return nil, err
	}

	if patch.ScheduleComplete() {
		venue, err := s.venue(ctx, updated.VenueID)
		if err != nil {
			return nil, err
		}
		updated.VenueName = venue.Name

		entries, err := s.existingForVenue(ctx, updated.VenueID)
		if err != nil {
			return nil, err
		}
		report := schedule.Scan(schedule.Candidate{
			ID:          updated.ID,
			ResourceIDs: []string{updated.VenueID},
			Interval:    updated.Interval(),
		}, entries)
		if !report.Empty() {
			return nil, &conflict.Error{ResourceNames: []string{venue.Name}}
		}
	}

	if err := s.Reservations.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	now := time.Now().UTC()
	events.Emit(ctx, s.Events, s.Logger, events.ReservationUpdated{
		ReservationID: updated.ID,
		VenueID:       updated.VenueID,
		Status:        string(updated.Status),
		At:            now,
	})
	if current.Status != reservation.StatusCancelled && updated.Status == reservation.StatusCancelled {
		events.Emit(ctx, s.Events, s.Logger, events.ReservationCancelled{
			ReservationID: updated.ID,
			VenueID:       updated.VenueID,
			At:            now,
		})
	}
	return &updated, nil
}

// Delete removes a reservation outright. Marking a record Cancelled is the
// engine-level way to free its slot; deletion is purely a store operation.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.Reservations.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	return nil
}
