// Package reservations orchestrates venue bookings: create and update run the
// conflict scan against the venue's existing reservations before any write
// reaches the store.
package reservations

import (
	"context"
	"fmt"
	"log/slog"

	"venuedesk/internal/app/events"
	"venuedesk/internal/domain/catalog"
	"venuedesk/internal/domain/reservation"
	"venuedesk/internal/domain/schedule"
)

type Service struct {
	Reservations reservation.Repository
	Catalog      catalog.Repository
	Events       events.Publisher
	Logger       *slog.Logger
}

func (s *Service) venue(ctx context.Context, id string) (catalog.Venue, error) {
	v, err := s.Catalog.VenueByID(ctx, id)
	if err != nil {
		return catalog.Venue{}, fmt.Errorf("resolve venue %q: %w", id, err)
	}
	return v, nil
}

func (s *Service) existingForVenue(ctx context.Context, venueID string) ([]schedule.Entry, error) {
	current, err := s.Reservations.ByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("fetch reservations for venue %q: %w", venueID, err)
	}
	return entriesOf(current), nil
}

func entriesOf(list []*reservation.Reservation) []schedule.Entry {
	entries := make([]schedule.Entry, 0, len(list))
	for _, r := range list {
		entries = append(entries, r.Entry())
	}
	return entries
}
