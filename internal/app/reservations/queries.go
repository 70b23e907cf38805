package reservations

import (
	"context"
	"fmt"

	"venuedesk/internal/domain/reservation"
	"venuedesk/internal/domain/schedule"
)

func (s *Service) Get(ctx context.Context, id string) (*reservation.Reservation, error) {
	return s.Reservations.ByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*reservation.Reservation, error) {
	list, err := s.Reservations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return list, nil
}

func (s *Service) ListByVenue(ctx context.Context, venueID string) ([]*reservation.Reservation, error) {
	list, err := s.Reservations.ByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("list reservations for venue %q: %w", venueID, err)
	}
	return list, nil
}

// ListToday returns reservations whose date range covers today.
func (s *Service) ListToday(ctx context.Context, today schedule.Date) ([]*reservation.Reservation, error) {
	list, err := s.Reservations.ListToday(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list today's reservations: %w", err)
	}
	return list, nil
}

// ListUpcoming returns reservations starting strictly after today.
func (s *Service) ListUpcoming(ctx context.Context, today schedule.Date) ([]*reservation.Reservation, error) {
	list, err := s.Reservations.ListUpcoming(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list upcoming reservations: %w", err)
	}
	return list, nil
}
