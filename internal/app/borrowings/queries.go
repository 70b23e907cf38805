package borrowings

import (
	"context"
	"fmt"

	"venuedesk/internal/domain/borrowing"
	"venuedesk/internal/domain/schedule"
)

func (s *Service) Get(ctx context.Context, id string) (*borrowing.Borrowing, error) {
	return s.Borrowings.ByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*borrowing.Borrowing, error) {
	list, err := s.Borrowings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list borrowings: %w", err)
	}
	return list, nil
}

func (s *Service) ListByDate(ctx context.Context, date schedule.Date) ([]*borrowing.Borrowing, error) {
	list, err := s.Borrowings.ByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list borrowings for %s: %w", date, err)
	}
	return list, nil
}
