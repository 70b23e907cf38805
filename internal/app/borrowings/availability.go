package borrowings

import (
	"context"
	"fmt"

	"venuedesk/internal/app/conflict"
	"venuedesk/internal/domain/catalog"
	"venuedesk/internal/domain/schedule"
)

// AvailableItems returns the items bookable for the given day and time
// window: inventory status Available and no overlapping, non-cancelled
// borrowing. The result is advisory; Create runs the authoritative check
// again at submit time.
func (s *Service) AvailableItems(ctx context.Context, date schedule.Date, times schedule.TimeRange) ([]catalog.Item, error) {
	iv := schedule.Interval{Dates: schedule.SingleDay(date), Times: times}
	if err := iv.Validate(); err != nil {
		return nil, err
	}

	items, err := s.Catalog.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	entries, err := s.existingForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	available := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if item.Status != catalog.ItemAvailable {
			continue
		}
		report := schedule.Scan(schedule.Candidate{
			ResourceIDs: []string{item.ID},
			Interval:    iv,
		}, entries)
		if report.Empty() {
			available = append(available, item)
		}
	}
	return available, nil
}

// CheckParams describe an item booking to test without writing anything.
type CheckParams struct {
	BorrowingID string
	ItemIDs     []string
	Date        schedule.Date
	StartTime   schedule.Clock
	EndTime     schedule.Clock
}

// CheckConflict reports which of the requested items are contested for the
// slot, naming all of them.
func (s *Service) CheckConflict(ctx context.Context, params CheckParams) (conflict.Result, error) {
	candidate := schedule.Candidate{
		ID:          params.BorrowingID,
		ResourceIDs: params.ItemIDs,
		Interval: schedule.Interval{
			Dates: schedule.SingleDay(params.Date),
			Times: schedule.TimeRange{Start: params.StartTime, End: params.EndTime},
		},
	}
	if err := candidate.Validate(); err != nil {
		return conflict.Result{}, err
	}

	index, err := s.itemIndex(ctx)
	if err != nil {
		return conflict.Result{}, err
	}
	entries, err := s.existingForDate(ctx, params.Date)
	if err != nil {
		return conflict.Result{}, err
	}
	names := conflictingItems(params.BorrowingID, params.ItemIDs, candidate.Interval, entries, index)
	return conflict.ResultOf(names), nil
}
