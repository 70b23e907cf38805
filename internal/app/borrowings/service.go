// Package borrowings orchestrates equipment bookings: always single-day,
// always a set of items, each item conflict-checked independently so a
// rejection can name every contested item at once.
package borrowings

import (
	"context"
	"fmt"
	"log/slog"

	"venuedesk/internal/app/events"
	"venuedesk/internal/domain/borrowing"
	"venuedesk/internal/domain/catalog"
	"venuedesk/internal/domain/schedule"
)

type Service struct {
	Borrowings borrowing.Repository
	Catalog    catalog.Repository
	Events     events.Publisher
	Logger     *slog.Logger
}

func (s *Service) itemIndex(ctx context.Context) (map[string]catalog.Item, error) {
	items, err := s.Catalog.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	index := make(map[string]catalog.Item, len(items))
	for _, it := range items {
		index[it.ID] = it
	}
	return index, nil
}

func (s *Service) existingForDate(ctx context.Context, date schedule.Date) ([]schedule.Entry, error) {
	current, err := s.Borrowings.ByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetch borrowings for %s: %w", date, err)
	}
	entries := make([]schedule.Entry, 0, len(current))
	for _, b := range current {
		entries = append(entries, b.Entry())
	}
	return entries, nil
}

// conflictingItems scans each requested item independently and returns the
// display names of every item that is already taken, not just the first.
func conflictingItems(selfID string, itemIDs []string, iv schedule.Interval, entries []schedule.Entry, index map[string]catalog.Item) []string {
	var names []string
	for _, itemID := range itemIDs {
		report := schedule.Scan(schedule.Candidate{
			ID:          selfID,
			ResourceIDs: []string{itemID},
			Interval:    iv,
		}, entries)
		if report.Empty() {
			continue
		}
		if item, ok := index[itemID]; ok {
			names = append(names, item.Name)
		} else {
			names = append(names, itemID)
		}
	}
	return names
}
