package borrowings

import (
	"context"
	"fmt"
	"time"

	"venuedesk/internal/app/conflict"
	"venuedesk/internal/app/events"
	"venuedesk/internal/domain/borrowing"
	"venuedesk/internal/domain/catalog"
)

// Update applies a partial edit. The conflict scan runs only when the patch
// fully specifies the schedule (items, date, both times), excluding the
// record's own prior state.
func (s *Service) Update(ctx context.Context, id string, patch borrowing.Patch) (*borrowing.Borrowing, error) {
	current, err := s.Borrowings.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.ItemIDs = append([]string(nil), current.ItemIDs...)
	patch.Apply(&updated)
	if err := updated.Status.Validate(); err != nil {
		return nil, err
	}
	if err := updated.Interval().Validate(); err != nil {
		return nil, err
	}

	if patch.ScheduleComplete() {
		index, err := s.itemIndex(ctx)
		if err != nil {
			return nil, err
		}
		for _, itemID := range updated.ItemIDs {
			if _, ok := index[itemID]; !ok {
				return nil, fmt.Errorf("%w: %s", catalog.ErrItemNotFound, itemID)
			}
		}
		entries, err := s.existingForDate(ctx, updated.Date)
		if err != nil {
			return nil, err
		}
		if names := conflictingItems(updated.ID, updated.ItemIDs, updated.Interval(), entries, index); len(names) > 0 {
			return nil, &conflict.Error{ResourceNames: names}
		}
	}

	if err := s.Borrowings.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update borrowing: %w", err)
	}

	now := time.Now().UTC()
	events.Emit(ctx, s.Events, s.Logger, events.BorrowingUpdated{
		BorrowingID: updated.ID,
		Status:      string(updated.Status),
		At:          now,
	})
	if current.Status != borrowing.StatusCancelled && updated.Status == borrowing.StatusCancelled {
		events.Emit(ctx, s.Events, s.Logger, events.BorrowingCancelled{
			BorrowingID: updated.ID,
			ItemIDs:     updated.ItemIDs,
			At:          now,
		})
	}
	return &updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.Borrowings.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete borrowing: %w", err)
	}
	return nil
}
