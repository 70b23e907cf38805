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

// Create validates the borrowing, checks every requested item against the
// day's existing borrowings and persists on success.
func (s *Service) Create(ctx context.Context, params borrowing.CreateParams) (*borrowing.Borrowing, error) {
	if params.BookedOn.IsZero() {
		params.BookedOn = time.Now().UTC()
	}
	rec, err := borrowing.New(params)
	if err != nil {
		return nil, err
	}

	index, err := s.itemIndex(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range rec.ItemIDs {
		if _, ok := index[id]; !ok {
			return nil, fmt.Errorf("%w: %s", catalog.ErrItemNotFound, id)
		}
	}

	entries, err := s.existingForDate(ctx, rec.Date)
	if err != nil {
		return nil, err
	}
	if names := conflictingItems("", rec.ItemIDs, rec.Interval(), entries, index); len(names) > 0 {
		return nil, &conflict.Error{ResourceNames: names}
	}

	if err := s.Borrowings.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create borrowing: %w", err)
	}

	// Same compensation as venue reservations: the scan and the insert are
	// not one atomic step, so verify the slot after the write.
	if entries, err := s.existingForDate(ctx, rec.Date); err == nil {
		if names := conflictingItems(rec.ID, rec.ItemIDs, rec.Interval(), entries, index); len(names) > 0 {
			if delErr := s.Borrowings.Delete(ctx, rec.ID); delErr != nil && s.Logger != nil {
				s.Logger.Error("conflict compensation failed", "borrowing_id", rec.ID, "error", delErr)
			}
			return nil, &conflict.Error{ResourceNames: names}
		}
	} else if s.Logger != nil {
		s.Logger.Warn("post-write conflict recheck skipped", "borrowing_id", rec.ID, "error", err)
	}

	events.Emit(ctx, s.Events, s.Logger, events.BorrowingCreated{
		BorrowingID: rec.ID,
		ItemIDs:     rec.ItemIDs,
		Date:        string(rec.Date),
		At:          time.Now().UTC(),
	})
	return rec, nil
}
