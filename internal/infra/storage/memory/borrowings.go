package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"venuedesk/internal/domain/borrowing"
	"venuedesk/internal/domain/schedule"
)

// BorrowingRepository stores item borrowings behind an RWMutex map.
type BorrowingRepository struct {
	mu    sync.RWMutex
	items map[string]*borrowing.Borrowing
}

func NewBorrowingRepository() *BorrowingRepository {
	return &BorrowingRepository{items: make(map[string]*borrowing.Borrowing)}
}

func (r *BorrowingRepository) ByID(ctx context.Context, id string) (*borrowing.Borrowing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.items[id]
	if !ok {
		return nil, borrowing.ErrNotFound
	}
	return cloneBorrowing(rec), nil
}

func (r *BorrowingRepository) ByDate(ctx context.Context, date schedule.Date) ([]*borrowing.Borrowing, error) {
	return r.filtered(func(rec *borrowing.Borrowing) bool {
		return rec.Date == date
	})
}

func (r *BorrowingRepository) List(ctx context.Context) ([]*borrowing.Borrowing, error) {
	return r.filtered(func(*borrowing.Borrowing) bool { return true })
}

func (r *BorrowingRepository) Create(ctx context.Context, rec *borrowing.Borrowing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.Version = 1
	r.items[rec.ID] = cloneBorrowing(rec)
	return nil
}

func (r *BorrowingRepository) Update(ctx context.Context, rec *borrowing.Borrowing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[rec.ID]
	if !ok {
		return borrowing.ErrNotFound
	}
	if current.Version != rec.Version {
		return borrowing.ErrVersionConflict
	}
	rec.Version++
	rec.UpdatedAt = time.Now().UTC()
	r.items[rec.ID] = cloneBorrowing(rec)
	return nil
}

func (r *BorrowingRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return borrowing.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *BorrowingRepository) filtered(keep func(*borrowing.Borrowing) bool) ([]*borrowing.Borrowing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*borrowing.Borrowing
	for _, rec := range r.items {
		if keep(rec) {
			out = append(out, cloneBorrowing(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func cloneBorrowing(b *borrowing.Borrowing) *borrowing.Borrowing {
	copied := *b
	copied.ItemIDs = append([]string(nil), b.ItemIDs...)
	return &copied
}
