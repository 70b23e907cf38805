// Package memory holds in-memory repositories used by dev mode and tests.
// Semantics match the mongo repositories, including version-conditional
// updates.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"venuedesk/internal/domain/reservation"
	"venuedesk/internal/domain/schedule"
)

// ReservationRepository stores reservations behind an RWMutex map.
type ReservationRepository struct {
	mu    sync.RWMutex
	items map[string]*reservation.Reservation
}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{items: make(map[string]*reservation.Reservation)}
}

func (r *ReservationRepository) ByID(ctx context.Context, id string) (*reservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.items[id]
	if !ok {
		return nil, reservation.ErrNotFound
	}
	copied := *rec
	return &copied, nil
}

func (r *ReservationRepository) ByVenue(ctx context.Context, venueID string) ([]*reservation.Reservation, error) {
	return r.filtered(func(rec *reservation.Reservation) bool {
		return rec.VenueID == venueID
	})
}

func (r *ReservationRepository) List(ctx context.Context) ([]*reservation.Reservation, error) {
	return r.filtered(func(*reservation.Reservation) bool { return true })
}

func (r *ReservationRepository) ListToday(ctx context.Context, today schedule.Date) ([]*reservation.Reservation, error) {
	return r.filtered(func(rec *reservation.Reservation) bool {
		return rec.StartDate <= today && today <= rec.EndDate
	})
}

func (r *ReservationRepository) ListUpcoming(ctx context.Context, today schedule.Date) ([]*reservation.Reservation, error) {
	return r.filtered(func(rec *reservation.Reservation) bool {
		return rec.StartDate > today
	})
}

func (r *ReservationRepository) Create(ctx context.Context, rec *reservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.Version = 1
	copied := *rec
	r.items[rec.ID] = &copied
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, rec *reservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[rec.ID]
	if !ok {
		return reservation.ErrNotFound
	}
	if current.Version != rec.Version {
		return reservation.ErrVersionConflict
	}
	rec.Version++
	rec.UpdatedAt = time.Now().UTC()
	copied := *rec
	r.items[rec.ID] = &copied
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return reservation.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *ReservationRepository) filtered(keep func(*reservation.Reservation) bool) ([]*reservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*reservation.Reservation
	for _, rec := range r.items {
		if keep(rec) {
			copied := *rec
			out = append(out, &copied)
		}
	}
	sortReservations(out)
	return out, nil
}

// sortReservations applies the store ordering: start date, then start time.
func sortReservations(list []*reservation.Reservation) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].StartDate != list[j].StartDate {
			return list[i].StartDate < list[j].StartDate
		}
		return list[i].StartTime < list[j].StartTime
	})
}
