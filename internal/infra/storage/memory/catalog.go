package memory

import (
	"context"
	"sort"
	"sync"

	"venuedesk/internal/domain/catalog"
)

// CatalogRepository is a read-mostly in-memory inventory, seeded at startup
// from fixtures.
type CatalogRepository struct {
	mu     sync.RWMutex
	venues map[string]catalog.Venue
	items  map[string]catalog.Item
	staff  []catalog.StaffMember
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		venues: make(map[string]catalog.Venue),
		items:  make(map[string]catalog.Item),
	}
}

// Seed replaces the inventory contents.
func (r *CatalogRepository) Seed(venues []catalog.Venue, items []catalog.Item, staff []catalog.StaffMember) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.venues = make(map[string]catalog.Venue, len(venues))
	for _, v := range venues {
		r.venues[v.ID] = v
	}
	r.items = make(map[string]catalog.Item, len(items))
	for _, it := range items {
		r.items[it.ID] = it
	}
	r.staff = append([]catalog.StaffMember(nil), staff...)
}

func (r *CatalogRepository) Venues(ctx context.Context) ([]catalog.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Venue, 0, len(r.venues))
	for _, v := range r.venues {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CatalogRepository) VenueByID(ctx context.Context, id string) (catalog.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.venues[id]
	if !ok {
		return catalog.Venue{}, catalog.ErrVenueNotFound
	}
	return v, nil
}

func (r *CatalogRepository) Items(ctx context.Context) ([]catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CatalogRepository) Staff(ctx context.Context) ([]catalog.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]catalog.StaffMember(nil), r.staff...), nil
}
