// Package catalog exposes the read side of the bookable inventory: venues,
// items and the staff roster. Inventory management happens elsewhere; this
// service only reads the collections to resolve display names and to list
// choices for booking forms.
package catalog

import (
	"context"
	"errors"
)

var (
	ErrVenueNotFound = errors.New("catalog: venue not found")
	ErrItemNotFound  = errors.New("catalog: item not found")
)

// Venue is a bookable physical space.
type Venue struct {
	ID          string
	Name        string
	Capacity    int
	Description string
}

// ItemStatus is the inventory condition of an item, independent of any
// booking. Only Available items are offered to borrowers.
type ItemStatus string

const (
	ItemAvailable    ItemStatus = "Available"
	ItemBorrowed     ItemStatus = "Borrowed"
	ItemOutOfService ItemStatus = "Out of Service"
	ItemMaintenance  ItemStatus = "Maintenance"
)

// Item is a borrowable piece of equipment.
type Item struct {
	ID           string
	Name         string
	Description  string
	SerialNumber string
	Status       ItemStatus
	Category     string
}

// StaffMember appears in the "received by" pickers on booking forms.
type StaffMember struct {
	ID        string
	Name      string
	Email     string
	Role      string
	ContactNo string
}

// Repository reads the inventory collections.
type Repository interface {
	Venues(ctx context.Context) ([]Venue, error)
	VenueByID(ctx context.Context, id string) (Venue, error)
	Items(ctx context.Context) ([]Item, error)
	Staff(ctx context.Context) ([]StaffMember, error)
}
