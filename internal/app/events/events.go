// Package events defines the booking lifecycle events this service publishes
// and the publisher boundary the broker implements. Publishing is best-effort
// and happens after the write: a broker outage never fails a booking.
package events

import (
	"context"
	"log/slog"
	"time"
)

// Event is a fact about a booking that already happened.
type Event interface {
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// Publisher delivers events to the broker.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Emit publishes the event if a publisher is wired, logging failures instead
// of propagating them.
func Emit(ctx context.Context, pub Publisher, logger *slog.Logger, event Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, event); err != nil && logger != nil {
		logger.Warn("event publish failed", "event", event.EventName(), "aggregate_id", event.AggregateID(), "error", err)
	}
}

type ReservationCreated struct {
	ReservationID string    `json:"reservation_id"`
	VenueID       string    `json:"venue_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	At            time.Time `json:"-"`
}

func (e ReservationCreated) EventName() string     { return "reservation.created" }
func (e ReservationCreated) AggregateID() string   { return e.ReservationID }
func (e ReservationCreated) OccurredAt() time.Time { return e.At }

type ReservationUpdated struct {
	ReservationID string    `json:"reservation_id"`
	VenueID       string    `json:"venue_id"`
	Status        string    `json:"status"`
	At            time.Time `json:"-"`
}

func (e ReservationUpdated) EventName() string     { return "reservation.updated" }
func (e ReservationUpdated) AggregateID() string   { return e.ReservationID }
func (e ReservationUpdated) OccurredAt() time.Time { return e.At }

type ReservationCancelled struct {
	ReservationID string    `json:"reservation_id"`
	VenueID       string    `json:"venue_id"`
	At            time.Time `json:"-"`
}

func (e ReservationCancelled) EventName() string     { return "reservation.cancelled" }
func (e ReservationCancelled) AggregateID() string   { return e.ReservationID }
func (e ReservationCancelled) OccurredAt() time.Time { return e.At }

type BorrowingCreated struct {
	BorrowingID string    `json:"borrowing_id"`
	ItemIDs     []string  `json:"item_ids"`
	Date        string    `json:"date"`
	At          time.Time `json:"-"`
}

func (e BorrowingCreated) EventName() string     { return "borrowing.created" }
func (e BorrowingCreated) AggregateID() string   { return e.BorrowingID }
func (e BorrowingCreated) OccurredAt() time.Time { return e.At }

type BorrowingUpdated struct {
	BorrowingID string    `json:"borrowing_id"`
	Status      string    `json:"status"`
	At          time.Time `json:"-"`
}

func (e BorrowingUpdated) EventName() string     { return "borrowing.updated" }
func (e BorrowingUpdated) AggregateID() string   { return e.BorrowingID }
func (e BorrowingUpdated) OccurredAt() time.Time { return e.At }

type BorrowingCancelled struct {
	BorrowingID string    `json:"borrowing_id"`
	ItemIDs     []string  `json:"item_ids"`
	At          time.Time `json:"-"`
}

func (e BorrowingCancelled) EventName() string     { return "borrowing.cancelled" }
func (e BorrowingCancelled) AggregateID() string   { return e.BorrowingID }
func (e BorrowingCancelled) OccurredAt() time.Time { return e.At }
