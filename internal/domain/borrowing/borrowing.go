package borrowing

import (
	"context"
	"errors"
	"strings"
	"time"

	"venuedesk/internal/domain/schedule"
)

var (
	ErrNotFound         = errors.New("borrowing: not found")
	ErrVersionConflict  = errors.New("borrowing: concurrent update detected")
	ErrBorrowerRequired = errors.New("borrowing: borrower name is required")
	ErrUnknownStatus    = errors.New("borrowing: unknown status")
)

// Status is the lifecycle state of a borrowing. As with reservations,
// Cancelled is the only state the conflict engine cares about.
type Status string

const (
	StatusReserved  Status = "Reserved"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Validate() error {
	switch s {
	case StatusReserved, StatusConfirmed, StatusCancelled:
		return nil
	}
	return ErrUnknownStatus
}

// Borrowing reserves a set of items for one day within a time window.
type Borrowing struct {
	ID             string
	BorrowerName   string
	TeacherAdviser string
	Department     string
	ItemIDs        []string
	Date           schedule.Date
	StartTime      schedule.Clock
	EndTime        schedule.Clock
	RoomLocation   string
	ReceivedBy     string
	Status         Status
	BookedOn       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}

// Interval returns the single-day slot this borrowing occupies.
func (b *Borrowing) Interval() schedule.Interval {
	return schedule.Interval{
		Dates: schedule.SingleDay(b.Date),
		Times: schedule.TimeRange{Start: b.StartTime, End: b.EndTime},
	}
}

// Entry converts the borrowing into the scanner's view of it.
func (b *Borrowing) Entry() schedule.Entry {
	return schedule.Entry{
		ID:          b.ID,
		ResourceIDs: b.ItemIDs,
		Interval:    b.Interval(),
		Cancelled:   b.Status == StatusCancelled,
	}
}

type CreateParams struct {
	BorrowerName   string
	TeacherAdviser string
	Department     string
	ItemIDs        []string
	Date           schedule.Date
	StartTime      schedule.Clock
	EndTime        schedule.Clock
	RoomLocation   string
	ReceivedBy     string
	Status         Status
	BookedOn       time.Time
}

// New validates params and builds a borrowing. Id and audit fields are left
// for the store.
func New(params CreateParams) (*Borrowing, error) {
	if strings.TrimSpace(params.BorrowerName) == "" {
		return nil, ErrBorrowerRequired
	}
	if len(params.ItemIDs) == 0 {
		return nil, schedule.ErrNoResources
	}
	status := params.Status
	if status == "" {
		status = StatusReserved
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	b := &Borrowing{
		BorrowerName:   params.BorrowerName,
		TeacherAdviser: params.TeacherAdviser,
		Department:     params.Department,
		ItemIDs:        append([]string(nil), params.ItemIDs...),
		Date:           params.Date,
		StartTime:      params.StartTime,
		EndTime:        params.EndTime,
		RoomLocation:   params.RoomLocation,
		ReceivedBy:     params.ReceivedBy,
		Status:         status,
		BookedOn:       params.BookedOn,
	}
	if err := b.Interval().Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	BorrowerName   *string
	TeacherAdviser *string
	Department     *string
	ItemIDs        []string
	Date           *schedule.Date
	StartTime      *schedule.Clock
	EndTime        *schedule.Clock
	RoomLocation   *string
	ReceivedBy     *string
	Status         *Status
}

// ScheduleComplete reports whether the patch fully specifies the schedule:
// item set, date and both times. Partial patches skip the conflict check.
func (p Patch) ScheduleComplete() bool {
	return len(p.ItemIDs) > 0 && p.Date != nil && p.StartTime != nil && p.EndTime != nil
}

// Apply overlays the patch onto b.
func (p Patch) Apply(b *Borrowing) {
	if p.BorrowerName != nil {
		b.BorrowerName = *p.BorrowerName
	}
	if p.TeacherAdviser != nil {
		b.TeacherAdviser = *p.TeacherAdviser
	}
	if p.Department != nil {
		b.Department = *p.Department
	}
	if len(p.ItemIDs) > 0 {
		b.ItemIDs = append([]string(nil), p.ItemIDs...)
	}
	if p.Date != nil {
		b.Date = *p.Date
	}
	if p.StartTime != nil {
		b.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		b.EndTime = *p.EndTime
	}
	if p.RoomLocation != nil {
		b.RoomLocation = *p.RoomLocation
	}
	if p.ReceivedBy != nil {
		b.ReceivedBy = *p.ReceivedBy
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
}

// Repository is the persistence boundary for borrowings.
type Repository interface {
	ByID(ctx context.Context, id string) (*Borrowing, error)
	ByDate(ctx context.Context, date schedule.Date) ([]*Borrowing, error)
	List(ctx context.Context) ([]*Borrowing, error)
	Create(ctx context.Context, b *Borrowing) error
	Update(ctx context.Context, b *Borrowing) error
	Delete(ctx context.Context, id string) error
}
