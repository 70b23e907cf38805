package reservation

import (
	"context"
	"errors"
	"strings"
	"time"

	"venuedesk/internal/domain/schedule"
)

var (
	ErrNotFound        = errors.New("reservation: not found")
	ErrVersionConflict = errors.New("reservation: concurrent update detected")
	ErrVenueRequired   = errors.New("reservation: venue id is required")
	ErrTitleRequired   = errors.New("reservation: event title is required")
	ErrUnknownStatus   = errors.New("reservation: unknown status")
)

// Status is the lifecycle state of a reservation. Transitions are free-form
// edits through the update path; only Cancelled carries meaning for the
// conflict engine, which disregards cancelled records entirely.
type Status string

const (
	StatusProcessing Status = "Processing"
	StatusReserved   Status = "Reserved"
	StatusConfirmed  Status = "Confirmed"
	StatusCancelled  Status = "Cancelled"
)

func (s Status) Validate() error {
	switch s {
	case StatusProcessing, StatusReserved, StatusConfirmed, StatusCancelled:
		return nil
	}
	return ErrUnknownStatus
}

// Reservation books one venue for an inclusive date range with a daily time
// window. CreatedAt, UpdatedAt and Version are owned by the store.
type Reservation struct {
	ID         string
	VenueID    string
	VenueName  string
	Department string
	EventTitle string
	ReservedBy string
	ContactNo  string
	StartDate  schedule.Date
	EndDate    schedule.Date
	StartTime  schedule.Clock
	EndTime    schedule.Clock
	Status     Status
	ReceivedBy string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Version    int64
}

// Interval returns the slot this reservation occupies.
func (r *Reservation) Interval() schedule.Interval {
	return schedule.Interval{
		Dates: schedule.DateRange{Start: r.StartDate, End: r.EndDate},
		Times: schedule.TimeRange{Start: r.StartTime, End: r.EndTime},
	}
}

// Entry converts the reservation into the scanner's view of it.
func (r *Reservation) Entry() schedule.Entry {
	return schedule.Entry{
		ID:          r.ID,
		ResourceIDs: []string{r.VenueID},
		Interval:    r.Interval(),
		Cancelled:   r.Status == StatusCancelled,
	}
}

type CreateParams struct {
	VenueID    string
	VenueName  string
	Department string
	EventTitle string
	ReservedBy string
	ContactNo  string
	StartDate  schedule.Date
	EndDate    schedule.Date
	StartTime  schedule.Clock
	EndTime    schedule.Clock
	Status     Status
	ReceivedBy string
	Notes      string
}

// New validates params and builds a reservation. The id and audit fields stay
// zero until the store assigns them.
func New(params CreateParams) (*Reservation, error) {
	if strings.TrimSpace(params.VenueID) == "" {
		return nil, ErrVenueRequired
	}
	if strings.TrimSpace(params.EventTitle) == "" {
		return nil, ErrTitleRequired
	}
	status := params.Status
	if status == "" {
		status = StatusProcessing
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	r := &Reservation{
		VenueID:    params.VenueID,
		VenueName:  params.VenueName,
		Department: params.Department,
		EventTitle: params.EventTitle,
		ReservedBy: params.ReservedBy,
		ContactNo:  params.ContactNo,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
		StartTime:  params.StartTime,
		EndTime:    params.EndTime,
		Status:     status,
		ReceivedBy: params.ReceivedBy,
		Notes:      params.Notes,
	}
	if err := r.Interval().Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	VenueID    *string
	VenueName  *string
	Department *string
	EventTitle *string
	ReservedBy *string
	ContactNo  *string
	StartDate  *schedule.Date
	EndDate    *schedule.Date
	StartTime  *schedule.Clock
	EndTime    *schedule.Clock
	Status     *Status
	ReceivedBy *string
	Notes      *string
}

// ScheduleComplete reports whether the patch fully specifies the schedule:
// venue plus both dates and both times. Only such patches re-run the conflict
// check; a metadata-only edit goes through without re-validating the slot
// (revalidateOnUpdate: fields-complete-only).
func (p Patch) ScheduleComplete() bool {
	return p.VenueID != nil && p.StartDate != nil && p.EndDate != nil &&
		p.StartTime != nil && p.EndTime != nil
}

// Apply overlays the patch onto r.
func (p Patch) Apply(r *Reservation) {
	if p.VenueID != nil {
		r.VenueID = *p.VenueID
	}
	if p.VenueName != nil {
		r.VenueName = *p.VenueName
	}
	if p.Department != nil {
		r.Department = *p.Department
	}
	if p.EventTitle != nil {
		r.EventTitle = *p.EventTitle
	}
	if p.ReservedBy != nil {
		r.ReservedBy = *p.ReservedBy
	}
	if p.ContactNo != nil {
		r.ContactNo = *p.ContactNo
	}
	if p.StartDate != nil {
		r.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		r.EndDate = *p.EndDate
	}
	if p.StartTime != nil {
		r.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		r.EndTime = *p.EndTime
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.ReceivedBy != nil {
		r.ReceivedBy = *p.ReceivedBy
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}

// Repository is the persistence boundary for reservations. Create assigns the
// id and audit fields; Update is conditional on the record's version and
// returns the store's version-conflict error when it lost the race.
type Repository interface {
	ByID(ctx context.Context, id string) (*Reservation, error)
	ByVenue(ctx context.Context, venueID string) ([]*Reservation, error)
	List(ctx context.Context) ([]*Reservation, error)
	ListToday(ctx context.Context, today schedule.Date) ([]*Reservation, error)
	ListUpcoming(ctx context.Context, today schedule.Date) ([]*Reservation, error)
	Create(ctx context.Context, r *Reservation) error
	Update(ctx context.Context, r *Reservation) error
	Delete(ctx context.Context, id string) error
}
