package ginserver

import (
	"net/http"
	"strings"
	"time"

	gin "github.com/gin-gonic/gin"

	"venuedesk/internal/app/reservations"
	"venuedesk/internal/domain/reservation"
	"venuedesk/internal/domain/schedule"
)

type ReservationHandler struct {
	Service *reservations.Service
}

type reservationView struct {
	ID         string    `json:"id"`
	VenueID    string    `json:"venue_id"`
	VenueName  string    `json:"venue_name"`
	Department string    `json:"department,omitempty"`
	EventTitle string    `json:"event_title"`
	ReservedBy string    `json:"reserved_by,omitempty"`
	ContactNo  string    `json:"contact_no,omitempty"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Status     string    `json:"status"`
	ReceivedBy string    `json:"received_by,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func reservationViewOf(r *reservation.Reservation) reservationView {
	return reservationView{
		ID:         r.ID,
		VenueID:    r.VenueID,
		VenueName:  r.VenueName,
		Department: r.Department,
		EventTitle: r.EventTitle,
		ReservedBy: r.ReservedBy,
		ContactNo:  r.ContactNo,
		StartDate:  string(r.StartDate),
		EndDate:    string(r.EndDate),
		StartTime:  string(r.StartTime),
		EndTime:    string(r.EndTime),
		Status:     string(r.Status),
		ReceivedBy: r.ReceivedBy,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func reservationViewsOf(list []*reservation.Reservation) []reservationView {
	views := make([]reservationView, 0, len(list))
	for _, r := range list {
		views = append(views, reservationViewOf(r))
	}
	return views
}

type createReservationRequest struct {
	VenueID    string `json:"venue_id"`
	Department string `json:"department"`
	EventTitle string `json:"event_title"`
	ReservedBy string `json:"reserved_by"`
	ContactNo  string `json:"contact_no"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Status     string `json:"status"`
	ReceivedBy string `json:"received_by"`
	Notes      string `json:"notes"`
}

func (h ReservationHandler) Create(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.Service.Create(c.Request.Context(), reservation.CreateParams{
		VenueID:    strings.TrimSpace(req.VenueID),
		Department: req.Department,
		EventTitle: strings.TrimSpace(req.EventTitle),
		ReservedBy: req.ReservedBy,
		ContactNo:  req.ContactNo,
		StartDate:  schedule.Date(req.StartDate),
		EndDate:    schedule.Date(req.EndDate),
		StartTime:  schedule.Clock(req.StartTime),
		EndTime:    schedule.Clock(req.EndTime),
		Status:     reservation.Status(req.Status),
		ReceivedBy: req.ReceivedBy,
		Notes:      req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservationViewOf(rec))
}

// List supports ?venue_id= and ?window=today|upcoming filters; without a
// filter it returns the whole collection in schedule order.
func (h ReservationHandler) List(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	ctx := c.Request.Context()

	var (
		list []*reservation.Reservation
		err  error
	)
	switch {
	case c.Query("venue_id") != "":
		list, err = h.Service.ListByVenue(ctx, c.Query("venue_id"))
	case c.Query("window") == "today":
		list, err = h.Service.ListToday(ctx, today())
	case c.Query("window") == "upcoming":
		list, err = h.Service.ListUpcoming(ctx, today())
	case c.Query("window") != "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown window, expected today or upcoming"})
		return
	default:
		list, err = h.Service.List(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservationViewsOf(list)})
}

func (h ReservationHandler) Get(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	rec, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservationViewOf(rec))
}

type updateReservationRequest struct {
	VenueID    *string `json:"venue_id"`
	Department *string `json:"department"`
	EventTitle *string `json:"event_title"`
	ReservedBy *string `json:"reserved_by"`
	ContactNo  *string `json:"contact_no"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	Status     *string `json:"status"`
	ReceivedBy *string `json:"received_by"`
	Notes      *string `json:"notes"`
}

func (r updateReservationRequest) patch() reservation.Patch {
	return reservation.Patch{
		VenueID:    r.VenueID,
		Department: r.Department,
		EventTitle: r.EventTitle,
		ReservedBy: r.ReservedBy,
		ContactNo:  r.ContactNo,
		StartDate:  dateField(r.StartDate),
		EndDate:    dateField(r.EndDate),
		StartTime:  clockField(r.StartTime),
		EndTime:    clockField(r.EndTime),
		Status:     statusField[reservation.Status](r.Status),
		ReceivedBy: r.ReceivedBy,
		Notes:      r.Notes,
	}
}

func (h ReservationHandler) Update(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	var req updateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := h.Service.Update(c.Request.Context(), c.Param("id"), req.patch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservationViewOf(rec))
}

func (h ReservationHandler) Delete(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type checkReservationRequest struct {
	ReservationID string `json:"reservation_id"`
	VenueID       string `json:"venue_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}

func (h ReservationHandler) Check(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	var req checkReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Service.CheckConflict(c.Request.Context(), reservations.CheckParams{
		ReservationID: req.ReservationID,
		VenueID:       strings.TrimSpace(req.VenueID),
		StartDate:     schedule.Date(req.StartDate),
		EndDate:       schedule.Date(req.EndDate),
		StartTime:     schedule.Clock(req.StartTime),
		EndTime:       schedule.Clock(req.EndTime),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func today() schedule.Date {
	return schedule.Date(time.Now().UTC().Format("2006-01-02"))
}

func dateField(s *string) *schedule.Date {
	if s == nil {
		return nil
	}
	d := schedule.Date(*s)
	return &d
}

func clockField(s *string) *schedule.Clock {
	if s == nil {
		return nil
	}
	clk := schedule.Clock(*s)
	return &clk
}

func statusField[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}

var _ ReservationHTTP = ReservationHandler{}
