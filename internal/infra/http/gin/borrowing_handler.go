package ginserver

import (
	"net/http"
	"strings"
	"time"

	gin "github.com/gin-gonic/gin"

	"venuedesk/internal/app/borrowings"
	"venuedesk/internal/domain/borrowing"
	"venuedesk/internal/domain/schedule"
)

type BorrowingHandler struct {
	Service *borrowings.Service
}

type borrowingView struct {
	ID             string    `json:"id"`
	BorrowerName   string    `json:"borrower_name"`
	TeacherAdviser string    `json:"teacher_adviser,omitempty"`
	Department     string    `json:"department,omitempty"`
	ItemIDs        []string  `json:"item_ids"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	RoomLocation   string    `json:"room_location,omitempty"`
	ReceivedBy     string    `json:"received_by,omitempty"`
	Status         string    `json:"status"`
	BookedOn       time.Time `json:"booked_on"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func borrowingViewOf(b *borrowing.Borrowing) borrowingView {
	return borrowingView{
		ID:             b.ID,
		BorrowerName:   b.BorrowerName,
		TeacherAdviser: b.TeacherAdviser,
		Department:     b.Department,
		ItemIDs:        b.ItemIDs,
		Date:           string(b.Date),
		StartTime:      string(b.StartTime),
		EndTime:        string(b.EndTime),
		RoomLocation:   b.RoomLocation,
		ReceivedBy:     b.ReceivedBy,
		Status:         string(b.Status),
		BookedOn:       b.BookedOn,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func borrowingViewsOf(list []*borrowing.Borrowing) []borrowingView {
	views := make([]borrowingView, 0, len(list))
	for _, b := range list {
		views = append(views, borrowingViewOf(b))
	}
	return views
}

type createBorrowingRequest struct {
	BorrowerName   string   `json:"borrower_name"`
	TeacherAdviser string   `json:"teacher_adviser"`
	Department     string   `json:"department"`
	ItemIDs        []string `json:"item_ids"`
	Date           string   `json:"date"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	RoomLocation   string   `json:"room_location"`
	ReceivedBy     string   `json:"received_by"`
	Status         string   `json:"status"`
}

func (h BorrowingHandler) Create(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	var req createBorrowingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.Service.Create(c.Request.Context(), borrowing.CreateParams{
		BorrowerName:   strings.TrimSpace(req.BorrowerName),
		TeacherAdviser: req.TeacherAdviser,
		Department:     req.Department,
		ItemIDs:        req.ItemIDs,
		Date:           schedule.Date(req.Date),
		StartTime:      schedule.Clock(req.StartTime),
		EndTime:        schedule.Clock(req.EndTime),
		RoomLocation:   req.RoomLocation,
		ReceivedBy:     req.ReceivedBy,
		Status:         borrowing.Status(req.Status),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, borrowingViewOf(rec))
}

// List supports a ?date= filter; without it the whole collection is returned.
func (h BorrowingHandler) List(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	ctx := c.Request.Context()

	var (
		list []*borrowing.Borrowing
		err  error
	)
	if date := c.Query("date"); date != "" {
		list, err = h.Service.ListByDate(ctx, schedule.Date(date))
	} else {
		list, err = h.Service.List(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"borrowings": borrowingViewsOf(list)})
}

func (h BorrowingHandler) Get(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	rec, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, borrowingViewOf(rec))
}

type updateBorrowingRequest struct {
	BorrowerName   *string  `json:"borrower_name"`
	TeacherAdviser *string  `json:"teacher_adviser"`
	Department     *string  `json:"department"`
	ItemIDs        []string `json:"item_ids"`
	Date           *string  `json:"date"`
	StartTime      *string  `json:"start_time"`
	EndTime        *string  `json:"end_time"`
	RoomLocation   *string  `json:"room_location"`
	ReceivedBy     *string  `json:"received_by"`
	Status         *string  `json:"status"`
}

func (r updateBorrowingRequest) patch() borrowing.Patch {
	return borrowing.Patch{
		BorrowerName:   r.BorrowerName,
		TeacherAdviser: r.TeacherAdviser,
		Department:     r.Department,
		ItemIDs:        r.ItemIDs,
		Date:           dateField(r.Date),
		StartTime:      clockField(r.StartTime),
		EndTime:        clockField(r.EndTime),
		RoomLocation:   r.RoomLocation,
		ReceivedBy:     r.ReceivedBy,
		Status:         statusField[borrowing.Status](r.Status),
	}
}

func (h BorrowingHandler) Update(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	var req updateBorrowingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := h.Service.Update(c.Request.Context(), c.Param("id"), req.patch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, borrowingViewOf(rec))
}

func (h BorrowingHandler) Delete(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type checkBorrowingRequest struct {
	BorrowingID string   `json:"borrowing_id"`
	ItemIDs     []string `json:"item_ids"`
	Date        string   `json:"date"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
}

func (h BorrowingHandler) Check(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	var req checkBorrowingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Service.CheckConflict(c.Request.Context(), borrowings.CheckParams{
		BorrowingID: req.BorrowingID,
		ItemIDs:     req.ItemIDs,
		Date:        schedule.Date(req.Date),
		StartTime:   schedule.Clock(req.StartTime),
		EndTime:     schedule.Clock(req.EndTime),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AvailableItems answers GET /items/available?date=&start_time=&end_time=.
func (h BorrowingHandler) AvailableItems(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	date := c.Query("date")
	times := schedule.TimeRange{
		Start: schedule.Clock(c.Query("start_time")),
		End:   schedule.Clock(c.Query("end_time")),
	}
	items, err := h.Service.AvailableItems(c.Request.Context(), schedule.Date(date), times)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": itemViewsOf(items)})
}

var _ BorrowingHTTP = BorrowingHandler{}
