package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"venuedesk/internal/domain/catalog"
)

// CatalogHandler serves the read-only inventory listings booking forms are
// built from.
type CatalogHandler struct {
	Catalog catalog.Repository
}

type venueView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity,omitempty"`
	Description string `json:"description,omitempty"`
}

func venueViewOf(v catalog.Venue) venueView {
	return venueView{ID: v.ID, Name: v.Name, Capacity: v.Capacity, Description: v.Description}
}

type itemView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	Status       string `json:"status"`
	Category     string `json:"category,omitempty"`
}

func itemViewsOf(items []catalog.Item) []itemView {
	views := make([]itemView, 0, len(items))
	for _, it := range items {
		views = append(views, itemView{
			ID:           it.ID,
			Name:         it.Name,
			Description:  it.Description,
			SerialNumber: it.SerialNumber,
			Status:       string(it.Status),
			Category:     it.Category,
		})
	}
	return views
}

type staffView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	ContactNo string `json:"contact_no,omitempty"`
}

func (h CatalogHandler) Venues(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	venues, err := h.Catalog.Venues(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]venueView, 0, len(venues))
	for _, v := range venues {
		views = append(views, venueViewOf(v))
	}
	c.JSON(http.StatusOK, gin.H{"venues": views})
}

func (h CatalogHandler) Venue(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	v, err := h.Catalog.VenueByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, venueViewOf(v))
}

func (h CatalogHandler) Items(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	items, err := h.Catalog.Items(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": itemViewsOf(items)})
}

func (h CatalogHandler) Staff(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}
	staff, err := h.Catalog.Staff(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]staffView, 0, len(staff))
	for _, m := range staff {
		views = append(views, staffView{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Role:      m.Role,
			ContactNo: m.ContactNo,
		})
	}
	c.JSON(http.StatusOK, gin.H{"staff": views})
}

var _ CatalogHTTP = CatalogHandler{}
