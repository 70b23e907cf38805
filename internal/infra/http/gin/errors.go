package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"venuedesk/internal/app/auth"
	"venuedesk/internal/app/conflict"
	"venuedesk/internal/domain/borrowing"
	"venuedesk/internal/domain/catalog"
	"venuedesk/internal/domain/reservation"
	"venuedesk/internal/domain/schedule"
)

// respondError translates service errors to HTTP: validation 400,
// conflicts 409, missing records 404, anything else a generic storage
// failure. Conflict responses carry the contested resource names so forms can
// show them.
func respondError(c *gin.Context, err error) {
	var conflictErr *conflict.Error
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":                 conflictErr.Error(),
			"conflicting_resources": conflictErr.ResourceNames,
		})
		return
	}

	switch {
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, reservation.ErrNotFound),
		errors.Is(err, borrowing.ErrNotFound),
		errors.Is(err, catalog.ErrVenueNotFound),
		errors.Is(err, catalog.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, reservation.ErrVersionConflict),
		errors.Is(err, borrowing.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		schedule.ErrBadDate,
		schedule.ErrBadClock,
		schedule.ErrDateRangeInverted,
		schedule.ErrTimeRangeEmpty,
		schedule.ErrNoResources,
		reservation.ErrVenueRequired,
		reservation.ErrTitleRequired,
		reservation.ErrUnknownStatus,
		borrowing.ErrBorrowerRequired,
		borrowing.ErrUnknownStatus,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
