package ginserver

import (
	"errors"
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"

	"staycal/internal/app/dto"
	"staycal/internal/app/handlers/calendarview"
	"staycal/internal/app/queries"
	"staycal/internal/app/view"
	"staycal/internal/domain/calendar"
	"staycal/internal/domain/reservation"
)

type ReservationHandler struct {
	Queries    queries.Bus
	Controller *view.Controller
}

// Get is the click-through endpoint: it hands the full normalized
// reservation to the details collaborator.
func (h ReservationHandler) Get(c *gin.Context) {
	query := calendarview.GetReservationQuery{ID: c.Param("id")}
	result, err := queries.Ask[calendarview.GetReservationQuery, reservation.Reservation](c.Request.Context(), h.Queries, query)
	if err != nil {
		if errors.Is(err, view.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Tooltip lays out the hover card for a segment, clamped to the caller's
// viewport.
func (h ReservationHandler) Tooltip(c *gin.Context) {
	x, errX := intQuery(c, "x")
	y, errY := intQuery(c, "y")
	w, errW := intQuery(c, "w")
	ht, errH := intQuery(c, "h")
	vw, errVW := intQuery(c, "vw")
	vh, errVH := intQuery(c, "vh")
	if err := errors.Join(errX, errY, errW, errH, errVW, errVH); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "geometry params must be integers"})
		return
	}
	query := calendarview.GetTooltipQuery{
		ReservationID: c.Param("id"),
		Pointer:       calendar.Point{X: x, Y: y},
		Size:          calendar.Size{Width: w, Height: ht},
		Viewport:      calendar.Size{Width: vw, Height: vh},
	}
	result, err := queries.Ask[calendarview.GetTooltipQuery, dto.TooltipView](c.Request.Context(), h.Queries, query)
	if err != nil {
		if errors.Is(err, view.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// HideTooltip closes the active tooltip.
func (h ReservationHandler) HideTooltip(c *gin.Context) {
	h.Controller.HideTooltip()
	c.Status(http.StatusNoContent)
}

// intQuery parses an integer query param; a missing param is 0.
func intQuery(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

var _ ReservationHTTP = ReservationHandler{}
