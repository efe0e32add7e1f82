package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"staycal/internal/app/dto"
	"staycal/internal/app/handlers/calendarview"
	"staycal/internal/app/queries"
	"staycal/internal/app/view"
	"staycal/internal/domain/reservation"
)

type ViewHandler struct {
	Queries    queries.Bus
	Controller *view.Controller
}

type viewEnvelope struct {
	State view.State     `json:"state"`
	Month *dto.MonthView `json:"month,omitempty"`
	List  *dto.ListView  `json:"list,omitempty"`
}

// Get renders the current view state plus the presentation the mode
// selects.
func (h ViewHandler) Get(c *gin.Context) {
	h.respond(c)
}

type filterRequest struct {
	PropertyID string `json:"property_id"`
	Channel    string `json:"channel"`
}

// Filter sets the property and channel filters and re-renders. No refetch:
// the loaded reservation set is re-derived in memory.
func (h ViewHandler) Filter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Controller.SetPropertyFilter(req.PropertyID)
	h.Controller.SetChannelFilter(reservation.Platform(req.Channel))
	h.respond(c)
}

type navigateRequest struct {
	Direction int `json:"direction"`
}

// Navigate shifts the displayed month by whole months.
func (h ViewHandler) Navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Direction == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be non-zero"})
		return
	}
	h.Controller.Navigate(req.Direction)
	h.respond(c)
}

// Today resets the period to the real current month.
func (h ViewHandler) Today(c *gin.Context) {
	h.Controller.GoToToday()
	h.respond(c)
}

type modeRequest struct {
	Mode string `json:"mode"`
}

// Mode toggles between list and timeline presentation of the same data.
func (h ViewHandler) Mode(c *gin.Context) {
	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mode := view.Mode(req.Mode)
	if mode != view.ModeList && mode != view.ModeTimeline {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be list or timeline"})
		return
	}
	h.Controller.SetMode(mode)
	h.respond(c)
}

// Refresh re-pulls all property feeds. Partial failure still renders;
// only every property failing is surfaced as an error.
func (h ViewHandler) Refresh(c *gin.Context) {
	if err := h.Controller.Reload(c.Request.Context()); err != nil {
		if errors.Is(err, view.ErrAllPropertiesFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.respond(c)
}

func (h ViewHandler) respond(c *gin.Context) {
	state := h.Controller.State()
	envelope := viewEnvelope{State: state}
	switch state.Mode {
	case view.ModeList:
		result, err := queries.Ask[calendarview.GetListQuery, dto.ListView](c.Request.Context(), h.Queries, calendarview.GetListQuery{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		envelope.List = &result
	default:
		result, err := queries.Ask[calendarview.GetMonthQuery, dto.MonthView](c.Request.Context(), h.Queries, calendarview.GetMonthQuery{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		envelope.Month = &result
	}
	c.JSON(http.StatusOK, envelope)
}

var _ ViewHTTP = ViewHandler{}
