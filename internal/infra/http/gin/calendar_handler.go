package ginserver

import (
	"net/http"
	"strconv"
	"time"

	gin "github.com/gin-gonic/gin"

	"staycal/internal/app/dto"
	"staycal/internal/app/handlers/calendarview"
	"staycal/internal/app/queries"
)

type CalendarHandler struct {
	Queries queries.Bus
}

// Month serves the month-grid view. Without year/month parameters the
// controller's current period is rendered.
func (h CalendarHandler) Month(c *gin.Context) {
	query := calendarview.GetMonthQuery{}
	if rawYear := c.Query("year"); rawYear != "" {
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		month, err := strconv.Atoi(c.DefaultQuery("month", "1"))
		if err != nil || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return
		}
		query.Year = year
		query.Month = time.Month(month)
	}
	result, err := queries.Ask[calendarview.GetMonthQuery, dto.MonthView](c.Request.Context(), h.Queries, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// List serves the sorted flat list view of the same loaded set.
func (h CalendarHandler) List(c *gin.Context) {
	result, err := queries.Ask[calendarview.GetListQuery, dto.ListView](c.Request.Context(), h.Queries, calendarview.GetListQuery{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ CalendarHTTP = CalendarHandler{}
