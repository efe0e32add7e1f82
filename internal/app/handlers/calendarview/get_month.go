// Package calendarview holds the read-side handlers behind the calendar
// API: month grid placement, the flat list view, reservation detail and
// tooltip layout.
package calendarview

import (
	"context"
	"time"

	"staycal/internal/app/dto"
	"staycal/internal/app/queries"
	"staycal/internal/app/view"
	"staycal/internal/domain/calendar"
)

const getMonthKey = "calendarview.month"

// GetMonthQuery renders the month grid. A zero Year keeps the
// controller's current period; otherwise the period is set explicitly.
type GetMonthQuery struct {
	Year  int
	Month time.Month
}

func (q GetMonthQuery) Key() string { return getMonthKey }

type GetMonthHandler struct {
	Controller *view.Controller
}

func (h *GetMonthHandler) Handle(ctx context.Context, q GetMonthQuery) (dto.MonthView, error) {
	period := h.Controller.State().Period
	if q.Year != 0 {
		period = calendar.Period{Year: q.Year, Month: q.Month}
	}
	visible, state := h.Controller.Visible()
	return dto.MapMonthView(visible, period, h.Controller.Today(), state.Partial), nil
}

var _ queries.Handler[GetMonthQuery, dto.MonthView] = (*GetMonthHandler)(nil)
