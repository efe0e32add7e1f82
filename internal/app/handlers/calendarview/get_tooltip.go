package calendarview

import (
	"context"

	"staycal/internal/app/dto"
	"staycal/internal/app/queries"
	"staycal/internal/app/view"
	"staycal/internal/domain/calendar"
)

const getTooltipKey = "calendarview.tooltip"

// defaultTooltipSize approximates the rendered card when the client does
// not measure it.
var defaultTooltipSize = calendar.Size{Width: 280, Height: 180}

// GetTooltipQuery lays out the hover card for one reservation segment.
type GetTooltipQuery struct {
	ReservationID string
	Pointer       calendar.Point
	Size          calendar.Size
	Viewport      calendar.Size
}

func (q GetTooltipQuery) Key() string { return getTooltipKey }

type GetTooltipHandler struct {
	Controller *view.Controller
}

func (h *GetTooltipHandler) Handle(ctx context.Context, q GetTooltipQuery) (dto.TooltipView, error) {
	r, err := h.Controller.Reservation(q.ReservationID)
	if err != nil {
		return dto.TooltipView{}, err
	}
	size := q.Size
	if size.Width == 0 || size.Height == 0 {
		size = defaultTooltipSize
	}
	tip := dto.MapTooltipView(r, q.Pointer, size, q.Viewport)
	if tip.Visible {
		h.Controller.ShowTooltip(r.ID)
	} else {
		h.Controller.HideTooltip()
	}
	return tip, nil
}

var _ queries.Handler[GetTooltipQuery, dto.TooltipView] = (*GetTooltipHandler)(nil)
