package calendarview

import (
	"context"

	"staycal/internal/app/dto"
	"staycal/internal/app/queries"
	"staycal/internal/app/view"
)

const getListKey = "calendarview.list"

// GetListQuery renders the flat list presentation of the loaded set.
type GetListQuery struct{}

func (q GetListQuery) Key() string { return getListKey }

type GetListHandler struct {
	Controller *view.Controller
}

func (h *GetListHandler) Handle(ctx context.Context, q GetListQuery) (dto.ListView, error) {
	visible, state := h.Controller.Visible()
	return dto.MapListView(visible, state.Partial), nil
}

var _ queries.Handler[GetListQuery, dto.ListView] = (*GetListHandler)(nil)
