package calendarview

import (
	"context"

	"staycal/internal/app/queries"
	"staycal/internal/app/view"
	"staycal/internal/domain/reservation"
)

const getReservationKey = "calendarview.reservation"

// GetReservationQuery is the click-through lookup: a segment click hands
// the full normalized reservation to the details collaborator.
type GetReservationQuery struct {
	ID string
}

func (q GetReservationQuery) Key() string { return getReservationKey }

type GetReservationHandler struct {
	Controller *view.Controller
}

func (h *GetReservationHandler) Handle(ctx context.Context, q GetReservationQuery) (reservation.Reservation, error) {
	return h.Controller.Reservation(q.ID)
}

var _ queries.Handler[GetReservationQuery, reservation.Reservation] = (*GetReservationHandler)(nil)
