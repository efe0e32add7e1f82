package calendar

import (
	"staycal/internal/domain/reservation"
)

// SegmentPosition classifies a segment within its reservation's run of
// days. Position drives edge rounding only: first rounds the leading edge,
// last the trailing edge, middle neither, so the per-day elements read as
// one unbroken bar.
type SegmentPosition string

const (
	PositionSingle SegmentPosition = "single"
	PositionFirst  SegmentPosition = "first"
	PositionMiddle SegmentPosition = "middle"
	PositionLast   SegmentPosition = "last"
)

// Segment is one reservation's rendering fragment for a single day cell.
// Segments are derived on every render pass and never persisted.
type Segment struct {
	ReservationID string               `json:"reservation_id"`
	Date          string               `json:"date"`
	Position      SegmentPosition      `json:"position"`
	Platform      reservation.Platform `json:"platform"`
	Color         string               `json:"color"`
	// Label carries the guest/date text on first and single segments only;
	// middle and last segments render as a bare colored strip so a long
	// stay does not repeat its text on every cell.
	Label string `json:"label,omitempty"`
}

// Place maps reservations onto the period's grid, keyed by day-bucket key.
// The last occupied night is the day before checkout, so a reservation
// checking out on the grid's first day contributes nothing. Invalid
// reservations and reservations entirely outside the visible span are
// dropped silently; one bad record must not blank the calendar.
func Place(reservations []reservation.Reservation, p Period) map[string][]Segment {
	viewStart, viewEnd := p.Span()
	placed := make(map[string][]Segment)

	for _, r := range reservations {
		if r.Validate() != nil {
			continue
		}
		lastNight := r.LastNight()
		if r.Start.After(viewEnd) || lastNight.Before(viewStart) {
			continue
		}

		startKey := r.Start.Key()
		lastKey := lastNight.Key()
		label := segmentLabel(r)

		for d := r.Start; !d.After(lastNight); d = d.AddDays(1) {
			key := d.Key()
			seg := Segment{
				ReservationID: r.ID,
				Date:          key,
				Position:      classify(key, startKey, lastKey),
				Platform:      r.Platform,
				Color:         r.Platform.Color(),
			}
			if seg.Position == PositionFirst || seg.Position == PositionSingle {
				seg.Label = label
			}
			placed[key] = append(placed[key], seg)
		}
	}
	return placed
}

// classify compares day keys, not date object identity.
func classify(key, startKey, lastKey string) SegmentPosition {
	switch {
	case key == startKey && key == lastKey:
		return PositionSingle
	case key == startKey:
		return PositionFirst
	case key == lastKey:
		return PositionLast
	default:
		return PositionMiddle
	}
}

func segmentLabel(r reservation.Reservation) string {
	return reservation.DisplayGuestName(r) + " · " + r.Start.Format() + " – " + r.End.Format()
}
