package calendar

import (
	"staycal/internal/domain/reservation"
)

// NarrowViewportWidth is the width below which tooltips are suppressed.
// Touch-oriented layouts have no hover, and a tooltip opened by a tap has
// no reliable way to close.
const NarrowViewportWidth = 768

// tooltipOffset keeps the tooltip clear of the pointer.
const tooltipOffset = 12

// Tooltip is the hover card content for one reservation.
type Tooltip struct {
	Guest    string               `json:"guest"`
	Property string               `json:"property"`
	Platform reservation.Platform `json:"platform"`
	CheckIn  string               `json:"check_in"`
	CheckOut string               `json:"check_out"`
	Nights   int                  `json:"nights"`
	Phone    string               `json:"phone,omitempty"`
	Notes    string               `json:"notes,omitempty"`
}

// BuildTooltip assembles the hover content for a reservation. Nights uses
// the exclusive checkout bound, so it equals the exact stay length.
func BuildTooltip(r reservation.Reservation) Tooltip {
	return Tooltip{
		Guest:    reservation.DisplayGuestName(r),
		Property: r.PropertyName,
		Platform: r.Platform,
		CheckIn:  r.Start.Format(),
		CheckOut: r.End.Format(),
		Nights:   r.Nights(),
		Phone:    r.GuestPhone,
		Notes:    r.Description,
	}
}

// Point is a pixel position in viewport coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a pixel extent.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PlaceTooltip anchors a tooltip of the given size near the pointer and
// clamps it inside the viewport: if it would overflow the right or bottom
// edge it reflects to the opposite side of the pointer. ok is false when
// the viewport is too narrow for hover tooltips at all.
func PlaceTooltip(pointer Point, size Size, viewport Size) (pos Point, ok bool) {
	if viewport.Width < NarrowViewportWidth {
		return Point{}, false
	}
	pos = Point{X: pointer.X + tooltipOffset, Y: pointer.Y + tooltipOffset}
	if pos.X+size.Width > viewport.Width {
		pos.X = pointer.X - tooltipOffset - size.Width
	}
	if pos.Y+size.Height > viewport.Height {
		pos.Y = pointer.Y - tooltipOffset - size.Height
	}
	if pos.X < 0 {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = 0
	}
	return pos, true
}
