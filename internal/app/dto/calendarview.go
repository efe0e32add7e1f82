// Package dto holds the JSON view models served to the dashboard frontend.
package dto

import (
	"sort"

	"staycal/internal/domain/calendar"
	"staycal/internal/domain/dateonly"
	"staycal/internal/domain/reservation"
)

// MonthView is one rendered month: the fixed 42-cell grid plus the bar
// segments keyed by day. Both are recomputed from scratch on every request.
type MonthView struct {
	Period   calendar.Period               `json:"period"`
	Cells    []calendar.Cell               `json:"cells"`
	Segments map[string][]calendar.Segment `json:"segments"`
	// Partial is true when some properties failed to load and the view
	// renders with partial data.
	Partial bool `json:"partial,omitempty"`
}

// MapMonthView renders the grid and placement for the given reservations.
func MapMonthView(reservations []reservation.Reservation, period calendar.Period, today dateonly.Date, partial bool) MonthView {
	return MonthView{
		Period:   period,
		Cells:    calendar.MonthGrid(period, today),
		Segments: calendar.Place(reservations, period),
		Partial:  partial,
	}
}

// ListItem is one row of the flat list view.
type ListItem struct {
	ID           string               `json:"id"`
	PropertyID   string               `json:"property_id"`
	PropertyName string               `json:"property_name"`
	Guest        string               `json:"guest"`
	Platform     reservation.Platform `json:"platform"`
	CheckIn      string               `json:"check_in"`
	CheckOut     string               `json:"check_out"`
	Nights       int                  `json:"nights"`
}

// ListView is the sorted flat list presentation of the same reservation
// set the timeline renders.
type ListView struct {
	Items   []ListItem `json:"items"`
	Partial bool       `json:"partial,omitempty"`
}

// MapListView sorts by check-in, then property name, then id for a stable
// order.
func MapListView(reservations []reservation.Reservation, partial bool) ListView {
	valid := make([]reservation.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.Validate() == nil {
			valid = append(valid, r)
		}
	}
	sort.Slice(valid, func(i, j int) bool {
		if !valid[i].Start.Equal(valid[j].Start) {
			return valid[i].Start.Before(valid[j].Start)
		}
		if valid[i].PropertyName != valid[j].PropertyName {
			return valid[i].PropertyName < valid[j].PropertyName
		}
		return valid[i].ID < valid[j].ID
	})
	items := make([]ListItem, 0, len(valid))
	for _, r := range valid {
		items = append(items, ListItem{
			ID:           r.ID,
			PropertyID:   r.PropertyID,
			PropertyName: r.PropertyName,
			Guest:        reservation.DisplayGuestName(r),
			Platform:     r.Platform,
			CheckIn:      r.Start.Key(),
			CheckOut:     r.End.Key(),
			Nights:       r.Nights(),
		})
	}
	return ListView{Items: items, Partial: partial}
}

// TooltipView is a positioned hover card. Visible is false when the
// viewport is too narrow for hover interaction.
type TooltipView struct {
	Visible  bool              `json:"visible"`
	Content  *calendar.Tooltip `json:"content,omitempty"`
	Position *calendar.Point   `json:"position,omitempty"`
}

// MapTooltipView builds and places the tooltip for one reservation.
func MapTooltipView(r reservation.Reservation, pointer calendar.Point, size, viewport calendar.Size) TooltipView {
	pos, ok := calendar.PlaceTooltip(pointer, size, viewport)
	if !ok {
		return TooltipView{}
	}
	content := calendar.BuildTooltip(r)
	return TooltipView{Visible: true, Content: &content, Position: &pos}
}
