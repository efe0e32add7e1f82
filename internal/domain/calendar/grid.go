// Package calendar turns normalized reservations into a month-grid view
// model: a fixed 6-week cell grid plus per-day bar segments that render
// multi-night stays as one visually continuous bar.
package calendar

import (
	"time"

	"staycal/internal/domain/dateonly"
)

// gridWeeks is fixed at six. Short months over-allocate a padding week or
// two, but constant grid geometry keeps cell positioning trivial for any
// frontend.
const gridWeeks = 6

// GridSize is the cell count of every month grid.
const GridSize = gridWeeks * 7

// Period identifies the month currently displayed.
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// PeriodOf returns the period containing the given day.
func PeriodOf(d dateonly.Date) Period {
	return Period{Year: d.Year(), Month: d.Month()}
}

// Shift moves the period by whole months; rollover across year boundaries
// is handled by native date arithmetic.
func (p Period) Shift(months int) Period {
	t := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	return Period{Year: t.Year(), Month: t.Month()}
}

// First returns day 1 of the period's month.
func (p Period) First() dateonly.Date {
	return dateonly.New(p.Year, p.Month, 1)
}

// Contains reports whether d falls inside the period's month.
func (p Period) Contains(d dateonly.Date) bool {
	return d.Year() == p.Year && d.Month() == p.Month
}

// Cell is one of the 42 day cells of a month view.
type Cell struct {
	Date    dateonly.Date `json:"date"`
	InMonth bool          `json:"in_month"`
	IsToday bool          `json:"is_today"`
}

// Span returns the full visible date range of the month grid: the Sunday
// on/before day 1 through the Saturday that closes the sixth week.
func (p Period) Span() (start, end dateonly.Date) {
	first := p.First()
	start = first.AddDays(-int(first.Weekday()))
	end = start.AddDays(GridSize - 1)
	return start, end
}

// MonthGrid computes the 42-cell grid for the period, row-major
// Sunday through Saturday, padded into the adjacent months. today marks
// the IsToday cell; pass the zero Date to skip the marker.
func MonthGrid(p Period, today dateonly.Date) []Cell {
	start, _ := p.Span()
	cells := make([]Cell, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		d := start.AddDays(i)
		cells = append(cells, Cell{
			Date:    d,
			InMonth: p.Contains(d),
			IsToday: !today.IsZero() && d.Equal(today),
		})
	}
	return cells
}
