package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staycal/internal/domain/calendar"
	"staycal/internal/domain/dateonly"
	"staycal/internal/domain/reservation"
)

func TestMapListViewSortsAndFilters(t *testing.T) {
	input := []reservation.Reservation{
		{ID: "late", PropertyName: "B House", Start: dateonly.Parse("2024-03-10"), End: dateonly.Parse("2024-03-12")},
		{ID: "early", PropertyName: "A House", Start: dateonly.Parse("2024-03-01"), End: dateonly.Parse("2024-03-03")},
		{ID: "same-day-b", PropertyName: "B House", Start: dateonly.Parse("2024-03-05"), End: dateonly.Parse("2024-03-06")},
		{ID: "same-day-a", PropertyName: "A House", Start: dateonly.Parse("2024-03-05"), End: dateonly.Parse("2024-03-06")},
		{ID: "invalid", Start: dateonly.Parse("2024-03-05"), End: dateonly.Parse("2024-03-05")},
	}

	got := MapListView(input, false)
	require.Len(t, got.Items, 4, "invalid reservations are excluded")
	assert.Equal(t, "early", got.Items[0].ID)
	assert.Equal(t, "same-day-a", got.Items[1].ID, "ties break by property name")
	assert.Equal(t, "same-day-b", got.Items[2].ID)
	assert.Equal(t, "late", got.Items[3].ID)

	assert.Equal(t, 2, got.Items[0].Nights)
	assert.Equal(t, "Guest", got.Items[0].Guest)
}

func TestMapMonthView(t *testing.T) {
	input := []reservation.Reservation{
		{ID: "r1", Start: dateonly.Parse("2024-03-05"), End: dateonly.Parse("2024-03-08"), Platform: reservation.PlatformDirect},
	}
	period := calendar.Period{Year: 2024, Month: time.March}
	got := MapMonthView(input, period, dateonly.New(2024, time.March, 5), true)

	assert.Len(t, got.Cells, calendar.GridSize)
	assert.Len(t, got.Segments["2024-03-05"], 1)
	assert.True(t, got.Partial)
	assert.Equal(t, period, got.Period)
}

func TestMapTooltipView(t *testing.T) {
	r := reservation.Reservation{
		ID:       "r1",
		Start:    dateonly.Parse("2024-03-05"),
		End:      dateonly.Parse("2024-03-08"),
		Platform: reservation.PlatformDirect,
	}
	viewport := calendar.Size{Width: 1200, Height: 800}
	got := MapTooltipView(r, calendar.Point{X: 10, Y: 10}, calendar.Size{Width: 100, Height: 50}, viewport)
	require.True(t, got.Visible)
	assert.Equal(t, 3, got.Content.Nights)
	assert.Equal(t, calendar.Point{X: 22, Y: 22}, *got.Position)

	got = MapTooltipView(r, calendar.Point{X: 10, Y: 10}, calendar.Size{Width: 100, Height: 50}, calendar.Size{Width: 400, Height: 800})
	assert.False(t, got.Visible)
	assert.Nil(t, got.Content)
}
