package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staycal/internal/domain/dateonly"
	"staycal/internal/domain/reservation"
)

func TestBuildTooltip(t *testing.T) {
	r := reservation.Reservation{
		ID:           "r1",
		PropertyName: "Sea Breeze Cottage",
		Start:        dateonly.Parse("2024-03-05"),
		End:          dateonly.Parse("2024-03-08"),
		GuestName:    "Ada Lovelace",
		GuestPhone:   "+1-555-867-5309",
		Description:  "late arrival",
		Platform:     reservation.PlatformAirbnb,
	}
	tip := BuildTooltip(r)
	assert.Equal(t, "Ada Lovelace", tip.Guest)
	assert.Equal(t, "Sea Breeze Cottage", tip.Property)
	assert.Equal(t, reservation.PlatformAirbnb, tip.Platform)
	assert.Equal(t, "Mar 5, 2024", tip.CheckIn)
	assert.Equal(t, "Mar 8, 2024", tip.CheckOut)
	assert.Equal(t, 3, tip.Nights, "nights uses the exclusive checkout bound")
	assert.Equal(t, "+1-555-867-5309", tip.Phone)
	assert.Equal(t, "late arrival", tip.Notes)
}

func TestBuildTooltipOmitsAbsentFields(t *testing.T) {
	r := reservation.Reservation{
		Start:    dateonly.Parse("2024-03-05"),
		End:      dateonly.Parse("2024-03-06"),
		Platform: reservation.PlatformDirect,
	}
	tip := BuildTooltip(r)
	assert.Equal(t, "Guest", tip.Guest)
	assert.Empty(t, tip.Phone)
	assert.Empty(t, tip.Notes)
}

func TestPlaceTooltip(t *testing.T) {
	viewport := Size{Width: 1200, Height: 800}
	size := Size{Width: 280, Height: 180}

	tests := []struct {
		name    string
		pointer Point
		want    Point
	}{
		{
			name:    "fits below and right of pointer",
			pointer: Point{X: 100, Y: 100},
			want:    Point{X: 112, Y: 112},
		},
		{
			name:    "reflects left at right edge",
			pointer: Point{X: 1100, Y: 100},
			want:    Point{X: 1100 - 12 - 280, Y: 112},
		},
		{
			name:    "reflects up at bottom edge",
			pointer: Point{X: 100, Y: 750},
			want:    Point{X: 112, Y: 750 - 12 - 180},
		},
		{
			name:    "reflects both in the corner",
			pointer: Point{X: 1190, Y: 790},
			want:    Point{X: 1190 - 12 - 280, Y: 790 - 12 - 180},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := PlaceTooltip(tt.pointer, size, viewport)
			assert.True(t, ok)
			assert.Equal(t, tt.want, pos)
		})
	}
}

func TestPlaceTooltipClampsAtOrigin(t *testing.T) {
	// A pointer near the top-left with an oversized tooltip must not go
	// negative after reflection.
	pos, ok := PlaceTooltip(Point{X: 5, Y: 5}, Size{Width: 2000, Height: 1000}, Size{Width: 1200, Height: 800})
	assert.True(t, ok)
	assert.GreaterOrEqual(t, pos.X, 0)
	assert.GreaterOrEqual(t, pos.Y, 0)
}

func TestPlaceTooltipSuppressedOnNarrowViewport(t *testing.T) {
	_, ok := PlaceTooltip(Point{X: 10, Y: 10}, Size{Width: 280, Height: 180}, Size{Width: NarrowViewportWidth - 1, Height: 800})
	assert.False(t, ok)

	_, ok = PlaceTooltip(Point{X: 10, Y: 10}, Size{Width: 280, Height: 180}, Size{Width: NarrowViewportWidth, Height: 800})
	assert.True(t, ok)
}
