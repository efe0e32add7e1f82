package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name        string
		summary     string
		description string
		want        Platform
	}{
		{name: "airbnb in summary", summary: "Reservation from Airbnb", want: PlatformAirbnb},
		{name: "booking dot com", summary: "Booking.com guest stay", want: PlatformBooking},
		{name: "vrbo in description", description: "imported via VRBO feed", want: PlatformVrbo},
		{name: "expedia", summary: "Expedia package", want: PlatformExpedia},
		{name: "no match defaults to direct", summary: "Stay", want: PlatformDirect},
		{name: "empty defaults to direct", want: PlatformDirect},
		{name: "case insensitive", summary: "AIRBNB (Not available)", want: PlatformAirbnb},
		{name: "airbnb beats booking on precedence", summary: "booking created by airbnb", want: PlatformAirbnb},
		{name: "booking beats vrbo on precedence", description: "vrbo mirror of booking.com entry", want: PlatformBooking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.summary, tt.description))
		})
	}
}

func TestPlatformLookupsHaveDefaults(t *testing.T) {
	for _, p := range []Platform{PlatformAirbnb, PlatformBooking, PlatformVrbo, PlatformExpedia, PlatformDirect} {
		assert.NotEmpty(t, p.Color())
		assert.NotEmpty(t, p.Icon())
	}

	unknown := Platform("homeaway")
	assert.Equal(t, PlatformDirect.Color(), unknown.Color())
	assert.Equal(t, PlatformDirect.Icon(), unknown.Icon())
}
