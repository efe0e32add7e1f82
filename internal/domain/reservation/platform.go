package reservation

import "strings"

// Platform is the booking channel a reservation arrived through.
type Platform string

const (
	PlatformAirbnb  Platform = "airbnb"
	PlatformBooking Platform = "booking"
	PlatformVrbo    Platform = "vrbo"
	PlatformExpedia Platform = "expedia"
	PlatformDirect  Platform = "direct"
)

// platformMatchers is the precedence-ordered substring table for channel
// inference. Order matters: the first hit wins.
var platformMatchers = []struct {
	needle   string
	platform Platform
}{
	{"airbnb", PlatformAirbnb},
	{"booking", PlatformBooking},
	{"vrbo", PlatformVrbo},
	{"expedia", PlatformExpedia},
}

// Detect infers the booking channel from the free-text summary and
// description of a synced reservation. This is a heuristic, not
// authoritative: feeds rarely carry a structured channel field, so a
// case-insensitive substring scan is the best available signal. A miss
// silently falls back to direct.
func Detect(summary, description string) Platform {
	haystack := strings.ToLower(summary + " " + description)
	for _, m := range platformMatchers {
		if strings.Contains(haystack, m.needle) {
			return m.platform
		}
	}
	return PlatformDirect
}

var platformColors = map[Platform]string{
	PlatformAirbnb:  "#FF5A5F",
	PlatformBooking: "#003580",
	PlatformVrbo:    "#245ABC",
	PlatformExpedia: "#FFC94C",
	PlatformDirect:  "#10B981",
}

var platformIcons = map[Platform]string{
	PlatformAirbnb:  "airbnb",
	PlatformBooking: "bed",
	PlatformVrbo:    "house",
	PlatformExpedia: "plane",
	PlatformDirect:  "handshake",
}

// Color returns the bar color for the platform, defaulting to the direct
// channel color for unknown values.
func (p Platform) Color() string {
	if c, ok := platformColors[p]; ok {
		return c
	}
	return platformColors[PlatformDirect]
}

// Icon returns the icon slug for the platform, with the same default rule
// as Color.
func (p Platform) Icon() string {
	if i, ok := platformIcons[p]; ok {
		return i
	}
	return platformIcons[PlatformDirect]
}
