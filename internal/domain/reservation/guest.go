package reservation

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// guestPlaceholders are upstream filler values that carry no information
// and must not be shown as a real name.
var guestPlaceholders = map[string]bool{
	"guest":         true,
	"unknown guest": true,
}

// DisplayGuestName always produces a guest label and never leaks more than
// the last four digits of a phone number. A real name wins; otherwise the
// label is built from phone digits; otherwise it is the bare "Guest".
func DisplayGuestName(r Reservation) string {
	// Trimming applies to the emptiness and placeholder checks only; a
	// usable name is returned verbatim.
	trimmed := strings.TrimSpace(r.GuestName)
	if trimmed != "" && !guestPlaceholders[strings.ToLower(trimmed)] {
		return r.GuestName
	}
	if digits := phoneLast4(r); digits != "" {
		return "Guest " + digits
	}
	return "Guest"
}

// phoneLast4 extracts the last four phone digits, preferring the explicit
// last-4 field when it is exactly four digits.
func phoneLast4(r Reservation) string {
	last4 := strings.TrimSpace(r.GuestPhoneLast4)
	if len(last4) == 4 && nonDigits.ReplaceAllString(last4, "") == last4 {
		return last4
	}
	digits := nonDigits.ReplaceAllString(r.GuestPhone, "")
	if len(digits) >= 4 {
		return digits[len(digits)-4:]
	}
	return ""
}
