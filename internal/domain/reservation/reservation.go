// Package reservation models externally-synced stays and the heuristics
// used to present them: booking-channel inference and privacy-safe guest
// labels.
package reservation

import (
	"errors"
	"strings"

	"staycal/internal/domain/dateonly"
)

var (
	// ErrInvalidRange marks a zero or negative length stay. Checkout is
	// exclusive, so Start must be strictly before End.
	ErrInvalidRange = errors.New("reservation: checkout must be after checkin")
)

// Record is the wire shape of one reservation as delivered by the upstream
// sync collaborator. Feeds are inconsistent about field naming, sometimes
// within a single batch, so both spellings of every field are carried and
// coalesced per record in FromRecord.
type Record struct {
	ID               string `json:"id"`
	StartDate        string `json:"startDate"`
	CheckInDate      string `json:"check_in_date"`
	EndDate          string `json:"endDate"`
	CheckOutDate     string `json:"check_out_date"`
	GuestName        string `json:"guestName"`
	GuestNameSnake   string `json:"guest_name"`
	GuestPhoneLast4  string `json:"guestPhoneLast4"`
	GuestPhoneNumber string `json:"guestPhoneNumber"`
	GuestPhoneSnake  string `json:"guest_phone_number"`
	Summary          string `json:"summary"`
	Description      string `json:"description"`
}

// Reservation is the canonical in-memory shape. End is an exclusive
// checkout bound: the stay covers [Start, End).
type Reservation struct {
	ID              string        `json:"id"`
	PropertyID      string        `json:"property_id"`
	PropertyName    string        `json:"property_name"`
	Start           dateonly.Date `json:"start_date"`
	End             dateonly.Date `json:"end_date"`
	GuestName       string        `json:"guest_name,omitempty"`
	GuestPhoneLast4 string        `json:"guest_phone_last4,omitempty"`
	GuestPhone      string        `json:"guest_phone,omitempty"`
	Summary         string        `json:"summary,omitempty"`
	Description     string        `json:"description,omitempty"`
	Platform        Platform      `json:"platform"`
}

// FromRecord normalizes a raw record into the canonical shape. Fields absent
// under every spelling stay empty; nothing here fails. Date validity is a
// separate concern (Validate), so one malformed record never blanks a batch.
func FromRecord(rec Record, propertyID, propertyName string) Reservation {
	r := Reservation{
		ID:              strings.TrimSpace(rec.ID),
		PropertyID:      propertyID,
		PropertyName:    propertyName,
		Start:           dateonly.Parse(coalesce(rec.StartDate, rec.CheckInDate)),
		End:             dateonly.Parse(coalesce(rec.EndDate, rec.CheckOutDate)),
		GuestName:       coalesce(rec.GuestName, rec.GuestNameSnake),
		GuestPhoneLast4: rec.GuestPhoneLast4,
		GuestPhone:      coalesce(rec.GuestPhoneNumber, rec.GuestPhoneSnake),
		Summary:         rec.Summary,
		Description:     rec.Description,
	}
	r.Platform = Detect(r.Summary, r.Description)
	return r
}

// Validate rejects reservations that cannot be rendered: unparsable dates
// or a non-positive stay length.
func (r Reservation) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrInvalidRange
	}
	if !r.Start.Before(r.End) {
		return ErrInvalidRange
	}
	return nil
}

// Nights is the exact stay length; End is exclusive so no off-by-one
// correction is needed.
func (r Reservation) Nights() int {
	return r.Start.DaysUntil(r.End)
}

// LastNight is the final occupied day, the day before checkout.
func (r Reservation) LastNight() dateonly.Date {
	return r.End.AddDays(-1)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
