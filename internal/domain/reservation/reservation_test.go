package reservation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staycal/internal/domain/dateonly"
)

func TestFromRecordFieldSpellings(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{
			name: "camel case",
			rec: Record{
				ID:               "r1",
				StartDate:        "2024-03-05",
				EndDate:          "2024-03-08",
				GuestName:        "Ada",
				GuestPhoneNumber: "+1-555-867-5309",
			},
		},
		{
			name: "snake case",
			rec: Record{
				ID:              "r1",
				CheckInDate:     "2024-03-05",
				CheckOutDate:    "2024-03-08",
				GuestNameSnake:  "Ada",
				GuestPhoneSnake: "+1-555-867-5309",
			},
		},
		{
			name: "mixed within one record",
			rec: Record{
				ID:              "r1",
				StartDate:       "2024-03-05",
				CheckOutDate:    "2024-03-08",
				GuestName:       "Ada",
				GuestPhoneSnake: "+1-555-867-5309",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromRecord(tt.rec, "p1", "Sea Breeze Cottage")
			assert.Equal(t, "r1", r.ID)
			assert.Equal(t, "p1", r.PropertyID)
			assert.Equal(t, "Sea Breeze Cottage", r.PropertyName)
			assert.Equal(t, "2024-03-05", r.Start.Key())
			assert.Equal(t, "2024-03-08", r.End.Key())
			assert.Equal(t, "Ada", r.GuestName)
			assert.Equal(t, "+1-555-867-5309", r.GuestPhone)
			assert.NoError(t, r.Validate())
		})
	}
}

func TestFromRecordMissingFields(t *testing.T) {
	r := FromRecord(Record{ID: "r2"}, "p1", "Sea Breeze Cottage")
	assert.True(t, r.Start.IsZero())
	assert.True(t, r.End.IsZero())
	assert.Empty(t, r.GuestName)
	assert.Error(t, r.Validate())
}

func TestMixedConventionsWithinBatch(t *testing.T) {
	// The upstream contract does not promise one convention per batch.
	payload := `[
		{"id": "a", "startDate": "2024-03-05", "endDate": "2024-03-08"},
		{"id": "b", "check_in_date": "2024-03-10", "check_out_date": "2024-03-12"}
	]`
	var records []Record
	require.NoError(t, json.Unmarshal([]byte(payload), &records))
	require.Len(t, records, 2)

	a := FromRecord(records[0], "p1", "")
	b := FromRecord(records[1], "p1", "")
	assert.Equal(t, "2024-03-05", a.Start.Key())
	assert.Equal(t, "2024-03-10", b.Start.Key())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		ok    bool
	}{
		{name: "one night", start: "2024-03-05", end: "2024-03-06", ok: true},
		{name: "multi night", start: "2024-03-05", end: "2024-03-08", ok: true},
		{name: "zero nights", start: "2024-03-05", end: "2024-03-05", ok: false},
		{name: "negative", start: "2024-03-08", end: "2024-03-05", ok: false},
		{name: "unparsable start", start: "garbage", end: "2024-03-05", ok: false},
		{name: "unparsable end", start: "2024-03-05", end: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reservation{Start: dateonly.Parse(tt.start), End: dateonly.Parse(tt.end)}
			err := r.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidRange)
			}
		})
	}
}

func TestNightsAndLastNight(t *testing.T) {
	r := Reservation{
		Start: dateonly.Parse("2024-03-05"),
		End:   dateonly.Parse("2024-03-08"),
	}
	assert.Equal(t, 3, r.Nights())
	assert.Equal(t, "2024-03-07", r.LastNight().Key())
}
