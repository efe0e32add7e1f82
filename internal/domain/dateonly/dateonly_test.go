package dateonly

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		valid bool
	}{
		{name: "plain date", input: "2024-03-05", want: "2024-03-05", valid: true},
		{name: "iso datetime keeps date prefix", input: "2024-03-05T22:30:00Z", want: "2024-03-05", valid: true},
		{name: "iso datetime with offset", input: "2024-12-31T23:59:59+11:00", want: "2024-12-31", valid: true},
		{name: "space separated datetime", input: "2024-03-05 10:00:00", want: "2024-03-05", valid: true},
		{name: "surrounding whitespace", input: "  2024-03-05  ", want: "2024-03-05", valid: true},
		{name: "garbage", input: "not-a-date", valid: false},
		{name: "empty", input: "", valid: false},
		{name: "month out of range", input: "2024-13-05", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !tt.valid {
				assert.True(t, got.IsZero())
				return
			}
			assert.False(t, got.IsZero())
			assert.Equal(t, tt.want, got.Key())
		})
	}
}

func TestKeyRoundTrip(t *testing.T) {
	dates := []Date{
		New(2024, time.March, 5),
		New(2024, time.February, 29),
		New(1999, time.December, 31),
		New(2025, time.January, 1),
	}
	for _, d := range dates {
		assert.True(t, Parse(d.Key()).Equal(d), "round trip failed for %s", d.Key())
	}
}

func TestFromTimeDiscardsClockAndZone(t *testing.T) {
	// 23:30 local on March 5 stays March 5 regardless of what that instant
	// is in UTC.
	loc := time.FixedZone("UTC+13", 13*60*60)
	late := time.Date(2024, time.March, 5, 23, 30, 0, 0, loc)
	assert.Equal(t, "2024-03-05", FromTime(late).Key())

	early := time.Date(2024, time.March, 5, 0, 10, 0, 0, time.FixedZone("UTC-11", -11*60*60))
	assert.Equal(t, "2024-03-05", FromTime(early).Key())
}

func TestAddDaysAndCompare(t *testing.T) {
	d := New(2024, time.February, 28)
	assert.Equal(t, "2024-02-29", d.AddDays(1).Key())
	assert.Equal(t, "2024-03-01", d.AddDays(2).Key())
	assert.Equal(t, "2024-02-27", d.AddDays(-1).Key())

	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.Equal(t, 2, d.DaysUntil(d.AddDays(2)))
	assert.Equal(t, -2, d.AddDays(2).DaysUntil(d))
}

func TestIsToday(t *testing.T) {
	assert.True(t, Today().IsToday())
	assert.False(t, Today().AddDays(1).IsToday())
	assert.False(t, Today().AddDays(-1).IsToday())
}

func TestJSONMarshalling(t *testing.T) {
	d := New(2024, time.March, 5)
	data, err := d.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(data))

	var parsed Date
	assert.NoError(t, parsed.UnmarshalJSON([]byte(`"2024-03-05"`)))
	assert.True(t, parsed.Equal(d))

	var zero Date
	assert.NoError(t, zero.UnmarshalJSON([]byte("null")))
	assert.True(t, zero.IsZero())

	data, err = Date{}.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
