package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1993-10-15", "1993-10-15"},
		{"1993-2-28", "1993-02-28"},
		{" 2022-1-5 ", "2022-01-05"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}

	for _, bad := range []string{"", "1993-13-01", "1993-02-30", "15/10/1993", "1993-10-15T10:00:00"} {
		t.Run("bad "+bad, func(t *testing.T) {
			_, err := ParseDate(bad)
			assert.Error(t, err)
		})
	}
}

func TestDate_EqualAndValue(t *testing.T) {
	a := MustDate("1993-2-28")
	b := NewDate(1993, time.February, 28)
	assert.True(t, a.Equal(b))

	v, err := a.Value()
	require.NoError(t, err)
	assert.Equal(t, "1993-02-28", v)
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1993-10-15T10:30:5", "1993-10-15 10:30:05"},
		{"1993-2-28T10:30:05", "1993-02-28 10:30:05"},
		{"2022-10-15 10:30:05", "2022-10-15 10:30:05"},
		{"2022-10-15T10:30", "2022-10-15 10:30:00"},
		{"2022-10-15T10:30:05.123", "2022-10-15 10:30:05.123"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDateTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}

	_, err := ParseDateTime("2022-10-15")
	assert.Error(t, err)
}

func TestDateTime_SubSecondEquality(t *testing.T) {
	a := MustDateTime("2022-10-15T10:30:05.000001")
	b := NewDateTime(2022, time.October, 15, 10, 30, 5, 0)
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(NewDateTime(2022, time.October, 15, 10, 30, 5, 1000)))
}

func TestParseDateTimeTz(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1993-10-15T10:30:5+00:00", "1993-10-15 10:30:05 +00:00"},
		{"2022-10-15T10:30:05Z", "2022-10-15 10:30:05 +00:00"},
		{"2022-10-15T10:30:05-03:30", "2022-10-15 10:30:05 -03:30"},
		{"2022-10-15 10:30:05+0200", "2022-10-15 10:30:05 +02:00"},
		{"2022-10-15T10:30:05.5+01:00", "2022-10-15 10:30:05.5 +01:00"},
		// '+' decoded to a space by form decoding
		{"2022-10-15T10:30:05 02:00", "2022-10-15 10:30:05 +02:00"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDateTimeTz(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}

	for _, bad := range []string{"2022-10-15T10:30:05", "2022-10-15", "garbage"} {
		t.Run("bad "+bad, func(t *testing.T) {
			_, err := ParseDateTimeTz(bad)
			assert.Error(t, err)
		})
	}
}

func TestDateTimeTz_OffsetIsPartOfEquality(t *testing.T) {
	utc := MustDateTimeTz("2022-10-15T10:30:05Z")
	plusTwo := MustDateTimeTz("2022-10-15T12:30:05+02:00")

	assert.True(t, utc.Time().Equal(plusTwo.Time()))
	assert.False(t, utc.Equal(plusTwo))
	assert.Equal(t, 7200, plusTwo.Offset())
	assert.True(t, plusTwo.Equal(NewDateTimeTz(time.Date(2022, 10, 15, 12, 30, 5, 0, time.FixedZone("CEST", 7200)))))
}

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal(" 12.50 ")
	require.NoError(t, err)
	assert.Equal(t, "12.5", d.String())

	_, err = ParseDecimal("")
	assert.Error(t, err)
	_, err = ParseDecimal("12,5")
	assert.Error(t, err)
	assert.True(t, MustDecimal("-3").IsNegative())
}
