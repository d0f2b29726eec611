package dates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskcsv/internal/dates"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"bare date pins to UTC midnight", "2024-01-01", "2024-01-01T00:00:00.000Z", true},
		{"canonical instant passes through", "2024-01-01T00:00:00.000Z", "2024-01-01T00:00:00.000Z", true},
		{"rfc3339 zulu", "2024-06-15T13:30:00Z", "2024-06-15T13:30:00.000Z", true},
		{"offset converted to utc", "2024-01-01T10:00:00+02:00", "2024-01-01T08:00:00.000Z", true},
		{"offset crossing date line", "2024-01-01T01:00:00+02:00", "2023-12-31T23:00:00.000Z", true},
		{"no offset assumed utc", "2024-01-01T09:15:00", "2024-01-01T09:15:00.000Z", true},
		{"empty", "", "", false},
		{"garbage", "not-a-date", "", false},
		{"bare date shape, impossible date", "2024-13-99", "", false},
		{"partial date", "2024-01", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := dates.Normalize(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateOnly(t *testing.T) {
	got, ok := dates.DateOnly("2024-01-01T00:00:00.000Z")
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", got)

	// UTC calendar date, not the local one of the original offset.
	got, ok = dates.DateOnly("2024-01-01T23:30:00.000Z")
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", got)

	_, ok = dates.DateOnly("")
	assert.False(t, ok)
	_, ok = dates.DateOnly("garbage")
	assert.False(t, ok)
}

func TestNormalizeDateOnlyRoundTrip(t *testing.T) {
	instant, ok := dates.Normalize("2024-01-01")
	require.True(t, ok)
	day, ok := dates.DateOnly(instant)
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", day)
}

func TestIsBareDate(t *testing.T) {
	assert.True(t, dates.IsBareDate("2024-01-01"))
	assert.True(t, dates.IsBareDate("2024-13-99")) // shape only
	assert.False(t, dates.IsBareDate("2024-01-01T00:00:00Z"))
	assert.False(t, dates.IsBareDate("01/02/2024"))
	assert.False(t, dates.IsBareDate(""))
}
