package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruncateToDay(t *testing.T) {
	tests := []struct {
		name     string
		unixtime int64
		expected int64
	}{
		{
			name:     "midnight stays",
			unixtime: 1704067200, // 2024-01-01 00:00:00 UTC
			expected: 1704067200,
		},
		{
			name:     "last second of day",
			unixtime: 1704067199, // 2023-12-31 23:59:59 UTC
			expected: 1703980800, // 2023-12-31 00:00:00 UTC
		},
		{
			name:     "midday",
			unixtime: 1704110400, // 2024-01-01 12:00:00 UTC
			expected: 1704067200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateToDay(tt.unixtime))
		})
	}
}

func TestIsNextDay(t *testing.T) {
	assert.True(t, IsNextDay(1703980800, 1704067200))
	assert.False(t, IsNextDay(1703980800, 1704153600))
	assert.False(t, IsNextDay(1704067200, 1703980800))
}

func TestToYYYYMMDD(t *testing.T) {
	assert.Equal(t, uint32(20231231), ToYYYYMMDD(1704067199))
	assert.Equal(t, uint32(20240101), ToYYYYMMDD(1704067200))
}

func TestYYYYMMDDToUnix(t *testing.T) {
	assert.Equal(t, int64(1704067200), YYYYMMDDToUnix(20240101))
	assert.Equal(t, int64(1703980800), YYYYMMDDToUnix(20231231))
}

func TestNextDate(t *testing.T) {
	assert.Equal(t, uint32(20240101), NextDate(20231231))
	assert.Equal(t, uint32(20240229), NextDate(20240228)) // leap year
	assert.Equal(t, uint32(20230301), NextDate(20230228))
}

func TestPrevDate(t *testing.T) {
	assert.Equal(t, uint32(20231231), PrevDate(20240101))
	assert.Equal(t, uint32(20240229), PrevDate(20240301))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "42s", FormatDuration(42*time.Second))
	assert.Equal(t, "12m30s", FormatDuration(12*time.Minute+30*time.Second))
	assert.Equal(t, "3h5m", FormatDuration(3*time.Hour+5*time.Minute))
	assert.Equal(t, "2d1h0m", FormatDuration(49*time.Hour))
}

func TestWithSeparator(t *testing.T) {
	assert.Equal(t, "0", WithSeparator(0))
	assert.Equal(t, "999", WithSeparator(999))
	assert.Equal(t, "1,000", WithSeparator(1000))
	assert.Equal(t, "648,000", WithSeparator(648000))
	assert.Equal(t, "1,234,567,890", WithSeparator(1234567890))
}
