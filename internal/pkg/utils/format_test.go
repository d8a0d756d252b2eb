package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	t.Run("day before birthday", func(t *testing.T) {
		today := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 23, AgeAt("2000-06-15", today))
	})

	t.Run("on birthday", func(t *testing.T) {
		today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 24, AgeAt("2000-06-15", today))
	})

	t.Run("day after birthday", func(t *testing.T) {
		today := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 24, AgeAt("2000-06-15", today))
	})

	t.Run("month boundary", func(t *testing.T) {
		today := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 23, AgeAt("2000-06-15", today))
	})

	t.Run("unparseable date of birth", func(t *testing.T) {
		today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, AgeAt("not-a-date", today))
	})
}

func TestFormatTime12Hour(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"00:05", "12:05 AM"},
		{"09:30", "9:30 AM"},
		{"12:00", "12:00 PM"},
		{"13:30", "1:30 PM"},
		{"23:59", "11:59 PM"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatTime12Hour(tc.in))
		})
	}

	t.Run("unparseable value is returned verbatim", func(t *testing.T) {
		assert.Equal(t, "soon", FormatTime12Hour("soon"))
	})
}

func TestFormatCurrencyINR(t *testing.T) {
	t.Run("lakh grouping", func(t *testing.T) {
		assert.Equal(t, "₹1,23,456.78", FormatCurrencyINR(123456.78))
	})

	t.Run("two decimals always shown", func(t *testing.T) {
		assert.Equal(t, "₹500.00", FormatCurrencyINR(500))
	})

	t.Run("small amount", func(t *testing.T) {
		assert.Equal(t, "₹0.50", FormatCurrencyINR(0.5))
	})
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "RS", Initials("Rajesh Sharma"))
	assert.Equal(t, "A", Initials("anita"))
	assert.Equal(t, "", Initials(""))
}
