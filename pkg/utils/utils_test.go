package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same day",
			from: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "one day ignoring time of day",
			from: time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC),
			to:   time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "across a month boundary",
			from: time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
			want: 11,
		},
		{
			name: "negative when reversed",
			from: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			want: -5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.from, tt.to))
		})
	}
}

func TestAddDays(t *testing.T) {
	start := time.Date(2024, 2, 27, 15, 30, 0, 0, time.UTC)

	got := AddDays(start, 3)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got, "leap year rollover, time of day dropped")
}

func TestIsDateOverdue(t *testing.T) {
	due := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	assert.False(t, IsDateOverdue(due, time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsDateOverdue(due, time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC)), "due day itself is not overdue")
	assert.True(t, IsDateOverdue(due, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)))
}

func TestMinMaxDecimal(t *testing.T) {
	a := decimal.NewFromInt(10)
	b := decimal.NewFromInt(25)

	assert.True(t, MinDecimal(a, b).Equal(a))
	assert.True(t, MinDecimal(b, a).Equal(a))
	assert.True(t, MaxDecimal(a, b).Equal(b))
	assert.True(t, MinDecimal(a, a).Equal(a))
}
