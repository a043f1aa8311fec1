package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthWindow(t *testing.T) {
	assert.Equal(t, date(2024, 2, 1), MonthStart(2024, 2))
	assert.Equal(t, date(2024, 2, 29), MonthEnd(2024, 2))
	assert.Equal(t, date(2023, 12, 31), MonthEnd(2023, 12))
}

func TestPrevMonth(t *testing.T) {
	y, m := PrevMonth(2024, 1)
	assert.Equal(t, 2023, y)
	assert.Equal(t, 12, m)

	y, m = PrevMonth(2024, 7)
	assert.Equal(t, 2024, y)
	assert.Equal(t, 6, m)
}

func TestElapsedMonths(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"return day after start day", date(2024, 1, 1), date(2024, 3, 15), 3},
		{"return day equals start day", date(2024, 1, 15), date(2024, 3, 15), 3},
		{"return day before start day", date(2024, 1, 20), date(2024, 3, 15), 2},
		{"same day", date(2024, 1, 10), date(2024, 1, 10), 1},
		{"across year", date(2023, 11, 5), date(2024, 2, 4), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ElapsedMonths(tt.start, tt.end))
		})
	}
}

func TestBeforeIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)
	assert.True(t, Before(late, date(2024, 4, 1)))
	assert.False(t, Before(time.Date(2024, 4, 1, 18, 0, 0, 0, time.UTC), date(2024, 4, 1)))
}

func TestWithinInclusive(t *testing.T) {
	from, to := MonthStart(2024, 5), MonthEnd(2024, 5)
	assert.True(t, Within(date(2024, 5, 1), from, to))
	assert.True(t, Within(time.Date(2024, 5, 31, 22, 0, 0, 0, time.UTC), from, to))
	assert.False(t, Within(date(2024, 6, 1), from, to))
	assert.False(t, Within(date(2024, 4, 30), from, to))
}

func TestParse(t *testing.T) {
	d, err := Parse("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = Parse("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 29), *d)
	assert.Equal(t, "2024-02-29", Format(d))

	_, err = Parse("29/02/2024")
	assert.Error(t, err)
}

func TestValidateMonth(t *testing.T) {
	assert.NoError(t, ValidateMonth(2024, 12))
	assert.Error(t, ValidateMonth(2024, 13))
	assert.Error(t, ValidateMonth(1999, 1))
}
