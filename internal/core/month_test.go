package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMonth_DropsDayAndTime(t *testing.T) {
	in := time.Date(2025, 2, 15, 11, 42, 3, 999, time.UTC)

	got := NormalizeMonth(in)

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestNormalizeMonth_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*60*60)
	// 2025-03-01 03:00 at UTC+13 is still 2025-02-28 in UTC.
	in := time.Date(2025, 3, 1, 3, 0, 0, 0, loc)

	got := NormalizeMonth(in)

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestNormalizeMonth_AlreadyNormalized(t *testing.T) {
	in := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, in, NormalizeMonth(in))
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2024, time.December)

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestPreviousMonth(t *testing.T) {
	year, month := PreviousMonth(2025, time.February)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.January, month)
}

func TestPreviousMonth_WrapsYearAtJanuary(t *testing.T) {
	year, month := PreviousMonth(2025, time.January)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.December, month)
}
