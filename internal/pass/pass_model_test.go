package pass

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestActiveOnWindowIsInclusive(t *testing.T) {
	p := Pass{
		Type:      TypeMonthly,
		StartDate: date(2026, time.March, 1),
		EndDate:   date(2026, time.March, 31),
	}

	assert.False(t, p.ActiveOn(date(2026, time.February, 28)))
	assert.True(t, p.ActiveOn(date(2026, time.March, 1)))
	assert.True(t, p.ActiveOn(date(2026, time.March, 15)))
	assert.True(t, p.ActiveOn(date(2026, time.March, 31)))
	assert.False(t, p.ActiveOn(date(2026, time.April, 1)))
}

func TestActiveOnIgnoresTimeOfDay(t *testing.T) {
	p := Pass{
		Type:      TypeMonthly,
		StartDate: date(2026, time.March, 1),
		EndDate:   date(2026, time.March, 31),
	}

	// Late on the last day still counts.
	lastEvening := time.Date(2026, time.March, 31, 23, 59, 0, 0, time.UTC)
	assert.True(t, p.ActiveOn(lastEvening))

	// Early on the first day too.
	firstMorning := time.Date(2026, time.March, 1, 0, 5, 0, 0, time.UTC)
	assert.True(t, p.ActiveOn(firstMorning))
}

func TestDeriveEndDate(t *testing.T) {
	start := date(2026, time.March, 1)

	assert.Equal(t, date(2026, time.March, 31), DeriveEndDate(TypeMonthly, start))
	assert.Equal(t, date(2027, time.February, 28), DeriveEndDate(TypeSeason, start))
}
