package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly_DropsTimeOfDay(t *testing.T) {
	d := DateOnly(time.Date(2025, 6, 14, 23, 59, 59, 1, time.UTC))

	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), d)
}

func TestDateOnly_KeepsWallClockDate(t *testing.T) {
	// берётся календарная дата в зоне самой метки, не после перевода в UTC
	loc := time.FixedZone("UTC+5", 5*3600)
	d := DateOnly(time.Date(2025, 6, 15, 1, 30, 0, 0, loc))

	assert.Equal(t, time.UTC, d.Location())
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), d)
}

func TestDateOnly_SameDayCollapses(t *testing.T) {
	morning := DateOnly(time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC))
	evening := DateOnly(time.Date(2025, 6, 14, 22, 0, 0, 0, time.UTC))

	assert.Equal(t, morning, evening)
}
