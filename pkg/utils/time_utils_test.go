package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgiersTimeHelpers(t *testing.T) {
	day := AlgiersMidnight(time.Date(2025, 10, 26, 23, 30, 0, 0, time.UTC))
	assert.Equal(t, "2025-10-26T00:00:00+01:00", FormatRFC3339DZ(day))

	at, ok := AtClock(day, "09:15")
	require.True(t, ok)
	assert.Equal(t, "09:15", FormatClockDZ(at))
	assert.Equal(t, "2025-10-26", FormatDateDZ(at))

	_, ok = AtClock(day, "9h15")
	assert.False(t, ok)

	assert.True(t, at.Equal(FromUnixSecondsDZ(at.Unix())))
	assert.True(t, FromUnixSecondsDZ(0).IsZero())
	assert.Empty(t, FormatRFC3339DZ(time.Time{}))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-10-26")
	require.NoError(t, err)
	assert.Equal(t, 26, d.Day())

	_, err = ParseDate("26/10/2025")
	assert.Error(t, err)
}
