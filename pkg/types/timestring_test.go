package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("24:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("09:60")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("garbage")
	assert.Error(t, err)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, "00:00", ts.String())

	ts, err = NewTimeStringFromMinutes(7*60 + 45)
	require.NoError(t, err)
	assert.Equal(t, "07:45", ts.String())

	ts, err = NewTimeStringFromMinutes(23*60 + 59)
	require.NoError(t, err)
	assert.Equal(t, "23:59", ts.String())

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.Error(t, err)

	_, err = NewTimeStringFromMinutes(-15)
	assert.Error(t, err)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("17:30")
	m, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 17*60+30, m)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	later, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "09:45", later.String())

	// Crossing midnight is rejected
	late := TimeString("23:50")
	_, err = late.AddMinutes(15)
	assert.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	// Lexicographic comparison matches chronological order for the
	// zero-padded canonical form
	assert.True(t, TimeString("07:30").IsBefore(TimeString("17:30")))
	assert.True(t, TimeString("09:45").IsAfter(TimeString("09:30")))
	assert.False(t, TimeString("10:00").IsBefore(TimeString("10:00")))
	assert.False(t, TimeString("10:00").IsAfter(TimeString("10:00")))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("00:00").IsZero())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("08:15"))
	assert.Equal(t, "08:15", ts.String())

	// Postgres TIME columns scan with seconds
	require.NoError(t, ts.Scan("08:15:00"))
	assert.Equal(t, "08:15", ts.String())

	require.NoError(t, ts.Scan([]byte("12:00")))
	assert.Equal(t, "12:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, "14:30", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
