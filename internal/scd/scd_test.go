package scd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tpcdsgen/internal/caldate"
	"tpcdsgen/internal/scd"
)

func TestWindowsPartitionRange(t *testing.T) {
	s0, e0, cur0 := scd.Window(0)
	s1, e1, _ := scd.Window(1)
	s2, e2, cur2 := scd.Window(2)

	assert.Equal(t, caldate.DataRangeMin, s0)
	assert.Equal(t, s1, e0+1)
	assert.Equal(t, s2, e1+1)
	assert.Equal(t, caldate.DataRangeMax, e2)
	assert.False(t, cur0)
	assert.True(t, cur2)
}

func TestVersionForDateRoundTrips(t *testing.T) {
	for v := 0; v < scd.Versions; v++ {
		start, end, _ := scd.Window(v)
		assert.Equal(t, v, scd.VersionForDate(start))
		assert.Equal(t, v, scd.VersionForDate(end))
	}
}

func TestSurrogateKeysAreConsecutivePerBusinessKey(t *testing.T) {
	assert.Equal(t, int64(1), scd.SurrogateKey(1, 0))
	assert.Equal(t, int64(2), scd.SurrogateKey(1, 1))
	assert.Equal(t, int64(3), scd.SurrogateKey(1, 2))
	assert.Equal(t, int64(4), scd.SurrogateKey(2, 0))
}

func TestMatchSurrogateKey(t *testing.T) {
	_, _, _ = scd.Window(0)
	start2, _, _ := scd.Window(2)
	assert.Equal(t, scd.SurrogateKey(5, 2), scd.MatchSurrogateKey(5, start2))
}

func TestChangeFlagsAlwaysNewStillAdvances(t *testing.T) {
	flags := scd.ChangeFlags(0b010) // bit0=0 bit1=1 bit2=0
	v1 := scd.Field(&flags, true, "new1", "old1")
	v2 := scd.Field(&flags, false, "new2", "old2")
	v3 := scd.Field(&flags, false, "new3", "old3")

	assert.Equal(t, "new1", v1) // always new, bit0 irrelevant
	assert.Equal(t, "new2", v2) // bit1 was set -> changed
	assert.Equal(t, "old3", v3) // bit2 was clear -> unchanged
}
