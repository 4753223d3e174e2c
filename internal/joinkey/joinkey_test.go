package joinkey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tpcdsgen/internal/caldate"
	"tpcdsgen/internal/joinkey"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/scd"
)

func TestPickResolvesToCurrentVersionOnGivenDate(t *testing.T) {
	s := rng.NewStream(1, 10)
	key := joinkey.Pick(s, 50, caldate.DataRangeMax)
	version := scd.VersionForDate(caldate.DataRangeMax)
	assert.Equal(t, version, scd.Versions-1)
	assert.GreaterOrEqual(t, key, int64(1))
}

func TestPickStaticStaysWithinRange(t *testing.T) {
	s := rng.NewStream(2, 10)
	for i := 0; i < 20; i++ {
		key := joinkey.PickStatic(s, 10)
		assert.GreaterOrEqual(t, key, int64(1))
		assert.LessOrEqual(t, key, int64(10))
	}
}
