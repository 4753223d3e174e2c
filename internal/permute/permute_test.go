package permute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tpcdsgen/internal/permute"
	"tpcdsgen/internal/rng"
)

func TestMakeIsAPermutation(t *testing.T) {
	s := rng.NewStream(1, 20)
	p := permute.Make(s, 20)
	seen := make(map[int64]bool)
	for i := int64(0); i < p.Len(); i++ {
		v := p.Entry(i)
		assert.False(t, seen[v], "value %d seen twice", v)
		seen[v] = true
		assert.GreaterOrEqual(t, v, int64(1))
		assert.LessOrEqual(t, v, p.Len())
	}
	assert.Len(t, seen, 20)
}

func TestEntryWrapsAround(t *testing.T) {
	s := rng.NewStream(2, 10)
	p := permute.Make(s, 10)
	assert.Equal(t, p.Entry(0), p.Entry(10))
	assert.Equal(t, p.Entry(3), p.Entry(13))
}

func TestMakeIsDeterministic(t *testing.T) {
	s1 := rng.NewStream(7, 15)
	s2 := rng.NewStream(7, 15)
	p1 := permute.Make(s1, 15)
	p2 := permute.Make(s2, 15)
	for i := int64(0); i < 15; i++ {
		assert.Equal(t, p1.Entry(i), p2.Entry(i))
	}
}
