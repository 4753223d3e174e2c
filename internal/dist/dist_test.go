package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/rng"
)

const sample = `# fields: name
# weights: frequency
alpha|10
beta|5
gamma|1
`

func TestParse(t *testing.T) {
	d, err := dist.Parse("sample.dst", []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, "alpha", d.Field(0, "name"))
	assert.Equal(t, 10, d.Weight(0, "frequency"))
}

func TestPickWeightedStaysInBounds(t *testing.T) {
	d, err := dist.Parse("sample.dst", []byte(sample))
	require.NoError(t, err)
	s := rng.NewStream(1, 16)
	for i := 0; i < 200; i++ {
		idx := d.PickWeighted(s, "frequency")
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, d.Len())
	}
}

func TestPickWeightedIsDeterministic(t *testing.T) {
	d, err := dist.Parse("sample.dst", []byte(sample))
	require.NoError(t, err)
	s1 := rng.NewStream(5, 10)
	s2 := rng.NewStream(5, 10)
	for i := 0; i < 20; i++ {
		assert.Equal(t, d.PickWeighted(s1, "frequency"), d.PickWeighted(s2, "frequency"))
	}
}

func TestRegistryLoadsEmbeddedAsset(t *testing.T) {
	r := dist.NewRegistry(zeroLogger())
	d, err := r.Load("genders.dst")
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	// second load hits the cache, not the embedded FS again
	d2, err := r.Load("genders.dst")
	require.NoError(t, err)
	assert.Same(t, d, d2)
}

func TestRegistryMissingAsset(t *testing.T) {
	r := dist.NewRegistry(zeroLogger())
	_, err := r.Load("does_not_exist.dst")
	assert.Error(t, err)
}
