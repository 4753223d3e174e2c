package address_test

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/address"
	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/rng"
)

func TestGenerateProducesConsistentFipsFields(t *testing.T) {
	registry := dist.NewRegistry(zerolog.New(io.Discard))
	s := rng.NewStream(1, 40)
	a, err := address.Generate(s, registry)
	require.NoError(t, err)

	assert.NotEmpty(t, a.County)
	assert.NotEmpty(t, a.State)
	assert.NotEmpty(t, a.Zip)
	assert.NotEmpty(t, a.StreetName)
	assert.NotEmpty(t, a.City)
}

func TestGenerateIsDeterministic(t *testing.T) {
	registry := dist.NewRegistry(zerolog.New(io.Discard))
	s1 := rng.NewStream(3, 40)
	s2 := rng.NewStream(3, 40)
	a1, err := address.Generate(s1, registry)
	require.NoError(t, err)
	a2, err := address.Generate(s2, registry)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
}
