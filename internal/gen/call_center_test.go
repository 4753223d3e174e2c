package gen_test

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/gen"
)

func testRegistry() *dist.Registry {
	return dist.NewRegistry(zerolog.New(io.Discard))
}

func TestGenerateCallCenterProducesThreeVersions(t *testing.T) {
	res, err := gen.GenerateCallCenter(1, testRegistry())
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
}

func TestGenerateCallCenterIsDeterministic(t *testing.T) {
	res1, err := gen.GenerateCallCenter(7, testRegistry())
	require.NoError(t, err)
	res2, err := gen.GenerateCallCenter(7, testRegistry())
	require.NoError(t, err)
	assert.Equal(t, res1.Rows[0].Columns(), res2.Rows[0].Columns())
}
