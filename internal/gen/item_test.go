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

func TestGenerateItemProducesThreeVersions(t *testing.T) {
	registry := dist.NewRegistry(zerolog.New(io.Discard))
	res, err := gen.GenerateItem(1, registry)
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)

	for _, row := range res.Rows {
		cols := row.Columns()
		assert.NotEmpty(t, cols[4]) // product name always populated
	}
}

func TestGenerateItemIsDeterministic(t *testing.T) {
	registry := dist.NewRegistry(zerolog.New(io.Discard))
	res1, err := gen.GenerateItem(7, registry)
	require.NoError(t, err)
	res2, err := gen.GenerateItem(7, registry)
	require.NoError(t, err)
	for i := range res1.Rows {
		assert.Equal(t, res1.Rows[i].Columns(), res2.Rows[i].Columns())
	}
}

func TestGenerateItemLastVersionHasNoEndDate(t *testing.T) {
	registry := dist.NewRegistry(zerolog.New(io.Discard))
	res, err := gen.GenerateItem(2, registry)
	require.NoError(t, err)
	last := res.Rows[len(res.Rows)-1].Columns()
	assert.Equal(t, "", last[3])
}
