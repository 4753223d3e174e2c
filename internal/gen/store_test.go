package gen_test

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/gen"
)

func TestGenerateStoreProducesThreeVersions(t *testing.T) {
	registry := dist.NewRegistry(zerolog.New(io.Discard))
	res, err := gen.GenerateStore(1, registry)
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
}
