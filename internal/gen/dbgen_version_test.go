package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/gen"
)

func TestGenerateDbgenVersionCarriesCommandLine(t *testing.T) {
	res := gen.GenerateDbgenVersion("1.0", "2026-07-31", "00:00:00", "tpcdsgen generate -s 1")
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "tpcdsgen generate -s 1", res.Rows[0].Columns()[3])
}
