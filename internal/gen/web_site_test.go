package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/gen"
)

func TestGenerateWebSiteProducesThreeVersions(t *testing.T) {
	res, err := gen.GenerateWebSite(1, testRegistry())
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
}

func TestGenerateWebSiteIsDeterministic(t *testing.T) {
	res1, err := gen.GenerateWebSite(2, testRegistry())
	require.NoError(t, err)
	res2, err := gen.GenerateWebSite(2, testRegistry())
	require.NoError(t, err)
	assert.Equal(t, res1.Rows[0].Columns(), res2.Rows[0].Columns())
}
