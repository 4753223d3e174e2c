package gen_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/gen"
)

func TestGeneratePromotionIsDeterministic(t *testing.T) {
	res1 := gen.GeneratePromotion(6, 1000)
	res2 := gen.GeneratePromotion(6, 1000)
	assert.Equal(t, res1.Rows[0].Columns(), res2.Rows[0].Columns())
}

func TestGeneratePromotionEndDateAfterStart(t *testing.T) {
	res := gen.GeneratePromotion(2, 1000)
	cols := res.Rows[0].Columns()
	assert.NotEqual(t, cols[2], "")
	assert.NotEqual(t, cols[3], "")
	start, err := strconv.Atoi(cols[2])
	require.NoError(t, err)
	end, err := strconv.Atoi(cols[3])
	require.NoError(t, err)
	assert.Greater(t, end, start)
}
