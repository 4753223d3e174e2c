package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/gen"
	"tpcdsgen/internal/permute"
	"tpcdsgen/internal/rng"
)

const testItemIDCount = 1000

func dims() gen.Dimensions {
	return gen.Dimensions{
		ItemRowCount: testItemIDCount, ItemIDCount: testItemIDCount,
		StoreRowCount: 10, StoreIDCount: 10,
		CustomerRowCount: 5000, PromotionCount: 20,
		ShipModeCount: 20, WarehouseRowCount: 5,
	}
}

func testItemPermutation() *permute.Permutation {
	return permute.Make(rng.NewStream(900, 1), testItemIDCount)
}

func TestGenerateStoreSalesRepeatsCouponAmountColumn(t *testing.T) {
	res := gen.GenerateStoreSales(1, dims(), testItemPermutation())
	require.NotEmpty(t, res.Rows)
	cols := res.Rows[0].Columns()
	assert.Equal(t, cols[19], cols[len(cols)-1])
}

func TestGenerateStoreSalesIsDeterministic(t *testing.T) {
	res1 := gen.GenerateStoreSales(42, dims(), testItemPermutation())
	res2 := gen.GenerateStoreSales(42, dims(), testItemPermutation())
	assert.Equal(t, res1.Rows[0].Columns(), res2.Rows[0].Columns())
}

func TestGenerateStoreSalesEndsParent(t *testing.T) {
	res := gen.GenerateStoreSales(1, dims(), testItemPermutation())
	assert.True(t, res.EndOfParent)
}

func TestGenerateStoreSalesLineItemCountInRange(t *testing.T) {
	res := gen.GenerateStoreSales(1, dims(), testItemPermutation())
	lineItems := 0
	for _, row := range res.Rows {
		if row.Table() == "store_sales" {
			lineItems++
		}
	}
	assert.GreaterOrEqual(t, lineItems, 8)
	assert.LessOrEqual(t, lineItems, 16)
}

func TestGenerateStoreSalesSometimesProducesAReturn(t *testing.T) {
	foundReturn := false
	perm := testItemPermutation()
	for i := int64(1); i <= 50; i++ {
		res := gen.GenerateStoreSales(i, dims(), perm)
		for _, row := range res.Rows {
			if row.Table() == "store_returns" {
				foundReturn = true
			}
		}
	}
	assert.True(t, foundReturn, "expected at least one return across 50 orders")
}
