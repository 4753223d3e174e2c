package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcdsgen/internal/gen"
)

func webDims() gen.Dimensions {
	return gen.Dimensions{
		ItemRowCount: testItemIDCount, ItemIDCount: testItemIDCount,
		CustomerRowCount: 5000, PromotionCount: 20,
		WebSiteRowCount: 10, WebSiteIDCount: 10,
		WebPageRowCount: 50, WebPageIDCount: 50,
		ShipModeCount: 20, WarehouseRowCount: 5,
	}
}

func TestGenerateWebSalesIsDeterministic(t *testing.T) {
	perm := testItemPermutation()
	res1 := gen.GenerateWebSales(8, webDims(), perm)
	res2 := gen.GenerateWebSales(8, webDims(), perm)
	assert.Equal(t, res1.Rows[0].Columns(), res2.Rows[0].Columns())
}

func TestGenerateWebSalesEndsParent(t *testing.T) {
	res := gen.GenerateWebSales(8, webDims(), testItemPermutation())
	assert.True(t, res.EndOfParent)
}

func TestGenerateWebSalesLineItemCountInRange(t *testing.T) {
	res := gen.GenerateWebSales(8, webDims(), testItemPermutation())
	lineItems := 0
	for _, row := range res.Rows {
		if row.Table() == "web_sales" {
			lineItems++
		}
	}
	assert.GreaterOrEqual(t, lineItems, 8)
	assert.LessOrEqual(t, lineItems, 16)
}

func TestGenerateWebSalesShipDateAfterSoldDate(t *testing.T) {
	res := gen.GenerateWebSales(8, webDims(), testItemPermutation())
	require.NotEmpty(t, res.Rows)
	cols := res.Rows[0].Columns()
	require.NotEqual(t, cols[0], cols[1])
}

func TestGenerateWebSalesSometimesProducesAReturn(t *testing.T) {
	foundReturn := false
	perm := testItemPermutation()
	for i := int64(1); i <= 50; i++ {
		res := gen.GenerateWebSales(i, webDims(), perm)
		for _, row := range res.Rows {
			if row.Table() == "web_returns" {
				foundReturn = true
			}
		}
	}
	assert.True(t, foundReturn, "expected at least one return across 50 orders")
}
