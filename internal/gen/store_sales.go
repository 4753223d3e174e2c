package gen

import (
	"fmt"

	"tpcdsgen/internal/caldate"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/joinkey"
	"tpcdsgen/internal/permute"
	"tpcdsgen/internal/pricing"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/scd"
	"tpcdsgen/internal/schema"
)

const (
	storeSalesSeedsPerRow   = 24
	storeReturnsSeedsPerRow = 20

	// returnRatePercent is the share of sales line items that get a
	// matching returns row, the reference generator's fixed ~10%
	// sales-return rate shared by all three channels.
	returnRatePercent = 10

	// storeLineItemsMin/Max bound how many line items one store_sales
	// order draws, per the reference generator's order model.
	storeLineItemsMin = 8
	storeLineItemsMax = 16

	// storeGiftRatePercent is the share of store orders flagged as a
	// gift order; store_sales carries no distinct ship-to customer
	// column, so the roll is drawn purely to keep this channel's seed
	// sequence aligned with catalog and web's shared order_info shape.
	storeGiftRatePercent = 10

	// returnsLineItemSlots bounds the per-order line-item count so the
	// returns generator's skip key (orderNumber*returnsLineItemSlots +
	// lineIndex) never collides between adjacent orders.
	returnsLineItemSlots = 32
)

// StoreSalesRow is one store_sales line item. ss_coupon_amt is
// deliberately written twice into Columns: the reference generator's own
// output schema repeats the coupon_amount value at two column positions
// for this table, and this engine reproduces that rather than "fixing"
// it, since downstream consumers of .dat files depend on the column
// count matching the reference .dat layout exactly.
type StoreSalesRow struct {
	cols []string
}

func (r StoreSalesRow) Table() string     { return "store_sales" }
func (r StoreSalesRow) Columns() []string { return r.cols }

// StoreReturnsRow is one store_returns row.
type StoreReturnsRow struct {
	cols []string
}

func (r StoreReturnsRow) Table() string     { return "store_returns" }
func (r StoreReturnsRow) Columns() []string { return r.cols }

// Dimensions bundles the current row counts of every dimension a fact
// table's foreign keys are drawn against, across all three sales
// channels (store, catalog, web). The *IDCount fields are the
// business-key universe a join-key draw or item permutation addresses;
// the *RowCount fields are the raw (possibly SCD-expanded) row counts
// non-history dimensions draw their single surrogate key from directly.
type Dimensions struct {
	ItemRowCount       int64
	ItemIDCount        int64
	StoreRowCount      int64
	StoreIDCount       int64
	CustomerRowCount   int64
	PromotionCount     int64
	CallCenterRowCount int64
	CallCenterIDCount  int64
	CatalogPageCount   int64
	WebSiteRowCount    int64
	WebSiteIDCount     int64
	WebPageRowCount    int64
	WebPageIDCount     int64
	ShipModeCount      int64
	WarehouseRowCount  int64
}

// GenerateStoreSales builds every line item of the rowNum'th store_sales
// order (and, for about returnRatePercent of them, a paired
// store_returns row), drawing the order's own date via a generic join
// key over date_dim.
func GenerateStoreSales(rowNum int64, dims Dimensions, itemPerm *permute.Permutation) genrow.Result {
	s := rng.NewStream(int(schema.StoreSales.Ordinal()), storeSalesSeedsPerRow)
	s.SkipRows(rowNum - 1)

	soldDate := s.UniformInt(caldate.DataRangeMin, caldate.DataRangeMax)
	storeSK := joinkey.Pick(s, dims.StoreIDCount, soldDate)
	customerSK := joinkey.PickStatic(s, dims.CustomerRowCount)

	// A store order's gift roll has no column to land in under this
	// engine's simplified store_sales schema, but it is still drawn so
	// the per-order seed sequence matches the shape catalog and web
	// share with it.
	_ = s.UniformInt(1, 100) <= storeGiftRatePercent

	itemCount := int(dims.ItemIDCount)
	remaining := s.UniformInt(storeLineItemsMin, storeLineItemsMax)
	itemIndex := s.UniformIndex(itemCount)

	var res genrow.Result
	for lineIndex := 0; remaining > 0; remaining-- {
		itemIndex = (itemIndex + 1) % itemCount
		itemBusinessKey := itemPerm.Entry(int64(itemIndex))
		itemSK := scd.MatchSurrogateKey(itemBusinessKey, soldDate)

		promotionSK := joinkey.PickStatic(s, dims.PromotionCount)
		p := pricing.GenerateForSales(s, pricing.StoreSalesLimits)

		cols := []string{
			fmt.Sprintf("%d", soldDate),
			"", // ss_sold_time_sk: time-of-day dimension omitted by this engine's schema
			genrow.Surrogate(itemSK),
			genrow.Surrogate(customerSK),
			"", // ss_cdemo_sk
			"", // ss_hdemo_sk
			"", // ss_addr_sk
			genrow.Surrogate(storeSK),
			genrow.Surrogate(promotionSK),
			fmt.Sprintf("%d", rowNum),
			fmt.Sprintf("%d", p.Quantity),
			p.WholesaleCost.String(),
			p.ListPrice.String(),
			p.SalesPrice.String(),
			p.ExtDiscountAmount.String(),
			p.ExtSalesPrice.String(),
			p.ExtWholesaleCost.String(),
			p.ExtListPrice.String(),
			p.ExtTax.String(),
			p.CouponAmount.String(),
			p.ExtShipCost.String(),
			p.NetPaid.String(),
			p.NetPaidIncludingTax.String(),
			p.NetProfit.String(),
			p.CouponAmount.String(),
		}
		res.Rows = append(res.Rows, StoreSalesRow{cols: cols})

		if s.UniformInt(1, 100) <= returnRatePercent {
			returnDate := soldDate + s.UniformInt(1, 60)
			if returnDate > caldate.DataRangeMax {
				returnDate = caldate.DataRangeMax
			}
			skipKey := rowNum*returnsLineItemSlots + int64(lineIndex)
			res.Rows = append(res.Rows, generateStoreReturns(skipKey, rowNum, itemSK, returnDate, p))
		}
		lineIndex++
	}

	res.EndOfParent = true
	s.EndRow()
	return res
}

func generateStoreReturns(skipKey, ticketNumber, itemSK int64, returnDate int, sale pricing.Pricing) genrow.Row {
	s := rng.NewStream(int(schema.StoreReturns.Ordinal()), storeReturnsSeedsPerRow)
	s.SkipRows(skipKey)

	returnedQuantity := s.UniformInt(1, int(sale.Quantity))
	rp := pricing.GenerateForReturns(s, int32(returnedQuantity), sale)

	cols := []string{
		fmt.Sprintf("%d", returnDate),
		"", // sr_return_time_sk
		genrow.Surrogate(itemSK),
		"", // sr_customer_sk
		"", // sr_cdemo_sk
		"", // sr_hdemo_sk
		"", // sr_addr_sk
		"", // sr_store_sk
		"", // sr_reason_sk
		fmt.Sprintf("%d", ticketNumber),
		fmt.Sprintf("%d", returnedQuantity),
		rp.ExtSalesPrice.String(),
		rp.ExtWholesaleCost.String(),
		rp.RefundedCash.String(),
		rp.ReversedCharge.String(),
		rp.StoreCredit.String(),
		rp.Fee.String(),
		rp.ExtShipCost.String(),
		rp.NetLoss.String(),
	}
	s.EndRow()
	return StoreReturnsRow{cols: cols}
}
