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
	webSalesSeedsPerRow   = 24
	webReturnsSeedsPerRow = 18

	// webLineItemsMin/Max bound how many line items one web_sales order
	// draws.
	webLineItemsMin = 8
	webLineItemsMax = 16

	// webDifferentShipRatePercent is the reference generator's high
	// rate of web orders shipping to someone other than the billed
	// customer.
	webDifferentShipRatePercent = 92
)

// WebSalesRow is one web_sales line item.
type WebSalesRow struct {
	cols []string
}

func (r WebSalesRow) Table() string     { return "web_sales" }
func (r WebSalesRow) Columns() []string { return r.cols }

// WebReturnsRow is one web_returns row.
type WebReturnsRow struct {
	cols []string
}

func (r WebReturnsRow) Table() string     { return "web_returns" }
func (r WebReturnsRow) Columns() []string { return r.cols }

// GenerateWebSales builds every line item of the rowNum'th web_sales
// order (and, for about returnRatePercent of them, a paired web_returns
// row), drawing the order's own date via a generic join key over
// date_dim.
func GenerateWebSales(rowNum int64, dims Dimensions, itemPerm *permute.Permutation) genrow.Result {
	s := rng.NewStream(int(schema.WebSales.Ordinal()), webSalesSeedsPerRow)
	s.SkipRows(rowNum - 1)

	soldDate := s.UniformInt(caldate.DataRangeMin, caldate.DataRangeMax)
	webSiteSK := joinkey.Pick(s, dims.WebSiteIDCount, soldDate)
	webPageSK := joinkey.Pick(s, dims.WebPageIDCount, soldDate)
	shipModeSK := joinkey.PickStatic(s, dims.ShipModeCount)
	warehouseSK := joinkey.PickStatic(s, dims.WarehouseRowCount)
	billCustomerSK := joinkey.PickStatic(s, dims.CustomerRowCount)
	promotionSK := joinkey.PickStatic(s, dims.PromotionCount)

	shipCustomerSK := billCustomerSK
	if s.UniformInt(1, 100) <= webDifferentShipRatePercent {
		shipCustomerSK = joinkey.PickStatic(s, dims.CustomerRowCount)
	}

	shipLag := s.UniformInt(1, 20)
	shipDate := soldDate + shipLag
	if shipDate > caldate.DataRangeMax {
		shipDate = caldate.DataRangeMax
	}

	itemCount := int(dims.ItemIDCount)
	remaining := s.UniformInt(webLineItemsMin, webLineItemsMax)
	itemIndex := s.UniformIndex(itemCount)

	var res genrow.Result
	for lineIndex := 0; remaining > 0; remaining-- {
		itemIndex = (itemIndex + 1) % itemCount
		itemBusinessKey := itemPerm.Entry(int64(itemIndex))
		itemSK := scd.MatchSurrogateKey(itemBusinessKey, soldDate)

		p := pricing.GenerateForSales(s, pricing.WebSalesLimits)

		cols := []string{
			fmt.Sprintf("%d", soldDate),
			fmt.Sprintf("%d", shipDate),
			genrow.Surrogate(itemSK),
			genrow.Surrogate(billCustomerSK),
			"", // ws_bill_cdemo_sk
			"", // ws_bill_hdemo_sk
			"", // ws_bill_addr_sk
			genrow.Surrogate(shipCustomerSK),
			"", // ws_ship_cdemo_sk
			"", // ws_ship_hdemo_sk
			"", // ws_ship_addr_sk
			genrow.Surrogate(webPageSK),
			genrow.Surrogate(webSiteSK),
			genrow.Surrogate(shipModeSK),
			genrow.Surrogate(warehouseSK),
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
			p.NetPaidIncludingShipping.String(),
			p.NetPaidIncludingShippingAndTax.String(),
			p.NetProfit.String(),
		}
		res.Rows = append(res.Rows, WebSalesRow{cols: cols})

		if s.UniformInt(1, 100) <= returnRatePercent {
			returnDate := shipDate + s.UniformInt(1, 60)
			if returnDate > caldate.DataRangeMax {
				returnDate = caldate.DataRangeMax
			}
			skipKey := rowNum*returnsLineItemSlots + int64(lineIndex)
			res.Rows = append(res.Rows, generateWebReturns(skipKey, rowNum, itemSK, returnDate, p))
		}
		lineIndex++
	}

	res.EndOfParent = true
	s.EndRow()
	return res
}

func generateWebReturns(skipKey, orderNumber, itemSK int64, returnDate int, sale pricing.Pricing) genrow.Row {
	s := rng.NewStream(int(schema.WebReturns.Ordinal()), webReturnsSeedsPerRow)
	s.SkipRows(skipKey)

	returnedQuantity := s.UniformInt(1, int(sale.Quantity))
	rp := pricing.GenerateForReturns(s, int32(returnedQuantity), sale)

	cols := []string{
		fmt.Sprintf("%d", returnDate),
		"", // wr_returned_time_sk
		genrow.Surrogate(itemSK),
		"", // wr_refunded_customer_sk
		"", // wr_refunded_cdemo_sk
		"", // wr_refunded_hdemo_sk
		"", // wr_refunded_addr_sk
		"", // wr_returning_customer_sk
		"", // wr_web_page_sk
		"", // wr_reason_sk
		fmt.Sprintf("%d", orderNumber),
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
	return WebReturnsRow{cols: cols}
}
