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
	catalogSalesSeedsPerRow   = 26
	catalogReturnsSeedsPerRow = 20

	// catalogLineItemsMin/Max bound how many line items one
	// catalog_sales order draws.
	catalogLineItemsMin = 4
	catalogLineItemsMax = 14

	// catalogGiftRatePercent gates whether a catalog order ships to a
	// different customer than the one billed.
	catalogGiftRatePercent = 10
)

// CatalogSalesRow is one catalog_sales line item.
type CatalogSalesRow struct {
	cols []string
}

func (r CatalogSalesRow) Table() string     { return "catalog_sales" }
func (r CatalogSalesRow) Columns() []string { return r.cols }

// CatalogReturnsRow is one catalog_returns row.
type CatalogReturnsRow struct {
	cols []string
}

func (r CatalogReturnsRow) Table() string     { return "catalog_returns" }
func (r CatalogReturnsRow) Columns() []string { return r.cols }

// GenerateCatalogSales builds every line item of the rowNum'th
// catalog_sales order (and, for about returnRatePercent of them, a
// paired catalog_returns row) for an order dated soldDate. Unlike store
// and web, the caller assigns soldDate from an external julian_date /
// next_date_index cursor rather than a per-order RNG draw, so the
// table's row distribution follows the calendar weighting exactly.
func GenerateCatalogSales(rowNum int64, soldDate int, dims Dimensions, itemPerm *permute.Permutation) genrow.Result {
	s := rng.NewStream(int(schema.CatalogSales.Ordinal()), catalogSalesSeedsPerRow)
	s.SkipRows(rowNum - 1)

	callCenterSK := joinkey.Pick(s, dims.CallCenterIDCount, soldDate)
	catalogPageSK := joinkey.PickStatic(s, dims.CatalogPageCount)
	shipModeSK := joinkey.PickStatic(s, dims.ShipModeCount)
	warehouseSK := joinkey.PickStatic(s, dims.WarehouseRowCount)
	billCustomerSK := joinkey.PickStatic(s, dims.CustomerRowCount)
	promotionSK := joinkey.PickStatic(s, dims.PromotionCount)

	shipCustomerSK := billCustomerSK
	if s.UniformInt(1, 100) <= catalogGiftRatePercent {
		shipCustomerSK = joinkey.PickStatic(s, dims.CustomerRowCount)
	}

	shipLag := s.UniformInt(1, 30)
	shipDate := soldDate + shipLag
	if shipDate > caldate.DataRangeMax {
		shipDate = caldate.DataRangeMax
	}

	itemCount := int(dims.ItemIDCount)
	remaining := s.UniformInt(catalogLineItemsMin, catalogLineItemsMax)
	itemIndex := s.UniformIndex(itemCount)

	var res genrow.Result
	for lineIndex := 0; remaining > 0; remaining-- {
		itemIndex = (itemIndex + 1) % itemCount
		itemBusinessKey := itemPerm.Entry(int64(itemIndex))
		itemSK := scd.MatchSurrogateKey(itemBusinessKey, soldDate)

		p := pricing.GenerateForSales(s, pricing.CatalogSalesLimits)

		cols := []string{
			fmt.Sprintf("%d", soldDate),
			fmt.Sprintf("%d", shipDate),
			genrow.Surrogate(itemSK),
			genrow.Surrogate(billCustomerSK),
			"", // cs_bill_cdemo_sk
			"", // cs_bill_hdemo_sk
			"", // cs_bill_addr_sk
			genrow.Surrogate(shipCustomerSK),
			genrow.Surrogate(callCenterSK),
			genrow.Surrogate(catalogPageSK),
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
		res.Rows = append(res.Rows, CatalogSalesRow{cols: cols})

		if s.UniformInt(1, 100) <= returnRatePercent {
			returnDate := shipDate + s.UniformInt(1, 60)
			if returnDate > caldate.DataRangeMax {
				returnDate = caldate.DataRangeMax
			}
			skipKey := rowNum*returnsLineItemSlots + int64(lineIndex)
			res.Rows = append(res.Rows, generateCatalogReturns(skipKey, rowNum, itemSK, returnDate, p))
		}
		lineIndex++
	}

	res.EndOfParent = true
	s.EndRow()
	return res
}

func generateCatalogReturns(skipKey, orderNumber, itemSK int64, returnDate int, sale pricing.Pricing) genrow.Row {
	s := rng.NewStream(int(schema.CatalogReturns.Ordinal()), catalogReturnsSeedsPerRow)
	s.SkipRows(skipKey)

	returnedQuantity := s.UniformInt(1, int(sale.Quantity))
	rp := pricing.GenerateForReturns(s, int32(returnedQuantity), sale)

	cols := []string{
		fmt.Sprintf("%d", returnDate),
		"", // cr_returned_time_sk
		genrow.Surrogate(itemSK),
		"", // cr_refunded_customer_sk
		"", // cr_refunded_cdemo_sk
		"", // cr_refunded_hdemo_sk
		"", // cr_refunded_addr_sk
		"", // cr_returning_customer_sk
		"", // cr_call_center_sk
		"", // cr_catalog_page_sk
		"", // cr_ship_mode_sk
		"", // cr_warehouse_sk
		"", // cr_reason_sk
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
	return CatalogReturnsRow{cols: cols}
}
