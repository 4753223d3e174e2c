package gen

import (
	"fmt"

	"tpcdsgen/internal/caldate"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/nullbits"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/schema"
)

const promotionSeedsPerRow = 16

// PromotionRow is one promotion row: a marketing campaign tied to a
// date window, a discount cost, and the mix of channels it runs on.
type PromotionRow struct {
	cols []string
}

func (r PromotionRow) Table() string     { return "promotion" }
func (r PromotionRow) Columns() []string { return r.cols }

// GeneratePromotion builds the rowNum'th promotion row. itemRowCount
// binds p_item_sk to a valid item at the caller's scale factor.
func GeneratePromotion(rowNum int64, itemRowCount int64) genrow.Result {
	s := rng.NewStream(int(schema.Promotion.Ordinal()), promotionSeedsPerRow)
	s.SkipRows(rowNum - 1)

	mask := nullbits.Roll(s, schema.Promotion)

	itemSK := s.UniformKey(itemRowCount)
	startDate := s.UniformInt(caldate.DataRangeMin, caldate.DataRangeMax-30)
	durationDays := s.UniformInt(7, 60)
	endDate := startDate + durationDays
	if endDate > caldate.DataRangeMax {
		endDate = caldate.DataRangeMax
	}

	costCents := s.UniformInt(1000, 100000)
	responseTarget := s.UniformInt(1, 3)
	name := s.Word(2, 4)

	channel := func() string {
		if s.UniformInt(1, 100) <= 50 {
			return "Y"
		}
		return "N"
	}

	cols := []string{
		fmt.Sprintf("%d", rowNum),
		fmt.Sprintf("AAAAAAAA%08d", rowNum),
		fmt.Sprintf("%d", startDate),
		fmt.Sprintf("%d", endDate),
		fmt.Sprintf("%d", itemSK),
		fmt.Sprintf("%d.%02d", costCents/100, costCents%100),
		fmt.Sprintf("%d", responseTarget),
		name,
		channel(), // dmail
		channel(), // email
		channel(), // catalog
		channel(), // tv
		channel(), // radio
		channel(), // press
		channel(), // event
		channel(), // demo
	}
	s.EndRow()
	return genrow.Result{Rows: []genrow.Row{PromotionRow{cols: nullbits.ApplyNulls(cols, mask)}}, EndOfParent: true}
}
