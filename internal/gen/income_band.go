package gen

import (
	"fmt"

	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/schema"
)

const incomeBandSeedsPerRow = 2

// IncomeBandRow is one income_band row: a fixed lower/upper income
// bracket, looked up by household_demographics.
type IncomeBandRow struct {
	cols []string
}

func (r IncomeBandRow) Table() string     { return "income_band" }
func (r IncomeBandRow) Columns() []string { return r.cols }

// GenerateIncomeBand builds the rowNum'th income_band row. Unlike most
// dimensions, income_band's bands are read directly off income_band.dst
// in file order rather than drawn at random: the reference generator
// enumerates bands rather than samples them, since household_demographics
// references bands by their ordinal position.
func GenerateIncomeBand(rowNum int64, registry *dist.Registry) (genrow.Result, error) {
	s := rng.NewStream(int(schema.IncomeBand.Ordinal()), incomeBandSeedsPerRow)
	s.SkipRows(rowNum - 1)

	bands, err := registry.Load("income_band.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	idx := int(rowNum-1) % bands.Len()

	cols := []string{
		fmt.Sprintf("%d", rowNum),
		bands.Field(idx, "lower"),
		bands.Field(idx, "upper"),
	}
	s.EndRow()
	return genrow.Result{Rows: []genrow.Row{IncomeBandRow{cols: cols}}, EndOfParent: true}, nil
}
