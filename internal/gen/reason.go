package gen

import (
	"fmt"

	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/nullbits"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/schema"
)

const reasonSeedsPerRow = 2

// ReasonRow is one reason row (why a return happened).
type ReasonRow struct {
	cols []string
}

func (r ReasonRow) Table() string     { return "reason" }
func (r ReasonRow) Columns() []string { return r.cols }

// GenerateReason builds the rowNum'th reason row.
func GenerateReason(rowNum int64, registry *dist.Registry) (genrow.Result, error) {
	s := rng.NewStream(int(schema.Reason.Ordinal()), reasonSeedsPerRow)
	s.SkipRows(rowNum - 1)

	mask := nullbits.Roll(s, schema.Reason)

	reasons, err := registry.Load("return_reasons.dst")
	if err != nil {
		return genrow.Result{}, err
	}

	description := reasons.Field(reasons.PickUniform(s), "description")
	cols := []string{
		fmt.Sprintf("%d", rowNum),
		fmt.Sprintf("AAAAAAAA%08d", rowNum),
		description,
	}
	s.EndRow()
	return genrow.Result{Rows: []genrow.Row{ReasonRow{cols: nullbits.ApplyNulls(cols, mask)}}, EndOfParent: true}, nil
}
