package gen

import (
	"fmt"

	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/nullbits"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/schema"
)

const shipModeSeedsPerRow = 6

// ShipModeRow is one ship_mode row.
type ShipModeRow struct {
	cols []string
}

func (r ShipModeRow) Table() string     { return "ship_mode" }
func (r ShipModeRow) Columns() []string { return r.cols }

// GenerateShipMode builds the rowNum'th ship_mode row.
func GenerateShipMode(rowNum int64, registry *dist.Registry) (genrow.Result, error) {
	s := rng.NewStream(int(schema.ShipMode.Ordinal()), shipModeSeedsPerRow)
	s.SkipRows(rowNum - 1)

	mask := nullbits.Roll(s, schema.ShipMode)

	codes, err := registry.Load("ship_mode_code.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	types, err := registry.Load("ship_mode_type.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	carriers, err := registry.Load("ship_mode_carrier.dst")
	if err != nil {
		return genrow.Result{}, err
	}

	code := codes.Field(codes.PickUniform(s), "code")
	typ := types.Field(types.PickUniform(s), "type")
	carrier := carriers.Field(carriers.PickUniform(s), "carrier")
	contract := s.Digits(20)

	cols := []string{
		fmt.Sprintf("%d", rowNum),
		fmt.Sprintf("AAAAAAAA%08d", rowNum),
		code,
		typ,
		carrier,
		contract,
	}
	s.EndRow()
	return genrow.Result{Rows: []genrow.Row{ShipModeRow{cols: nullbits.ApplyNulls(cols, mask)}}, EndOfParent: true}, nil
}
