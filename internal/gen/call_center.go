package gen

import (
	"fmt"

	"tpcdsgen/internal/address"
	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/nullbits"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/scd"
	"tpcdsgen/internal/schema"
)

const callCenterSeedsPerRow = 18

// CallCenterRow is one call_center row: a small slowly-changing
// dimension, every scale factor keeping roughly the same handful of
// centers.
type CallCenterRow struct {
	cols []string
}

func (r CallCenterRow) Table() string     { return "call_center" }
func (r CallCenterRow) Columns() []string { return r.cols }

// GenerateCallCenter builds every version row for the businessKey'th
// call center.
func GenerateCallCenter(businessKey int64, registry *dist.Registry) (genrow.Result, error) {
	s := rng.NewStream(int(schema.CallCenter.Ordinal()), callCenterSeedsPerRow)
	s.SkipRows(businessKey - 1)

	names, err := registry.Load("call_centers.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	hours, err := registry.Load("call_center_hours.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	classes, err := registry.Load("call_center_classes.dst")
	if err != nil {
		return genrow.Result{}, err
	}

	var res genrow.Result
	var prevName, prevClass, prevManager string

	for version := 0; version < scd.Versions; version++ {
		start, end, isCurrent := scd.Window(version)
		mask := nullbits.Roll(s, schema.CallCenter)
		flags := scd.ChangeFlags(s.Next())

		addr, err := address.Generate(s, registry)
		if err != nil {
			return genrow.Result{}, err
		}

		hoursRow := hours.PickUniform(s)
		name := scd.Field(&flags, false, names.Field(names.PickUniform(s), "name"), prevName)
		class := scd.Field(&flags, false, classes.Field(classes.PickUniform(s), "class"), prevClass)
		manager := scd.Field(&flags, false, fmt.Sprintf("Manager %d", s.UniformInt(1, 1000)), prevManager)
		prevName, prevClass, prevManager = name, class, manager

		employees := s.UniformInt(2, 50)
		sqFt := s.UniformInt(100, 5000)
		taxPercentage := s.UniformInt(0, 11)

		sk := scd.SurrogateKey(businessKey, version)
		cols := []string{
			fmt.Sprintf("%d", sk),
			fmt.Sprintf("AAAAAAAA%08d", businessKey),
			fmt.Sprintf("%d", start),
			endOrNull(end, isCurrent),
			fmt.Sprintf("%d", businessKey),
			name,
			class,
			fmt.Sprintf("%d", employees),
			fmt.Sprintf("%d", sqFt),
			hours.Field(hoursRow, "open"),
			hours.Field(hoursRow, "close"),
			manager,
			fmt.Sprintf("%d.%02d", taxPercentage, s.UniformInt(0, 99)),
			addr.StreetNumber,
			addr.StreetName,
			addr.StreetType,
			addr.City,
			addr.County,
			addr.State,
			addr.Zip,
			addr.Country,
			fmt.Sprintf("%d", addr.GmtOffset),
		}
		res.Rows = append(res.Rows, CallCenterRow{cols: nullbits.ApplyNulls(cols, mask)})
	}
	s.EndRow()
	return res, nil
}
