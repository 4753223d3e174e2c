package gen

import (
	"fmt"

	"tpcdsgen/internal/address"
	"tpcdsgen/internal/caldate"
	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/nullbits"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/scd"
	"tpcdsgen/internal/schema"
)

// storeClosedRatePercent is the share of stores the reference generator
// assigns a closed date; the rest carry the -1 sentinel rather than a
// blank field, since an unclosed store is a meaningful business value,
// not a null.
const storeClosedRatePercent = 30

const storeSeedsPerRow = 16

// StoreRow is one store row: a small slowly-changing dimension (every
// scale factor gets roughly the same handful of physical stores).
type StoreRow struct {
	cols []string
}

func (r StoreRow) Table() string     { return "store" }
func (r StoreRow) Columns() []string { return r.cols }

// GenerateStore builds every version row for the businessKey'th store.
func GenerateStore(businessKey int64, registry *dist.Registry) (genrow.Result, error) {
	s := rng.NewStream(int(schema.Store.Ordinal()), storeSeedsPerRow)
	s.SkipRows(businessKey - 1)

	classes, err := registry.Load("call_center_classes.dst")
	if err != nil {
		return genrow.Result{}, err
	}

	var res genrow.Result
	var prevName, prevClass string

	for version := 0; version < scd.Versions; version++ {
		start, end, isCurrent := scd.Window(version)
		mask := nullbits.Roll(s, schema.Store)
		flags := scd.ChangeFlags(s.Next())

		addr, err := address.Generate(s, registry)
		if err != nil {
			return genrow.Result{}, err
		}

		name := scd.Field(&flags, false, fmt.Sprintf("store_%d", businessKey), prevName)
		class := scd.Field(&flags, false, classes.Field(classes.PickUniform(s), "class"), prevClass)
		prevName, prevClass = name, class

		closedDate := -1
		if s.UniformInt(1, 100) <= storeClosedRatePercent {
			closedDate = s.UniformInt(caldate.DataRangeMin, caldate.DataRangeMax)
		}

		employees := s.UniformInt(5, 300)
		floorSpace := s.UniformInt(5000, 120000)
		marketID := s.UniformInt(1, 10)
		taxPercentage := s.UniformInt(0, 11)

		sk := scd.SurrogateKey(businessKey, version)
		cols := []string{
			fmt.Sprintf("%d", sk),
			fmt.Sprintf("AAAAAAAA%08d", businessKey),
			fmt.Sprintf("%d", start),
			endOrNull(end, isCurrent),
			fmt.Sprintf("%d", closedDate),
			fmt.Sprintf("%d", businessKey),
			name,
			fmt.Sprintf("%d", employees),
			fmt.Sprintf("%d", floorSpace),
			"AM",
			class,
			fmt.Sprintf("%d", marketID),
			fmt.Sprintf("Store %d Manager", businessKey),
			fmt.Sprintf("%d", marketID),
			fmt.Sprintf("%d", s.UniformInt(1, 35)),
			fmt.Sprintf("%d.%02d", taxPercentage, s.UniformInt(0, 99)),
			addr.StreetNumber,
			addr.StreetName,
			addr.StreetType,
			addr.SuiteNumber,
			addr.City,
			addr.County,
			addr.State,
			addr.Zip,
			addr.Country,
			fmt.Sprintf("%d", addr.GmtOffset),
		}
		res.Rows = append(res.Rows, StoreRow{cols: nullbits.ApplyNulls(cols, mask)})
	}
	s.EndRow()
	return res, nil
}
