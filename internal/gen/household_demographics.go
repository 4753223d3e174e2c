package gen

import (
	"fmt"

	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/schema"
)

const householdDemographicsSeedsPerRow = 5

// HouseholdDemographicsRow is one household_demographics row.
type HouseholdDemographicsRow struct {
	cols []string
}

func (r HouseholdDemographicsRow) Table() string     { return "household_demographics" }
func (r HouseholdDemographicsRow) Columns() []string { return r.cols }

// GenerateHouseholdDemographics builds the rowNum'th household_demographics
// row. incomeBandRowCount binds hd_income_band_sk to a valid income_band
// row at the caller's scale factor.
func GenerateHouseholdDemographics(rowNum int64, incomeBandRowCount int64, registry *dist.Registry) (genrow.Result, error) {
	s := rng.NewStream(int(schema.HouseholdDemographics.Ordinal()), householdDemographicsSeedsPerRow)
	s.SkipRows(rowNum - 1)

	potential, err := registry.Load("buy_potential.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	depCounts, err := registry.Load("dep_count.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	vehicleCounts, err := registry.Load("vehicle_count.dst")
	if err != nil {
		return genrow.Result{}, err
	}

	incomeBandSK := s.UniformKey(incomeBandRowCount)
	buyPotential := potential.Field(potential.PickWeighted(s, "frequency"), "band")
	depCount := depCounts.Field(depCounts.PickWeighted(s, "frequency"), "count")
	vehicleCount := vehicleCounts.Field(vehicleCounts.PickWeighted(s, "frequency"), "count")

	cols := []string{
		fmt.Sprintf("%d", rowNum),
		fmt.Sprintf("%d", incomeBandSK),
		buyPotential,
		depCount,
		vehicleCount,
	}
	s.EndRow()
	return genrow.Result{Rows: []genrow.Row{HouseholdDemographicsRow{cols: cols}}, EndOfParent: true}, nil
}
