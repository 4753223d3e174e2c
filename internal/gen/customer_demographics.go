package gen

import (
	"fmt"

	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/schema"
)

const customerDemographicsSeedsPerRow = 8

// CustomerDemographicsRow is one customer_demographics row.
type CustomerDemographicsRow struct {
	cols []string
}

func (r CustomerDemographicsRow) Table() string     { return "customer_demographics" }
func (r CustomerDemographicsRow) Columns() []string { return r.cols }

// GenerateCustomerDemographics builds the rowNum'th customer_demographics
// row.
func GenerateCustomerDemographics(rowNum int64, registry *dist.Registry) (genrow.Result, error) {
	s := rng.NewStream(int(schema.CustomerDemographics.Ordinal()), customerDemographicsSeedsPerRow)
	s.SkipRows(rowNum - 1)

	genders, err := registry.Load("genders.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	maritals, err := registry.Load("marital_statuses.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	educations, err := registry.Load("education.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	ratings, err := registry.Load("credit_ratings.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	purchaseBands, err := registry.Load("purchase_band.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	depCounts, err := registry.Load("dep_count.dst")
	if err != nil {
		return genrow.Result{}, err
	}

	gender := genders.Field(genders.PickUniform(s), "gender")
	marital := maritals.Field(maritals.PickWeighted(s, "frequency"), "code")
	education := educations.Field(educations.PickWeighted(s, "frequency"), "level")
	rating := ratings.Field(ratings.PickWeighted(s, "frequency"), "rating")
	purchaseEstimate := purchaseBands.Field(purchaseBands.PickUniform(s), "band")
	depCount := depCounts.Field(depCounts.PickWeighted(s, "frequency"), "count")
	collegeDepCount := depCounts.Field(depCounts.PickWeighted(s, "frequency"), "count")
	employedDepCount := depCounts.Field(depCounts.PickWeighted(s, "frequency"), "count")

	cols := []string{
		fmt.Sprintf("%d", rowNum),
		gender,
		marital,
		education,
		purchaseEstimate,
		rating,
		depCount,
		employedDepCount,
		collegeDepCount,
	}
	s.EndRow()
	return genrow.Result{Rows: []genrow.Row{CustomerDemographicsRow{cols: cols}}, EndOfParent: true}, nil
}
