package gen

import (
	"fmt"
	"strings"

	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/nullbits"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/schema"
)

const customerSeedsPerRow = 14

// CustomerRow is one customer row. Customer does not keep history:
// it carries only its current demographic and address assignment.
type CustomerRow struct {
	cols []string
}

func (r CustomerRow) Table() string     { return "customer" }
func (r CustomerRow) Columns() []string { return r.cols }

// CustomerDimensions bundles the row counts customer's foreign keys are
// drawn against.
type CustomerDimensions struct {
	AddressRowCount               int64
	DemographicsRowCount          int64
	HouseholdDemographicsRowCount int64
}

// GenerateCustomer builds the rowNum'th customer row.
func GenerateCustomer(rowNum int64, dims CustomerDimensions, registry *dist.Registry) (genrow.Result, error) {
	s := rng.NewStream(int(schema.Customer.Ordinal()), customerSeedsPerRow)
	s.SkipRows(rowNum - 1)

	salutations, err := registry.Load("salutations.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	firstNames, err := registry.Load("first_names.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	lastNames, err := registry.Load("last_names.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	countries, err := registry.Load("countries.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	domains, err := registry.Load("top_domains.dst")
	if err != nil {
		return genrow.Result{}, err
	}

	mask := nullbits.Roll(s, schema.Customer)

	var preferred string
	if s.UniformInt(1, 100) <= 50 {
		preferred = "Y"
	} else {
		preferred = "N"
	}

	addrSK := s.UniformKey(dims.AddressRowCount)
	cdemoSK := s.UniformKey(dims.DemographicsRowCount)
	hdemoSK := s.UniformKey(dims.HouseholdDemographicsRowCount)

	firstRow := firstNames.PickWeighted(s, "frequency")
	firstName := firstNames.Field(firstRow, "name")
	gender := firstNames.Field(firstRow, "gender")
	lastName := lastNames.Field(lastNames.PickWeighted(s, "frequency"), "name")
	salutation := salutations.Field(salutations.PickUniform(s), "salutation")
	birthCountry := countries.Field(countries.PickWeighted(s, "frequency"), "name")

	birthDay := s.UniformInt(1, 28)
	birthMonth := s.UniformInt(1, 12)
	birthYear := s.UniformInt(1924, 1992)

	login := fmt.Sprintf("%s.%s%d", strings.ToLower(firstName), strings.ToLower(lastName), s.UniformInt(1, 99))
	domain := domains.Field(domains.PickWeighted(s, "frequency"), "domain")
	email := fmt.Sprintf("%s@%s.%s", login, strings.ToLower(lastName), domain)

	cols := []string{
		fmt.Sprintf("%d", rowNum),
		fmt.Sprintf("AAAAAAAA%08d", rowNum),
		fmt.Sprintf("%d", cdemoSK),
		fmt.Sprintf("%d", hdemoSK),
		fmt.Sprintf("%d", addrSK),
		"", // c_first_shipto_date_sk: date_dim-keyed, left unbound by this engine's simplified schema
		"", // c_first_sales_date_sk
		salutation,
		firstName,
		lastName,
		preferred,
		fmt.Sprintf("%d", birthDay),
		fmt.Sprintf("%d", birthMonth),
		fmt.Sprintf("%d", birthYear),
		birthCountry,
		login,
		email,
		gender,
	}
	s.EndRow()
	return genrow.Result{Rows: []genrow.Row{CustomerRow{cols: nullbits.ApplyNulls(cols, mask)}}, EndOfParent: true}, nil
}
