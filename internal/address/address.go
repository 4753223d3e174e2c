// Package address builds a single consistent postal address from the
// distribution registry: a street number and name, a city, and a
// county/state/zip/gmt_offset tuple that all come from the same
// fips.dst row, so a generated address never pairs a zip code with the
// wrong state.
package address

import (
	"strconv"

	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/rng"
)

// Address is the reference generator's shared address shape, embedded
// by every dimension table that carries a customer or business
// location (customer_address, store, call_center, warehouse,
// web_site, ...).
type Address struct {
	StreetNumber string
	StreetName   string
	StreetType   string
	SuiteNumber  string
	City         string
	County       string
	State        string
	Zip          string
	Country      string
	GmtOffset    int
}

// Generate draws a full address from s, using registry to resolve
// street names, street types, cities, countries, and the county/state/
// zip/gmt_offset tuple.
func Generate(s *rng.Stream, registry *dist.Registry) (Address, error) {
	streetNames, err := registry.Load("street_names.dst")
	if err != nil {
		return Address{}, err
	}
	streetTypes, err := registry.Load("street_types.dst")
	if err != nil {
		return Address{}, err
	}
	cities, err := registry.Load("cities.dst")
	if err != nil {
		return Address{}, err
	}
	countries, err := registry.Load("countries.dst")
	if err != nil {
		return Address{}, err
	}
	fips, err := registry.Load("fips.dst")
	if err != nil {
		return Address{}, err
	}

	fipsRow := fips.PickWeighted(s, "frequency")
	county := fips.Field(fipsRow, "county")
	state := fips.Field(fipsRow, "state")
	zip := fips.Field(fipsRow, "zip")
	gmtOffset, err := strconv.Atoi(fips.Field(fipsRow, "gmt_offset"))
	if err != nil {
		gmtOffset = -6
	}

	streetNumber := s.UniformInt(1, 9999)
	streetName := streetNames.Field(streetNames.PickUniform(s), "name")
	streetType := streetTypes.Field(streetTypes.PickUniform(s), "type")

	var suite string
	if s.UniformInt(1, 100) <= 20 { // ~1 in 5 addresses carries a suite number
		suite = "Suite " + strconv.Itoa(s.UniformInt(100, 999))
	}

	city := cities.Field(cities.PickWeighted(s, "frequency"), "name")
	country := countries.Field(countries.PickWeighted(s, "frequency"), "name")

	return Address{
		StreetNumber: strconv.Itoa(streetNumber),
		StreetName:   streetName,
		StreetType:   streetType,
		SuiteNumber:  suite,
		City:         city,
		County:       county,
		State:        state,
		Zip:          zip,
		Country:      country,
		GmtOffset:    gmtOffset,
	}, nil
}
