package gen

import (
	"fmt"
	"strconv"

	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/genrow"
	"tpcdsgen/internal/nullbits"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/scd"
	"tpcdsgen/internal/schema"
)

const itemSeedsPerRow = 20

// ItemRow is one item row: a slowly-changing dimension with up to three
// validity-window versions per business key.
type ItemRow struct {
	cols []string
}

func (r ItemRow) Table() string     { return "item" }
func (r ItemRow) Columns() []string { return r.cols }

// GenerateItem builds every version row for the businessKey'th item,
// reproducing the reference generator's quirk that size, color, units,
// container, and product_name always carry the new value regardless of
// the field-change-flags bit assigned to them (see internal/scd.Field).
func GenerateItem(businessKey int64, registry *dist.Registry) (genrow.Result, error) {
	s := rng.NewStream(int(schema.Item.Ordinal()), itemSeedsPerRow)
	s.SkipRows(businessKey - 1)

	categories, err := registry.Load("categories.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	colors, err := registry.Load("colors.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	units, err := registry.Load("units.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	sizes, err := registry.Load("sizes.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	syllables, err := registry.Load("brand_syllables.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	priceRange, err := registry.Load("item_current_price.dst")
	if err != nil {
		return genrow.Result{}, err
	}
	manufactRange, err := registry.Load("item_manufact_id.dst")
	if err != nil {
		return genrow.Result{}, err
	}

	category := categories.Field(categories.PickUniform(s), "name")
	manufactMin, _ := strconv.Atoi(manufactRange.Field(0, "min"))
	manufactMax, _ := strconv.Atoi(manufactRange.Field(0, "max"))
	manufactID := s.UniformInt(manufactMin, manufactMax)
	brand := fmt.Sprintf("%s%s #%d",
		syllables.Field(syllables.PickUniform(s), "syllable"),
		syllables.Field(syllables.PickUniform(s), "syllable"),
		manufactID)

	priceMin, _ := strconv.Atoi(priceRange.Field(0, "min"))
	priceMax, _ := strconv.Atoi(priceRange.Field(0, "max"))

	var res genrow.Result
	var prevSize, prevColor, prevUnits, prevContainer, prevName string

	for version := 0; version < scd.Versions; version++ {
		start, end, isCurrent := scd.Window(version)
		mask := nullbits.Roll(s, schema.Item)
		flags := scd.ChangeFlags(s.Next())

		priceCents := s.UniformInt(priceMin, priceMax)

		size := scd.Field(&flags, true, sizes.Field(sizes.PickUniform(s), "name"), prevSize)
		color := scd.Field(&flags, true, colors.Field(colors.PickUniform(s), "name"), prevColor)
		unit := scd.Field(&flags, true, units.Field(units.PickUniform(s), "name"), prevUnits)
		container := scd.Field(&flags, true, "Unknown", prevContainer)
		name := scd.Field(&flags, true, s.Sentence(3, 6), prevName)
		prevSize, prevColor, prevUnits, prevContainer, prevName = size, color, unit, container, name

		sk := scd.SurrogateKey(businessKey, version)
		cols := []string{
			fmt.Sprintf("%d", sk),
			fmt.Sprintf("AAAAAAAA%08d", businessKey),
			fmt.Sprintf("%d", start),
			endOrNull(end, isCurrent),
			name,
			fmt.Sprintf("%d", priceCents/100) + "." + fmt.Sprintf("%02d", priceCents%100),
			fmt.Sprintf("%d", businessKey),
			brand,
			category,
			fmt.Sprintf("class#%d", s.UniformInt(1, 15)),
			category,
			fmt.Sprintf("%d", manufactID),
			size,
			container,
			fmt.Sprintf("%d", 2000+version),
			fmt.Sprintf("%d", 1+s.UniformInt(0, 3)),
			color,
			unit,
			fmt.Sprintf("manufacturer #%d", manufactID),
			s.Sentence(10, 20),
		}
		res.Rows = append(res.Rows, ItemRow{cols: nullbits.ApplyNulls(cols, mask)})
	}
	s.EndRow()
	return res, nil
}

func endOrNull(end int, isCurrent bool) string {
	if isCurrent {
		return ""
	}
	return fmt.Sprintf("%d", end)
}
