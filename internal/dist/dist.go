// Package dist loads the embedded distribution assets (the reference
// generator's .dst files: name lists, address components, calendars,
// class taxonomies) and answers weighted and uniform draws against them.
package dist

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/tpcdserr"
)

// Distribution is a parsed .dst asset: a table of named value columns
// plus one or more named weight columns used to bias random selection.
type Distribution struct {
	name        string
	fieldNames  []string
	weightNames []string
	rows        [][]string
	weights     [][]int
	totals      []int
}

// Parse reads the engine's .dst text format:
//
//	# fields: name1,name2,...
//	# weights: w1,w2,...
//	val1:val2:...|w1:w2:...
//	...
//
// Blank lines and lines starting with "#" outside the two header lines
// are ignored as comments.
func Parse(name string, data []byte) (*Distribution, error) {
	d := &Distribution{name: name}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "# fields:") {
			d.fieldNames = splitNonEmpty(strings.TrimPrefix(line, "# fields:"), ",")
			continue
		}
		if strings.HasPrefix(line, "# weights:") {
			d.weightNames = splitNonEmpty(strings.TrimPrefix(line, "# weights:"), ",")
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "|", 2)
		fields := strings.Split(parts[0], ":")
		var weightStrs []string
		if len(parts) == 2 {
			weightStrs = strings.Split(parts[1], ":")
		}
		weights := make([]int, len(weightStrs))
		for i, ws := range weightStrs {
			v, err := strconv.Atoi(strings.TrimSpace(ws))
			if err != nil {
				return nil, tpcdserr.Asset(name, err)
			}
			weights[i] = v
		}
		d.rows = append(d.rows, fields)
		d.weights = append(d.weights, weights)
	}
	if err := scanner.Err(); err != nil {
		return nil, tpcdserr.Asset(name, err)
	}
	if len(d.rows) == 0 {
		return nil, tpcdserr.Asset(name, errEmptyAsset)
	}
	d.totals = make([]int, len(d.weightNames))
	for _, w := range d.weights {
		for i := range d.totals {
			if i < len(w) {
				d.totals[i] += w[i]
			}
		}
	}
	return d, nil
}

var errEmptyAsset = assetErr("distribution has no data rows")

type assetErr string

func (e assetErr) Error() string { return string(e) }

// Len returns the number of rows in the distribution.
func (d *Distribution) Len() int { return len(d.rows) }

// Field returns the value of the named column at row index i.
func (d *Distribution) Field(i int, name string) string {
	idx := indexOf(d.fieldNames, name)
	if idx < 0 || i < 0 || i >= len(d.rows) || idx >= len(d.rows[i]) {
		return ""
	}
	return d.rows[i][idx]
}

// Weight returns the named weight column's value at row index i.
func (d *Distribution) Weight(i int, weightName string) int {
	idx := indexOf(d.weightNames, weightName)
	if idx < 0 || i < 0 || i >= len(d.weights) || idx >= len(d.weights[i]) {
		return 0
	}
	return d.weights[i][idx]
}

// PickUniform draws a uniformly random row index, one seed consumed.
func (d *Distribution) PickUniform(s *rng.Stream) int {
	return s.UniformIndex(len(d.rows))
}

// PickWeighted draws a row index biased by the named weight column: a
// draw uniform in [1, total weight] selects the first row whose
// cumulative weight is >= the draw.
func (d *Distribution) PickWeighted(s *rng.Stream, weightName string) int {
	idx := indexOf(d.weightNames, weightName)
	if idx < 0 {
		return d.PickUniform(s)
	}
	total := d.totals[idx]
	if total <= 0 {
		return d.PickUniform(s)
	}
	draw := s.UniformInt(1, total)
	cum := 0
	for i, w := range d.weights {
		if idx < len(w) {
			cum += w[idx]
		}
		if cum >= draw {
			return i
		}
	}
	return len(d.rows) - 1
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
