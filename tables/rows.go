package tables

import (
	"math"
	"sort"

	"github.com/fintools-oss/bicdir/text"
)

// Cell is a piece of text positioned horizontally within a row.
type Cell struct {
	X    float64
	Text string
}

// Row is a group of cells that share a baseline. Y is the quantized baseline
// used for grouping, not the exact coordinate of any single cell.
type Row struct {
	Y     float64
	Cells []Cell
}

// GroupRows clusters fragments whose baselines fall within tolerance of each
// other into rows. Rows are returned top to bottom (descending Y) and cells
// within a row left to right (ascending X).
func GroupRows(fragments []text.Fragment, tolerance float64) []Row {
	if len(fragments) == 0 {
		return nil
	}
	if tolerance <= 0 {
		tolerance = 1
	}

	// Quantize each baseline to a bucket so fragments within tolerance of
	// each other land on the same key.
	buckets := make(map[int][]Cell)
	for _, f := range fragments {
		key := int(math.Round(f.Y / tolerance))
		buckets[key] = append(buckets[key], Cell{X: f.X, Text: f.Text})
	}

	rows := make([]Row, 0, len(buckets))
	for key, cells := range buckets {
		sort.SliceStable(cells, func(i, j int) bool {
			return cells[i].X < cells[j].X
		})
		rows = append(rows, Row{Y: float64(key) * tolerance, Cells: cells})
	}

	// Top of the page first.
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Y > rows[j].Y
	})

	return rows
}
