package tables

import (
	"math"
	"sort"

	"github.com/fintools-oss/bicdir/contentstream"
)

// Boundaries is an ascending list of column boundary x positions. The last
// entry is +Inf so the rightmost column is open ended.
type Boundaries []float64

// Columns returns the number of column intervals the boundaries delimit.
func (b Boundaries) Columns() int {
	if len(b) == 0 {
		return 0
	}
	return len(b) - 1
}

// DetectRulings scans a page's operations for vertical line segments and
// returns the distinct x positions where they occur, ascending. A segment
// counts as vertical when the x operand of the first l operator after an m
// stays within verticalTol of that m's x operand. Positions closer than
// dedupTol to an already recorded one are treated as the same ruling.
func DetectRulings(ops []contentstream.Operation, verticalTol, dedupTol float64) []float64 {
	var candidates []float64
	var moveX float64
	haveMove := false

	for _, op := range ops {
		switch op.Operator {
		case "m":
			if len(op.Operands) < 2 {
				continue
			}
			if x, ok := contentstream.AsFloat(op.Operands[0]); ok {
				moveX = x
				haveMove = true
			}
		case "l":
			if !haveMove {
				continue
			}
			// Only the segment directly following the move-to counts;
			// later segments of the same path start elsewhere.
			haveMove = false
			if len(op.Operands) < 2 {
				continue
			}
			x, ok := contentstream.AsFloat(op.Operands[0])
			if !ok {
				continue
			}
			if math.Abs(x-moveX) < verticalTol {
				candidates = append(candidates, moveX)
			}
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	sort.Float64s(candidates)

	rulings := candidates[:1]
	for _, x := range candidates[1:] {
		if x-rulings[len(rulings)-1] >= dedupTol {
			rulings = append(rulings, x)
		}
	}

	return rulings
}

// MakeBoundaries builds column boundaries from detected rulings. The
// rightmost column is open ended, so its +Inf threshold counts toward
// required: required thresholds delimit required-1 columns, and required-1
// detected rulings suffice. Rulings beyond required-1 are ignored. ok is
// false when too few rulings were found.
func MakeBoundaries(rulings []float64, required int) (Boundaries, bool) {
	if len(rulings)+1 < required {
		return nil, false
	}

	b := make(Boundaries, 0, required)
	b = append(b, rulings[:required-1]...)
	b = append(b, math.Inf(1))

	return b, true
}
