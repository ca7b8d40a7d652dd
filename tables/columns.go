package tables

import "strings"

// AssignColumns distributes a row's cells into the intervals between
// consecutive boundaries. A cell with x in [b[i], b[i+1]) lands in column i;
// cells left of the first boundary are dropped. Multiple cells in the same
// column are joined with single spaces, and runs of whitespace inside a cell
// collapse to one space. The result always has exactly Columns() entries,
// with empty strings for columns that received no cell.
func AssignColumns(row Row, b Boundaries) []string {
	columns := make([]string, b.Columns())

	for _, cell := range row.Cells {
		idx := -1
		for i := 0; i < b.Columns(); i++ {
			if cell.X >= b[i] && cell.X < b[i+1] {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}

		cleaned := strings.Join(strings.Fields(cell.Text), " ")
		if cleaned == "" {
			continue
		}
		if columns[idx] == "" {
			columns[idx] = cleaned
		} else {
			columns[idx] += " " + cleaned
		}
	}

	return columns
}
