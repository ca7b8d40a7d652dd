package records

import "strings"

// NumColumns is the number of fields in a BIC directory record.
const NumColumns = 10

var headers = [NumColumns]string{
	"Record creation date",
	"Last Update date",
	"BIC",
	"Brch Code",
	"Full legal name",
	"Registered address",
	"Operational address",
	"Branch description",
	"Branch address",
	"Instit. Type",
}

// Headers returns the column headers of the BIC directory table, in output
// order.
func Headers() []string {
	h := make([]string, NumColumns)
	copy(h, headers[:])
	return h
}

// Record is one BIC directory entry with NumColumns fields.
type Record []string

// headerPhrases are lowercase markers that identify the repeated per-page
// column headers and the directory's title matter.
var headerPhrases = []string{
	"last update",
	"brch code",
	"bic brch",
	"full legal name",
	"instit. type",
	"inst. type",
	"iso bic directory",
	"registration authority",
	"iso 9362",
}

// IsHeaderRow reports whether a row repeats the table's column headers or
// title matter. Such rows recur on every page and carry no record data.
func IsHeaderRow(cells []string) bool {
	combined := strings.ToLower(strings.Join(cells, " "))
	if strings.Contains(combined, "record") && strings.Contains(combined, "creation") {
		return true
	}
	for _, phrase := range headerPhrases {
		if strings.Contains(combined, phrase) {
			return true
		}
	}
	return false
}

// IsDataRow reports whether a row opens a new record. Records always lead
// with a YYYY-MM-DD creation date; rows whose first column holds anything
// else are continuations of the record above.
func IsDataRow(cells []string) bool {
	if len(cells) == 0 || cells[0] == "" {
		return false
	}

	first := strings.TrimSpace(cells[0])
	if len(first) < 10 {
		return false
	}

	parts := strings.Split(first, "-")
	if len(parts) < 3 {
		return false
	}

	return len(parts[0]) == 4 && allDigits(parts[0]) &&
		len(parts[1]) == 2 &&
		len(parts[2]) >= 2
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// MergeContinuation appends a continuation row's cells onto a record field
// by field. Wrapped address lines join their parent field with a single
// space; empty continuation cells leave the field untouched.
func MergeContinuation(record Record, continuation []string) {
	for i, cell := range continuation {
		if i >= len(record) || cell == "" {
			continue
		}
		if record[i] != "" {
			record[i] += " "
		}
		record[i] += cell
	}
}

// Builder folds a document's column-assigned rows into closed records. Feed
// it every row in page order; the in-progress record carries across page
// boundaries, so a single Builder must be used for the whole document.
type Builder struct {
	records []Record
	current Record
}

// Feed consumes one column-assigned row. Empty and header rows are skipped,
// a date-led row closes the previous record and opens a new one, and any
// other row merges into the record in progress. Continuation rows seen
// before the first record are dropped.
func (b *Builder) Feed(cells []string) {
	empty := true
	for _, c := range cells {
		if c != "" {
			empty = false
			break
		}
	}
	if empty {
		return
	}

	if IsHeaderRow(cells) {
		return
	}

	if IsDataRow(cells) {
		if b.current != nil {
			b.records = append(b.records, b.current)
		}
		b.current = make(Record, len(cells))
		for i, c := range cells {
			b.current[i] = strings.TrimSpace(c)
		}
		return
	}

	if b.current != nil {
		MergeContinuation(b.current, cells)
	}
}

// Finish closes the record in progress and returns all records in document
// order. The Builder must not be fed after Finish.
func (b *Builder) Finish() []Record {
	if b.current != nil {
		b.records = append(b.records, b.current)
		b.current = nil
	}
	return b.records
}
