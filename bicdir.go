// Package bicdir reconstructs the tabular records of the ISO BIC directory
// PDF and exports them as CSV or XLSX.
//
// The directory is published as a paginated PDF table with ten fixed
// columns. bicdir decodes each page's content stream into positioned text
// fragments, groups the fragments into rows, recovers the column grid from
// the table's vertical rulings, and folds the rows back into records. A
// record opens with a YYYY-MM-DD creation date in the first column;
// wrapped address lines merge into the record above, even across page
// breaks.
//
// Basic usage:
//
//	records, err := bicdir.Open("bic-directory.pdf").Records()
//	if err != nil {
//	    // handle error
//	}
//
// Or convert straight to a file:
//
//	count, err := bicdir.ConvertToCSV("bic-directory.pdf", "bic.csv")
package bicdir

import (
	"github.com/fintools-oss/bicdir/records"
)

// Record is one BIC directory entry. It always has exactly ten fields, in
// the order reported by Headers.
type Record = records.Record

// Headers returns the fixed column names of the BIC directory table, in
// output order.
func Headers() []string {
	return records.Headers()
}

// Open prepares an Extractor for a PDF file on disk. The file is opened
// lazily by the terminal operations (Records, WriteCSV, WriteXLSX).
//
// Example:
//
//	records, err := bicdir.Open("bic-directory.pdf").Records()
func Open(path string) *Extractor {
	return &Extractor{
		path:    path,
		options: DefaultOptions(),
	}
}

// FromBytes prepares an Extractor for a PDF held in memory.
func FromBytes(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		options: DefaultOptions(),
	}
}

// Extract reads a PDF file and returns its BIC records in document order.
func Extract(path string) ([]Record, error) {
	return Open(path).Records()
}

// ExtractBytes extracts BIC records from a PDF held in memory.
func ExtractBytes(data []byte) ([]Record, error) {
	return FromBytes(data).Records()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	records := bicdir.Must(bicdir.Open("bic-directory.pdf").Records())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
