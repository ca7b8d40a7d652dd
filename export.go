package bicdir

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// WriteCSV extracts the document's records and writes them to w as CSV, a
// header row followed by one row per record. It returns the number of
// records written (excluding the header).
func (e *Extractor) WriteCSV(w io.Writer) (int, error) {
	recs, err := e.Records()
	if err != nil {
		return 0, err
	}
	return writeCSV(w, recs)
}

// WriteXLSX extracts the document's records and writes them to w as a
// single-sheet XLSX workbook with the same schema as WriteCSV. It returns
// the number of records written.
func (e *Extractor) WriteXLSX(w io.Writer) (int, error) {
	recs, err := e.Records()
	if err != nil {
		return 0, err
	}
	return writeXLSX(w, recs)
}

// ConvertToCSV extracts the records of the PDF at source and writes them as
// CSV to destination. It returns the number of records written.
func ConvertToCSV(source, destination string) (int, error) {
	return convert(source, destination, writeCSV)
}

// ConvertToXLSX extracts the records of the PDF at source and writes them
// as an XLSX workbook to destination. It returns the number of records
// written.
func ConvertToXLSX(source, destination string) (int, error) {
	return convert(source, destination, writeXLSX)
}

func convert(source, destination string, write func(io.Writer, []Record) (int, error)) (int, error) {
	recs, err := Open(source).Records()
	if err != nil {
		return 0, err
	}

	f, err := os.Create(destination)
	if err != nil {
		return 0, &OutputError{Path: destination, Err: err}
	}

	count, err := write(f, recs)
	if err != nil {
		f.Close()
		return 0, &OutputError{Path: destination, Err: err}
	}
	if err := f.Close(); err != nil {
		return 0, &OutputError{Path: destination, Err: err}
	}

	return count, nil
}

func writeCSV(w io.Writer, recs []Record) (int, error) {
	cw := csv.NewWriter(w)

	if err := cw.Write(Headers()); err != nil {
		return 0, fmt.Errorf("write header row: %w", err)
	}
	for _, rec := range recs {
		if err := cw.Write(rec); err != nil {
			return 0, fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}
	return len(recs), nil
}

func writeXLSX(w io.Writer, recs []Record) (int, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for i, h := range Headers() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return 0, fmt.Errorf("write header cell: %w", err)
		}
	}
	for row, rec := range recs {
		for col, v := range rec {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return 0, fmt.Errorf("write record cell: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return 0, err
	}
	return len(recs), nil
}
