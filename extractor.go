package bicdir

import (
	"github.com/fintools-oss/bicdir/contentstream"
	"github.com/fintools-oss/bicdir/records"
	"github.com/fintools-oss/bicdir/tables"
	"github.com/fintools-oss/bicdir/text"
)

// Extractor provides a fluent interface for extracting BIC records from a
// PDF. Configuration methods return a new Extractor instance, making it
// safe for concurrent use and allowing method chaining. Terminal
// operations (Records, WriteCSV, WriteXLSX) open and close the document
// themselves.
type Extractor struct {
	// Source (exactly one is set)
	path string
	data []byte

	// Configuration
	options ExtractOptions
}

// clone creates a copy of the Extractor so chain methods stay immutable.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		path:    e.path,
		data:    e.data,
		options: e.options.clone(),
	}
}

// WithOptions returns a new Extractor using the given layout constants.
func (e *Extractor) WithOptions(opts ExtractOptions) *Extractor {
	newExt := e.clone()
	newExt.options = opts.clone()
	return newExt
}

// Records extracts every BIC record from the document, in document order.
// It returns a classified error (ContainerError, PageError, LayoutError)
// and no records when the document cannot be processed; there is no
// partial-success mode.
func (e *Extractor) Records() ([]Record, error) {
	var doc *document
	var err error
	if e.path != "" {
		doc, err = openPath(e.path)
	} else {
		doc, err = openBytes(e.data)
	}
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	var boundaries tables.Boundaries
	var builder records.Builder
	sawContent := false
	bestFound := 0

	// Page 1 is the directory's cover sheet and never carries table data.
	for page := 2; page <= doc.pageCount(); page++ {
		content, err := doc.pageContent(page)
		if err != nil {
			return nil, err
		}
		if content == nil {
			continue
		}

		ops, err := contentstream.Parse(content)
		if err != nil {
			return nil, &PageError{Page: page, Err: err}
		}
		if len(ops) == 0 {
			continue
		}
		sawContent = true

		// The column grid is drawn identically on every data page, so
		// the first page that exposes enough rulings fixes it for the
		// whole document.
		if boundaries == nil {
			rulings := tables.DetectRulings(ops, e.options.VerticalLineTolerance, e.options.LineDedupTolerance)
			// The open-ended final threshold counts toward the total.
			if n := len(rulings) + 1; n > bestFound {
				bestFound = n
			}
			b, ok := tables.MakeBoundaries(rulings, e.options.RequiredBoundaries)
			if !ok {
				continue
			}
			boundaries = b
		}

		fragments := text.Decode(ops, text.Options{
			LineHeight:     e.options.LineHeight,
			SpaceThreshold: e.options.SpaceThreshold,
		})
		for _, row := range tables.GroupRows(fragments, e.options.YTolerance) {
			builder.Feed(tables.AssignColumns(row, boundaries))
		}
	}

	if boundaries == nil {
		if !sawContent {
			// A cover-only or empty document has nothing to extract.
			return nil, nil
		}
		return nil, &LayoutError{Found: bestFound, Required: e.options.RequiredBoundaries}
	}

	return builder.Finish(), nil
}
