package text

import (
	"math"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/fintools-oss/bicdir/contentstream"
)

// Fragment is one contiguous run of decoded text and the cursor position it
// was drawn at.
type Fragment struct {
	Text string
	X, Y float64
}

// Options tune the cursor state machine. The defaults match the reference
// BIC directory typography; see bicdir.DefaultOptions.
type Options struct {
	// LineHeight is the vertical drop applied by a newline operator (T*, ',
	// ") when the stream never sets an explicit leading.
	LineHeight float64

	// SpaceThreshold separates word spacing from kerning in TJ arrays.
	// Adjustments below this value inject a literal space.
	SpaceThreshold float64
}

// spacingDivisor converts TJ adjustments (thousandths of the text space
// unit) into text space units.
const spacingDivisor = 1000.0

// Decode walks a page's operations and returns the positioned fragments in
// drawing order. Whitespace-only runs and fragments with non-finite
// coordinates are dropped.
func Decode(ops []contentstream.Operation, opts Options) []Fragment {
	d := decoder{opts: opts}
	for _, op := range ops {
		d.process(op)
	}
	return d.fragments
}

// decoder holds the text cursor state while scanning one page.
type decoder struct {
	opts Options

	x, y        float64
	lineAnchorX float64 // where newline operators return the cursor to

	fragments []Fragment
}

func (d *decoder) process(op contentstream.Operation) {
	switch op.Operator {
	case "BT":
		d.x, d.y = 0, 0

	case "Tm":
		// Only the translation part of the matrix positions text here;
		// the BIC directory never rotates or scales its table text.
		if len(op.Operands) == 6 {
			e, okE := contentstream.AsFloat(op.Operands[4])
			f, okF := contentstream.AsFloat(op.Operands[5])
			if okE && okF {
				d.x, d.y = e, f
				d.lineAnchorX = e
			}
		}

	case "Td", "TD":
		if len(op.Operands) == 2 {
			tx, okX := contentstream.AsFloat(op.Operands[0])
			ty, okY := contentstream.AsFloat(op.Operands[1])
			if okX && okY {
				d.x += tx
				d.y += ty
			}
		}

	case "T*":
		d.nextLine()

	case "Tj":
		if len(op.Operands) == 1 {
			if str, ok := op.Operands[0].(contentstream.String); ok {
				d.emit(decodeString(str), d.x, d.y)
			}
		}

	case "TJ":
		if len(op.Operands) == 1 {
			if arr, ok := op.Operands[0].(contentstream.Array); ok {
				d.showAdjusted(arr)
			}
		}

	case "'":
		d.nextLine()
		if len(op.Operands) == 1 {
			if str, ok := op.Operands[0].(contentstream.String); ok {
				d.emit(decodeString(str), d.x, d.y)
			}
		}

	case "\"":
		// Word/char spacing operands only affect glyph advance, which the
		// cursor model doesn't track; position behaves like ' here.
		if len(op.Operands) == 3 {
			d.nextLine()
			if str, ok := op.Operands[2].(contentstream.String); ok {
				d.emit(decodeString(str), d.x, d.y)
			}
		}
	}
}

// nextLine drops the cursor by one line and returns to the line anchor.
func (d *decoder) nextLine() {
	d.y -= d.opts.LineHeight
	d.x = d.lineAnchorX
}

// showAdjusted handles a TJ array: text items accumulate into one combined
// run, numeric items shift the cursor, and a shift past the space threshold
// stands in for a word space. The fragment is positioned at the cursor value
// from before any adjustment in this instruction.
func (d *decoder) showAdjusted(arr contentstream.Array) {
	var combined strings.Builder
	startX := d.x

	for _, item := range arr {
		switch v := item.(type) {
		case contentstream.String:
			combined.WriteString(decodeString(v))
		case contentstream.Int, contentstream.Real:
			adj, _ := contentstream.AsFloat(v)
			if adj < d.opts.SpaceThreshold {
				combined.WriteByte(' ')
			}
			d.x -= adj / spacingDivisor
		}
	}

	d.emit(combined.String(), startX, d.y)
}

// emit records a fragment unless it is all-whitespace or positioned at a
// non-finite coordinate.
func (d *decoder) emit(text string, x, y float64) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if !isFinite(x) || !isFinite(y) {
		return
	}
	d.fragments = append(d.fragments, Fragment{Text: text, X: x, Y: y})
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

var (
	utf16beDecoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	latin1Decoder  = charmap.ISO8859_1
)

// decodeString interprets a text payload. Payloads carrying a UTF-16BE
// byte-order marker decode as UTF-16BE; everything else decodes as
// Latin-1 (a superset of PDFDocEncoding for the characters this directory
// uses). Encoding errors are repaired with replacement runes rather than
// surfaced: one bad glyph must not abort a multi-hundred-record extraction.
func decodeString(raw contentstream.String) string {
	b := []byte(raw)
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		// The decoder substitutes malformed sequences as it goes; keep
		// whatever it produced even when it also reports an error.
		decoded, _ := utf16beDecoder.NewDecoder().Bytes(b[2:])
		return string(decoded)
	}
	decoded, err := latin1Decoder.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}
