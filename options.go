package bicdir

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExtractOptions holds the layout constants the pipeline tunes itself with.
// The defaults match the typography of the published ISO BIC directory;
// override them only for documents typeset differently.
type ExtractOptions struct {
	// LineHeight is the vertical distance, in points, that a T* operator
	// moves the text cursor down.
	LineHeight float64 `yaml:"line_height"`

	// SpaceThreshold is the TJ adjustment below which a gap counts as a
	// word break rather than kerning. Thousandths of a text-space unit,
	// so it is negative.
	SpaceThreshold float64 `yaml:"space_threshold"`

	// YTolerance is the maximum baseline distance, in points, between
	// fragments of the same row.
	YTolerance float64 `yaml:"y_tolerance"`

	// VerticalLineTolerance is the maximum horizontal drift, in points,
	// for a line segment to count as a vertical ruling.
	VerticalLineTolerance float64 `yaml:"vertical_line_tolerance"`

	// LineDedupTolerance is the distance, in points, within which two
	// detected rulings collapse into one.
	LineDedupTolerance float64 `yaml:"line_dedup_tolerance"`

	// RequiredBoundaries is the number of column thresholds, counting the
	// open-ended final one. Ten columns need eleven thresholds, so ten
	// drawn rulings.
	RequiredBoundaries int `yaml:"required_boundaries"`
}

// DefaultOptions returns the extraction options for the standard ISO BIC
// directory layout.
func DefaultOptions() ExtractOptions {
	return ExtractOptions{
		LineHeight:            12.0,
		SpaceThreshold:        -100.0,
		YTolerance:            3.0,
		VerticalLineTolerance: 1.0,
		LineDedupTolerance:    2.0,
		RequiredBoundaries:    11,
	}
}

// OptionsFromYAML loads extraction options from a YAML file. Fields absent
// from the file keep their defaults.
func OptionsFromYAML(path string) (ExtractOptions, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse options file %s: %w", path, err)
	}

	return opts, nil
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}
