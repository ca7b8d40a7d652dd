package bicdir

import "fmt"

// ContainerError reports that the PDF container could not be opened or
// decoded. Nothing was extracted.
type ContainerError struct {
	Err error
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("failed to open PDF container: %v", e.Err)
}

func (e *ContainerError) Unwrap() error { return e.Err }

// PageError reports that one page's content stream could not be obtained or
// parsed. The whole extraction aborts: boundary and record continuity span
// pages, so skipping a page would silently corrupt the output.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("failed to read page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }

// LayoutError reports that no page carried enough vertical rulings to
// delimit the expected columns. The document does not match the BIC
// directory's table layout.
type LayoutError struct {
	Found    int
	Required int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("failed to detect column boundaries: expected at least %d vertical lines, found %d", e.Required, e.Found)
}

// OutputError reports that the destination file could not be created or
// written.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("failed to write output %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }
