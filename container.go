package bicdir

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
)

// document adapts the PDF container library to the extraction loop. The
// library reports some structural defects by panicking, so every call into
// it runs behind a recover.
type document struct {
	reader *pdf.Reader
	file   *os.File // non-nil only when opened from a path
}

func openPath(path string) (doc *document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ContainerError{Err: fmt.Errorf("%v", r)}
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, &ContainerError{Err: err}
	}
	return &document{reader: r, file: f}, nil
}

func openBytes(data []byte) (doc *document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ContainerError{Err: fmt.Errorf("%v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ContainerError{Err: err}
	}
	return &document{reader: r}, nil
}

func (d *document) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

func (d *document) pageCount() int {
	return d.reader.NumPage()
}

// pageContent returns the raw, decoded content stream bytes of a page
// (1-based). A page without drawable content returns nil bytes and no
// error.
func (d *document) pageContent(num int) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PageError{Page: num, Err: fmt.Errorf("%v", r)}
		}
	}()

	page := d.reader.Page(num)
	if page.V.IsNull() {
		return nil, &PageError{Page: num, Err: fmt.Errorf("page object missing")}
	}

	contents := page.V.Key("Contents")
	switch contents.Kind() {
	case pdf.Null:
		return nil, nil
	case pdf.Stream:
		return readStream(num, contents)
	case pdf.Array:
		// Multiple streams concatenate into one logical content stream.
		var buf bytes.Buffer
		for i := 0; i < contents.Len(); i++ {
			part, err := readStream(num, contents.Index(i))
			if err != nil {
				return nil, err
			}
			buf.Write(part)
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil
	default:
		return nil, &PageError{Page: num, Err: fmt.Errorf("unexpected contents kind %v", contents.Kind())}
	}
}

func readStream(num int, v pdf.Value) ([]byte, error) {
	if v.Kind() != pdf.Stream {
		return nil, &PageError{Page: num, Err: fmt.Errorf("contents entry is not a stream")}
	}
	data, err := io.ReadAll(v.Reader())
	if err != nil {
		return nil, &PageError{Page: num, Err: err}
	}
	return data, nil
}
