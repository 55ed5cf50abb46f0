package ldif

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// DefaultLineWidth is the maximum line width recommended by RFC 2849.
const DefaultLineWidth = 76

// Writer emits LDIF entry records to a byte sink, choosing plain or
// base64 encoding per value and folding long lines. The writer holds no
// state across records beyond the sink and its counters; calls to
// WriteRecord on one Writer must be sequential.
type Writer struct {
	w       io.Writer
	cols    int
	lineSep string
	base64  map[string]bool // lowercased attribute names forced to base64
	buf     bytes.Buffer
	records int
}

// WriterOption configures a Writer.
type WriterOption func(*Writer) error

// WithMaxLineWidth sets the column limit beyond which output lines are
// folded. The default is DefaultLineWidth.
func WithMaxLineWidth(n int) WriterOption {
	return func(w *Writer) error {
		if n < 2 {
			return fmt.Errorf("ldif: fold width must be at least 2, got %d", n)
		}
		w.cols = n
		return nil
	}
}

// WithBase64Attrs forces the named attributes (case-insensitive) to be
// base64-encoded regardless of the safe-string classification.
func WithBase64Attrs(names ...string) WriterOption {
	return func(w *Writer) error {
		if w.base64 == nil {
			w.base64 = make(map[string]bool, len(names))
		}
		for _, name := range names {
			w.base64[strings.ToLower(name)] = true
		}
		return nil
	}
}

// WithLineSeparator sets the line terminator. The default is "\n".
func WithLineSeparator(sep string) WriterOption {
	return func(w *Writer) error {
		if sep == "" {
			return fmt.Errorf("ldif: empty line separator")
		}
		w.lineSep = sep
		return nil
	}
}

// NewWriter creates a Writer emitting to w.
func NewWriter(w io.Writer, opts ...WriterOption) (*Writer, error) {
	lw := &Writer{
		w:       w,
		cols:    DefaultLineWidth,
		lineSep: "\n",
	}
	for _, opt := range opts {
		if err := opt(lw); err != nil {
			return nil, err
		}
	}
	return lw, nil
}

// RecordsWritten returns the number of records written so far.
func (w *Writer) RecordsWritten() int { return w.records }

// WriteRecord writes one entry record: the dn line, one line per
// attribute value in the entry's order, and a trailing blank separator
// line. A zero Value in the entry is a caller contract violation and
// fails with ErrInvalidValue before anything reaches the sink.
func (w *Writer) WriteRecord(dn string, entry *Entry) error {
	w.buf.Reset()
	w.writeAttr("dn", TextValue(dn))
	for _, name := range entry.Names() {
		for _, v := range entry.Get(name) {
			if v.IsZero() {
				return fmt.Errorf("%w: attribute %q", ErrInvalidValue, name)
			}
			w.writeAttr(name, v)
		}
	}
	w.buf.WriteString(w.lineSep)
	if _, err := w.w.Write(w.buf.Bytes()); err != nil {
		return err
	}
	w.records++
	return nil
}

// writeAttr appends one folded attribute line to the record buffer.
func (w *Writer) writeAttr(name string, v Value) {
	raw := v.Bytes()
	if w.base64[strings.ToLower(name)] || needsBase64(raw) {
		w.foldLine(name + ":: " + base64.StdEncoding.EncodeToString(raw))
		return
	}
	w.foldLine(name + ": " + string(raw))
}

// needsBase64 applies the RFC 2849 safe-string classification: a value
// must be base64-encoded when its first byte is NUL, space, colon or
// less-than, when any byte is a control character or outside printable
// ASCII, or when it ends with a space.
func needsBase64(raw []byte) bool {
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case ' ', ':', '<':
		return true
	}
	if raw[len(raw)-1] == ' ' {
		return true
	}
	for _, b := range raw {
		if b < 0x20 || b >= 0x7f {
			return true
		}
	}
	return false
}

// foldLine appends line to the buffer, split at the configured width:
// the first physical line carries cols bytes, every continuation line a
// space plus cols-1 bytes. The split is on the literal byte stream, so
// unfolding reproduces the input exactly.
func (w *Writer) foldLine(line string) {
	if len(line) <= w.cols {
		w.buf.WriteString(line)
		w.buf.WriteString(w.lineSep)
		return
	}
	w.buf.WriteString(line[:w.cols])
	w.buf.WriteString(w.lineSep)
	for pos := w.cols; pos < len(line); {
		end := pos + w.cols - 1
		if end > len(line) {
			end = len(line)
		}
		w.buf.WriteByte(' ')
		w.buf.WriteString(line[pos:end])
		w.buf.WriteString(w.lineSep)
		pos = end
	}
}
