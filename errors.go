package ldif

import (
	"errors"
	"fmt"
)

// Structural parse error kinds. In strict mode each of these terminates
// the parse wrapped in a *ParseError; in lenient mode each is reported
// as a warning and recovered from locally.
var (
	// ErrMalformedDN is returned when a record does not start with a
	// valid dn: line, or the dn value cannot be represented as text.
	ErrMalformedDN = errors.New("ldif: record does not start with a valid dn: line")

	// ErrMalformedAttr is returned for an attribute line with no colon
	// separator or an empty attribute name.
	ErrMalformedAttr = errors.New("ldif: malformed attribute line")

	// ErrBase64Decode is returned when a base64-encoded value (the "::"
	// form) cannot be decoded.
	ErrBase64Decode = errors.New("ldif: unable to decode base64 value")

	// ErrDuplicateDN is returned when a second dn: line appears inside
	// one record. Entries must be separated by a blank line.
	ErrDuplicateDN = errors.New("ldif: duplicate dn: line in record")

	// ErrUnexpectedEOF is returned when the stream ends inside a record
	// that cannot be salvaged. A record holding only a dn at end of
	// input is valid and does not produce this error.
	ErrUnexpectedEOF = errors.New("ldif: unexpected end of stream")

	// ErrInvalidValue is returned by the Writer when given the zero
	// Value. This is a caller contract violation, never recovered.
	ErrInvalidValue = errors.New("ldif: value must be text or bytes")
)

// ParseError reports a structural error in the input together with the
// position of the offending logical line.
type ParseError struct {
	// Line is the 1-based source line number where the logical line began.
	Line int
	// Offset is the byte offset of the start of that line.
	Offset int64
	// Detail describes the specific input, may be empty.
	Detail string
	// Err is the error kind, one of the sentinel errors above.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v (line %d, offset %d): %s", e.Err, e.Line, e.Offset, e.Detail)
	}
	return fmt.Sprintf("%v (line %d, offset %d)", e.Err, e.Line, e.Offset)
}

// Unwrap returns the error kind, so errors.Is matches the sentinels.
func (e *ParseError) Unwrap() error {
	return e.Err
}
