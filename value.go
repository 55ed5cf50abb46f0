package ldif

import "bytes"

// valueKind distinguishes the two representations a Value may hold.
type valueKind int

const (
	valueInvalid valueKind = iota
	valueText
	valueBytes
)

// Value is a single attribute value, holding either decoded text or raw
// bytes. The representation is decided once at construction and never
// changes: a value produced by the parser is text when the configured
// character encoding decoded its bytes successfully, and raw bytes
// otherwise. Callers must inspect IsText rather than assume one form.
//
// The zero Value is invalid: it is neither text nor bytes and is rejected
// by the Writer.
type Value struct {
	kind valueKind
	text string
	raw  []byte
}

// TextValue returns a Value holding decoded text.
func TextValue(s string) Value {
	return Value{kind: valueText, text: s}
}

// BytesValue returns a Value holding raw, undecoded bytes.
func BytesValue(b []byte) Value {
	return Value{kind: valueBytes, raw: b}
}

// IsText reports whether the value holds decoded text.
func (v Value) IsText() bool { return v.kind == valueText }

// IsZero reports whether the value is the invalid zero Value.
func (v Value) IsZero() bool { return v.kind == valueInvalid }

// Text returns the decoded text and true, or "" and false if the value
// holds raw bytes.
func (v Value) Text() (string, bool) {
	if v.kind != valueText {
		return "", false
	}
	return v.text, true
}

// Bytes returns the byte form of the value: the raw bytes for a byte
// value, or the UTF-8 encoding for a text value. Returns nil for the
// zero Value.
func (v Value) Bytes() []byte {
	switch v.kind {
	case valueText:
		return []byte(v.text)
	case valueBytes:
		return v.raw
	default:
		return nil
	}
}

// String returns the text for a text value and the raw bytes converted
// to a string for a byte value.
func (v Value) String() string {
	switch v.kind {
	case valueText:
		return v.text
	case valueBytes:
		return string(v.raw)
	default:
		return ""
	}
}

// Equal reports whether two values have the same representation and the
// same content. A text value is never equal to a byte value, even when
// their byte forms match.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case valueText:
		return v.text == o.text
	case valueBytes:
		return bytes.Equal(v.raw, o.raw)
	default:
		return true
	}
}

// clone returns a deep copy of the value.
func (v Value) clone() Value {
	if v.kind == valueBytes {
		raw := make([]byte, len(v.raw))
		copy(raw, v.raw)
		return Value{kind: valueBytes, raw: raw}
	}
	return v
}
