package ldif

import (
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// Value form markers after the attribute name.
const (
	formPlain  byte = iota // "attr: value"
	formBase64             // "attr:: base64"
	formURL                // "attr:< url"
)

// Parser reads LDIF entry records from a byte stream. It is a lazy,
// finite, forward-only producer: each Next call consumes input until one
// record completes or the stream ends. A Parser must not be used from
// multiple goroutines.
type Parser struct {
	lr       *lineReader
	strict   bool
	decode   bool              // text decoding enabled
	enc      encoding.Encoding // nil means UTF-8 fast path
	log      *slog.Logger
	ignored  map[string]bool
	resolver URLResolver

	records int
	err     error // sticky terminal error
}

// ParserOption configures a Parser.
type ParserOption func(*Parser) error

// WithLenient switches the parser from fail-fast to recover-and-warn:
// every malformed-input condition is logged as a warning and a local
// recovery is applied instead of terminating the stream.
func WithLenient() ParserOption {
	return func(p *Parser) error {
		p.strict = false
		return nil
	}
}

// WithEncoding sets the character encoding used to decode attribute
// values to text, named by its IANA charset name ("utf-8", "iso-8859-1",
// ...). The default is UTF-8. Values whose bytes do not decode are kept
// as raw bytes; see Value.
func WithEncoding(name string) ParserOption {
	return func(p *Parser) error {
		p.decode = true
		switch strings.ToLower(name) {
		case "", "utf-8", "utf8":
			p.enc = nil
			return nil
		}
		enc, err := ianaindex.IANA.Encoding(name)
		if err != nil {
			return fmt.Errorf("ldif: unknown encoding %q: %w", name, err)
		}
		if enc == nil {
			return fmt.Errorf("ldif: unsupported encoding %q", name)
		}
		if enc == unicode.UTF8 {
			enc = nil
		}
		p.enc = enc
		return nil
	}
}

// WithoutDecoding disables text decoding entirely: every attribute value
// is kept as raw bytes and the DN is converted byte-for-byte.
func WithoutDecoding() ParserOption {
	return func(p *Parser) error {
		p.decode = false
		p.enc = nil
		return nil
	}
}

// WithLogger sets the logger that receives lenient-mode warnings.
// Defaults to slog.Default.
func WithLogger(l *slog.Logger) ParserOption {
	return func(p *Parser) error {
		if l == nil {
			return fmt.Errorf("ldif: nil logger")
		}
		p.log = l
		return nil
	}
}

// WithIgnoredAttrs drops the named attributes (case-insensitive) while
// accumulating entries.
func WithIgnoredAttrs(names ...string) ParserOption {
	return func(p *Parser) error {
		if p.ignored == nil {
			p.ignored = make(map[string]bool, len(names))
		}
		for _, name := range names {
			p.ignored[strings.ToLower(name)] = true
		}
		return nil
	}
}

// WithURLResolver sets the resolver invoked for URL-referenced values
// (the ":<" form). Without a resolver the parser stores the literal
// reference as the value's bytes and never fetches anything.
func WithURLResolver(r URLResolver) ParserOption {
	return func(p *Parser) error {
		p.resolver = r
		return nil
	}
}

// NewParser creates a Parser reading from r. The parser is strict and
// decodes values as UTF-8 unless configured otherwise.
func NewParser(r io.Reader, opts ...ParserOption) (*Parser, error) {
	p := &Parser{
		lr:     newLineReader(r),
		strict: true,
		decode: true,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// RecordsRead returns the number of records yielded so far.
func (p *Parser) RecordsRead() int { return p.records }

// LinesRead returns the number of logical lines consumed so far.
func (p *Parser) LinesRead() int { return p.lr.lines }

// BytesRead returns the number of raw bytes consumed so far, including
// line terminators.
func (p *Parser) BytesRead() int64 { return p.lr.bytes }

// Next returns the next record, or io.EOF once the stream is exhausted.
// In strict mode a structural error is returned as a *ParseError and the
// parser stays failed; in lenient mode structural errors are logged and
// recovered from, so Next only returns io.EOF or an I/O error from the
// underlying stream.
func (p *Parser) Next() (*Record, error) {
	if p.err != nil {
		return nil, p.err
	}

	var dn string
	var entry *Entry

	for {
		ln, err := p.lr.next()
		if err == io.EOF {
			if entry != nil {
				p.records++
				return &Record{DN: dn, Entry: entry}, nil
			}
			return nil, p.fail(io.EOF)
		}
		if err != nil {
			return nil, p.fail(err)
		}

		text := ln.text
		if strings.HasPrefix(text, "#") {
			continue
		}
		if text == "" {
			if entry != nil {
				p.records++
				return &Record{DN: dn, Entry: entry}, nil
			}
			// Consecutive blank lines are not records.
			continue
		}

		name, form, payload, ok := splitAttrLine(text)

		if entry == nil {
			// Awaiting the dn: line. A version line may precede it.
			if ok && strings.EqualFold(name, "version") {
				continue
			}
			if !ok || !strings.EqualFold(name, "dn") {
				if rerr := p.report(ErrMalformedDN, ln, snippet(text)); rerr != nil {
					return nil, p.fail(rerr)
				}
				continue
			}
			dn, err = p.decodeDN(form, payload, ln)
			if err != nil {
				return nil, p.fail(err)
			}
			entry = NewEntry()
			continue
		}

		// Accumulating attributes.
		if !ok {
			if rerr := p.report(ErrMalformedAttr, ln, snippet(text)); rerr != nil {
				return nil, p.fail(rerr)
			}
			continue
		}
		if strings.EqualFold(name, "dn") {
			if rerr := p.report(ErrDuplicateDN, ln, snippet(text)); rerr != nil {
				return nil, p.fail(rerr)
			}
			// Lenient recovery: the later dn wins.
			dn, err = p.decodeDN(form, payload, ln)
			if err != nil {
				return nil, p.fail(err)
			}
			continue
		}
		if p.ignored[strings.ToLower(name)] {
			continue
		}
		raw, substituted, err := p.rawValue(form, payload, ln)
		if err != nil {
			return nil, p.fail(err)
		}
		if substituted {
			// An undecodable base64 payload stays raw bytes.
			entry.Add(name, BytesValue(raw))
			continue
		}
		entry.Add(name, p.decodeText(raw))
	}
}

// fail records a terminal error so subsequent Next calls return it.
func (p *Parser) fail(err error) error {
	p.err = err
	return err
}

// report applies the configured error policy to one structural error
// site: strict mode returns a *ParseError carrying the position, lenient
// mode logs a warning and returns nil so the caller performs its local
// recovery.
func (p *Parser) report(kind error, ln logicalLine, detail string) error {
	if p.strict {
		return &ParseError{Line: ln.number, Offset: ln.offset, Detail: detail, Err: kind}
	}
	p.log.Warn("recovering from malformed ldif input",
		"err", kind, "line", ln.number, "offset", ln.offset, "detail", detail)
	return nil
}

// decodeDN decodes the payload of a dn: line and coerces it to text.
func (p *Parser) decodeDN(form byte, payload string, ln logicalLine) (string, error) {
	raw, substituted, err := p.rawValue(form, payload, ln)
	if err != nil {
		return "", err
	}
	var dn string
	if v := p.decodeText(raw); v.IsText() {
		dn = v.String()
	} else {
		if p.decode && !substituted {
			if rerr := p.report(ErrMalformedDN, ln, "dn is not valid text"); rerr != nil {
				return "", rerr
			}
		}
		dn = string(raw)
	}
	if !IsDN(dn) {
		if rerr := p.report(ErrMalformedDN, ln, fmt.Sprintf("invalid distinguished name %q", dn)); rerr != nil {
			return "", rerr
		}
	}
	return dn, nil
}

// rawValue turns the payload of one attribute line into raw bytes,
// before the text decoding policy is applied. substituted reports that a
// lenient recovery already replaced the value with the undecoded payload,
// which must stay byte-valued.
func (p *Parser) rawValue(form byte, payload string, ln logicalLine) (raw []byte, substituted bool, err error) {
	switch form {
	case formBase64:
		data, derr := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
		if derr != nil {
			if rerr := p.report(ErrBase64Decode, ln, snippet(payload)); rerr != nil {
				return nil, false, rerr
			}
			return []byte(trimOneSpace(payload)), true, nil
		}
		return data, false, nil
	case formURL:
		ref := strings.TrimSpace(payload)
		if p.resolver == nil {
			return []byte(ref), false, nil
		}
		data, derr := p.resolver.Resolve(ref)
		if derr != nil {
			if rerr := p.report(ErrMalformedAttr, ln, derr.Error()); rerr != nil {
				return nil, false, rerr
			}
			return []byte(ref), true, nil
		}
		return data, false, nil
	default:
		return []byte(trimOneSpace(payload)), false, nil
	}
}

// decodeText applies the text decoding policy to raw value bytes. It
// never fails: bytes that do not decode under the configured encoding
// are returned unchanged as a byte value.
func (p *Parser) decodeText(raw []byte) Value {
	if !p.decode {
		return BytesValue(raw)
	}
	if p.enc == nil {
		if utf8.Valid(raw) {
			return TextValue(string(raw))
		}
		return BytesValue(raw)
	}
	out, err := p.enc.NewDecoder().Bytes(raw)
	if err != nil || !utf8.Valid(out) {
		return BytesValue(raw)
	}
	return TextValue(string(out))
}

// splitAttrLine splits "name: value", "name:: base64" or "name:< url".
// ok is false when the line has no colon or an empty attribute name.
func splitAttrLine(line string) (name string, form byte, payload string, ok bool) {
	colon := strings.IndexByte(line, ':')
	if colon <= 0 {
		return "", 0, "", false
	}
	name = line[:colon]
	rest := line[colon+1:]
	switch {
	case strings.HasPrefix(rest, ":"):
		return name, formBase64, rest[1:], true
	case strings.HasPrefix(rest, "<"):
		return name, formURL, rest[1:], true
	default:
		return name, formPlain, rest, true
	}
}

// trimOneSpace strips at most one leading space from a value payload,
// the space the writer puts after the separator.
func trimOneSpace(s string) string {
	if strings.HasPrefix(s, " ") {
		return s[1:]
	}
	return s
}

// snippet quotes s for error details, truncating long lines.
func snippet(s string) string {
	const max = 60
	if len(s) > max {
		return fmt.Sprintf("%q...", s[:max])
	}
	return fmt.Sprintf("%q", s)
}
