package ldif

import (
	"bufio"
	"io"
	"strings"
)

// logicalLine is one unfolded LDIF line together with the position of
// the raw line where it began, used for error reporting.
type logicalLine struct {
	text   string
	number int   // 1-based source line number
	offset int64 // byte offset of the first raw line
}

// lineReader reads raw newline-delimited lines from a byte stream and
// joins RFC 2849 continuation lines (raw lines starting with a single
// space) into logical lines. A trailing carriage return before the
// newline is tolerated. Comment and blank lines pass through without
// classification so that positions stay accurate; filtering them is the
// parser's concern. The reader never writes to the source.
type lineReader struct {
	br    *bufio.Reader
	bytes int64 // raw bytes consumed, including line terminators
	lines int   // logical lines produced
	raw   int   // raw lines consumed

	// one-line pushback, used while probing for continuation lines
	peeked     bool
	peekText   string
	peekNumber int
	peekOffset int64

	err error // deferred terminal read error
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReader(r)}
}

// nextRaw reads one raw line with its terminator stripped. io.EOF is
// returned only once no data remains; a final line without a newline is
// still delivered.
func (lr *lineReader) nextRaw() (text string, number int, offset int64, err error) {
	if lr.peeked {
		lr.peeked = false
		return lr.peekText, lr.peekNumber, lr.peekOffset, nil
	}
	if lr.err != nil {
		return "", 0, 0, lr.err
	}
	offset = lr.bytes
	line, err := lr.br.ReadString('\n')
	lr.bytes += int64(len(line))
	if err != nil {
		if err != io.EOF || line == "" {
			lr.err = err
			return "", 0, 0, err
		}
		// Final line lacked a terminator; deliver it and end next time.
		lr.err = io.EOF
	}
	lr.raw++
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, lr.raw, offset, nil
}

// unread pushes one raw line back for the next nextRaw call.
func (lr *lineReader) unread(text string, number int, offset int64) {
	lr.peeked = true
	lr.peekText = text
	lr.peekNumber = number
	lr.peekOffset = offset
}

// next returns the next logical line with continuations joined. The
// continuation content is appended verbatim minus its single leading
// space. Returns io.EOF when the stream is exhausted.
func (lr *lineReader) next() (logicalLine, error) {
	text, number, offset, err := lr.nextRaw()
	if err != nil {
		return logicalLine{}, err
	}
	for {
		cont, n, o, err := lr.nextRaw()
		if err == io.EOF {
			break
		}
		if err != nil {
			return logicalLine{}, err
		}
		if len(cont) > 0 && cont[0] == ' ' {
			text += cont[1:]
			continue
		}
		lr.unread(cont, n, o)
		break
	}
	lr.lines++
	return logicalLine{text: text, number: number, offset: offset}, nil
}
