package loader

import (
	"bufio"
	"io"
	"strings"
)

// peekLineLimit bounds how far delimiter sniffing looks into the input.
const peekLineLimit = 64 * 1024

// peekReader wraps a reader with non-consuming access to its first line.
type peekReader struct {
	*bufio.Reader
}

func newPeekReader(r io.Reader) *peekReader {
	return &peekReader{bufio.NewReaderSize(r, peekLineLimit)}
}

// peekLine returns the first line of the input without consuming it.
// Inputs shorter than one full line are returned as-is; a completely
// empty input is an error.
func (r *peekReader) peekLine() (string, error) {
	buf, err := r.Peek(peekLineLimit)
	if len(buf) == 0 {
		if err == nil {
			err = io.EOF
		}
		return "", err
	}
	line := string(buf)
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	return line, nil
}
