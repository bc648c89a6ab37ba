package console

import (
	"bufio"
	"errors"
	"io"
)

// LineReader reads newline-terminated lines from an io.Reader.
// It satisfies game.LineReader.
type LineReader struct {
	r    *bufio.Reader
	done bool
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line with its terminator. A final line without
// a terminator is returned once before io.EOF. Errors are sticky.
func (l *LineReader) ReadLine() (string, error) {
	if l.done {
		return "", io.EOF
	}
	line, err := l.r.ReadString('\n')
	if err == nil {
		return line, nil
	}
	l.done = true
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return "", err
}
