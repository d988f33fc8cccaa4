// Package lineinput provides the blocking line readers used by interactive menus:
// a readline-backed terminal reader with an editable seed and recall history,
// and a plain buffered reader for redirected stdin.
package lineinput

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrCanceled is returned by ReadLine when the user abandons the current line (Ctrl+C).
// Ending the whole session (Ctrl+D) is reported as io.EOF.
var ErrCanceled = errors.New("line input canceled")

// Reader is the line-input capability consumed by the menus.
type Reader interface {
	ReadLine(prompt, seed string) (string, error)
	AddHistory(entry string) error
	ClearHistory()
	Close() error
}

// compile-time interface compliance checks
var (
	_ Reader = (*Terminal)(nil)
	_ Reader = (*Plain)(nil)
)

// New returns a Terminal reader when stdin is a terminal and a Plain reader otherwise.
// historyLimit bounds the in-memory recall history of the terminal reader.
func New(historyLimit int) (Reader, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return NewPlain(os.Stdin, os.Stdout), nil
	}
	return NewTerminal(historyLimit)
}

// IsEOF reports whether err means the user asked to end the session.
func IsEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
