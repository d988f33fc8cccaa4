package filemenu

import (
	"errors"
	"io"

	"github.com/Bibi40k/filemenu/internal/utils"
	"github.com/Bibi40k/filemenu/pkg/lineinput"
)

// Run shows the file menu and returns the selected path.
//
// All errors are handled here: they are reported on the menu output and Run
// returns ok == false. Without WithLineReader, Run reads from the terminal
// (or plain stdin when it is redirected).
func Run(saving bool, dirs []string, opts ...Option) (path string, ok bool) {
	m := newMenu(opts...)

	if m.reader == nil {
		r, err := lineinput.New(m.cfg.HistoryLimit)
		if err != nil {
			report(m.out, err)
			return "", false
		}
		defer func() { _ = r.Close() }()
		m.reader = r
	}
	if err := m.cfg.Validate(); err != nil {
		report(m.out, err)
		return "", false
	}

	path, err := m.Select(saving, dirs)
	if err != nil {
		report(m.out, err)
		return "", false
	}
	return path, true
}

// report prints a human-readable notice for an error that ended the menu.
func report(w io.Writer, err error) {
	switch {
	case errors.Is(err, ErrManuallyTerminated):
		notice(w, "File selection has been manually terminated with CTRL+D.")
	case errors.Is(err, ErrFileDeleted):
		notice(w, "Specified file has been deleted, no file selected.")
	default:
		errorColor.Fprintf(w, "Error: %v\n", err)
	}
}

const placeholderContent = "This is just a test file, please delete.\n"

// CreatePlaceholderFile writes a small marker file at path, replacing any
// existing content atomically.
func CreatePlaceholderFile(path string) error {
	return utils.LockAndWrite(path, []byte(placeholderContent))
}
