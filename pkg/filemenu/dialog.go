package filemenu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Bibi40k/filemenu/pkg/lineinput"
)

const promptMarker = "> "

var collisionChoices = []string{"r", "m", "c", "n", "d"}

// dialog runs the small sub-prompts of the menu over the shared line reader.
type dialog struct {
	cfg    Config
	reader LineReader
	out    io.Writer
	logger *slog.Logger
}

// confirm asks a yes/no question. Anything but y/yes is treated as a refusal.
func (d dialog) confirm(question string) Outcome {
	fmt.Fprintf(d.out, "%s [y/n]\n", question)
	line, err := d.reader.ReadLine(promptMarker, "")
	switch {
	case err == nil:
	case lineinput.IsEOF(err):
		return OutcomeTerminated
	case errors.Is(err, lineinput.ErrCanceled):
		return OutcomeNeedNewName
	default:
		d.logger.Debug("confirmation read failed", "error", err)
		return OutcomeNeedNewName
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return OutcomeAccept
	default:
		return OutcomeNeedNewName
	}
}

// resolveCollision checks name inside dir. When saving over an existing file
// it asks the user how to proceed; when loading a missing file it asks for a
// new name right away. files is the current listing of dir.
func (d dialog) resolveCollision(dir, name string, files []string, saving bool) (string, Outcome, error) {
	full := filepath.Join(dir, name)
	if dirExists(full) {
		notice(d.out, "%s is a directory, select another name.", full)
		return "", OutcomeNeedNewName, nil
	}
	exists, err := fileExists(full)
	if err != nil {
		return "", 0, err
	}

	if !saving {
		if !exists {
			notice(d.out, "File %s does not exist while loading.", full)
			return "", OutcomeNeedNewName, nil
		}
		return name, OutcomeAccept, nil
	}
	if !exists {
		return name, OutcomeAccept, nil
	}

	notice(d.out, "File %s already exists while saving.", full)
	fmt.Fprintln(d.out, "Input:")
	fmt.Fprintln(d.out, "  'r' to replace the existing file.")
	fmt.Fprintln(d.out, "  'm' to move the existing file to a sequential name.")
	fmt.Fprintln(d.out, "  'c' to save the new file under a sequential name.")
	fmt.Fprintln(d.out, "  'n' to select a new name.")
	fmt.Fprintln(d.out, "  'd' to delete the existing file.")

	d.reader.ClearHistory()
	for _, c := range collisionChoices {
		if err := d.reader.AddHistory(c); err != nil {
			return "", 0, fmt.Errorf("add history: %w", err)
		}
	}

	for {
		line, err := d.reader.ReadLine(promptMarker, "")
		switch {
		case err == nil:
		case lineinput.IsEOF(err):
			return "", OutcomeTerminated, nil
		case errors.Is(err, lineinput.ErrCanceled):
			return "", OutcomeNeedNewName, nil
		default:
			return "", 0, fmt.Errorf("read input: %w", err)
		}

		switch strings.TrimSpace(line) {
		case "r":
			if err := os.Remove(full); err != nil {
				return "", 0, fmt.Errorf("remove %s: %w", full, err)
			}
			d.logger.Info("Replacing file", "path", full)
			return name, OutcomeAccept, nil
		case "m":
			// The moved file takes its sequential slot from the requested name's base.
			moved, err := d.cfg.Derive(d.sequentialBase(name), files, ModeNext)
			if err != nil {
				return "", 0, err
			}
			target := filepath.Join(dir, moved)
			if err := os.Rename(full, target); err != nil {
				return "", 0, fmt.Errorf("rename %s: %w", full, err)
			}
			d.logger.Info("Moved existing file", "from", full, "to", target)
			return name, OutcomeAccept, nil
		case "c":
			renamed, err := d.cfg.Derive(d.sequentialBase(name), files, ModeNext)
			if err != nil {
				return "", 0, err
			}
			if err := d.cfg.checkLength(renamed); err != nil {
				return "", 0, err
			}
			return renamed, OutcomeAccept, nil
		case "n":
			return "", OutcomeNeedNewName, nil
		case "d":
			if err := os.Remove(full); err != nil {
				return "", 0, fmt.Errorf("remove %s: %w", full, err)
			}
			d.logger.Info("File deleted", "path", full)
			return "", OutcomeFileDeleted, nil
		default:
			notice(d.out, "Invalid input, try again.")
		}
	}
}

// sequentialBase turns "notes.map" into "notes_".
func (d dialog) sequentialBase(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + d.cfg.sep()
}

// withExtension appends the configured extension when none is given and
// rewrites a foreign one. A rewrite is reported with ErrUnknownFileType.
func (c Config) withExtension(name string) (string, error) {
	ext := filepath.Ext(name)
	switch ext {
	case "":
		return name + "." + c.Extension, nil
	case "." + c.Extension:
		return name, nil
	default:
		return strings.TrimSuffix(name, ext) + "." + c.Extension,
			fmt.Errorf("%w %q, use %s", ErrUnknownFileType, ext, c.Extension)
	}
}

func (c Config) checkLength(name string) error {
	if n := utf8.RuneCountInString(name); n > c.MaxNameLength {
		return fmt.Errorf("%w: %q has %d characters, limit is %d", ErrNameTooLong, name, n, c.MaxNameLength)
	}
	return nil
}
