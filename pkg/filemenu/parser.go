package filemenu

import (
	"strconv"
	"strings"
)

// Candidates is the numbered listing shown to the user. Indices run
// contiguously over Defaults, then Dirs, then Files.
type Candidates struct {
	Defaults []string
	Dirs     []string
	Files    []string
}

// EntryKind tells which part of the candidate listing an index falls in.
type EntryKind int

const (
	EntryDefault EntryKind = iota
	EntryDir
	EntryFile
)

// Len is the size of the combined index space.
func (c Candidates) Len() int {
	return len(c.Defaults) + len(c.Dirs) + len(c.Files)
}

// At resolves a combined index. ok is false outside [0, Len()).
func (c Candidates) At(i int) (kind EntryKind, entry string, ok bool) {
	if i < 0 {
		return 0, "", false
	}
	if i < len(c.Defaults) {
		return EntryDefault, c.Defaults[i], true
	}
	i -= len(c.Defaults)
	if i < len(c.Dirs) {
		return EntryDir, c.Dirs[i], true
	}
	i -= len(c.Dirs)
	if i < len(c.Files) {
		return EntryFile, c.Files[i], true
	}
	return 0, "", false
}

// Selection is the classification of one input line.
// Empty Dir or File means "no selection" for that part.
type Selection struct {
	Dir        string
	File       string
	DefaultDir bool // Dir is a configured root, not relative to the current directory
	OutOfRange bool
}

// Normalize collapses runs of whitespace into the separator so a typed phrase
// becomes a single-token base name ("my run " -> "my_run").
func (c Config) Normalize(raw string) string {
	return strings.Join(strings.Fields(raw), c.sep())
}

// Parse classifies a normalized input line against the candidate listing.
// Every string maps to some Selection.
func (c Config) Parse(line string, cands Candidates) Selection {
	if line == "" {
		return Selection{}
	}

	if isDigits(line) {
		n, err := strconv.Atoi(line)
		if err != nil {
			return Selection{OutOfRange: true}
		}
		kind, entry, ok := cands.At(n)
		if !ok {
			return Selection{OutOfRange: true}
		}
		switch kind {
		case EntryDefault:
			return Selection{Dir: entry, DefaultDir: true}
		case EntryDir:
			return Selection{Dir: entry}
		default:
			return Selection{File: c.Collapse(entry)}
		}
	}

	if strings.HasSuffix(line, dirSeparator) {
		return Selection{Dir: line}
	}
	if i := strings.LastIndex(line, dirSeparator); i >= 0 {
		return Selection{Dir: line[:i+1], File: line[i+1:]}
	}
	return Selection{File: line}
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
