package filemenu

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects which counter Derive returns.
type Mode int

const (
	// ModeNext is one past the highest existing counter (saving).
	ModeNext Mode = iota
	// ModeLast is the highest existing counter (loading).
	ModeLast
)

// ModeFor maps the save/load flag to a derive mode.
func ModeFor(saving bool) Mode {
	if saving {
		return ModeNext
	}
	return ModeLast
}

// SequentialName formats base + zero-padded counter + "." + extension.
// base is expected to end in the separator already.
func (c Config) SequentialName(base string, counter int) string {
	return fmt.Sprintf("%s%0*d.%s", base, c.PaddingWidth, counter, c.Extension)
}

// Derive computes the sequential name for base from the file names of a
// directory listing. With no matching files both modes yield counter 0.
func (c Config) Derive(base string, files []string, mode Mode) (string, error) {
	highest, found := 0, false
	for _, name := range files {
		cnt, ok := c.counterOf(name, base)
		if !ok {
			continue
		}
		if !found || cnt > highest {
			highest = cnt
		}
		found = true
	}

	counter := highest
	if mode == ModeNext && found {
		counter++
	}
	if counter > c.MaxCounter {
		return "", fmt.Errorf("%w: %s counter would be %d, limit %d", ErrSequentialOverflow, base, counter, c.MaxCounter)
	}
	return c.SequentialName(base, counter), nil
}

// Collapse reduces a sequential file name to its base, keeping the trailing
// separator so the result expands again when entered ("run_004.map" -> "run_").
// Names that are not sequential are returned unchanged.
func (c Config) Collapse(name string) string {
	stem, ok := strings.CutSuffix(name, "."+c.Extension)
	if !ok {
		return name
	}
	i := strings.LastIndex(stem, c.sep())
	if i < 0 {
		return name
	}
	cut := i + len(c.sep())
	if !isCounter(stem[cut:], c.PaddingWidth) {
		return name
	}
	return stem[:cut]
}

// counterOf parses the counter of name if name is base followed by exactly
// PaddingWidth digits and the extension.
func (c Config) counterOf(name, base string) (int, bool) {
	prefixLen := len(name) - (len(c.Extension) + 1 + c.PaddingWidth)
	if prefixLen < 0 || name[:prefixLen] != base {
		return 0, false
	}
	if !strings.HasSuffix(name, "."+c.Extension) {
		return 0, false
	}
	digits := name[prefixLen : prefixLen+c.PaddingWidth]
	if !isCounter(digits, c.PaddingWidth) {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isCounter(s string, width int) bool {
	if len(s) != width {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
