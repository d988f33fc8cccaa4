package lineinput

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"
)

var ansiEscapeRE = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)
var caretEscapeRE = regexp.MustCompile(`\^\[\[[0-9;?]*[ -/]*[@-~]`)

// Plain reads newline-terminated lines from any io.Reader.
// There is no line editing: a non-empty seed is shown in brackets and an
// empty answer accepts it. History is accepted and ignored.
type Plain struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPlain(in io.Reader, out io.Writer) *Plain {
	return &Plain{in: bufio.NewReader(in), out: out}
}

func (p *Plain) ReadLine(prompt, seed string) (string, error) {
	if seed != "" {
		fmt.Fprintf(p.out, "%s[%s] ", prompt, seed)
	} else {
		fmt.Fprint(p.out, prompt)
	}
	raw, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || raw == "") {
		if err == io.EOF {
			return "", io.EOF
		}
		return "", fmt.Errorf("read line: %w", err)
	}
	line := sanitizeConsoleInput(raw)
	if line == "" {
		return seed, nil
	}
	return line, nil
}

func (p *Plain) AddHistory(string) error { return nil }

func (p *Plain) ClearHistory() {}

func (p *Plain) Close() error { return nil }

func sanitizeConsoleInput(raw string) string {
	raw = ansiEscapeRE.ReplaceAllString(raw, "")
	raw = caretEscapeRE.ReplaceAllString(raw, "")
	raw = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, raw)
	return strings.TrimSpace(raw)
}
