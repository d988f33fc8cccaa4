package filemenu

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

var (
	headingColor = color.New(color.Bold)
	indexColor   = color.New(color.FgCyan)
	noticeColor  = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func printHelp(w io.Writer, cfg Config, saving bool, cwd string) {
	action := "loaded"
	if saving {
		action = "saved"
	}
	headingColor.Fprintf(w, "Input the name of the file to be %s:\n", action)
	fmt.Fprintln(w, " - Input a number to preselect a directory or file.")
	fmt.Fprintln(w, " - Input a path ending in '/' to change directory (e.g. runs/ or ../).")
	fmt.Fprintf(w, " - A name ending in %s (e.g. test%s) becomes a sequential name.\n", cfg.sep(), cfg.sep())
	fmt.Fprintln(w, " - Press CTRL+C to restart the input.")
	fmt.Fprintln(w, " - Press CTRL+D to exit.")
	fmt.Fprintf(w, "Current dir: %s\n", cwd)
}

// renderCandidates prints the listing in cfg.Columns columns, numbering the
// sections with one contiguous index.
func renderCandidates(w io.Writer, cfg Config, cands Candidates) {
	width := len(strconv.Itoa(cands.Len() - 1))
	if width < 3 {
		width = 3
	}

	next := 0
	section := func(title string, entries []string) {
		if len(entries) == 0 {
			return
		}
		headingColor.Fprintf(w, "%s:\n", title)
		var sb strings.Builder
		for i, entry := range entries {
			if i%cfg.Columns == 0 {
				sb.WriteString("    ")
			}
			sb.WriteString(indexColor.Sprintf("%*d", width, next))
			sb.WriteString(": ")
			sb.WriteString(fitCell(entry, cfg.MaxNameLength))
			if (i+1)%cfg.Columns == 0 || i == len(entries)-1 {
				sb.WriteString("\n")
			} else {
				sb.WriteString(" ")
			}
			next++
		}
		fmt.Fprint(w, sb.String())
	}

	section("Default directories", cands.Defaults)
	section("Sub-directories", cands.Dirs)
	if len(cands.Dirs) == 0 && len(cands.Files) == 0 {
		fmt.Fprintln(w, "    (empty directory)")
		return
	}
	section("Files", cands.Files)
}

func fitCell(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

func notice(w io.Writer, format string, args ...any) {
	noticeColor.Fprintf(w, format+"\n", args...)
}
