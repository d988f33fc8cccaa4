package filemenu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestRenderCandidates(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Columns = 2

	renderCandidates(&buf, cfg, testCandidates())
	out := buf.String()

	assert.Contains(t, out, "Default directories:")
	assert.Contains(t, out, "Sub-directories:")
	assert.Contains(t, out, "Files:")
	assert.Contains(t, out, "  0: a/")
	assert.Contains(t, out, "  3: old/")
	assert.Contains(t, out, "  5: notes.map")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 6, "three headings and one row of two per section")
}

func TestRenderEmptyDirectory(t *testing.T) {
	var buf bytes.Buffer
	renderCandidates(&buf, DefaultConfig(), Candidates{Defaults: []string{"a/"}})
	assert.Contains(t, buf.String(), "(empty directory)")
	assert.NotContains(t, buf.String(), "Files:")
}

func TestFitCell(t *testing.T) {
	assert.Equal(t, "ab   ", fitCell("ab", 5))
	assert.Equal(t, 5, len([]rune(fitCell("abcdefgh", 5))))
	assert.True(t, strings.HasSuffix(fitCell("abcdefgh", 5), "…"))
}
