package filemenu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCandidates() Candidates {
	return Candidates{
		Defaults: []string{"a/", "b/"},
		Dirs:     []string{"sub/", "old/"},
		Files:    []string{"run_001.map", "notes.map"},
	}
}

func TestCandidatesIndexSpace(t *testing.T) {
	c := testCandidates()
	assert.Equal(t, 6, c.Len())

	want := []struct {
		kind  EntryKind
		entry string
	}{
		{EntryDefault, "a/"},
		{EntryDefault, "b/"},
		{EntryDir, "sub/"},
		{EntryDir, "old/"},
		{EntryFile, "run_001.map"},
		{EntryFile, "notes.map"},
	}
	for i, w := range want {
		kind, entry, ok := c.At(i)
		assert.True(t, ok, "index %d", i)
		assert.Equal(t, w.kind, kind, "index %d", i)
		assert.Equal(t, w.entry, entry, "index %d", i)
	}

	_, _, ok := c.At(c.Len())
	assert.False(t, ok)
	_, _, ok = c.At(-1)
	assert.False(t, ok)
}

func TestCandidatesEmptySections(t *testing.T) {
	c := Candidates{Defaults: []string{"a/"}, Files: []string{"x.map"}}
	kind, entry, ok := c.At(1)
	assert.True(t, ok)
	assert.Equal(t, EntryFile, kind)
	assert.Equal(t, "x.map", entry)
}

func TestParse(t *testing.T) {
	cfg := DefaultConfig()
	cands := testCandidates()

	tests := []struct {
		name string
		line string
		want Selection
	}{
		{"empty", "", Selection{}},
		{"default dir", "1", Selection{Dir: "b/", DefaultDir: true}},
		{"sub dir", "2", Selection{Dir: "sub/"}},
		{"sequential file collapses", "4", Selection{File: "run_"}},
		{"plain file", "5", Selection{File: "notes.map"}},
		{"out of range", "6", Selection{OutOfRange: true}},
		{"huge number", "99999999999999999999999", Selection{OutOfRange: true}},
		{"negative is text", "-1", Selection{File: "-1"}},
		{"dir fragment", "runs/", Selection{Dir: "runs/"}},
		{"parent dir", "../", Selection{Dir: "../"}},
		{"dir and file", "runs/night_", Selection{Dir: "runs/", File: "night_"}},
		{"nested split at last slash", "x/y/z.map", Selection{Dir: "x/y/", File: "z.map"}},
		{"absolute", "/tmp/f", Selection{Dir: "/tmp/", File: "f"}},
		{"file only", "notes", Selection{File: "notes"}},
		{"sequential text", "run_", Selection{File: "run_"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.Parse(tt.line, cands))
		})
	}
}

func TestNormalize(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "my_first_run", cfg.Normalize("  my first   run "))
	assert.Equal(t, "run_", cfg.Normalize("run_"))
	assert.Equal(t, "", cfg.Normalize(" \t "))
}
