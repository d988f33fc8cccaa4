package lineinput

import (
	"os"
	"path/filepath"
	"strings"
)

// completePath lists completions for typed, resolved against root unless typed
// is absolute. Returned candidates are suffixes of the entry names, since
// readline appends them at the cursor.
func completePath(root, typed string) ([][]rune, int) {
	var dir, partial string
	if i := strings.LastIndex(typed, "/"); i >= 0 {
		dir = typed[:i+1]
		partial = typed[i+1:]
	} else {
		partial = typed
	}

	lookup := dir
	if !filepath.IsAbs(dir) {
		lookup = filepath.Join(root, dir)
	}

	entries, err := os.ReadDir(lookup)
	if err != nil {
		return nil, 0
	}

	var matches [][]rune
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, partial) {
			continue
		}
		suffix := name[len(partial):]
		if e.IsDir() {
			suffix += "/"
		}
		matches = append(matches, []rune(suffix))
	}
	return matches, len([]rune(partial))
}
