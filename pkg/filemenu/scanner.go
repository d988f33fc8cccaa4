package filemenu

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

const dirSeparator = "/"

// Listing is the snapshot of one directory: eligible files and sub-directories.
// Sub-directories carry a trailing "/". Order follows the directory enumeration.
type Listing struct {
	Files []string
	Dirs  []string
}

// Scan lists the immediate entries of dir. Files are kept only when their
// extension equals ext. A missing path or a path that is not a directory
// yields an empty listing; any other fault is returned.
func Scan(dir, ext string) (Listing, error) {
	var out Listing

	info, err := os.Stat(filepath.Clean(dir))
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return out, nil
	}
	if err != nil {
		return out, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return out, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return out, fmt.Errorf("read dir %s: %w", dir, err)
	}
	for _, e := range entries {
		name := e.Name()
		isDir := e.IsDir()
		if e.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(filepath.Join(dir, name))
			if err != nil {
				continue // dangling link
			}
			isDir = target.IsDir()
			if !isDir && !target.Mode().IsRegular() {
				continue
			}
		} else if !isDir && !e.Type().IsRegular() {
			continue
		}

		if isDir {
			out.Dirs = append(out.Dirs, name+dirSeparator)
			continue
		}
		if strings.TrimPrefix(filepath.Ext(name), ".") == ext {
			out.Files = append(out.Files, name)
		}
	}
	return out, nil
}

// ensureDir creates dir and its parents when missing.
// created reports whether anything was created.
func ensureDir(dir string) (created bool, err error) {
	info, err := os.Stat(filepath.Clean(dir))
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", dir)
		}
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("create dir %s: %w", dir, err)
	}
	return true, nil
}

// withTrailingSlash makes dir usable as a prefix for file names.
func withTrailingSlash(dir string) string {
	if strings.HasSuffix(dir, dirSeparator) {
		return dir
	}
	return dir + dirSeparator
}

// dirExists reports whether path names a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// fileExists reports whether path names a regular file.
func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}
