package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotDir is returned when the input path exists but is not a directory
var ErrNotDir = errors.New("not a directory")

// Dir handles access to a directory of result snapshots
type Dir struct {
	path string
}

// New creates a new Dir for path
func New(path string) (*Dir, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening input directory %s: %w", path, ErrNotDir)
	}

	return &Dir{
		path: path,
	}, nil
}

// Path returns the resolved directory path
func (d *Dir) Path() string {
	return d.path
}

// List returns the paths of entries whose extension matches one of exts
// (case-insensitive). With sorted false, entries keep the order the
// filesystem returned them in.
func (d *Dir) List(exts []string, sorted bool) ([]string, error) {
	f, err := os.Open(d.path)
	if err != nil {
		return nil, fmt.Errorf("opening input directory: %w", err)
	}
	defer f.Close()

	// File.ReadDir, unlike os.ReadDir, does not sort
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if HasExtension(entry.Name(), exts) {
			names = append(names, entry.Name())
		}
	}

	if sorted {
		sort.Strings(names)
	}

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(d.path, name))
	}
	return paths, nil
}

// Read returns the content of a snapshot file
func (d *Dir) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return string(data), nil
}

// HasExtension reports whether name ends in one of exts, ignoring case.
// Extensions may be given with or without the leading dot.
func HasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if ext == e {
			return true
		}
	}
	return false
}

// Label returns the base name of path without its extension
func Label(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Create creates (or truncates) the output file, making its parent directory
// if it doesn't exist
func Create(path string) (*os.File, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, nil
}

// expandHome expands a leading ~/ to the home directory
func expandHome(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	return path, nil
}
