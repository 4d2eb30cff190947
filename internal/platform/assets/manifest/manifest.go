// Package manifest reads line-oriented asset manifest files.
//
// A manifest is a UTF-8 text file listing one asset path per line, in
// inclusion order. Blank lines and lines starting with "#" are ignored.
package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// MissingError reports a manifest file that does not exist at the
// expected path.
type MissingError struct {
	// Path is the filesystem path where the manifest was expected.
	Path string
}

// Error renders the expected manifest path.
func (e MissingError) Error() string {
	return fmt.Sprintf("asset manifest missing: %s", e.Path)
}

// Read returns the ordered asset entries listed in the manifest at path.
//
// A missing file yields a MissingError carrying the expected path so
// callers can surface where the manifest was looked up.
func Read(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, MissingError{Path: path}
		}
		return nil, fmt.Errorf("open asset manifest %s: %w", path, err)
	}
	defer file.Close()

	entries, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("read asset manifest %s: %w", path, err)
	}
	return entries, nil
}

// ReadFS is Read against an fs.FS, for embedded or test filesystems.
func ReadFS(fsys fs.FS, path string) ([]string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, MissingError{Path: path}
		}
		return nil, fmt.Errorf("open asset manifest %s: %w", path, err)
	}
	defer file.Close()

	entries, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("read asset manifest %s: %w", path, err)
	}
	return entries, nil
}

func parse(r io.Reader) ([]string, error) {
	var entries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
