package golden

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Extension is the file extension of golden transcripts.
const Extension = ".golden"

// ErrNoGolden indicates that no golden file exists for an example.
var ErrNoGolden = errors.New("golden file not found")

var unsafeChars = regexp.MustCompile(`[^a-z0-9]+`)

// Store reads and writes golden files in one directory.
type Store struct {
	Dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// FileName maps an example name to its golden file name,
// e.g. "Factory Method" -> "factory-method.golden".
func FileName(name string) string {
	slug := unsafeChars.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "unnamed"
	}
	return slug + Extension
}

// Path returns the golden file path for an example name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, FileName(name))
}

// Read returns the stored transcript without its trailing newline.
func (s *Store) Read(name string) (string, error) {
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNoGolden, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read golden file %s: %w", path, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Write stores a transcript, creating the directory when needed.
func (s *Store) Write(name, transcript string) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create golden directory: %w", err)
	}

	path := s.Path(name)
	if err := os.WriteFile(path, []byte(transcript+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to write golden file: %w", err)
	}
	return path, nil
}

// List returns the stored golden file names without extension, sorted.
func (s *Store) List() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.Dir, "*"+Extension))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(match), Extension))
	}
	return names, nil
}
