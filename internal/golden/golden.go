// Package golden records example transcripts as golden files and verifies
// later runs against them.
package golden

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/sergi/go-diff/diffmatchpatch"

	"patternlab/internal/logger"
	"patternlab/internal/runner"
)

// Status is the verification outcome of one example.
type Status string

const (
	// StatusMatch means the transcript equals the golden file.
	StatusMatch Status = "match"
	// StatusMismatch means the transcript differs from the golden file.
	StatusMismatch Status = "mismatch"
	// StatusMissing means no golden file was recorded for the example.
	StatusMissing Status = "missing"
)

// Outcome is the verification result of one example.
type Outcome struct {
	Name     string
	Status   Status
	Expected string
	Actual   string
}

// Verification collects outcomes in report order.
type Verification struct {
	Outcomes []Outcome
}

// Passed reports whether every outcome matched.
func (v *Verification) Passed() bool {
	for _, o := range v.Outcomes {
		if o.Status != StatusMatch {
			return false
		}
	}
	return true
}

// Count returns the number of outcomes with the given status.
func (v *Verification) Count(status Status) int {
	count := 0
	for _, o := range v.Outcomes {
		if o.Status == status {
			count++
		}
	}
	return count
}

// Suite records and verifies golden transcripts.
type Suite struct {
	store      *Store
	normalizer *Normalizer
	logger     *log.Logger
}

// NewSuite creates a suite storing golden files in dir.
func NewSuite(dir string) *Suite {
	return &Suite{
		store:      NewStore(dir),
		normalizer: NewNormalizer(),
		logger:     logger.NewStyledLogger("Golden"),
	}
}

// Store returns the underlying golden file store.
func (s *Suite) Store() *Store {
	return s.store
}

// Transcript returns the normalized transcript of a report entry: the
// captured lines, followed by a "FAIL: <message>" line for failures.
func (s *Suite) Transcript(entry runner.Entry) string {
	lines := append([]string{}, entry.Result.Lines...)
	if !entry.Result.Succeeded {
		lines = append(lines, "FAIL: "+entry.Result.Message())
	}
	return s.normalizer.Normalize(lines)
}

// ErrNameCollision indicates that two examples map to the same golden file.
var ErrNameCollision = errors.New("golden file name collision")

// CollisionError names two examples whose golden files would overwrite
// each other.
type CollisionError struct {
	File   string
	First  string
	Second string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("examples %q and %q share golden file %s", e.First, e.Second, e.File)
}

// Is matches ErrNameCollision.
func (e *CollisionError) Is(target error) bool {
	return target == ErrNameCollision
}

// checkCollisions fails when two entries of report share a golden file.
func checkCollisions(report *runner.Report) error {
	owners := make(map[string]string, len(report.Results))
	for _, entry := range report.Results {
		file := FileName(entry.Name)
		if first, taken := owners[file]; taken {
			return &CollisionError{File: file, First: first, Second: entry.Name}
		}
		owners[file] = entry.Name
	}
	return nil
}

// Record writes one golden file per report entry and returns the paths.
// Nothing is written when two entries map to the same file.
func (s *Suite) Record(report *runner.Report) ([]string, error) {
	if err := checkCollisions(report); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(report.Results))
	for _, entry := range report.Results {
		path, err := s.store.Write(entry.Name, s.Transcript(entry))
		if err != nil {
			return paths, fmt.Errorf("record %s: %w", entry.Name, err)
		}
		s.logger.Debug("Recorded golden file", "example", entry.Name, "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// Verify compares every report entry with its golden file.
func (s *Suite) Verify(report *runner.Report) (*Verification, error) {
	if err := checkCollisions(report); err != nil {
		return nil, err
	}

	verification := &Verification{Outcomes: make([]Outcome, 0, len(report.Results))}

	for _, entry := range report.Results {
		outcome := Outcome{Name: entry.Name, Actual: s.Transcript(entry)}

		expected, err := s.store.Read(entry.Name)
		switch {
		case errors.Is(err, ErrNoGolden):
			outcome.Status = StatusMissing
		case err != nil:
			return nil, err
		case expected == outcome.Actual:
			outcome.Status = StatusMatch
			outcome.Expected = expected
		default:
			outcome.Status = StatusMismatch
			outcome.Expected = expected
		}

		if outcome.Status != StatusMatch {
			s.logger.Warn("Golden mismatch", "example", entry.Name, "status", outcome.Status)
		}
		verification.Outcomes = append(verification.Outcomes, outcome)
	}

	return verification, nil
}

// Orphans returns the golden files in the store, sorted, that belong to
// none of the given example names.
func (s *Suite) Orphans(names []string) ([]string, error) {
	stored, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list golden files: %w", err)
	}

	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[FileName(name)] = true
	}

	var orphans []string
	for _, slug := range stored {
		if file := slug + Extension; !known[file] {
			orphans = append(orphans, file)
		}
	}
	return orphans, nil
}

// WriteDiff writes a detailed comparison between expected and actual.
func WriteDiff(w io.Writer, name, expected, actual string) {
	fmt.Fprintf(w, "=== Example: %s ===\n", name)

	if expected == actual {
		fmt.Fprintln(w, "No differences found")
		return
	}

	fmt.Fprintln(w, "\n--- Expected ---")
	writeNumberedLines(w, expected)

	fmt.Fprintln(w, "\n--- Actual ---")
	writeNumberedLines(w, actual)

	fmt.Fprintln(w, "\n--- Diff ---")
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(w, "- %q\n", diff.Text)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(w, "+ %q\n", diff.Text)
		case diffmatchpatch.DiffEqual:
			if utf8.RuneCountInString(diff.Text) > 50 {
				fmt.Fprintf(w, "  %q...\n", string([]rune(diff.Text)[:47]))
			} else {
				fmt.Fprintf(w, "  %q\n", diff.Text)
			}
		}
	}
}

func writeNumberedLines(w io.Writer, content string) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		fmt.Fprintf(w, "%4d│%s\n", i+1, line)
	}
}
