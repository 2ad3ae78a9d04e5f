package golden

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternlab/internal/runner"
	"patternlab/internal/testutils"
	"patternlab/pkg/patterntypes"
)

func scenarioReport(t *testing.T) *runner.Report {
	t.Helper()
	ids := testutils.NewSequentialIDs()
	r := runner.New(runner.WithIDGenerator(ids.Next), runner.WithClock(testutils.NewSteppingClock().Now))
	return r.RunEach(testutils.ScenarioExamples())
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single word", "Singleton", "singleton.golden"},
		{"spaces", "Factory Method", "factory-method.golden"},
		{"punctuation", "SRP: invoices / printing", "srp-invoices-printing.golden"},
		{"only symbols", "!!!", "unnamed.golden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FileName(tt.input))
		})
	}
}

func TestNormalizer(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{"trailing whitespace", []string{"hello   ", "world\t"}, "hello\nworld"},
		{"ansi styling", []string{"\x1b[1;32mok\x1b[0m"}, "ok"},
		{"memory address", []string{"instance at 0xc000012345"}, "instance at <memory_address>"},
		{"uuid", []string{"run 123e4567-e89b-42d3-a456-426614174000"}, "run <uuid>"},
		{"trailing empty lines", []string{"a", "", ""}, "a"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestStore_ReadMissing(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Read("Singleton")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoGolden)
}

func TestStore_WriteReadList(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "golden")
	store := NewStore(dir)

	path, err := store.Write("Factory Method", "line one\nline two")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "factory-method.golden"), path)

	assert.Equal(t, "line one\nline two\n", testutils.ReadFile(t, path))

	content, err := store.Read("Factory Method")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", content)

	_, err = store.Write("Builder", "built")
	require.NoError(t, err)

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"builder", "factory-method"}, names)
}

func TestSuite_Transcript(t *testing.T) {
	suite := NewSuite(t.TempDir())
	report := scenarioReport(t)

	assert.Equal(t, "one instance", suite.Transcript(report.Results[0]))
	assert.Equal(t, "starting Adapter\nFAIL: boom", suite.Transcript(report.Results[2]))
}

func TestSuite_RecordThenVerify(t *testing.T) {
	dir := t.TempDir()
	suite := NewSuite(dir)
	report := scenarioReport(t)

	paths, err := suite.Record(report)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	for _, path := range paths {
		assert.FileExists(t, path)
	}

	verification, err := suite.Verify(scenarioReport(t))
	require.NoError(t, err)
	assert.True(t, verification.Passed())
	assert.Equal(t, 3, verification.Count(StatusMatch))
}

func TestSuite_VerifyDetectsMismatchAndMissing(t *testing.T) {
	dir := t.TempDir()
	suite := NewSuite(dir)

	_, err := suite.Record(scenarioReport(t))
	require.NoError(t, err)
	require.NoError(t, os.Remove(suite.Store().Path("Builder")))

	changed := runner.New().RunEach([]patterntypes.Example{
		testutils.PassingExample("Singleton", patterntypes.Creational, "two instances"),
		testutils.PassingExample("Builder", patterntypes.Creational, "built"),
	})

	verification, err := suite.Verify(changed)
	require.NoError(t, err)
	assert.False(t, verification.Passed())
	require.Len(t, verification.Outcomes, 2)

	assert.Equal(t, StatusMismatch, verification.Outcomes[0].Status)
	assert.Equal(t, "one instance", verification.Outcomes[0].Expected)
	assert.Equal(t, "two instances", verification.Outcomes[0].Actual)

	assert.Equal(t, StatusMissing, verification.Outcomes[1].Status)
	assert.Empty(t, verification.Outcomes[1].Expected)
}

func TestSuite_NameCollision(t *testing.T) {
	dir := t.TempDir()
	suite := NewSuite(dir)
	report := runner.New().RunEach([]patterntypes.Example{
		testutils.PassingExample("Factory Method", patterntypes.Creational, "a"),
		testutils.PassingExample("factory-method", patterntypes.Creational, "b"),
	})

	paths, err := suite.Record(report)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNameCollision)
	assert.Empty(t, paths)
	assert.NoFileExists(t, filepath.Join(dir, "factory-method.golden"))

	var collision *CollisionError
	require.ErrorAs(t, err, &collision)
	assert.Equal(t, "factory-method.golden", collision.File)
	assert.Equal(t, "Factory Method", collision.First)
	assert.Equal(t, "factory-method", collision.Second)

	_, err = suite.Verify(report)
	assert.ErrorIs(t, err, ErrNameCollision)
}

func TestSuite_Orphans(t *testing.T) {
	suite := NewSuite(t.TempDir())

	orphans, err := suite.Orphans([]string{"Singleton"})
	require.NoError(t, err)
	assert.Empty(t, orphans)

	_, err = suite.Record(scenarioReport(t))
	require.NoError(t, err)
	_, err = suite.Store().Write("Retired Pattern", "gone")
	require.NoError(t, err)

	orphans, err = suite.Orphans([]string{"Singleton", "Builder", "Adapter"})
	require.NoError(t, err)
	assert.Equal(t, []string{"retired-pattern.golden"}, orphans)

	orphans, err = suite.Orphans([]string{"Singleton"})
	require.NoError(t, err)
	assert.Equal(t, []string{"adapter.golden", "builder.golden", "retired-pattern.golden"}, orphans)
}

func TestWriteDiff(t *testing.T) {
	t.Run("identical", func(t *testing.T) {
		var buf bytes.Buffer
		WriteDiff(&buf, "Singleton", "same", "same")
		assert.Equal(t, "=== Example: Singleton ===\nNo differences found\n", buf.String())
	})

	t.Run("different", func(t *testing.T) {
		var buf bytes.Buffer
		WriteDiff(&buf, "Singleton", "one instance", "two instances")

		out := buf.String()
		assert.Contains(t, out, "--- Expected ---")
		assert.Contains(t, out, "   1│one instance")
		assert.Contains(t, out, "   1│two instances")
		assert.Contains(t, out, "--- Diff ---")
		assert.Contains(t, out, "- ")
		assert.Contains(t, out, "+ ")
	})

	t.Run("long common text is truncated on rune boundaries", func(t *testing.T) {
		common := strings.Repeat("é", 60)
		var buf bytes.Buffer
		WriteDiff(&buf, "Builder", common+"x", common+"y")

		out := buf.String()
		assert.True(t, utf8.ValidString(out))
		assert.Contains(t, out, "  \""+strings.Repeat("é", 47)+"\"...")
	})
}
