package runner

import (
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"patternlab/internal/registry"
	"patternlab/internal/testutils"
	"patternlab/pkg/patterntypes"
)

func newTestRunner() *Runner {
	ids := testutils.NewSequentialIDs()
	clock := testutils.NewSteppingClock()
	return New(
		WithLogger(log.New(io.Discard)),
		WithIDGenerator(ids.Next),
		WithClock(clock.Now),
	)
}

func TestRunOne(t *testing.T) {
	tests := []struct {
		name        string
		example     patterntypes.Example
		wantSuccess bool
		wantMessage string
		wantLines   []string
	}{
		{
			name:        "passing example",
			example:     testutils.PassingExample("Singleton", patterntypes.Creational, "same instance: true"),
			wantSuccess: true,
			wantLines:   []string{"same instance: true"},
		},
		{
			name:        "failing example keeps partial output",
			example:     testutils.FailingExample("Adapter", patterntypes.Structural, "boom"),
			wantMessage: "boom",
			wantLines:   []string{"starting Adapter"},
		},
		{
			name:        "panicking with string",
			example:     testutils.PanickingExample("Proxy", patterntypes.Structural, "access denied"),
			wantMessage: "access denied",
		},
		{
			name:        "panicking with error",
			example:     testutils.PanickingExample("State", patterntypes.Behavioral, errors.New("invalid transition")),
			wantMessage: "invalid transition",
		},
		{
			name:        "panicking with other value",
			example:     testutils.PanickingExample("Memento", patterntypes.Behavioral, 42),
			wantMessage: "42",
		},
		{
			name: "failed result without detail",
			example: patterntypes.NewExample("Facade", patterntypes.Structural, func() patterntypes.Result {
				return patterntypes.Result{Lines: []string{"half"}}
			}),
			wantMessage: "example reported failure without detail",
			wantLines:   []string{"half"},
		},
		{
			name: "succeeded flag with failure is a failure",
			example: patterntypes.NewExample("Observer", patterntypes.Behavioral, func() patterntypes.Result {
				return patterntypes.Result{Succeeded: true, Failure: &patterntypes.Failure{Kind: patterntypes.NotFoundError, Message: "no subscriber"}}
			}),
			wantMessage: "no subscriber",
		},
		{
			name:        "missing action",
			example:     patterntypes.Example{Name: "Prototype", Category: patterntypes.Creational},
			wantMessage: "example Prototype has no action",
		},
	}

	r := newTestRunner()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result patterntypes.Result
			require.NotPanics(t, func() { result = r.RunOne(tt.example) })

			assert.Equal(t, tt.wantSuccess, result.Succeeded)
			if tt.wantSuccess {
				assert.Nil(t, result.Failure)
			} else {
				require.NotNil(t, result.Failure)
				assert.Equal(t, patterntypes.ExecutionError, result.Failure.Kind)
				assert.Equal(t, tt.wantMessage, result.Failure.Message)
			}
			if tt.wantLines != nil {
				assert.Equal(t, tt.wantLines, result.Lines)
			}
		})
	}
}

func TestRunAll_Scenario(t *testing.T) {
	reg := registry.New()
	registry.MustRegister(reg, testutils.ScenarioExamples()...)

	report := newTestRunner().RunAll(reg, 0)

	assert.Equal(t, "00000001-0000-4000-8000-000000000001", report.RunID)
	assert.Equal(t, 2, report.PassCount())
	assert.Equal(t, 1, report.FailCount())
	assert.False(t, report.Filtered())
	require.Len(t, report.Results, 3)

	names := make([]string, 0, len(report.Results))
	for _, entry := range report.Results {
		names = append(names, entry.Name)
		assert.Equal(t, time.Second, entry.Duration)
	}
	assert.Equal(t, []string{"Singleton", "Builder", "Adapter"}, names)

	failures := report.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "Adapter", failures[0].Name)
	assert.Equal(t, "boom", failures[0].Result.Message())
}

func TestRunAll_CategoryFilter(t *testing.T) {
	reg := registry.New()
	registry.MustRegister(reg, testutils.ScenarioExamples()...)

	r := newTestRunner()

	creational := r.RunAll(reg, patterntypes.Creational)
	assert.True(t, creational.Filtered())
	assert.Equal(t, 2, creational.PassCount())
	assert.Equal(t, 0, creational.FailCount())

	solid := r.RunAll(reg, patterntypes.Solid)
	assert.Empty(t, solid.Results)
	assert.Equal(t, 0, solid.PassCount())
	assert.Equal(t, 0, solid.FailCount())
}

func TestRunAll_UndeclaredCategoryRunsNothing(t *testing.T) {
	calls := 0
	reg := registry.New()
	registry.MustRegister(reg, testutils.CountingExample("Counter", patterntypes.Creational, &calls))

	report := newTestRunner().RunAll(reg, patterntypes.Category(99))

	assert.True(t, report.Filtered())
	assert.Empty(t, report.Results)
	assert.Zero(t, calls)
}

func TestRunAll_EmptyRegistry(t *testing.T) {
	report := newTestRunner().RunAll(registry.New(), 0)

	assert.NotNil(t, report.Results)
	assert.Empty(t, report.Results)
	assert.Equal(t, 0, report.PassCount())
	assert.Equal(t, 0, report.FailCount())
}

func TestRunAll_NoRetries(t *testing.T) {
	calls := 0
	reg := registry.New()
	registry.MustRegister(reg,
		testutils.CountingExample("Strategy", patterntypes.Behavioral, &calls),
		testutils.FailingExample("Decorator", patterntypes.Structural, "wrapped too deep"),
	)

	report := newTestRunner().RunAll(reg, 0)

	assert.Equal(t, 1, calls)
	assert.Len(t, report.Results, 2)
	assert.Equal(t, 1, report.FailCount())
}

func TestRunEach(t *testing.T) {
	report := newTestRunner().RunEach([]patterntypes.Example{
		testutils.FailingExample("Builder", patterntypes.Creational, "missing customer"),
		testutils.PassingExample("Facade", patterntypes.Structural),
	})

	require.Len(t, report.Results, 2)
	assert.Equal(t, "Builder", report.Results[0].Name)
	assert.Equal(t, 1, report.PassCount())
}

func TestNew_DefaultsGenerateUUIDs(t *testing.T) {
	r := New(WithLogger(log.New(io.Discard)))

	first := r.RunAll(registry.New(), 0)
	second := r.RunAll(registry.New(), 0)

	assert.Len(t, first.RunID, 36)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRunAll_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		outcomes := rapid.SliceOfN(rapid.IntRange(0, 2), 0, 30).Draw(rt, "outcomes")

		reg := registry.New()
		expectedFailures := 0
		for i, outcome := range outcomes {
			name := fmt.Sprintf("example-%d", i)
			category := patterntypes.Categories()[i%len(patterntypes.Categories())]
			switch outcome {
			case 0:
				require.NoError(rt, reg.Register(testutils.PassingExample(name, category)))
			case 1:
				require.NoError(rt, reg.Register(testutils.FailingExample(name, category, "failed "+name)))
				expectedFailures++
			default:
				require.NoError(rt, reg.Register(testutils.PanickingExample(name, category, name)))
				expectedFailures++
			}
		}

		report := newTestRunner().RunAll(reg, 0)

		assert.Len(rt, report.Results, len(outcomes))
		assert.Equal(rt, len(outcomes)-expectedFailures, report.PassCount())
		assert.Equal(rt, expectedFailures, report.FailCount())
		for i, entry := range report.Results {
			assert.Equal(rt, fmt.Sprintf("example-%d", i), entry.Name)
			assert.Equal(rt, entry.Result.Succeeded, entry.Result.Failure == nil)
			if !entry.Result.Succeeded {
				assert.NotEmpty(rt, entry.Result.Failure.Message)
			}
		}
	})
}
