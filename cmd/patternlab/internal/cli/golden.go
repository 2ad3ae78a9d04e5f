package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"patternlab/internal/golden"
	"patternlab/internal/registry"
	"patternlab/internal/runner"
	"patternlab/pkg/patterntypes"
)

// addGoldenCommands adds golden transcript commands under "golden".
func (app *App) addGoldenCommands(rootCmd *cobra.Command) {
	goldenCmd := &cobra.Command{
		Use:   "golden",
		Short: "Record and verify golden transcripts",
		Long: `Golden files store the expected transcript of each example under
--golden-dir. Record them once, then verify later runs against them.`,
	}

	recordCmd := &cobra.Command{
		Use:   "record [name...]",
		Short: "Record golden transcripts",
		Long: `Run the selected examples and save their normalized transcripts as
golden files, replacing existing ones.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return app.recordGolden(args)
		},
	}

	verifyCmd := &cobra.Command{
		Use:   "verify [name...]",
		Short: "Verify transcripts against golden files",
		Long: `Run the selected examples and compare their transcripts with the
recorded golden files. Returns exit code 0 if all match, 1 otherwise.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return app.verifyGolden(args)
		},
	}

	diffCmd := &cobra.Command{
		Use:   "diff <name>",
		Short: "Show differences between golden and current transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.diffGolden(args[0])
		},
	}

	goldenCmd.AddCommand(recordCmd, verifyCmd, diffCmd)
	rootCmd.AddCommand(goldenCmd)
}

// goldenReport runs the selected examples. The returned catalog names are
// set only when the whole catalog was selected.
func (app *App) goldenReport(names []string) (*runner.Report, []string, error) {
	category, err := app.category()
	if err != nil {
		return nil, nil, err
	}
	reg, err := app.loadCatalog()
	if err != nil {
		return nil, nil, err
	}
	report, err := app.execute(reg, names, category)
	if err != nil {
		return nil, nil, err
	}
	if len(names) == 0 && category == 0 {
		return report, reg.Names(), nil
	}
	return report, nil, nil
}

func (app *App) recordGolden(names []string) error {
	report, _, err := app.goldenReport(names)
	if err != nil {
		return err
	}

	suite := golden.NewSuite(app.Config.GoldenDir)
	paths, err := suite.Record(report)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	for _, path := range paths {
		app.printf("recorded %s\n", path)
	}
	app.printf("%d golden file(s) written to %s\n", len(paths), app.Config.GoldenDir)
	return nil
}

func (app *App) verifyGolden(names []string) error {
	report, catalog, err := app.goldenReport(names)
	if err != nil {
		return err
	}

	suite := golden.NewSuite(app.Config.GoldenDir)
	verification, err := suite.Verify(report)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	for _, outcome := range verification.Outcomes {
		switch outcome.Status {
		case golden.StatusMatch:
			app.printf("MATCH %s\n", outcome.Name)
		case golden.StatusMismatch:
			app.printf("MISMATCH %s\n", outcome.Name)
		case golden.StatusMissing:
			app.printf("MISSING %s\n", outcome.Name)
		}
	}
	app.printf("Golden: %d matched, %d mismatched, %d missing\n",
		verification.Count(golden.StatusMatch),
		verification.Count(golden.StatusMismatch),
		verification.Count(golden.StatusMissing))

	// Stale files are reported but do not fail the verification.
	if catalog != nil {
		orphans, err := suite.Orphans(catalog)
		if err != nil {
			return &ExitError{Code: ExitFailure, Message: err.Error()}
		}
		for _, file := range orphans {
			app.errorf("ORPHANED %s\n", file)
		}
	}

	if !verification.Passed() {
		app.errorf("run 'patternlab golden diff <name>' to inspect a mismatch\n")
		return failed()
	}
	return nil
}

func (app *App) diffGolden(name string) error {
	reg, err := app.loadCatalog()
	if err != nil {
		return err
	}
	example, err := reg.Get(name)
	if errors.Is(err, registry.ErrNotFound) {
		return usageError("%v", err)
	}
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	report := runner.New().RunEach([]patterntypes.Example{example})

	suite := golden.NewSuite(app.Config.GoldenDir)
	expected, err := suite.Store().Read(example.Name)
	if errors.Is(err, golden.ErrNoGolden) {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("no golden file for %s; run 'patternlab golden record' first", example.Name)}
	}
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	actual := suite.Transcript(report.Results[0])
	golden.WriteDiff(app.stdout, example.Name, expected, actual)
	if expected != actual {
		return failed()
	}
	return nil
}
