package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"patternlab/internal/output"
	"patternlab/internal/registry"
	"patternlab/internal/reporter"
	"patternlab/internal/runner"
	"patternlab/pkg/patterntypes"
)

// addRunCommands adds the catalog commands: run, list and show.
func (app *App) addRunCommands(rootCmd *cobra.Command) {
	runCmd := &cobra.Command{
		Use:   "run [name...]",
		Short: "Run examples and report the results",
		Long: `Run every example in registration order, or only the named ones, and
print a report. Failures are summarized on stderr. The exit code is 0
when every example passed and 1 otherwise.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return app.runExamples(args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog",
		Long:  `List the registered examples with their category and summary.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.listExamples()
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Run one example and print its transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.showExample(args[0])
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, showCmd)
}

func (app *App) runExamples(names []string) error {
	category, err := app.category()
	if err != nil {
		return err
	}
	format, err := reporter.ParseFormat(app.Config.Format)
	if err != nil {
		return usageError("%v", err)
	}

	reg, err := app.loadCatalog()
	if err != nil {
		return err
	}
	report, err := app.execute(reg, names, category)
	if err != nil {
		return err
	}

	rep := reporter.New(app.Config.Verbose)
	rendered, err := rep.Render(report, format, app.renderOptions())
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	app.printf("%s", rendered)

	if summary := rep.Summary(report); len(summary) > 0 {
		app.errorf("%s\n", strings.Join(summary, "\n"))
		return failed()
	}
	return nil
}

// execute runs either the named examples or the whole (filtered) catalog.
// Every name is resolved before anything runs.
func (app *App) execute(reg *registry.Registry, names []string, category patterntypes.Category) (*runner.Report, error) {
	r := runner.New()
	if len(names) == 0 {
		return r.RunAll(reg, category), nil
	}
	if category.Valid() {
		return nil, usageError("--category cannot be combined with example names")
	}

	selected := make([]patterntypes.Example, 0, len(names))
	for _, name := range names {
		example, err := reg.Get(name)
		if err != nil {
			return nil, usageError("%v", err)
		}
		selected = append(selected, example)
	}
	return r.RunEach(selected), nil
}

// category parses the configured category. An empty value means no filter.
func (app *App) category() (patterntypes.Category, error) {
	if strings.TrimSpace(app.Config.Category) == "" {
		return 0, nil
	}
	category, err := patterntypes.ParseCategory(app.Config.Category)
	if err != nil {
		return 0, usageError("%v", err)
	}
	return category, nil
}

func (app *App) renderOptions() reporter.RenderOptions {
	opts := reporter.RenderOptions{MarkdownStyle: "auto"}
	if app.Config.TestMode {
		opts.MarkdownStyle = "notty"
		return opts
	}

	theme, err := output.LoadTheme(app.Config.Theme)
	if err != nil {
		app.logger.Warn("Falling back to plain styles", "theme", app.Config.Theme, "error", err)
		return opts
	}
	opts.Styles = theme
	return opts
}

type catalogEntry struct {
	Name     string                `yaml:"name"`
	Category patterntypes.Category `yaml:"category"`
	Summary  string                `yaml:"summary,omitempty"`
}

func (app *App) listExamples() error {
	category, err := app.category()
	if err != nil {
		return err
	}

	reg, err := app.loadCatalog()
	if err != nil {
		return err
	}

	source := reg.All()
	if category.Valid() {
		source = reg.ListByCategory(category)
	}
	var entries []catalogEntry
	for example := range source {
		entries = append(entries, catalogEntry{Name: example.Name, Category: example.Category, Summary: example.Summary})
	}

	switch strings.ToLower(app.Config.Format) {
	case "text", "":
		for _, entry := range entries {
			app.printf("%-24s %-11s %s\n", entry.Name, entry.Category, entry.Summary)
		}
	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("failed to encode catalog: %v", err)}
		}
		app.printf("%s", data)
	default:
		return usageError("list supports --format text or yaml, got %q", app.Config.Format)
	}
	return nil
}

func (app *App) showExample(name string) error {
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

	result := runner.New().RunOne(example)
	entry := runner.Entry{Name: example.Name, Category: example.Category, Result: result}

	printer := output.NewPrinter(output.WithWriter(app.stdout), output.WithStyles(app.renderOptions().Styles))
	printer.Heading(fmt.Sprintf("%s (%s)", example.Name, example.Category))
	if example.Summary != "" {
		printer.Muted(example.Summary)
	}
	printer.Println("")
	for _, line := range result.Lines {
		printer.Println(line)
	}
	printer.Println("")
	if result.Succeeded {
		printer.Success(reporter.StatusLine(entry))
	} else {
		printer.Error(reporter.StatusLine(entry))
	}

	if !result.Succeeded {
		return failed()
	}
	return nil
}
