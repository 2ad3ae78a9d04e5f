// Package cli provides command-line interface setup for patternlab.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"patternlab/internal/config"
	"patternlab/internal/logger"
	"patternlab/internal/registry"
)

// CatalogFunc builds the registry the commands operate on.
type CatalogFunc func() (*registry.Registry, error)

// App represents the patternlab CLI application.
type App struct {
	Config *config.Config

	catalog    CatalogFunc
	loader     *config.Loader
	configFile string
	stdout     io.Writer
	stderr     io.Writer
	logger     *log.Logger
}

// Option configures an App.
type Option func(*App)

// WithOutput redirects report output and diagnostics.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(app *App) {
		app.stdout = stdout
		app.stderr = stderr
	}
}

// NewApp creates a CLI application over the catalog produced by catalog.
func NewApp(catalog CatalogFunc, opts ...Option) *App {
	app := &App{
		Config:  &config.Config{},
		catalog: catalog,
		loader:  config.NewLoader(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Execute runs the command line in args. Every returned error is an
// *ExitError; cobra usage errors map to ExitUsage.
func (app *App) Execute(args []string) error {
	defer func() { _ = logger.Close() }()

	rootCmd := app.CreateRootCommand()
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

// CreateRootCommand creates and configures the root command.
func (app *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "patternlab",
		Short:             "Run and inspect the design pattern catalog",
		Long:              rootLong(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.initConfig,
	}
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.configFile, "config", "", "Config file (default ./"+config.DefaultConfigFile+")")
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: warn]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.Bool(config.KeyTestMode, false, "Deterministic output: plain styles, no terminal detection")
	flags.String(config.KeyCategory, "", "Only use examples of this category (creational|structural|behavioral|solid)")
	flags.BoolP(config.KeyVerbose, "v", false, "Include captured example output")
	flags.String(config.KeyFormat, "text", "Output format (text|styled|yaml|markdown)")
	flags.String(config.KeyTheme, "default", "Color theme for styled output")
	flags.String(config.KeyGoldenDir, "testdata/golden", "Golden file directory")

	if err := app.loader.BindFlags(flags); err != nil {
		// Flag names are static, so this only fails on a programming error.
		panic(err)
	}

	app.addRunCommands(rootCmd)
	app.addGoldenCommands(rootCmd)
	app.addVersionCommand(rootCmd)

	return rootCmd
}

func rootLong() string {
	envNames := make([]string, 0, len(config.Keys()))
	for _, key := range config.Keys() {
		envNames = append(envNames, config.EnvName(key))
	}
	return `patternlab runs a catalog of small, self-contained demonstrations of
classic design patterns and the SOLID principles, and reports which of
them passed.

Flags can also be set in ./` + config.DefaultConfigFile + `, in a .env file or through
the environment: ` + strings.Join(envNames, ", ") + "."
}

// initConfig resolves configuration and configures logging before any
// command runs.
func (app *App) initConfig(_ *cobra.Command, _ []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return usageError("cannot determine working directory: %v", err)
	}

	cfg, err := app.loader.Load(app.configFile, workDir)
	if err != nil {
		return usageError("%v", err)
	}
	app.Config = cfg

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, cfg.TestMode); err != nil {
		return usageError("error configuring logger: %v", err)
	}
	app.logger = logger.NewStyledLogger("CLI")
	app.logger.Debug("Configuration loaded", "format", cfg.Format, "category", cfg.Category, "golden-dir", cfg.GoldenDir)
	return nil
}

// loadCatalog builds the registry. Failures abort with ExitUsage.
func (app *App) loadCatalog() (*registry.Registry, error) {
	reg, err := app.catalog()
	if err != nil {
		return nil, usageError("catalog construction failed: %v", err)
	}
	if !reg.Sealed() {
		app.logger.Debug("Sealing catalog before use")
		reg.Seal()
	}
	app.logger.Debug("Catalog ready", "examples", reg.Len())
	return reg, nil
}

func (app *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(app.stdout, format, args...)
}

func (app *App) errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(app.stderr, format, args...)
}
