// Package logger provides centralized logging for patternlab.
// It configures structured logging with charmbracelet/log. Logs always go
// to stderr or a log file so that stdout carries only reports.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// EnvLogLevel is consulted when no level is given on the command line.
const EnvLogLevel = "PATTERNLAB_LOG_LEVEL"

// Logger is the global logger instance used by the CLI.
var Logger *log.Logger

var (
	outputMu sync.RWMutex
	output   io.Writer = os.Stderr
	openFile *os.File
)

func init() {
	Logger = log.New(os.Stderr)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.WarnLevel)
}

// Configure sets up the logger from CLI flags and the environment.
// CLI flags take precedence over environment variables. A log file opened
// by an earlier call is closed.
func Configure(logLevel string, logFile string, testMode bool) error {
	level := logLevel
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	parsed, err := ParseLevel(level)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stderr
	var file *os.File
	if logFile != "" {
		file, err = os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		out = file
	}

	outputMu.Lock()
	previous := swapFile(file)
	output = out
	outputMu.Unlock()
	if previous != nil {
		_ = previous.Close()
	}

	Logger = log.New(out)
	Logger.SetTimeFormat("")
	Logger.SetLevel(parsed)

	if testMode {
		// Deterministic output: no timestamps, no caller info
		Logger.SetTimeFormat("")
		Logger.SetReportCaller(false)
	}

	return nil
}

// Close closes the log file opened by Configure, if any, and sends
// further output to stderr.
func Close() error {
	outputMu.Lock()
	file := swapFile(nil)
	output = os.Stderr
	outputMu.Unlock()

	if file == nil {
		return nil
	}
	Logger.SetOutput(os.Stderr)
	return file.Close()
}

// swapFile must be called with outputMu held.
func swapFile(file *os.File) *os.File {
	previous := openFile
	openFile = file
	return previous
}

// ParseLevel converts a level name to a log level. An empty name maps to
// warn, which keeps normal runs quiet; unknown names are an error.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return log.WarnLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	case "fatal":
		return log.FatalLevel, nil
	default:
		return log.WarnLevel, fmt.Errorf("unknown log level %q (expected debug, info, warn, error or fatal)", level)
	}
}

// NewStyledLogger creates a component logger (e.g. "Runner", "Golden")
// sharing the global logger's destination and level.
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("33")). // Blue background
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("196")). // Red background
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("240")). // Gray background
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("214")). // Orange background
		Foreground(lipgloss.Color("15"))

	styles.Keys["example"] = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))  // Cyan
	styles.Keys["category"] = lipgloss.NewStyle().Foreground(lipgloss.Color("99")) // Purple
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))   // Red
	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	outputMu.RLock()
	out := output
	outputMu.RUnlock()

	componentLogger := log.NewWithOptions(out, log.Options{
		Prefix: prefix + " ",
	})
	componentLogger.SetStyles(styles)
	componentLogger.SetLevel(Logger.GetLevel())

	return componentLogger
}
