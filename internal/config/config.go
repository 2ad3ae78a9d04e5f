// Package config loads patternlab settings from flags, environment,
// an optional config file and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every patternlab environment variable.
const EnvPrefix = "PATTERNLAB"

// DefaultConfigFile is looked up in the working directory when no
// --config flag is given. Its absence is not an error.
const DefaultConfigFile = ".patternlab.yaml"

// Configuration keys. Each key doubles as a flag name.
const (
	KeyLogLevel  = "log-level"
	KeyLogFile   = "log-file"
	KeyTestMode  = "test-mode"
	KeyFormat    = "format"
	KeyVerbose   = "verbose"
	KeyGoldenDir = "golden-dir"
	KeyCategory  = "category"
	KeyTheme     = "theme"
)

// Keys lists every configuration key.
func Keys() []string {
	return []string{KeyLogLevel, KeyLogFile, KeyTestMode, KeyFormat, KeyVerbose, KeyGoldenDir, KeyCategory, KeyTheme}
}

// Config holds the resolved settings.
type Config struct {
	LogLevel  string `yaml:"log-level"`
	LogFile   string `yaml:"log-file"`
	TestMode  bool   `yaml:"test-mode"`
	Format    string `yaml:"format"`
	Verbose   bool   `yaml:"verbose"`
	GoldenDir string `yaml:"golden-dir"`
	Category  string `yaml:"category"`
	Theme     string `yaml:"theme"`
}

// Loader resolves settings with precedence
// flag > environment > config file > .env file > built-in default.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with built-in defaults and environment binding.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTestMode, false)
	v.SetDefault(KeyFormat, "text")
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyGoldenDir, filepath.Join("testdata", "golden"))
	v.SetDefault(KeyCategory, "")
	v.SetDefault(KeyTheme, "default")

	return &Loader{v: v}
}

// BindFlags binds every flag in flags whose name is a configuration key.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range Keys() {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("error binding %s flag: %w", key, err)
		}
	}
	return nil
}

// Load reads the .env file in workDir and the config file, then resolves
// every key. An explicitly named config file must exist; the default one
// is optional.
func (l *Loader) Load(configFile, workDir string) (*Config, error) {
	if err := l.loadDotEnv(filepath.Join(workDir, ".env")); err != nil {
		return nil, err
	}
	if err := l.loadConfigFile(configFile, workDir); err != nil {
		return nil, err
	}

	return &Config{
		LogLevel:  l.v.GetString(KeyLogLevel),
		LogFile:   l.v.GetString(KeyLogFile),
		TestMode:  l.v.GetBool(KeyTestMode),
		Format:    l.v.GetString(KeyFormat),
		Verbose:   l.v.GetBool(KeyVerbose),
		GoldenDir: l.v.GetString(KeyGoldenDir),
		Category:  l.v.GetString(KeyCategory),
		Theme:     l.v.GetString(KeyTheme),
	}, nil
}

// loadDotEnv turns PATTERNLAB_* entries of a .env file into defaults.
// Other entries are ignored and the process environment is not modified.
func (l *Loader) loadDotEnv(envPath string) error {
	data, err := os.ReadFile(envPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read .env file %s: %w", envPath, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse .env file %s: %w", envPath, err)
	}

	for name, value := range envMap {
		if key, ok := KeyFromEnv(name); ok {
			l.v.SetDefault(key, value)
		}
	}
	return nil
}

func (l *Loader) loadConfigFile(configFile, workDir string) error {
	explicit := configFile != ""
	if !explicit {
		configFile = filepath.Join(workDir, DefaultConfigFile)
	}

	if _, err := os.Stat(configFile); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config file %s: %w", configFile, err)
	}

	l.v.SetConfigFile(configFile)
	if err := l.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}
	return nil
}

// KeyFromEnv maps an environment variable name such as PATTERNLAB_GOLDEN_DIR
// to its configuration key ("golden-dir").
func KeyFromEnv(name string) (string, bool) {
	rest, ok := strings.CutPrefix(name, EnvPrefix+"_")
	if !ok || rest == "" {
		return "", false
	}
	key := strings.ReplaceAll(strings.ToLower(rest), "_", "-")
	for _, known := range Keys() {
		if known == key {
			return key, true
		}
	}
	return "", false
}

// EnvName returns the environment variable name for a configuration key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}
