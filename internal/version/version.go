// Package version holds build-time version information for patternlab.
// Values are injected with -ldflags and validated as semantic versions.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information that can be set at compile time via -ldflags
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string          `json:"version" yaml:"version"`
	GitCommit string          `json:"gitCommit" yaml:"git_commit"`
	BuildDate string          `json:"buildDate" yaml:"build_date"`
	GoVersion string          `json:"goVersion" yaml:"go_version"`
	Platform  string          `json:"platform" yaml:"platform"`
	SemVer    *semver.Version `json:"-" yaml:"-"`
}

// GetInfo returns version information, failing when Version is not semver.
func GetInfo() (*Info, error) {
	sv, err := parse(Version)
	if err != nil {
		return nil, err
	}

	return &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		SemVer:    sv,
	}, nil
}

// GetFormattedVersion returns a one-line version string, e.g.
// "patternlab v0.1.0, commit abc1234, built 2025-01-01".
func GetFormattedVersion() string {
	if err := ValidateVersion(); err != nil {
		return fmt.Sprintf("patternlab v%s (invalid version)", Version)
	}

	parts := []string{"patternlab v" + Version}
	if known(GitCommit) {
		parts = append(parts, "commit "+shortCommit(GitCommit))
	}
	if known(BuildDate) {
		parts = append(parts, "built "+BuildDate)
	}
	return strings.Join(parts, ", ")
}

// GetDetailedVersion returns multi-line version information for bug reports.
func GetDetailedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("patternlab v%s (error: %v)", Version, err)
	}

	lines := []string{
		"patternlab v" + info.Version,
		"Git Commit: " + info.GitCommit,
		"Build Date: " + info.BuildDate,
	}
	if IsDevelopment() {
		lines = append(lines, "Build: development")
	}
	if pre := info.SemVer.Prerelease(); pre != "" {
		lines = append(lines, "Prerelease: "+pre)
	}
	if meta := info.SemVer.Metadata(); meta != "" {
		lines = append(lines, "Build Metadata: "+meta)
	}
	lines = append(lines,
		"Go Version: "+info.GoVersion,
		"Platform: "+info.Platform,
	)

	return strings.Join(lines, "\n")
}

// ValidateVersion validates that Version is a semantic version.
func ValidateVersion() error {
	_, err := parse(Version)
	return err
}

// IsDevelopment reports whether build information was not injected.
func IsDevelopment() bool {
	return !known(GitCommit) || !known(BuildDate)
}

// Satisfies reports whether Version meets a constraint such as ">= 0.1, < 1".
func Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint '%s': %w", constraint, err)
	}

	sv, err := parse(Version)
	if err != nil {
		return false, err
	}
	return c.Check(sv), nil
}

func parse(v string) (*semver.Version, error) {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version '%s': %w", v, err)
	}
	return sv, nil
}

func known(value string) bool {
	return value != "" && value != "unknown"
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
