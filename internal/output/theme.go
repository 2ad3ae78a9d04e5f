package output

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

//go:embed themes/*.yaml
var themeFiles embed.FS

// ThemeConfig is the YAML representation of a theme.
type ThemeConfig struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description,omitempty"`
	Styles      map[string]StyleConfig `yaml:"styles"`
}

// StyleConfig describes one semantic style.
// Colors are either a plain color string or a {light, dark} adaptive pair.
type StyleConfig struct {
	Foreground interface{} `yaml:"foreground,omitempty"`
	Background interface{} `yaml:"background,omitempty"`
	Bold       bool        `yaml:"bold,omitempty"`
	Italic     bool        `yaml:"italic,omitempty"`
	Underline  bool        `yaml:"underline,omitempty"`
}

// Theme is a lipgloss-backed StyleProvider.
type Theme struct {
	Name   string
	styles map[string]lipgloss.Style
}

// ParseTheme builds a Theme from YAML data.
func ParseTheme(data []byte) (*Theme, error) {
	var config ThemeConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}
	if config.Name == "" {
		return nil, fmt.Errorf("theme name cannot be empty")
	}

	theme := &Theme{Name: config.Name, styles: make(map[string]lipgloss.Style, len(config.Styles))}
	for semantic, styleConfig := range config.Styles {
		theme.styles[semantic] = createStyle(styleConfig)
	}
	return theme, nil
}

// LoadTheme returns one of the embedded themes by name.
func LoadTheme(name string) (*Theme, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		normalized = "default"
	}

	data, err := themeFiles.ReadFile("themes/" + normalized + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(AvailableThemes(), ", "))
	}
	return ParseTheme(data)
}

// AvailableThemes lists the embedded theme names in lexical order.
func AvailableThemes() []string {
	entries, err := themeFiles.ReadDir("themes")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// GetStyle returns the style for a semantic type; unknown types render unstyled.
func (t *Theme) GetStyle(semantic string) TextStyle {
	if style, ok := t.styles[semantic]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// IsAvailable reports false when the terminal cannot render colors.
func (t *Theme) IsAvailable() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}

func createStyle(config StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()

	if color := parseColor(config.Foreground); color != nil {
		style = style.Foreground(color)
	}
	if color := parseColor(config.Background); color != nil {
		style = style.Background(color)
	}
	if config.Bold {
		style = style.Bold(true)
	}
	if config.Italic {
		style = style.Italic(true)
	}
	if config.Underline {
		style = style.Underline(true)
	}

	return style
}

// parseColor parses a color value that can be a string or an adaptive {light, dark} map.
func parseColor(value interface{}) lipgloss.TerminalColor {
	switch v := value.(type) {
	case string:
		return lipgloss.Color(v)
	case map[string]interface{}:
		light, hasLight := v["light"].(string)
		dark, hasDark := v["dark"].(string)
		if hasLight && hasDark {
			return lipgloss.AdaptiveColor{Light: light, Dark: dark}
		}
		return nil
	default:
		return nil
	}
}
