package output

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

type bracketStyle struct{ semantic string }

func (b bracketStyle) Render(text string) string {
	return "[" + b.semantic + "]" + text + "[/" + b.semantic + "]"
}

type mockStyleProvider struct{ available bool }

func (m *mockStyleProvider) GetStyle(semantic string) TextStyle { return bracketStyle{semantic} }
func (m *mockStyleProvider) IsAvailable() bool                  { return m.available }

func TestPrinterBasicOutput(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	printer.Println("hello")
	printer.Linef("number: %d", 42)
	printer.Println("already terminated\n")

	result := buffer.String()

	if result != "hello\nnumber: 42\nalready terminated\n" {
		t.Errorf("Unexpected output: %q", result)
	}
}

func TestPrinterSemanticOutput(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	printer.Success("completed")
	printer.Warning("careful")
	printer.Error("failed")
	printer.Heading("Section")
	printer.Muted("aside")

	expectedLines := []string{
		"✓ completed",
		"⚠ careful",
		"✗ failed",
		"== Section",
		"aside",
	}

	lines := buffer.Lines()
	if len(lines) != len(expectedLines) {
		t.Fatalf("Expected %d lines, got %d: %v", len(expectedLines), len(lines), lines)
	}
	for i, expected := range expectedLines {
		if lines[i] != expected {
			t.Errorf("Line %d: expected '%s', got '%s'", i, expected, lines[i])
		}
	}
}

func TestPrinterWithStyleProvider(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithStyles(&mockStyleProvider{available: true}))

	printer.Success("done")

	if got := buffer.String(); got != "[success]done[/success]\n" {
		t.Errorf("Unexpected styled output: %q", got)
	}
	if !printer.IsStylable() {
		t.Error("Expected printer to be stylable")
	}
}

func TestPrinterWithUnavailableStyleProvider(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithStyles(&mockStyleProvider{available: false}), WithMode(ModeStyled))

	printer.Error("broken")

	if got := buffer.String(); got != "✗ broken\n" {
		t.Errorf("Expected plain fallback, got: %q", got)
	}
}

func TestPrinterPlainModeIgnoresStyles(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithStyles(&mockStyleProvider{available: true}), WithMode(ModePlain))

	printer.Heading("plain")

	if got := buffer.String(); got != "== plain\n" {
		t.Errorf("Expected plain output, got: %q", got)
	}
}

func TestCaptureBufferLines(t *testing.T) {
	buffer := NewCaptureBuffer()
	if len(buffer.Lines()) != 0 {
		t.Errorf("Expected no lines from empty buffer")
	}

	_, _ = buffer.Write([]byte("one\ntwo\n"))
	if got := buffer.Lines(); len(got) != 2 || got[1] != "two" {
		t.Errorf("Unexpected lines: %v", got)
	}
}

func TestRecord(t *testing.T) {
	t.Run("successful demo captures lines", func(t *testing.T) {
		action := Record(func(p *Printer) error {
			p.Println("invoice created")
			p.Success("paid")
			return nil
		})

		result := action()
		if !result.Succeeded || result.Failure != nil {
			t.Fatalf("Expected success, got: %+v", result)
		}
		if strings.Join(result.Lines, "|") != "invoice created|✓ paid" {
			t.Errorf("Unexpected lines: %v", result.Lines)
		}
	})

	t.Run("failing demo keeps partial output", func(t *testing.T) {
		action := Record(func(p *Printer) error {
			p.Println("charging card")
			return errors.New("insufficient balance")
		})

		result := action()
		if result.Succeeded {
			t.Fatal("Expected failure")
		}
		if result.Message() != "insufficient balance" {
			t.Errorf("Unexpected message: %q", result.Message())
		}
		if len(result.Lines) != 1 || result.Lines[0] != "charging card" {
			t.Errorf("Unexpected lines: %v", result.Lines)
		}
	})

	t.Run("each invocation starts fresh", func(t *testing.T) {
		action := Record(func(p *Printer) error {
			p.Println("once")
			return nil
		})

		_ = action()
		if got := action().Lines; len(got) != 1 {
			t.Errorf("Expected a single line per invocation, got: %v", got)
		}
	})

	t.Run("panicking demo keeps partial output", func(t *testing.T) {
		action := Record(func(p *Printer) error {
			p.Println("opening document")
			panic("corrupt header")
		})

		result := action()
		if result.Succeeded {
			t.Fatal("Expected failure")
		}
		if result.Message() != "corrupt header" {
			t.Errorf("Unexpected message: %q", result.Message())
		}
		if len(result.Lines) != 1 || result.Lines[0] != "opening document" {
			t.Errorf("Unexpected lines: %v", result.Lines)
		}
	})
}

func TestThemes(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	names := AvailableThemes()
	if strings.Join(names, ",") != "dark,default" {
		t.Fatalf("Unexpected themes: %v", names)
	}

	theme, err := LoadTheme("")
	if err != nil {
		t.Fatalf("Expected default theme, got error: %v", err)
	}
	if theme.Name != "default" {
		t.Errorf("Expected default theme, got %s", theme.Name)
	}
	if !theme.IsAvailable() {
		t.Error("Expected theme to be available with ANSI256 profile")
	}

	rendered := theme.GetStyle("error").Render("boom")
	if !strings.Contains(rendered, "boom") || rendered == "boom" {
		t.Errorf("Expected styled text, got: %q", rendered)
	}
	if ansi.Strip(rendered) != "boom" {
		t.Errorf("Expected stripped text to equal input, got: %q", ansi.Strip(rendered))
	}
	if got := theme.GetStyle("unknown").Render("x"); got != "x" {
		t.Errorf("Expected unknown semantic to render unstyled, got: %q", got)
	}

	if _, err := LoadTheme("neon"); err == nil {
		t.Error("Expected error for unknown theme")
	}
}

func TestThemeUnavailableWithoutColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	theme, err := LoadTheme("dark")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if theme.IsAvailable() {
		t.Error("Expected theme to be unavailable with ASCII profile")
	}
}

func TestParseTheme_Invalid(t *testing.T) {
	if _, err := ParseTheme([]byte("styles: [")); err == nil {
		t.Error("Expected parse error")
	}
	if _, err := ParseTheme([]byte("styles: {}\n")); err == nil {
		t.Error("Expected error for missing name")
	}
}

func BenchmarkPrinterPlainOutput(b *testing.B) {
	printer := NewPrinter(WithWriter(NewCaptureBuffer()), TestMode())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		printer.Success("benchmark line")
	}
}
