package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text, degrading to plain
// decorations when color output is disabled.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	text := fmt.Sprintf(format, a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// Honor the NO_COLOR convention (https://no-color.org/).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	// Also respect fatih/color's own terminal detection.
	return color.NoColor
}

// Semantic formatters for the passdir CLI output.
var (
	// Name formats logical secret names and paths.
	Name = Formatter{color.New(color.FgYellow), "", ""}

	// Code formats runnable commands. `Backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Success formats success indicators.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats error indicators.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Info formats hints and directional indicators.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Muted formats secondary text such as key fingerprints.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
