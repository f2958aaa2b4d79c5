// Package printer centralises colored terminal output for the CLI.
package printer

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

func init() {
	// Force color output even when not connected to a TTY.
	// Users can disable with the NO_COLOR environment variable.
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	cyan   = color.New(color.FgCyan, color.Bold)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	dim    = color.New(color.Faint)
)

// Header prints a section heading in bold cyan.
func Header(format string, a ...any) {
	cyan.Printf(format+"\n", a...)
}

// Info prints a plain message.
func Info(format string, a ...any) {
	fmt.Printf(format+"\n", a...)
}

// Row prints one indented result line.
func Row(format string, a ...any) {
	fmt.Printf("  "+format+"\n", a...)
}

// Detail prints a dimmed annotation on a result line.
func Detail(format string, a ...any) string {
	return dim.Sprintf(format, a...)
}

// Success prints a summary line in green.
func Success(format string, a ...any) {
	green.Printf(format+"\n", a...)
}

// Warning prints a warning in yellow.
func Warning(format string, a ...any) {
	yellow.Printf(format+"\n", a...)
}

// Fail prints the error title in red to stderr and returns a plain error
// for cobra to propagate.
func Fail(title string, err error) error {
	red.Fprintf(os.Stderr, "%s\n", title)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  %v\n", err)
	}
	return fmt.Errorf("%s", title)
}

// FormatSet renders a name list as "{a, b, c}"; the empty set as "{}".
func FormatSet(names []string) string {
	return "{" + strings.Join(names, ", ") + "}"
}
