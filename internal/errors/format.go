package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders a CLIError for terminal display. The category heading
// is colored when the terminal supports it (the color package disables
// itself on non-TTYs and under NO_COLOR).
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	heading := color.New(color.FgRed, color.Bold).Sprintf("%s:", err.Category)
	return format(err, heading)
}

// FormatErrorPlain renders a CLIError with no color codes at all, for logs
// and non-terminal sinks.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return format(err, err.Category.String()+":")
}

func format(err *CLIError, heading string) string {
	var b strings.Builder
	b.WriteString(heading)
	b.WriteString(" ")
	b.WriteString(err.Message)
	b.WriteString("\n")

	if err.Usage != "" {
		b.WriteString("\nUsage:\n  ")
		b.WriteString(err.Usage)
		b.WriteString("\n")
	}
	if len(err.Remediation) > 0 {
		b.WriteString("\nTo fix this:\n")
		for _, step := range err.Remediation {
			b.WriteString("  - ")
			b.WriteString(step)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatSimpleError renders any error under a category heading, for errors
// that never became CLIErrors.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s\n", category, err.Error())
}

// PrintError writes the formatted error to stderr. Nil errors print nothing.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError writes the formatted error to w. Nil errors print nothing.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
