package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

const (
	// DefaultMaxLineLength is the default maximum line length before wrapping.
	DefaultMaxLineLength = 80

	newline = "\n"
)

// FormatterConfig controls error formatting behavior.
type FormatterConfig struct {
	// Verbose adds safe context details and the full error chain.
	Verbose bool

	// Color controls color output: "auto", "always", or "never".
	Color string

	// MaxLineLength is the maximum length before wrapping (default: 80).
	MaxLineLength int
}

// DefaultFormatterConfig returns default formatting configuration.
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		Verbose:       false,
		Color:         "auto",
		MaxLineLength: DefaultMaxLineLength,
	}
}

// Format renders an error for the terminal: the message, its hints and, in verbose
// mode, the safe details and the error chain.
func Format(err error, config FormatterConfig) string {
	if err == nil {
		return ""
	}

	useColor := shouldUseColor(config.Color)

	errorStyle := lipgloss.NewStyle()
	hintStyle := lipgloss.NewStyle()
	detailStyle := lipgloss.NewStyle()
	if useColor {
		errorStyle = errorStyle.Foreground(lipgloss.Color("#FF0000"))
		hintStyle = hintStyle.Foreground(lipgloss.Color("#00A3E0"))
		detailStyle = detailStyle.Foreground(lipgloss.Color("#808080"))
	}

	var output strings.Builder

	mainMsg := "Error: " + err.Error()
	if len(mainMsg) > config.MaxLineLength && !config.Verbose {
		output.WriteString(errorStyle.Render(wrapText(mainMsg, config.MaxLineLength)))
	} else {
		output.WriteString(errorStyle.Render(mainMsg))
	}

	if hints := errors.GetAllHints(err); len(hints) > 0 {
		output.WriteString(newline)
		for _, hint := range hints {
			output.WriteString(newline)
			output.WriteString(hintStyle.Render("    hint: " + hint))
		}
	}

	if config.Verbose {
		if details := formatSafeDetails(err); details != "" {
			output.WriteString(newline + newline)
			output.WriteString(detailStyle.Render(details))
		}
		output.WriteString(newline + newline)
		output.WriteString(detailStyle.Render(fmt.Sprintf("%+v", err)))
	}

	return output.String()
}

// formatSafeDetails flattens "key=value key=value" safe details into one pair per line.
func formatSafeDetails(err error) string {
	var lines []string
	for _, payload := range errors.GetAllSafeDetails(err) {
		for _, detail := range payload.SafeDetails {
			for _, pair := range strings.Fields(detail) {
				if parts := strings.SplitN(pair, "=", 2); len(parts) == 2 {
					lines = append(lines, fmt.Sprintf("%s: %s", parts[0], parts[1]))
				}
			}
		}
	}

	return strings.Join(lines, newline)
}

// shouldUseColor determines if color output should be used.
func shouldUseColor(colorMode string) bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultMaxLineLength
	}

	var lines []string
	var currentLine strings.Builder

	for _, word := range strings.Fields(text) {
		if currentLine.Len() > 0 && currentLine.Len()+1+len(word) > width {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
		}
		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, newline)
}
