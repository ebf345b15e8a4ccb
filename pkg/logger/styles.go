package logger

import (
	"github.com/charmbracelet/lipgloss"
	charm "github.com/charmbracelet/log"
)

const levelLabelWidth = 4

func levelStyle(label, color string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Bold(true).
		MaxWidth(levelLabelWidth).
		Foreground(lipgloss.Color(color))
}

// getLogStyles returns the level labels and key styles used by every logger in this module.
func getLogStyles() *charm.Styles {
	styles := charm.DefaultStyles()

	styles.Levels[TraceLevel] = levelStyle("TRCE", "#808080")
	styles.Levels[DebugLevel] = levelStyle("DEBU", "#3F51B5")
	styles.Levels[InfoLevel] = levelStyle("INFO", "#4CAF50")
	styles.Levels[WarnLevel] = levelStyle("WARN", "#FF9800")
	styles.Levels[ErrorLevel] = levelStyle("ERRO", "#F44336")
	styles.Levels[FatalLevel] = levelStyle("FATA", "#F44336")

	styles.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("#F44336"))
	styles.Values["err"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["modules"] = lipgloss.NewStyle().Foreground(lipgloss.Color("#00A3E0"))
	styles.Keys["file"] = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

	return styles
}
