package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghsearch/internal/domain"
)

// Output is where the Print helpers write. Tests swap it for a buffer.
var Output io.Writer = os.Stdout

func prefix(color lipgloss.Color, label string) string {
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(label)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	s := defaultThemeManager.GetStyles()
	fmt.Fprintf(Output, "%s %s\n", prefix(s.ColorSuccess, "[SUCCESS]"), message)
}

// PrintError prints an error message
func PrintError(message string) {
	s := defaultThemeManager.GetStyles()
	fmt.Fprintf(Output, "%s %s\n", prefix(s.ColorError, "[ERROR]"), message)
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	s := defaultThemeManager.GetStyles()
	fmt.Fprintf(Output, "%s %s\n", prefix(s.ColorPrimary, "[INFO]"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	s := defaultThemeManager.GetStyles()
	fmt.Fprintf(Output, "%s %s\n", prefix(s.ColorWarning, "[WARNING]"), message)
}

// PrintSubtle prints a muted message
func PrintSubtle(message string) {
	s := defaultThemeManager.GetStyles()
	fmt.Fprintln(Output, lipgloss.NewStyle().Foreground(s.ColorMuted).Render(message))
}

// FormatValue highlights a value in output
func FormatValue(value string) string {
	return lipgloss.NewStyle().
		Foreground(defaultThemeManager.GetStyles().ColorPrimary).
		Bold(true).
		Render(value)
}

// FormatLabel formats a label
func FormatLabel(label string) string {
	return lipgloss.NewStyle().
		Foreground(defaultThemeManager.GetStyles().ColorMuted).
		Render(label)
}

// NotificationPrinter prints controller notifications for headless runs.
type NotificationPrinter struct{}

// Notify prints n with a prefix matching its kind.
func (NotificationPrinter) Notify(n domain.Notification) {
	if n.Kind == domain.NotificationValidation {
		PrintWarning(n.Message)
		return
	}
	PrintError(n.Message)
}
