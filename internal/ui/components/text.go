package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TruncateText truncates text to a maximum number of runes with an ellipsis.
func TruncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 2 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}

// PadRight pads text to the right with spaces up to a visible width.
func PadRight(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}

// Pluralize returns singular or plural form based on count
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// FormatCount formats a count with singular/plural noun
func FormatCount(count int, singular, plural string) string {
	return strconv.Itoa(count) + " " + Pluralize(count, singular, plural)
}
