package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghsearch/internal/ui"
)

// Shortcut represents a keyboard shortcut
type Shortcut struct {
	Key         string
	Description string
}

// Footer represents a footer component
type Footer struct {
	Shortcuts []Shortcut
	Metadata  string // shown right-aligned when Width is set
	Width     int
}

// NewFooter creates a new footer
func NewFooter(shortcuts []Shortcut) *Footer {
	return &Footer{Shortcuts: shortcuts}
}

// WithMetadata adds metadata to the footer
func (f *Footer) WithMetadata(metadata string) *Footer {
	f.Metadata = metadata
	return f
}

// WithWidth sets the footer width
func (f *Footer) WithWidth(width int) *Footer {
	f.Width = width
	return f
}

// Render renders the footer
func (f *Footer) Render() string {
	styles := ui.GetGlobalThemeManager().GetStyles()

	var parts []string
	for _, shortcut := range f.Shortcuts {
		parts = append(parts, styles.ShortcutKey.Render(shortcut.Key)+" "+styles.ShortcutDesc.Render(shortcut.Description))
	}
	shortcuts := strings.Join(parts, " • ")

	if f.Metadata == "" {
		return shortcuts
	}

	meta := styles.Metadata.Render(f.Metadata)
	if f.Width > 0 {
		spacing := f.Width - lipgloss.Width(shortcuts) - lipgloss.Width(meta)
		if spacing > 0 {
			return shortcuts + strings.Repeat(" ", spacing) + meta
		}
	}
	return shortcuts + " " + meta
}

// Common footer shortcuts
var (
	ShortcutQuit = Shortcut{
		Key:         "esc",
		Description: "quit",
	}
	ShortcutSubmit = Shortcut{
		Key:         "enter",
		Description: "search",
	}
	ShortcutNavigate = Shortcut{
		Key:         "↑↓/jk",
		Description: "navigate",
	}
	ShortcutTab = Shortcut{
		Key:         "tab",
		Description: "switch focus",
	}
	ShortcutOpen = Shortcut{
		Key:         "o",
		Description: "open",
	}
	ShortcutShare = Shortcut{
		Key:         "s",
		Description: "share",
	}
)

// SearchFooter creates the footer for the search screen. The list shortcuts
// are only shown while the list has focus.
func SearchFooter(listFocused bool, metadata string, width int) string {
	shortcuts := []Shortcut{ShortcutSubmit, ShortcutTab}
	if listFocused {
		shortcuts = []Shortcut{ShortcutNavigate, ShortcutOpen, ShortcutShare, ShortcutTab}
	}
	shortcuts = append(shortcuts, ShortcutQuit)

	return NewFooter(shortcuts).WithMetadata(metadata).WithWidth(width).Render()
}

// HelpText renders help text in a consistent format
func HelpText(parts ...string) string {
	styles := ui.GetGlobalThemeManager().GetStyles()
	return styles.ShortcutDesc.Render(strings.Join(parts, " • "))
}

// StatusLine renders a status line with icon
func StatusLine(icon, message string, statusType string) string {
	styles := ui.GetGlobalThemeManager().GetStyles()

	var style lipgloss.Style
	switch statusType {
	case "success":
		style = styles.StatusOk
	case "error":
		style = styles.StatusError
	case "warning":
		style = styles.StatusWarning
	case "info":
		style = styles.StatusInfo
	default:
		style = lipgloss.NewStyle().Foreground(styles.ColorText)
	}

	return style.Render(icon + " " + message)
}
