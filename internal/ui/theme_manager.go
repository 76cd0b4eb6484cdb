package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghsearch/internal/domain"
)

// ThemeManager manages the current theme and provides styled components.
type ThemeManager struct {
	currentTheme domain.Theme
	styles       *ThemeStyles
}

// ThemeStyles contains all lipgloss styles for the TUI.
type ThemeStyles struct {
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorError     lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorBorder    lipgloss.Color
	ColorSelected  lipgloss.Color
	ColorText      lipgloss.Color

	// Header styles
	Header       lipgloss.Style
	SectionTitle lipgloss.Style
	Warning      lipgloss.Style

	// Repository row styles
	RowSelected lipgloss.Style
	RowNormal   lipgloss.Style
	RowCursor   lipgloss.Style
	RowURL      lipgloss.Style
	RowMeta     lipgloss.Style
	Description lipgloss.Style

	// List pane
	ListBox        lipgloss.Style
	ListBoxFocused lipgloss.Style

	// Footer styles
	Footer       lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	Metadata     lipgloss.Style

	// Status indicator styles
	StatusOk      lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style

	Separator lipgloss.Style
	Loading   lipgloss.Style

	// Toast banners
	ToastInfo  lipgloss.Style
	ToastError lipgloss.Style

	// Form component styles
	FormLabel        lipgloss.Style
	FormInput        lipgloss.Style
	FormInputFocused lipgloss.Style
	FormHelp         lipgloss.Style
}

// NewThemeManager creates a new theme manager with the specified theme.
func NewThemeManager(theme domain.Theme) *ThemeManager {
	tm := &ThemeManager{
		currentTheme: theme,
		styles:       &ThemeStyles{},
	}
	tm.regenerateStyles()
	return tm
}

// GetCurrentTheme returns the current theme.
func (tm *ThemeManager) GetCurrentTheme() domain.Theme {
	return tm.currentTheme
}

// SetTheme changes the current theme and regenerates all styles.
func (tm *ThemeManager) SetTheme(theme domain.Theme) {
	tm.currentTheme = theme
	tm.regenerateStyles()
}

// GetStyles returns the current theme styles.
func (tm *ThemeManager) GetStyles() *ThemeStyles {
	return tm.styles
}

func (tm *ThemeManager) regenerateStyles() {
	c := tm.currentTheme.Colors
	bg := tm.currentTheme.Backgrounds

	colorPrimary := lipgloss.Color(c.Primary)
	colorSecondary := lipgloss.Color(c.Secondary)
	colorSuccess := lipgloss.Color(c.Success)
	colorWarning := lipgloss.Color(c.Warning)
	colorError := lipgloss.Color(c.Error)
	colorMuted := lipgloss.Color(c.Muted)
	colorBorder := lipgloss.Color(c.Border)
	colorSelected := lipgloss.Color(c.Selected)
	colorText := lipgloss.Color(c.Text)

	s := tm.styles
	s.ColorPrimary = colorPrimary
	s.ColorSecondary = colorSecondary
	s.ColorSuccess = colorSuccess
	s.ColorWarning = colorWarning
	s.ColorError = colorError
	s.ColorMuted = colorMuted
	s.ColorBorder = colorBorder
	s.ColorSelected = colorSelected
	s.ColorText = colorText

	s.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder)

	s.SectionTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSecondary).
		MarginTop(1)

	s.Warning = lipgloss.NewStyle().
		Foreground(colorWarning).
		Bold(true)

	s.RowSelected = lipgloss.NewStyle().
		Foreground(colorSelected).
		Bold(true)

	s.RowNormal = lipgloss.NewStyle().
		Foreground(colorText)

	s.RowCursor = lipgloss.NewStyle().
		Foreground(colorSelected).
		Bold(true)

	s.RowURL = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Underline(true)

	s.RowMeta = lipgloss.NewStyle().
		Foreground(colorMuted)

	s.Description = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true).
		PaddingLeft(3)

	s.ListBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Background(lipgloss.Color(bg.List)).
		Padding(0, 1)

	s.ListBoxFocused = s.ListBox.
		BorderForeground(colorPrimary)

	s.Footer = lipgloss.NewStyle().
		Foreground(colorMuted).
		MarginTop(1).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		PaddingTop(1)

	s.ShortcutKey = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	s.ShortcutDesc = lipgloss.NewStyle().
		Foreground(colorMuted)

	s.Metadata = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true)

	s.StatusOk = lipgloss.NewStyle().
		Foreground(colorSuccess).
		Bold(true)

	s.StatusWarning = lipgloss.NewStyle().
		Foreground(colorWarning).
		Bold(true)

	s.StatusError = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	s.StatusInfo = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	s.Separator = lipgloss.NewStyle().
		Foreground(colorBorder)

	s.Loading = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	s.ToastInfo = lipgloss.NewStyle().
		Foreground(colorText).
		Background(lipgloss.Color(bg.Toast)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorWarning).
		Padding(0, 1)

	s.ToastError = s.ToastInfo.
		BorderForeground(colorError)

	s.FormLabel = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true)

	s.FormInput = lipgloss.NewStyle().
		Foreground(colorText).
		Background(lipgloss.Color(bg.FormInput)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	s.FormInputFocused = lipgloss.NewStyle().
		Foreground(colorText).
		Background(lipgloss.Color(bg.FormFocused)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(0, 1)

	s.FormHelp = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true)
}

// RenderSeparator returns a styled horizontal separator.
func (tm *ThemeManager) RenderSeparator(width int) string {
	if width <= 0 {
		width = 60
	}
	return tm.styles.Separator.Render(strings.Repeat("─", width))
}
