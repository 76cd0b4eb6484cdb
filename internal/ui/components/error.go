package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghsearch/internal/ui"
	"github.com/yourusername/ghsearch/internal/ui/layout"
)

// ErrorSeverity defines the severity level of a banner
type ErrorSeverity int

const (
	SeverityError ErrorSeverity = iota
	SeverityWarning
	SeverityInfo
)

// ErrorBanner is a bordered message box used for toasts.
type ErrorBanner struct {
	Title    string
	Message  string
	Actions  []string
	Severity ErrorSeverity
	Width    int
}

// NewErrorBanner creates a new error banner
func NewErrorBanner(message string) *ErrorBanner {
	return &ErrorBanner{
		Title:    "Error",
		Message:  message,
		Severity: SeverityError,
	}
}

// NewWarningBanner creates a warning banner
func NewWarningBanner(message string) *ErrorBanner {
	return &ErrorBanner{
		Title:    "Warning",
		Message:  message,
		Severity: SeverityWarning,
	}
}

// NewInfoBanner creates an info banner
func NewInfoBanner(message string) *ErrorBanner {
	return &ErrorBanner{
		Title:    "Info",
		Message:  message,
		Severity: SeverityInfo,
	}
}

// WithTitle sets a custom title
func (eb *ErrorBanner) WithTitle(title string) *ErrorBanner {
	eb.Title = title
	return eb
}

// WithActions adds suggested actions
func (eb *ErrorBanner) WithActions(actions ...string) *ErrorBanner {
	eb.Actions = actions
	return eb
}

// WithWidth sets the width
func (eb *ErrorBanner) WithWidth(width int) *ErrorBanner {
	eb.Width = width
	return eb
}

// Render renders the banner
func (eb *ErrorBanner) Render() string {
	styles := ui.GetGlobalThemeManager().GetStyles()

	var bannerStyle lipgloss.Style
	var titleStyle lipgloss.Style
	var icon string

	switch eb.Severity {
	case SeverityWarning:
		bannerStyle = styles.ToastInfo
		titleStyle = styles.StatusWarning
		icon = "⚠"
	case SeverityInfo:
		bannerStyle = styles.ToastInfo.BorderForeground(styles.ColorSecondary)
		titleStyle = styles.StatusInfo
		icon = "ℹ"
	default:
		bannerStyle = styles.ToastError
		titleStyle = styles.StatusError
		icon = "✗"
	}

	if eb.Width > 0 {
		bannerStyle = bannerStyle.Width(eb.Width - (layout.SpacingXS * 2) - 2)
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render(icon+" "+eb.Title) + "\n")

	textStyle := lipgloss.NewStyle().Foreground(styles.ColorText)
	content.WriteString(textStyle.Render(eb.Message))

	if len(eb.Actions) > 0 {
		content.WriteString("\n")
		mutedStyle := lipgloss.NewStyle().Foreground(styles.ColorMuted)
		for _, action := range eb.Actions {
			content.WriteString("\n" + mutedStyle.Render("• "+action))
		}
	}

	return bannerStyle.Render(content.String())
}
