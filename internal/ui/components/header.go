package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghsearch/internal/ui"
)

const logo = `
   ██████╗ ██╗  ██╗███████╗
  ██╔════╝ ██║  ██║██╔════╝
  ██║  ███╗███████║███████╗
  ██║   ██║██╔══██║╚════██║
  ╚██████╔╝██║  ██║███████║
   ╚═════╝ ╚═╝  ╚═╝╚══════╝`

// RenderLogo renders the ASCII logo with an optional muted subtitle.
func RenderLogo(subtitle string) string {
	styles := ui.GetGlobalThemeManager().GetStyles()

	out := lipgloss.NewStyle().Foreground(styles.ColorPrimary).Render(logo)
	if subtitle != "" {
		out += "\n" + styles.Metadata.Render(subtitle)
	}
	return out
}

// RenderBranding renders a one-line title for narrow terminals.
func RenderBranding() string {
	styles := ui.GetGlobalThemeManager().GetStyles()
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.ColorPrimary).Render("ghsearch")
	subtitle := lipgloss.NewStyle().Foreground(styles.ColorMuted).Render("GitHub repository search")
	return title + " - " + subtitle
}

// RenderHeader renders a consistent header with title and optional subtitle
func RenderHeader(title, subtitle string) string {
	styles := ui.GetGlobalThemeManager().GetStyles()

	header := lipgloss.NewStyle().Bold(true).Foreground(styles.ColorPrimary).Render(title)
	if subtitle != "" {
		header += "\n" + lipgloss.NewStyle().Foreground(styles.ColorMuted).Render(subtitle)
	}
	return header
}

// RenderDivider renders a horizontal divider in the current theme.
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return ui.GetGlobalThemeManager().RenderSeparator(width)
}
