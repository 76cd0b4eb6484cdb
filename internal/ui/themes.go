package ui

import "github.com/yourusername/ghsearch/internal/domain"

// Available theme presets for the TUI.
var (
	// ThemeClaudeWarm is the default theme with warm orange-rust tones.
	ThemeClaudeWarm = domain.Theme{
		Name:        "claude-warm",
		Description: "Professional warm theme with orange-rust accents (default)",
		Colors: domain.ThemeColors{
			Primary:   "#C15F3C",
			Secondary: "#A14A2F",
			Success:   "#7A9A6E",
			Warning:   "#D4945A",
			Error:     "#C16B6B",
			Muted:     "#B1ADA1",
			Border:    "#3A3631",
			Selected:  "#C15F3C",
			Text:      "#E8E6E3",
		},
		Backgrounds: domain.ThemeBackgrounds{
			FormInput:   "#2F2A1F",
			FormFocused: "#3A2F1F",
			List:        "#1F2937",
			Toast:       "#1A1A1A",
		},
	}

	// ThemeOceanBlue is a calm blue theme.
	ThemeOceanBlue = domain.Theme{
		Name:        "ocean-blue",
		Description: "Cool blue theme for focus and reduced eye strain",
		Colors: domain.ThemeColors{
			Primary:   "#4A90E2",
			Secondary: "#357ABD",
			Success:   "#6EA06E",
			Warning:   "#E2A04A",
			Error:     "#E24A4A",
			Muted:     "#A1B1C1",
			Border:    "#2A3641",
			Selected:  "#4A90E2",
			Text:      "#E3E8ED",
		},
		Backgrounds: domain.ThemeBackgrounds{
			FormInput:   "#1F2A37",
			FormFocused: "#2A3641",
			List:        "#1A2532",
			Toast:       "#1A2532",
		},
	}

	// ThemeForestGreen is a natural green theme.
	ThemeForestGreen = domain.Theme{
		Name:        "forest-green",
		Description: "Natural green theme for balanced, calming sessions",
		Colors: domain.ThemeColors{
			Primary:   "#6B9A6B",
			Secondary: "#557A55",
			Success:   "#7AAA7A",
			Warning:   "#D4A45A",
			Error:     "#C17B6B",
			Muted:     "#A1B1A1",
			Border:    "#2A3A2A",
			Selected:  "#6B9A6B",
			Text:      "#E3EDE3",
		},
		Backgrounds: domain.ThemeBackgrounds{
			FormInput:   "#1F2A1F",
			FormFocused: "#2A3A2A",
			List:        "#1A251A",
			Toast:       "#1A251A",
		},
	}

	// ThemeMonochrome is a minimalist grayscale theme.
	ThemeMonochrome = domain.Theme{
		Name:        "monochrome",
		Description: "Minimalist grayscale theme",
		Colors: domain.ThemeColors{
			Primary:   "#888888",
			Secondary: "#666666",
			Success:   "#999999",
			Warning:   "#AAAAAA",
			Error:     "#777777",
			Muted:     "#666666",
			Border:    "#333333",
			Selected:  "#888888",
			Text:      "#EEEEEE",
		},
		Backgrounds: domain.ThemeBackgrounds{
			FormInput:   "#252525",
			FormFocused: "#2A2A2A",
			List:        "#1F1F1F",
			Toast:       "#1F1F1F",
		},
	}
)

// AllThemes returns a slice of all available themes.
func AllThemes() []domain.Theme {
	return []domain.Theme{
		ThemeClaudeWarm,
		ThemeOceanBlue,
		ThemeForestGreen,
		ThemeMonochrome,
	}
}

// GetThemeByName returns a theme by its name, or the default theme if not found.
func GetThemeByName(name string) domain.Theme {
	for _, theme := range AllThemes() {
		if theme.Name == name {
			return theme
		}
	}
	return ThemeClaudeWarm
}

// GetThemeNames returns a slice of all theme names.
func GetThemeNames() []string {
	themes := AllThemes()
	names := make([]string, len(themes))
	for i, theme := range themes {
		names[i] = theme.Name
	}
	return names
}
