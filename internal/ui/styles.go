package ui

// defaultThemeManager is the global theme manager instance.
// It starts on the Claude Warm theme and is switched once the
// configured theme is known.
var defaultThemeManager *ThemeManager

func init() {
	defaultThemeManager = NewThemeManager(ThemeClaudeWarm)
}

// SetGlobalTheme updates the global theme manager with a new theme.
// Unknown names fall back to the default theme.
func SetGlobalTheme(theme string) {
	selectedTheme := GetThemeByName(theme)
	defaultThemeManager.SetTheme(selectedTheme)
}

// GetGlobalThemeManager returns the global theme manager instance.
// Views should read styles through GetStyles on every render so a theme
// switch takes effect immediately.
func GetGlobalThemeManager() *ThemeManager {
	return defaultThemeManager
}
