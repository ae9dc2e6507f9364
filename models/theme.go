package models

// Theme preference values. Persisted independently of the cart.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// NormalizeTheme validates a stored or submitted theme value, falling
// back to light for anything unknown or corrupt.
func NormalizeTheme(s string) string {
	if s == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// ValidTheme reports whether s is an accepted theme value.
func ValidTheme(s string) bool {
	return s == ThemeLight || s == ThemeDark
}
