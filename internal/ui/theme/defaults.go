package theme

import (
	"os"
	"path/filepath"
)

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}

// CustomDir returns the directory user themes are loaded from.
func CustomDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gosplit", "themes")
}

// Resolve looks up a theme by name: catalog -> custom themes -> fallback to Mocha.
func Resolve(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	return CatppuccinMocha
}

// Lookup is Resolve without the fallback.
func Lookup(name string) (Theme, bool) {
	if t, ok := Get(name); ok {
		return t, true
	}

	if dir := CustomDir(); dir != "" {
		customs := LoadCustomThemes(dir)
		if t, ok := customs[normalizeKey(name)]; ok {
			return t, true
		}
	}
	return Theme{}, false
}

// WithDividerColors overrides the divider colors with non-empty values.
func WithDividerColors(t Theme, divider, dragging string) Theme {
	if divider != "" {
		t.Divider = lipglossColor(divider)
	}
	if dragging != "" {
		t.DividerDragging = lipglossColor(dragging)
	}
	return t
}
