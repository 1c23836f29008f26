package theme

import "github.com/charmbracelet/lipgloss"

// CatppuccinMocha is the default dark theme.
var CatppuccinMocha = Theme{
	Name:    "Catppuccin Mocha",
	Base:    lipgloss.Color("#1e1e2e"),
	Surface: lipgloss.Color("#313244"),
	Overlay: lipgloss.Color("#45475a"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Muted:   lipgloss.Color("#585b70"),

	Mauve:  lipgloss.Color("#cba6f7"),
	Red:    lipgloss.Color("#f38ba8"),
	Peach:  lipgloss.Color("#fab387"),
	Yellow: lipgloss.Color("#f9e2af"),
	Green:  lipgloss.Color("#a6e3a1"),
	Teal:   lipgloss.Color("#94e2d5"),
	Blue:   lipgloss.Color("#89b4fa"),

	BorderFocused:   lipgloss.Color("#cba6f7"),
	BorderUnfocused: lipgloss.Color("#585b70"),
	Divider:         lipgloss.Color("#45475a"),
	DividerDragging: lipgloss.Color("#cba6f7"),
}

// CatppuccinLatte is the light Catppuccin flavor.
var CatppuccinLatte = Theme{
	Name:    "Catppuccin Latte",
	Base:    lipgloss.Color("#eff1f5"),
	Surface: lipgloss.Color("#ccd0da"),
	Overlay: lipgloss.Color("#9ca0b0"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),
	Muted:   lipgloss.Color("#8c8fa1"),

	Mauve:  lipgloss.Color("#8839ef"),
	Red:    lipgloss.Color("#d20f39"),
	Peach:  lipgloss.Color("#fe640b"),
	Yellow: lipgloss.Color("#df8e1d"),
	Green:  lipgloss.Color("#40a02b"),
	Teal:   lipgloss.Color("#179299"),
	Blue:   lipgloss.Color("#1e66f5"),

	BorderFocused:   lipgloss.Color("#8839ef"),
	BorderUnfocused: lipgloss.Color("#8c8fa1"),
	Divider:         lipgloss.Color("#9ca0b0"),
	DividerDragging: lipgloss.Color("#8839ef"),
}

// Nord is an arctic, north-bluish palette.
var Nord = Theme{
	Name:    "Nord",
	Base:    lipgloss.Color("#2e3440"),
	Surface: lipgloss.Color("#3b4252"),
	Overlay: lipgloss.Color("#434c5e"),

	Text:    lipgloss.Color("#eceff4"),
	Subtext: lipgloss.Color("#d8dee9"),
	Muted:   lipgloss.Color("#4c566a"),

	Mauve:  lipgloss.Color("#b48ead"),
	Red:    lipgloss.Color("#bf616a"),
	Peach:  lipgloss.Color("#d08770"),
	Yellow: lipgloss.Color("#ebcb8b"),
	Green:  lipgloss.Color("#a3be8c"),
	Teal:   lipgloss.Color("#8fbcbb"),
	Blue:   lipgloss.Color("#5e81ac"),

	BorderFocused:   lipgloss.Color("#88c0d0"),
	BorderUnfocused: lipgloss.Color("#4c566a"),
	Divider:         lipgloss.Color("#434c5e"),
	DividerDragging: lipgloss.Color("#88c0d0"),
}

// Dracula is the classic dark purple palette.
var Dracula = Theme{
	Name:    "Dracula",
	Base:    lipgloss.Color("#282a36"),
	Surface: lipgloss.Color("#44475a"),
	Overlay: lipgloss.Color("#6272a4"),

	Text:    lipgloss.Color("#f8f8f2"),
	Subtext: lipgloss.Color("#d0d0d0"),
	Muted:   lipgloss.Color("#6272a4"),

	Mauve:  lipgloss.Color("#bd93f9"),
	Red:    lipgloss.Color("#ff5555"),
	Peach:  lipgloss.Color("#ffb86c"),
	Yellow: lipgloss.Color("#f1fa8c"),
	Green:  lipgloss.Color("#50fa7b"),
	Teal:   lipgloss.Color("#8be9fd"),
	Blue:   lipgloss.Color("#6272a4"),

	BorderFocused:   lipgloss.Color("#bd93f9"),
	BorderUnfocused: lipgloss.Color("#6272a4"),
	Divider:         lipgloss.Color("#44475a"),
	DividerDragging: lipgloss.Color("#ff79c6"),
}

// GruvboxDark is the retro groove dark palette.
var GruvboxDark = Theme{
	Name:    "Gruvbox Dark",
	Base:    lipgloss.Color("#282828"),
	Surface: lipgloss.Color("#3c3836"),
	Overlay: lipgloss.Color("#504945"),

	Text:    lipgloss.Color("#ebdbb2"),
	Subtext: lipgloss.Color("#d5c4a1"),
	Muted:   lipgloss.Color("#665c54"),

	Mauve:  lipgloss.Color("#b16286"),
	Red:    lipgloss.Color("#cc241d"),
	Peach:  lipgloss.Color("#d65d0e"),
	Yellow: lipgloss.Color("#d79921"),
	Green:  lipgloss.Color("#98971a"),
	Teal:   lipgloss.Color("#689d6a"),
	Blue:   lipgloss.Color("#458588"),

	BorderFocused:   lipgloss.Color("#d79921"),
	BorderUnfocused: lipgloss.Color("#665c54"),
	Divider:         lipgloss.Color("#504945"),
	DividerDragging: lipgloss.Color("#d79921"),
}

// TokyoNight is the Tokyo Night storm palette.
var TokyoNight = Theme{
	Name:    "Tokyo Night",
	Base:    lipgloss.Color("#1a1b26"),
	Surface: lipgloss.Color("#292e42"),
	Overlay: lipgloss.Color("#3b4261"),

	Text:    lipgloss.Color("#c0caf5"),
	Subtext: lipgloss.Color("#a9b1d6"),
	Muted:   lipgloss.Color("#565f89"),

	Mauve:  lipgloss.Color("#bb9af7"),
	Red:    lipgloss.Color("#f7768e"),
	Peach:  lipgloss.Color("#ff9e64"),
	Yellow: lipgloss.Color("#e0af68"),
	Green:  lipgloss.Color("#9ece6a"),
	Teal:   lipgloss.Color("#73daca"),
	Blue:   lipgloss.Color("#7aa2f7"),

	BorderFocused:   lipgloss.Color("#bb9af7"),
	BorderUnfocused: lipgloss.Color("#565f89"),
	Divider:         lipgloss.Color("#3b4261"),
	DividerDragging: lipgloss.Color("#7aa2f7"),
}
