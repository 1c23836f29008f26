package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/sahilm/fuzzy"

	"github.com/sadopc/gosplit/internal/config"
	"github.com/sadopc/gosplit/internal/ui/theme"
)

func validateCmd() {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gosplit validate <config.yaml> [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Validate config YAML files.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  gosplit validate ~/.config/gosplit/config.yaml\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: at least one file path is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	hasErrors := false
	for _, path := range fs.Args() {
		warnings, err := validateFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
			hasErrors = true
			continue
		}
		fmt.Printf("OK   %s\n", path)
		for _, w := range warnings {
			fmt.Printf("     warning: %s\n", w)
		}
	}

	if hasErrors {
		os.Exit(1)
	}
}

// validateFile loads and checks one config file. Problems that still let
// the program start are returned as warnings.
func validateFile(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if info.Size() == 0 {
		return nil, errors.New("file is empty")
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var warnings []string
	if cfg.Theme != "" && !knownTheme(cfg.Theme) {
		w := fmt.Sprintf("unknown theme %q, the default will be used", cfg.Theme)
		if s := suggestTheme(cfg.Theme); s != "" {
			w += fmt.Sprintf(" (did you mean %q?)", s)
		}
		warnings = append(warnings, w)
	}
	if cfg.DividerSize == 0 && cfg.TouchSlop == 0 && cfg.Movable {
		warnings = append(warnings, "zero-width divider without touch slop cannot be grabbed")
	}
	return warnings, nil
}

func knownTheme(name string) bool {
	_, ok := theme.Lookup(name)
	return ok
}

// suggestTheme returns the best fuzzy match among the built-in themes.
func suggestTheme(name string) string {
	matches := fuzzy.Find(name, theme.Names())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

func themesCmd() {
	for _, name := range theme.Names() {
		fmt.Println(name)
	}
	custom := theme.LoadCustomThemes(theme.CustomDir())
	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Printf("%s (custom)\n", name)
	}
}
