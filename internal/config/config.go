package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/gosplit/internal/ui/layout"
	"github.com/sadopc/gosplit/internal/ui/splitpane"
)

// ErrInvalidPosition reports a position value that is neither a percentage,
// a fraction nor a cell offset.
var ErrInvalidPosition = layout.ErrInvalidPosition

// Config holds the application configuration.
type Config struct {
	Theme string `yaml:"theme"`

	Axis          string `yaml:"axis"`
	DividerSize   int    `yaml:"divider_size"`
	Position      string `yaml:"position"`
	Movable       bool   `yaml:"movable"`
	TouchSlop     int    `yaml:"touch_slop"`
	MinPaneSize   int    `yaml:"min_pane_size"`
	DividerColor  string `yaml:"divider_color"`
	DraggingColor string `yaml:"dragging_color"`

	// StateDB is the placement history database. Empty means
	// state.db in the config directory.
	StateDB string `yaml:"state_db"`
	// LogFile receives logs while the TUI runs. Empty discards them.
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:       "catppuccin-mocha",
		Axis:        "horizontal",
		DividerSize: 1,
		Position:    "50%",
		Movable:     true,
		TouchSlop:   1,
		MinPaneSize: 4,
		LogLevel:    "info",
	}
}

// Validate checks the values that can be wrong independently of the
// terminal size.
func (c Config) Validate() error {
	var errs []error
	if _, err := layout.ParseAxis(c.Axis); err != nil {
		errs = append(errs, err)
	}
	if _, err := layout.ParsePosition(c.Position); err != nil {
		errs = append(errs, err)
	}
	if c.DividerSize < 0 {
		errs = append(errs, fmt.Errorf("divider_size must not be negative, got %d", c.DividerSize))
	}
	if c.TouchSlop < 0 {
		errs = append(errs, fmt.Errorf("touch_slop must not be negative, got %d", c.TouchSlop))
	}
	if c.MinPaneSize < 0 {
		errs = append(errs, fmt.Errorf("min_pane_size must not be negative, got %d", c.MinPaneSize))
	}
	return errors.Join(errs...)
}

// SplitOptions converts the splitter settings to widget options. Colors left
// empty in the config are taken from fallbackDivider and fallbackDragging.
func (c Config) SplitOptions(fallbackDivider, fallbackDragging lipgloss.Color) (splitpane.Options, error) {
	if err := c.Validate(); err != nil {
		return splitpane.Options{}, fmt.Errorf("invalid config: %w", err)
	}
	axis, _ := layout.ParseAxis(c.Axis)
	pos, _ := layout.ParsePosition(c.Position)

	opts := splitpane.Options{
		Axis:          axis,
		Thickness:     c.DividerSize,
		ZeroThickness: c.DividerSize == 0,
		Position:      pos,
		DividerFill:   fallbackDivider,
		DraggingFill:  fallbackDragging,
		Fixed:         !c.Movable,
		TouchSlop:     c.TouchSlop,
		MinPaneSize:   c.MinPaneSize,
	}
	if c.DividerColor != "" {
		opts.DividerFill = lipgloss.Color(c.DividerColor)
	}
	if c.DraggingColor != "" {
		opts.DraggingFill = lipgloss.Color(c.DraggingColor)
	}
	return opts, nil
}
