package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/gosplit/internal/app"
	"github.com/sadopc/gosplit/internal/config"
	"github.com/sadopc/gosplit/internal/core/history"
	"github.com/sadopc/gosplit/internal/logging"
	"github.com/sadopc/gosplit/pkg/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "history":
			historyCmd()
			return
		case "reset":
			resetCmd()
			return
		case "validate":
			validateCmd()
			return
		case "themes":
			themesCmd()
			return
		case "completion":
			completionCmd()
			return
		case "version":
			fmt.Printf("gosplit %s (%s) built %s\n", version.Version, version.Commit, version.Date)
			return
		case "help":
			printHelp()
			return
		}
	}
	tuiCmd()
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `gosplit - A resizable two-pane split view for the terminal

Usage:
  gosplit [flags] [file]           Launch TUI with file in the first pane
  gosplit <command> [args] [flags] Run a subcommand

Commands:
  history     List recorded splitter placements
  reset       Forget all recorded placements
  validate    Validate config YAML files
  themes      List available themes
  completion  Generate shell completion scripts (bash, zsh, fish)
  version     Print version information
  help        Show this help message

TUI Flags:
  --config <path>      Path to a config.yaml file
  --axis <h|v>         Split axis (horizontal or vertical)
  --position <value>   Initial divider position (40%%, 0.4 or 30)
  --theme <name>       Theme name
  --version            Print version and exit

Run 'gosplit <command> --help' for more information about a command.
`)
}

// loadConfig reads path when set, the default config file otherwise.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Load(), nil
	}
	return config.LoadFile(path)
}

func tuiCmd() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	configFlag := flag.String("config", "", "Path to a config.yaml file")
	axisFlag := flag.String("axis", "", "Split axis (horizontal or vertical)")
	positionFlag := flag.String("position", "", "Initial divider position (40%, 0.4 or 30)")
	themeFlag := flag.String("theme", "", "Theme name")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("gosplit %s (%s) built %s\n", version.Version, version.Commit, version.Date)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *axisFlag != "" {
		cfg.Axis = *axisFlag
	}
	if *positionFlag != "" {
		cfg.Position = *positionFlag
	}
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}

	doc, err := loadDocument(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading file: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	log := logging.New("main")
	hist, err := history.NewStore(cfg.StatePath())
	if err != nil {
		// Placements are a convenience; run without them.
		log.Warn("placement history unavailable", "err", err)
		hist = nil
	} else {
		defer hist.Close()
	}

	model, err := app.New(cfg, doc, hist)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadDocument reads the file shown in the first pane. Without a path the
// pane shows a short usage text.
func loadDocument(path string) (app.Document, error) {
	if path == "" {
		return app.Document{Name: "welcome.md", Data: []byte(welcomeText)}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return app.Document{}, err
	}
	return app.Document{Name: filepath.Base(path), Data: data}, nil
}

// setupLogging sends logs to the configured file, or discards them, while
// the TUI owns the terminal.
func setupLogging(cfg config.Config) (func(), error) {
	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))

	path := cfg.LogPath()
	if path == "" {
		logging.SetOutput(nil)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	logging.SetOutput(f)
	return func() {
		logging.SetOutput(nil)
		f.Close()
	}, nil
}

const welcomeText = `# gosplit

Drag the divider with the mouse to resize the panes.

- Tab cycles focus between the panes and the splitter
- Arrow keys nudge a focused splitter, Shift+Arrow moves faster
- Esc cancels a drag in progress
- r resets the splitter, y copies the layout geometry
- ? shows all keys

Pass a file to view it here: gosplit main.go
`
