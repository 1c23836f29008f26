package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/pretty"

	"github.com/sadopc/gosplit/internal/core/history"
)

func historyCmd() {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	configFlag := fs.String("config", "", "Path to a config.yaml file")
	limitFlag := fs.Int("limit", 20, "Maximum number of placements to show")
	searchFlag := fs.String("search", "", "Only show placements whose layout key contains this text")
	jsonFlag := fs.Bool("json", false, "Print placements as JSON")
	colorFlag := fs.Bool("color", false, "Colorize JSON output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gosplit history [flags]\n\n")
		fmt.Fprintf(os.Stderr, "List recorded splitter placements, newest first.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gosplit history --limit 5\n")
		fmt.Fprintf(os.Stderr, "  gosplit history --search main.go --json\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	store := openStore(*configFlag)
	defer store.Close()

	var (
		entries []history.Entry
		err     error
	)
	if *searchFlag != "" {
		entries, err = store.Search(*searchFlag)
	} else {
		entries, err = store.List(*limitFlag, 0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *jsonFlag {
		if err := printHistoryJSON(os.Stdout, entries, *colorFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			os.Exit(1)
		}
		return
	}
	printHistoryText(os.Stdout, entries, time.Now())
}

func resetCmd() {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)
	configFlag := fs.String("config", "", "Path to a config.yaml file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gosplit reset [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Forget all recorded splitter placements.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	store := openStore(*configFlag)
	defer store.Close()

	if err := store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Placement history cleared")
}

func openStore(configPath string) *history.Store {
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store, err := history.NewStore(cfg.StatePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history: %v\n", err)
		os.Exit(1)
	}
	return store
}

type jsonEntry struct {
	ID         int64     `json:"id"`
	Session    string    `json:"session"`
	Key        string    `json:"key"`
	Axis       string    `json:"axis"`
	ByFraction bool      `json:"by_fraction"`
	Offset     int       `json:"offset"`
	Fraction   float64   `json:"fraction"`
	FromUser   bool      `json:"from_user"`
	Timestamp  time.Time `json:"timestamp"`
}

func printHistoryJSON(w io.Writer, entries []history.Entry, color bool) error {
	out := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, jsonEntry(e))
	}
	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	data = pretty.Pretty(data)
	if color {
		data = pretty.Color(data, nil)
	}
	_, err = w.Write(data)
	return err
}

func printHistoryText(w io.Writer, entries []history.Entry, now time.Time) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No placements recorded")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tLAYOUT\tPOSITION\tOFFSET\tSOURCE")
	for _, e := range entries {
		pos := fmt.Sprintf("%.0f%%", e.Percent())
		if !e.ByFraction {
			pos = fmt.Sprintf("%d cells", e.Offset)
		}
		source := "api"
		if e.FromUser {
			source = "user"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			humanize.RelTime(e.Timestamp, now, "ago", "from now"), e.Key, pos, e.Offset, source)
	}
	tw.Flush()
}
