package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/gosplit/internal/config"
	"github.com/sadopc/gosplit/internal/core/history"
)

func sampleEntries(now time.Time) []history.Entry {
	return []history.Entry{
		{ID: 2, Key: "main.go|horizontal", Axis: "horizontal", ByFraction: false, Offset: 70, Fraction: 0.58, FromUser: true, Timestamp: now.Add(-3 * time.Minute)},
		{ID: 1, Key: "main.go|horizontal", Axis: "horizontal", ByFraction: true, Offset: 60, Fraction: 0.5, Timestamp: now.Add(-2 * time.Hour)},
	}
}

func TestPrintHistoryText(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	printHistoryText(&buf, sampleEntries(now), now)
	out := buf.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "WHEN") {
		t.Errorf("missing header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "3 minutes ago") || !strings.Contains(lines[1], "70 cells") || !strings.Contains(lines[1], "user") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "2 hours ago") || !strings.Contains(lines[2], "50%") || !strings.Contains(lines[2], "api") {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestPrintHistoryText_Empty(t *testing.T) {
	var buf bytes.Buffer
	printHistoryText(&buf, nil, time.Now())
	if strings.TrimSpace(buf.String()) != "No placements recorded" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrintHistoryJSON(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := printHistoryJSON(&buf, sampleEntries(now), false); err != nil {
		t.Fatalf("printHistoryJSON: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0]["offset"] != float64(70) || got[0]["from_user"] != true {
		t.Errorf("entry 0 = %v", got[0])
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("expected indented JSON")
	}
}

func TestPrintHistoryJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := printHistoryJSON(&buf, nil, false); err != nil {
		t.Fatalf("printHistoryJSON: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("output = %q, want []", buf.String())
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	good := write("good.yaml", "axis: vertical\nposition: 30%\n")
	warnings, err := validateFile(good)
	if err != nil || len(warnings) != 0 {
		t.Fatalf("validateFile(good) = %v, %v", warnings, err)
	}

	unknownTheme := write("theme.yaml", "theme: no-such-theme\n")
	warnings, err = validateFile(unknownTheme)
	if err != nil {
		t.Fatalf("validateFile(theme): %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "no-such-theme") {
		t.Errorf("warnings = %v", warnings)
	}

	typo := write("typo.yaml", "theme: dracla\n")
	warnings, err = validateFile(typo)
	if err != nil {
		t.Fatalf("validateFile(typo): %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], `did you mean "Dracula"`) {
		t.Errorf("warnings = %v", warnings)
	}

	bad := write("bad.yaml", "position: left\n")
	if _, err := validateFile(bad); err == nil {
		t.Error("expected error for invalid position")
	}

	empty := write("empty.yaml", "")
	if _, err := validateFile(empty); err == nil {
		t.Error("expected error for empty file")
	}

	if _, err := validateFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadDocument(t *testing.T) {
	doc, err := loadDocument("")
	if err != nil {
		t.Fatalf("loadDocument(\"\"): %v", err)
	}
	if doc.Name != "welcome.md" || len(doc.Data) == 0 {
		t.Errorf("welcome doc = %q (%d bytes)", doc.Name, len(doc.Data))
	}

	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`{"a":1}`), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err = loadDocument(path)
	if err != nil {
		t.Fatalf("loadDocument: %v", err)
	}
	if doc.Name != "data.json" || string(doc.Data) != `{"a":1}` {
		t.Errorf("doc = %q %q", doc.Name, doc.Data)
	}

	if _, err := loadDocument(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "gosplit.log")

	closeLog, err := setupLogging(cfg)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if _, err := os.Stat(cfg.LogFile); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	closeLog()
}
