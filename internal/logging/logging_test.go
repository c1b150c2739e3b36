package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesTerminalAndFile(t *testing.T) {
	if isSystemdService() {
		t.Skip("terminal handler is replaced by the journal under systemd")
	}

	dir := t.TempDir()
	var terminal bytes.Buffer

	logger, closer, err := New(Options{Dir: dir, Terminal: &terminal})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("cube state generated", "state", "wwwwwwwww")
	logger.Debug("hidden at info level")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(terminal.String(), "cube state generated") {
		t.Errorf("terminal output = %q", terminal.String())
	}
	if strings.Contains(terminal.String(), "hidden") {
		t.Error("debug record written at info level")
	}

	data, err := os.ReadFile(filepath.Join(dir, LogFile))
	if err != nil {
		t.Fatal(err)
	}
	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &record); err != nil {
		t.Fatalf("log file is not one JSON record: %q", data)
	}
	if record["msg"] != "cube state generated" || record["state"] != "wwwwwwwww" {
		t.Errorf("record = %v", record)
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	if isSystemdService() {
		t.Skip("terminal handler is replaced by the journal under systemd")
	}

	var terminal bytes.Buffer
	logger, closer, err := New(Options{Terminal: &terminal, Verbose: true})
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	defer SetLevel(0)

	logger.Debug("serial bytes", "n", 3)
	if !strings.Contains(terminal.String(), "serial bytes") {
		t.Errorf("debug record missing: %q", terminal.String())
	}
}

func TestToJournalKey(t *testing.T) {
	tests := map[string]string{
		"state":       "STATE",
		"move_count":  "MOVE_COUNT",
		"rig.port":    "RIG_PORT",
		"duration-ms": "DURATION_MS",
	}
	for in, want := range tests {
		if got := toJournalKey(in); got != want {
			t.Errorf("toJournalKey(%q) = %q, want %q", in, got, want)
		}
	}
}
