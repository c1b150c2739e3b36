package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SeamusWaldron/cuberobot"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Serial.BaudRate != 9600 {
		t.Errorf("BaudRate = %d, want 9600", cfg.Serial.BaudRate)
	}
	if cfg.AlgorithmValue() != cuberobot.Kociemba {
		t.Errorf("Algorithm = %q, want Kociemba", cfg.Algorithm)
	}

	r := cfg.Rig()
	if r.SettleDelay != 3*time.Second || r.QuietPeriod != time.Second {
		t.Errorf("rig timings = %v settle, %v quiet", r.SettleDelay, r.QuietPeriod)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Serial.Port == "" {
		t.Error("default port is empty")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	cfg := Default()
	cfg.Serial.Port = "COM6"
	cfg.Algorithm = "CFOP"
	cfg.SolverCommand = []string{"/opt/solver", "--quiet"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}
	if loaded.Serial.Port != "COM6" || loaded.AlgorithmValue() != cuberobot.CFOP {
		t.Errorf("loaded = %+v", loaded)
	}
	if len(loaded.SolverCommand) != 2 {
		t.Errorf("SolverCommand = %q", loaded.SolverCommand)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"serial": {"port": "/dev/ttyUSB1"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Serial.Port != "/dev/ttyUSB1" {
		t.Errorf("Port = %q", cfg.Serial.Port)
	}
	if cfg.Serial.BaudRate != 9600 || cfg.Algorithm != "Kociemba" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsUnknownAlgorithm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"algorithm": "Thistlethwaite"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfigFrom(path); !errors.Is(err, cuberobot.ErrUnknownAlgorithm) {
		t.Errorf("error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestLogDirectory(t *testing.T) {
	cfg := Default()
	cfg.LogDir = "/var/log/cuberobot"
	dir, err := cfg.LogDirectory()
	if err != nil || dir != "/var/log/cuberobot" {
		t.Errorf("LogDirectory = %q, %v", dir, err)
	}
}
