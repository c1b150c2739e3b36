// Package workspace keeps the operator's session between CLI invocations.
package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeamusWaldron/cuberobot"
)

// AppState represents the persistent workspace state.
type AppState struct {
	Session        cuberobot.Snapshot `json:"session"`
	LastSolutionID string             `json:"last_solution_id,omitempty"`
	LastPort       string             `json:"last_port,omitempty"`
}

// StateFile manages the workspace state file.
type StateFile struct {
	path  string
	state AppState
}

// DefaultStatePath returns the default state file path.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".cuberobot")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "state.json"), nil
}

// NewStateFile creates a state file manager, loading the file if it exists.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}

	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return sf, nil
}

// NewDefaultStateFile creates a state file manager with the default path.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path)
}

// Path returns the state file path.
func (sf *StateFile) Path() string {
	return sf.path
}

// Load loads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}

	var st AppState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", sf.path, err)
	}
	sf.state = st
	return nil
}

// Save saves the state to disk.
func (sf *StateFile) Save() error {
	if err := os.MkdirAll(filepath.Dir(sf.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// State returns the current state.
func (sf *StateFile) State() AppState {
	return sf.state
}

// Session rebuilds a session from the stored snapshot.
func (sf *StateFile) Session(opts ...cuberobot.Option) (*cuberobot.Session, error) {
	s := cuberobot.NewSession(opts...)
	if err := s.Restore(sf.state.Session); err != nil {
		return nil, fmt.Errorf("failed to restore session from %s: %w", sf.path, err)
	}
	return s, nil
}

// Store snapshots the session and saves the file.
func (sf *StateFile) Store(s *cuberobot.Session) error {
	sf.state.Session = s.Snapshot()
	return sf.Save()
}

// SetLastSolution records the history ID of the last solution.
func (sf *StateFile) SetLastSolution(solutionID string) error {
	sf.state.LastSolutionID = solutionID
	return sf.Save()
}

// LastSolutionID returns the history ID of the last solution.
func (sf *StateFile) LastSolutionID() string {
	return sf.state.LastSolutionID
}

// SetLastPort records the serial port last used successfully.
func (sf *StateFile) SetLastPort(port string) error {
	sf.state.LastPort = port
	return sf.Save()
}

// Reset clears the session and forgets the last solution. The last port is
// kept.
func (sf *StateFile) Reset(s *cuberobot.Session) error {
	s.Reset()
	sf.state = AppState{Session: s.Snapshot(), LastPort: sf.state.LastPort}
	return sf.Save()
}
