package config

import (
	"actionmenu/log"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	StateFileName = "state.json"
	// historyLimit caps how many launches the state file keeps.
	historyLimit = 20
)

// Launch records one chosen action.
type Launch struct {
	ID     string    `json:"id"`
	Label  string    `json:"label"`
	Action string    `json:"action"`
	At     time.Time `json:"at"`
}

// State is what the menu remembers between runs: the last chosen button, so focus starts there,
// and a short launch history.
type State struct {
	LastLabel string   `json:"last_label"`
	History   []Launch `json:"history"`
}

// DefaultState returns the default state
func DefaultState() *State {
	return &State{History: []Launch{}}
}

// StateStore reads and writes the state file. Access is serialized across processes with a lock
// file next to it, since two menus may be open at once.
type StateStore struct {
	dir string
}

// NewStateStore returns a store keeping its files in dir.
func NewStateStore(dir string) *StateStore {
	return &StateStore{dir: dir}
}

// DefaultStateDir returns $XDG_STATE_HOME/actionmenu, or ~/.local/state/actionmenu.
func DefaultStateDir() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get state home directory: %w", err)
	}
	return filepath.Join(home, ".local", "state", AppName), nil
}

func (s *StateStore) path() string {
	return filepath.Join(s.dir, StateFileName)
}

// Load reads the state. If it cannot be done, the default state is returned.
func (s *StateStore) Load() *State {
	if _, err := os.Stat(s.dir); err != nil {
		return DefaultState()
	}

	lock := NewFileLock(s.path())
	if err := lock.RLock(); err != nil {
		// Stale data beats no data.
		log.WarningLog.Printf("failed to acquire read lock: %v", err)
	} else {
		defer lock.Unlock()
	}

	state, err := s.read()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.WarningLog.Printf("failed to read state file: %v", err)
		}
		return DefaultState()
	}
	return state
}

// RecordLaunch appends a launch to the history and remembers its label.
func (s *StateStore) RecordLaunch(l Launch) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	lock := NewFileLock(s.path())
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	state, err := s.read()
	if err != nil {
		state = DefaultState()
	}
	state.LastLabel = l.Label
	state.History = append(state.History, l)
	if over := len(state.History) - historyLimit; over > 0 {
		state.History = state.History[over:]
	}
	return s.write(state)
}

func (s *StateStore) read() (*State, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return nil, err
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	return &state, nil
}

func (s *StateStore) write(state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	return os.WriteFile(s.path(), data, 0644)
}
