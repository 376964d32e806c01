package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const currentFile = "current.json"

// Store persists plans as JSON files under one directory, with
// current.json tracking the plan being executed.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) ensure() error {
	return os.MkdirAll(s.root, 0o755)
}

// Save writes a plan to its own file, keyed by plan ID.
func (s *Store) Save(p *Plan) error {
	if err := s.ensure(); err != nil {
		return fmt.Errorf("failed to create plans directory: %w", err)
	}
	return s.write(filepath.Join(s.root, p.ID+".json"), p)
}

// Load reads a plan by ID.
func (s *Store) Load(id string) (*Plan, error) {
	return s.read(filepath.Join(s.root, id+".json"))
}

// SetCurrent marks p as the active plan and snapshots its step statuses.
func (s *Store) SetCurrent(p *Plan) error {
	if err := s.ensure(); err != nil {
		return fmt.Errorf("failed to create plans directory: %w", err)
	}
	return s.write(filepath.Join(s.root, currentFile), p)
}

// Current returns the active plan, or nil when none is in progress.
func (s *Store) Current() (*Plan, error) {
	p, err := s.read(filepath.Join(s.root, currentFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// ClearCurrent forgets the active plan. The plan's own file stays.
func (s *Store) ClearCurrent() error {
	err := os.Remove(filepath.Join(s.root, currentFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear current plan: %w", err)
	}
	return nil
}

func (s *Store) write(path string, p *Plan) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	return nil
}

func (s *Store) read(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}
	return &p, nil
}
