// Package storage persists tool state as JSON files under the project's
// .webmend/ directory.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Project records what webmend knows about the project it maintains.
type Project struct {
	Name      string `json:"name"`
	Root      string `json:"root"`
	Framework string `json:"framework,omitempty"` // e.g. "react"
	// Content hashes of the last generated config files, for drift hints.
	TsconfigHash   string    `json:"tsconfig_hash,omitempty"`
	ViteConfigHash string    `json:"vite_config_hash,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ProjectStore implements project state storage using a local JSON file.
type ProjectStore struct {
	mu  sync.Mutex
	dir string // .webmend/ directory
}

// NewProjectStore creates a project store at the given directory.
func NewProjectStore(dir string) *ProjectStore {
	return &ProjectStore{dir: dir}
}

func (s *ProjectStore) filePath() string {
	return filepath.Join(s.dir, "project.json")
}

// Load reads the project from disk. A missing file returns (nil, nil).
func (s *ProjectStore) Load() (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read project: %w", err)
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project: %w", err)
	}
	return &p, nil
}

// Save writes the project to disk.
func (s *ProjectStore) Save(p *Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(s.filePath(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	return nil
}

// Ensure loads the project, creating a fresh record when none exists.
func (s *ProjectStore) Ensure(name, root, framework string) (*Project, error) {
	p, err := s.Load()
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	p = &Project{
		Name:      name,
		Root:      root,
		Framework: framework,
		CreatedAt: time.Now(),
	}
	if err := s.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}
