package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// maxRunRecords caps the run log so it never grows unbounded.
const maxRunRecords = 200

// RunRecord is one completed webmend operation.
type RunRecord struct {
	Op           string    `json:"op"` // fix, audit, codemod, generate, check
	FilesSeen    int       `json:"files_seen"`
	FilesChanged int       `json:"files_changed"`
	Score        int       `json:"score,omitempty"` // audit runs only
	DurationMS   int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}

// RunLog implements run history storage using a local JSON file.
type RunLog struct {
	mu  sync.Mutex
	dir string
}

// NewRunLog creates a run log at the given directory.
func NewRunLog(dir string) *RunLog {
	return &RunLog{dir: dir}
}

func (l *RunLog) filePath() string {
	return filepath.Join(l.dir, "history.json")
}

// Append adds a record, dropping the oldest entries past the cap.
func (l *RunLog) Append(rec RunRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.readUnsafe()
	if err != nil {
		return err
	}
	records = append(records, rec)
	if len(records) > maxRunRecords {
		records = records[len(records)-maxRunRecords:]
	}
	return l.writeUnsafe(records)
}

// List returns all records, oldest first.
func (l *RunLog) List() ([]RunRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readUnsafe()
}

// Recent returns up to n records, newest first.
func (l *RunLog) Recent(n int) ([]RunRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.readUnsafe()
	if err != nil {
		return nil, err
	}
	out := make([]RunRecord, 0, n)
	for i := len(records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, records[i])
	}
	return out, nil
}

func (l *RunLog) readUnsafe() ([]RunRecord, error) {
	data, err := os.ReadFile(l.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	var records []RunRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	return records, nil
}

func (l *RunLog) writeUnsafe(records []RunRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(l.filePath(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}
