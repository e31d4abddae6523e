package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// scoreHistoryDays is how far back the daily score history is kept.
const scoreHistoryDays = 30

// DailyScore aggregates audit results for one calendar day.
type DailyScore struct {
	Date       string `json:"date"` // YYYY-MM-DD
	BestScore  int    `json:"best_score"`
	Runs       int    `json:"runs"`
	Violations int    `json:"violations"` // from the best-scoring run
}

// ScoreStore keeps a rolling window of daily audit scores.
type ScoreStore struct {
	mu  sync.Mutex
	dir string
}

// NewScoreStore creates a score store at the given directory.
func NewScoreStore(dir string) *ScoreStore {
	return &ScoreStore{dir: dir}
}

func (s *ScoreStore) filePath() string {
	return filepath.Join(s.dir, "scores.json")
}

// RecordScore folds an audit result into today's entry and prunes entries
// older than the rolling window.
func (s *ScoreStore) RecordScore(score, violations int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	days, err := s.readUnsafe()
	if err != nil {
		return err
	}

	today := time.Now().Format("2006-01-02")
	found := false
	for i := range days {
		if days[i].Date != today {
			continue
		}
		days[i].Runs++
		if score > days[i].BestScore {
			days[i].BestScore = score
			days[i].Violations = violations
		}
		found = true
		break
	}
	if !found {
		days = append(days, DailyScore{
			Date:       today,
			BestScore:  score,
			Runs:       1,
			Violations: violations,
		})
	}

	cutoff := time.Now().AddDate(0, 0, -scoreHistoryDays).Format("2006-01-02")
	kept := days[:0]
	for _, d := range days {
		if d.Date >= cutoff {
			kept = append(kept, d)
		}
	}
	return s.writeUnsafe(kept)
}

// History returns up to the last n days of scores, oldest first.
func (s *ScoreStore) History(n int) ([]DailyScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	days, err := s.readUnsafe()
	if err != nil {
		return nil, err
	}
	if n > 0 && len(days) > n {
		days = days[len(days)-n:]
	}
	return days, nil
}

// Today returns today's entry, or nil when no audit ran today.
func (s *ScoreStore) Today() (*DailyScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	days, err := s.readUnsafe()
	if err != nil {
		return nil, err
	}
	today := time.Now().Format("2006-01-02")
	for i := range days {
		if days[i].Date == today {
			return &days[i], nil
		}
	}
	return nil, nil
}

func (s *ScoreStore) readUnsafe() ([]DailyScore, error) {
	data, err := os.ReadFile(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}
	var days []DailyScore
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, fmt.Errorf("failed to parse scores: %w", err)
	}
	return days, nil
}

func (s *ScoreStore) writeUnsafe(days []DailyScore) error {
	data, err := json.MarshalIndent(days, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(s.filePath(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write scores: %w", err)
	}
	return nil
}
