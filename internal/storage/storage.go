// Package storage persists countdown history: the last duration picked and a
// bounded log of finished runs.
package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/countdown/internal/config"
	"github.com/ensigniasec/countdown/internal/validate"
)

// DefaultPath is the state file used when --state-file is not given.
const DefaultPath = "~/.local/state/countdown/state.json"

// MaxHistory bounds the number of runs kept on disk.
const MaxHistory = 50

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeCancelled Outcome = "cancelled"
)

// Run is one finished countdown.
type Run struct {
	ID         string    `json:"id" validate:"required,uuid4"`
	Seconds    int       `json:"seconds" validate:"min=1,max=86399"`
	Outcome    Outcome   `json:"outcome" validate:"oneof=completed cancelled"`
	FinishedAt time.Time `json:"finished_at" validate:"required"`
}

// Data represents the structure of the storage file.
type Data struct {
	LastDuration int   `json:"last_duration_seconds" validate:"min=0,max=86399"`
	History      []Run `json:"history" validate:"dive"`
}

// Storage handles the loading and saving of the storage file.
type Storage struct {
	Path string `validate:"required"`
	Data Data
}

// NewStorage opens the state file at path. A missing file yields empty state;
// it is created on the first Save.
func NewStorage(path string) (*Storage, error) {
	expandedPath, err := config.ExpandTilde(path)
	if err != nil {
		return nil, err
	}

	s := &Storage{Path: expandedPath}
	if err := validate.Struct(s); err != nil {
		return nil, err
	}

	if err := s.Load(); err != nil {
		// If the file doesn't exist, we can ignore the error.
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return s, nil
}

func (s *Storage) Load() error {
	logrus.Debug("Loading storage file from: ", s.Path)
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &s.Data); err != nil {
		return err
	}

	// Validate loaded data and self-heal when possible.
	if err := validate.Struct(s.Data); err != nil {
		changed := false
		if validate.Var(s.Data.LastDuration, "min=0,max=86399") != nil {
			logrus.Warn("Invalid last_duration_seconds found in storage; clearing.")
			s.Data.LastDuration = 0
			changed = true
		}
		kept := s.Data.History[:0]
		for _, r := range s.Data.History {
			if validate.Struct(r) != nil {
				changed = true
				continue
			}
			kept = append(kept, r)
		}
		s.Data.History = kept
		if changed {
			if err := s.Save(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Save writes the storage data to the file.
func (s *Storage) Save() error {
	logrus.Debug("Saving storage file to: ", s.Path)
	// Ensure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.Path, data, 0o600)
}

// Record appends r to the history, remembers its duration and saves.
func (s *Storage) Record(r Run) error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	s.Data.LastDuration = r.Seconds
	s.Data.History = append(s.Data.History, r)
	if n := len(s.Data.History); n > MaxHistory {
		s.Data.History = s.Data.History[n-MaxHistory:]
	}
	return s.Save()
}

// LastDuration returns the last recorded duration, or zero when none is known.
func (s *Storage) LastDuration() time.Duration {
	return time.Duration(s.Data.LastDuration) * time.Second
}
