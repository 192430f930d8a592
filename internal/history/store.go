// Package history persists rolled notations to an append-only jsonl log.
package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Record is one resolved roll: the notation as entered and the results it
// produced, one integer per repetition.
type Record struct {
	When     time.Time `json:"when"`
	Notation string    `json:"notation"`
	Rolls    []int64   `json:"rolls"`
}

// Store handles append-only storing of the roll log.
type Store struct {
	file *os.File
}

// NewStore opens or creates the file at path for appending lines.
func NewStore(path string) (*Store, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	return &Store{file: file}, nil
}

// Append marshals one record onto the end of the log.
func (s *Store) Append(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	if _, err := s.file.Write(append(data, '\n')); err != nil {
		return err
	}
	return s.file.Sync()
}

// Load replays every jsonl line back into a Record slice.
func (s *Store) Load() ([]Record, error) {
	var records []Record

	// Reset file pointer to beginning
	if _, err := s.file.Seek(0, 0); err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(s.file)
	for scanner.Scan() {
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode history line: %w", err)
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Tail returns at most the last n records.
func (s *Store) Tail(n int) ([]Record, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	if n < len(records) {
		records = records[len(records)-n:]
	}
	return records, nil
}

// Close handles safe shutdown.
func (s *Store) Close() error {
	return s.file.Close()
}
