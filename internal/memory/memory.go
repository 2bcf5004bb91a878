// Package memory persists previously AI-answered questions so repeat
// questions skip the generative call entirely.
//
// Both caches are single JSON files, read fully on every query and
// rewritten fully on every mutation. An in-process mutex serializes
// writers within one process; concurrent writers in separate processes
// race at the file level and the last write wins. That limitation is
// accepted for the expected write volume rather than hidden behind a
// lock file.
package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// CachedQA is one learned question/answer pair.
type CachedQA struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Source    string `json:"source"`
	LearnedAt int64  `json:"learned_at"` // epoch millis
}

// LearnedStore is the write-once cache of AI answers, keyed by the
// normalized question text.
type LearnedStore struct {
	mu   sync.Mutex
	path string
}

// NewLearnedStore creates a store backed by the file at path. The file
// need not exist; a missing file reads as an empty cache.
func NewLearnedStore(path string) *LearnedStore {
	return &LearnedStore{path: path}
}

// NormalizeKey lower-cases and trims question text for use as a cache
// key. The original text is what gets stored and displayed.
func NormalizeKey(question string) string {
	return strings.ToLower(strings.TrimSpace(question))
}

// Find returns the cached answer for question, or nil on a miss.
// Persistence errors degrade to a miss rather than failing the request.
func (s *LearnedStore) Find(question string) *CachedQA {
	key := NormalizeKey(question)
	if key == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.read()
	if qa, ok := records[key]; ok {
		return &qa
	}
	return nil
}

// Learn inserts a new answer under the normalized key. Existing keys are
// never overwritten: a later answer to the same question is dropped
// silently, preserving the first learned answer.
func (s *LearnedStore) Learn(question, answer, source string) error {
	key := NormalizeKey(question)
	if key == "" || strings.TrimSpace(answer) == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.read()
	if _, ok := records[key]; ok {
		return nil
	}

	records[key] = CachedQA{
		Question:  question,
		Answer:    answer,
		Source:    source,
		LearnedAt: time.Now().UnixMilli(),
	}
	return writeFile(s.path, records)
}

// All returns every learned record. Order is unspecified.
func (s *LearnedStore) All() []CachedQA {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.read()
	out := make([]CachedQA, 0, len(records))
	for _, qa := range records {
		out = append(out, qa)
	}
	return out
}

// Clear removes the backing file entirely.
func (s *LearnedStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear learned cache: %w", err)
	}
	return nil
}

func (s *LearnedStore) read() map[string]CachedQA {
	return readFile[CachedQA](s.path)
}

// readFile loads a whole cache file into a map. A missing file is an
// empty cache; an unreadable or corrupt file is logged and treated the
// same way so a bad cache never fails a request.
func readFile[T any](path string) map[string]T {
	records := make(map[string]T)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("cache file unreadable, treating as empty", "path", path, "error", err)
		}
		return records
	}

	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("cache file corrupt, treating as empty", "path", path, "error", err)
		return make(map[string]T)
	}
	return records
}

// writeFile rewrites the whole cache file. The JSON is indented so the
// file stays reviewable by hand.
func writeFile[T any](path string, records map[string]T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}
