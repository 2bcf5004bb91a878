package memory

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// SummaryKey is the question slot used when a video was summarized
// rather than asked about.
const SummaryKey = "summary"

// CachedVideoAnswer is one cached answer about a video.
type CachedVideoAnswer struct {
	VideoID  string `json:"video_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	SavedAt  int64  `json:"saved_at"` // epoch millis
}

// VideoStore caches answers about video content, keyed by
// (videoID, question). Unlike LearnedStore, entries are overwritten
// freely: a fresher answer about the same video simply replaces the
// older one.
type VideoStore struct {
	mu   sync.Mutex
	path string
}

// NewVideoStore creates a store backed by the file at path.
func NewVideoStore(path string) *VideoStore {
	return &VideoStore{path: path}
}

func videoKey(videoID, question string) string {
	q := NormalizeKey(question)
	if q == "" {
		q = SummaryKey
	}
	return videoID + "::" + q
}

// Get returns the cached answer for (videoID, question), or nil.
func (s *VideoStore) Get(videoID, question string) *CachedVideoAnswer {
	if videoID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := readFile[CachedVideoAnswer](s.path)
	if v, ok := records[videoKey(videoID, question)]; ok {
		return &v
	}
	return nil
}

// Save stores an answer under (videoID, question), replacing any
// previous entry for the same key.
func (s *VideoStore) Save(videoID, question, answer string) error {
	if videoID == "" {
		return fmt.Errorf("video ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := readFile[CachedVideoAnswer](s.path)
	records[videoKey(videoID, question)] = CachedVideoAnswer{
		VideoID:  videoID,
		Question: question,
		Answer:   answer,
		SavedAt:  time.Now().UnixMilli(),
	}
	return writeFile(s.path, records)
}

// All returns every cached video answer. Order is unspecified.
func (s *VideoStore) All() []CachedVideoAnswer {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := readFile[CachedVideoAnswer](s.path)
	out := make([]CachedVideoAnswer, 0, len(records))
	for _, v := range records {
		out = append(out, v)
	}
	return out
}

// Clear removes the backing file entirely.
func (s *VideoStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear video cache: %w", err)
	}
	return nil
}
