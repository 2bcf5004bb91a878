package memory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempStore(t *testing.T) *LearnedStore {
	t.Helper()
	return NewLearnedStore(filepath.Join(t.TempDir(), "learned_answers.json"))
}

func TestLearnedStore_RoundTrip(t *testing.T) {
	s := tempStore(t)

	if qa := s.Find("What is gravity?"); qa != nil {
		t.Fatal("empty store should miss")
	}

	if err := s.Learn("What is gravity?", "A force of attraction.", "ai"); err != nil {
		t.Fatalf("learn: %v", err)
	}

	qa := s.Find("What is gravity?")
	if qa == nil {
		t.Fatal("expected a hit")
	}
	if qa.Answer != "A force of attraction." || qa.Source != "ai" {
		t.Fatalf("unexpected record: %+v", qa)
	}
	if qa.LearnedAt == 0 {
		t.Fatal("learned_at should be set")
	}
}

func TestLearnedStore_NormalizedLookup(t *testing.T) {
	s := tempStore(t)
	if err := s.Learn("What is gravity?", "A force.", "ai"); err != nil {
		t.Fatalf("learn: %v", err)
	}

	// Case and surrounding whitespace must not matter for lookup.
	if qa := s.Find("  WHAT IS GRAVITY?  "); qa == nil {
		t.Fatal("normalized lookup should hit")
	}
	// The stored question keeps its original casing.
	if qa := s.Find("what is gravity?"); qa.Question != "What is gravity?" {
		t.Fatalf("original casing lost: %q", qa.Question)
	}
}

func TestLearnedStore_WriteOnce(t *testing.T) {
	s := tempStore(t)
	if err := s.Learn("q", "first answer", "ai"); err != nil {
		t.Fatalf("learn: %v", err)
	}
	if err := s.Learn("Q ", "second answer", "ai"); err != nil {
		t.Fatalf("learn: %v", err)
	}

	qa := s.Find("q")
	if qa == nil || qa.Answer != "first answer" {
		t.Fatalf("write-once violated: %+v", qa)
	}
}

func TestLearnedStore_SurvivesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "learned_answers.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewLearnedStore(path)
	if qa := s.Find("anything"); qa != nil {
		t.Fatal("corrupt file should read as empty")
	}
	if err := s.Learn("q", "a", "ai"); err != nil {
		t.Fatalf("learn over corrupt file: %v", err)
	}
	if s.Find("q") == nil {
		t.Fatal("expected hit after rewrite")
	}
}

func TestLearnedStore_FileIsReadableJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "learned_answers.json")
	s := NewLearnedStore(path)
	if err := s.Learn("q", "a", "ai"); err != nil {
		t.Fatalf("learn: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n") {
		t.Fatal("cache file should be indented for hand review")
	}
}

func TestVideoStore_Overwrite(t *testing.T) {
	s := NewVideoStore(filepath.Join(t.TempDir(), "video_answers.json"))

	if err := s.Save("abc123", "what is this about", "v1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save("abc123", "what is this about", "v2"); err != nil {
		t.Fatalf("save: %v", err)
	}

	v := s.Get("abc123", "what is this about")
	if v == nil || v.Answer != "v2" {
		t.Fatalf("overwrite expected, got %+v", v)
	}
}

func TestVideoStore_SummarySlot(t *testing.T) {
	s := NewVideoStore(filepath.Join(t.TempDir(), "video_answers.json"))

	if err := s.Save("abc123", "", "the summary"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if v := s.Get("abc123", ""); v == nil || v.Answer != "the summary" {
		t.Fatalf("expected summary hit, got %+v", v)
	}
	// A different question about the same video is a separate key.
	if v := s.Get("abc123", "who is the speaker"); v != nil {
		t.Fatal("distinct question should miss")
	}
}
