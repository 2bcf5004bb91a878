package resolve

import (
	"strings"
	"testing"

	"github.com/askvidya/vidya/internal/dataset"
	"github.com/askvidya/vidya/internal/solver"
)

func TestFormatString(t *testing.T) {
	if got := Format("plain answer text"); got != "plain answer text" {
		t.Errorf("strings must pass through unchanged, got %q", got)
	}
}

func TestFormatDatasetHit(t *testing.T) {
	hit := dataset.SearchResult{
		Found:   true,
		Class:   "6",
		Subject: "Science",
		Chapter: "Getting to Know Plants",
		Answer:  "Photosynthesis is how green plants make their own food.",
	}

	got := Format(hit)
	want := "[Class 6] Photosynthesis is how green plants make their own food.\n" +
		"Subject: Science\n" +
		"Chapter: Getting to Know Plants"
	if got != want {
		t.Errorf("unexpected dataset rendering:\n got %q\nwant %q", got, want)
	}
}

func TestFormatDatasetHitPartialMetadata(t *testing.T) {
	got := Format(dataset.SearchResult{Found: true, Answer: "bare answer"})
	if got != "bare answer" {
		t.Errorf("missing metadata must add no decoration, got %q", got)
	}
}

func TestFormatSolverResult(t *testing.T) {
	sr := solver.Result{
		Steps:  []string{"Start with 2x - 4 = 10", "Add 4 to both sides: 2x = 14", "Divide both sides by 2", "x = 7"},
		Answer: "x = 7",
	}

	got := Format(sr)
	if !strings.HasPrefix(got, "1. Start with 2x - 4 = 10\n") {
		t.Errorf("steps should be numbered from 1, got %q", got)
	}
	if !strings.HasSuffix(got, "**Answer:** x = 7") {
		t.Errorf("expected a bolded answer line, got %q", got)
	}
}

func TestFormatResolutionResult(t *testing.T) {
	res := Result{
		Success: true,
		Source:  SourceSolver,
		Answer:  "x = 7",
		Steps:   []string{"one step", "x = 7"},
	}
	if got := Format(res); !strings.Contains(got, "**Answer:** x = 7") {
		t.Errorf("solver results render as steps plus answer, got %q", got)
	}

	failed := Result{Message: "The service is busy right now. Please try again in a moment."}
	if got := Format(failed); got != failed.Message {
		t.Errorf("failed results render their message, got %q", got)
	}
}

func TestFormatAnswerField(t *testing.T) {
	got := Format(map[string]any{"answer": "from the answer field", "extra": 1})
	if got != "from the answer field" {
		t.Errorf("maps with an answer field render that field, got %q", got)
	}
}

func TestFormatUnknownShape(t *testing.T) {
	type odd struct {
		N int
		S string
	}

	got := Format(odd{N: 3, S: "three"})
	if !strings.Contains(got, "3") || !strings.Contains(got, "three") {
		t.Errorf("unknown shapes render as a structured dump, got %q", got)
	}

	// Values JSON cannot express still render something.
	if got := Format(func() {}); got == "" {
		t.Error("unmarshalable values must still produce output")
	}

	if got := Format(nil); got != "" {
		t.Errorf("nil renders empty, got %q", got)
	}
}
