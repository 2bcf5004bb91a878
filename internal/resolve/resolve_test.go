package resolve

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/askvidya/vidya/internal/classify"
	"github.com/askvidya/vidya/internal/dataset"
	"github.com/askvidya/vidya/internal/gateway"
	"github.com/askvidya/vidya/internal/llm"
	"github.com/askvidya/vidya/internal/memory"
	"github.com/askvidya/vidya/internal/store"
)

func newTestResolver(t *testing.T, ds *dataset.Dataset, responses ...llm.MockResponse) (*Resolver, *llm.MockProvider, *memory.LearnedStore) {
	t.Helper()

	mock := llm.NewMockProvider(responses...)
	learned := memory.NewLearnedStore(filepath.Join(t.TempDir(), "learned.json"))
	videos := memory.NewVideoStore(filepath.Join(t.TempDir(), "videos.json"))

	r := New(Deps{
		Learned: learned,
		Videos:  videos,
		Dataset: ds,
		Gateway: gateway.New(mock, gateway.DefaultConfig()),
	})
	return r, mock, learned
}

func fixtureDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, "class-6")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	doc := `{
		"class": "6",
		"subject": "Science",
		"chapter_name": "Getting to Know Plants",
		"topics": [
			{"name": "nutrition", "text": "Photosynthesis is how green plants make their own food."}
		]
	}`
	if err := os.WriteFile(filepath.Join(dir, "science.json"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ds, err := dataset.Load(root)
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	return ds
}

func TestResolveSolverEndToEnd(t *testing.T) {
	r, mock, _ := newTestResolver(t, nil)

	res := r.Resolve(context.Background(), "2x - 4 = 10", Options{})

	if !res.Success {
		t.Fatalf("expected success, got message %q", res.Message)
	}
	if res.Source != SourceSolver {
		t.Errorf("expected source solver, got %q", res.Source)
	}
	if res.Answer != "x = 7" {
		t.Errorf("expected answer %q, got %q", "x = 7", res.Answer)
	}
	if res.Category != classify.Algebra {
		t.Errorf("expected algebra category, got %q", res.Category)
	}
	if len(res.Steps) == 0 {
		t.Error("expected worked steps on a solver hit")
	}
	if mock.CallCount() != 0 {
		t.Errorf("gateway must not be invoked on a solver hit, got %d calls", mock.CallCount())
	}
}

func TestResolveMemoryHit(t *testing.T) {
	r, mock, learned := newTestResolver(t, fixtureDataset(t))

	question := "Why is the sky blue?"
	if err := learned.Learn(question, "Sunlight scatters off air molecules.", "ai"); err != nil {
		t.Fatalf("seed learn: %v", err)
	}

	res := r.Resolve(context.Background(), question, Options{})

	if !res.Success || res.Source != SourceMemory {
		t.Fatalf("expected memory hit, got source %q success %v", res.Source, res.Success)
	}
	if res.Answer != "Sunlight scatters off air molecules." {
		t.Errorf("unexpected cached answer: %q", res.Answer)
	}
	if mock.CallCount() != 0 {
		t.Errorf("gateway must not be invoked on a cache hit, got %d calls", mock.CallCount())
	}
}

func TestResolveContextSuppressesMemory(t *testing.T) {
	r, mock, learned := newTestResolver(t, nil, llm.MockResponse{Text: "The document argues for crop rotation."})

	question := "What is this document about?"
	if err := learned.Learn(question, "a stale generic answer", "ai"); err != nil {
		t.Fatalf("seed learn: %v", err)
	}

	res := r.Resolve(context.Background(), question, Options{Context: "Crop rotation preserves soil nutrients across seasons."})

	if !res.Success || res.Source != SourceAI {
		t.Fatalf("context-bound question must reach the gateway, got source %q", res.Source)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected one gateway call, got %d", mock.CallCount())
	}
}

func TestResolveDatasetShortCircuit(t *testing.T) {
	r, mock, _ := newTestResolver(t, fixtureDataset(t))

	res := r.Resolve(context.Background(), "photosynthesis", Options{})

	if !res.Success || res.Source != SourceDataset {
		t.Fatalf("expected dataset hit, got source %q success %v", res.Source, res.Success)
	}
	if res.Answer != "Photosynthesis is how green plants make their own food." {
		t.Errorf("unexpected dataset answer: %q", res.Answer)
	}
	if res.Dataset == nil || res.Dataset.Class != "6" {
		t.Errorf("expected class metadata on the hit, got %+v", res.Dataset)
	}
	// A dataset hit terminates the request before classification runs.
	if res.Category != classify.Unknown {
		t.Errorf("classifier must not run after a dataset hit, got %q", res.Category)
	}
	if mock.CallCount() != 0 {
		t.Errorf("gateway must not be invoked on a dataset hit, got %d calls", mock.CallCount())
	}
}

func TestResolveAIMathStage(t *testing.T) {
	r, mock, learned := newTestResolver(t, nil, llm.MockResponse{Text: "Answer: x^6 / 6 + C"})

	question := "integrate x^5 dx"
	res := r.Resolve(context.Background(), question, Options{})

	if !res.Success || res.Source != SourceAIMath {
		t.Fatalf("expected ai_math source, got %q success %v", res.Source, res.Success)
	}
	if res.Category != classify.Integrals {
		t.Errorf("expected integrals category, got %q", res.Category)
	}

	req := mock.Calls[0]
	if req.MaxTokens != 800 || req.Temperature != 0.2 {
		t.Errorf("expected the math sampling profile, got max=%d temp=%v", req.MaxTokens, req.Temperature)
	}

	// Math answers are never learned.
	r.Wait()
	if hit := learned.Find(question); hit != nil {
		t.Errorf("math answer must not enter the learned cache, got %+v", hit)
	}
}

func TestResolveGeneralAILearns(t *testing.T) {
	r, _, learned := newTestResolver(t, nil, llm.MockResponse{Text: "Paris is the capital of France."})

	question := "What is the capital of France?"
	res := r.Resolve(context.Background(), question, Options{})

	if !res.Success || res.Source != SourceAI {
		t.Fatalf("expected ai source, got %q success %v", res.Source, res.Success)
	}
	if res.Answer != "Paris is the capital of France." {
		t.Errorf("unexpected answer: %q", res.Answer)
	}

	// Wait drains the write-behind goroutine; after it the learn must
	// be durable, so a process exiting right after a resolve keeps it.
	r.Wait()
	hit := learned.Find(question)
	if hit == nil {
		t.Fatal("expected the answer to be in the learned cache once Wait returns")
	}
	if hit.Answer != "Paris is the capital of France." || hit.Source != "ai" {
		t.Errorf("unexpected cached record: %+v", hit)
	}
}

func TestResolveHistorySuppressesLearning(t *testing.T) {
	r, _, learned := newTestResolver(t, nil, llm.MockResponse{Text: "It orbits the sun."})

	history := []llm.Message{
		{Role: llm.RoleUser, Content: "what is the earth?"},
		{Role: llm.RoleAssistant, Content: "a planet"},
	}
	question := "What does it orbit?"
	res := r.Resolve(context.Background(), question, Options{History: history})

	if !res.Success || res.Source != SourceAI {
		t.Fatalf("expected ai source, got %q", res.Source)
	}

	r.Wait()
	if hit := learned.Find(question); hit != nil {
		t.Errorf("follow-up answers must not be learned, got %+v", hit)
	}
}

func TestResolveGatewayFailure(t *testing.T) {
	r, _, _ := newTestResolver(t, nil, llm.MockResponse{Err: &llm.ErrRateLimit{}})

	res := r.Resolve(context.Background(), "What is gravity?", Options{})

	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Source != SourceAI {
		t.Errorf("expected ai source on a general-stage failure, got %q", res.Source)
	}
	if res.Message != "The service is busy right now. Please try again in a moment." {
		t.Errorf("unexpected user message: %q", res.Message)
	}
	if res.Answer != "" {
		t.Errorf("failed resolutions carry no answer, got %q", res.Answer)
	}
}

func TestResolveEmptyQuestion(t *testing.T) {
	r, mock, _ := newTestResolver(t, nil)

	res := r.Resolve(context.Background(), "   ", Options{})

	if res.Success {
		t.Fatal("expected failure for an empty question")
	}
	if res.Message == "" {
		t.Error("expected a user-facing message")
	}
	if mock.CallCount() != 0 {
		t.Errorf("no stage should run for an empty question, got %d gateway calls", mock.CallCount())
	}
}

func TestResolveSkipClassify(t *testing.T) {
	r, mock, _ := newTestResolver(t, nil, llm.MockResponse{Text: "Here is a gentle explanation."})

	res := r.Resolve(context.Background(), "solve 2x - 3 = 7", Options{SkipClassify: true})

	if !res.Success || res.Source != SourceAI {
		t.Fatalf("skip-classify must force the general path, got source %q", res.Source)
	}
	if mock.Calls[0].MaxTokens != 1200 {
		t.Errorf("expected the general sampling profile, got max=%d", mock.Calls[0].MaxTokens)
	}
}

func TestResolveVideoFlow(t *testing.T) {
	r, mock, _ := newTestResolver(t,
		nil,
		llm.MockResponse{Text: "The video explains the water cycle."},
	)

	transcript := "Water evaporates, condenses into clouds and falls as rain."

	res := r.ResolveVideo(context.Background(), "vid-42", "What is this video about?", transcript)
	if !res.Success || res.Source != SourceAI {
		t.Fatalf("expected a fresh gateway answer, got source %q success %v", res.Source, res.Success)
	}
	if res.Answer != "The video explains the water cycle." {
		t.Errorf("unexpected answer: %q", res.Answer)
	}
	if got := mock.Calls[0].System; !strings.Contains(got, "Water evaporates") {
		t.Errorf("transcript should be passed as context, got %q", got)
	}

	// Second ask hits the video cache; the gateway stays untouched.
	res = r.ResolveVideo(context.Background(), "vid-42", "What is this video about?", transcript)
	if !res.Success || res.Source != SourceMemory {
		t.Fatalf("expected a cached answer, got source %q", res.Source)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected exactly one gateway call, got %d", mock.CallCount())
	}
}

func TestResolveVideoSummary(t *testing.T) {
	r, mock, _ := newTestResolver(t, nil, llm.MockResponse{Text: "A short summary of the lesson."})

	res := r.ResolveVideo(context.Background(), "vid-7", "", "The lesson covers fractions and decimals in detail.")
	if !res.Success {
		t.Fatalf("expected success, got message %q", res.Message)
	}
	if !strings.Contains(mock.Calls[0].System, "summarizing an educational video") {
		t.Errorf("expected the summary prompt, got %q", mock.Calls[0].System)
	}
}

func TestResolveVideoNoTranscript(t *testing.T) {
	r, mock, _ := newTestResolver(t, nil)

	res := r.ResolveVideo(context.Background(), "vid-9", "what is this?", "")
	if res.Success {
		t.Fatal("expected failure without a transcript")
	}
	if mock.CallCount() != 0 {
		t.Errorf("gateway must not be called without a transcript, got %d calls", mock.CallCount())
	}
}

// recordingRepo captures appended resolution events for assertions.
type recordingRepo struct {
	mu          sync.Mutex
	resolutions []store.ResolutionEventData
}

func (r *recordingRepo) AppendResolution(_ context.Context, data store.ResolutionEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolutions = append(r.resolutions, data)
	return nil
}

func (r *recordingRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (r *recordingRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (r *recordingRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (r *recordingRepo) QueryResolutions(context.Context, store.QueryOpts) ([]store.ResolutionEvent, error) {
	return nil, nil
}

func (r *recordingRepo) LLMUsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (r *recordingRepo) LLMUsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func (r *recordingRepo) ResolutionsBySource(context.Context) ([]store.SourceUsage, error) {
	return nil, nil
}

func (r *recordingRepo) all() []store.ResolutionEventData {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]store.ResolutionEventData(nil), r.resolutions...)
}

func TestResolveVideoRecordsEvents(t *testing.T) {
	repo := &recordingRepo{}
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "x = 7 is the solution."},
		llm.MockResponse{Text: "The video explains the water cycle."},
	)
	r := New(Deps{
		Videos:  memory.NewVideoStore(filepath.Join(t.TempDir(), "videos.json")),
		Gateway: gateway.New(mock, gateway.DefaultConfig()),
		Events:  repo,
	})

	r.Resolve(context.Background(), "2x - 4 = 10", Options{})
	if got := len(repo.all()); got != 1 {
		t.Fatalf("expected 1 resolution event after Resolve, got %d", got)
	}

	res := r.ResolveVideo(context.Background(), "vid-42", "What is this about?", "Water evaporates and falls as rain.")
	if !res.Success {
		t.Fatalf("expected success, got message %q", res.Message)
	}

	events := repo.all()
	if len(events) != 2 {
		t.Fatalf("expected a resolution event per video resolution, got %d events", len(events))
	}
	ev := events[1]
	if ev.Source != string(SourceAI) || !ev.Success {
		t.Errorf("unexpected video event: %+v", ev)
	}
	if ev.RequestID != res.RequestID {
		t.Errorf("event request ID %q does not match result %q", ev.RequestID, res.RequestID)
	}

	// Cache hits are resolutions too.
	res = r.ResolveVideo(context.Background(), "vid-42", "What is this about?", "")
	if res.Source != SourceMemory {
		t.Fatalf("expected a cache hit, got source %q", res.Source)
	}
	events = repo.all()
	if len(events) != 3 {
		t.Fatalf("expected the cache hit to be recorded, got %d events", len(events))
	}
	if events[2].Source != string(SourceMemory) {
		t.Errorf("unexpected cache-hit event source %q", events[2].Source)
	}
}
