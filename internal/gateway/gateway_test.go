package gateway

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/askvidya/vidya/internal/llm"
)

func newTestGateway(responses ...llm.MockResponse) (*Gateway, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, DefaultConfig()), mock
}

func TestAskUsesGeneralProfile(t *testing.T) {
	g, mock := newTestGateway(llm.MockResponse{Text: "Photosynthesis converts light into chemical energy."})

	ans, err := g.Ask(context.Background(), "What is photosynthesis?", AskOptions{})
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if ans.Text != "Photosynthesis converts light into chemical energy." {
		t.Errorf("unexpected answer text: %q", ans.Text)
	}

	req := mock.Calls[0]
	if req.Temperature != 0.7 {
		t.Errorf("expected general temperature 0.7, got %v", req.Temperature)
	}
	if req.MaxTokens != 1200 {
		t.Errorf("expected general max tokens 1200, got %d", req.MaxTokens)
	}
	if !strings.Contains(req.System, "friendly multilingual tutor") {
		t.Errorf("expected general system prompt, got %q", req.System)
	}
}

func TestAskUsesMathProfile(t *testing.T) {
	g, mock := newTestGateway(llm.MockResponse{Text: "Answer: x = 7"})

	if _, err := g.Ask(context.Background(), "solve 2x - 4 = 10", AskOptions{MathProblem: true}); err != nil {
		t.Fatalf("Ask failed: %v", err)
	}

	req := mock.Calls[0]
	if req.Temperature != 0.2 {
		t.Errorf("expected math temperature 0.2, got %v", req.Temperature)
	}
	if req.MaxTokens != 800 {
		t.Errorf("expected math max tokens 800, got %d", req.MaxTokens)
	}
	if !strings.Contains(req.System, "patient math tutor") {
		t.Errorf("expected math system prompt, got %q", req.System)
	}
}

func TestAskCustomPromptWins(t *testing.T) {
	g, mock := newTestGateway(llm.MockResponse{Text: "ok, summarized"})

	_, err := g.Ask(context.Background(), "summarize this", AskOptions{
		MathProblem:  true,
		SystemPrompt: "You summarize video transcripts.",
	})
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}

	sys := mock.Calls[0].System
	if !strings.HasPrefix(sys, "You summarize video transcripts.") {
		t.Errorf("custom prompt should replace the templates, got %q", sys)
	}
	if strings.Contains(sys, "patient math tutor") {
		t.Errorf("math template should not appear alongside a custom prompt")
	}
}

func TestAskLanguageInstruction(t *testing.T) {
	g, mock := newTestGateway(
		llm.MockResponse{Text: "uttar"},
		llm.MockResponse{Text: "answer"},
	)

	if _, err := g.Ask(context.Background(), "q", AskOptions{Language: "Hindi"}); err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if !strings.Contains(mock.Calls[0].System, "Answer in Hindi.") {
		t.Errorf("expected Hindi instruction in system prompt, got %q", mock.Calls[0].System)
	}

	if _, err := g.Ask(context.Background(), "q", AskOptions{Language: "English"}); err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if strings.Contains(mock.Calls[1].System, "Answer in") {
		t.Errorf("English should add no language instruction, got %q", mock.Calls[1].System)
	}
}

func TestAskContextBlock(t *testing.T) {
	g, mock := newTestGateway(llm.MockResponse{Text: "the speaker explains gravity"})

	_, err := g.Ask(context.Background(), "what is this about?", AskOptions{
		Context: "transcript: gravity pulls objects toward each other",
	})
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}

	sys := mock.Calls[0].System
	if !strings.Contains(sys, "Reference material:") {
		t.Errorf("expected reference block header, got %q", sys)
	}
	if !strings.Contains(sys, "gravity pulls objects") {
		t.Errorf("expected context text inside the block, got %q", sys)
	}
}

func TestAskHistoryOrdering(t *testing.T) {
	g, mock := newTestGateway(llm.MockResponse{Text: "it orbits the sun"})

	history := []llm.Message{
		{Role: llm.RoleUser, Content: "what is the earth?"},
		{Role: llm.RoleAssistant, Content: "the earth is a planet"},
	}
	if _, err := g.Ask(context.Background(), "what does it orbit?", AskOptions{History: history}); err != nil {
		t.Fatalf("Ask failed: %v", err)
	}

	msgs := mock.Calls[0].Messages
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Content != "what is the earth?" || msgs[1].Content != "the earth is a planet" {
		t.Errorf("history should precede the question, got %+v", msgs)
	}
	last := msgs[2]
	if last.Role != llm.RoleUser || last.Content != "what does it orbit?" {
		t.Errorf("question should be the final user message, got %+v", last)
	}
}

func TestAskClassifiesErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind FailureKind
	}{
		{"auth", &llm.ErrAuth{}, FailureAuth},
		{"model not found", &llm.ErrModelNotFound{Model: "gpt-9"}, FailureModelNotFound},
		{"rate limited", &llm.ErrRateLimit{}, FailureRateLimited},
		{"unavailable", &llm.ErrProviderUnavailable{}, FailureUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGateway(llm.MockResponse{Err: tt.err})

			_, err := g.Ask(context.Background(), "q", AskOptions{})
			if err == nil {
				t.Fatal("expected an error")
			}

			var svcErr *ServiceError
			if !errors.As(err, &svcErr) {
				t.Fatalf("expected *ServiceError, got %T", err)
			}
			if svcErr.Kind != tt.kind {
				t.Errorf("expected kind %q, got %q", tt.kind, svcErr.Kind)
			}
			if svcErr.UserMessage() == "" {
				t.Error("expected a user-safe message")
			}
			if !errors.Is(err, tt.err) {
				t.Error("original provider error should stay wrapped")
			}
		})
	}
}

func TestAskEmptyResponseFails(t *testing.T) {
	g, _ := newTestGateway(llm.MockResponse{Text: "   \n  "})

	_, err := g.Ask(context.Background(), "q", AskOptions{})
	if err == nil {
		t.Fatal("expected an error for a blank generation")
	}

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *ServiceError, got %T", err)
	}
	if svcErr.Kind != FailureUnavailable {
		t.Errorf("expected unavailable kind, got %q", svcErr.Kind)
	}
}

func TestSuppressRepetitionTruncatesLoop(t *testing.T) {
	s1 := "The mitochondria is the powerhouse of the cell."
	s2 := "It produces energy through cellular respiration."
	text := strings.Join([]string{
		s1,
		s2,
		"Plant cells additionally contain chloroplasts.",
		"Energy is stored in molecules of ATP for later use.",
		s1,
	}, " ")

	got := SuppressRepetition(text)
	want := s1 + " " + s2
	if got != want {
		t.Errorf("expected truncation after the unit following the first occurrence:\n got %q\nwant %q", got, want)
	}
}

func TestSuppressRepetitionPassThrough(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no repeats", "The earth orbits the sun once a year. The moon orbits the earth once a month. Tides follow the moon's pull on the oceans. Seasons follow the tilt of the axis."},
		{"short text", "Water boils at 100 degrees. Water boils at 100 degrees."},
		{"too few units", strings.Repeat("a", 60) + ". " + strings.Repeat("b", 60) + "."},
		{"repeat close to original", "Gravity pulls objects toward each other constantly. Gravity pulls objects toward each other constantly. Mass determines how strong that pull becomes over distance."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuppressRepetition(tt.text); got != tt.text {
				t.Errorf("text should pass through unchanged, got %q", got)
			}
		})
	}
}

func TestSuppressRepetitionDevanagari(t *testing.T) {
	s1 := "प्रकाश संश्लेषण पौधों में भोजन बनाने की प्रक्रिया है।"
	s2 := "यह प्रक्रिया सूर्य के प्रकाश की उपस्थिति में होती है।"
	text := strings.Join([]string{
		s1,
		s2,
		"इसमें पत्तियों का हरा रंग मुख्य भूमिका निभाता है।",
		"इस प्रक्रिया में ऑक्सीजन गैस बाहर निकलती है।",
		s1,
	}, " ")

	got := SuppressRepetition(text)
	want := s1 + " " + s2
	if got != want {
		t.Errorf("danda-terminated sentences should truncate the same way:\n got %q\nwant %q", got, want)
	}
}
