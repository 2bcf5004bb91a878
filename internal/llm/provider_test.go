package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_FIFO(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Text: "first"},
		MockResponse{Text: "second"},
	)

	r1, err := m.Generate(context.Background(), Request{})
	if err != nil || r1.Text != "first" {
		t.Fatalf("expected first, got %v %v", r1, err)
	}
	r2, err := m.Generate(context.Background(), Request{})
	if err != nil || r2.Text != "second" {
		t.Fatalf("expected second, got %v %v", r2, err)
	}

	// Exhausted queue fails with a classified error.
	_, err = m.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}

	if m.CallCount() != 3 {
		t.Fatalf("expected 3 recorded calls, got %d", m.CallCount())
	}
}

func TestMockProvider_Err(t *testing.T) {
	wantErr := &ErrRateLimit{}
	m := NewMockProvider(MockResponse{Err: wantErr})

	_, err := m.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.0-flash" {
		t.Fatalf("friendly name not resolved: %s", got)
	}
	if got := resolveModel("gemini-exp-1206", geminiModels); got != "gemini-exp-1206" {
		t.Fatalf("unknown names pass through: %s", got)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("gemini provider without key should fail validation")
	}

	cfg.Gemini.APIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config: %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock provider needs no key: %v", err)
	}

	cfg.Provider = "something-else"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown provider should fail validation")
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.0-flash")
	if c == nil {
		t.Fatal("expected pricing for gemini-2.0-flash")
	}
	got := c.Cost(1_000_000, 1_000_000)
	if got != 0.5 {
		t.Fatalf("expected 0.5 USD, got %f", got)
	}
	if LookupCost("unknown-model") != nil {
		t.Fatal("unknown model should have no pricing")
	}
}

func TestErrorsUnwrap(t *testing.T) {
	inner := errors.New("boom")
	for _, err := range []error{
		&ErrAuth{Err: inner},
		&ErrModelNotFound{Model: "m", Err: inner},
		&ErrRateLimit{Err: inner},
		&ErrInvalidResponse{Err: inner},
		&ErrProviderUnavailable{Err: inner},
	} {
		if !errors.Is(err, inner) {
			t.Fatalf("%T should unwrap to the inner error", err)
		}
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()

	if got := PurposeFrom(ctx); got != DefaultPurpose {
		t.Fatalf("expected %q for an untagged context, got %q", DefaultPurpose, got)
	}

	tagged := WithPurpose(ctx, "video-summary")
	if got := PurposeFrom(tagged); got != "video-summary" {
		t.Fatalf("expected video-summary, got %q", got)
	}

	// An empty label does not shadow an existing tag.
	if got := PurposeFrom(WithPurpose(tagged, "")); got != "video-summary" {
		t.Fatalf("expected video-summary after empty tag, got %q", got)
	}
}
