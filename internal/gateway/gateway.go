// Package gateway turns a question plus conversational context into a
// generative model call: it selects the system prompt, applies
// category-appropriate sampling parameters, classifies failures into
// user-safe messages, and suppresses runaway repetition in the output.
package gateway

import (
	"context"
	"strings"

	"github.com/askvidya/vidya/internal/llm"
)

// Gateway is the single entry point for generative answers.
type Gateway struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Gateway around the given provider.
func New(provider llm.Provider, cfg Config) *Gateway {
	return &Gateway{provider: provider, cfg: cfg}
}

// AskOptions tunes a single Ask call.
type AskOptions struct {
	// MathProblem selects the math-tutor prompt and the deterministic
	// sampling profile.
	MathProblem bool

	// Language is the name of the language to answer in, e.g. "Hindi".
	// Empty or "English" adds no language instruction.
	Language string

	// Context is caller-supplied reference text (extracted document
	// content, a video transcript). Appended verbatim to the system
	// prompt as a labeled block.
	Context string

	// History is the prior conversation, oldest first.
	History []llm.Message

	// SystemPrompt overrides the built-in templates when set.
	SystemPrompt string

	// Purpose labels the request in the event log. Defaults to
	// "math-answer" or "answer" depending on MathProblem.
	Purpose string
}

// Answer is a successful generation.
type Answer struct {
	Text  string
	Model string
	Usage llm.Usage
}

// Ask generates an answer to question. On failure the returned error is
// a *ServiceError carrying the failure kind and a fixed user-safe
// message; the model is called exactly once, never retried.
func (g *Gateway) Ask(ctx context.Context, question string, opts AskOptions) (*Answer, error) {
	purpose := opts.Purpose
	if purpose == "" {
		purpose = "answer"
		if opts.MathProblem {
			purpose = "math-answer"
		}
	}
	ctx = llm.WithPurpose(ctx, purpose)

	req := llm.Request{
		System:      buildSystemPrompt(opts),
		Messages:    append(append([]llm.Message{}, opts.History...), llm.Message{Role: llm.RoleUser, Content: question}),
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}
	if opts.MathProblem {
		req.MaxTokens = g.cfg.MathMaxTokens
		req.Temperature = g.cfg.MathTemperature
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, classifyError(err)
	}

	text := strings.TrimSpace(SuppressRepetition(resp.Text))
	if text == "" {
		return nil, classifyError(&llm.ErrInvalidResponse{})
	}

	return &Answer{
		Text:  text,
		Model: resp.Model,
		Usage: resp.Usage,
	}, nil
}
