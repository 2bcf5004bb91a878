// Package resolve runs a question through the tiered answer pipeline:
// learned-answer cache, dataset search, symbolic solvers, and finally
// the generative gateway. The first stage that produces a usable answer
// terminates the request; later stages never run.
package resolve

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/askvidya/vidya/internal/classify"
	"github.com/askvidya/vidya/internal/dataset"
	"github.com/askvidya/vidya/internal/gateway"
	"github.com/askvidya/vidya/internal/language"
	"github.com/askvidya/vidya/internal/llm"
	"github.com/askvidya/vidya/internal/memory"
	"github.com/askvidya/vidya/internal/solver"
	"github.com/askvidya/vidya/internal/store"
)

// Source identifies the stage that produced a result.
type Source string

const (
	SourceMemory  Source = "memory"
	SourceDataset Source = "dataset"
	SourceSolver  Source = "solver"
	SourceAIMath  Source = "ai_math"
	SourceAI      Source = "ai"
)

// Result is the outcome of one resolution. Produced fresh per request,
// never shared.
type Result struct {
	// Success reports whether Answer holds a usable answer. When false,
	// Message carries the user-safe explanation.
	Success bool

	// Source is the stage that terminated the request.
	Source Source

	// Answer is the final answer text, e.g. "x = 7" for solver hits.
	Answer string

	// Message is the user-safe failure message. Set only when Success
	// is false.
	Message string

	// Steps are the worked solution lines. Solver hits only.
	Steps []string

	// Dataset carries the hit metadata. Dataset hits only.
	Dataset *dataset.SearchResult

	// Category is the math classification applied to the question.
	Category classify.Category

	// Language is the answer language, from the caller's hint or from
	// detection on the question text.
	Language string

	// RequestID correlates this result with its resolution event.
	RequestID string
}

// Options tunes a single Resolve call.
type Options struct {
	// Context is caller-supplied reference text. Its presence suppresses
	// the memory stage: the learned cache holds generic, context-free
	// knowledge only.
	Context string

	// History is the prior conversation, oldest first. Its presence
	// suppresses learning from this request.
	History []llm.Message

	// Language is the caller's language hint, e.g. "Hindi". When empty,
	// the question text is run through the language detector.
	Language string

	// SkipClassify forces the general tutoring path, bypassing the math
	// classifier and the solvers.
	SkipClassify bool
}

// Deps are the pipeline's collaborators. Learned and Gateway are
// required; the rest degrade gracefully when nil.
type Deps struct {
	Learned *memory.LearnedStore
	Videos  *memory.VideoStore
	Dataset *dataset.Dataset
	Gateway *gateway.Gateway
	Events  store.EventRepo
}

// Resolver is the pipeline orchestrator.
type Resolver struct {
	deps Deps

	// learnWG tracks in-flight cache writes so a short-lived process
	// can drain them before exiting.
	learnWG sync.WaitGroup
}

// New creates a Resolver over the given collaborators.
func New(deps Deps) *Resolver {
	return &Resolver{deps: deps}
}

// Wait blocks until all in-flight cache writes have landed. Responses
// never wait on these writes; callers that are about to exit must, or
// the write is lost with the process.
func (r *Resolver) Wait() {
	r.learnWG.Wait()
}

const (
	emptyQuestionMessage = "Please ask a question."
	noGatewayMessage     = "AI answering is not configured. Set a provider API key and try again."
)

// Resolve runs question through the pipeline stages in order and
// returns the first usable answer. Gateway failures become a
// success=false Result with a user-safe message; Resolve itself never
// returns an error.
func (r *Resolver) Resolve(ctx context.Context, question string, opts Options) Result {
	start := time.Now()

	res := Result{
		RequestID: uuid.NewString(),
		Category:  classify.Unknown,
	}

	question = strings.TrimSpace(question)
	if question == "" {
		res.Message = emptyQuestionMessage
		return res
	}

	res.Language = opts.Language
	if res.Language == "" {
		res.Language = language.Detect(question).Name
	}

	defer func() {
		r.recordEvent(ctx, question, res, time.Since(start))
	}()

	// Memory stage. Context-bound questions never consult the cache:
	// a cached generic answer is wrong for a question about a specific
	// document.
	if opts.Context == "" && r.deps.Learned != nil {
		if hit := r.deps.Learned.Find(question); hit != nil {
			res.Success = true
			res.Source = SourceMemory
			res.Answer = hit.Answer
			return res
		}
	}

	// Dataset stage.
	if r.deps.Dataset != nil {
		if hit := r.deps.Dataset.Search(question); hit.Found {
			res.Success = true
			res.Source = SourceDataset
			res.Answer = hit.Answer
			res.Dataset = &hit
			return res
		}
	}

	// Classification.
	if !opts.SkipClassify {
		res.Category = classify.Classify(question)
	}

	// Solver stage. A mismatch is expected fallthrough, not a failure.
	if res.Category.HasSolver() {
		var sr solver.Result
		switch res.Category {
		case classify.Algebra:
			sr = solver.SolveLinear(question)
		case classify.Integrals:
			sr = solver.SolveIntegral(question)
		}
		if sr.OK() {
			res.Success = true
			res.Source = SourceSolver
			res.Answer = sr.Answer
			res.Steps = sr.Steps
			return res
		}
	}

	// Generative stages. Math questions and general questions are
	// mutually exclusive paths into the gateway.
	if r.deps.Gateway == nil {
		res.Message = noGatewayMessage
		return res
	}

	askOpts := gateway.AskOptions{
		MathProblem: res.Category.IsMath(),
		Language:    res.Language,
		Context:     opts.Context,
		History:     opts.History,
	}

	source := SourceAI
	if askOpts.MathProblem {
		source = SourceAIMath
	}
	res.Source = source

	ans, err := r.deps.Gateway.Ask(ctx, question, askOpts)
	if err != nil {
		res.Message = failureMessage(err)
		return res
	}

	res.Success = true
	res.Answer = ans.Text

	// Generic, context-free, history-free answers are worth remembering.
	// The write happens off the request path; the response never waits
	// on it.
	if source == SourceAI && opts.Context == "" && len(opts.History) == 0 && r.deps.Learned != nil {
		r.learnWG.Add(1)
		go func(q, a string) {
			defer r.learnWG.Done()
			if err := r.deps.Learned.Learn(q, a, string(SourceAI)); err != nil {
				slog.Warn("learned cache write failed", "error", err)
			}
		}(question, ans.Text)
	}

	return res
}

// failureMessage extracts the user-safe message from a gateway error.
func failureMessage(err error) string {
	var svcErr *gateway.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.UserMessage()
	}
	return "Something went wrong while generating the answer. Please try again."
}

// recordEvent appends a resolution event. Logging failures never affect
// the request.
func (r *Resolver) recordEvent(ctx context.Context, question string, res Result, elapsed time.Duration) {
	if r.deps.Events == nil {
		return
	}
	data := store.ResolutionEventData{
		RequestID: res.RequestID,
		Question:  question,
		Source:    string(res.Source),
		Category:  string(res.Category),
		Language:  res.Language,
		Success:   res.Success,
		LatencyMs: elapsed.Milliseconds(),
	}
	if err := r.deps.Events.AppendResolution(ctx, data); err != nil {
		slog.Warn("failed to log resolution event", "error", err)
	}
}
