package gateway

import (
	"errors"
	"fmt"

	"github.com/askvidya/vidya/internal/llm"
)

// FailureKind classifies why a generative call failed.
type FailureKind string

const (
	FailureAuth          FailureKind = "auth"
	FailureModelNotFound FailureKind = "model_not_found"
	FailureRateLimited   FailureKind = "rate_limited"
	FailureUnavailable   FailureKind = "unavailable"
)

// User-safe messages, one fixed string per failure kind. These are what
// end users see; the underlying error stays in the event log only.
var userMessages = map[FailureKind]string{
	FailureAuth:          "The answer service is unavailable right now due to a configuration issue. Please try again later.",
	FailureModelNotFound: "There is a configuration error on our side. Please contact support.",
	FailureRateLimited:   "The service is busy right now. Please try again in a moment.",
	FailureUnavailable:   "Something went wrong while generating the answer. Please try again.",
}

// ServiceError is the gateway's classified failure. Callers branch on
// Kind and show UserMessage to the user; the wrapped error is for logs.
type ServiceError struct {
	Kind FailureKind
	Err  error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("gateway failure (%s): %v", e.Kind, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// UserMessage returns the fixed user-safe message for this failure.
func (e *ServiceError) UserMessage() string {
	return userMessages[e.Kind]
}

// classifyError maps provider errors to a ServiceError.
func classifyError(err error) *ServiceError {
	var auth *llm.ErrAuth
	if errors.As(err, &auth) {
		return &ServiceError{Kind: FailureAuth, Err: err}
	}

	var notFound *llm.ErrModelNotFound
	if errors.As(err, &notFound) {
		return &ServiceError{Kind: FailureModelNotFound, Err: err}
	}

	var rateLimit *llm.ErrRateLimit
	if errors.As(err, &rateLimit) {
		return &ServiceError{Kind: FailureRateLimited, Err: err}
	}

	return &ServiceError{Kind: FailureUnavailable, Err: err}
}
