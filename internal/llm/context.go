package llm

import "context"

// purposeCtxKey is unexported so only this package can set or read the value.
type purposeCtxKey struct{}

// DefaultPurpose labels calls whose context carries no purpose tag.
const DefaultPurpose = "general"

// WithPurpose tags ctx with a purpose label such as "video-summary".
// The logging decorator reads it back when recording the request.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	if purpose == "" {
		return ctx
	}
	return context.WithValue(ctx, purposeCtxKey{}, purpose)
}

// PurposeFrom reports the purpose label carried by ctx, falling back
// to DefaultPurpose when none was set.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeCtxKey{}).(string); ok && v != "" {
		return v
	}
	return DefaultPurpose
}
