// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/askvidya/vidya/ent/llmrequestevent"
	"github.com/askvidya/vidya/ent/resolutionevent"
	"github.com/askvidya/vidya/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	resolutioneventMixin := schema.ResolutionEvent{}.Mixin()
	resolutioneventMixinFields0 := resolutioneventMixin[0].Fields()
	_ = resolutioneventMixinFields0
	resolutioneventFields := schema.ResolutionEvent{}.Fields()
	_ = resolutioneventFields
	// resolutioneventDescTimestamp is the schema descriptor for timestamp field.
	resolutioneventDescTimestamp := resolutioneventMixinFields0[1].Descriptor()
	// resolutionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	resolutionevent.DefaultTimestamp = resolutioneventDescTimestamp.Default.(func() time.Time)
	// resolutioneventDescCategory is the schema descriptor for category field.
	resolutioneventDescCategory := resolutioneventFields[3].Descriptor()
	// resolutionevent.DefaultCategory holds the default value on creation for the category field.
	resolutionevent.DefaultCategory = resolutioneventDescCategory.Default.(string)
	// resolutioneventDescLanguage is the schema descriptor for language field.
	resolutioneventDescLanguage := resolutioneventFields[4].Descriptor()
	// resolutionevent.DefaultLanguage holds the default value on creation for the language field.
	resolutionevent.DefaultLanguage = resolutioneventDescLanguage.Default.(string)
	// resolutioneventDescLatencyMs is the schema descriptor for latency_ms field.
	resolutioneventDescLatencyMs := resolutioneventFields[6].Descriptor()
	// resolutionevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	resolutionevent.DefaultLatencyMs = resolutioneventDescLatencyMs.Default.(int64)
}
