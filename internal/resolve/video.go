package resolve

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/askvidya/vidya/internal/classify"
	"github.com/askvidya/vidya/internal/gateway"
	"github.com/askvidya/vidya/internal/language"
)

const videoSummaryPrompt = `You are a study assistant summarizing an educational video for a school student.

Rules:
- Summarize only what the transcript actually says.
- Lead with the main topic, then the key points in order.
- Keep it short enough to read in under a minute.`

// ResolveVideo answers a question about a video, or summarizes it when
// question is empty. The transcript is the gateway context; answers are
// cached per (videoID, question) and freely overwritten, so a fresh
// call after a cache miss also refreshes the cache.
func (r *Resolver) ResolveVideo(ctx context.Context, videoID, question, transcript string) Result {
	start := time.Now()

	res := Result{
		RequestID: uuid.NewString(),
		Category:  classify.Unknown,
	}

	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		res.Message = "No video specified."
		return res
	}

	question = strings.TrimSpace(question)

	defer func() {
		r.recordEvent(ctx, question, res, time.Since(start))
	}()

	if r.deps.Videos != nil {
		if hit := r.deps.Videos.Get(videoID, question); hit != nil {
			res.Success = true
			res.Source = SourceMemory
			res.Answer = hit.Answer
			return res
		}
	}

	if strings.TrimSpace(transcript) == "" {
		res.Message = "No transcript available for this video."
		return res
	}

	if r.deps.Gateway == nil {
		res.Message = noGatewayMessage
		return res
	}

	opts := gateway.AskOptions{
		Context: transcript,
		Purpose: "video-answer",
	}
	prompt := question
	if prompt == "" {
		opts.SystemPrompt = videoSummaryPrompt
		opts.Purpose = "video-summary"
		prompt = "Summarize this video."
	} else {
		res.Language = language.Detect(question).Name
		opts.Language = res.Language
	}

	ans, err := r.deps.Gateway.Ask(ctx, prompt, opts)
	if err != nil {
		res.Source = SourceAI
		res.Message = failureMessage(err)
		return res
	}

	res.Success = true
	res.Source = SourceAI
	res.Answer = ans.Text

	if r.deps.Videos != nil {
		if err := r.deps.Videos.Save(videoID, question, ans.Text); err != nil {
			slog.Warn("video cache write failed", "video_id", videoID, "error", err)
		}
	}

	return res
}
