package chat

import "github.com/askvidya/vidya/internal/resolve"

// answerMsg is sent when a resolution for the current question finishes.
type answerMsg struct {
	result resolve.Result
}
