package chat

import (
	"testing"

	"github.com/askvidya/vidya/internal/gateway"
	"github.com/askvidya/vidya/internal/llm"
	"github.com/askvidya/vidya/internal/resolve"
)

func newTestModel() Model {
	gw := gateway.New(llm.NewMockProvider(), gateway.DefaultConfig())
	return New(resolve.New(resolve.Deps{Gateway: gw}))
}

func TestHistorySkipsFailedTurns(t *testing.T) {
	m := newTestModel()
	m.turns = []turn{
		{role: llm.RoleUser, text: "what is the earth?"},
		{role: llm.RoleAssistant, text: "a planet", source: resolve.SourceAI},
		{role: llm.RoleUser, text: "and the moon?"},
		{role: llm.RoleAssistant, text: "The service is busy right now.", failed: true},
	}

	history := m.history()
	if len(history) != 3 {
		t.Fatalf("expected 3 history messages, got %d", len(history))
	}
	for _, msg := range history {
		if msg.Content == "The service is busy right now." {
			t.Error("failed answers must not enter the history")
		}
	}
	if history[1].Role != llm.RoleAssistant || history[1].Content != "a planet" {
		t.Errorf("unexpected history order: %+v", history)
	}
}

func TestAnswerMsgAppendsTurn(t *testing.T) {
	m := newTestModel()
	m.waiting = true

	updated, _ := m.Update(answerMsg{result: resolve.Result{
		Success: true,
		Source:  resolve.SourceSolver,
		Answer:  "x = 7",
		Steps:   []string{"x = 7"},
	}})

	got := updated.(Model)
	if got.waiting {
		t.Error("answer should clear the waiting state")
	}
	if len(got.turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(got.turns))
	}
	if got.turns[0].role != llm.RoleAssistant || got.turns[0].source != resolve.SourceSolver {
		t.Errorf("unexpected turn: %+v", got.turns[0])
	}
}

func TestFailedAnswerMarksTurn(t *testing.T) {
	m := newTestModel()
	m.waiting = true

	updated, _ := m.Update(answerMsg{result: resolve.Result{
		Message: "Something went wrong while generating the answer. Please try again.",
	}})

	got := updated.(Model)
	if !got.turns[0].failed {
		t.Error("unsuccessful results should mark the turn as failed")
	}
	if got.turns[0].text == "" {
		t.Error("failed turns still carry the user-safe message")
	}
}
