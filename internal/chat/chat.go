// Package chat is the interactive tutoring session: a terminal
// conversation where every turn runs through the full resolution
// pipeline with the prior turns as history.
package chat

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/askvidya/vidya/internal/llm"
	"github.com/askvidya/vidya/internal/resolve"
)

// turn is one exchange line in the transcript.
type turn struct {
	role   llm.Role
	text   string
	source resolve.Source // answers only
	failed bool
}

// Model is the chat session Bubble Tea model.
type Model struct {
	resolver  *resolve.Resolver
	sessionID string

	input   textinput.Model
	spin    spinner.Model
	turns   []turn
	waiting bool

	width  int
	height int
}

// New creates a chat session over the given resolver.
func New(resolver *resolve.Resolver) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask a study question..."
	ti.CharLimit = 500
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = thinkingStyle

	return Model{
		resolver:  resolver,
		sessionID: uuid.NewString(),
		input:     ti,
		spin:      sp,
	}
}

func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit()
		}

	case answerMsg:
		m.waiting = false
		m.turns = append(m.turns, turn{
			role:   llm.RoleAssistant,
			text:   resolve.Format(msg.result),
			source: msg.result.Source,
			failed: !msg.result.Success,
		})
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	if m.waiting {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the typed question through the pipeline. The history
// passed along is everything said before this question.
func (m Model) submit() (tea.Model, tea.Cmd) {
	question := m.input.Value()
	if m.waiting || question == "" {
		return m, nil
	}

	history := m.history()
	m.turns = append(m.turns, turn{role: llm.RoleUser, text: question})
	m.input.Reset()
	m.waiting = true

	return m, tea.Batch(m.resolveCmd(question, history), m.spin.Tick)
}

// resolveCmd runs the pipeline off the UI loop.
func (m Model) resolveCmd(question string, history []llm.Message) tea.Cmd {
	resolver := m.resolver
	return func() tea.Msg {
		res := resolver.Resolve(context.Background(), question, resolve.Options{
			History: history,
		})
		return answerMsg{result: res}
	}
}

// history converts prior successful exchanges into model messages,
// oldest first. Failed answers are left out so the model never treats
// an error message as part of the conversation.
func (m Model) history() []llm.Message {
	var msgs []llm.Message
	for _, t := range m.turns {
		if t.failed {
			continue
		}
		msgs = append(msgs, llm.Message{Role: t.role, Content: t.text})
	}
	return msgs
}

// Run starts the chat program and blocks until the user quits.
func Run(resolver *resolve.Resolver) error {
	_, err := tea.NewProgram(New(resolver)).Run()
	return err
}
