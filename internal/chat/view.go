package chat

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/askvidya/vidya/internal/llm"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	youStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#14B8A6"))

	tutorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F97316"))

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E"))

	thinkingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).
			Italic(true)
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var b strings.Builder

	b.WriteString(titleStyle.Render("Vidya"))
	b.WriteString(sourceStyle.Render(fmt.Sprintf("  session %s", shortID(m.sessionID))))
	b.WriteString("\n\n")

	for _, t := range m.turns {
		b.WriteString(m.renderTurn(t))
		b.WriteString("\n\n")
	}

	if m.waiting {
		b.WriteString(m.spin.View())
		b.WriteString(thinkingStyle.Render("thinking..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Enter to ask · Esc to quit"))

	v.SetContent(b.String())
	return v
}

func (m Model) renderTurn(t turn) string {
	if t.role == llm.RoleUser {
		return youStyle.Render("You: ") + t.text
	}

	if t.failed {
		return tutorStyle.Render("Vidya: ") + errorStyle.Render(t.text)
	}

	out := tutorStyle.Render("Vidya: ") + t.text
	if t.source != "" {
		out += sourceStyle.Render(fmt.Sprintf("  [%s]", t.source))
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
