package gateway

import (
	"fmt"
	"strings"
)

const mathSystemPrompt = `You are a patient math tutor for school students.

Rules:
- Solve the problem step by step, numbering each step.
- Keep every step short and concrete. No filler text.
- State the final answer on its own line, prefixed with "Answer:".
- Use plain text for all math. Use / for fractions and ^ for powers.
- After the answer, suggest one topic the student could watch a video
  about to understand the method better.`

const generalSystemPrompt = `You are a friendly multilingual tutor for school students.

Rules:
- Only answer study questions: science, mathematics, history, geography,
  languages, civics and general knowledge from the school curriculum.
- If the question is outside those topics, politely say you can only
  help with studies.
- Explain simply, the way a good teacher would to a student.
- Keep answers focused; do not pad with pleasantries.`

// buildSystemPrompt selects and assembles the system prompt. Priority:
// explicit custom prompt, then the math template, then the general
// template. A language instruction and the reference-material block are
// appended to whichever base was selected.
func buildSystemPrompt(opts AskOptions) string {
	var b strings.Builder

	switch {
	case opts.SystemPrompt != "":
		b.WriteString(opts.SystemPrompt)
	case opts.MathProblem:
		b.WriteString(mathSystemPrompt)
	default:
		b.WriteString(generalSystemPrompt)
	}

	if lang := strings.TrimSpace(opts.Language); lang != "" && !strings.EqualFold(lang, "English") {
		fmt.Fprintf(&b, "\n\nAnswer in %s.", lang)
	}

	if ctx := strings.TrimSpace(opts.Context); ctx != "" {
		b.WriteString("\n\nReference material:\n---\n")
		b.WriteString(ctx)
		b.WriteString("\n---")
	}

	return b.String()
}
