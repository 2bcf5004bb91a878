package resolve

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/askvidya/vidya/internal/dataset"
	"github.com/askvidya/vidya/internal/solver"
)

// Format renders a value as user-facing answer text. Plain strings pass
// through unchanged, known pipeline shapes get their dedicated layout,
// and anything unrecognized renders as a structured dump. Unknown input
// is a defined case here, never a panic.
func Format(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case Result:
		return formatResult(val)
	case *Result:
		if val == nil {
			return ""
		}
		return formatResult(*val)
	case dataset.SearchResult:
		return formatDatasetHit(val)
	case *dataset.SearchResult:
		if val == nil {
			return ""
		}
		return formatDatasetHit(*val)
	case solver.Result:
		return formatSolved(val.Steps, val.Answer)
	case map[string]any:
		if answer, ok := val["answer"].(string); ok {
			return answer
		}
		return dump(val)
	default:
		return dump(val)
	}
}

func formatResult(res Result) string {
	if !res.Success {
		return res.Message
	}
	switch {
	case res.Source == SourceDataset && res.Dataset != nil:
		return formatDatasetHit(*res.Dataset)
	case res.Source == SourceSolver && len(res.Steps) > 0:
		return formatSolved(res.Steps, res.Answer)
	default:
		return res.Answer
	}
}

// formatDatasetHit prefixes the answer with its class and appends the
// subject and chapter provenance lines when known.
func formatDatasetHit(hit dataset.SearchResult) string {
	var b strings.Builder

	if hit.Class != "" {
		fmt.Fprintf(&b, "[Class %s] ", hit.Class)
	}
	b.WriteString(hit.Answer)

	if hit.Subject != "" {
		fmt.Fprintf(&b, "\nSubject: %s", hit.Subject)
	}
	if hit.Chapter != "" {
		fmt.Fprintf(&b, "\nChapter: %s", hit.Chapter)
	}
	return b.String()
}

// formatSolved renders worked steps as a numbered list topped off with
// a bolded answer line.
func formatSolved(steps []string, answer string) string {
	var b strings.Builder

	for i, step := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	fmt.Fprintf(&b, "**Answer:** %s", answer)
	return b.String()
}

// dump renders an unrecognized shape as indented JSON, falling back to
// the Go representation for values JSON cannot express.
func dump(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
