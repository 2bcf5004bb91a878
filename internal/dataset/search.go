package dataset

import (
	"sort"
	"strings"
)

// SearchResult describes a dataset hit.
type SearchResult struct {
	Found   bool
	Class   string
	Subject string
	Chapter string
	Answer  string
}

// Search scans entries in load order and returns the first entry with at
// least one string leaf containing the lower-cased question, using the
// first collected leaf as the answer. There is no ranking: the contract
// is literal first-match in load order. Map keys are walked in sorted
// order so identical dataset and query always yield the same result.
func (d *Dataset) Search(question string) SearchResult {
	needle := strings.ToLower(strings.TrimSpace(question))
	if needle == "" {
		return SearchResult{}
	}

	for _, entry := range d.entries {
		if match, ok := firstLeafMatch(entry.Doc, needle); ok {
			return SearchResult{
				Found:   true,
				Class:   entry.Class,
				Subject: entry.Subject,
				Chapter: entry.Chapter,
				Answer:  match,
			}
		}
	}
	return SearchResult{}
}

// firstLeafMatch walks a nested value depth-first and returns the first
// string leaf containing needle.
func firstLeafMatch(v any, needle string) (string, bool) {
	switch node := v.(type) {
	case string:
		if strings.Contains(strings.ToLower(node), needle) {
			return node, true
		}
	case []any:
		for _, item := range node {
			if m, ok := firstLeafMatch(item, needle); ok {
				return m, true
			}
		}
	case map[string]any:
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if m, ok := firstLeafMatch(node[k], needle); ok {
				return m, true
			}
		}
	}
	return "", false
}
