package gateway

import "strings"

// Repetition suppression. Long generations occasionally loop, repeating
// earlier sentences verbatim near the end. This is a safety valve, not a
// semantic dedup: it only ever truncates, never reorders or rewrites.

const (
	minTextLen  = 100 // below this, never touch the text
	minUnits    = 3   // fewer units than this, never touch the text
	minUnitLen  = 10  // fragments shorter than this are ignored
	keyLen      = 50  // units are keyed by their first runes, case-sensitive
	minUnitsGap = 2   // a repeat this close to its original is tolerated
)

// sentenceTerminators covers Latin terminators plus the Devanagari danda
// and double danda.
const sentenceTerminators = ".!?।॥"

// unit is one sentence-like fragment with its end position in the
// original text, so truncation can preserve the text exactly as written.
type unit struct {
	text  string // trimmed fragment
	start int    // byte offset of the fragment start
	end   int    // byte offset just past the fragment's terminator
}

// SuppressRepetition truncates text at the point where it starts
// repeating itself: a sentence whose key was already seen more than
// minUnitsGap units earlier, appearing past the midpoint of the
// document, cuts the output to everything up through the unit
// immediately after the first occurrence. Text that never triggers the
// rule passes through byte-identical.
func SuppressRepetition(text string) string {
	if len(text) < minTextLen {
		return text
	}

	units := splitUnits(text)
	if len(units) < minUnits {
		return text
	}

	midpoint := len(text) / 2
	seen := make(map[string]int, len(units))

	for i, u := range units {
		key := unitKey(u.text)
		first, ok := seen[key]
		if !ok {
			seen[key] = i
			continue
		}
		if i-first > minUnitsGap && u.start > midpoint {
			return strings.TrimSpace(text[:units[first+1].end])
		}
	}
	return text
}

// splitUnits cuts text into sentence-like fragments on terminator
// punctuation, dropping fragments too short to be meaningful sentences.
func splitUnits(text string) []unit {
	var units []unit
	start := 0

	flush := func(end int) {
		raw := text[start:end]
		trimmed := strings.TrimSpace(raw)
		if len([]rune(trimmed)) >= minUnitLen {
			units = append(units, unit{text: trimmed, start: start, end: end})
		}
		start = end
	}

	for i, r := range text {
		if strings.ContainsRune(sentenceTerminators, r) {
			flush(i + len(string(r)))
		}
	}
	if start < len(text) {
		flush(len(text))
	}
	return units
}

// unitKey returns the unit's first keyLen runes, as written.
func unitKey(s string) string {
	runes := []rune(s)
	if len(runes) <= keyLen {
		return s
	}
	return string(runes[:keyLen])
}
