// Package language identifies the likely natural language of a text
// fragment using Unicode script ranges. It is a heuristic, not a model:
// each supported language is scored by how many of the text's runes fall
// inside its script, and the highest score wins.
package language

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Detected is the result of a detection pass.
type Detected struct {
	// Name is the human-readable language name, e.g. "Hindi".
	Name string

	// Code is the ISO 639-1 code, e.g. "hi".
	Code string

	// Confidence is in [0, 1]. The values 0 and 0.5 are sentinels:
	// 0 means no usable input, 0.5 means text was present but matched
	// no supported script and English was assumed. Neither is a real
	// measurement.
	Confidence float64
}

// scriptRange is a half-open-inclusive rune interval.
type scriptRange struct {
	lo, hi rune
}

// langDef binds a language to its defining script range(s).
type langDef struct {
	name   string
	code   string
	ranges []scriptRange
}

// langDefs is the supported-language table in tie-break precedence order:
// when two languages score equally, the earlier entry wins. Hindi and
// Marathi both use Devanagari and cannot be told apart by this heuristic;
// Hindi is listed first and therefore wins that tie. Callers who know the
// user's locale should pass an explicit language hint downstream instead
// of relying on detection.
var langDefs = []langDef{
	{"Hindi", "hi", []scriptRange{{0x0900, 0x097F}}},
	{"Marathi", "mr", []scriptRange{{0x0900, 0x097F}}},
	{"Bengali", "bn", []scriptRange{{0x0980, 0x09FF}}},
	{"Punjabi", "pa", []scriptRange{{0x0A00, 0x0A7F}}},
	{"Gujarati", "gu", []scriptRange{{0x0A80, 0x0AFF}}},
	{"Odia", "or", []scriptRange{{0x0B00, 0x0B7F}}},
	{"Tamil", "ta", []scriptRange{{0x0B80, 0x0BFF}}},
	{"Telugu", "te", []scriptRange{{0x0C00, 0x0C7F}}},
	{"Kannada", "kn", []scriptRange{{0x0C80, 0x0CFF}}},
	{"Malayalam", "ml", []scriptRange{{0x0D00, 0x0D7F}}},
	{"Urdu", "ur", []scriptRange{{0x0600, 0x06FF}, {0x0750, 0x077F}}},
}

// englishRe matches text made entirely of ASCII letters, digits, spaces
// and basic punctuation. Unlike the script languages, English is scored
// by a whole-text match rather than a per-rune count.
var englishRe = regexp.MustCompile(`^[A-Za-z0-9\s.,;:'"!?()\-]+$`)

const (
	english     = "English"
	englishCode = "en"
)

// Detect identifies the likely language of text.
//
// Scripted languages score one point per rune inside their ranges; English
// scores the full text length when the whole text is ASCII-basic. The
// highest non-zero score wins, ties broken by table order. Confidence is
// min(score/len, 1). Empty or whitespace-only input defaults to English
// with the 0 sentinel; text with no script match defaults to English with
// the 0.5 sentinel.
func Detect(text string) Detected {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Detected{Name: english, Code: englishCode, Confidence: 0}
	}

	total := utf8.RuneCountInString(trimmed)

	bestScore := 0
	best := Detected{}

	if englishRe.MatchString(trimmed) {
		bestScore = total
		best = Detected{Name: english, Code: englishCode}
	}

	for _, def := range langDefs {
		score := scoreRunes(trimmed, def.ranges)
		if score > bestScore {
			bestScore = score
			best = Detected{Name: def.name, Code: def.code}
		}
	}

	if bestScore == 0 {
		return Detected{Name: english, Code: englishCode, Confidence: 0.5}
	}

	best.Confidence = float64(bestScore) / float64(total)
	if best.Confidence > 1 {
		best.Confidence = 1
	}
	return best
}

func scoreRunes(text string, ranges []scriptRange) int {
	score := 0
	for _, r := range text {
		for _, rng := range ranges {
			if r >= rng.lo && r <= rng.hi {
				score++
				break
			}
		}
	}
	return score
}
