// Package classify labels a question with a math subcategory, or Unknown
// when the question is not math at all. Classification is keyword and
// symbol driven; the rule tables live in rules.go so precedence stays
// auditable.
package classify

import "strings"

// Category is a math subcategory. Unknown means "not treated as math".
type Category string

const (
	Unknown       Category = "unknown"
	Math          Category = "math"
	Algebra       Category = "algebra"
	Integrals     Category = "integrals"
	Calculus      Category = "calculus"
	LinearAlgebra Category = "linear_algebra"
	Trigonometry  Category = "trigonometry"
	Geometry      Category = "geometry"
	Statistics    Category = "statistics"
)

// IsMath reports whether the category routes to math handling.
func (c Category) IsMath() bool {
	return c != Unknown && c != ""
}

// HasSolver reports whether a symbolic solver exists for the category.
func (c Category) HasSolver() bool {
	return c == Algebra || c == Integrals
}

// Classify assigns a category to a question.
//
// A question is flagged as math when any of these hold: it contains a
// vocabulary keyword (word-boundary matched), it contains a math symbol,
// or it contains both a numeric/operator sequence and a variable
// reference. Flagged questions then get the most specific subcategory
// whose rule matches first, in the order of subcategoryRules; questions
// that match no subcategory rule fall back to the generic Math category.
func Classify(question string) Category {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return Unknown
	}

	if !isMathQuestion(q) {
		return Unknown
	}

	for _, rule := range subcategoryRules {
		if rule.pattern.MatchString(q) {
			return rule.category
		}
	}
	return Math
}

func isMathQuestion(q string) bool {
	if keywordRe.MatchString(q) {
		return true
	}
	if strings.ContainsAny(q, mathSymbols) {
		return true
	}
	return numericOperatorRe.MatchString(q) && variableRefRe.MatchString(q)
}
