package classify

import "regexp"

// keywordRe flags a question as math when it contains any vocabulary
// keyword. Word boundaries prevent substring hits inside unrelated words
// (e.g. "tan" in "important").
var keywordRe = regexp.MustCompile(`\b(` +
	`solve|simplify|evaluate|calculate|compute|factor|factorise|factorize|expand|` +
	`equation|quadratic|polynomial|fraction|percentage|ratio|exponent|logarithm|` +
	`derivative|differentiate|differentiation|integrate|integral|integration|antiderivative|limit|` +
	`matrix|matrices|determinant|eigenvalue|eigenvector|` +
	`algebra|geometry|trigonometry|trigonometric|calculus|` +
	`probability|statistics|mean|median|mode|variance|` +
	`sin|cos|tan|cot|sec|cosec|csc|theta|hypotenuse|` +
	`area|perimeter|volume|triangle|circle|rectangle|angle|radius|diameter|polygon|` +
	`lcm|hcf|gcd` +
	`)\b`)

// mathSymbols are glyphs that only show up in math notation: operators,
// comparisons, root/power/calculus marks, and Greek letters. Bare "-" and
// "/" are deliberately absent; they are too common in prose and are
// covered by the numeric/operator clause instead.
const mathSymbols = "+=×÷<>≤≥≠±√∫∑∏π∞^²³θαβγΔ"

// numericOperatorRe matches a digit adjacent to an arithmetic operator.
var numericOperatorRe = regexp.MustCompile(`\d\s*[-+*/^=]|[-+*/^=]\s*\d`)

// variableRefRe matches a variable reference: a single lowercase letter
// touching an operator, a coefficient form like "2x", or x/y/z as a
// whole word.
var variableRefRe = regexp.MustCompile(`\b[xyz]\b|[a-z]\s*[-+*/^=]|[-+*/^=]\s*[a-z]|\d[a-z]\b`)

// subcategoryRule pairs a pattern with the category it assigns.
type subcategoryRule struct {
	pattern  *regexp.Regexp
	category Category
}

// subcategoryRules assigns the most specific subcategory. Order is
// precedence: the first matching rule wins, so integral markers beat
// derivative markers, and so on down to the algebra catch-all. Questions
// matching none of these stay in the generic Math category.
var subcategoryRules = []subcategoryRule{
	{regexp.MustCompile(`∫|\b(integral|integrate|integration|antiderivative)\b`), Integrals},
	{regexp.MustCompile(`\b(derivative|differentiate|differentiation|limit)\b|\bd/d[a-z]\b|\bd[a-z]/d[a-z]\b`), Calculus},
	{regexp.MustCompile(`\b(matrix|matrices|determinant|eigenvalue|eigenvector)\b`), LinearAlgebra},
	{regexp.MustCompile(`\b(sin|cos|tan|cot|sec|cosec|csc|trigonometry|trigonometric|hypotenuse|theta)\b|θ`), Trigonometry},
	{regexp.MustCompile(`\b(area|perimeter|volume|triangle|circle|rectangle|angle|radius|diameter|polygon|geometry)\b`), Geometry},
	{regexp.MustCompile(`\b(probability|statistics|mean|median|mode|variance|deviation)\b`), Statistics},
	{regexp.MustCompile(`\b(solve|equation|simplify|factor|factorise|factorize|polynomial|quadratic)\b|\d\s*[a-z]\s*[-+*/=]`), Algebra},
}
