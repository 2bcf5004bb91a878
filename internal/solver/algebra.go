package solver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// linearEqRe matches the exact shape ax-b=c after whitespace stripping.
// This is intentionally not a general equation solver: only this one
// form is handled, everything else falls through to the gateway.
var linearEqRe = regexp.MustCompile(`^(-?\d+)x-(\d+)=(-?\d+)$`)

// SolveLinear solves equations of the form ax - b = c for x.
func SolveLinear(question string) Result {
	compact := strings.Join(strings.Fields(question), "")
	// Tolerate a leading verb like "solve" from the classifier path.
	compact = strings.TrimPrefix(strings.ToLower(compact), "solve")

	m := linearEqRe.FindStringSubmatch(compact)
	if m == nil {
		return mismatch("equation does not match the form ax - b = c")
	}

	a, _ := strconv.ParseInt(m[1], 10, 64)
	b, _ := strconv.ParseInt(m[2], 10, 64)
	c, _ := strconv.ParseInt(m[3], 10, 64)

	if a == 0 {
		return mismatch("coefficient of x is zero")
	}

	x := formatQuotient(c+b, a)
	answer := "x = " + x

	return Result{
		Steps: []string{
			fmt.Sprintf("Given equation: %dx - %d = %d", a, b, c),
			fmt.Sprintf("Add %d to both sides: %dx = %d", b, a, c+b),
			fmt.Sprintf("Divide both sides by %d: x = %s", a, x),
			fmt.Sprintf("Therefore %s", answer),
		},
		Answer: answer,
	}
}

// formatQuotient renders n/d as an integer when it divides evenly and as
// a short decimal otherwise.
func formatQuotient(n, d int64) string {
	if n%d == 0 {
		return strconv.FormatInt(n/d, 10)
	}
	return strconv.FormatFloat(float64(n)/float64(d), 'f', -1, 64)
}
