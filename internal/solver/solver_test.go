package solver

import (
	"strings"
	"testing"
)

func TestSolveLinear_Basic(t *testing.T) {
	r := SolveLinear("2x - 4 = 10")
	if !r.OK() {
		t.Fatalf("expected success: %s", r.ErrReason)
	}
	if r.Answer != "x = 7" {
		t.Fatalf("expected x = 7, got %q", r.Answer)
	}
	if len(r.Steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(r.Steps))
	}
}

// The extracted x must satisfy a*x - b == c for any matching input.
func TestSolveLinear_SatisfiesEquation(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2x - 3 = 7", "x = 5"},
		{"3x - 6 = 9", "x = 5"},
		{"5x - 1 = 4", "x = 1"},
		{"4x - 2 = 8", "x = 2.5"},
		{"-2x - 4 = 6", "x = -5"},
	}
	for _, c := range cases {
		r := SolveLinear(c.in)
		if !r.OK() {
			t.Fatalf("%q: expected success: %s", c.in, r.ErrReason)
		}
		if r.Answer != c.want {
			t.Fatalf("%q: expected %q, got %q", c.in, c.want, r.Answer)
		}
	}
}

func TestSolveLinear_LeadingVerb(t *testing.T) {
	r := SolveLinear("solve 2x - 4 = 10")
	if !r.OK() || r.Answer != "x = 7" {
		t.Fatalf("leading verb should be tolerated, got %+v", r)
	}
}

func TestSolveLinear_Mismatch(t *testing.T) {
	cases := []string{
		"2x + 4 = 10",
		"x - 4 = 10",
		"2y - 4 = 10",
		"what is the capital of France",
		"",
	}
	for _, in := range cases {
		r := SolveLinear(in)
		if r.OK() {
			t.Fatalf("%q: expected mismatch", in)
		}
		if r.Answer != "" || len(r.Steps) != 0 {
			t.Fatalf("%q: mismatch result must not carry steps or answer", in)
		}
	}
}

func TestSolveIntegral_Match(t *testing.T) {
	r := SolveIntegral("integrate 2x + 3")
	if !r.OK() {
		t.Fatalf("expected success: %s", r.ErrReason)
	}
	if r.Answer != "x² + 3x + C" {
		t.Fatalf("unexpected answer %q", r.Answer)
	}
	if len(r.Steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(r.Steps))
	}
	if !strings.Contains(r.Steps[3], "C") {
		t.Fatalf("last step should mention the constant: %q", r.Steps[3])
	}
}

func TestSolveIntegral_Mismatch(t *testing.T) {
	for _, in := range []string{"integrate x^2", "integrate 2x", ""} {
		if r := SolveIntegral(in); r.OK() {
			t.Fatalf("%q: expected mismatch", in)
		}
	}
}
