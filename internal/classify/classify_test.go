package classify

import "testing"

func TestClassify_Algebra(t *testing.T) {
	if got := Classify("solve 2x - 3 = 7"); got != Algebra {
		t.Fatalf("expected algebra, got %s", got)
	}
}

func TestClassify_Integrals(t *testing.T) {
	if got := Classify("integrate 2x+3"); got != Integrals {
		t.Fatalf("expected integrals, got %s", got)
	}
	if got := Classify("find ∫ x dx"); got != Integrals {
		t.Fatalf("expected integrals for the glyph, got %s", got)
	}
}

func TestClassify_NotMath(t *testing.T) {
	cases := []string{
		"what is the capital of France",
		"who wrote the Ramayana",
		"explain photosynthesis",
	}
	for _, q := range cases {
		if got := Classify(q); got != Unknown {
			t.Fatalf("%q: expected unknown, got %s", q, got)
		}
	}
}

func TestClassify_Calculus(t *testing.T) {
	if got := Classify("find the derivative of x^2"); got != Calculus {
		t.Fatalf("expected calculus, got %s", got)
	}
}

func TestClassify_LinearAlgebra(t *testing.T) {
	if got := Classify("find the determinant of the matrix"); got != LinearAlgebra {
		t.Fatalf("expected linear_algebra, got %s", got)
	}
}

func TestClassify_Trigonometry(t *testing.T) {
	if got := Classify("what is sin 30 degrees"); got != Trigonometry {
		t.Fatalf("expected trigonometry, got %s", got)
	}
	// "tan" inside a word must not trigger the trig rule.
	if got := Classify("why is water important for plants"); got != Unknown {
		t.Fatalf("substring false positive: got %s", got)
	}
}

func TestClassify_Geometry(t *testing.T) {
	if got := Classify("find the area of a triangle with base 4"); got != Geometry {
		t.Fatalf("expected geometry, got %s", got)
	}
}

func TestClassify_Statistics(t *testing.T) {
	if got := Classify("what is the probability of rolling a six"); got != Statistics {
		t.Fatalf("expected statistics, got %s", got)
	}
}

func TestClassify_GenericMath(t *testing.T) {
	// Numeric/operator plus variable reference flags math, but no
	// subcategory rule matches.
	if got := Classify("12 + 7 x"); got != Math {
		t.Fatalf("expected generic math, got %s", got)
	}
}

func TestClassify_PrecedenceIntegralOverAlgebra(t *testing.T) {
	// Contains both "solve" and "integrate"; the integral rule is
	// checked first.
	if got := Classify("solve and integrate x+1"); got != Integrals {
		t.Fatalf("expected integrals by precedence, got %s", got)
	}
}

func TestCategory_HasSolver(t *testing.T) {
	if !Algebra.HasSolver() || !Integrals.HasSolver() {
		t.Fatal("algebra and integrals have solvers")
	}
	if Geometry.HasSolver() || Unknown.HasSolver() {
		t.Fatal("no solver for geometry or unknown")
	}
}
