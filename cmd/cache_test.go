package cmd

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short strings untouched, got %q", got)
	}
	if got := truncate("exactly ten", 11); got != "exactly ten" {
		t.Fatalf("expected strings at the limit untouched, got %q", got)
	}

	got := truncate("a long english question about plants", 12)
	if got != "a long engl…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}

func TestTruncateDevanagari(t *testing.T) {
	q := "प्रकाश संश्लेषण क्या है और यह कैसे काम करता है?"

	got := truncate(q, 10)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	if n := len([]rune(got)); n != 10 {
		t.Fatalf("expected 10 runes, got %d in %q", n, got)
	}
}
