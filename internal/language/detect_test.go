package language

import "testing"

func TestDetect_English(t *testing.T) {
	d := Detect("What is the capital of France?")
	if d.Code != "en" {
		t.Fatalf("expected en, got %s", d.Code)
	}
	if d.Confidence != 1 {
		t.Fatalf("pure ASCII should score the full text, got %f", d.Confidence)
	}
}

func TestDetect_Devanagari(t *testing.T) {
	d := Detect("भारत की राजधानी क्या है")
	if d.Code != "hi" && d.Code != "mr" {
		t.Fatalf("Devanagari should resolve to Hindi or Marathi, got %s", d.Code)
	}
	if d.Confidence <= 0 {
		t.Fatalf("expected nonzero confidence, got %f", d.Confidence)
	}
}

func TestDetect_DevanagariTieBreak(t *testing.T) {
	// Hindi precedes Marathi in the table, so the shared script
	// resolves to Hindi.
	d := Detect("नमस्ते")
	if d.Code != "hi" {
		t.Fatalf("expected hi by table order, got %s", d.Code)
	}
}

func TestDetect_Tamil(t *testing.T) {
	d := Detect("வணக்கம்")
	if d.Code != "ta" {
		t.Fatalf("expected ta, got %s", d.Code)
	}
}

func TestDetect_Urdu(t *testing.T) {
	d := Detect("سوال")
	if d.Code != "ur" {
		t.Fatalf("expected ur, got %s", d.Code)
	}
}

func TestDetect_EmptyInput(t *testing.T) {
	d := Detect("   ")
	if d.Code != "en" || d.Confidence != 0 {
		t.Fatalf("empty input should default to English with the 0 sentinel, got %s %f", d.Code, d.Confidence)
	}
}

func TestDetect_NoScriptMatch(t *testing.T) {
	// Cyrillic is unsupported: text present, no script match.
	d := Detect("привет")
	if d.Code != "en" || d.Confidence != 0.5 {
		t.Fatalf("unmatched script should default to English with the 0.5 sentinel, got %s %f", d.Code, d.Confidence)
	}
}

func TestDetect_MixedLeansToScript(t *testing.T) {
	// Mostly Devanagari with a little ASCII: the script count wins
	// because the English whole-text match fails.
	d := Detect("solve का मतलब क्या है मुझे समझाओ")
	if d.Code != "hi" {
		t.Fatalf("expected hi for majority-Devanagari text, got %s", d.Code)
	}
	if d.Confidence <= 0 || d.Confidence > 1 {
		t.Fatalf("confidence out of range: %f", d.Confidence)
	}
}
