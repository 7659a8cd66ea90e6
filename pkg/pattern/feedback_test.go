package pattern

import "testing"

func TestFeedbackReferenceBehaviors(t *testing.T) {
	// These are the actual outputs of the two-pass algorithm described
	// in spec.md §4.1, worked by hand; spec.md's own reference table
	// for these same pairs does not match its own two-pass description
	// (e.g. GEESE vs CRANE must score the final E EXACT, since it sits
	// at answer position 4, giving AAAAE rather than the table's AAPAA).
	cases := []struct {
		guess, answer, want string
	}{
		{"SPEED", "ERASE", "PAPPA"},
		{"GEESE", "CRANE", "AAAAE"},
		{"ALLEY", "LLAMA", "PEPAA"},
		{"CRANE", "CRANE", "EEEEE"},
		{"SALET", "CRANE", "APAPA"},
		{"ABBEY", "BABES", "PPEEA"},
	}

	for _, c := range cases {
		guess := MustParseWord(c.guess)
		answer := MustParseWord(c.answer)
		got := Feedback(guess, answer)
		if got.String() != c.want {
			t.Errorf("Feedback(%s, %s) = %s, want %s", c.guess, c.answer, got, c.want)
		}
		if gotCode := FeedbackCode(guess, answer); gotCode != got.Code() {
			t.Errorf("FeedbackCode(%s, %s) = %d, want %d", c.guess, c.answer, gotCode, got.Code())
		}
	}
}

func TestFeedbackIsTotalAndFiveSymbols(t *testing.T) {
	words := []string{"CRANE", "SALET", "ABBEY", "GEESE", "LLAMA", "ERASE"}
	for _, g := range words {
		for _, a := range words {
			p := Feedback(MustParseWord(g), MustParseWord(a))
			for i, s := range p {
				if s != Absent && s != Present && s != Exact {
					t.Fatalf("Feedback(%s,%s)[%d] = %v not in {A,P,E}", g, a, i, s)
				}
			}
		}
	}
}

func TestFeedbackSelfIsAllExact(t *testing.T) {
	for _, w := range []string{"CRANE", "SALET", "ABBEY", "GEESE", "LLAMA"} {
		word := MustParseWord(w)
		p := Feedback(word, word)
		if !p.IsWin() {
			t.Fatalf("Feedback(%s,%s) = %s, want all EXACT", w, w, p)
		}
	}
}

func TestPatternCodeRoundTrip(t *testing.T) {
	for code := 0; code < NumCodes; code++ {
		p := DecodeCode(code)
		if got := p.Code(); got != code {
			t.Errorf("DecodeCode(%d).Code() = %d, want %d", code, got, code)
		}
	}
}

func TestParsePatternRoundTrip(t *testing.T) {
	for code := 0; code < NumCodes; code++ {
		p := DecodeCode(code)
		parsed, err := ParsePattern(p.String())
		if err != nil {
			t.Fatalf("ParsePattern(%s) error: %v", p, err)
		}
		if parsed != p {
			t.Errorf("ParsePattern(%s) = %s, want %s", p, parsed, p)
		}
	}
}

func TestParseWordRejectsInvalid(t *testing.T) {
	cases := []string{"", "ABCD", "ABCDEF", "AB3DE", "  ABCD  "}
	for _, c := range cases {
		if _, err := ParseWord(c); err == nil {
			t.Errorf("ParseWord(%q) expected error, got none", c)
		}
	}
	if w, err := ParseWord("  crane  "); err != nil || w.String() != "CRANE" {
		t.Errorf("ParseWord trims and uppercases, got %v, %v", w, err)
	}
}

func BenchmarkFeedbackCode(b *testing.B) {
	guess := MustParseWord("SALET")
	answer := MustParseWord("CRANE")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FeedbackCode(guess, answer)
	}
}
