package affect

import (
	"math"
	"regexp"
	"testing"
)

func assertNear(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.0001 {
		t.Fatalf("value mismatch: got=%.6f want=%.6f", got, want)
	}
}

func TestScoreWordPhrasePatternWeights(t *testing.T) {
	rs := NewRuleset([]Category{
		{
			ID:       "happiness_indicators",
			Weight:   2.0,
			Words:    []string{"שמח"},
			Phrases:  []string{"שמח מאוד"},
			Patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)יש+`)},
		},
	})

	// word 2.0 + phrase 2.0*1.2 + two pattern matches 2*2.0*0.8
	scores := rs.Score("אני שמח מאוד, ישש, יששש")
	assertNear(t, scores["happiness_indicators"], 2.0+2.4+3.2)
}

func TestScoreSubstringMatchesCliticForms(t *testing.T) {
	rs := NewRuleset([]Category{
		{ID: "happiness_indicators", Weight: 1.0, Words: []string{"שמח"}},
	})

	// "וכששמחתי" carries the bare stem inside a clitic cluster; substring
	// containment must still catch it.
	scores := rs.Score("וכששמחתי מאוד")
	assertNear(t, scores["happiness_indicators"], 1.0)
}

func TestScoreOmitsUnmatchedCategories(t *testing.T) {
	rs := NewRuleset([]Category{
		{ID: "happiness_indicators", Weight: 1.0, Words: []string{"שמח"}},
		{ID: "sadness_indicators", Weight: 1.0, Words: []string{"עצוב"}},
	})

	scores := rs.Score("אני שמח")
	if _, ok := scores["sadness_indicators"]; ok {
		t.Fatalf("unmatched category must not appear in scores: %v", scores)
	}
	if len(scores) != 1 {
		t.Fatalf("scores=%v, want exactly one entry", scores)
	}
}

func TestScoreWordMatchCountsOncePerEntry(t *testing.T) {
	rs := NewRuleset([]Category{
		{ID: "happiness_indicators", Weight: 1.0, Words: []string{"שמח"}},
	})

	// containment check, not occurrence count: repeats do not stack
	scores := rs.Score("שמח שמח שמח")
	assertNear(t, scores["happiness_indicators"], 1.0)
}

func TestDetectedKeepsConfigurationOrder(t *testing.T) {
	rs := NewRuleset([]Category{
		{ID: "c_indicators", Weight: 1.0, Words: []string{"ג"}},
		{ID: "a_indicators", Weight: 1.0, Words: []string{"א"}},
		{ID: "b_indicators", Weight: 1.0, Words: []string{"ב"}},
	})

	scores := rs.Score("א ב ג")
	got := rs.Detected(scores)
	want := []string{"c_indicators", "a_indicators", "b_indicators"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("detected=%v, want %v", got, want)
		}
	}
}

func TestScoresTotal(t *testing.T) {
	s := Scores{"a": 1.5, "b": 2.5}
	assertNear(t, s.Total(), 4.0)
}
