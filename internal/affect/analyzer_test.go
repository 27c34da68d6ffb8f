package affect

import (
	"reflect"
	"testing"
)

func testAnalyzer() *Analyzer {
	return NewAnalyzer(NewRuleset([]Category{
		{ID: "happiness_indicators", Weight: 1.0, Words: []string{"שמח", "כיף", "נהדר"}},
		{ID: "sadness_indicators", Weight: 1.0, Words: []string{"עצוב", "כואב"}},
		{ID: "humor_indicators", Weight: 1.0, Words: []string{"חח", "מצחיק"}},
		{ID: "agreement_indicators", Weight: 1.0, Words: []string{"כן", "נכון"}},
		{ID: "disagreement_indicators", Weight: 1.0, Words: []string{"שטויות", "טועה"}},
		{ID: "blur_indicators", Weight: 1.0, Words: []string{"אממ"}},
		{ID: "voice_intensity_indicators", Weight: 1.0, Words: []string{"צועק"}},
	}))
}

func TestAnalyzeEmptyReturnsSilenceDescriptor(t *testing.T) {
	a := testAnalyzer()

	want := Descriptor{
		Emotions:         []string{EmotionSilence},
		Confidence:       0.5,
		Blur:             0,
		Shine:            0,
		Humor:            0,
		VoiceIntensity:   1.0,
		Blobiness:        1,
		Proximity:        SpacingClose,
		AutoBlobSpacing:  SpacingClose,
		DetectedPatterns: []string{},
		RawScores:        Scores{},
		AnalysisMethod:   "empty_text",
	}

	for _, text := range []string{"", "   ", "\n\t "} {
		got := a.AnalyzeSegment(text, false)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("text=%q descriptor=%+v, want %+v", text, got, want)
		}
	}
}

func TestAnalyzeSilenceAtConversationStart(t *testing.T) {
	a := testAnalyzer()
	got := a.AnalyzeSegment("", true)
	if got.AutoBlobSpacing != SpacingFarAway {
		t.Fatalf("spacing=%s, want far_away", got.AutoBlobSpacing)
	}
	if got.Emotions[0] != EmotionSilence {
		t.Fatalf("emotion=%s, want silence", got.Emotions[0])
	}
}

func TestAnalyzeGreetingScenario(t *testing.T) {
	a := testAnalyzer()
	got := a.Analyze("שלום! מה שלומך היום?")

	if len(got.Emotions) == 0 {
		t.Fatalf("emotions must not be empty")
	}
	if got.Confidence <= 0.1 {
		t.Fatalf("confidence=%.2f, want > 0.1", got.Confidence)
	}
	if got.Humor != 0 {
		t.Fatalf("humor=%d, want 0 for a plain greeting", got.Humor)
	}
}

func TestAnalyzeLaughterScenario(t *testing.T) {
	a := testAnalyzer()
	got := a.Analyze("חחח איזה מצחיק!")

	if got.Humor == 0 {
		t.Fatalf("humor must be positive for laughter plus a humor phrase")
	}
	if got.Primary() != "amusement" {
		t.Fatalf("primary=%s, want amusement", got.Primary())
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	a := testAnalyzer()
	text := "אני שמח אבל קצת עצוב, כן נכון חחח מצחיק!"
	first := a.AnalyzeSegment(text, false)
	second := a.AnalyzeSegment(text, false)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated analysis differs:\nfirst=%+v\nsecond=%+v", first, second)
	}
}

func TestAnalyzeRangesHoldAcrossInputs(t *testing.T) {
	a := testAnalyzer()
	inputs := []string{
		"שלום! מה שלומך היום?",
		"חחח איזה מצחיק!",
		"אממ... לא יודע... אולי???",
		"זה חשוב מאוד!!! הצלחתי!!!",
		"שטויות, אתה טועה לגמרי",
		"כן נכון, אני מסכים לגמרי",
		"משמעות החיים, קשה לי, אני מפחד",
		"צועק בקול רם מאוד",
		"?",
		"סתם משפט יומיומי רגיל לגמרי בלי כלום מיוחד",
	}

	for _, text := range inputs {
		got := a.AnalyzeSegment(text, false)
		if len(got.Emotions) < 1 || len(got.Emotions) > 3 {
			t.Fatalf("text=%q emotions=%v, want 1-3 labels", text, got.Emotions)
		}
		for _, label := range got.Emotions {
			if label == "neutral" {
				t.Fatalf("text=%q produced neutral", text)
			}
		}
		if got.Blur < 0 || got.Blur > 12 {
			t.Fatalf("text=%q blur=%d out of range", text, got.Blur)
		}
		if got.Shine < 0 || got.Shine > 10 {
			t.Fatalf("text=%q shine=%d out of range", text, got.Shine)
		}
		if got.Humor < 0 || got.Humor > 10 {
			t.Fatalf("text=%q humor=%d out of range", text, got.Humor)
		}
		if got.Blobiness < 1 || got.Blobiness > 10 {
			t.Fatalf("text=%q blobiness=%d out of range", text, got.Blobiness)
		}
		if got.Confidence < 0.1 || got.Confidence > 1.0 {
			t.Fatalf("text=%q confidence=%.3f out of range", text, got.Confidence)
		}
		if got.VoiceIntensity < 1.0 || got.VoiceIntensity > 3.0 {
			t.Fatalf("text=%q voice_intensity=%.3f out of range", text, got.VoiceIntensity)
		}
		if got.Proximity != SpacingTogether && got.Proximity != SpacingClose && got.Proximity != SpacingFarAway {
			t.Fatalf("text=%q proximity=%s invalid", text, got.Proximity)
		}
		if got.AutoBlobSpacing != SpacingTogether && got.AutoBlobSpacing != SpacingClose && got.AutoBlobSpacing != SpacingFarAway {
			t.Fatalf("text=%q auto_blob_spacing=%s invalid", text, got.AutoBlobSpacing)
		}
	}
}

func TestAnalyzeDetectedPatternsMatchRawScores(t *testing.T) {
	a := testAnalyzer()
	got := a.Analyze("אני שמח וקצת עצוב")

	if len(got.DetectedPatterns) != len(got.RawScores) {
		t.Fatalf("patterns=%v scores=%v, lengths differ", got.DetectedPatterns, got.RawScores)
	}
	for _, id := range got.DetectedPatterns {
		if got.RawScores[id] <= 0 {
			t.Fatalf("category %s listed without a positive score", id)
		}
	}
}

func TestAnalyzeVoiceIntensityEngages(t *testing.T) {
	a := testAnalyzer()

	got := a.Analyze("הוא צועק עליי")
	assertNear(t, got.VoiceIntensity, 2.0)

	got = a.Analyze("הוא מדבר רגיל")
	assertNear(t, got.VoiceIntensity, 1.0)
}
