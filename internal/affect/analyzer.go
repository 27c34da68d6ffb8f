package affect

import "strings"

const Engine = "go-hebrew-affect-v1"

const (
	methodPatterns = "hebrew_patterns"
	methodSilence  = "empty_text"
)

// Descriptor is the full affect output for one segment. It is assembled
// fresh per call and never mutated afterwards; the renderer, the persistence
// layer and any higher-fidelity analysis path all share this contract.
type Descriptor struct {
	Emotions         []string `json:"emotions"`
	Confidence       float64  `json:"confidence"`
	Blur             int      `json:"blur"`
	Shine            int      `json:"shine"`
	Humor            int      `json:"humor"`
	VoiceIntensity   float64  `json:"voice_intensity"`
	Blobiness        int      `json:"blobiness"`
	Proximity        Spacing  `json:"proximity"`
	AutoBlobSpacing  Spacing  `json:"auto_blob_spacing"`
	DetectedPatterns []string `json:"detected_patterns"`
	RawScores        Scores   `json:"raw_scores"`
	AnalysisMethod   string   `json:"analysis_method"`
}

// Primary returns the first emotion label, the one downstream consumers
// treat as dominant.
func (d Descriptor) Primary() string {
	return d.Emotions[0]
}

// Analyzer scores segments against an immutable ruleset. It holds no
// mutable state, so one instance serves any number of goroutines.
type Analyzer struct {
	rules *Ruleset
}

// NewAnalyzer builds an analyzer over the given ruleset; nil means the
// process-wide default.
func NewAnalyzer(rules *Ruleset) *Analyzer {
	if rules == nil {
		rules = DefaultRuleset()
	}
	return &Analyzer{rules: rules}
}

func (a *Analyzer) Rules() *Ruleset {
	return a.rules
}

// Analyze scores a mid-conversation segment.
func (a *Analyzer) Analyze(text string) Descriptor {
	return a.AnalyzeSegment(text, false)
}

// AnalyzeSegment runs the full pipeline: category scoring, emotion
// selection, then the derived metrics. Empty or whitespace-only input
// bypasses everything and yields the canonical silence descriptor.
func (a *Analyzer) AnalyzeSegment(text string, conversationStart bool) Descriptor {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return silenceDescriptor(conversationStart)
	}

	scores := a.rules.Score(trimmed)
	emotions := a.rules.selectEmotions(scores, trimmed)

	return Descriptor{
		Emotions:         emotions,
		Confidence:       confidenceLevel(scores, trimmed),
		Blur:             blurLevel(scores, trimmed),
		Shine:            shineLevel(scores, trimmed),
		Humor:            humorLevel(scores, trimmed),
		VoiceIntensity:   voiceIntensityLevel(scores),
		Blobiness:        blobinessLevel(trimmed, emotions),
		Proximity:        proximityLevel(scores, trimmed),
		AutoBlobSpacing:  autoSpacingLevel(scores, trimmed, conversationStart),
		DetectedPatterns: a.rules.Detected(scores),
		RawScores:        scores,
		AnalysisMethod:   methodPatterns,
	}
}

func silenceDescriptor(conversationStart bool) Descriptor {
	spacing := SpacingClose
	if conversationStart {
		spacing = SpacingFarAway
	}
	return Descriptor{
		Emotions:         []string{EmotionSilence},
		Confidence:       0.5,
		Blur:             0,
		Shine:            0,
		Humor:            0,
		VoiceIntensity:   minVoiceIntensity,
		Blobiness:        minBlobiness,
		Proximity:        SpacingClose,
		AutoBlobSpacing:  spacing,
		DetectedPatterns: []string{},
		RawScores:        Scores{},
		AnalysisMethod:   methodSilence,
	}
}
