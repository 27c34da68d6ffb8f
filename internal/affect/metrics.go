package affect

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Spacing is the categorical closeness hint consumed by the layout engine.
type Spacing string

const (
	SpacingTogether Spacing = "together"
	SpacingClose    Spacing = "close"
	SpacingFarAway  Spacing = "far_away"
)

const (
	maxBlur           = 12
	maxShine          = 10
	maxHumor          = 10
	minBlobiness      = 1
	maxBlobiness      = 10
	minVoiceIntensity = 1.0
	maxVoiceIntensity = 3.0
)

// blurLevel measures how unclear a segment sounds: the blur category score
// plus hesitation markers, filler repetition and stacked question marks.
func blurLevel(scores Scores, text string) int {
	lower := strings.ToLower(text)

	blur := scores["blur_indicators"]
	blur += 1.5 * float64(countOccurrences(lower, unclearSpeechMarkers))
	blur += 1.0 * float64(countOccurrences(lower, repetitionMarkers))
	blur += 0.8 * float64(strings.Count(text, "??"))
	blur += 1.0 * float64(strings.Count(text, "???"))

	return int(clamp(blur, 0, maxBlur))
}

// shineLevel measures emphasis: emphasis words, strong positive category
// scores, stacked exclamation marks and achievement words.
func shineLevel(scores Scores, text string) int {
	lower := strings.ToLower(text)

	shine := 2.0 * float64(countOccurrences(lower, importantWords))
	shine += 0.6 * (scores["happiness_indicators"] + scores["excitement_indicators"] + scores["pride_indicators"])
	shine += 0.8 * float64(strings.Count(text, "!!"))
	shine += 1.2 * float64(strings.Count(text, "!!!"))
	shine += 1.5 * float64(countOccurrences(lower, achievementWords))

	return int(clamp(shine, 0, maxShine))
}

// humorLevel stays at zero unless an explicit humor cue appears: a strong
// humor phrase or a laughter run. Only then do the humor and amusement
// category scores contribute, so generic positivity never reads as humor.
func humorLevel(scores Scores, text string) int {
	lower := strings.ToLower(text)

	strong := countOccurrences(lower, strongHumorPhrases)
	runs := len(laughterRun.FindAllString(lower, -1))
	if strong == 0 && runs == 0 {
		return 0
	}

	humor := 2.0*float64(strong) + 1.5*float64(runs)
	humor += 0.5 * scores["humor_indicators"]
	humor += 0.3 * scores["amusement_indicators"]

	return int(clamp(humor, 0, maxHumor))
}

// confidenceLevel normalizes the total matched score by text length. A
// segment with no matches at all gets the fixed low 0.3.
func confidenceLevel(scores Scores, text string) float64 {
	if len(scores) == 0 {
		return 0.3
	}
	wordCount := float64(len(strings.Fields(text)))
	normalized := scores.Total() / math.Max(1, wordCount*0.1)
	return clamp(normalized/5.0, 0.1, 1.0)
}

// blobinessLevel scores conversational depth on a 1-10 scale. Thematic
// phrase tiers and intense selected emotions raise it; any small-talk hit
// overrides the whole computation and forces the floor.
func blobinessLevel(text string, emotions []string) int {
	lower := strings.ToLower(text)

	penalty := 3.0 * float64(countOccurrences(lower, smallTalkPhrases))
	if penalty > 0 {
		return int(math.Max(minBlobiness, 2-penalty))
	}

	depth := 3.0 * float64(countOccurrences(lower, existentialPhrases))
	depth += 2.5 * float64(countOccurrences(lower, personalStrugglePhrases))
	depth += 2.0 * float64(countOccurrences(lower, vulnerabilityPhrases))
	depth += 1.5 * float64(countOccurrences(lower, lifeTransitionPhrases))
	depth += 1.2 * float64(countOccurrences(lower, relationshipPhrases))

	for _, emotion := range emotions {
		if intenseEmotions[emotion] {
			depth += 2.0
		}
	}

	// Linguistic complexity bonus.
	if strings.Contains(text, "...") {
		depth += 1.0
	}
	if longWordCount(text) > 2 {
		depth += 0.5
	}
	if strings.Count(text, "?") > 1 {
		depth += 0.5
	}

	var scaled float64
	switch {
	case depth >= 8:
		scaled = 7 + 0.3*depth
	case depth >= 5:
		scaled = 5 + 0.4*depth
	case depth >= 2:
		scaled = 2 + 0.5*depth
	default:
		scaled = 1 + 0.5*float64(len(emotions))
	}

	return int(clamp(math.Round(scaled), minBlobiness, maxBlobiness))
}

// proximityLevel maps net agreement to interpersonal closeness.
func proximityLevel(scores Scores, text string) Spacing {
	lower := strings.ToLower(text)

	agreement := scores["agreement_indicators"] + 2.0*float64(countOccurrences(lower, strongAgreementPhrases))
	disagreement := scores["disagreement_indicators"] + 2.0*float64(countOccurrences(lower, strongDisagreementPhrases))
	net := agreement - disagreement

	switch {
	case net >= 2.0:
		return SpacingTogether
	case net >= -0.5:
		return SpacingClose
	default:
		return SpacingFarAway
	}
}

// autoSpacingLevel is the turn-taking hint. Conversation openers always
// start far away; afterwards the first matching rule wins.
func autoSpacingLevel(scores Scores, text string, conversationStart bool) Spacing {
	if conversationStart {
		return SpacingFarAway
	}

	lower := strings.ToLower(text)
	net := scores["agreement_indicators"] + scores["approval_indicators"] - scores["disagreement_indicators"]
	mutual := countOccurrences(lower, mutualUnderstandingPhrases)
	accepting := countOccurrences(lower, acceptancePhrases)
	opening := countOccurrences(lower, openingPhrases)

	switch {
	case mutual >= 1 && net >= 1.5:
		return SpacingTogether
	case accepting >= 1 || net >= 0.5:
		return SpacingClose
	case opening >= 1 || net < -0.5 || scores["disagreement_indicators"] > 0:
		return SpacingFarAway
	default:
		return SpacingClose
	}
}

// voiceIntensityLevel engages only when the voice intensity category
// matched at all; otherwise the baseline 1.0.
func voiceIntensityLevel(scores Scores) float64 {
	score, ok := scores["voice_intensity_indicators"]
	if !ok {
		return minVoiceIntensity
	}
	return math.Min(maxVoiceIntensity, minVoiceIntensity+score)
}

func countOccurrences(lower string, literals []string) int {
	total := 0
	for _, lit := range literals {
		total += strings.Count(lower, strings.ToLower(lit))
	}
	return total
}

func longWordCount(text string) int {
	count := 0
	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) >= 7 {
			count++
		}
	}
	return count
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
