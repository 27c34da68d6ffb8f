package affect

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	emotionThreshold  = 0.5
	overrideThreshold = 1.0
	maxEmotions       = 3
)

// Fallback labels. The engine never reports the generic "neutral": when no
// category clears the threshold a punctuation/length heuristic picks one of
// these instead.
const (
	EmotionSilence    = "silence"
	EmotionCuriosity  = "curiosity"
	EmotionExcitement = "excitement"
	EmotionAffection  = "affection"
	EmotionHappiness  = "happiness"
)

// categoryEmotions maps category IDs to emotion labels, many-to-one.
// Categories absent here (agreement, blur, voice intensity and friends)
// influence derived metrics but never surface as labels directly.
var categoryEmotions = map[string]string{
	"humor_indicators":       "amusement",
	"happiness_indicators":   "happiness",
	"joy_indicators":         "joy",
	"sadness_indicators":     "sadness",
	"anger_indicators":       "anger",
	"fear_indicators":        "fear",
	"surprise_indicators":    "surprise",
	"curiosity_indicators":   "curiosity",
	"disgust_indicators":     "disgust",
	"frustration_indicators": "frustration",
	"excitement_indicators":  "excitement",
	"love_indicators":        "love",
	"anxiety_indicators":     "anxiety",
	"hope_indicators":        "hope",
	"pride_indicators":       "pride",
	"admiration_indicators":  "admiration",
	"amusement_indicators":   "amusement",
	"annoyance_indicators":   "annoyance",
	"approval_indicators":    "approval",
	"awe_indicators":         "awe",
	"caring_indicators":      "caring",
}

// EmotionVocabulary lists every label the engine can emit, sorted.
func EmotionVocabulary() []string {
	seen := map[string]bool{
		EmotionSilence:    true,
		EmotionCuriosity:  true,
		EmotionExcitement: true,
		EmotionAffection:  true,
		EmotionHappiness:  true,
		"approval":        true,
		"annoyance":       true,
	}
	for _, label := range categoryEmotions {
		seen[label] = true
	}
	out := make([]string, 0, len(seen))
	for label := range seen {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// selectEmotions turns category scores into 1-3 ordered labels. Categories
// sort by score descending; equal scores keep configuration order, which is
// the documented tie-break. Index 0 is the primary emotion downstream.
func (r *Ruleset) selectEmotions(scores Scores, text string) []string {
	type ranked struct {
		id    string
		score float64
	}
	order := make([]ranked, 0, len(scores))
	for id, score := range scores {
		order = append(order, ranked{id: id, score: score})
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].score != order[j].score {
			return order[i].score > order[j].score
		}
		return r.Position(order[i].id) < r.Position(order[j].id)
	})

	var emotions []string
	for _, entry := range order {
		if entry.score <= emotionThreshold {
			continue
		}
		label, ok := categoryEmotions[entry.id]
		if !ok {
			continue
		}
		if !containsLabel(emotions, label) {
			emotions = append(emotions, label)
		}
	}

	// Agreement and disagreement never map directly; past a stronger
	// threshold they append approval/annoyance without re-sorting.
	if scores["agreement_indicators"] > overrideThreshold && !containsLabel(emotions, "approval") {
		emotions = append(emotions, "approval")
	}
	if scores["disagreement_indicators"] > overrideThreshold && !containsLabel(emotions, "annoyance") {
		emotions = append(emotions, "annoyance")
	}

	if len(emotions) > maxEmotions {
		emotions = emotions[:maxEmotions]
	}
	if len(emotions) == 0 {
		emotions = []string{fallbackEmotion(text)}
	}
	return emotions
}

// fallbackEmotion is the only path that can emit a label unrelated to the
// category scores. Evaluated once, first match wins.
func fallbackEmotion(text string) string {
	switch {
	case strings.Contains(text, "?"):
		return EmotionCuriosity
	case strings.Contains(text, "!"):
		return EmotionExcitement
	case utf8.RuneCountInString(text) < 10:
		return EmotionAffection
	default:
		return EmotionHappiness
	}
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
