package affect

import "strings"

// Scores maps category ID to its accumulated weighted score. Only
// categories that actually matched (score > 0) are present.
type Scores map[string]float64

const (
	phraseWeightFactor  = 1.2
	patternWeightFactor = 0.8
)

// Score runs every category against the text. Matching is deliberate
// substring containment on the lowercased input, not tokenized: Hebrew
// clitics glue prepositions onto words, and substring matching catches
// those forms without any normalization step.
func (r *Ruleset) Score(text string) Scores {
	lower := strings.ToLower(text)
	scores := make(Scores)
	for _, c := range r.categories {
		if s := scoreCategory(lower, text, c); s > 0 {
			scores[c.ID] = s
		}
	}
	return scores
}

func scoreCategory(lower, original string, c Category) float64 {
	score := 0.0
	for _, word := range c.Words {
		if strings.Contains(lower, strings.ToLower(word)) {
			score += c.Weight
		}
	}
	for _, phrase := range c.Phrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			score += c.Weight * phraseWeightFactor
		}
	}
	for _, re := range c.Patterns {
		score += float64(len(re.FindAllString(original, -1))) * c.Weight * patternWeightFactor
	}
	return score
}

// Detected lists the matched category IDs in configuration order.
func (r *Ruleset) Detected(scores Scores) []string {
	out := make([]string, 0, len(scores))
	for _, c := range r.categories {
		if _, ok := scores[c.ID]; ok {
			out = append(out, c.ID)
		}
	}
	return out
}

func (s Scores) Total() float64 {
	total := 0.0
	for _, v := range s {
		total += v
	}
	return total
}
