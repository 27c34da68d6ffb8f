package affect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sync"
)

// Category is one compiled rule group. Words and phrases are matched by
// substring containment on lowercased text; patterns are matched with
// findall semantics. The zero weight is normalized to 1.0 at compile time.
type Category struct {
	ID       string
	Weight   float64
	Words    []string
	Phrases  []string
	Patterns []*regexp.Regexp
}

// Ruleset is the compiled, immutable category configuration. The category
// order is the top-level key order of the source file: selection ties break
// on it, so it is part of the contract, not an accident of parsing.
type Ruleset struct {
	categories []Category
	position   map[string]int
}

type rawCategory struct {
	Weight   *float64 `json:"weight"`
	Words    []string `json:"words"`
	Phrases  []string `json:"phrases"`
	Patterns []string `json:"patterns"`
}

// Candidate paths tried by LoadRuleset, relative to the working directory.
var defaultRulePaths = []string{
	"affect_rules.json",
	"config/affect_rules.json",
	"../config/affect_rules.json",
}

var (
	defaultOnce    sync.Once
	defaultRuleset *Ruleset
)

// DefaultRuleset loads the process-wide ruleset exactly once. Concurrent
// first callers block until the single load completes; afterwards the
// ruleset is read-only and safe to score against from any goroutine.
func DefaultRuleset() *Ruleset {
	defaultOnce.Do(func() {
		defaultRuleset = LoadRuleset("", slog.Default())
	})
	return defaultRuleset
}

// LoadRuleset builds a ruleset from the first readable candidate config
// file. An explicit path, when given, is tried first. Any failure falls
// back to the built-in minimal ruleset; loading never fails.
func LoadRuleset(path string, logger *slog.Logger) *Ruleset {
	if logger == nil {
		logger = slog.Default()
	}

	candidates := defaultRulePaths
	if path != "" {
		candidates = append([]string{path}, defaultRulePaths...)
	}

	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		rs, err := ParseRuleset(data, logger)
		if err != nil {
			logger.Warn("invalid affect rules file", "path", candidate, "error", err)
			continue
		}
		logger.Info("affect rules loaded", "path", candidate, "categories", len(rs.categories))
		return rs
	}

	logger.Warn("no affect rules file found, using built-in fallback")
	return fallbackRuleset()
}

// ParseRuleset compiles raw JSON category config. The decoder walks the
// top-level object token by token so the file's key order survives into
// the ruleset. Malformed entries are skipped, never fatal: a category
// whose value is not an object is dropped wholesale, and a pattern that
// does not compile is dropped while the rest of its category stays.
func ParseRuleset(data []byte, logger *slog.Logger) (*Ruleset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parse rules: top level must be an object")
	}

	var categories []Category
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse rules: %w", err)
		}
		id, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("parse rules: unexpected token %v", keyTok)
		}

		var rawValue json.RawMessage
		if err := dec.Decode(&rawValue); err != nil {
			return nil, fmt.Errorf("parse rules: category %s: %w", id, err)
		}

		var raw rawCategory
		if err := json.Unmarshal(rawValue, &raw); err != nil {
			logger.Warn("skip malformed category", "category", id, "error", err)
			continue
		}
		categories = append(categories, compileCategory(id, raw, logger))
	}

	return NewRuleset(categories), nil
}

// NewRuleset builds a ruleset from already-compiled categories in the
// given order. Intended for tests and callers that assemble rules in code.
func NewRuleset(categories []Category) *Ruleset {
	position := make(map[string]int, len(categories))
	for i, c := range categories {
		if _, dup := position[c.ID]; !dup {
			position[c.ID] = i
		}
	}
	return &Ruleset{categories: categories, position: position}
}

func compileCategory(id string, raw rawCategory, logger *slog.Logger) Category {
	weight := 1.0
	if raw.Weight != nil {
		weight = *raw.Weight
	}

	patterns := make([]*regexp.Regexp, 0, len(raw.Patterns))
	for _, expr := range raw.Patterns {
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			logger.Warn("skip invalid pattern", "category", id, "pattern", expr, "error", err)
			continue
		}
		patterns = append(patterns, re)
	}

	return Category{
		ID:       id,
		Weight:   weight,
		Words:    raw.Words,
		Phrases:  raw.Phrases,
		Patterns: patterns,
	}
}

// fallbackRuleset matches the minimal set the original service used when
// its config file was unreachable.
func fallbackRuleset() *Ruleset {
	return NewRuleset([]Category{
		{ID: "humor_indicators", Weight: 1.0, Words: []string{"חח", "מצחיק"}},
		{ID: "agreement_indicators", Weight: 1.0, Words: []string{"כן", "נכון"}},
		{ID: "disagreement_indicators", Weight: 1.0, Words: []string{"לא", "אבל"}},
	})
}

// CategoryIDs returns the category identifiers in configuration order.
func (r *Ruleset) CategoryIDs() []string {
	out := make([]string, len(r.categories))
	for i, c := range r.categories {
		out[i] = c.ID
	}
	return out
}

// Position reports the config-order rank of a category, used as the
// deterministic tie-break during emotion selection.
func (r *Ruleset) Position(id string) int {
	if pos, ok := r.position[id]; ok {
		return pos
	}
	return len(r.categories)
}

func (r *Ruleset) Len() int {
	return len(r.categories)
}
