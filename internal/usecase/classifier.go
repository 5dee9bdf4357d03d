package usecase

import (
	"strings"

	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"
	"github.com/cornndawwg/icatalyst-production-sub001/internal/registry"
)

// RuleScores is the raw output of the rule-based classifier. Scores are
// deliberately not normalized across personas: a persona with a richer
// pattern set legitimately scores higher when more of its vocabulary
// appears. ClueTypes records which project types had at least one context
// clue present, for tie-breaking and explainability.
type RuleScores struct {
	Scores    map[string]float64
	ClueTypes map[domain.ProjectType]bool
}

// RuleClassifier scores every registered persona against normalized text
// using weighted keyword, phrase, and context-clue matches. It is pure and
// safe for concurrent use.
type RuleClassifier struct {
	registry *registry.Registry
}

// NewRuleClassifier creates a classifier over an immutable registry snapshot
func NewRuleClassifier(reg *registry.Registry) *RuleClassifier {
	return &RuleClassifier{registry: reg}
}

// Classify computes a raw score for every persona. Empty input produces a
// zero score for each persona; the resolver handles the fallback.
func (c *RuleClassifier) Classify(text NormalizedText) RuleScores {
	result := RuleScores{
		Scores:    make(map[string]float64),
		ClueTypes: make(map[domain.ProjectType]bool),
	}

	for _, persona := range c.registry.Personas() {
		pattern, ok := c.registry.Pattern(persona.Name)
		if !ok {
			result.Scores[persona.Name] = 0
			continue
		}

		score := 0.0
		if !text.IsEmpty() {
			score += scoreKeywords(text, pattern.Keywords)
			score += scorePhrases(text, pattern.Phrases)

			if clueFound(text, pattern.ContextClues) {
				score += persona.ConfidenceBoost
				result.ClueTypes[persona.Type] = true
			}
		}
		result.Scores[persona.Name] = score
	}

	return result
}

// scoreKeywords sums the weight of each keyword present as a token or as a
// substring of the normalized text
func scoreKeywords(text NormalizedText, keywords map[string]float64) float64 {
	total := 0.0
	for kw, weight := range keywords {
		if text.TokenSet[kw] || strings.Contains(text.Normalized, kw) {
			total += weight
		}
	}
	return total
}

// scorePhrases sums phrase weight times occurrence count. Phrases are
// stored normalized, so a plain substring count over the normalized text
// is sufficient.
func scorePhrases(text NormalizedText, phrases map[string]float64) float64 {
	total := 0.0
	for phrase, weight := range phrases {
		if n := strings.Count(text.Normalized, phrase); n > 0 {
			total += weight * float64(n)
		}
	}
	return total
}

// clueFound reports whether at least one context clue appears in the text
func clueFound(text NormalizedText, clues []string) bool {
	for _, clue := range clues {
		if text.TokenSet[clue] || strings.Contains(text.Normalized, clue) {
			return true
		}
	}
	return false
}
