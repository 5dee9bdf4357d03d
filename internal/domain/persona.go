package domain

import "fmt"

// ProjectType classifies a project as residential or commercial
type ProjectType string

const (
	ProjectTypeResidential ProjectType = "residential"
	ProjectTypeCommercial  ProjectType = "commercial"
	ProjectTypeUnknown     ProjectType = "unknown"
)

// Tier identifies one of the three bundle levels
type Tier string

const (
	TierGood   Tier = "good"
	TierBetter Tier = "better"
	TierBest   Tier = "best"
)

// Tiers lists all tiers in ascending rank order
var Tiers = []Tier{TierGood, TierBetter, TierBest}

// Rank returns the ordinal position of the tier (good=0 < better=1 < best=2).
// Returns -1 for an unknown tier.
func (t Tier) Rank() int {
	switch t {
	case TierGood:
		return 0
	case TierBetter:
		return 1
	case TierBest:
		return 2
	}
	return -1
}

// ParseTier converts a string to a Tier, rejecting unknown values
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if t.Rank() < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
	return t, nil
}

// PersonaConfig describes one customer archetype: how to detect it and
// what it prefers to buy. Loaded once at startup and never mutated.
type PersonaConfig struct {
	Name               string      `json:"name"`
	Type               ProjectType `json:"type"`
	DisplayName        string      `json:"displayName"`
	KeyFeatures        []string    `json:"keyFeatures"`
	TierPreference     Tier        `json:"tierPreference"`
	PriceMultiplier    float64     `json:"priceMultiplier"`
	BudgetMin          float64     `json:"budgetMin"`
	BudgetMax          float64     `json:"budgetMax"`
	ConfidenceBoost    float64     `json:"confidenceBoost"`
	RequiredCategories []string    `json:"requiredCategories"`
	OptionalCategories []string    `json:"optionalCategories"`
	PreferredBrands    []string    `json:"preferredBrands"`
	MinItems           int         `json:"minItems"`
	MaxItems           int         `json:"maxItems"`
}

// BudgetMidpoint returns the center of the persona's budget range
func (p PersonaConfig) BudgetMidpoint() float64 {
	return (p.BudgetMin + p.BudgetMax) / 2
}

// DetectionPattern holds the weighted vocabulary used to detect one persona.
// Phrases carry higher weights than single keywords; context clues signal
// the project type (residential vs commercial) rather than the persona itself.
type DetectionPattern struct {
	Keywords     map[string]float64 `json:"keywords"`
	Phrases      map[string]float64 `json:"phrases"`
	ContextClues []string           `json:"contextClues"`
}

// DetectionMethod records which signal source produced a detection
type DetectionMethod string

const (
	MethodRuleBased DetectionMethod = "rule-based"
	MethodExternal  DetectionMethod = "external"
	MethodHybrid    DetectionMethod = "hybrid"
)

// DetectionResult is the immutable outcome of one classification call
type DetectionResult struct {
	Persona     string             `json:"persona"`
	Confidence  float64            `json:"confidence"`
	Method      DetectionMethod    `json:"method"`
	ProjectType ProjectType        `json:"projectType"`
	Scores      map[string]float64 `json:"scores,omitempty"`
}
