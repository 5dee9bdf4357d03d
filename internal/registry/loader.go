package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"
)

// flexStringList unmarshals either a proper JSON array of strings or a
// legacy JSON-encoded string field (`"[\"a\",\"b\"]"` or `"a, b"`). The
// legacy forms exist in exported persona tables from the old CRM; they are
// normalized here once, at load time, so nothing downstream parses on read.
type flexStringList []string

func (f *flexStringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected string array or string, got %s", string(data))
	}

	s = strings.TrimSpace(s)
	if s == "" {
		*f = nil
		return nil
	}

	// String containing an encoded JSON array
	if strings.HasPrefix(s, "[") {
		if err := json.Unmarshal([]byte(s), &arr); err != nil {
			return fmt.Errorf("malformed encoded list %q: %w", s, err)
		}
		*f = arr
		return nil
	}

	// Plain comma-separated string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			arr = append(arr, part)
		}
	}
	*f = arr
	return nil
}

// personaFile is the on-disk registry format
type personaFile struct {
	DefaultPersona string          `json:"defaultPersona"`
	Personas       []personaEntry  `json:"personas"`
}

type personaEntry struct {
	Name               string             `json:"name"`
	Type               string             `json:"type"`
	DisplayName        string             `json:"displayName"`
	KeyFeatures        flexStringList     `json:"keyFeatures"`
	TierPreference     string             `json:"tierPreference"`
	PriceMultiplier    float64            `json:"priceMultiplier"`
	BudgetMin          float64            `json:"budgetMin"`
	BudgetMax          float64            `json:"budgetMax"`
	ConfidenceBoost    float64            `json:"confidenceBoost"`
	RequiredCategories flexStringList     `json:"requiredCategories"`
	OptionalCategories flexStringList     `json:"optionalCategories"`
	PreferredBrands    flexStringList     `json:"preferredBrands"`
	MinItems           int                `json:"minItems"`
	MaxItems           int                `json:"maxItems"`
	Pattern            patternEntry       `json:"pattern"`
}

type patternEntry struct {
	Keywords     map[string]float64 `json:"keywords"`
	Phrases      map[string]float64 `json:"phrases"`
	ContextClues flexStringList     `json:"contextClues"`
}

// LoadFile builds a registry from a JSON persona file, replacing the
// built-in tables entirely. Declaration order in the file is preserved.
func LoadFile(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading persona registry: %w", err)
	}

	var file personaFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing persona registry: %w", err)
	}

	personas := make([]domain.PersonaConfig, 0, len(file.Personas))
	patterns := make(map[string]domain.DetectionPattern, len(file.Personas))
	for _, e := range file.Personas {
		personas = append(personas, domain.PersonaConfig{
			Name:               e.Name,
			Type:               domain.ProjectType(e.Type),
			DisplayName:        e.DisplayName,
			KeyFeatures:        e.KeyFeatures,
			TierPreference:     domain.Tier(e.TierPreference),
			PriceMultiplier:    e.PriceMultiplier,
			BudgetMin:          e.BudgetMin,
			BudgetMax:          e.BudgetMax,
			ConfidenceBoost:    e.ConfidenceBoost,
			RequiredCategories: e.RequiredCategories,
			OptionalCategories: e.OptionalCategories,
			PreferredBrands:    e.PreferredBrands,
			MinItems:           e.MinItems,
			MaxItems:           e.MaxItems,
		})
		patterns[e.Name] = domain.DetectionPattern{
			Keywords:     normalizeWeights(e.Pattern.Keywords),
			Phrases:      normalizeWeights(e.Pattern.Phrases),
			ContextClues: lowerAll(e.Pattern.ContextClues),
		}
	}

	return New(personas, patterns, file.DefaultPersona)
}

// normalizeWeights lower-cases pattern terms so they match normalized input
func normalizeWeights(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for term, w := range in {
		out[strings.ToLower(strings.TrimSpace(term))] = w
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return out
}
