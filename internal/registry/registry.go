package registry

import (
	"fmt"

	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"
)

// Registry is the immutable set of personas and their detection patterns.
// It is constructed once at process start and read concurrently by the
// classifier and recommendation engine; declaration order is preserved and
// used as the deterministic tie-break.
type Registry struct {
	personas       []domain.PersonaConfig
	patterns       map[string]domain.DetectionPattern
	byName         map[string]int
	defaultPersona string
}

// New builds a registry from explicit persona/pattern pairs. Every persona
// must have exactly one pattern set.
func New(personas []domain.PersonaConfig, patterns map[string]domain.DetectionPattern, defaultPersona string) (*Registry, error) {
	if len(personas) == 0 {
		return nil, fmt.Errorf("registry requires at least one persona")
	}

	byName := make(map[string]int, len(personas))
	for i, p := range personas {
		if p.Name == "" {
			return nil, fmt.Errorf("persona at position %d has no name", i)
		}
		if _, dup := byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate persona %q", p.Name)
		}
		if p.Type != domain.ProjectTypeResidential && p.Type != domain.ProjectTypeCommercial {
			return nil, fmt.Errorf("persona %q has invalid type %q", p.Name, p.Type)
		}
		if p.TierPreference.Rank() < 0 {
			return nil, fmt.Errorf("persona %q has invalid tier preference %q", p.Name, p.TierPreference)
		}
		if p.PriceMultiplier <= 0 {
			return nil, fmt.Errorf("persona %q has non-positive price multiplier", p.Name)
		}
		if p.BudgetMin < 0 || p.BudgetMax < p.BudgetMin {
			return nil, fmt.Errorf("persona %q has invalid budget range [%.2f, %.2f]", p.Name, p.BudgetMin, p.BudgetMax)
		}
		if p.ConfidenceBoost < 0 || p.ConfidenceBoost > 1 {
			return nil, fmt.Errorf("persona %q has confidence boost outside [0,1]", p.Name)
		}
		if _, ok := patterns[p.Name]; !ok {
			return nil, fmt.Errorf("persona %q has no detection pattern", p.Name)
		}
		byName[p.Name] = i
	}

	if defaultPersona == "" {
		defaultPersona = personas[0].Name
	}
	if _, ok := byName[defaultPersona]; !ok {
		return nil, fmt.Errorf("default persona %q is not registered", defaultPersona)
	}

	return &Registry{
		personas:       personas,
		patterns:       patterns,
		byName:         byName,
		defaultPersona: defaultPersona,
	}, nil
}

// NewDefault builds the registry from the built-in persona tables
func NewDefault() *Registry {
	reg, err := New(defaultPersonas(), defaultPatterns(), DefaultPersonaName)
	if err != nil {
		// Built-in tables are validated by tests; a failure here is a
		// programming error, not a runtime condition.
		panic(fmt.Sprintf("built-in persona registry invalid: %v", err))
	}
	return reg
}

// Personas returns all personas in declaration order. The returned slice is
// a copy; the registry itself is never mutated.
func (r *Registry) Personas() []domain.PersonaConfig {
	out := make([]domain.PersonaConfig, len(r.personas))
	copy(out, r.personas)
	return out
}

// PersonasByType returns personas filtered by project type, in declaration order
func (r *Registry) PersonasByType(t domain.ProjectType) []domain.PersonaConfig {
	var out []domain.PersonaConfig
	for _, p := range r.personas {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// ByName looks up a persona by its unique name
func (r *Registry) ByName(name string) (domain.PersonaConfig, bool) {
	i, ok := r.byName[name]
	if !ok {
		return domain.PersonaConfig{}, false
	}
	return r.personas[i], true
}

// Pattern returns the detection pattern for a persona
func (r *Registry) Pattern(name string) (domain.DetectionPattern, bool) {
	p, ok := r.patterns[name]
	return p, ok
}

// DeclarationIndex returns the position of a persona in declaration order,
// or -1 when unknown. Lower index wins score ties.
func (r *Registry) DeclarationIndex(name string) int {
	i, ok := r.byName[name]
	if !ok {
		return -1
	}
	return i
}

// DefaultPersona returns the fallback persona used when no signal meets the
// confidence floor
func (r *Registry) DefaultPersona() domain.PersonaConfig {
	return r.personas[r.byName[r.defaultPersona]]
}
