package usecase

import (
	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"
	"github.com/cornndawwg/icatalyst-production-sub001/internal/registry"
)

// Resolver defaults; both are configurable because the score-to-confidence
// calibration is a hand-tuned constant, not a derived quantity.
const (
	defaultCalibrationConstant = 10.0
	defaultExternalMargin      = 0.15
	defaultFallbackConfidence  = 0.5
)

// ResolverConfig holds the tunable constants of the resolution policy
type ResolverConfig struct {
	CalibrationConstant float64
	ExternalMargin      float64
	FallbackConfidence  float64
}

// PersonaResolver combines rule-based and optional external classification
// results into one final DetectionResult. The policy is deterministic:
// identical inputs always produce identical results.
type PersonaResolver struct {
	registry            *registry.Registry
	calibrationConstant float64
	externalMargin      float64
	fallbackConfidence  float64
}

// NewPersonaResolver creates a resolver with the given configuration
func NewPersonaResolver(reg *registry.Registry, config ResolverConfig) *PersonaResolver {
	calibration := config.CalibrationConstant
	if calibration <= 0 {
		calibration = defaultCalibrationConstant
	}
	margin := config.ExternalMargin
	if margin <= 0 {
		margin = defaultExternalMargin
	}
	fallback := config.FallbackConfidence
	if fallback <= 0 {
		fallback = defaultFallbackConfidence
	}

	return &PersonaResolver{
		registry:            reg,
		calibrationConstant: calibration,
		externalMargin:      margin,
		fallbackConfidence:  fallback,
	}
}

// Resolve applies the resolution policy:
//  1. Zero max score with no external result falls back to the default
//     persona at the fallback confidence.
//  2. The winning rule score maps to confidence via
//     min(1, score/calibrationConstant).
//  3. An external result is preferred when its confidence exceeds the
//     rule-based confidence by more than the margin; agreement on persona
//     upgrades the method to hybrid with the max of the two confidences.
func (r *PersonaResolver) Resolve(rule RuleScores, external *domain.DetectionResult) domain.DetectionResult {
	winner, maxScore := r.pickWinner(rule)

	ruleResult := domain.DetectionResult{
		Method: domain.MethodRuleBased,
		Scores: rule.Scores,
	}
	if maxScore <= 0 {
		def := r.registry.DefaultPersona()
		ruleResult.Persona = def.Name
		ruleResult.Confidence = r.fallbackConfidence
		// No clue matched (clues add a positive boost), so there is no
		// project-type evidence either.
		ruleResult.ProjectType = domain.ProjectTypeUnknown
	} else {
		ruleResult.Persona = winner.Name
		ruleResult.Confidence = min(1.0, maxScore/r.calibrationConstant)
		ruleResult.ProjectType = winner.Type
	}

	ext := r.validateExternal(external)
	if ext == nil {
		return ruleResult
	}

	if ext.Persona == ruleResult.Persona {
		merged := ruleResult
		merged.Method = domain.MethodHybrid
		merged.Confidence = max(ruleResult.Confidence, ext.Confidence)
		return merged
	}

	if ext.Confidence > ruleResult.Confidence+r.externalMargin {
		persona, _ := r.registry.ByName(ext.Persona)
		return domain.DetectionResult{
			Persona:     ext.Persona,
			Confidence:  ext.Confidence,
			Method:      domain.MethodExternal,
			ProjectType: persona.Type,
			Scores:      rule.Scores,
		}
	}

	return ruleResult
}

// pickWinner finds the highest-scoring persona, breaking ties by (1) a
// project-type context clue matching the persona's declared type, then (2)
// registry declaration order.
func (r *PersonaResolver) pickWinner(rule RuleScores) (domain.PersonaConfig, float64) {
	var winner domain.PersonaConfig
	maxScore := -1.0
	winnerClue := false

	for _, persona := range r.registry.Personas() {
		score := rule.Scores[persona.Name]
		clue := rule.ClueTypes[persona.Type]

		switch {
		case score > maxScore:
		case score == maxScore && clue && !winnerClue:
			// Equal score but this persona's type is backed by a clue
		default:
			continue
		}
		winner = persona
		maxScore = score
		winnerClue = clue
	}

	return winner, maxScore
}

// validateExternal drops external results the registry cannot account for;
// an unknown persona or an out-of-range confidence is treated as malformed.
func (r *PersonaResolver) validateExternal(ext *domain.DetectionResult) *domain.DetectionResult {
	if ext == nil || ext.Persona == "" {
		return nil
	}
	if ext.Confidence < 0 || ext.Confidence > 1 {
		return nil
	}
	if _, ok := r.registry.ByName(ext.Persona); !ok {
		return nil
	}
	return ext
}
