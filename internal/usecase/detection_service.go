package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"
	"github.com/cornndawwg/icatalyst-production-sub001/internal/registry"
)

// DetectionServiceConfig holds configuration for the detection service
type DetectionServiceConfig struct {
	Resolver        ResolverConfig
	ExternalTimeout time.Duration
	CacheTTL        time.Duration
}

// DetectionService orchestrates persona detection: normalize, score with
// the rule-based classifier, consult the external classifier when one is
// configured, and resolve to a single DetectionResult. The external call
// runs concurrently with the rule-based path and never blocks it beyond
// its timeout.
type DetectionService struct {
	registry        *registry.Registry
	classifier      *RuleClassifier
	resolver        *PersonaResolver
	external        domain.ExternalClassifier
	cache           domain.DetectionCache
	externalTimeout time.Duration
	cacheTTL        time.Duration
}

// NewDetectionService creates a detection service. external and cache may
// be nil; detection then runs rule-based only.
func NewDetectionService(
	reg *registry.Registry,
	external domain.ExternalClassifier,
	cache domain.DetectionCache,
	config DetectionServiceConfig,
) *DetectionService {
	timeout := config.ExternalTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	cacheTTL := config.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 15 * time.Minute
	}

	return &DetectionService{
		registry:        reg,
		classifier:      NewRuleClassifier(reg),
		resolver:        NewPersonaResolver(reg, config.Resolver),
		external:        external,
		cache:           cache,
		externalTimeout: timeout,
		cacheTTL:        cacheTTL,
	}
}

// DetectPersona classifies free-form customer text into a persona with a
// calibrated confidence. Extra context (e.g. call notes) is appended to the
// text before normalization. Empty input is not an error: it resolves to
// the default persona at the fallback confidence.
func (s *DetectionService) DetectPersona(ctx context.Context, text, extraContext string) (domain.DetectionResult, error) {
	if extraContext != "" {
		text = strings.TrimSpace(text + " " + extraContext)
	}
	normalized := NormalizeText(text)

	// Launch the external call before rule scoring so both run concurrently
	var externalCh chan *domain.DetectionResult
	if s.external != nil {
		externalCh = make(chan *domain.DetectionResult, 1)
		go s.classifyExternal(ctx, normalized, externalCh)
	}

	rule := s.classifier.Classify(normalized)

	var external *domain.DetectionResult
	if externalCh != nil {
		external = <-externalCh
	}

	return s.resolver.Resolve(rule, external), nil
}

// classifyExternal consults the external classifier with a bounded timeout,
// going through the result cache when one is configured. Failures degrade
// to rule-based-only detection; they are logged, never propagated.
func (s *DetectionService) classifyExternal(ctx context.Context, text NormalizedText, out chan<- *domain.DetectionResult) {
	if text.IsEmpty() {
		out <- nil
		return
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, text.Normalized); err == nil && cached != nil {
			out <- cached
			return
		} else if err != nil && !errors.Is(err, domain.ErrCacheMiss) {
			log.Printf("[DETECT] cache read failed: %v", err)
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.externalTimeout)
	defer cancel()

	result, err := s.external.Classify(callCtx, text.Original)
	if err != nil {
		log.Printf("[DETECT] external classifier unavailable, using rule-based only: %v", err)
		out <- nil
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, text.Normalized, result, s.cacheTTL); err != nil {
			log.Printf("[DETECT] cache write failed: %v", err)
		}
	}

	out <- result
}

// GetPersonaConfig looks up a persona by name
func (s *DetectionService) GetPersonaConfig(name string) (domain.PersonaConfig, error) {
	persona, ok := s.registry.ByName(name)
	if !ok {
		return domain.PersonaConfig{}, domain.ErrPersonaNotFound
	}
	return persona, nil
}

// ListPersonas returns all personas, optionally filtered by project type.
// An empty filter lists everything; an unrecognized filter is rejected.
func (s *DetectionService) ListPersonas(projectType string) ([]domain.PersonaConfig, error) {
	switch domain.ProjectType(projectType) {
	case "":
		return s.registry.Personas(), nil
	case domain.ProjectTypeResidential, domain.ProjectTypeCommercial:
		return s.registry.PersonasByType(domain.ProjectType(projectType)), nil
	}
	return nil, domain.ErrInvalidRequest
}
