package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"
	"github.com/cornndawwg/icatalyst-production-sub001/internal/registry"
)

// Project sizes scale the per-category price target and the bundle bounds
var projectSizes = map[string]struct {
	priceFactor float64
	itemDelta   int
}{
	"small":  {priceFactor: 0.85, itemDelta: -1},
	"medium": {priceFactor: 1.0, itemDelta: 0},
	"large":  {priceFactor: 1.25, itemDelta: 1},
}

// RecommendationRequest carries the caller's hints. Persona may be empty,
// in which case it is detected from Text first. A zero Budget means "not
// provided"; negative budgets are rejected.
type RecommendationRequest struct {
	Persona       string
	Text          string
	Budget        float64
	ProjectSize   string
	PreferredTier string
	Requirements  []string
}

// RecommendationService builds budget- and compatibility-aware good/better/
// best bundles for a resolved persona from an immutable catalog snapshot
type RecommendationService struct {
	registry  *registry.Registry
	catalog   domain.CatalogRepository
	detection *DetectionService
	pricing   *PricingOptimizer
}

// NewRecommendationService creates a recommendation service
func NewRecommendationService(
	reg *registry.Registry,
	catalog domain.CatalogRepository,
	detection *DetectionService,
) *RecommendationService {
	return &RecommendationService{
		registry:  reg,
		catalog:   catalog,
		detection: detection,
		pricing:   NewPricingOptimizer(),
	}
}

// Recommend validates the request, resolves the persona (detecting it from
// text when not given explicitly), builds one bundle per tier, and picks
// the recommended tier with its budget fit.
func (s *RecommendationService) Recommend(ctx context.Context, req RecommendationRequest) (*domain.RecommendationResult, error) {
	if req.Budget < 0 {
		return nil, fmt.Errorf("%w: budget must not be negative", domain.ErrInvalidRequest)
	}
	size := projectSizes["medium"]
	if req.ProjectSize != "" {
		var ok bool
		if size, ok = projectSizes[req.ProjectSize]; !ok {
			return nil, fmt.Errorf("%w: unknown project size %q", domain.ErrInvalidRequest, req.ProjectSize)
		}
	}
	var preferredTier domain.Tier
	if req.PreferredTier != "" {
		var err error
		if preferredTier, err = domain.ParseTier(req.PreferredTier); err != nil {
			return nil, err
		}
	}

	persona, confidence, err := s.resolvePersona(ctx, req)
	if err != nil {
		return nil, err
	}

	items, err := s.catalog.ListItems(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	byCategory := make(map[string][]domain.CatalogItem)
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	bundles := make(map[domain.Tier]domain.Bundle, len(domain.Tiers))
	for _, tier := range domain.Tiers {
		bundles[tier] = s.buildBundle(persona, tier, byCategory, req.Requirements, size.priceFactor, size.itemDelta)
	}

	recommended, withinWindow := chooseTier(persona, bundles, req.Budget, preferredTier)
	fit := s.pricing.ClassifyBudgetFit(persona, recommended, bundles[recommended].EstimatedTotal, req.Budget, withinWindow)

	return &domain.RecommendationResult{
		Persona:           persona.Name,
		PersonaConfidence: confidence,
		Bundles:           bundles,
		RecommendedTier:   recommended,
		BudgetFit:         fit,
	}, nil
}

// resolvePersona uses the explicit persona when provided, otherwise detects
// one from the request text
func (s *RecommendationService) resolvePersona(ctx context.Context, req RecommendationRequest) (domain.PersonaConfig, float64, error) {
	if req.Persona != "" {
		persona, ok := s.registry.ByName(req.Persona)
		if !ok {
			return domain.PersonaConfig{}, 0, fmt.Errorf("%w: %q", domain.ErrPersonaNotFound, req.Persona)
		}
		return persona, 1.0, nil
	}

	detection, err := s.detection.DetectPersona(ctx, req.Text, "")
	if err != nil {
		return domain.PersonaConfig{}, 0, err
	}
	persona, ok := s.registry.ByName(detection.Persona)
	if !ok {
		persona = s.registry.DefaultPersona()
	}
	return persona, detection.Confidence, nil
}

// buildBundle assembles one tier independently: one item per required
// category, compatibility conflicts resolved, padded from optional
// categories up to the persona's minimum and trimmed to its maximum.
func (s *RecommendationService) buildBundle(
	persona domain.PersonaConfig,
	tier domain.Tier,
	byCategory map[string][]domain.CatalogItem,
	requirements []string,
	priceFactor float64,
	itemDelta int,
) domain.Bundle {
	bundle := domain.Bundle{Tier: tier}

	required := mergeCategories(persona.RequiredCategories, requirements)
	minItems, maxItems := bundleBounds(persona, itemDelta)
	target := persona.BudgetMidpoint() * persona.PriceMultiplier * priceFactor / float64(maxInt(1, len(required)))

	var selected []domain.BundleItem
	for _, category := range required {
		item, ok := pickBest(byCategory[category], persona, tier, target)
		if !ok {
			bundle.MissingCategories = append(bundle.MissingCategories, category)
			bundle.Incomplete = true
			continue
		}
		selected = append(selected, domain.BundleItem{Item: item, UnitPrice: item.TierPrice(tier)})
	}

	selected, bundle.Warnings = resolveCompatibility(selected)

	// Pad with optional categories until the persona's minimum is met
	for _, category := range persona.OptionalCategories {
		if len(selected) >= minItems {
			break
		}
		if containsCategory(selected, category) {
			continue
		}
		if item, ok := pickBest(byCategory[category], persona, tier, target); ok {
			selected = append(selected, domain.BundleItem{Item: item, UnitPrice: item.TierPrice(tier)})
		}
	}

	// Trim overgrown bundles from the tail; padding was appended last, so
	// optional items go first
	for len(selected) > maxItems {
		selected = selected[:len(selected)-1]
	}

	// A conflict drop or trim may have emptied a required category
	for _, category := range required {
		if !containsCategory(selected, category) && !containsString(bundle.MissingCategories, category) {
			bundle.MissingCategories = append(bundle.MissingCategories, category)
			bundle.Incomplete = true
		}
	}

	bundle.Items = selected
	for _, it := range selected {
		bundle.EstimatedTotal += it.UnitPrice
	}
	return bundle
}

// bundleBounds applies the project-size delta to the persona's item bounds
func bundleBounds(persona domain.PersonaConfig, itemDelta int) (int, int) {
	minItems := persona.MinItems
	maxItems := persona.MaxItems + itemDelta
	if itemDelta > 0 {
		minItems += itemDelta
	}
	if maxItems < 1 {
		maxItems = 1
	}
	if minItems > maxItems {
		minItems = maxItems
	}
	return minItems, maxItems
}

// pickBest selects the catalog item for one category: a tier price must be
// set; preferred brands win first, then the price closest to the target.
// Candidate order is stable, so selection is deterministic.
func pickBest(candidates []domain.CatalogItem, persona domain.PersonaConfig, tier domain.Tier, target float64) (domain.CatalogItem, bool) {
	var best domain.CatalogItem
	bestPreferred := false
	bestDist := math.Inf(1)
	found := false

	for _, c := range candidates {
		price := c.TierPrice(tier)
		if price <= 0 {
			continue
		}
		preferred := containsString(persona.PreferredBrands, c.Brand)
		dist := math.Abs(price - target)

		better := false
		switch {
		case !found:
			better = true
		case preferred && !bestPreferred:
			better = true
		case preferred == bestPreferred && dist < bestDist:
			better = true
		}
		if better {
			best = c
			bestPreferred = preferred
			bestDist = dist
			found = true
		}
	}
	return best, found
}

// resolveCompatibility drops items whose ecosystem tags conflict with an
// earlier (higher-priority) item. Dropped items become warnings, never
// errors.
func resolveCompatibility(items []domain.BundleItem) ([]domain.BundleItem, []domain.CompatibilityWarning) {
	var kept []domain.BundleItem
	var warnings []domain.CompatibilityWarning

	for _, item := range items {
		conflicted := false
		for _, k := range kept {
			if ecosystemsConflict(k.Item, item.Item) {
				warnings = append(warnings, domain.CompatibilityWarning{
					DroppedItemID: item.Item.ID,
					KeptItemID:    k.Item.ID,
					Reason:        fmt.Sprintf("%s is not compatible with the %s ecosystem of %s", item.Item.ID, k.Item.Brand, k.Item.ID),
				})
				conflicted = true
				break
			}
		}
		if !conflicted {
			kept = append(kept, item)
		}
	}
	return kept, warnings
}

// ecosystemsConflict reports whether two items declare ecosystem tags with
// no overlap. Items without ecosystem tags are compatible with everything.
func ecosystemsConflict(a, b domain.CatalogItem) bool {
	ea, eb := ecosystems(a), ecosystems(b)
	if len(ea) == 0 || len(eb) == 0 {
		return false
	}
	for _, tag := range ea {
		if containsString(eb, tag) {
			return false
		}
	}
	return true
}

const ecosystemTagPrefix = "ecosystem:"

func ecosystems(item domain.CatalogItem) []string {
	var out []string
	for _, tag := range item.CompatibilityTags {
		if len(tag) > len(ecosystemTagPrefix) && tag[:len(ecosystemTagPrefix)] == ecosystemTagPrefix {
			out = append(out, tag)
		}
	}
	return out
}

// chooseTier picks the recommended tier: the preference when its total fits
// the budget window (or no budget was given), otherwise the nearest tier by
// total price inside the window, otherwise the nearest tier overall flagged
// as outside-range by the caller.
func chooseTier(persona domain.PersonaConfig, bundles map[domain.Tier]domain.Bundle, budget float64, preferredTier domain.Tier) (domain.Tier, bool) {
	pref := persona.TierPreference
	if preferredTier != "" {
		pref = preferredTier
	}
	if budget <= 0 {
		return pref, true
	}

	low, high := budget*budgetWindowLow, budget*budgetWindowHigh
	if t := bundles[pref].EstimatedTotal; t >= low && t <= high {
		return pref, true
	}

	var chosen domain.Tier
	bestDist := math.Inf(1)
	for _, tier := range domain.Tiers {
		total := bundles[tier].EstimatedTotal
		if total < low || total > high {
			continue
		}
		if d := math.Abs(total - budget); d < bestDist {
			bestDist = d
			chosen = tier
		}
	}
	if chosen != "" {
		return chosen, true
	}

	// No tier fits the window; return the closest by price for transparency
	bestDist = math.Inf(1)
	for _, tier := range domain.Tiers {
		if d := math.Abs(bundles[tier].EstimatedTotal - budget); d < bestDist {
			bestDist = d
			chosen = tier
		}
	}
	return chosen, false
}

func mergeCategories(required, extra []string) []string {
	out := make([]string, 0, len(required)+len(extra))
	seen := make(map[string]bool, len(required)+len(extra))
	for _, c := range append(append([]string{}, required...), extra...) {
		if c != "" && !seen[c] {
			out = append(out, c)
			seen[c] = true
		}
	}
	return out
}

func containsCategory(items []domain.BundleItem, category string) bool {
	for _, it := range items {
		if it.Item.Category == category {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
