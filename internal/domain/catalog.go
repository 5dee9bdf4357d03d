package domain

// CatalogItem is a read-only view of one product in the catalog
type CatalogItem struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Brand             string   `json:"brand"`
	BasePrice         float64  `json:"basePrice"`
	GoodTierPrice     float64  `json:"goodTierPrice"`
	BetterTierPrice   float64  `json:"betterTierPrice"`
	BestTierPrice     float64  `json:"bestTierPrice"`
	CompatibilityTags []string `json:"compatibilityTags,omitempty"`
}

// TierPrice returns the resolved unit price for the given tier
func (i CatalogItem) TierPrice(t Tier) float64 {
	switch t {
	case TierGood:
		return i.GoodTierPrice
	case TierBetter:
		return i.BetterTierPrice
	case TierBest:
		return i.BestTierPrice
	}
	return i.BasePrice
}

// BundleItem is one catalog item placed in a bundle with its resolved price
type BundleItem struct {
	Item      CatalogItem `json:"item"`
	UnitPrice float64     `json:"unitPrice"`
}

// CompatibilityWarning records an item dropped from a bundle because its
// ecosystem conflicted with a higher-priority item
type CompatibilityWarning struct {
	DroppedItemID string `json:"droppedItemId"`
	KeptItemID    string `json:"keptItemId"`
	Reason        string `json:"reason"`
}

// Bundle is a concrete set of catalog items assembled for one tier.
// Incomplete bundles are still returned so callers can present partial
// recommendations.
type Bundle struct {
	Tier              Tier                   `json:"tier"`
	Items             []BundleItem           `json:"items"`
	EstimatedTotal    float64                `json:"estimatedTotal"`
	Incomplete        bool                   `json:"incomplete"`
	MissingCategories []string               `json:"missingCategories,omitempty"`
	Warnings          []CompatibilityWarning `json:"warnings,omitempty"`
}

// Categories returns the set of categories represented in the bundle
func (b Bundle) Categories() map[string]bool {
	set := make(map[string]bool, len(b.Items))
	for _, it := range b.Items {
		set[it.Item.Category] = true
	}
	return set
}

// BudgetFit classifies how well the recommended tier matches the budget
type BudgetFit string

const (
	BudgetFitOptimal      BudgetFit = "optimal"
	BudgetFitUpgrade      BudgetFit = "upgrade"
	BudgetFitAlternative  BudgetFit = "alternative"
	BudgetFitOutsideRange BudgetFit = "outside-range"
)

// RecommendationResult is the immutable snapshot returned to the caller
type RecommendationResult struct {
	Persona           string          `json:"persona"`
	PersonaConfidence float64         `json:"personaConfidence"`
	Bundles           map[Tier]Bundle `json:"bundles"`
	RecommendedTier   Tier            `json:"recommendedTier"`
	BudgetFit         BudgetFit       `json:"budgetFit"`
}
