package usecase

import "github.com/cornndawwg/icatalyst-production-sub001/internal/domain"

// Budget window around a provided budget; a tier whose total lands inside
// [budget*0.8, budget*1.2] is considered to fit.
const (
	budgetWindowLow  = 0.8
	budgetWindowHigh = 1.2
)

// PricingOptimizer computes persona-weighted prices and classifies how well
// a selected tier fits the customer's budget
type PricingOptimizer struct{}

// NewPricingOptimizer creates a pricing optimizer
func NewPricingOptimizer() *PricingOptimizer {
	return &PricingOptimizer{}
}

// WeightedTotal applies the persona's price multiplier to a tier total.
// The weighted figure is what gets compared against the persona's own
// budget range.
func (o *PricingOptimizer) WeightedTotal(persona domain.PersonaConfig, total float64) float64 {
	return total * persona.PriceMultiplier
}

// FitsWindow reports whether a total lands inside the budget window
func (o *PricingOptimizer) FitsWindow(total, budget float64) bool {
	return total >= budget*budgetWindowLow && total <= budget*budgetWindowHigh
}

// ClassifyBudgetFit classifies the chosen tier:
//   - optimal: the persona's preferred tier was chosen and its weighted
//     total lies within the persona's budget range
//   - upgrade: a higher tier than preferred was chosen and still fits the
//     provided budget
//   - outside-range: no tier fit the provided budget; the closest tier is
//     returned anyway, flagged
//   - alternative: any other successful match
func (o *PricingOptimizer) ClassifyBudgetFit(
	persona domain.PersonaConfig,
	chosen domain.Tier,
	total float64,
	budget float64,
	withinWindow bool,
) domain.BudgetFit {
	if budget > 0 && !withinWindow {
		return domain.BudgetFitOutsideRange
	}

	weighted := o.WeightedTotal(persona, total)
	if chosen == persona.TierPreference && weighted >= persona.BudgetMin && weighted <= persona.BudgetMax {
		return domain.BudgetFitOptimal
	}

	if chosen.Rank() > persona.TierPreference.Rank() {
		if budget <= 0 || total <= budget*budgetWindowHigh {
			return domain.BudgetFitUpgrade
		}
	}

	return domain.BudgetFitAlternative
}
