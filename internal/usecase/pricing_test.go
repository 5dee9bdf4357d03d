package usecase

import (
	"testing"

	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"
)

func TestPricingOptimizer(t *testing.T) {
	optimizer := NewPricingOptimizer()
	persona := domain.PersonaConfig{
		Name:            "homeowner",
		TierPreference:  domain.TierBetter,
		PriceMultiplier: 1.5,
		BudgetMin:       8000,
		BudgetMax:       30000,
	}

	t.Run("weighted total applies the persona multiplier", func(t *testing.T) {
		if got := optimizer.WeightedTotal(persona, 10000); got != 15000 {
			t.Errorf("WeightedTotal = %v, want 15000", got)
		}
	})

	t.Run("window spans 80 to 120 percent of the budget", func(t *testing.T) {
		cases := []struct {
			total  float64
			budget float64
			want   bool
		}{
			{8000, 10000, true},  // exactly the lower edge
			{12000, 10000, true}, // exactly the upper edge
			{7999, 10000, false},
			{12001, 10000, false},
			{10000, 10000, true},
		}
		for _, tc := range cases {
			if got := optimizer.FitsWindow(tc.total, tc.budget); got != tc.want {
				t.Errorf("FitsWindow(%v, %v) = %v, want %v", tc.total, tc.budget, got, tc.want)
			}
		}
	})

	t.Run("classify budget fit", func(t *testing.T) {
		cases := []struct {
			name         string
			chosen       domain.Tier
			total        float64
			budget       float64
			withinWindow bool
			want         domain.BudgetFit
		}{
			{"preferred tier inside persona budget", domain.TierBetter, 10000, 14000, true, domain.BudgetFitOptimal},
			{"preferred tier but weighted total too high", domain.TierBetter, 25000, 0, true, domain.BudgetFitAlternative},
			{"higher tier fitting the budget", domain.TierBest, 18000, 20000, true, domain.BudgetFitUpgrade},
			{"higher tier with no budget given", domain.TierBest, 18000, 0, true, domain.BudgetFitUpgrade},
			{"lower tier than preferred", domain.TierGood, 6000, 6000, true, domain.BudgetFitAlternative},
			{"nothing fit the window", domain.TierBest, 30000, 5000, false, domain.BudgetFitOutsideRange},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got := optimizer.ClassifyBudgetFit(persona, tc.chosen, tc.total, tc.budget, tc.withinWindow)
				if got != tc.want {
					t.Errorf("ClassifyBudgetFit = %s, want %s", got, tc.want)
				}
			})
		}
	})
}
