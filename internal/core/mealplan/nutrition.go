package mealplan

import (
	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/spoonacular"
)

// NutrientAmount finds the amount of a named nutrient in a nutrition
// summary. The name match is exact and case-sensitive; the first match wins
// and an absent nutrient reads as zero.
func NutrientAmount(nutrients []spoonacular.Nutrient, name string) float64 {
	for _, n := range nutrients {
		if n.Name == name {
			return n.Amount
		}
	}
	return 0
}
