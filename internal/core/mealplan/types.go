package mealplan

import (
	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/spoonacular"
)

// PlanRequest carries the user inputs to one plan generation.
type PlanRequest struct {
	Height       float64 `json:"height"`
	Weight       float64 `json:"weight"`
	Goal         string  `json:"goal"`
	Restrictions string  `json:"restrictions"`
	Foods        string  `json:"foods"`
}

// EnhancedMeal is one slot of the generated plan, merged from a search
// candidate and its detail fetch. The JSON field names are part of the API
// contract and must not change.
type EnhancedMeal struct {
	Type             string                           `json:"type"`
	Title            string                           `json:"title"`
	Image            string                           `json:"image"`
	Calories         float64                          `json:"calories"`
	Protein          float64                          `json:"protein"`
	Carbs            float64                          `json:"carbs"`
	Fat              float64                          `json:"fat"`
	ReadyInMinutes   int                              `json:"readyInMinutes"`
	Servings         int                              `json:"servings"`
	Instructions     string                           `json:"instructions"`
	Ingredients      []spoonacular.ExtendedIngredient `json:"ingredients"`
	Equipment        []spoonacular.Equipment          `json:"equipment"`
	Summary          string                           `json:"summary"`
	Cuisines         []string                         `json:"cuisines"`
	Diets            []string                         `json:"diets"`
	SourceURL        string                           `json:"sourceUrl"`
	SourceName       string                           `json:"sourceName"`
	PricePerServing  float64                          `json:"pricePerServing"`
	HealthScore      float64                          `json:"healthScore"`
	SpoonacularScore float64                          `json:"spoonacularScore"`
	// Duplicate flags the degraded case where every candidate for a slot
	// was already used and the duplicate was accepted anyway.
	Duplicate bool `json:"duplicate,omitempty"`

	recipeID int
}

// RecipeID reports the upstream recipe id this meal was built from.
func (m *EnhancedMeal) RecipeID() int {
	return m.recipeID
}

// UserPreferences echoes the request inputs back in the plan envelope.
type UserPreferences struct {
	Height       float64 `json:"height"`
	Weight       float64 `json:"weight"`
	Restrictions string  `json:"restrictions"`
	Foods        string  `json:"foods"`
}

// Plan is the full generation response.
type Plan struct {
	DailyCalories   int             `json:"daily_calories"`
	Goal            string          `json:"goal"`
	Meals           []EnhancedMeal  `json:"meals"`
	UserPreferences UserPreferences `json:"user_preferences"`
}
