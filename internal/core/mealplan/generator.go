package mealplan

import (
	"context"
	"fmt"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/spoonacular"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/pkg/common"

	"go.uber.org/zap"
)

// RecipeProvider is the slice of the upstream API the generator needs.
type RecipeProvider interface {
	Search(ctx context.Context, params spoonacular.SearchParams) (*spoonacular.SearchResult, error)
	GetRecipe(ctx context.Context, id int) (*spoonacular.DetailedRecipe, error)
}

// Generator assembles a three-slot daily plan from the upstream provider.
type Generator struct {
	provider    RecipeProvider
	resultCount int
}

// NewGenerator creates a plan generator. resultCount caps each upstream
// search.
func NewGenerator(provider RecipeProvider, resultCount int) *Generator {
	if resultCount <= 0 {
		resultCount = 10
	}
	return &Generator{
		provider:    provider,
		resultCount: resultCount,
	}
}

// slotFilters are the search filters shared by every query of one request.
type slotFilters struct {
	diet               string
	intolerances       []string
	includeIngredients []string
}

// GeneratePlan runs one search+detail+extract+infer cycle per slot. Slot
// searches that come back ok-but-empty simply omit that slot; a transport
// failure aborts the whole call.
func (g *Generator) GeneratePlan(ctx context.Context, req PlanRequest) (*Plan, error) {
	dailyCalories := CalorieTarget(req.Height, req.Weight, req.Goal)
	diet, intolerances := ParseRestrictions(req.Restrictions)
	filters := slotFilters{
		diet:               diet,
		intolerances:       intolerances,
		includeIngredients: ParseLikedFoods(req.Foods),
	}

	common.LogInfo("generating meal plan",
		zap.Int("daily_calories", dailyCalories),
		zap.String("goal", req.Goal),
		zap.String("diet", diet),
		zap.Strings("intolerances", intolerances),
	)

	used := make(map[int]bool)
	meals := make([]EnhancedMeal, 0, len(Slots))
	for _, slot := range Slots {
		candidates, err := g.searchSlot(ctx, slot, filters)
		if err != nil {
			return nil, fmt.Errorf("failed to generate meal plan: %w", err)
		}
		if len(candidates) == 0 {
			common.LogWarn("no recipes found for slot, omitting",
				zap.String("slot", slot.Name),
			)
			continue
		}

		meal := g.buildMeal(ctx, slot, pickCandidate(candidates, used))
		meals = append(meals, *meal)
	}

	g.repairDuplicateTitles(ctx, meals, filters, used)

	goal := req.Goal
	if goal == "" {
		goal = "maintain"
	}

	return &Plan{
		DailyCalories: dailyCalories,
		Goal:          goal,
		Meals:         meals,
		UserPreferences: UserPreferences{
			Height:       req.Height,
			Weight:       req.Weight,
			Restrictions: req.Restrictions,
			Foods:        req.Foods,
		},
	}, nil
}

// searchSlot tries each of the slot's query terms in order until one returns
// results. When every term comes back empty, the primary term is retried
// once as a last resort and whatever it returns is accepted.
func (g *Generator) searchSlot(ctx context.Context, slot Slot, filters slotFilters) ([]spoonacular.CandidateRecipe, error) {
	for _, query := range slot.Queries {
		result, err := g.search(ctx, slot, query, filters)
		if err != nil {
			return nil, err
		}
		if len(result.Results) > 0 {
			return result.Results, nil
		}
		common.LogDebug("query returned no results, trying fallback",
			zap.String("slot", slot.Name),
			zap.String("query", query),
		)
	}

	result, err := g.search(ctx, slot, slot.Queries[0], filters)
	if err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (g *Generator) search(ctx context.Context, slot Slot, query string, filters slotFilters) (*spoonacular.SearchResult, error) {
	return g.provider.Search(ctx, spoonacular.SearchParams{
		Query:              query,
		Diet:               filters.diet,
		Intolerances:       filters.intolerances,
		IncludeIngredients: filters.includeIngredients,
		MaxReadyTime:       slot.MaxReadyTime,
		Number:             g.resultCount,
	})
}

// selection describes the candidate chosen for a slot.
type selection struct {
	candidate spoonacular.CandidateRecipe
	duplicate bool
}

// pickCandidate returns the first candidate whose id is unused. When every
// candidate is a duplicate the first one is accepted and flagged; the id is
// recorded either way.
func pickCandidate(candidates []spoonacular.CandidateRecipe, used map[int]bool) selection {
	for _, c := range candidates {
		if !used[c.ID] {
			used[c.ID] = true
			return selection{candidate: c}
		}
	}
	used[candidates[0].ID] = true
	return selection{candidate: candidates[0], duplicate: true}
}

// buildMeal merges one candidate with its detail fetch. A failed detail
// fetch degrades to an empty detail record rather than failing the plan.
func (g *Generator) buildMeal(ctx context.Context, slot Slot, sel selection) *EnhancedMeal {
	candidate := sel.candidate

	detail, err := g.provider.GetRecipe(ctx, candidate.ID)
	if err != nil {
		common.LogWarn("detail fetch failed, continuing with search data only",
			zap.String("slot", slot.Name),
			zap.Int("recipe_id", candidate.ID),
			zap.Error(err),
		)
		detail = &spoonacular.DetailedRecipe{}
	}

	equipment := detail.Equipment
	if len(equipment) == 0 && detail.Instructions != "" {
		equipment = InferEquipment(detail.Instructions)
		common.LogDebug("inferred equipment from instructions",
			zap.String("slot", slot.Name),
			zap.Int("count", len(equipment)),
		)
	}

	ingredients := detail.ExtendedIngredients
	if ingredients == nil {
		ingredients = []spoonacular.ExtendedIngredient{}
	}
	if equipment == nil {
		equipment = []spoonacular.Equipment{}
	}
	cuisines := candidate.Cuisines
	if cuisines == nil {
		cuisines = []string{}
	}
	diets := candidate.Diets
	if diets == nil {
		diets = []string{}
	}

	nutrients := candidate.Nutrition.Nutrients
	return &EnhancedMeal{
		Type:             slot.Name,
		Title:            candidate.Title,
		Image:            candidate.Image,
		Calories:         NutrientAmount(nutrients, "Calories"),
		Protein:          NutrientAmount(nutrients, "Protein"),
		Carbs:            NutrientAmount(nutrients, "Carbohydrates"),
		Fat:              NutrientAmount(nutrients, "Fat"),
		ReadyInMinutes:   candidate.ReadyInMinutes,
		Servings:         candidate.Servings,
		Instructions:     detail.Instructions,
		Ingredients:      ingredients,
		Equipment:        equipment,
		Summary:          detail.Summary,
		Cuisines:         cuisines,
		Diets:            diets,
		SourceURL:        detail.SourceURL,
		SourceName:       detail.SourceName,
		PricePerServing:  detail.PricePerServing,
		HealthScore:      detail.HealthScore,
		SpoonacularScore: detail.SpoonacularScore,
		Duplicate:        sel.duplicate,
		recipeID:         candidate.ID,
	}
}

// repairDuplicateTitles replaces slots whose title duplicates an earlier
// slot, trying each alternate query until one yields an unused recipe with a
// different title. A duplicate that survives every alternate is left in
// place; repair failures are never fatal.
func (g *Generator) repairDuplicateTitles(ctx context.Context, meals []EnhancedMeal, filters slotFilters, used map[int]bool) {
	seen := make(map[string]bool)
	for i := range meals {
		if !seen[meals[i].Title] {
			seen[meals[i].Title] = true
			continue
		}
		g.repairSlot(ctx, &meals[i], filters, used)
	}
}

func (g *Generator) repairSlot(ctx context.Context, meal *EnhancedMeal, filters slotFilters, used map[int]bool) {
	slot, ok := slotByName(meal.Type)
	if !ok {
		return
	}

	common.LogInfo("repairing duplicate meal title",
		zap.String("slot", slot.Name),
		zap.String("title", meal.Title),
	)

	for _, query := range slot.Alternates {
		result, err := g.search(ctx, slot, query, filters)
		if err != nil {
			common.LogWarn("alternate query failed during duplicate repair",
				zap.String("slot", slot.Name),
				zap.String("query", query),
				zap.Error(err),
			)
			continue
		}

		for _, c := range result.Results {
			if used[c.ID] || c.Title == meal.Title {
				continue
			}
			used[c.ID] = true
			*meal = *g.buildMeal(ctx, slot, selection{candidate: c})
			return
		}
	}

	common.LogWarn("duplicate meal left in place after exhausting alternates",
		zap.String("slot", slot.Name),
		zap.String("title", meal.Title),
	)
}

func slotByName(name string) (Slot, bool) {
	for _, s := range Slots {
		if s.Name == name {
			return s, true
		}
	}
	return Slot{}, false
}
