package history

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/pkg/common"
)

// RecipePayload is a saved recipe as the client sent it. Clients save whole
// upstream recipe objects, so the shape is kept open.
type RecipePayload map[string]interface{}

// RecipeID extracts the numeric id from a recipe payload.
func RecipeID(recipe RecipePayload) (int, bool) {
	switch v := recipe["id"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// SavedRecipes is the mutex-guarded saved-recipe list.
type SavedRecipes struct {
	mu      sync.Mutex
	recipes []RecipePayload
}

// NewSavedRecipes creates an empty saved-recipe store.
func NewSavedRecipes() *SavedRecipes {
	return &SavedRecipes{}
}

// Save stores a recipe, stamping saved_at. Saving an id that is already
// present reports alreadySaved without appending a second copy.
func (s *SavedRecipes) Save(recipe RecipePayload) (alreadySaved bool) {
	id, _ := RecipeID(recipe)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.recipes {
		if existingID, ok := RecipeID(existing); ok && existingID == id {
			return true
		}
	}

	recipe["saved_at"] = common.NowISO()
	s.recipes = append(s.recipes, recipe)
	return false
}

// List returns saved recipes sorted most-recently-saved first.
func (s *SavedRecipes) List() []RecipePayload {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RecipePayload, len(s.recipes))
	copy(out, s.recipes)
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i]["saved_at"].(string)
		b, _ := out[j]["saved_at"].(string)
		return a > b
	})
	return out
}

// Delete removes the recipe with the given id and reports whether it was
// present.
func (s *SavedRecipes) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, recipe := range s.recipes {
		if existingID, ok := RecipeID(recipe); ok && existingID == id {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			return true
		}
	}
	return false
}

// Len reports the number of saved recipes.
func (s *SavedRecipes) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recipes)
}
