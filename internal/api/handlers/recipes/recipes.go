package recipes

import (
	"net/http"
	"strconv"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/history"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/spoonacular"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves recipe search, saved recipes and ingredient history.
type Handler struct {
	api      spoonacular.API
	saved    *history.SavedRecipes
	searches *history.SearchHistory
}

// NewHandler creates a recipes handler.
func NewHandler(api spoonacular.API, saved *history.SavedRecipes, searches *history.SearchHistory) *Handler {
	return &Handler{
		api:      api,
		saved:    saved,
		searches: searches,
	}
}

// HandleSearch proxies a filtered recipe search to the provider.
func (h *Handler) HandleSearch(c *gin.Context) {
	body, err := h.api.RawSearch(
		c.Request.Context(),
		c.Query("query"),
		c.Query("diet"),
		c.Query("cuisine"),
		c.Query("maxReadyTime"),
	)
	if err != nil {
		common.LogError("recipe search failed", zap.Error(err))
		c.JSON(common.StatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// HandleTemplates proxies the provider's weekly plan template.
func (h *Handler) HandleTemplates(c *gin.Context) {
	body, err := h.api.GenerateTemplate(c.Request.Context())
	if err != nil {
		common.LogError("template fetch failed", zap.Error(err))
		c.JSON(common.StatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// HandleByIngredients searches recipes by ingredient list, recording the
// search in history first.
func (h *Handler) HandleByIngredients(c *gin.Context) {
	ingredients := c.Query("ingredients")
	if ingredients == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No ingredients provided"})
		return
	}

	h.searches.Record(ingredients)

	stubs, err := h.api.FindByIngredients(c.Request.Context(), ingredients, 5)
	if err != nil {
		common.LogError("ingredient search failed",
			zap.Error(err),
			zap.String("ingredients", ingredients),
		)
		c.JSON(common.StatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stubs)
}

// HandleIngredientHistory lists past ingredient searches, most recent
// first.
func (h *Handler) HandleIngredientHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.searches.List())
}

// HandleSaveRecipe stores a recipe; a repeated id succeeds without
// appending a second copy.
func (h *Handler) HandleSaveRecipe(c *gin.Context) {
	var recipe history.RecipePayload
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe ID is required"})
		return
	}
	if _, ok := history.RecipeID(recipe); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe ID is required"})
		return
	}

	if alreadySaved := h.saved.Save(recipe); alreadySaved {
		c.JSON(http.StatusOK, gin.H{"message": "Recipe already saved"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Recipe saved successfully",
		"recipe":  recipe,
	})
}

// HandleSavedRecipes lists saved recipes, most recently saved first.
func (h *Handler) HandleSavedRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, h.saved.List())
}

// HandleDeleteRecipe removes one saved recipe by id.
func (h *Handler) HandleDeleteRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	if !h.saved.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
