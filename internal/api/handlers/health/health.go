package health

import (
	"net/http"
	"runtime"
	"time"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/history"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// Handler serves health, readiness and liveness checks.
type Handler struct {
	config   *config.Config
	saved    *history.SavedRecipes
	searches *history.SearchHistory
	foodLog  *history.FoodLog
}

// NewHandler creates a health handler.
func NewHandler(cfg *config.Config, saved *history.SavedRecipes, searches *history.SearchHistory, foodLog *history.FoodLog) *Handler {
	return &Handler{
		config:   cfg,
		saved:    saved,
		searches: searches,
		foodLog:  foodLog,
	}
}

func maskKey(key string) string {
	if key == "" {
		return "Not configured"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:8] + "..."
}

// HandleHealth reports service status, store counts and runtime stats.
func (h *Handler) HandleHealth(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	c.JSON(http.StatusOK, gin.H{
		"status":                   "healthy",
		"timestamp":                time.Now().Format(time.RFC3339),
		"version":                  h.config.App.Version,
		"api_key_configured":       h.config.Spoonacular.APIKey != "",
		"api_key_preview":          maskKey(h.config.Spoonacular.APIKey),
		"saved_recipes_count":      h.saved.Len(),
		"ingredient_searches_count": h.searches.Len(),
		"food_preferences_count":   h.foodLog.Len(),
		"runtime": gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory": gin.H{
				"alloc":  m.Alloc,
				"sys":    m.Sys,
				"num_gc": m.NumGC,
			},
		},
	})
}

// HandleReady reports readiness.
func (h *Handler) HandleReady(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// HandleLive reports liveness.
func (h *Handler) HandleLive(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
