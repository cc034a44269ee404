package history

import (
	"net/http"

	corehistory "github.com/timmyloos/Meal-Planner-for-Students/internal/core/history"

	"github.com/gin-gonic/gin"
)

// Handler serves the user food log.
type Handler struct {
	log *corehistory.FoodLog
}

// NewHandler creates a food log handler.
func NewHandler(log *corehistory.FoodLog) *Handler {
	return &Handler{log: log}
}

type logFoodsRequest struct {
	Foods     []string `json:"foods"`
	Timestamp string   `json:"timestamp"`
	UserID    string   `json:"user_id"`
}

// HandleLogFoods appends one food-preference entry.
func (h *Handler) HandleLogFoods(c *gin.Context) {
	var req logFoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Foods) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No foods provided"})
		return
	}

	entry := h.log.Append(req.UserID, req.Foods, req.Timestamp)

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Food preferences logged successfully",
		"foods_logged":  entry.FoodCount,
		"total_entries": h.log.Len(),
	})
}

// HandleListFoods lists every logged entry.
func (h *Handler) HandleListFoods(c *gin.Context) {
	entries := h.log.List()
	c.JSON(http.StatusOK, gin.H{
		"food_preferences": entries,
		"total_entries":    len(entries),
	})
}
