// Package assistant exposes the AI passthrough endpoints: chatbot replies,
// nutrition estimation and personalized recommendations. The AI provider is
// best-effort; every endpoint degrades to a canned response when it is
// unavailable, never a hard failure.
package assistant

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/ai"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/history"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	cannedChatReply      = "I'm having trouble reaching the nutrition assistant right now. Please try again in a moment."
	cannedRecommendation = "Try building meals around lean protein, whole grains and seasonal vegetables this week."
)

// Handler serves the AI-backed endpoints.
type Handler struct {
	generator ai.TextGenerator
	log       *history.FoodLog
}

// NewHandler creates an assistant handler.
func NewHandler(generator ai.TextGenerator, log *history.FoodLog) *Handler {
	return &Handler{
		generator: generator,
		log:       log,
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

// HandleChat answers a free-form nutrition question.
func (h *Handler) HandleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No message provided"})
		return
	}

	prompt := fmt.Sprintf(
		"You are a friendly meal-planning assistant for students. Answer concisely.\n\nQuestion: %s",
		req.Message,
	)

	reply, err := h.generator.Generate(c.Request.Context(), prompt)
	if err != nil {
		common.LogWarn("chat generation failed, serving canned reply", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"reply": cannedChatReply, "fallback": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

type estimateRequest struct {
	Food string `json:"food"`
}

type nutritionEstimate struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// HandleEstimateNutrition asks the AI for a rough macro breakdown of a
// described food.
func (h *Handler) HandleEstimateNutrition(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Food == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No food provided"})
		return
	}

	prompt := fmt.Sprintf(
		`Estimate the nutrition of one serving of "%s". Reply with only a JSON object like {"calories": 0, "protein": 0, "carbs": 0, "fat": 0} using grams for macros.`,
		req.Food,
	)

	reply, err := h.generator.Generate(c.Request.Context(), prompt)
	if err == nil {
		var estimate nutritionEstimate
		if parseErr := common.ParseJSON(common.ExtractJSONObject(reply), &estimate); parseErr == nil {
			c.JSON(http.StatusOK, gin.H{
				"food":      req.Food,
				"calories":  estimate.Calories,
				"protein":   estimate.Protein,
				"carbs":     estimate.Carbs,
				"fat":       estimate.Fat,
				"estimated": true,
			})
			return
		}
		err = fmt.Errorf("unparseable AI estimate: %s", reply)
	}

	common.LogWarn("nutrition estimation failed, serving zeroed estimate", zap.Error(err))
	c.JSON(http.StatusOK, gin.H{
		"food":      req.Food,
		"calories":  0,
		"protein":   0,
		"carbs":     0,
		"fat":       0,
		"estimated": false,
		"note":      "Nutrition estimate unavailable right now",
	})
}

// HandleRecommendations suggests meals seeded from the user's logged foods.
func (h *Handler) HandleRecommendations(c *gin.Context) {
	userID := c.Query("username")
	if userID == "" {
		userID = c.Query("user_id")
	}
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No username provided"})
		return
	}

	var foods []string
	for _, entry := range h.log.ByUser(userID) {
		foods = append(foods, entry.Foods...)
	}

	prompt := fmt.Sprintf(
		"Suggest three simple meals for a student. Foods they have enjoyed recently: %s. Keep each suggestion to one sentence.",
		strings.Join(foods, ", "),
	)
	if len(foods) == 0 {
		prompt = "Suggest three simple, budget-friendly meals for a student. Keep each suggestion to one sentence."
	}

	reply, err := h.generator.Generate(c.Request.Context(), prompt)
	if err != nil {
		common.LogWarn("recommendation generation failed, serving canned reply", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"recommendations": cannedRecommendation, "fallback": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": reply})
}
