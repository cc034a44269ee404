package mealplan

import (
	"encoding/json"
	"net/http"
	"strconv"

	coremealplan "github.com/timmyloos/Meal-Planner-for-Students/internal/core/mealplan"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves meal plan generation.
type Handler struct {
	generator *coremealplan.Generator
}

// NewHandler creates a meal plan handler.
func NewHandler(generator *coremealplan.Generator) *Handler {
	return &Handler{generator: generator}
}

// planRequestBody tolerates clients sending height and weight as either
// numbers or strings; unparseable values read as zero, which falls back to
// the default calorie target.
type planRequestBody struct {
	Height       interface{} `json:"height"`
	Weight       interface{} `json:"weight"`
	Goal         string      `json:"goal"`
	Restrictions string      `json:"restrictions"`
	Foods        string      `json:"foods"`
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// HandleGenerate builds one three-slot daily plan.
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	common.LogInfo("received meal plan generation request",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var body planRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	req := coremealplan.PlanRequest{
		Height:       toFloat(body.Height),
		Weight:       toFloat(body.Weight),
		Goal:         body.Goal,
		Restrictions: body.Restrictions,
		Foods:        body.Foods,
	}
	if req.Goal == "" {
		req.Goal = "maintain"
	}

	plan, err := h.generator.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		common.LogError("meal plan generation failed",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(common.StatusFromError(err), gin.H{"error": "Failed to generate meal plan: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}
