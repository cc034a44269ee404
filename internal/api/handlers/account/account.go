package account

import (
	"net/http"

	coreaccount "github.com/timmyloos/Meal-Planner-for-Students/internal/core/account"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves registration, login and profile updates.
type Handler struct {
	service *coreaccount.Service
}

// NewHandler creates an account handler.
func NewHandler(service *coreaccount.Service) *Handler {
	return &Handler{service: service}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// HandleRegister creates a new account.
func (h *Handler) HandleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		common.LogWarn("registration failed",
			zap.String("username", req.Username),
			zap.Error(err),
		)
		c.JSON(common.StatusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user.Public(),
	})
}

// HandleLogin authenticates a username/password pair.
func (h *Handler) HandleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, err := h.service.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		common.LogWarn("login failed",
			zap.String("username", req.Username),
			zap.Error(err),
		)
		c.JSON(common.StatusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user.Public(),
	})
}

type updateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// HandleUpdatePreferences updates a single profile field.
func (h *Handler) HandleUpdatePreferences(c *gin.Context) {
	username := c.Param("username")

	var req updateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Field == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Field and value are required"})
		return
	}

	user, err := h.service.UpdateField(c.Request.Context(), username, req.Field, req.Value)
	if err != nil {
		c.JSON(common.StatusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Preferences updated successfully",
		"user":    user.Public(),
	})
}
