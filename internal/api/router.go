package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	accountHandler "github.com/timmyloos/Meal-Planner-for-Students/internal/api/handlers/account"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/api/handlers/assistant"
	healthHandler "github.com/timmyloos/Meal-Planner-for-Students/internal/api/handlers/health"
	historyHandler "github.com/timmyloos/Meal-Planner-for-Students/internal/api/handlers/history"
	mealplanHandler "github.com/timmyloos/Meal-Planner-for-Students/internal/api/handlers/mealplan"
	recipesHandler "github.com/timmyloos/Meal-Planner-for-Students/internal/api/handlers/recipes"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/api/middleware"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/account"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/ai"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/history"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/mealplan"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/spoonacular"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/infrastructure/config"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// Whole-request ceiling; generation chains several upstream calls.
	timeoutDuration = 120 * time.Second
	// Request body limit (1MB); bodies here are small JSON documents.
	maxBodySize = 1 << 20
)

// SetupRouter wires stores, upstream clients, handlers and middleware into
// the gin engine.
func SetupRouter(cfg *config.Config) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	// Per-request timeout shared by every handler.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
			})
		}
	})

	// Stores. Everything shared between handlers is mutex-guarded.
	saved := history.NewSavedRecipes()
	searches := history.NewSearchHistory()
	foodLog := history.NewFoodLog()

	accountStore, err := buildAccountStore(cfg)
	if err != nil {
		common.LogError("Failed to initialize account store", zap.Error(err))
		return nil, fmt.Errorf("failed to initialize account store: %w", err)
	}

	// Upstream clients.
	recipeAPI := spoonacular.NewClient(cfg)
	textGenerator := ai.NewGeminiClient(cfg)

	generator := mealplan.NewGenerator(recipeAPI, cfg.Spoonacular.ResultCount)

	common.LogInfo("Services initialized",
		zap.String("store_backend", cfg.Store.Backend),
		zap.Bool("ai_enabled", cfg.AI.Enabled),
		zap.Int("result_count", cfg.Spoonacular.ResultCount),
		zap.Duration("upstream_timeout", cfg.Spoonacular.Timeout),
	)

	healthH := healthHandler.NewHandler(cfg, saved, searches, foodLog)
	mealplanH := mealplanHandler.NewHandler(generator)
	recipesH := recipesHandler.NewHandler(recipeAPI, saved, searches)
	historyH := historyHandler.NewHandler(foodLog)
	accountH := accountHandler.NewHandler(account.NewService(accountStore))
	assistantH := assistant.NewHandler(textGenerator, foodLog)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Meal Planner API!")
	})

	api := router.Group("/api")
	{
		api.GET("/health", healthH.HandleHealth)
		api.GET("/ready", healthH.HandleReady)
		api.GET("/live", healthH.HandleLive)

		api.POST("/generate-meal-plan", mealplanH.HandleGenerate)

		api.GET("/recipe-search", recipesH.HandleSearch)
		api.GET("/meal-plan-templates", recipesH.HandleTemplates)
		api.GET("/recipes/by-ingredients", recipesH.HandleByIngredients)
		api.GET("/ingredient-history", recipesH.HandleIngredientHistory)
		api.POST("/save-recipe", recipesH.HandleSaveRecipe)
		api.GET("/saved-recipes", recipesH.HandleSavedRecipes)
		api.DELETE("/delete-recipe/:id", recipesH.HandleDeleteRecipe)

		api.POST("/log-user-foods", historyH.HandleLogFoods)
		api.GET("/user-food-preferences", historyH.HandleListFoods)

		api.POST("/register", accountH.HandleRegister)
		api.POST("/login", accountH.HandleLogin)
		api.PUT("/user/:username/preferences", accountH.HandleUpdatePreferences)

		api.POST("/chat", assistantH.HandleChat)
		api.POST("/estimate-nutrition", assistantH.HandleEstimateNutrition)
		api.GET("/recommendations", assistantH.HandleRecommendations)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}

// buildAccountStore picks the configured account backend.
func buildAccountStore(cfg *config.Config) (account.Store, error) {
	switch cfg.Store.Backend {
	case "redis":
		return account.NewRedisStore(cfg.Store.RedisAddr)
	default:
		return account.NewFileStore(cfg.Store.UsersFile)
	}
}
