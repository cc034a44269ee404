package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/history"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func TestHandleHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App:         config.AppConfig{Version: "1.0.0"},
		Spoonacular: config.SpoonacularConfig{APIKey: "abcdefghijkl"},
	}
	saved := history.NewSavedRecipes()
	saved.Save(history.RecipePayload{"id": float64(1)})
	searches := history.NewSearchHistory()
	foodLog := history.NewFoodLog()

	h := NewHandler(cfg, saved, searches, foodLog)
	r := gin.New()
	r.GET("/api/health", h.HandleHealth)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %v", body["status"])
	}
	if body["api_key_configured"] != true {
		t.Error("api_key_configured should be true")
	}
	if body["api_key_preview"] == cfg.Spoonacular.APIKey {
		t.Error("full api key must never appear in the health body")
	}
	if body["saved_recipes_count"] != float64(1) {
		t.Errorf("saved_recipes_count = %v", body["saved_recipes_count"])
	}
}

func TestMaskKey(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"", "Not configured"},
		{"short", "****"},
		{"abcdefghijkl", "abcdefgh..."},
	}
	for _, tc := range cases {
		if got := maskKey(tc.key); got != tc.want {
			t.Errorf("maskKey(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}
