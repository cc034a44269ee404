package history

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	corehistory "github.com/timmyloos/Meal-Planner-for-Students/internal/core/history"

	"github.com/gin-gonic/gin"
)

func newTestRouter() (*gin.Engine, *corehistory.FoodLog) {
	gin.SetMode(gin.TestMode)
	log := corehistory.NewFoodLog()
	h := NewHandler(log)
	r := gin.New()
	r.POST("/api/log-user-foods", h.HandleLogFoods)
	r.GET("/api/user-food-preferences", h.HandleListFoods)
	return r, log
}

func TestHandleLogFoods(t *testing.T) {
	r, log := newTestRouter()

	t.Run("missing foods", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/log-user-foods", strings.NewReader(`{"foods":[]}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if !strings.Contains(w.Body.String(), "No foods provided") {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("valid entry", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/log-user-foods",
			strings.NewReader(`{"user_id":"alice","foods":["ramen","tofu"]}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
		}

		var body struct {
			FoodsLogged  int `json:"foods_logged"`
			TotalEntries int `json:"total_entries"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.FoodsLogged != 2 || body.TotalEntries != 1 {
			t.Errorf("body = %+v", body)
		}
		if log.Len() != 1 {
			t.Errorf("log length = %d, want 1", log.Len())
		}
	})
}

func TestHandleListFoods(t *testing.T) {
	r, log := newTestRouter()
	log.Append("alice", []string{"tacos"}, "")
	log.Append("bob", []string{"pizza", "salad"}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user-food-preferences", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		FoodPreferences []corehistory.FoodLogEntry `json:"food_preferences"`
		TotalEntries    int                        `json:"total_entries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.TotalEntries != 2 || len(body.FoodPreferences) != 2 {
		t.Errorf("body = %+v", body)
	}
	if body.FoodPreferences[0].UserID != "alice" {
		t.Errorf("entries out of insertion order: %+v", body.FoodPreferences)
	}
}
