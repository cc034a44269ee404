package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/history"

	"github.com/gin-gonic/gin"
)

type fakeGenerator struct {
	reply string
	err   error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return f.reply, f.err
}

func newTestRouter(gen *fakeGenerator, log *history.FoodLog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if log == nil {
		log = history.NewFoodLog()
	}
	h := NewHandler(gen, log)
	r := gin.New()
	r.POST("/api/chat", h.HandleChat)
	r.POST("/api/estimate-nutrition", h.HandleEstimateNutrition)
	r.GET("/api/recommendations", h.HandleRecommendations)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandleChat(t *testing.T) {
	t.Run("missing message", func(t *testing.T) {
		r := newTestRouter(&fakeGenerator{}, nil)
		w := postJSON(r, "/api/chat", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("provider reply", func(t *testing.T) {
		r := newTestRouter(&fakeGenerator{reply: "Eat more lentils."}, nil)
		w := postJSON(r, "/api/chat", `{"message":"cheap protein?"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["reply"] != "Eat more lentils." {
			t.Errorf("reply = %v", body["reply"])
		}
		if _, ok := body["fallback"]; ok {
			t.Error("successful reply must not carry the fallback flag")
		}
	})

	t.Run("provider failure degrades", func(t *testing.T) {
		r := newTestRouter(&fakeGenerator{err: errors.New("no provider")}, nil)
		w := postJSON(r, "/api/chat", `{"message":"hello"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("fallback must still be 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["fallback"] != true {
			t.Error("degraded reply should carry fallback=true")
		}
		if body["reply"] == "" {
			t.Error("degraded reply should still say something")
		}
	})
}

func TestHandleEstimateNutrition(t *testing.T) {
	t.Run("parses fenced JSON", func(t *testing.T) {
		gen := &fakeGenerator{reply: "```json\n{\"calories\": 320, \"protein\": 12, \"carbs\": 40, \"fat\": 9}\n```"}
		r := newTestRouter(gen, nil)
		w := postJSON(r, "/api/estimate-nutrition", `{"food":"burrito"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["estimated"] != true || body["calories"] != float64(320) {
			t.Errorf("unexpected estimate: %v", body)
		}
	})

	t.Run("unparseable reply degrades", func(t *testing.T) {
		r := newTestRouter(&fakeGenerator{reply: "about three hundred calories I think"}, nil)
		w := postJSON(r, "/api/estimate-nutrition", `{"food":"burrito"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["estimated"] != false {
			t.Error("unparseable reply should mark estimated=false")
		}
		if body["calories"] != float64(0) {
			t.Errorf("degraded estimate should zero the macros: %v", body)
		}
	})

	t.Run("missing food", func(t *testing.T) {
		r := newTestRouter(&fakeGenerator{}, nil)
		if w := postJSON(r, "/api/estimate-nutrition", `{}`); w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestHandleRecommendations(t *testing.T) {
	t.Run("missing username", func(t *testing.T) {
		r := newTestRouter(&fakeGenerator{}, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/recommendations", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("provider failure degrades", func(t *testing.T) {
		r := newTestRouter(&fakeGenerator{err: errors.New("down")}, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/recommendations?username=alice", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("fallback must still be 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["fallback"] != true {
			t.Error("degraded reply should carry fallback=true")
		}
	})

	t.Run("seeds prompt from food log", func(t *testing.T) {
		log := history.NewFoodLog()
		log.Append("alice", []string{"ramen", "tofu"}, "")
		r := newTestRouter(&fakeGenerator{reply: "1. Miso soup."}, log)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/recommendations?username=alice", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["recommendations"] != "1. Miso soup." {
			t.Errorf("recommendations = %v", body["recommendations"])
		}
	})
}
