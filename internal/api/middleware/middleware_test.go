package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterExhaustsBudget(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow() {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow() {
		t.Error("request beyond the budget should be rejected")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(1, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", second.Code)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Error("rejected request should carry Retry-After")
	}
}

func TestDeduplicationRejectsRepeatedPost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{DedupWindow: time.Minute}
	r := gin.New()
	r.Use(Deduplication(cfg))
	r.POST("/submit", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/submit", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body))
		r.ServeHTTP(w, req)
		return w
	}

	if w := post(`{"height":170}`); w.Code != http.StatusOK {
		t.Fatalf("first POST status = %d, want 200", w.Code)
	}
	if w := post(`{"height":170}`); w.Code != http.StatusTooManyRequests {
		t.Fatalf("repeated POST status = %d, want 429", w.Code)
	}
	// A different body is a different request.
	if w := post(`{"height":171}`); w.Code != http.StatusOK {
		t.Errorf("distinct POST status = %d, want 200", w.Code)
	}

	// GETs are never deduplicated.
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/submit", nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %d status = %d, want 200", i+1, w.Code)
		}
	}
}

func TestBodySizeLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(BodySizeLimit(16))
	r.POST("/submit", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	small := httptest.NewRecorder()
	r.ServeHTTP(small, httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader("tiny")))
	if small.Code != http.StatusOK {
		t.Errorf("small body status = %d, want 200", small.Code)
	}

	big := httptest.NewRecorder()
	r.ServeHTTP(big, httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(strings.Repeat("x", 64))))
	if big.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("oversized body status = %d, want 413", big.Code)
	}
}
