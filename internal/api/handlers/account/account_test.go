package account

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	coreaccount "github.com/timmyloos/Meal-Planner-for-Students/internal/core/account"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := coreaccount.NewFileStore(filepath.Join(t.TempDir(), "users.json"))
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	h := NewHandler(coreaccount.NewService(store))

	r := gin.New()
	r.POST("/api/register", h.HandleRegister)
	r.POST("/api/login", h.HandleLogin)
	r.PUT("/api/user/:username/preferences", h.HandleUpdatePreferences)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/register", `{"username":"alice","password":"secret","email":"alice@example.com"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}

	var body struct {
		Message string            `json:"message"`
		User    map[string]string `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.User["username"] != "alice" {
		t.Errorf("user = %v", body.User)
	}
	if _, ok := body.User["password"]; ok {
		t.Error("response must not echo the password")
	}

	t.Run("duplicate username", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/register", `{"username":"alice","password":"other"}`)
		if w.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", w.Code)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/register", `{"username":"bob"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestRouter(t)
	do(r, http.MethodPost, "/api/register", `{"username":"alice","password":"secret"}`)

	t.Run("valid credentials", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/login", `{"username":"alice","password":"secret"}`)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200; body: %s", w.Code, w.Body.String())
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/login", `{"username":"alice","password":"nope"}`)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
		if !strings.Contains(w.Body.String(), "error") {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestUpdatePreferencesEndpoint(t *testing.T) {
	r := newTestRouter(t)
	do(r, http.MethodPost, "/api/register", `{"username":"alice","password":"secret"}`)

	t.Run("valid update", func(t *testing.T) {
		w := do(r, http.MethodPut, "/api/user/alice/preferences", `{"field":"goal","value":"gain"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
		}
		var body struct {
			User map[string]string `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.User["goal"] != "gain" {
			t.Errorf("goal = %q, want gain", body.User["goal"])
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		w := do(r, http.MethodPut, "/api/user/alice/preferences", `{"field":"username","value":"mallory"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		w := do(r, http.MethodPut, "/api/user/nobody/preferences", `{"field":"goal","value":"lose"}`)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}
