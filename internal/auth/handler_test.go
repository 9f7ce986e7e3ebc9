package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"pearl/internal/logging"
	"pearl/internal/session"

	"github.com/gin-gonic/gin"
)

type testEnv struct {
	router   *gin.Engine
	service  *Service
	sessions *session.MemoryStore
	tokens   *Tokens
}

func setupTestRouter() *testEnv {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service := NewService(NewInMemoryUserRepository())
	sessions := session.NewMemoryStore()
	tokens := NewTokens("test-secret")
	handler := NewHandler(service, sessions, tokens, logging.Discard(), false)

	r.POST("/api/register", handler.Register)
	r.POST("/api/login", handler.APILogin)
	r.POST("/login", handler.FormLogin)

	// minimal stand-in for the session middleware
	withSession := func(c *gin.Context) {
		if claims, err := tokens.Validate(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")); err == nil {
			if sess, err := sessions.Get(c.Request.Context(), claims.SessionID); err == nil {
				session.Attach(c, sess)
			}
		}
		c.Next()
	}
	r.POST("/logout", withSession, handler.Logout)
	r.GET("/api/me", withSession, handler.Me)

	return &testEnv{router: r, service: service, sessions: sessions, tokens: tokens}
}

func postJSON(r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterSuccess(t *testing.T) {
	env := setupTestRouter()

	w := postJSON(env.router, "/api/register", map[string]string{
		"username": "asha",
		"password": "Password@123",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"success"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestRegisterMissingFields(t *testing.T) {
	env := setupTestRouter()

	w := postJSON(env.router, "/api/register", map[string]string{"username": "asha"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := setupTestRouter()
	payload := map[string]string{"username": "asha", "password": "Password@123"}

	w1 := postJSON(env.router, "/api/register", payload)
	w2 := postJSON(env.router, "/api/register", payload)

	if w1.Code != http.StatusOK {
		t.Fatalf("expected first register 200, got %d", w1.Code)
	}
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w2.Code)
	}
	if !strings.Contains(w2.Body.String(), "Username already exists") {
		t.Fatalf("unexpected body: %s", w2.Body.String())
	}
}

func TestAPILoginReturnsRoleAndSession(t *testing.T) {
	env := setupTestRouter()
	env.service.CreateAdmin(context.Background(), "boss", "secret")

	w := postJSON(env.router, "/api/login", map[string]string{"username": "boss", "password": "secret"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Status string `json:"status"`
		Role   string `json:"role"`
		Token  string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "success" || resp.Role != RoleAdmin {
		t.Fatalf("unexpected response: %+v", resp)
	}

	claims, err := env.tokens.Validate(resp.Token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	sess, err := env.sessions.Get(context.Background(), claims.SessionID)
	if err != nil {
		t.Fatalf("session not created: %v", err)
	}
	if sess.Username != "boss" || !sess.IsAdmin() || !sess.Cart.IsEmpty() {
		t.Fatalf("unexpected session: %+v", sess)
	}

	var cookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == CookieName {
			cookie = ck
		}
	}
	if cookie == nil || cookie.Value != resp.Token || !cookie.HttpOnly {
		t.Fatalf("expected http-only session cookie, got %+v", cookie)
	}
}

func TestAPILoginWrongPassword(t *testing.T) {
	env := setupTestRouter()
	ctx := context.Background()
	env.service.Register(ctx, "asha", "right")
	env.service.CreateAdmin(ctx, "boss", "right")

	for _, username := range []string{"asha", "boss"} {
		w := postJSON(env.router, "/api/login", map[string]string{"username": username, "password": "wrong"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", username, w.Code)
		}
	}
}

func TestFormLogin(t *testing.T) {
	env := setupTestRouter()
	env.service.Register(context.Background(), "asha", "right")

	form := url.Values{"username": {"asha"}, "password": {"right"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"success":true`) || !strings.Contains(w.Body.String(), `"role":"user"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	w = postJSON(env.router, "/login", map[string]string{"username": "asha"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", w.Code)
	}

	w = postJSON(env.router, "/login", map[string]string{"username": "asha", "password": "nope"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}
}

func TestLogoutDeletesSession(t *testing.T) {
	env := setupTestRouter()
	env.service.Register(context.Background(), "asha", "right")

	w := postJSON(env.router, "/api/login", map[string]string{"username": "asha", "password": "right"})
	var resp struct {
		Token string `json:"token"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"username":"asha"`) {
		t.Fatalf("expected me to succeed, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	claims, _ := env.tokens.Validate(resp.Token)
	if _, err := env.sessions.Get(context.Background(), claims.SessionID); err != session.ErrNotFound {
		t.Fatalf("expected session to be deleted, got %v", err)
	}
}
