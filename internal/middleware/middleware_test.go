package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pearl/internal/auth"
	"pearl/internal/logging"
	"pearl/internal/session"

	"github.com/gin-gonic/gin"
)

func setupRouter(store session.Store, tokens *auth.Tokens, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Session(tokens, store, logging.Discard()))
	router.Use(extra...)
	router.GET("/test", func(c *gin.Context) {
		sess, ok := session.Current(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": sess.Username})
	})
	return router
}

func loginSession(t *testing.T, store session.Store, tokens *auth.Tokens, role string) string {
	t.Helper()
	sess := &session.Session{UserID: 1, Username: "asha", Role: role}
	if err := store.Create(context.Background(), sess); err != nil {
		t.Fatal(err)
	}
	token, err := tokens.Generate(auth.Claims{SessionID: sess.ID, UserID: 1, Username: "asha", Role: role})
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func serve(router http.Handler, setup func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/test", nil)
	if setup != nil {
		setup(req)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireSession_MissingAuthHeader(t *testing.T) {
	router := setupRouter(session.NewMemoryStore(), auth.NewTokens("secret"), RequireSession())

	w := serve(router, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRequireSession_InvalidAuthFormat(t *testing.T) {
	router := setupRouter(session.NewMemoryStore(), auth.NewTokens("secret"), RequireSession())

	w := serve(router, func(r *http.Request) { r.Header.Set("Authorization", "InvalidFormat") })
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRequireSession_InvalidToken(t *testing.T) {
	router := setupRouter(session.NewMemoryStore(), auth.NewTokens("secret"), RequireSession())

	w := serve(router, func(r *http.Request) { r.Header.Set("Authorization", "Bearer invalid_token_xyz") })
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRequireSession_ValidToken(t *testing.T) {
	store := session.NewMemoryStore()
	tokens := auth.NewTokens("secret")
	token := loginSession(t, store, tokens, auth.RoleUser)
	router := setupRouter(store, tokens, RequireSession())

	w := serve(router, func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) })
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRequireSession_Cookie(t *testing.T) {
	store := session.NewMemoryStore()
	tokens := auth.NewTokens("secret")
	token := loginSession(t, store, tokens, auth.RoleUser)
	router := setupRouter(store, tokens, RequireSession())

	w := serve(router, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	})
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRequireSession_LoggedOutToken(t *testing.T) {
	store := session.NewMemoryStore()
	tokens := auth.NewTokens("secret")
	token := loginSession(t, store, tokens, auth.RoleUser)
	claims, _ := tokens.Validate(token)
	store.Delete(context.Background(), claims.SessionID)

	router := setupRouter(store, tokens, RequireSession())
	w := serve(router, func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) })
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d for deleted session, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestSession_AnonymousPassesThrough(t *testing.T) {
	router := setupRouter(session.NewMemoryStore(), auth.NewTokens("secret"))

	w := serve(router, nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	store := session.NewMemoryStore()
	tokens := auth.NewTokens("secret")
	userToken := loginSession(t, store, tokens, auth.RoleUser)
	adminToken := loginSession(t, store, tokens, auth.RoleAdmin)
	router := setupRouter(store, tokens, RequireRole(auth.RoleAdmin))

	cases := []struct {
		name  string
		token string
		want  int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"user", userToken, http.StatusForbidden},
		{"admin", adminToken, http.StatusOK},
	}
	for _, tc := range cases {
		w := serve(router, func(r *http.Request) {
			if tc.token != "" {
				r.Header.Set("Authorization", "Bearer "+tc.token)
			}
		})
		if w.Code != tc.want {
			t.Errorf("%s: expected status %d, got %d", tc.name, tc.want, w.Code)
		}
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(logging.Discard()))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := serve(router, nil)
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatal("expected generated request id header")
	}

	w = serve(router, func(r *http.Request) { r.Header.Set(RequestIDHeader, "abc") })
	if got := w.Header().Get(RequestIDHeader); got != "abc" {
		t.Fatalf("expected propagated request id abc, got %q", got)
	}
}
