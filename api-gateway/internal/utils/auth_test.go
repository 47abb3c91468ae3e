package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newSecuredRouter(authURL string, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api", AuthMiddleware(authURL))
	if len(roles) > 0 {
		group.Use(RequireRoles(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString("userId"), "role": c.GetString("role")})
	})
	return router
}

func fakeAuthService(t *testing.T, validToken, userID, role string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/validate" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(AuthResponse{UserID: userID, Role: role})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAuthMiddlewareResolvesIdentity(t *testing.T) {
	auth := fakeAuthService(t, "good-token", "17", "department")
	router := newSecuredRouter(auth.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["userId"] != "17" || body["role"] != "department" {
		t.Errorf("resolved identity = %v, want userId 17 role department", body)
	}
}

func TestAuthMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	auth := fakeAuthService(t, "good-token", "17", "department")
	router := newSecuredRouter(auth.URL)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong token", "Bearer stolen"},
		{"bare bearer", "Bearer "},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		if c.header != "" {
			req.Header.Set("Authorization", c.header)
		}
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", c.name, w.Code)
		}
	}
}

func TestRequireRolesEnforcesAllowList(t *testing.T) {
	auth := fakeAuthService(t, "tech-token", "9", "electrician")

	allowed := newSecuredRouter(auth.URL, "electrician", "mechanical")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer tech-token")
	allowed.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("electrician on technician route: status = %d, want 200", w.Code)
	}

	denied := newSecuredRouter(auth.URL, "admin")
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer tech-token")
	denied.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("electrician on admin route: status = %d, want 403", w.Code)
	}
}
