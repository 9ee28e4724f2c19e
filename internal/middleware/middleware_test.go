package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/connecthub/connecthub-go/internal/config"
	"github.com/connecthub/connecthub-go/internal/domain/entity"
	"github.com/connecthub/connecthub-go/internal/security"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestAuthMiddleware() (*AuthMiddleware, *security.JWTProvider, security.TokenDenylist) {
	jwtProvider := security.NewJWTProvider(&config.JWTConfig{
		Secret:        "test-secret-key-for-middleware",
		TokenDuration: time.Hour,
		Issuer:        "connecthub-test",
	})
	securityService := security.NewSecurityService(jwtProvider)
	denylist := security.NewMemoryTokenDenylist()
	return NewAuthMiddleware(jwtProvider, securityService, denylist), jwtProvider, denylist
}

func testProfile() *entity.Profile {
	return &entity.Profile{
		ID:    "507f1f77bcf86cd799439011",
		Email: "ada@example.com",
		Name:  "Ada Lovelace",
		Role:  entity.RoleUser,
	}
}

func performRequest(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	mw, _, _ := newTestAuthMiddleware()

	router := gin.New()
	router.GET("/protected", mw.Authenticate(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := performRequest(router, "GET", "/protected", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthenticate_InvalidFormat(t *testing.T) {
	mw, _, _ := newTestAuthMiddleware()

	router := gin.New()
	router.GET("/protected", mw.Authenticate(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, header := range []string{"Basic abc123", "Bearer", "just-a-token"} {
		w := performRequest(router, "GET", "/protected", map[string]string{"Authorization": header})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	mw, jwtProvider, _ := newTestAuthMiddleware()

	token, err := jwtProvider.GenerateToken(testProfile())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var gotProfileID string
	router := gin.New()
	router.GET("/protected", mw.Authenticate(), func(c *gin.Context) {
		gotProfileID = mw.securityService.GetCurrentProfileID(c)
		c.Status(http.StatusOK)
	})

	w := performRequest(router, "GET", "/protected", map[string]string{"Authorization": "Bearer " + token})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotProfileID != "507f1f77bcf86cd799439011" {
		t.Errorf("profile id in context = %q", gotProfileID)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	mw, _, _ := newTestAuthMiddleware()

	router := gin.New()
	router.GET("/protected", mw.Authenticate(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := performRequest(router, "GET", "/protected", map[string]string{"Authorization": "Bearer not.a.token"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	mw, jwtProvider, denylist := newTestAuthMiddleware()

	token, err := jwtProvider.GenerateToken(testProfile())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := jwtProvider.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if err := denylist.Revoke(context.Background(), claims.ID, time.Hour); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	router := gin.New()
	router.GET("/protected", mw.Authenticate(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := performRequest(router, "GET", "/protected", map[string]string{"Authorization": "Bearer " + token})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for revoked token", w.Code)
	}
}

func TestOptionalAuth(t *testing.T) {
	mw, jwtProvider, _ := newTestAuthMiddleware()

	var authenticated bool
	router := gin.New()
	router.GET("/open", mw.OptionalAuth(), func(c *gin.Context) {
		authenticated = mw.securityService.IsAuthenticated(c)
		c.Status(http.StatusOK)
	})

	// Without a token the route still succeeds.
	w := performRequest(router, "GET", "/open", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if authenticated {
		t.Error("expected unauthenticated without token")
	}

	// With a valid token the claims are populated.
	token, err := jwtProvider.GenerateToken(testProfile())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w = performRequest(router, "GET", "/open", map[string]string{"Authorization": "Bearer " + token})
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !authenticated {
		t.Error("expected authenticated with valid token")
	}

	// A malformed token is ignored rather than rejected.
	w = performRequest(router, "GET", "/open", map[string]string{"Authorization": "Bearer garbage"})
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if authenticated {
		t.Error("expected unauthenticated with malformed token")
	}
}

func TestRequireAdmin(t *testing.T) {
	mw, jwtProvider, _ := newTestAuthMiddleware()

	router := gin.New()
	router.GET("/admin", mw.Authenticate(), mw.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	userToken, _ := jwtProvider.GenerateToken(testProfile())
	w := performRequest(router, "GET", "/admin", map[string]string{"Authorization": "Bearer " + userToken})
	if w.Code != http.StatusForbidden {
		t.Errorf("user: status = %d, want 403", w.Code)
	}

	admin := testProfile()
	admin.Role = entity.RoleAdmin
	adminToken, _ := jwtProvider.GenerateToken(admin)
	w = performRequest(router, "GET", "/admin", map[string]string{"Authorization": "Bearer " + adminToken})
	if w.Code != http.StatusOK {
		t.Errorf("admin: status = %d, want 200", w.Code)
	}
}

func TestRequireSelfOrAdmin(t *testing.T) {
	mw, jwtProvider, _ := newTestAuthMiddleware()

	router := gin.New()
	router.PUT("/profiles/:id", mw.Authenticate(), mw.RequireSelfOrAdmin("id"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	ownToken, _ := jwtProvider.GenerateToken(testProfile())

	// Owner may touch their own profile.
	w := performRequest(router, "PUT", "/profiles/507f1f77bcf86cd799439011", map[string]string{"Authorization": "Bearer " + ownToken})
	if w.Code != http.StatusOK {
		t.Errorf("self: status = %d, want 200", w.Code)
	}

	// Another profile is forbidden.
	w = performRequest(router, "PUT", "/profiles/507f1f77bcf86cd799439099", map[string]string{"Authorization": "Bearer " + ownToken})
	if w.Code != http.StatusForbidden {
		t.Errorf("other: status = %d, want 403", w.Code)
	}

	// Admins may touch anyone.
	admin := testProfile()
	admin.ID = "507f1f77bcf86cd799439055"
	admin.Role = entity.RoleAdmin
	adminToken, _ := jwtProvider.GenerateToken(admin)
	w = performRequest(router, "PUT", "/profiles/507f1f77bcf86cd799439011", map[string]string{"Authorization": "Bearer " + adminToken})
	if w.Code != http.StatusOK {
		t.Errorf("admin: status = %d, want 200", w.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS(DefaultCORSConfig()))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := performRequest(router, "OPTIONS", "/ping", map[string]string{"Origin": "http://localhost:3000"})
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if got := w.Header().Get("Access-Control-Max-Age"); got != "43200" {
		t.Errorf("Max-Age = %q, want 43200", got)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowOrigins = []string{"https://app.connecthub.io"}

	router := gin.New()
	router.Use(CORS(cfg))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := performRequest(router, "GET", "/ping", map[string]string{"Origin": "https://evil.example.com"})
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want empty", got)
	}

	w = performRequest(router, "GET", "/ping", map[string]string{"Origin": "https://app.connecthub.io"})
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.connecthub.io" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

func TestRequestID_Generated(t *testing.T) {
	var captured string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		captured = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := performRequest(router, "GET", "/ping", nil)
	if captured == "" {
		t.Error("expected a generated request id in context")
	}
	if got := w.Header().Get(RequestIDHeader); got != captured {
		t.Errorf("response header = %q, context = %q", got, captured)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	var captured string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		captured = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	performRequest(router, "GET", "/ping", map[string]string{RequestIDHeader: "client-supplied-id"})
	if captured != "client-supplied-id" {
		t.Errorf("request id = %q, want client-supplied-id", captured)
	}
}

func TestRequestID_OversizedHeaderReplaced(t *testing.T) {
	var captured string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		captured = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	oversized := strings.Repeat("x", maxRequestIDLength+1)
	performRequest(router, "GET", "/ping", map[string]string{RequestIDHeader: oversized})
	if captured == oversized || captured == "" {
		t.Errorf("oversized client id should be replaced, got %q", captured)
	}
}

func TestRateLimiter_BurstExhaustion(t *testing.T) {
	limiter := NewRateLimiter(RateLimiterConfig{
		Rate:      1,
		Period:    time.Minute,
		BurstSize: 3,
	})

	for i := 0; i < 3; i++ {
		if !limiter.Allow("client-a") {
			t.Fatalf("request %d should be allowed within burst", i)
		}
	}
	if limiter.Allow("client-a") {
		t.Error("request beyond burst should be rejected")
	}

	// Another client has its own budget.
	if !limiter.Allow("client-b") {
		t.Error("separate client should not share the bucket")
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	limiter := NewRateLimiter(RateLimiterConfig{
		Rate:      1,
		Period:    time.Minute,
		BurstSize: 1,
	})

	router := gin.New()
	router.Use(limiter.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := performRequest(router, "GET", "/ping", nil)
	if w.Code != http.StatusOK {
		t.Errorf("first request: status = %d, want 200", w.Code)
	}

	w = performRequest(router, "GET", "/ping", nil)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("second request: status = %d, want 429", w.Code)
	}
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(zap.NewNop()))
	router.GET("/boom", func(c *gin.Context) {
		panic("something went wrong")
	})

	w := performRequest(router, "GET", "/boom", nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
