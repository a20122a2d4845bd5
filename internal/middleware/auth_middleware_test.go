package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emre/yoklama/internal/app/models"
	"github.com/emre/yoklama/internal/pkg/auth"
)

func newAuthTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	protected := router.Group("", NewAuthMiddleware(jwtService).JWTAuth())
	protected.GET("/departments", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"employeeId": c.GetInt64("employeeId"),
			"username":   c.GetString("username"),
		})
	})
	return router
}

func testJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "yoklama.test",
	})
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	router := newAuthTestRouter(testJWTService(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/departments", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Authorization header required") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestJWTAuthRejectsNonBearerHeader(t *testing.T) {
	router := newAuthTestRouter(testJWTService(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/departments", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid authorization header format") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestJWTAuthAcceptsIssuedToken(t *testing.T) {
	jwtService := testJWTService(time.Hour)
	token, err := jwtService.GenerateToken(&models.Employee{ID: 3, Username: "admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	router := newAuthTestRouter(jwtService)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/departments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"username":"admin"`) {
		t.Errorf("employee identity not placed on the context: %s", w.Body.String())
	}
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	expired := testJWTService(-time.Minute)
	token, err := expired.GenerateToken(&models.Employee{ID: 3, Username: "admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	router := newAuthTestRouter(testJWTService(time.Hour))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/departments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Token expired") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestJWTAuthRejectsForgedToken(t *testing.T) {
	other := testJWTService(time.Hour)
	token, err := other.GenerateToken(&models.Employee{ID: 3, Username: "admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	router := newAuthTestRouter(auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "another-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "yoklama.test",
	}))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/departments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid token") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
