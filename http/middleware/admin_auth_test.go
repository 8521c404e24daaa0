package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-gallery-service/config"
	"github.com/tnqbao/gau-gallery-service/utils"
)

func adminConfig(t *testing.T) *config.EnvConfig {
	t.Helper()
	cfg := &config.EnvConfig{}
	cfg.Admin.Token = "static-admin-token"
	cfg.Admin.Password = "admin-pass"
	cfg.JWT.SecretKey = "session-secret"
	cfg.JWT.Expire = 3600
	return cfg
}

func protectedRouter(cfg *config.EnvConfig, invoked *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AdminAuthMiddleware(cfg))
	router.GET("/protected", func(c *gin.Context) {
		*invoked = true
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestAdminAuthRejectsWithoutCredentials(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"empty bearer", "Bearer "},
		{"wrong scheme", "Basic static-admin-token"},
		{"wrong token", "Bearer not-the-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var invoked bool
			router := protectedRouter(adminConfig(t), &invoked)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
			if invoked {
				t.Error("handler must not run for unauthenticated requests")
			}
			if !strings.Contains(rec.Body.String(), `"unauthorized"`) {
				t.Errorf("expected unauthorized error body, got %s", rec.Body.String())
			}
		})
	}
}

func TestAdminAuthAcceptsStaticToken(t *testing.T) {
	cfg := adminConfig(t)
	var invoked bool
	router := protectedRouter(cfg, &invoked)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+cfg.Admin.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !invoked {
		t.Error("handler did not run for the static admin token")
	}
}

func TestAdminAuthAcceptsSessionToken(t *testing.T) {
	cfg := adminConfig(t)
	token, err := utils.GenerateSessionToken(cfg)
	if err != nil {
		t.Fatalf("failed to issue session token: %v", err)
	}

	var invoked bool
	router := protectedRouter(cfg, &invoked)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !invoked {
		t.Error("handler did not run for a valid session token")
	}
}
