package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/auth/usecase"
)

// mockResolver is a mock implementation of the TokenResolver interface.
type mockResolver struct {
	ResolveTokenFunc func(ctx context.Context, token string) (string, error)
}

func (m *mockResolver) ResolveToken(ctx context.Context, token string) (string, error) {
	if m.ResolveTokenFunc != nil {
		return m.ResolveTokenFunc(ctx, token)
	}
	return "", usecase.ErrSessionNotFound // Default: failure
}

// protectedRouter builds a router with AuthRequired and a probe endpoint
// echoing the user ID set by the middleware.
func protectedRouter(resolver TokenResolver) *gin.Engine {
	router := gin.New()
	router.GET("/protected", AuthRequired(resolver), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserID(c)})
	})
	return router
}

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		token          string
		resolveFunc    func(ctx context.Context, token string) (string, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "success: valid token passes through",
			token: "valid-token",
			resolveFunc: func(ctx context.Context, token string) (string, error) {
				return "user-1", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"userId":"user-1"}`,
		},
		{
			name:           "failure: missing token",
			token:          "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:  "failure: unknown token",
			token: "never-issued",
			resolveFunc: func(ctx context.Context, token string) (string, error) {
				return "", usecase.ErrSessionNotFound
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:  "failure: cache outage fails closed",
			token: "valid-token",
			resolveFunc: func(ctx context.Context, token string) (string, error) {
				return "", usecase.ErrCacheUnavailable
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := protectedRouter(&mockResolver{ResolveTokenFunc: tt.resolveFunc})

			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			if tt.token != "" {
				req.Header.Set("X-Token", tt.token)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}
