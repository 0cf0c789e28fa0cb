package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/auth/domain/entity"
	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc      func(ctx context.Context, email, password string) (*entity.User, error)
	ConnectFunc       func(ctx context.Context, authorization string) (string, error)
	DisconnectFunc    func(ctx context.Context, token string) error
	UserFromTokenFunc func(ctx context.Context, token string) (*entity.User, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password)
	}
	return &entity.User{ID: "user-1", Email: email}, nil
}

func (m *mockAuthUsecase) Connect(ctx context.Context, authorization string) (string, error) {
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx, authorization)
	}
	return "", usecase.ErrInvalidCredentials // Default: failure
}

func (m *mockAuthUsecase) Disconnect(ctx context.Context, token string) error {
	if m.DisconnectFunc != nil {
		return m.DisconnectFunc(ctx, token)
	}
	return usecase.ErrSessionNotFound // Default: failure
}

func (m *mockAuthUsecase) UserFromToken(ctx context.Context, token string) (*entity.User, error) {
	if m.UserFromTokenFunc != nil {
		return m.UserFromTokenFunc(ctx, token)
	}
	return nil, usecase.ErrSessionNotFound // Default: failure
}

func TestAuthHandler_CreateUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    string
		mockRegister   func(ctx context.Context, email, password string) (*entity.User, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:        "success: user registration",
			requestBody: `{"email": "test@example.com", "password": "password123"}`,
			mockRegister: func(ctx context.Context, email, password string) (*entity.User, error) {
				return &entity.User{ID: "user-1", Email: email}, nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   gin.H{"id": "user-1", "email": "test@example.com"},
		},
		{
			name:           "failure: missing email",
			requestBody:    `{"password": "password123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "Missing email"},
		},
		{
			name:           "failure: missing password",
			requestBody:    `{"email": "test@example.com"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "Missing password"},
		},
		{
			name:        "failure: invalid email format",
			requestBody: `{"email": "not-an-email", "password": "password123"}`,
			mockRegister: func(ctx context.Context, email, password string) (*entity.User, error) {
				return nil, usecase.ErrMalformedCredentials
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "Invalid email format"},
		},
		{
			name:        "failure: duplicate email",
			requestBody: `{"email": "dup@example.com", "password": "password123"}`,
			mockRegister: func(ctx context.Context, email, password string) (*entity.User, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "Already exist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{RegisterFunc: tt.mockRegister})

			router := gin.New()
			router.POST("/users", handler.CreateUser)

			req, _ := http.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

func TestAuthHandler_Connect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validHeader := "Basic " + base64.StdEncoding.EncodeToString([]byte("user@x.com:secret123"))

	tests := []struct {
		name           string
		authorization  string
		mockConnect    func(ctx context.Context, authorization string) (string, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:          "success: token issued",
			authorization: validHeader,
			mockConnect: func(ctx context.Context, authorization string) (string, error) {
				return "031bffac-3edc-4e51-aaae-1c121317da8a", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"token": "031bffac-3edc-4e51-aaae-1c121317da8a"},
		},
		{
			name:          "failure: missing header",
			authorization: "",
			mockConnect: func(ctx context.Context, authorization string) (string, error) {
				return "", usecase.ErrMalformedCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "Unauthorized"},
		},
		{
			name:          "failure: wrong password",
			authorization: "Basic " + base64.StdEncoding.EncodeToString([]byte("user@x.com:wrongpass")),
			mockConnect: func(ctx context.Context, authorization string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "Invalid email or password"},
		},
		{
			name:          "failure: cache unreachable",
			authorization: validHeader,
			mockConnect: func(ctx context.Context, authorization string) (string, error) {
				return "", usecase.ErrCacheUnavailable
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{ConnectFunc: tt.mockConnect})

			router := gin.New()
			router.GET("/connect", handler.Connect)

			req, _ := http.NewRequest(http.MethodGet, "/connect", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

func TestAuthHandler_Disconnect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		token          string
		mockDisconnect func(ctx context.Context, token string) error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success: 204 with empty body",
			token:          "valid-token",
			mockDisconnect: func(ctx context.Context, token string) error { return nil },
			expectedStatus: http.StatusNoContent,
			expectedBody:   "",
		},
		{
			name:           "failure: missing token",
			token:          "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:  "failure: unknown or already revoked token",
			token: "revoked-token",
			mockDisconnect: func(ctx context.Context, token string) error {
				return usecase.ErrSessionNotFound
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid token"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{DisconnectFunc: tt.mockDisconnect})

			router := gin.New()
			router.GET("/disconnect", handler.Disconnect)

			req, _ := http.NewRequest(http.MethodGet, "/disconnect", nil)
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

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		token          string
		mockUser       func(ctx context.Context, token string) (*entity.User, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:  "success: current user",
			token: "valid-token",
			mockUser: func(ctx context.Context, token string) (*entity.User, error) {
				return &entity.User{ID: "user-1", Email: "user@x.com", Password: "hash"}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"id": "user-1", "email": "user@x.com"},
		},
		{
			name:           "failure: missing token",
			token:          "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "Unauthorized"},
		},
		{
			name:  "failure: cache unavailable fails closed",
			token: "valid-token",
			mockUser: func(ctx context.Context, token string) (*entity.User, error) {
				return nil, usecase.ErrCacheUnavailable
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "Unauthorized"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{UserFromTokenFunc: tt.mockUser})

			router := gin.New()
			router.GET("/users/me", handler.Me)

			req, _ := http.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.token != "" {
				req.Header.Set("X-Token", tt.token)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}
