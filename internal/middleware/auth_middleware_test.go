package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hr-portal/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func setupAuthRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"employee_id": c.GetString("employee_id"),
			"ctx":         contextutil.GetEmployeeID(c.Request.Context()),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"employee_id": "emp-1",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name       string
		secret     string
		setup      func(r *http.Request)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "bearer token",
			secret:     testSecret,
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) },
			wantStatus: http.StatusOK,
			wantBody:   `{"employee_id":"emp-1","ctx":"emp-1"}`,
		},
		{
			name:       "cookie token",
			secret:     testSecret,
			setup:      func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "access_token", Value: valid}) },
			wantStatus: http.StatusOK,
			wantBody:   `{"employee_id":"emp-1","ctx":"emp-1"}`,
		},
		{
			name:       "missing token",
			secret:     testSecret,
			setup:      func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Token not found"}`,
		},
		{
			name:       "basic auth is not a bearer token",
			secret:     testSecret,
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") },
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Token not found"}`,
		},
		{
			name:       "wrong secret",
			secret:     "other",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) },
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Invalid token"}`,
		},
		{
			name:   "expired",
			secret: testSecret,
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
					"employee_id": "emp-1",
					"exp":         time.Now().Add(-time.Minute).Unix(),
				}))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Token expired"}`,
		},
		{
			name:   "other hmac algorithm",
			secret: testSecret,
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{"employee_id": "emp-1"}))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Invalid token"}`,
		},
		{
			name:   "no employee claim",
			secret: testSecret,
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "x"}))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Employee ID not found in token"}`,
		},
		{
			name:       "no secret configured",
			secret:     "",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) },
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Authentication is not configured"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()

			setupAuthRouter(tt.secret).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
