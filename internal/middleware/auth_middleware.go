package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-hr-portal/internal/shared/contextutil"
	"go-hr-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const accessTokenCookie = "access_token"

// AuthMiddleware verifies an HS256 bearer token (or the access_token cookie)
// and exposes its employee_id claim as "employee_id".
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie(accessTokenCookie); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Message(c, http.StatusUnauthorized, "Token not found")
			c.Abort()
			return
		}
		if len(key) == 0 {
			response.Message(c, http.StatusUnauthorized, "Authentication is not configured")
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
			return key, nil
		})
		if err != nil || !token.Valid {
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token expired"
			}
			response.Message(c, http.StatusUnauthorized, msg)
			c.Abort()
			return
		}

		employeeID, ok := claims["employee_id"].(string)
		if !ok || employeeID == "" {
			response.Message(c, http.StatusUnauthorized, "Employee ID not found in token")
			c.Abort()
			return
		}

		c.Set("employee_id", employeeID)
		c.Request = c.Request.WithContext(contextutil.WithEmployeeID(c.Request.Context(), employeeID))

		c.Next()
	}
}
