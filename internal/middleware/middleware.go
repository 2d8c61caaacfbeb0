package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware requires a bearer token signed with secret on mutating
// requests. Reads are always public. An empty secret disables the check.
func AuthMiddleware(secret string) gin.HandlerFunc {
	jwtSecret := []byte(secret)

	return func(c *gin.Context) {
		if secret == "" || isReadOnly(c.Request.Method) {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"kind":    "unauthorized",
				"message": "Authorization header is required",
				"error":   "Missing authorization token",
			})
			return
		}

		// Bearer {token}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"kind":    "unauthorized",
				"message": "Invalid authorization header format",
				"error":   "Use format: Bearer {token}",
			})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtSecret, nil
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"kind":    "unauthorized",
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"kind":    "unauthorized",
				"message": "Invalid token claims",
				"error":   "Token validation failed",
			})
			return
		}

		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			c.Set("subject", sub)
		}
		if email, ok := claims["email"].(string); ok {
			c.Set("email", email)
		}
		c.Next()
	}
}

func isReadOnly(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
