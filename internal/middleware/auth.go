package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidPayload = errors.New("invalid token payload")
)

// ResolveCaller verifies an HMAC-signed JWT and maps its `sub` and `rol`
// claims onto a Caller.
func ResolveCaller(secret, tokenString string) (domain.Caller, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return domain.Caller{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Caller{}, ErrInvalidPayload
	}

	userID, _ := claims["sub"].(string)
	role, _ := claims["rol"].(string)
	if userID == "" {
		return domain.Caller{}, ErrInvalidPayload
	}

	switch r := domain.Role(role); r {
	case domain.RoleAdmin, domain.RoleBarber, domain.RoleClient:
		return domain.Caller{UserID: userID, Role: r}, nil
	default:
		return domain.Caller{}, ErrInvalidPayload
	}
}

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		caller, err := ResolveCaller(secret, parts[1])
		if err != nil {
			code := "invalid_token"
			if errors.Is(err, ErrInvalidPayload) {
				code = "invalid_token_payload"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code})
			return
		}

		c.Set(ContextUserID, caller.UserID)
		c.Set(ContextUserRole, string(caller.Role))

		c.Next()
	}
}

// CallerFrom reads the identity stored by AuthMiddleware.
func CallerFrom(c *gin.Context) (domain.Caller, bool) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		return domain.Caller{}, false
	}
	return domain.Caller{
		UserID: userID,
		Role:   domain.Role(c.GetString(ContextUserRole)),
	}, true
}
