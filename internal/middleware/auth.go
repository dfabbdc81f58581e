package middleware

import (
	"net/http"
	"strings"

	"github.com/dimitrije/recipebox-api/internal/services"
	"github.com/dimitrije/recipebox-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	UserIDKey = "user_id"
	IDKey     = "id"

	// TokenHeader carries the access token for clients that do not send
	// an Authorization header.
	TokenHeader = "x-auth-token"
)

const (
	msgNoToken      = "No token, authorization denied"
	msgInvalidToken = "Token is not valid"
	msgInvalidID    = "Invalid ID"
)

// Auth resolves the caller from the access token and rejects the request
// before any handler runs when the token is missing or invalid.
func Auth(jwtService *services.JWTService) drift.HandlerFunc {
	return func(c *drift.Context) {
		token := accessToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Msg: msgNoToken})
			return
		}

		claims, err := jwtService.ValidateAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Msg: msgInvalidToken})
			return
		}

		c.Set(UserIDKey, claims.UserID)

		c.Next()
	}
}

func accessToken(c *drift.Context) string {
	if token := strings.TrimSpace(c.GetHeader(TokenHeader)); token != "" {
		return token
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func GetUserID(c *drift.Context) uuid.UUID {
	if id, ok := c.Get(UserIDKey); ok {
		if uid, ok := id.(uuid.UUID); ok {
			return uid
		}
	}
	return uuid.Nil
}

// ValidateID rejects requests whose :id parameter is not a well-formed
// identifier and stores the parsed value for GetID.
func ValidateID(next drift.HandlerFunc) drift.HandlerFunc {
	return func(c *drift.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.MessageResponse{Msg: msgInvalidID})
			return
		}
		c.Set(IDKey, id)
		next(c)
	}
}

func GetID(c *drift.Context) uuid.UUID {
	if id, ok := c.Get(IDKey); ok {
		if uid, ok := id.(uuid.UUID); ok {
			return uid
		}
	}
	return uuid.Nil
}
