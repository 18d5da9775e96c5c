package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/draftmark/draftmark-backend/internal/common"
	"github.com/draftmark/draftmark-backend/pkg/jwt"
)

const contextKeyActorID = "actorID"

// JWTAuth requires a valid bearer token and stores the actor ID in context
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.ErrorResponse(c, 401, "Missing authorization header", nil)
			c.Abort()
			return
		}

		// 2. Parse Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.ErrorResponse(c, 401, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		// 3. Verify token
		claims, err := jwtManager.VerifyToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, 401, "Token expired", err)
			} else {
				common.ErrorResponse(c, 401, "Invalid token", err)
			}
			c.Abort()
			return
		}

		// 4. Store actor info in context
		c.Set(contextKeyActorID, claims.UserID)
		c.Set("nickname", claims.Nickname)
		c.Set("isAdmin", claims.IsAdmin)

		c.Next()
	}
}

// OptionalJWTAuth resolves the actor when a valid token is present but lets
// anonymous requests through. Read paths need this: owner-less items are
// world-readable while owned items still require an identity.
func OptionalJWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		if claims, err := jwtManager.VerifyToken(parts[1]); err == nil {
			c.Set(contextKeyActorID, claims.UserID)
			c.Set("nickname", claims.Nickname)
			c.Set("isAdmin", claims.IsAdmin)
		}

		c.Next()
	}
}

// GetActorID extracts the acting user ID from context; 0 means anonymous
func GetActorID(c *gin.Context) uint64 {
	actorID, exists := c.Get(contextKeyActorID)
	if !exists {
		return 0
	}
	if id, ok := actorID.(uint64); ok {
		return id
	}
	return 0
}

// IsAdmin extracts the admin flag from context
func IsAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get("isAdmin")
	if !exists {
		return false
	}
	if flag, ok := isAdmin.(bool); ok {
		return flag
	}
	return false
}
