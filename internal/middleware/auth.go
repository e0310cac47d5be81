package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lsnz-league/lsnz/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	AuthPlayerIDKey = "auth_player_id"
)

// AuthMiddleware requires a valid bearer token belonging to an existing player.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		var exists bool
		if err := db.Table("players").Select("count(*) > 0").Where("id = ? AND deleted_at IS NULL", claims.PlayerID).Find(&exists).Error; err != nil || !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Player not found or inactive"})
			return
		}

		c.Set(AuthPlayerIDKey, claims.PlayerID)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the player from a bearer token when one is
// present but lets anonymous requests through. Listing endpoints use it to
// annotate per-player state without requiring login.
func OptionalAuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.Next()
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.Next()
			return
		}

		var exists bool
		if err := db.Table("players").Select("count(*) > 0").Where("id = ? AND deleted_at IS NULL", claims.PlayerID).Find(&exists).Error; err != nil || !exists {
			c.Next()
			return
		}

		c.Set(AuthPlayerIDKey, claims.PlayerID)
		c.Next()
	}
}

// GetPlayerIDFromContext extracts the authenticated player's ID from the context.
func GetPlayerIDFromContext(c *gin.Context) (uint, error) {
	playerID, exists := c.Get(AuthPlayerIDKey)
	if !exists {
		return 0, errors.New("player ID not found in context")
	}

	pid, ok := playerID.(uint)
	if !ok {
		return 0, fmt.Errorf("player ID has unexpected type: %T", playerID)
	}

	return pid, nil
}
