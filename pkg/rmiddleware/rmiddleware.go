package rmiddleware

import (
	"net/http"

	"github.com/lsnz-league/lsnz/internal/middleware"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

// StaffMiddleware restricts a route group to players flagged as staff.
// Catalog data (systems, sites, tournaments, grades) is staff-managed.
func StaffMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, err := middleware.GetPlayerIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		var isStaff bool
		if err := db.Table("players").Select("is_staff").Where("id = ? AND deleted_at IS NULL", playerID).Find(&isStaff).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check staff status"})
			return
		}

		if !isStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "Forbidden",
				"message": "You don't have permission to access this resource",
			})
			return
		}

		c.Next()
	}
}
