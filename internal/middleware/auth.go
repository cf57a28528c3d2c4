package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"insurai_backend/internal/auth"
	"insurai_backend/internal/logger"
	"insurai_backend/internal/models"
)

// AuthMiddleware validates the bearer token and stores its claims on the
// gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("userID", claims.UserID)
		c.Set("category", claims.Category)
		c.Next()
	}
}

// RequireCategories restricts a route to the given user categories.
func RequireCategories(categories ...models.UserCategory) gin.HandlerFunc {
	allowed := make(map[models.UserCategory]bool, len(categories))
	for _, cat := range categories {
		allowed[cat] = true
	}

	return func(c *gin.Context) {
		catVal, exists := c.Get("category")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no category"})
			return
		}

		catStr, ok := catVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: invalid category"})
			return
		}

		if !allowed[models.UserCategory(catStr)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}
