package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"insurai_backend/internal/handlers"
	"insurai_backend/internal/middleware"
	"insurai_backend/ws"
)

// RegisterRoutes wires every handler onto the router: the REST surface under
// /api/v1 and the notification stream under /ws.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, wsHandler *ws.Handler) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(api)
		h.Availability.RegisterRoutes(api)
		h.Notification.RegisterRoutes(api)
		h.Policy.RegisterRoutes(api)
		h.Claim.RegisterRoutes(api)
		h.Query.RegisterRoutes(api)
	}

	router.GET("/ws/notifications", middleware.AuthMiddleware(), wsHandler.ServeWS)
}
