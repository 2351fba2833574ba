package room

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers read-only room routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/rooms", handler.GetAll)
	r.GET("/rooms/:id", handler.GetByID)
}

// RegisterAdminRoutes registers room management routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/rooms", handler.Create)
	r.PUT("/rooms/:id", handler.Update)
}
