package offer

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers read-only offer routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/offers", handler.GetAll)
	r.GET("/offers/active", handler.GetActive)
	r.GET("/offers/:id", handler.GetByID)
}

// RegisterAdminRoutes registers offer management routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/offers", handler.Create)
	r.PUT("/offers/:id", handler.Update)
}
