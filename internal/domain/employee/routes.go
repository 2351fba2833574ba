package employee

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers sign-in and email availability routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/auth/login", handler.Login)
	r.GET("/employees/check-email", handler.CheckEmail)
}

// RegisterProtectedRoutes registers routes for any signed-in employee
func RegisterProtectedRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/auth/logout", handler.Logout)
}

// RegisterAdminRoutes registers employee management routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/employees", handler.GetAll)
	r.GET("/employees/:id", handler.GetByID)
	r.POST("/employees", handler.Create)
	r.PUT("/employees/:id", handler.Update)
}
