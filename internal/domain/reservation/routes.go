package reservation

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers booking and room search.
// POST and PUT share the :id wildcard; it names the room on create and the
// reservation on update.
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/reservations/:id", handler.Create)
	r.GET("/rooms/search", handler.SearchRooms)
}

// RegisterProtectedRoutes registers routes for signed-in employees
func RegisterProtectedRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/reservations", handler.GetAll)
	r.GET("/reservations/occupation", handler.GetOccupation)
	r.GET("/reservations/occupation/live", handler.Live)
	r.GET("/reservations/:id", handler.GetByID)
	r.PUT("/reservations/:id", handler.Update)
}
