package request

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the request workflow. createMiddleware runs in front
// of POST only (idempotency).
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	createMiddleware ...gin.HandlerFunc,
) {
	requests := r.Group("/requests")
	{
		requests.GET("", handler.GetAll)
		requests.GET("/:id", handler.GetByID)
		requests.POST("", append(createMiddleware, handler.Create)...)
		requests.PATCH("/:id/status", handler.UpdateStatus)
	}
}
