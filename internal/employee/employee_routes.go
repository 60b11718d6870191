package employee

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the current-employee routes behind auth.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
) {
	me := r.Group("/auth/me")
	me.Use(auth)
	{
		me.GET("", handler.GetMe)
		me.PUT("/update", handler.UpdateMe)
	}
}
