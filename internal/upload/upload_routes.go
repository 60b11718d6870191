package upload

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts POST /upload.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/upload", handler.Upload)
}
