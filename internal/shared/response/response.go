package response

import (
	"github.com/gin-gonic/gin"
)

// ProfileEnvelope is the body shape used by the /auth/me routes.
type ProfileEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes data as the bare response body. The request and upload routes
// return rows and objects without an envelope.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Error writes {"error": message}.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Message writes {"message": message}; profile routes report failures this way.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func Profile(c *gin.Context, status int, message string, data any) {
	c.JSON(status, ProfileEnvelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}
