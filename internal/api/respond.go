package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/platefull/backend/internal/service"
)

// respondData writes the success envelope.
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// respondError writes the error envelope with the status mirrored in the
// body.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{"message": message, "status": status},
	})
}

// respondServiceError maps a typed service error to its status and message.
// Unexpected errors are logged server-side and surfaced as a generic 500;
// internal detail never reaches the client.
func respondServiceError(c *gin.Context, log *zap.Logger, err error) {
	if e, ok := service.AsError(err); ok {
		if e.Err != nil {
			log.Error("request failed", zap.String("kind", string(e.Kind)), zap.Error(e.Err))
		}
		respondError(c, e.Status(), e.Message)
		return
	}

	log.Error("unexpected error", zap.Error(err))
	respondError(c, http.StatusInternalServerError, "server error")
}
