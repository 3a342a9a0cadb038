package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// serverError logs the underlying failure and answers with an opaque
// 500; internal detail never reaches the response body.
func serverError(c *gin.Context, log *slog.Logger, op string, err error) {
	log.Error(op, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
}
