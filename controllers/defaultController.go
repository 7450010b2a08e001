package controllers

import (
	"context"
	"log"
	"net/http"

	"github.com/Kariqs/bakebites/initializers"
	"github.com/gin-gonic/gin"
)

func GetHealth(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"status": "ok"})
}

// GetRecorderHealth checks that the order service is reachable with the
// configured credentials.
func GetRecorderHealth(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), initializers.OrderTimeout)
	defer cancel()

	if err := initializers.Recorder.Ping(pingCtx); err != nil {
		log.Println("Order service check failed:", err)
		sendErrorResponse(ctx, http.StatusServiceUnavailable, msgRecorderUnavailable)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"status": "ok"})
}
