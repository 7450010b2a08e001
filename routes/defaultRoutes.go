package routes

import (
	"github.com/Kariqs/bakebites/controllers"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/healthz", controllers.GetHealth)
	server.GET("/healthz/recorder", controllers.GetRecorderHealth)
}
