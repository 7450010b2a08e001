package routes

import (
	"github.com/Kariqs/bakebites/controllers"
	"github.com/Kariqs/bakebites/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/checkout", middlewares.VisitorSession(), controllers.SubmitOrder)
}
