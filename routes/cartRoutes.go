package routes

import (
	"github.com/Kariqs/bakebites/controllers"
	"github.com/Kariqs/bakebites/middlewares"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.VisitorSession())
	{
		cart.GET("", controllers.GetCart)
		cart.POST("/:productId/increment", controllers.IncrementCartLine)
		cart.POST("/:productId/decrement", controllers.DecrementCartLine)
		cart.POST("/:productId/remove", controllers.RemoveCartLine)
	}
}
