package routes

import (
	"github.com/Kariqs/bakebites/controllers"
	"github.com/Kariqs/bakebites/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/images/:productId", controllers.GetProductImage)

	catalog := server.Group("/", middlewares.VisitorSession())
	{
		catalog.GET("/", controllers.GetCatalog)
		catalog.POST("/catalog/:productId/increment", controllers.IncrementStepper)
		catalog.POST("/catalog/:productId/decrement", controllers.DecrementStepper)
		catalog.POST("/catalog/:productId/add", controllers.AddToCart)
	}
}
