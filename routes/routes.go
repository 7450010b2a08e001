package routes

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every storefront route on server.
func RegisterRoutes(server *gin.Engine) {
	DefaultRoutes(server)
	ProductRoutes(server)
	CartRoutes(server)
	OrderRoutes(server)
}
