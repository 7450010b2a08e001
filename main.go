package main

import (
	"time"
	_ "time/tzdata"

	"github.com/Kariqs/bakebites/initializers"
	"github.com/Kariqs/bakebites/routes"
	"github.com/Kariqs/bakebites/templates"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.LoadCatalog()
	initializers.InitSessions()
	initializers.InitRecorder()
	initializers.InitImages()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     initializers.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.SetHTMLTemplate(templates.Views())
	routes.RegisterRoutes(server)
	server.Run()
}

