package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"gym_portal/internal/controllers"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger())
	r.Use(gin.Recovery())

	r.GET("/", controllers.Home)

	AccountRoutes(r)
	CustomerRoutes(r)
	TrainerRoutes(r)

	return r
}
