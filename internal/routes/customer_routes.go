package routes

import (
	"github.com/gin-gonic/gin"

	"gym_portal/internal/controllers"
	"gym_portal/internal/middleware"
)

func CustomerRoutes(r *gin.Engine) {
	customer := r.Group("/gym/customer")
	customer.Use(middleware.RequireCustomer())
	{
		customer.GET("/dashboard", controllers.CustomerDashboard)
		customer.GET("/profile/edit", controllers.CustomerProfileShow)
		customer.POST("/profile/edit", controllers.CustomerProfileEdit)
		customer.POST("/progress/add", controllers.AddProgress)
	}
}
