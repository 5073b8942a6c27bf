package routes

import (
	"github.com/gin-gonic/gin"

	"gym_portal/internal/controllers"
	"gym_portal/internal/middleware"
)

func AccountRoutes(r *gin.Engine) {
	accounts := r.Group("/accounts")
	{
		accounts.POST("/signup/customer", controllers.SignupCustomer)
		accounts.POST("/signup/trainer", controllers.SignupTrainer)
		accounts.POST("/login", controllers.LoginUser)
		accounts.POST("/logout", middleware.RequireAuth(), controllers.LogoutUser)
		accounts.GET("/dashboard", middleware.RequireAuth(), controllers.DashboardRedirect)
	}
}
