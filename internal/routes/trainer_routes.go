package routes

import (
	"github.com/gin-gonic/gin"

	"gym_portal/internal/controllers"
	"gym_portal/internal/middleware"
)

func TrainerRoutes(r *gin.Engine) {
	trainer := r.Group("/gym/trainer")
	trainer.Use(middleware.RequireTrainer())
	{
		trainer.GET("/dashboard", controllers.TrainerDashboard)
		trainer.GET("/customers", controllers.TrainerCustomersList)
		trainer.GET("/customer/:id", controllers.TrainerCustomerDetail)
		trainer.POST("/customer/:id/diet/create", controllers.TrainerCreateDietPlan)
		trainer.POST("/customer/:id/workout/create", controllers.TrainerCreateWorkoutPlan)
		trainer.POST("/diet/:id/edit", controllers.TrainerEditDietPlan)
		trainer.POST("/workout/:id/edit", controllers.TrainerEditWorkoutPlan)
	}
}
