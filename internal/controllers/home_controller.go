package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_portal/internal/config"
	"gym_portal/internal/models"
)

// Home serves the public landing counts.
func Home(c *gin.Context) {
	var totalCustomers int64
	if err := config.DB.Model(&models.User{}).Scopes(models.HasRole(models.RoleCustomer)).
		Count(&totalCustomers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count customers"})
		return
	}

	var totalTrainers int64
	if err := config.DB.Model(&models.User{}).Scopes(models.HasRole(models.RoleTrainer)).
		Count(&totalTrainers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count trainers"})
		return
	}

	var totalDietPlans int64
	if err := config.DB.Model(&models.DietPlan{}).Where("is_active = ?", true).
		Count(&totalDietPlans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count diet plans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_customers":  totalCustomers,
		"total_trainers":   totalTrainers,
		"total_diet_plans": totalDietPlans,
	})
}
