package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"gym_portal/internal/config"
	"gym_portal/internal/middleware"
	"gym_portal/internal/models"
)

// TrainerDashboard returns the six most recent customers plus the acting
// trainer's plan counts.
func TrainerDashboard(c *gin.Context) {
	trainerID := middleware.ActingUserID(c)

	var recentCustomers []models.User
	if err := config.DB.Scopes(models.HasRole(models.RoleCustomer)).
		Order("first_name ASC").Limit(6).Find(&recentCustomers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load customers"})
		return
	}

	var totalCustomers int64
	if err := config.DB.Model(&models.User{}).Scopes(models.HasRole(models.RoleCustomer)).
		Count(&totalCustomers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count customers"})
		return
	}

	var totalDietPlans int64
	if err := config.DB.Model(&models.DietPlan{}).Where("trainer_id = ?", trainerID).
		Count(&totalDietPlans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count diet plans"})
		return
	}

	var totalWorkoutPlans int64
	if err := config.DB.Model(&models.WorkoutPlan{}).Where("trainer_id = ?", trainerID).
		Count(&totalWorkoutPlans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count workout plans"})
		return
	}

	customers := make([]gin.H, 0, len(recentCustomers))
	for _, customer := range recentCustomers {
		customers = append(customers, prepareUserResponse(customer))
	}

	c.JSON(http.StatusOK, gin.H{
		"customers":           customers,
		"total_customers":     totalCustomers,
		"total_diet_plans":    totalDietPlans,
		"total_workout_plans": totalWorkoutPlans,
	})
}

// TrainerCustomersList lists customer accounts, optionally narrowed by a
// case-insensitive substring match over username and names. An empty search
// returns everyone.
func TrainerCustomersList(c *gin.Context) {
	search := c.Query("search")

	query := config.DB.Scopes(models.HasRole(models.RoleCustomer)).Order("first_name ASC")
	if search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(username) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
			needle, needle, needle,
		)
	}

	var customers []models.User
	if err := query.Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search customers"})
		return
	}

	results := make([]gin.H, 0, len(customers))
	for _, customer := range customers {
		results = append(results, prepareUserResponse(customer))
	}

	c.JSON(http.StatusOK, gin.H{
		"customers":    results,
		"search_query": search,
	})
}

// findCustomer looks up a user by ID scoped to the customer tag. A miss for
// any reason, wrong ID or wrong tag, is the same not-found.
func findCustomer(c *gin.Context, idParam string) (models.User, bool) {
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID format"})
		return models.User{}, false
	}

	var customer models.User
	if err := config.DB.Scopes(models.HasRole(models.RoleCustomer)).
		First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return models.User{}, false
	}
	return customer, true
}

// TrainerCustomerDetail shows one customer's profile, every plan and their
// ten most recent progress records.
func TrainerCustomerDetail(c *gin.Context) {
	customer, ok := findCustomer(c, c.Param("id"))
	if !ok {
		return
	}

	profile, err := EnsureCustomerProfile(config.DB, customer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile: " + err.Error()})
		return
	}

	var dietPlans []models.DietPlan
	if err := config.DB.Where("customer_id = ?", customer.ID).
		Order("created_at DESC").Find(&dietPlans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load diet plans"})
		return
	}

	var workoutPlans []models.WorkoutPlan
	if err := config.DB.Where("customer_id = ?", customer.ID).
		Order("created_at DESC").Find(&workoutPlans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load workout plans"})
		return
	}

	var progressRecords []models.ProgressTracking
	if err := config.DB.Where("customer_id = ?", customer.ID).
		Order("date DESC").Limit(10).Find(&progressRecords).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load progress records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer":         prepareUserResponse(customer),
		"profile":          profileResponse(profile),
		"diet_plans":       dietPlans,
		"workout_plans":    workoutPlans,
		"progress_records": progressRecords,
	})
}

type dietPlanInput struct {
	Title          string `json:"title" binding:"required,max=120"`
	Description    string `json:"description"`
	Breakfast      string `json:"breakfast"`
	Lunch          string `json:"lunch"`
	Dinner         string `json:"dinner"`
	Snacks         string `json:"snacks"`
	WaterIntake    string `json:"water_intake" binding:"omitempty,max=50"`
	Supplements    string `json:"supplements"`
	Notes          string `json:"notes"`
	CaloriesTarget *uint  `json:"calories_target"`
	ProteinTarget  *uint  `json:"protein_target"`
	IsActive       *bool  `json:"is_active"`
}

// TrainerCreateDietPlan creates a diet plan for the given customer,
// attributed to the acting trainer.
func TrainerCreateDietPlan(c *gin.Context) {
	customer, ok := findCustomer(c, c.Param("id"))
	if !ok {
		return
	}

	var input dietPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trainerID := middleware.ActingUserID(c)
	plan := models.DietPlan{
		CustomerID:     customer.ID,
		TrainerID:      &trainerID,
		Title:          input.Title,
		Description:    input.Description,
		Breakfast:      input.Breakfast,
		Lunch:          input.Lunch,
		Dinner:         input.Dinner,
		Snacks:         input.Snacks,
		WaterIntake:    input.WaterIntake,
		Supplements:    input.Supplements,
		Notes:          input.Notes,
		CaloriesTarget: input.CaloriesTarget,
		ProteinTarget:  input.ProteinTarget,
		IsActive:       true,
	}
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create diet plan: " + err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{"trainer_id": trainerID, "customer_id": customer.ID, "plan_id": plan.ID}).Info("diet plan created")
	c.JSON(http.StatusCreated, gin.H{
		"message":   fmt.Sprintf("Diet plan created for %s!", customer.FullName()),
		"diet_plan": plan,
	})
}

type workoutPlanInput struct {
	Title         string `json:"title" binding:"required,max=120"`
	Description   string `json:"description"`
	Monday        string `json:"monday"`
	Tuesday       string `json:"tuesday"`
	Wednesday     string `json:"wednesday"`
	Thursday      string `json:"thursday"`
	Friday        string `json:"friday"`
	Saturday      string `json:"saturday"`
	Sunday        string `json:"sunday"`
	DurationWeeks *uint  `json:"duration_weeks"`
	IsActive      *bool  `json:"is_active"`
}

// TrainerCreateWorkoutPlan creates a workout plan for the given customer,
// attributed to the acting trainer.
func TrainerCreateWorkoutPlan(c *gin.Context) {
	customer, ok := findCustomer(c, c.Param("id"))
	if !ok {
		return
	}

	var input workoutPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trainerID := middleware.ActingUserID(c)
	plan := models.WorkoutPlan{
		CustomerID:    customer.ID,
		TrainerID:     &trainerID,
		Title:         input.Title,
		Description:   input.Description,
		Monday:        input.Monday,
		Tuesday:       input.Tuesday,
		Wednesday:     input.Wednesday,
		Thursday:      input.Thursday,
		Friday:        input.Friday,
		Saturday:      input.Saturday,
		Sunday:        input.Sunday,
		DurationWeeks: 4,
		IsActive:      true,
	}
	if input.DurationWeeks != nil {
		plan.DurationWeeks = *input.DurationWeeks
	}
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create workout plan: " + err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{"trainer_id": trainerID, "customer_id": customer.ID, "plan_id": plan.ID}).Info("workout plan created")
	c.JSON(http.StatusCreated, gin.H{
		"message":      fmt.Sprintf("Workout plan created for %s!", customer.FullName()),
		"workout_plan": plan,
	})
}

type dietPlanUpdateInput struct {
	Title          *string `json:"title" binding:"omitempty,max=120"`
	Description    *string `json:"description"`
	Breakfast      *string `json:"breakfast"`
	Lunch          *string `json:"lunch"`
	Dinner         *string `json:"dinner"`
	Snacks         *string `json:"snacks"`
	WaterIntake    *string `json:"water_intake" binding:"omitempty,max=50"`
	Supplements    *string `json:"supplements"`
	Notes          *string `json:"notes"`
	CaloriesTarget *uint   `json:"calories_target"`
	ProteinTarget  *uint   `json:"protein_target"`
	IsActive       *bool   `json:"is_active"`
}

// TrainerEditDietPlan updates a diet plan the acting trainer authored. The
// lookup itself is scoped to the trainer, so another trainer's plan ID reads
// as not found rather than forbidden.
func TrainerEditDietPlan(c *gin.Context) {
	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID format"})
		return
	}

	trainerID := middleware.ActingUserID(c)
	var plan models.DietPlan
	if err := config.DB.Where("id = ? AND trainer_id = ?", planID, trainerID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Diet plan not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	var input dietPlanUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title != nil {
		plan.Title = *input.Title
	}
	if input.Description != nil {
		plan.Description = *input.Description
	}
	if input.Breakfast != nil {
		plan.Breakfast = *input.Breakfast
	}
	if input.Lunch != nil {
		plan.Lunch = *input.Lunch
	}
	if input.Dinner != nil {
		plan.Dinner = *input.Dinner
	}
	if input.Snacks != nil {
		plan.Snacks = *input.Snacks
	}
	if input.WaterIntake != nil {
		plan.WaterIntake = *input.WaterIntake
	}
	if input.Supplements != nil {
		plan.Supplements = *input.Supplements
	}
	if input.Notes != nil {
		plan.Notes = *input.Notes
	}
	if input.CaloriesTarget != nil {
		plan.CaloriesTarget = input.CaloriesTarget
	}
	if input.ProteinTarget != nil {
		plan.ProteinTarget = input.ProteinTarget
	}
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update diet plan: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Diet plan updated successfully!",
		"diet_plan": plan,
	})
}

type workoutPlanUpdateInput struct {
	Title         *string `json:"title" binding:"omitempty,max=120"`
	Description   *string `json:"description"`
	Monday        *string `json:"monday"`
	Tuesday       *string `json:"tuesday"`
	Wednesday     *string `json:"wednesday"`
	Thursday      *string `json:"thursday"`
	Friday        *string `json:"friday"`
	Saturday      *string `json:"saturday"`
	Sunday        *string `json:"sunday"`
	DurationWeeks *uint   `json:"duration_weeks"`
	IsActive      *bool   `json:"is_active"`
}

// TrainerEditWorkoutPlan updates a workout plan the acting trainer authored,
// with the same trainer-scoped lookup as diet plans.
func TrainerEditWorkoutPlan(c *gin.Context) {
	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID format"})
		return
	}

	trainerID := middleware.ActingUserID(c)
	var plan models.WorkoutPlan
	if err := config.DB.Where("id = ? AND trainer_id = ?", planID, trainerID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout plan not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	var input workoutPlanUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title != nil {
		plan.Title = *input.Title
	}
	if input.Description != nil {
		plan.Description = *input.Description
	}
	if input.Monday != nil {
		plan.Monday = *input.Monday
	}
	if input.Tuesday != nil {
		plan.Tuesday = *input.Tuesday
	}
	if input.Wednesday != nil {
		plan.Wednesday = *input.Wednesday
	}
	if input.Thursday != nil {
		plan.Thursday = *input.Thursday
	}
	if input.Friday != nil {
		plan.Friday = *input.Friday
	}
	if input.Saturday != nil {
		plan.Saturday = *input.Saturday
	}
	if input.Sunday != nil {
		plan.Sunday = *input.Sunday
	}
	if input.DurationWeeks != nil {
		plan.DurationWeeks = *input.DurationWeeks
	}
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update workout plan: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Workout plan updated successfully!",
		"workout_plan": plan,
	})
}
