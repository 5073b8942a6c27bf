package controllers

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"

	"gym_portal/internal/config"
	"gym_portal/internal/middleware"
	"gym_portal/internal/models"
)

// CustomerDashboard returns the customer's profile, active plans and their
// five most recent progress records.
func CustomerDashboard(c *gin.Context) {
	userID := middleware.ActingUserID(c)

	profile, err := EnsureCustomerProfile(config.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile: " + err.Error()})
		return
	}

	var dietPlans []models.DietPlan
	if err := config.DB.Where("customer_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").Find(&dietPlans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load diet plans"})
		return
	}

	var workoutPlans []models.WorkoutPlan
	if err := config.DB.Where("customer_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").Find(&workoutPlans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load workout plans"})
		return
	}

	var recentProgress []models.ProgressTracking
	if err := config.DB.Where("customer_id = ?", userID).
		Order("date DESC").Limit(5).Find(&recentProgress).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load progress records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":         profileResponse(profile),
		"diet_plans":      dietPlans,
		"workout_plans":   workoutPlans,
		"recent_progress": recentProgress,
	})
}

// CustomerProfileShow returns the current profile for form population.
func CustomerProfileShow(c *gin.Context) {
	profile, err := EnsureCustomerProfile(config.DB, middleware.ActingUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profileResponse(profile)})
}

type profileUpdateInput struct {
	Age              *uint    `json:"age" binding:"omitempty,lte=120"`
	HeightCm         *float64 `json:"height_cm" binding:"omitempty,gt=0"`
	WeightKg         *float64 `json:"weight_kg" binding:"omitempty,gt=0"`
	Diseases         *string  `json:"diseases"`
	Goal             *string  `json:"goal" binding:"omitempty,oneof=lose_weight gain_muscle maintain endurance strength"`
	ActivityLevel    *string  `json:"activity_level" binding:"omitempty,oneof=sedentary lightly_active moderately_active very_active extremely_active"`
	Phone            *string  `json:"phone" binding:"omitempty,max=15"`
	EmergencyContact *string  `json:"emergency_contact" binding:"omitempty,max=100"`
}

// CustomerProfileEdit applies the submitted fields to the acting customer's
// profile. Unsubmitted fields are left alone.
func CustomerProfileEdit(c *gin.Context) {
	profile, err := EnsureCustomerProfile(config.DB, middleware.ActingUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile: " + err.Error()})
		return
	}

	var input profileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Age != nil {
		profile.Age = input.Age
	}
	if input.HeightCm != nil {
		profile.HeightCm = input.HeightCm
	}
	if input.WeightKg != nil {
		profile.WeightKg = input.WeightKg
	}
	if input.Diseases != nil {
		profile.Diseases = *input.Diseases
	}
	if input.Goal != nil {
		profile.Goal = models.Goal(*input.Goal)
	}
	if input.ActivityLevel != nil {
		profile.ActivityLevel = models.ActivityLevel(*input.ActivityLevel)
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.EmergencyContact != nil {
		profile.EmergencyContact = *input.EmergencyContact
	}

	if err := config.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Your profile has been updated successfully!",
		"profile": profileResponse(profile),
	})
}

// AddProgress records a weigh-in from a multipart form. The date defaults to
// today and the photo is optional.
func AddProgress(c *gin.Context) {
	userID := middleware.ActingUserID(c)

	weightStr := c.PostForm("weight_kg")
	weight, err := strconv.ParseFloat(weightStr, 64)
	if err != nil || weight <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weight_kg is required and must be a positive number"})
		return
	}

	date := time.Now()
	if dateStr := c.PostForm("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	record := models.ProgressTracking{
		CustomerID: userID,
		WeightKg:   weight,
		Date:       date,
		Notes:      c.PostForm("notes"),
	}

	if file, err := c.FormFile("photo"); err == nil {
		name, err := saveProgressPhoto(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store photo: " + err.Error()})
			return
		}
		record.Photo = name
	}

	if err := config.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save progress record: " + err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": userID, "progress_id": record.ID}).Info("progress recorded")
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Progress record added successfully!",
		"progress": record,
	})
}

// saveProgressPhoto writes the upload under MEDIA_DIR/progress_photos with an
// opaque name and returns the stored relative path.
func saveProgressPhoto(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(config.MediaDir(), "progress_photos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return filepath.Join("progress_photos", name), nil
}

func profileResponse(profile models.CustomerProfile) gin.H {
	return gin.H{
		"ID":                profile.ID,
		"user_id":           profile.UserID,
		"age":               profile.Age,
		"height_cm":         profile.HeightCm,
		"weight_kg":         profile.WeightKg,
		"diseases":          profile.Diseases,
		"goal":              profile.Goal,
		"activity_level":    profile.ActivityLevel,
		"phone":             profile.Phone,
		"emergency_contact": profile.EmergencyContact,
		"bmi":               profile.BMI(),
		"bmi_category":      profile.BMICategory(),
		"updated_at":        profile.UpdatedAt,
	}
}
