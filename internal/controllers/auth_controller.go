package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gym_portal/internal/config"
	"gym_portal/internal/middleware"
	"gym_portal/internal/models"
)

// Shared secret handed out by the gym admin. Candidate codes are trimmed
// before comparison.
const trainerVerifyCode = "trainer@skpm"

type signupInput struct {
	Username  string `json:"username" binding:"required,max=150"`
	FirstName string `json:"first_name" binding:"required,max=30"`
	LastName  string `json:"last_name" binding:"required,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Password1 string `json:"password1" binding:"required,min=8"`
	Password2 string `json:"password2" binding:"required"`
}

type trainerSignupInput struct {
	signupInput
	VerifyCode string `json:"verify_code" binding:"required"`
}

// SignupCustomer creates an account carrying the customer tag.
func SignupCustomer(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := createAccount(c, input, models.RoleCustomer)
	if !ok {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Welcome %s! Your account has been created. Please log in.", user.FirstName),
		"user":    prepareUserResponse(user),
	})
}

// SignupTrainer creates an account carrying the trainer tag. The account is
// only created when the verification code matches.
func SignupTrainer(c *gin.Context) {
	var input trainerSignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(input.VerifyCode) != trainerVerifyCode {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trainer verification code. Contact admin for the correct code."})
		return
	}

	user, ok := createAccount(c, input.signupInput, models.RoleTrainer)
	if !ok {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Welcome Trainer %s! Your account has been created. Please log in.", user.FirstName),
		"user":    prepareUserResponse(user),
	})
}

// createAccount runs the shared signup path: validate the password pair,
// reject taken handles, then create the user and its profile in one
// transaction. Writes the error response itself and reports success via the
// bool.
func createAccount(c *gin.Context, input signupInput, role models.Role) (models.User, bool) {
	if input.Password1 != input.Password2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The two password fields didn't match"})
		return models.User{}, false
	}

	var count int64
	if err := config.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", input.Username, input.Email).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return models.User{}, false
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A user with that username or email already exists"})
		return models.User{}, false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password1), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return models.User{}, false
	}

	user := models.User{
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hash),
		Roles:     models.RoleSet{role},
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return models.User{}, false
	}

	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A user with that username or email already exists"})
			return models.User{}, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user: " + err.Error()})
		return models.User{}, false
	}

	if _, err := EnsureCustomerProfile(tx, user.ID); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create profile: " + err.Error()})
		return models.User{}, false
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return models.User{}, false
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "role": role}).Info("account created")
	return user, true
}

// EnsureCustomerProfile provisions the profile row for an account. FirstOrCreate
// keeps it idempotent, so firing it again for the same user never duplicates.
func EnsureCustomerProfile(db *gorm.DB, userID uint) (models.CustomerProfile, error) {
	var profile models.CustomerProfile
	err := db.Where(models.CustomerProfile{UserID: userID}).FirstOrCreate(&profile).Error
	return profile, err
}

// LoginUser checks credentials and hands back a signed token.
func LoginUser(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", body.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials. Please check your username and password."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials. Please check your username and password."})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Roles.Classify())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome back, %s!", user.FirstName),
		"token":   token,
		"user":    prepareUserResponse(user),
	})
}

// LogoutUser acknowledges the logout; tokens are stateless so the client just
// drops its copy.
func LogoutUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, middleware.ActingUserID(c)).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Goodbye %s! You have been logged out.", user.FirstName),
	})
}

// DashboardRedirect sends an authenticated user to the dashboard for their
// classified role. Trainer wins; everyone else lands on the customer side.
func DashboardRedirect(c *gin.Context) {
	if middleware.ActingRole(c) == models.RoleTrainer {
		c.Redirect(http.StatusFound, middleware.TrainerDashboardPath)
		return
	}
	c.Redirect(http.StatusFound, middleware.CustomerDashboardPath)
}

func prepareUserResponse(user models.User) gin.H {
	return gin.H{
		"ID":         user.ID,
		"CreatedAt":  user.CreatedAt,
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
		"roles":      user.Roles,
		"role":       user.Roles.Classify(),
	}
}
