package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"gym_portal/internal/models"
)

// Dashboard paths named here so forbidden responses can point the client at
// the right one.
const (
	CustomerDashboardPath = "/gym/customer/dashboard"
	TrainerDashboardPath  = "/gym/trainer/dashboard"
)

var secret = []byte(getJWTSecret())

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

// GenerateToken signs a token carrying the user ID and the classified role.
func GenerateToken(userID uint, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// authenticate validates the bearer token and stashes its claims on the
// context. Reports false after aborting with 401. It must not advance the
// handler chain itself: the role gates below still have to run their check
// before any gated handler executes.
func authenticate(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return false
	}

	c.Set("user_id", claims["user_id"])
	c.Set("role", claims["role"])
	return true
}

// RequireAuth ensures a valid JWT is present
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(c)
	}
}

// ActingUserID returns the authenticated user's ID from the JWT claims.
func ActingUserID(c *gin.Context) uint {
	return uint(c.MustGet("user_id").(float64))
}

// ActingRole returns the classified role stored in the token.
func ActingRole(c *gin.Context) models.Role {
	role, _ := c.Get("role")
	if s, ok := role.(string); ok {
		return models.Role(s)
	}
	return models.RoleUnassigned
}

// RequireCustomer gates customer-side operations. Trainers are turned away
// toward their own dashboard; accounts with no tag fall through to the
// customer path.
func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}

		if ActingRole(c) == models.RoleTrainer {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "This area is for customers only",
				"redirect": TrainerDashboardPath,
			})
		}
	}
}

// RequireTrainer gates trainer-side operations; everyone else is sent to the
// customer dashboard.
func RequireTrainer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}

		if ActingRole(c) != models.RoleTrainer {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "This area is for trainers only",
				"redirect": CustomerDashboardPath,
			})
		}
	}
}
