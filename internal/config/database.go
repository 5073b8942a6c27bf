package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gym_portal/internal/models"
)

var (
	// DB is how controllers reach storage. Set once by InitDB.
	DB *gorm.DB
)

// InitDB loads .env, opens the postgres connection and migrates the schema.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	host := GetEnv("DB_HOST", "localhost")
	port := GetEnv("DB_PORT", "5432")
	user := GetEnv("DB_USER", "postgres")
	password := GetEnv("DB_PASSWORD", "password")
	dbname := GetEnv("DB_NAME", "gym_portal")
	sslmode := GetEnv("DB_SSLMODE", "disable")
	timezone := GetEnv("DB_TIMEZONE", "UTC")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := MigrateModels(db); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	DB = db
}

// MigrateModels applies the schema for every gym entity. The unique index on
// CustomerProfile.UserID is what makes profile provisioning idempotent under
// concurrent signups.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.CustomerProfile{},
		&models.DietPlan{},
		&models.WorkoutPlan{},
		&models.ProgressTracking{},
	)
}

// GetEnv reads an environment variable or returns the provided default
func GetEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

// MediaDir is where uploaded progress photos land.
func MediaDir() string {
	return GetEnv("MEDIA_DIR", "./media")
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}
