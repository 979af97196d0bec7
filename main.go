// @title           SmartHome Backend API
// @version         1.0
// @description     Phone-OTP authentication and smart home device management service
// @host      localhost:3001
// @BasePath  /
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/balu-16/smartHome-backend/config"
	"github.com/balu-16/smartHome-backend/models"
	"github.com/balu-16/smartHome-backend/routes"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("Failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		// Environment variables may come from the process environment instead
		config.Warning("No .env file loaded: %v", err)
	} else {
		config.Info(".env file loaded")
	}

	cfg := config.GetConfig()

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := autoMigrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	ensureSuperAdminExists(db, cfg)

	// Redis is opt-in; the container degrades to DB-only when the ping fails
	redisEnabled := os.Getenv("REDIS_HOST") != ""
	r := routes.SetupRouter(db, cfg, redisEnabled)

	port := cfg.ServerPort
	if port == "" {
		port = "3001"
	}

	config.Info("Server listening on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		config.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// initDB opens the MySQL connection
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// autoMigrate creates missing tables and columns, never drops
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.SuperAdmin{},
		&models.Admin{},
		&models.Technician{},
		&models.Customer{},
		&models.OtpVerification{},
		&models.Device{},
		&models.DeviceShared{},
		&models.Switch{},
		&models.House{},
		&models.Room{},
		&models.GpsData{},
		&models.SuperAdminLoginLog{},
		&models.AdminLoginLog{},
		&models.TechnicianLoginLog{},
		&models.UserLoginLog{},
	)
}

// ensureSuperAdminExists seeds the bootstrap account so the very first
// login has somewhere to land
func ensureSuperAdminExists(db *gorm.DB, cfg *config.Config) {
	if cfg.DefaultSuperAdminPhone == "" {
		return
	}

	var count int64
	if err := db.Model(&models.SuperAdmin{}).Count(&count).Error; err != nil {
		config.Error("Failed to check super admin table: %v", err)
		return
	}
	if count > 0 {
		return
	}

	superAdmin := models.SuperAdmin{
		PhoneNumber: cfg.DefaultSuperAdminPhone,
		FullName:    cfg.DefaultSuperAdminName,
	}
	if err := db.Create(&superAdmin).Error; err != nil {
		config.Error("Failed to seed super admin account: %v", err)
		return
	}
	config.Info("Seeded super admin account %s", cfg.DefaultSuperAdminPhone)
}
