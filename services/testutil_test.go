package services

import (
	"testing"

	"github.com/balu-16/smartHome-backend/config"
	"github.com/balu-16/smartHome-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with all tables migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
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
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return config.GetConfig()
}
