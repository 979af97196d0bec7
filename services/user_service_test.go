package services

import (
	"testing"

	"github.com/balu-16/smartHome-backend/models"
)

func TestFindByPhonePrecedence(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testConfig())

	// same number in every table; precedence decides
	phone := "9876543210"
	if err := db.Create(&models.Customer{PhoneNumber: phone, FullName: "As Customer"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&models.Technician{PhoneNumber: phone, FullName: "As Technician", IsActive: true}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	identity, err := svc.FindByPhone(phone)
	if err != nil {
		t.Fatalf("FindByPhone: %v", err)
	}
	if identity.UserType != models.UserTypeTechnician {
		t.Errorf("UserType = %s, want technician over customer", identity.UserType)
	}

	if err := db.Create(&models.Admin{PhoneNumber: phone, FullName: "As Admin"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	identity, err = svc.FindByPhone(phone)
	if err != nil {
		t.Fatalf("FindByPhone: %v", err)
	}
	if identity.UserType != models.UserTypeAdmin {
		t.Errorf("UserType = %s, want admin over technician", identity.UserType)
	}

	if err := db.Create(&models.SuperAdmin{PhoneNumber: phone, FullName: "As SuperAdmin"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	identity, err = svc.FindByPhone(phone)
	if err != nil {
		t.Fatalf("FindByPhone: %v", err)
	}
	if identity.UserType != models.UserTypeSuperAdmin {
		t.Errorf("UserType = %s, want superadmin first", identity.UserType)
	}
}

func TestFindByPhoneUnknownIsNilNil(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testConfig())

	identity, err := svc.FindByPhone("9000000000")
	if err != nil {
		t.Fatalf("FindByPhone: %v", err)
	}
	if identity != nil {
		t.Errorf("identity = %+v, want nil for unknown number", identity)
	}
}

func TestCreateCustomerAndUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testConfig())

	identity, err := svc.CreateCustomer("9876543210", "Ravi Kumar", "ravi@example.com")
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}
	if identity.UserType != models.UserTypeCustomer {
		t.Errorf("UserType = %s, want customer", identity.UserType)
	}

	updated, err := svc.UpdateProfile(identity.ID, "Ravi K", models.UserTypeCustomer)
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated == nil || updated.FullName != "Ravi K" {
		t.Errorf("updated = %+v, want FullName Ravi K", updated)
	}

	// unknown id reports absence, not an error
	missing, err := svc.UpdateProfile(9999, "Nobody", models.UserTypeCustomer)
	if err != nil {
		t.Fatalf("UpdateProfile(9999): %v", err)
	}
	if missing != nil {
		t.Errorf("missing = %+v, want nil", missing)
	}
}

func TestLogLoginWritesRoleTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testConfig())

	admin := models.Admin{PhoneNumber: "9876543210", FullName: "Site Admin"}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	identity := &Identity{ID: admin.ID, PhoneNumber: admin.PhoneNumber, UserType: models.UserTypeAdmin}
	meta := models.LoginMetadata{IPAddress: "10.0.0.1", UserAgent: "test-agent"}
	if err := svc.LogLogin(identity, meta); err != nil {
		t.Fatalf("LogLogin: %v", err)
	}

	var logs []models.AdminLoginLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(logs) != 1 || logs[0].AdminID != admin.ID || logs[0].IPAddress != "10.0.0.1" {
		t.Errorf("logs = %+v", logs)
	}

	var userLogCount int64
	db.Model(&models.UserLoginLog{}).Count(&userLogCount)
	if userLogCount != 0 {
		t.Errorf("admin login leaked into the customer log table")
	}
}
