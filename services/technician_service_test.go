package services

import (
	"errors"
	"testing"

	"github.com/balu-16/smartHome-backend/models"
)

func TestCreateTechnicianRejectsDuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	svc := NewTechnicianService(db, testConfig())

	first := models.Technician{PhoneNumber: "9876543210", FullName: "Suresh Patil", IsActive: true}
	if err := svc.CreateTechnician(&first); err != nil {
		t.Fatalf("CreateTechnician: %v", err)
	}

	duplicate := models.Technician{PhoneNumber: "9876543210", FullName: "Someone Else", IsActive: true}
	if err := svc.CreateTechnician(&duplicate); !errors.Is(err, ErrTechnicianExists) {
		t.Errorf("duplicate create: got %v, want ErrTechnicianExists", err)
	}
}

func TestToggleActiveFlipsFlag(t *testing.T) {
	db := newTestDB(t)
	svc := NewTechnicianService(db, testConfig())

	technician := models.Technician{PhoneNumber: "9876543210", FullName: "Suresh Patil", IsActive: true}
	if err := svc.CreateTechnician(&technician); err != nil {
		t.Fatalf("CreateTechnician: %v", err)
	}

	updated, err := svc.ToggleActive(technician.ID)
	if err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}
	if updated.IsActive {
		t.Error("technician still active after toggle")
	}

	updated, err = svc.ToggleActive(technician.ID)
	if err != nil {
		t.Fatalf("second ToggleActive: %v", err)
	}
	if !updated.IsActive {
		t.Error("technician not re-activated")
	}
}

func TestTechnicianNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewTechnicianService(db, testConfig())

	if _, err := svc.GetTechnicianByID(42); !errors.Is(err, ErrTechnicianNotFound) {
		t.Errorf("GetTechnicianByID(42): got %v, want ErrTechnicianNotFound", err)
	}
	if err := svc.DeleteTechnician(42); !errors.Is(err, ErrTechnicianNotFound) {
		t.Errorf("DeleteTechnician(42): got %v, want ErrTechnicianNotFound", err)
	}
}
