package services

import (
	"errors"

	"github.com/balu-16/smartHome-backend/config"
	"github.com/balu-16/smartHome-backend/models"

	"gorm.io/gorm"
)

var (
	// ErrTechnicianNotFound is returned when no technician matches the lookup
	ErrTechnicianNotFound = errors.New("technician not found")
	// ErrTechnicianExists rejects a duplicate phone number
	ErrTechnicianExists = errors.New("technician with this phone number already exists")
)

// InterfaceTechnicianService defines the technician service interface
type InterfaceTechnicianService interface {
	GetAllTechnicians() ([]models.Technician, error)
	GetTechnicianByID(id uint) (*models.Technician, error)
	CreateTechnician(technician *models.Technician) error
	UpdateTechnician(id uint, updates map[string]interface{}) (*models.Technician, error)
	ToggleActive(id uint) (*models.Technician, error)
	DeleteTechnician(id uint) error
}

// TechnicianService owns the technicians table
type TechnicianService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTechnicianService creates a new technician service
func NewTechnicianService(db *gorm.DB, cfg *config.Config) InterfaceTechnicianService {
	return &TechnicianService{DB: db, Config: cfg}
}

// GetAllTechnicians returns all technicians, newest first
func (s *TechnicianService) GetAllTechnicians() ([]models.Technician, error) {
	var technicians []models.Technician
	return technicians, s.DB.Order("created_at DESC").Find(&technicians).Error
}

// GetTechnicianByID returns a technician by primary key
func (s *TechnicianService) GetTechnicianByID(id uint) (*models.Technician, error) {
	var technician models.Technician
	if err := s.DB.First(&technician, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTechnicianNotFound
		}
		return nil, err
	}
	return &technician, nil
}

// CreateTechnician inserts a technician after a phone uniqueness check
func (s *TechnicianService) CreateTechnician(technician *models.Technician) error {
	var count int64
	err := s.DB.Model(&models.Technician{}).
		Where("phone_number = ?", technician.PhoneNumber).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrTechnicianExists
	}

	if err := s.DB.Create(technician).Error; err != nil {
		return err
	}

	config.Info("Technician created: %s", technician.FullName)
	return nil
}

// UpdateTechnician applies a partial update
func (s *TechnicianService) UpdateTechnician(id uint, updates map[string]interface{}) (*models.Technician, error) {
	result := s.DB.Model(&models.Technician{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTechnicianNotFound
	}
	return s.GetTechnicianByID(id)
}

// ToggleActive flips the is_active flag
func (s *TechnicianService) ToggleActive(id uint) (*models.Technician, error) {
	technician, err := s.GetTechnicianByID(id)
	if err != nil {
		return nil, err
	}
	return s.UpdateTechnician(id, map[string]interface{}{"is_active": !technician.IsActive})
}

// DeleteTechnician removes a technician
func (s *TechnicianService) DeleteTechnician(id uint) error {
	result := s.DB.Delete(&models.Technician{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTechnicianNotFound
	}
	return nil
}
