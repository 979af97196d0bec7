package services

import (
	"errors"

	"github.com/balu-16/smartHome-backend/config"
	"github.com/balu-16/smartHome-backend/models"

	"gorm.io/gorm"
)

// ErrHouseNotFound is returned when no house matches the lookup
var ErrHouseNotFound = errors.New("house not found")

// InterfaceHouseService defines the house service interface
type InterfaceHouseService interface {
	GetHousesByUser(userID uint) ([]models.House, error)
	GetHouseByID(id uint) (*models.House, error)
	CreateHouse(house *models.House) error
	UpdateHouse(id uint, houseName string) (*models.House, error)
	DeleteHouse(id uint) error
}

// HouseService owns the houses table
type HouseService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewHouseService creates a new house service
func NewHouseService(db *gorm.DB, cfg *config.Config) InterfaceHouseService {
	return &HouseService{DB: db, Config: cfg}
}

// GetHousesByUser returns a user's houses in creation order
func (s *HouseService) GetHousesByUser(userID uint) ([]models.House, error) {
	var houses []models.House
	return houses, s.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&houses).Error
}

// GetHouseByID returns a house by primary key
func (s *HouseService) GetHouseByID(id uint) (*models.House, error) {
	var house models.House
	if err := s.DB.First(&house, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}
	return &house, nil
}

// CreateHouse inserts a new house
func (s *HouseService) CreateHouse(house *models.House) error {
	return s.DB.Create(house).Error
}

// UpdateHouse renames a house
func (s *HouseService) UpdateHouse(id uint, houseName string) (*models.House, error) {
	result := s.DB.Model(&models.House{}).Where("id = ?", id).Update("house_name", houseName)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrHouseNotFound
	}
	return s.GetHouseByID(id)
}

// DeleteHouse removes a house and cascades room deletion. Devices keep
// their room_id; the cascade deliberately stops at rooms.
func (s *HouseService) DeleteHouse(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("house_id = ?", id).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.House{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrHouseNotFound
		}
		config.Info("House %d deleted with its rooms", id)
		return nil
	})
}
