package services

import (
	"errors"

	"github.com/balu-16/smartHome-backend/config"
	"github.com/balu-16/smartHome-backend/models"

	"gorm.io/gorm"
)

// ErrSwitchNotFound is returned when no switch matches the lookup
var ErrSwitchNotFound = errors.New("switch not found")

// InterfaceSwitchService defines the switch service interface
type InterfaceSwitchService interface {
	GetSwitchesByDevice(deviceID uint) ([]models.Switch, error)
	GetSwitchesByRoom(roomID uint) ([]models.Switch, error)
	GetSwitchesByHouse(houseID uint) ([]models.Switch, error)
	GetSwitchesByUser(userID uint) ([]models.Switch, error)
	GetSwitchByID(id uint) (*models.Switch, error)
	CreateSwitch(sw *models.Switch) error
	UpdateSwitch(id uint, updates map[string]interface{}) (*models.Switch, error)
	ToggleSwitch(id uint) (*models.Switch, error)
	DeleteSwitch(id uint) error
}

// SwitchService owns the switches table
type SwitchService struct {
	DB     *gorm.DB
	Config *config.Config
	MQTT   InterfaceMQTTService
}

// NewSwitchService creates a new switch service
func NewSwitchService(db *gorm.DB, cfg *config.Config, mqttService InterfaceMQTTService) InterfaceSwitchService {
	return &SwitchService{DB: db, Config: cfg, MQTT: mqttService}
}

// GetSwitchesByDevice returns a device's switches in creation order
func (s *SwitchService) GetSwitchesByDevice(deviceID uint) ([]models.Switch, error) {
	var switches []models.Switch
	return switches, s.DB.Where("device_id = ?", deviceID).Order("created_at ASC").Find(&switches).Error
}

// GetSwitchesByRoom returns a room's switches, newest first
func (s *SwitchService) GetSwitchesByRoom(roomID uint) ([]models.Switch, error) {
	var switches []models.Switch
	return switches, s.DB.Where("room_id = ?", roomID).Order("created_at DESC").Find(&switches).Error
}

// GetSwitchesByHouse returns a house's switches, newest first
func (s *SwitchService) GetSwitchesByHouse(houseID uint) ([]models.Switch, error) {
	var switches []models.Switch
	return switches, s.DB.Where("house_id = ?", houseID).Order("created_at DESC").Find(&switches).Error
}

// GetSwitchesByUser returns a customer's switches, newest first
func (s *SwitchService) GetSwitchesByUser(userID uint) ([]models.Switch, error) {
	var switches []models.Switch
	return switches, s.DB.Where("allocated_to_customer_id = ?", userID).Order("created_at DESC").Find(&switches).Error
}

// GetSwitchByID returns a switch by primary key
func (s *SwitchService) GetSwitchByID(id uint) (*models.Switch, error) {
	var sw models.Switch
	if err := s.DB.First(&sw, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwitchNotFound
		}
		return nil, err
	}
	return &sw, nil
}

// CreateSwitch inserts a new switch row
func (s *SwitchService) CreateSwitch(sw *models.Switch) error {
	return s.DB.Create(sw).Error
}

// UpdateSwitch applies a partial update
func (s *SwitchService) UpdateSwitch(id uint, updates map[string]interface{}) (*models.Switch, error) {
	result := s.DB.Model(&models.Switch{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrSwitchNotFound
	}
	return s.GetSwitchByID(id)
}

// ToggleSwitch flips switch_is_active, mirrors the flag on the device row
// and pushes the new state to the device over MQTT
func (s *SwitchService) ToggleSwitch(id uint) (*models.Switch, error) {
	sw, err := s.GetSwitchByID(id)
	if err != nil {
		return nil, err
	}

	newState := !sw.SwitchIsActive
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Switch{}).Where("id = ?", id).
			Update("switch_is_active", newState).Error; err != nil {
			return err
		}
		return tx.Model(&models.Device{}).Where("id = ?", sw.DeviceID).
			Update("switch_is_active", newState).Error
	})
	if err != nil {
		return nil, err
	}

	if s.MQTT != nil {
		if err := s.MQTT.PublishSwitchState(sw.DeviceCode, newState); err != nil {
			config.Warning("Switch %d toggled but MQTT publish failed: %v", id, err)
		}
	}

	return s.GetSwitchByID(id)
}

// DeleteSwitch removes a switch row
func (s *SwitchService) DeleteSwitch(id uint) error {
	result := s.DB.Delete(&models.Switch{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSwitchNotFound
	}
	return nil
}
