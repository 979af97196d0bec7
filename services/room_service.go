package services

import (
	"errors"

	"github.com/balu-16/smartHome-backend/config"
	"github.com/balu-16/smartHome-backend/models"

	"gorm.io/gorm"
)

// ErrRoomNotFound is returned when no room matches the lookup
var ErrRoomNotFound = errors.New("room not found")

// InterfaceRoomService defines the room service interface
type InterfaceRoomService interface {
	GetRoomsByHouse(houseID uint) ([]models.Room, error)
	GetRoomByID(id uint) (*models.Room, error)
	CreateRoom(room *models.Room) error
	UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error)
	DeleteRoom(id uint) error
}

// RoomService owns the rooms table
type RoomService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRoomService creates a new room service
func NewRoomService(db *gorm.DB, cfg *config.Config) InterfaceRoomService {
	return &RoomService{DB: db, Config: cfg}
}

// GetRoomsByHouse returns a house's rooms in creation order
func (s *RoomService) GetRoomsByHouse(houseID uint) ([]models.Room, error) {
	var rooms []models.Room
	return rooms, s.DB.Where("house_id = ?", houseID).Order("created_at ASC").Find(&rooms).Error
}

// GetRoomByID returns a room by primary key
func (s *RoomService) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// CreateRoom inserts a new room
func (s *RoomService) CreateRoom(room *models.Room) error {
	return s.DB.Create(room).Error
}

// UpdateRoom applies a partial update
func (s *RoomService) UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error) {
	result := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRoomNotFound
	}
	return s.GetRoomByID(id)
}

// DeleteRoom removes a room. Devices referencing it are not touched.
func (s *RoomService) DeleteRoom(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
