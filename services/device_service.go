package services

import (
	"errors"

	"github.com/balu-16/smartHome-backend/config"
	"github.com/balu-16/smartHome-backend/models"
	"github.com/balu-16/smartHome-backend/utils"

	"gorm.io/gorm"
)

var (
	// ErrDeviceNotFound is returned when no device matches the lookup
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDeviceAllocated rejects allocation of an already-allocated device
	ErrDeviceAllocated = errors.New("device is already allocated")
	// ErrAlreadyShared rejects duplicate share rows
	ErrAlreadyShared = errors.New("device is already shared with this user")
	// ErrShareNotFound is returned when no share row matches
	ErrShareNotFound = errors.New("share record not found")
)

// AllocateDeviceInput carries the multi-step allocation parameters
type AllocateDeviceInput struct {
	DeviceCode       string
	UserID           uint
	UserName         string
	DeviceName       string
	RoomID           uint
	HouseID          uint
	ElectronicObject string
	DeviceIcon       string
}

// DeviceWithSwitch pairs a device with its switch row, if any
type DeviceWithSwitch struct {
	models.Device
	Switch *models.Switch `json:"switch"`
}

// InterfaceDeviceService defines the device service interface
type InterfaceDeviceService interface {
	GetAllDevices() ([]models.Device, error)
	GetDeviceByID(id uint) (*models.Device, error)
	GetDeviceByCode(code string) (*models.Device, error)
	GetDevicesByUser(userID uint) ([]models.Device, error)
	GetDevicesByRoom(roomID uint) ([]models.Device, error)
	GetDevicesSharedWith(userID uint) ([]models.Device, error)
	CreateDevice(device *models.Device) error
	UpdateDevice(id uint, updates map[string]interface{}) (*models.Device, error)
	DeleteDevice(id uint) error
	AllocateDevice(input AllocateDeviceInput) (*models.Device, *models.Switch, error)
	UnassignDevice(id uint) (*models.Device, error)
	ShareDevice(deviceID, sharedWithUserID uint) (*models.DeviceShared, error)
	UnshareDevice(deviceID, sharedWithUserID uint) error
	GetSwitchesByRoom(roomID uint) ([]DeviceWithSwitch, error)
}

// DeviceService owns the devices, switches and device_shared_with tables
type DeviceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewDeviceService creates a new device service
func NewDeviceService(db *gorm.DB, cfg *config.Config) InterfaceDeviceService {
	return &DeviceService{DB: db, Config: cfg}
}

// GetAllDevices returns every device
func (s *DeviceService) GetAllDevices() ([]models.Device, error) {
	var devices []models.Device
	return devices, s.DB.Find(&devices).Error
}

// GetDeviceByID returns a device by primary key
func (s *DeviceService) GetDeviceByID(id uint) (*models.Device, error) {
	var device models.Device
	if err := s.DB.First(&device, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}
	return &device, nil
}

// GetDeviceByCode returns a device by its unique device code
func (s *DeviceService) GetDeviceByCode(code string) (*models.Device, error) {
	var device models.Device
	if err := s.DB.Where("device_code = ?", code).First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}
	return &device, nil
}

// GetDevicesByUser returns the devices allocated to a customer, newest
// allocation first
func (s *DeviceService) GetDevicesByUser(userID uint) ([]models.Device, error) {
	var devices []models.Device
	err := s.DB.Where("allocated_to_customer_id = ?", userID).
		Order("allocated_at DESC").
		Find(&devices).Error
	return devices, err
}

// GetDevicesByRoom returns the devices assigned to a room
func (s *DeviceService) GetDevicesByRoom(roomID uint) ([]models.Device, error) {
	var devices []models.Device
	return devices, s.DB.Where("room_id = ?", roomID).Find(&devices).Error
}

// GetDevicesSharedWith returns devices shared with a secondary user
func (s *DeviceService) GetDevicesSharedWith(userID uint) ([]models.Device, error) {
	var shares []models.DeviceShared
	if err := s.DB.Where("shared_with_user_id = ?", userID).Find(&shares).Error; err != nil {
		return nil, err
	}

	if len(shares) == 0 {
		return []models.Device{}, nil
	}

	deviceIDs := make([]uint, 0, len(shares))
	for _, share := range shares {
		deviceIDs = append(deviceIDs, share.DeviceID)
	}

	var devices []models.Device
	return devices, s.DB.Where("id IN ?", deviceIDs).Find(&devices).Error
}

// CreateDevice registers a new physical device
func (s *DeviceService) CreateDevice(device *models.Device) error {
	return s.DB.Create(device).Error
}

// UpdateDevice applies a partial update and returns the new state
func (s *DeviceService) UpdateDevice(id uint, updates map[string]interface{}) (*models.Device, error) {
	result := s.DB.Model(&models.Device{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrDeviceNotFound
	}
	return s.GetDeviceByID(id)
}

// DeleteDevice removes a device together with its switch and share rows
func (s *DeviceService) DeleteDevice(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("device_id = ?", id).Delete(&models.DeviceShared{}).Error; err != nil {
			return err
		}
		if err := tx.Where("device_id = ?", id).Delete(&models.Switch{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Device{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrDeviceNotFound
		}
		return nil
	})
}

// AllocateDevice assigns a device to a customer within a room/house and
// upserts the matching switch row with switch_is_active reset to false.
// An already-allocated device is rejected without touching its switch.
func (s *DeviceService) AllocateDevice(input AllocateDeviceInput) (*models.Device, *models.Switch, error) {
	device, err := s.GetDeviceByCode(input.DeviceCode)
	if err != nil {
		return nil, nil, err
	}

	if device.AllocatedToCustomerID != nil {
		return nil, nil, ErrDeviceAllocated
	}

	allocatedAt := utils.NowIST()
	deviceName := input.DeviceName
	if deviceName == "" {
		deviceName = device.DeviceName
	}

	var switchRecord models.Switch
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"allocated_to_customer_id":   input.UserID,
			"allocated_to_customer_name": input.UserName,
			"allocated_at":               allocatedAt,
			"device_name":                deviceName,
			"room_id":                    input.RoomID,
			"electronic_object":          input.ElectronicObject,
			"device_icon":                input.DeviceIcon,
		}
		if err := tx.Model(&models.Device{}).Where("id = ?", device.ID).Updates(updates).Error; err != nil {
			return err
		}

		fields := models.Switch{
			DeviceID:              device.ID,
			DeviceCode:            device.DeviceCode,
			DeviceName:            deviceName,
			DeviceM2MNumber:       device.DeviceM2MNumber,
			RoomID:                input.RoomID,
			HouseID:               input.HouseID,
			AllocatedToCustomerID: input.UserID,
			AllocatedToCustomer:   input.UserName,
			ElectronicObject:      input.ElectronicObject,
			DeviceIcon:            input.DeviceIcon,
			SwitchIsActive:        false,
			AllocatedAt:           &allocatedAt,
		}

		// One switch per device: update in place if a row already
		// references this device, insert otherwise
		var existing models.Switch
		err := tx.Where("device_id = ?", device.ID).First(&existing).Error
		switch {
		case err == nil:
			fields.ID = existing.ID
			fields.CreatedAt = existing.CreatedAt
			if err := tx.Save(&fields).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&fields).Error; err != nil {
				return err
			}
		default:
			return err
		}

		switchRecord = fields
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	updated, err := s.GetDeviceByID(device.ID)
	if err != nil {
		return nil, nil, err
	}

	config.Info("Device %s allocated to customer %d", input.DeviceCode, input.UserID)
	return updated, &switchRecord, nil
}

// UnassignDevice clears the allocation fields and deletes the switch and
// share rows, keeping the device row itself
func (s *DeviceService) UnassignDevice(id uint) (*models.Device, error) {
	if _, err := s.GetDeviceByID(id); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("device_id = ?", id).Delete(&models.DeviceShared{}).Error; err != nil {
			return err
		}
		if err := tx.Where("device_id = ?", id).Delete(&models.Switch{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Device{}).Where("id = ?", id).Updates(map[string]interface{}{
			"allocated_to_customer_id":   nil,
			"allocated_to_customer_name": nil,
			"allocated_at":               nil,
			"device_name":                nil,
			"room_id":                    nil,
			"electronic_object":          nil,
			"device_icon":                nil,
			"switch_is_active":           false,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetDeviceByID(id)
}

// ShareDevice inserts a share row after rejecting duplicates
func (s *DeviceService) ShareDevice(deviceID, sharedWithUserID uint) (*models.DeviceShared, error) {
	var count int64
	err := s.DB.Model(&models.DeviceShared{}).
		Where("device_id = ? AND shared_with_user_id = ?", deviceID, sharedWithUserID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyShared
	}

	share := &models.DeviceShared{
		DeviceID:         deviceID,
		SharedWithUserID: sharedWithUserID,
		SharedAt:         utils.NowIST(),
	}
	return share, s.DB.Create(share).Error
}

// UnshareDevice removes a share row
func (s *DeviceService) UnshareDevice(deviceID, sharedWithUserID uint) error {
	result := s.DB.
		Where("device_id = ? AND shared_with_user_id = ?", deviceID, sharedWithUserID).
		Delete(&models.DeviceShared{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrShareNotFound
	}
	return nil
}

// GetSwitchesByRoom returns each device in the room paired with its switch
func (s *DeviceService) GetSwitchesByRoom(roomID uint) ([]DeviceWithSwitch, error) {
	devices, err := s.GetDevicesByRoom(roomID)
	if err != nil {
		return nil, err
	}

	result := make([]DeviceWithSwitch, 0, len(devices))
	for _, device := range devices {
		var sw models.Switch
		err := s.DB.Where("device_id = ?", device.ID).First(&sw).Error
		switch {
		case err == nil:
			result = append(result, DeviceWithSwitch{Device: device, Switch: &sw})
		case errors.Is(err, gorm.ErrRecordNotFound):
			result = append(result, DeviceWithSwitch{Device: device, Switch: nil})
		default:
			return nil, err
		}
	}
	return result, nil
}
