package services

import (
	"errors"
	"time"

	"github.com/balu-16/smartHome-backend/config"
	"github.com/balu-16/smartHome-backend/models"
	"github.com/balu-16/smartHome-backend/utils"

	"gorm.io/gorm"
)

var (
	// ErrDeviceIdentityMismatch is returned when device_code and m2m number
	// do not jointly match one device row
	ErrDeviceIdentityMismatch = errors.New("device not found or device_code and device_m2m_number do not belong to the same device")
	// ErrNoGpsFix is returned when a device has no stored location yet
	ErrNoGpsFix = errors.New("GPS coordinates not available")
)

// GpsFix is the cached last-known location of a device
type GpsFix struct {
	DeviceCode string  `json:"device_code"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Timestamp  string  `json:"timestamp"`
}

// InterfaceGpsService defines the GPS service interface
type InterfaceGpsService interface {
	FindDeviceByCodeAndM2M(deviceCode, m2mNumber string) (*models.Device, error)
	InsertGpsData(data *models.GpsData) error
	GetLatestFix(deviceCode string) (*models.GpsData, error)
	GetGpsHistory(deviceCode string) ([]models.GpsData, error)
	GetGpsDataForDevice(deviceCode string) ([]models.GpsData, error)
	ClearGpsData(deviceCode string) (int64, error)
	SetDeviceActive(deviceCode string, isActive bool) (*models.Device, error)
}

// GpsService owns the gps_data table. Latest-fix reads go through Redis
// when available and fall back to the append-only log.
type GpsService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService
	MQTT   InterfaceMQTTService
}

// NewGpsService creates a new GPS service. redisService and mqttService
// may be nil.
func NewGpsService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService, mqttService InterfaceMQTTService) InterfaceGpsService {
	return &GpsService{DB: db, Config: cfg, Redis: redisService, MQTT: mqttService}
}

// FindDeviceByCodeAndM2M requires both identifiers to match the same row
func (s *GpsService) FindDeviceByCodeAndM2M(deviceCode, m2mNumber string) (*models.Device, error) {
	var device models.Device
	err := s.DB.
		Where("device_code = ? AND device_m2m_number = ?", deviceCode, m2mNumber).
		First(&device).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceIdentityMismatch
		}
		return nil, err
	}
	return &device, nil
}

// InsertGpsData appends a ping and refreshes the per-device cache
func (s *GpsService) InsertGpsData(data *models.GpsData) error {
	if data.Timestamp.IsZero() {
		data.Timestamp = utils.NowIST()
	}

	if err := s.DB.Create(data).Error; err != nil {
		return err
	}

	if s.Redis != nil {
		fix := GpsFix{
			DeviceCode: data.DeviceCode,
			Latitude:   data.Latitude,
			Longitude:  data.Longitude,
			Timestamp:  data.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		}
		if err := s.Redis.CacheDeviceLocation(data.DeviceCode, fix); err != nil {
			config.Warning("Failed to cache GPS fix for %s: %v", data.DeviceCode, err)
		}
	}

	return nil
}

// GetLatestFix returns the most recent ping for a device. The Redis
// cache is consulted first; the append-only log is the fallback.
func (s *GpsService) GetLatestFix(deviceCode string) (*models.GpsData, error) {
	if s.Redis != nil {
		var fix GpsFix
		if err := s.Redis.GetDeviceLocation(deviceCode, &fix); err == nil {
			ts, perr := time.ParseInLocation("2006-01-02T15:04:05Z07:00", fix.Timestamp, utils.IST)
			if perr == nil {
				return &models.GpsData{
					DeviceCode: fix.DeviceCode,
					Latitude:   fix.Latitude,
					Longitude:  fix.Longitude,
					Timestamp:  ts,
				}, nil
			}
		}
	}

	var record models.GpsData
	err := s.DB.
		Where("device_code = ?", deviceCode).
		Order("timestamp DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoGpsFix
		}
		return nil, err
	}
	return &record, nil
}

// GetGpsHistory returns all pings in chronological (ascending) order
func (s *GpsService) GetGpsHistory(deviceCode string) ([]models.GpsData, error) {
	var history []models.GpsData
	err := s.DB.
		Where("device_code = ?", deviceCode).
		Order("timestamp ASC").
		Find(&history).Error
	return history, err
}

// GetGpsDataForDevice returns all pings in chronological order
func (s *GpsService) GetGpsDataForDevice(deviceCode string) ([]models.GpsData, error) {
	return s.GetGpsHistory(deviceCode)
}

// ClearGpsData bulk-deletes a device's pings and returns the count
func (s *GpsService) ClearGpsData(deviceCode string) (int64, error) {
	result := s.DB.Where("device_code = ?", deviceCode).Delete(&models.GpsData{})
	if result.Error != nil {
		return 0, result.Error
	}

	if s.Redis != nil {
		_ = s.Redis.Delete("gps:latest:" + deviceCode)
	}

	config.Info("Cleared %d GPS points for device %s", result.RowsAffected, deviceCode)
	return result.RowsAffected, nil
}

// SetDeviceActive flips the tracking flag and notifies the device
func (s *GpsService) SetDeviceActive(deviceCode string, isActive bool) (*models.Device, error) {
	result := s.DB.Model(&models.Device{}).
		Where("device_code = ?", deviceCode).
		Update("is_active", isActive)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrDeviceNotFound
	}

	if s.MQTT != nil {
		if err := s.MQTT.PublishTrackingState(deviceCode, isActive); err != nil {
			config.Warning("Tracking state for %s changed but MQTT publish failed: %v", deviceCode, err)
		}
	}

	var device models.Device
	if err := s.DB.Where("device_code = ?", deviceCode).First(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}
