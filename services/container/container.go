package container

import (
	"sync"

	"github.com/balu-16/smartHome-backend/config"
	"github.com/balu-16/smartHome-backend/services"

	"gorm.io/gorm"
)

// ServiceContainer wires every service once and hands them out by name
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	mutex  sync.RWMutex

	jwtService        services.InterfaceJWTService
	smsService        services.InterfaceSMSService
	otpService        services.InterfaceOTPService
	userService       services.InterfaceUserService
	redisService      services.InterfaceRedisService
	mqttService       services.InterfaceMQTTService
	deviceService     services.InterfaceDeviceService
	houseService      services.InterfaceHouseService
	roomService       services.InterfaceRoomService
	switchService     services.InterfaceSwitchService
	technicianService services.InterfaceTechnicianService
	gpsService        services.InterfaceGpsService
}

// NewServiceContainer creates a container with all services initialized.
// redisEnabled controls whether caching and OTP throttling are wired in.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisEnabled bool) *ServiceContainer {
	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices(redisEnabled)
	return container
}

func (c *ServiceContainer) initializeServices(redisEnabled bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if redisEnabled {
		c.redisService = services.NewRedisService(c.config)
		if err := c.redisService.Ping(); err != nil {
			config.Warning("Redis unreachable, continuing without cache: %v", err)
			c.redisService = nil
		}
	}

	c.mqttService = services.NewMQTTService(c.config)
	if err := c.mqttService.Connect(); err != nil {
		config.Warning("MQTT broker unreachable, device notifications disabled: %v", err)
	}

	c.jwtService = services.NewJWTService(c.config)
	c.smsService = services.NewSMSService(c.config)
	c.otpService = services.NewOTPService(c.db, c.config)
	c.userService = services.NewUserService(c.db, c.config)
	c.deviceService = services.NewDeviceService(c.db, c.config)
	c.houseService = services.NewHouseService(c.db, c.config)
	c.roomService = services.NewRoomService(c.db, c.config)
	c.switchService = services.NewSwitchService(c.db, c.config, c.mqttService)
	c.technicianService = services.NewTechnicianService(c.db, c.config)
	c.gpsService = services.NewGpsService(c.db, c.config, c.redisService, c.mqttService)
}

// GetService returns a service instance by name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	switch name {
	case "jwt":
		return c.jwtService
	case "sms":
		return c.smsService
	case "otp":
		return c.otpService
	case "user":
		return c.userService
	case "redis":
		return c.redisService
	case "mqtt":
		return c.mqttService
	case "device":
		return c.deviceService
	case "house":
		return c.houseService
	case "room":
		return c.roomService
	case "switch":
		return c.switchService
	case "technician":
		return c.technicianService
	case "gps":
		return c.gpsService
	default:
		return nil
	}
}

// GetDB returns the database connection
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.db
}

// GetConfig returns the application configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.config
}
