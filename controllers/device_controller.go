package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/balu-16/smartHome-backend/models"
	"github.com/balu-16/smartHome-backend/services"
	"github.com/balu-16/smartHome-backend/services/container"
	"github.com/balu-16/smartHome-backend/utils"

	"github.com/gin-gonic/gin"
)

// InterfaceDeviceController defines the device controller interface
type InterfaceDeviceController interface {
	GetDevices()
	GetDevice()
	GetDeviceByCode()
	GetDevicesByUser()
	GetDevicesByRoom()
	GetSharedDevices()
	CreateDevice()
	UpdateDevice()
	DeleteDevice()
	AllocateDevice()
	UnassignDevice()
	ShareDevice()
	UnshareDevice()
}

// DeviceController handles device requests
type DeviceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDeviceController creates a new device controller
func NewDeviceController(ctx *gin.Context, container *container.ServiceContainer) *DeviceController {
	return &DeviceController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateDeviceRequest registers a device in inventory
type CreateDeviceRequest struct {
	DeviceCode      string `json:"device_code" binding:"required" example:"DEV-1001"`
	DeviceM2MNumber string `json:"device_m2m_number" example:"8991000012345"`
	DeviceName      string `json:"device_name" example:"Living Room Light"`
	QRCode          string `json:"qr_code"`
}

// AllocateDeviceRequest assigns a device to a customer
type AllocateDeviceRequest struct {
	DeviceCode       string `json:"device_code" binding:"required" example:"DEV-1001"`
	UserID           uint   `json:"user_id" binding:"required" example:"1"`
	DeviceName       string `json:"device_name" example:"Living Room Light"`
	RoomID           uint   `json:"room_id" binding:"required" example:"1"`
	HouseID          uint   `json:"house_id" binding:"required" example:"1"`
	ElectronicObject string `json:"electronic_object" example:"light"`
	DeviceIcon       string `json:"device_icon" example:"bulb"`
}

// ShareDeviceRequest shares a device with another user by phone
type ShareDeviceRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required" example:"9876543210"`
}

// HandleDeviceFunc returns a gin handler dispatching to the device controller
func HandleDeviceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDeviceController(ctx, container)

		switch method {
		case "getDevices":
			controller.GetDevices()
		case "getDevice":
			controller.GetDevice()
		case "getDeviceByCode":
			controller.GetDeviceByCode()
		case "getDevicesByUser":
			controller.GetDevicesByUser()
		case "getDevicesByRoom":
			controller.GetDevicesByRoom()
		case "getSharedDevices":
			controller.GetSharedDevices()
		case "createDevice":
			controller.CreateDevice()
		case "updateDevice":
			controller.UpdateDevice()
		case "deleteDevice":
			controller.DeleteDevice()
		case "allocateDevice":
			controller.AllocateDevice()
		case "unassignDevice":
			controller.UnassignDevice()
		case "shareDevice":
			controller.ShareDevice()
		case "unshareDevice":
			controller.UnshareDevice()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid method",
			})
		}
	}
}

func (c *DeviceController) deviceService() services.InterfaceDeviceService {
	return c.Container.GetService("device").(services.InterfaceDeviceService)
}

func (c *DeviceController) paramID(name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Ctx.Param(name), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid " + name,
		})
		return 0, false
	}
	return uint(id), true
}

// GetDevices lists all devices
// @Summary      List Devices
// @Tags         Devices
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /devices [get]
func (c *DeviceController) GetDevices() {
	devices, err := c.deviceService().GetAllDevices()
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch devices",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"devices": devices,
	})
}

// GetDevice returns a single device by id
// @Summary      Get Device
// @Tags         Devices
// @Produce      json
// @Param        id path int true "Device ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /devices/{id} [get]
func (c *DeviceController) GetDevice() {
	id, ok := c.paramID("id")
	if !ok {
		return
	}

	device, err := c.deviceService().GetDeviceByID(id)
	if err != nil {
		c.respondDeviceError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"device":  device,
	})
}

// GetDeviceByCode returns a single device by device_code
// @Summary      Get Device By Code
// @Tags         Devices
// @Produce      json
// @Param        code path string true "Device code"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /devices/code/{code} [get]
func (c *DeviceController) GetDeviceByCode() {
	device, err := c.deviceService().GetDeviceByCode(c.Ctx.Param("code"))
	if err != nil {
		c.respondDeviceError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"device":  device,
	})
}

// GetDevicesByUser lists devices allocated to a user
// @Summary      List Devices By User
// @Tags         Devices
// @Produce      json
// @Param        userId path int true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /devices/user/{userId} [get]
func (c *DeviceController) GetDevicesByUser() {
	userID, ok := c.paramID("userId")
	if !ok {
		return
	}

	devices, err := c.deviceService().GetDevicesByUser(userID)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch devices",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"devices": devices,
	})
}

// GetDevicesByRoom lists devices placed in a room
// @Summary      List Devices By Room
// @Tags         Devices
// @Produce      json
// @Param        roomId path int true "Room ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /devices/room/{roomId} [get]
func (c *DeviceController) GetDevicesByRoom() {
	roomID, ok := c.paramID("roomId")
	if !ok {
		return
	}

	devices, err := c.deviceService().GetDevicesByRoom(roomID)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch devices",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"devices": devices,
	})
}

// GetSharedDevices lists devices shared with a user
// @Summary      List Shared Devices
// @Tags         Devices
// @Produce      json
// @Param        userId path int true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /devices/shared-with/{userId} [get]
func (c *DeviceController) GetSharedDevices() {
	userID, ok := c.paramID("userId")
	if !ok {
		return
	}

	devices, err := c.deviceService().GetDevicesSharedWith(userID)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch shared devices",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"devices": devices,
	})
}

// CreateDevice registers a new device
// @Summary      Create Device
// @Tags         Devices
// @Accept       json
// @Produce      json
// @Param        request body CreateDeviceRequest true "Device"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /devices [post]
func (c *DeviceController) CreateDevice() {
	var req CreateDeviceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "device_code is required",
		})
		return
	}

	if existing, err := c.deviceService().GetDeviceByCode(req.DeviceCode); err == nil && existing != nil {
		c.Ctx.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "A device with this device_code already exists",
		})
		return
	}

	device := models.Device{
		DeviceCode:      req.DeviceCode,
		DeviceM2MNumber: req.DeviceM2MNumber,
		DeviceName:      req.DeviceName,
		QRCode:          req.QRCode,
		IsActive:        true,
	}
	if err := c.deviceService().CreateDevice(&device); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create device",
		})
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Device created successfully",
		"device":  device,
	})
}

// UpdateDevice applies partial updates to a device
// @Summary      Update Device
// @Tags         Devices
// @Accept       json
// @Produce      json
// @Param        id path int true "Device ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /devices/{id} [put]
func (c *DeviceController) UpdateDevice() {
	id, ok := c.paramID("id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil || len(updates) == 0 {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "No fields to update",
		})
		return
	}

	device, err := c.deviceService().UpdateDevice(id, updates)
	if err != nil {
		c.respondDeviceError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Device updated successfully",
		"device":  device,
	})
}

// DeleteDevice removes a device along with its switch and share rows
// @Summary      Delete Device
// @Tags         Devices
// @Produce      json
// @Param        id path int true "Device ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /devices/{id} [delete]
func (c *DeviceController) DeleteDevice() {
	id, ok := c.paramID("id")
	if !ok {
		return
	}

	if err := c.deviceService().DeleteDevice(id); err != nil {
		c.respondDeviceError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Device deleted successfully",
	})
}

// AllocateDevice assigns a device to a customer and upserts its switch
// @Summary      Allocate Device
// @Tags         Devices
// @Accept       json
// @Produce      json
// @Param        request body AllocateDeviceRequest true "Allocation"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /devices/allocate [post]
func (c *DeviceController) AllocateDevice() {
	var req AllocateDeviceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "device_code, user_id, room_id and house_id are required",
		})
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	identity, err := userService.ResolveByID(req.UserID)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to look up user",
		})
		return
	}
	if identity == nil {
		c.Ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "User not found",
		})
		return
	}

	device, sw, err := c.deviceService().AllocateDevice(services.AllocateDeviceInput{
		DeviceCode:       req.DeviceCode,
		UserID:           req.UserID,
		UserName:         identity.FullName,
		DeviceName:       req.DeviceName,
		RoomID:           req.RoomID,
		HouseID:          req.HouseID,
		ElectronicObject: req.ElectronicObject,
		DeviceIcon:       req.DeviceIcon,
	})
	if err != nil {
		if errors.Is(err, services.ErrDeviceAllocated) {
			c.Ctx.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   "Device is already allocated",
			})
			return
		}
		c.respondDeviceError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Device allocated successfully",
		"device":  device,
		"switch":  sw,
	})
}

// UnassignDevice clears a device's allocation, keeping the row
// @Summary      Unassign Device
// @Tags         Devices
// @Produce      json
// @Param        id path int true "Device ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /devices/{id}/unassign [post]
func (c *DeviceController) UnassignDevice() {
	id, ok := c.paramID("id")
	if !ok {
		return
	}

	device, err := c.deviceService().UnassignDevice(id)
	if err != nil {
		c.respondDeviceError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Device unassigned successfully",
		"device":  device,
	})
}

// ShareDevice grants another user access to a device, resolving the
// target by phone number
// @Summary      Share Device
// @Tags         Devices
// @Accept       json
// @Produce      json
// @Param        id path int true "Device ID"
// @Param        request body ShareDeviceRequest true "Target user phone"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /devices/{id}/share [post]
func (c *DeviceController) ShareDevice() {
	id, ok := c.paramID("id")
	if !ok {
		return
	}

	var req ShareDeviceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "phone_number is required",
		})
		return
	}

	phoneNumber := utils.FormatPhoneNumber(req.PhoneNumber)
	if !utils.ValidatePhoneNumber(phoneNumber) {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid phone number format. Please enter a valid 10-digit Indian mobile number",
		})
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	identity, err := userService.FindByPhone(phoneNumber)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to look up user",
		})
		return
	}
	if identity == nil {
		c.Ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "No user found with this phone number",
		})
		return
	}

	share, err := c.deviceService().ShareDevice(id, identity.ID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyShared) {
			c.Ctx.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   "Device is already shared with this user",
			})
			return
		}
		c.respondDeviceError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Device shared successfully",
		"share":   share,
	})
}

// UnshareDevice revokes a user's access to a shared device
// @Summary      Unshare Device
// @Tags         Devices
// @Produce      json
// @Param        id path int true "Device ID"
// @Param        userId path int true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /devices/{id}/share/{userId} [delete]
func (c *DeviceController) UnshareDevice() {
	id, ok := c.paramID("id")
	if !ok {
		return
	}
	userID, ok := c.paramID("userId")
	if !ok {
		return
	}

	if err := c.deviceService().UnshareDevice(id, userID); err != nil {
		if errors.Is(err, services.ErrShareNotFound) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Share not found",
			})
			return
		}
		c.respondDeviceError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Device unshared successfully",
	})
}

func (c *DeviceController) respondDeviceError(err error) {
	if errors.Is(err, services.ErrDeviceNotFound) {
		c.Ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Device not found",
		})
		return
	}
	c.Ctx.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "Device operation failed",
	})
}
