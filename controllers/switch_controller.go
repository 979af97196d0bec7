package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/balu-16/smartHome-backend/models"
	"github.com/balu-16/smartHome-backend/services"
	"github.com/balu-16/smartHome-backend/services/container"

	"github.com/gin-gonic/gin"
)

// CreateSwitchRequest is the switch creation request body
type CreateSwitchRequest struct {
	DeviceID              uint   `json:"device_id" binding:"required" example:"1"`
	DeviceCode            string `json:"device_code" binding:"required" example:"DEV-1001"`
	DeviceName            string `json:"device_name" example:"Living Room Light"`
	RoomID                uint   `json:"room_id" binding:"required" example:"3"`
	HouseID               uint   `json:"house_id" binding:"required" example:"1"`
	AllocatedToCustomerID uint   `json:"allocated_to_customer_id" binding:"required" example:"7"`
	ElectronicObject      string `json:"electronic_object" example:"light"`
	DeviceIcon            string `json:"device_icon" example:"bulb"`
}

// InterfaceSwitchController defines the switch controller interface
type InterfaceSwitchController interface {
	GetSwitch()
	CreateSwitch()
	GetSwitchesByDevice()
	GetSwitchesByRoom()
	GetSwitchesByHouse()
	GetSwitchesByUser()
	ToggleSwitch()
	UpdateSwitch()
	DeleteSwitch()
}

// SwitchController handles switch requests
type SwitchController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSwitchController creates a new switch controller
func NewSwitchController(ctx *gin.Context, container *container.ServiceContainer) *SwitchController {
	return &SwitchController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleSwitchFunc returns a gin handler dispatching to the switch controller
func HandleSwitchFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSwitchController(ctx, container)

		switch method {
		case "getSwitch":
			controller.GetSwitch()
		case "createSwitch":
			controller.CreateSwitch()
		case "getSwitchesByDevice":
			controller.GetSwitchesByDevice()
		case "getSwitchesByRoom":
			controller.GetSwitchesByRoom()
		case "getSwitchesByHouse":
			controller.GetSwitchesByHouse()
		case "getSwitchesByUser":
			controller.GetSwitchesByUser()
		case "toggleSwitch":
			controller.ToggleSwitch()
		case "updateSwitch":
			controller.UpdateSwitch()
		case "deleteSwitch":
			controller.DeleteSwitch()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid method",
			})
		}
	}
}

func (c *SwitchController) switchService() services.InterfaceSwitchService {
	return c.Container.GetService("switch").(services.InterfaceSwitchService)
}

func (c *SwitchController) paramID(name string) (uint, bool) {
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

// GetSwitchesByDevice lists switches for a device
// @Summary      List Switches By Device
// @Tags         Switches
// @Produce      json
// @Param        deviceId path int true "Device ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /switches/device/{deviceId} [get]
func (c *SwitchController) GetSwitchesByDevice() {
	deviceID, ok := c.paramID("deviceId")
	if !ok {
		return
	}

	switches, err := c.switchService().GetSwitchesByDevice(deviceID)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch switches",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"switches": switches,
	})
}

// GetSwitchesByRoom lists switches placed in a room
// @Summary      List Switches By Room
// @Tags         Switches
// @Produce      json
// @Param        roomId path int true "Room ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /switches/room/{roomId} [get]
func (c *SwitchController) GetSwitchesByRoom() {
	roomID, ok := c.paramID("roomId")
	if !ok {
		return
	}

	switches, err := c.switchService().GetSwitchesByRoom(roomID)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch switches",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"switches": switches,
	})
}

// GetSwitchesByHouse lists switches across a house
// @Summary      List Switches By House
// @Tags         Switches
// @Produce      json
// @Param        houseId path int true "House ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /switches/house/{houseId} [get]
func (c *SwitchController) GetSwitchesByHouse() {
	houseID, ok := c.paramID("houseId")
	if !ok {
		return
	}

	switches, err := c.switchService().GetSwitchesByHouse(houseID)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch switches",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"switches": switches,
	})
}

// GetSwitchesByUser lists switches on a user's allocated devices
// @Summary      List Switches By User
// @Tags         Switches
// @Produce      json
// @Param        userId path int true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /switches/user/{userId} [get]
func (c *SwitchController) GetSwitchesByUser() {
	userID, ok := c.paramID("userId")
	if !ok {
		return
	}

	switches, err := c.switchService().GetSwitchesByUser(userID)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch switches",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"switches": switches,
	})
}

// GetSwitch returns a single switch by ID
// @Summary      Get Switch
// @Tags         Switches
// @Produce      json
// @Param        id path int true "Switch ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /switches/{id} [get]
func (c *SwitchController) GetSwitch() {
	id, ok := c.paramID("id")
	if !ok {
		return
	}

	sw, err := c.switchService().GetSwitchByID(id)
	if err != nil {
		c.respondSwitchError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"switch":  sw,
	})
}

// CreateSwitch inserts a standalone switch row
// @Summary      Create Switch
// @Tags         Switches
// @Accept       json
// @Produce      json
// @Param        request body CreateSwitchRequest true "Switch details"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /switches [post]
func (c *SwitchController) CreateSwitch() {
	var req CreateSwitchRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "device_id, device_code, room_id, house_id and allocated_to_customer_id are required",
		})
		return
	}

	sw := &models.Switch{
		DeviceID:              req.DeviceID,
		DeviceCode:            req.DeviceCode,
		DeviceName:            req.DeviceName,
		RoomID:                req.RoomID,
		HouseID:               req.HouseID,
		AllocatedToCustomerID: req.AllocatedToCustomerID,
		ElectronicObject:      req.ElectronicObject,
		DeviceIcon:            req.DeviceIcon,
	}
	if err := c.switchService().CreateSwitch(sw); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create switch",
		})
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Switch created successfully",
		"switch":  sw,
	})
}

// ToggleSwitch flips a switch and mirrors the state on its device
// @Summary      Toggle Switch
// @Tags         Switches
// @Produce      json
// @Param        id path int true "Switch ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /switches/{id}/toggle [post]
func (c *SwitchController) ToggleSwitch() {
	id, ok := c.paramID("id")
	if !ok {
		return
	}

	sw, err := c.switchService().ToggleSwitch(id)
	if err != nil {
		c.respondSwitchError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Switch toggled successfully",
		"switch":  sw,
	})
}

// UpdateSwitch applies partial updates to a switch
// @Summary      Update Switch
// @Tags         Switches
// @Accept       json
// @Produce      json
// @Param        id path int true "Switch ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /switches/{id} [put]
func (c *SwitchController) UpdateSwitch() {
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

	sw, err := c.switchService().UpdateSwitch(id, updates)
	if err != nil {
		c.respondSwitchError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Switch updated successfully",
		"switch":  sw,
	})
}

// DeleteSwitch removes a switch row
// @Summary      Delete Switch
// @Tags         Switches
// @Produce      json
// @Param        id path int true "Switch ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /switches/{id} [delete]
func (c *SwitchController) DeleteSwitch() {
	id, ok := c.paramID("id")
	if !ok {
		return
	}

	if err := c.switchService().DeleteSwitch(id); err != nil {
		c.respondSwitchError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Switch deleted successfully",
	})
}

func (c *SwitchController) respondSwitchError(err error) {
	if errors.Is(err, services.ErrSwitchNotFound) {
		c.Ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Switch not found",
		})
		return
	}
	c.Ctx.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "Switch operation failed",
	})
}
