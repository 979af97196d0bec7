package controllers

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/balu-16/smartHome-backend/models"
	"github.com/balu-16/smartHome-backend/services"
	"github.com/balu-16/smartHome-backend/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceGpsController defines the GPS controller interface
type InterfaceGpsController interface {
	UpdateLocation()
	GetLatestLocation()
	GetHistory()
	GetDeviceData()
	ClearDeviceData()
	SetDeviceActive()
}

// GpsController handles location ingestion and retrieval
type GpsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewGpsController creates a new GPS controller
func NewGpsController(ctx *gin.Context, container *container.ServiceContainer) *GpsController {
	return &GpsController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateLocationRequest is a location ping from a device
type UpdateLocationRequest struct {
	DeviceCode      string   `json:"device_code" binding:"required" example:"DEV-1001"`
	DeviceM2MNumber string   `json:"device_m2m_number" binding:"required" example:"8991000012345"`
	Latitude        *float64 `json:"latitude" binding:"required" example:"12.9716"`
	Longitude       *float64 `json:"longitude" binding:"required" example:"77.5946"`
	Accuracy        *float64 `json:"accuracy" example:"8.5"`
}

// SetDeviceActiveRequest flips GPS tracking for a device
type SetDeviceActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required" example:"true"`
}

var m2mPattern = regexp.MustCompile(`^[0-9]{13}$`)

// HandleGpsFunc returns a gin handler dispatching to the GPS controller
func HandleGpsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewGpsController(ctx, container)

		switch method {
		case "updateLocation":
			controller.UpdateLocation()
		case "getLatestLocation":
			controller.GetLatestLocation()
		case "getHistory":
			controller.GetHistory()
		case "getDeviceData":
			controller.GetDeviceData()
		case "clearDeviceData":
			controller.ClearDeviceData()
		case "setDeviceActive":
			controller.SetDeviceActive()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid method",
			})
		}
	}
}

func (c *GpsController) gpsService() services.InterfaceGpsService {
	return c.Container.GetService("gps").(services.InterfaceGpsService)
}

// UpdateLocation appends a GPS ping after verifying that device_code and
// device_m2m_number identify the same device
// @Summary      Update Location
// @Tags         GPS
// @Accept       json
// @Produce      json
// @Param        request body UpdateLocationRequest true "Location ping"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /gps-signal/update-location [post]
func (c *GpsController) UpdateLocation() {
	var req UpdateLocationRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "device_code, device_m2m_number, latitude and longitude are required",
		})
		return
	}

	if !m2mPattern.MatchString(req.DeviceM2MNumber) {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "device_m2m_number must be exactly 13 digits",
		})
		return
	}

	device, err := c.gpsService().FindDeviceByCodeAndM2M(req.DeviceCode, req.DeviceM2MNumber)
	if err != nil {
		if errors.Is(err, services.ErrDeviceIdentityMismatch) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Device not found or identifiers do not match",
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to verify device",
		})
		return
	}

	data := models.GpsData{
		DeviceCode: device.DeviceCode,
		Latitude:   *req.Latitude,
		Longitude:  *req.Longitude,
		UserID:     device.AllocatedToCustomerID,
		Accuracy:   req.Accuracy,
	}
	if err := c.gpsService().InsertGpsData(&data); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to store location",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Location updated successfully",
		"data": gin.H{
			"device_code": data.DeviceCode,
			"latitude":    data.Latitude,
			"longitude":   data.Longitude,
			"timestamp":   data.Timestamp,
		},
	})
}

// GetLatestLocation returns the most recent fix for an actively tracked device
// @Summary      Get Latest Location
// @Tags         GPS
// @Produce      json
// @Param        device_code path string true "Device code"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /gps-signal/{device_code} [get]
func (c *GpsController) GetLatestLocation() {
	deviceCode := c.Ctx.Param("device_code")

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	device, err := deviceService.GetDeviceByCode(deviceCode)
	if err != nil {
		if errors.Is(err, services.ErrDeviceNotFound) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Device not found",
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to look up device",
		})
		return
	}

	if !device.IsActive {
		c.Ctx.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "GPS tracking is disabled for this device",
		})
		return
	}

	fix, err := c.gpsService().GetLatestFix(deviceCode)
	if err != nil {
		if errors.Is(err, services.ErrNoGpsFix) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "GPS coordinates not available for this device",
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch location",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"device_code": fix.DeviceCode,
			"latitude":    fix.Latitude,
			"longitude":   fix.Longitude,
			"timestamp":   fix.Timestamp,
		},
	})
}

// GetHistory returns a device's pings in chronological order
// @Summary      Get Location History
// @Tags         GPS
// @Produce      json
// @Param        device_code path string true "Device code"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /gps-signal/{device_code}/history [get]
func (c *GpsController) GetHistory() {
	deviceCode := c.Ctx.Param("device_code")

	history, err := c.gpsService().GetGpsHistory(deviceCode)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch location history",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(history),
		"history": history,
	})
}

// GetDeviceData returns all stored pings for a device
// @Summary      Get Device GPS Data
// @Tags         GPS
// @Produce      json
// @Param        code path string true "Device code"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /gps-signal/device/{code}/data [get]
func (c *GpsController) GetDeviceData() {
	deviceCode := c.Ctx.Param("code")

	data, err := c.gpsService().GetGpsDataForDevice(deviceCode)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch GPS data",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(data),
		"data":    data,
	})
}

// ClearDeviceData deletes all stored pings for a device
// @Summary      Clear Device GPS Data
// @Tags         GPS
// @Produce      json
// @Param        code path string true "Device code"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /gps-signal/device/{code}/clear [delete]
func (c *GpsController) ClearDeviceData() {
	deviceCode := c.Ctx.Param("code")

	deleted, err := c.gpsService().ClearGpsData(deviceCode)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to clear GPS data",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "GPS data cleared successfully",
		"deletedCount": deleted,
	})
}

// SetDeviceActive enables or disables GPS tracking for a device
// @Summary      Set Device Tracking
// @Tags         GPS
// @Accept       json
// @Produce      json
// @Param        code path string true "Device code"
// @Param        request body SetDeviceActiveRequest true "Tracking flag"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /gps-signal/device/{code}/active [post]
func (c *GpsController) SetDeviceActive() {
	deviceCode := c.Ctx.Param("code")

	var req SetDeviceActiveRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "is_active is required",
		})
		return
	}

	device, err := c.gpsService().SetDeviceActive(deviceCode, *req.IsActive)
	if err != nil {
		if errors.Is(err, services.ErrDeviceNotFound) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Device not found",
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to update tracking state",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tracking state updated",
		"device":  device,
	})
}
