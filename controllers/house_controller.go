package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/balu-16/smartHome-backend/models"
	"github.com/balu-16/smartHome-backend/services"
	"github.com/balu-16/smartHome-backend/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceHouseController defines the house controller interface
type InterfaceHouseController interface {
	GetHousesByUser()
	GetHouse()
	CreateHouse()
	UpdateHouse()
	DeleteHouse()
}

// HouseController handles house requests
type HouseController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHouseController creates a new house controller
func NewHouseController(ctx *gin.Context, container *container.ServiceContainer) *HouseController {
	return &HouseController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateHouseRequest is the house creation body
type CreateHouseRequest struct {
	UserID    uint   `json:"user_id" binding:"required" example:"1"`
	HouseName string `json:"house_name" binding:"required" example:"Main Residence"`
}

// UpdateHouseRequest is the house rename body
type UpdateHouseRequest struct {
	HouseName string `json:"house_name" binding:"required" example:"Farm House"`
}

// HandleHouseFunc returns a gin handler dispatching to the house controller
func HandleHouseFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHouseController(ctx, container)

		switch method {
		case "getHousesByUser":
			controller.GetHousesByUser()
		case "getHouse":
			controller.GetHouse()
		case "createHouse":
			controller.CreateHouse()
		case "updateHouse":
			controller.UpdateHouse()
		case "deleteHouse":
			controller.DeleteHouse()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid method",
			})
		}
	}
}

func (c *HouseController) houseService() services.InterfaceHouseService {
	return c.Container.GetService("house").(services.InterfaceHouseService)
}

// GetHousesByUser lists a user's houses in creation order
// @Summary      List Houses By User
// @Tags         Houses
// @Produce      json
// @Param        userId path int true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /houses/user/{userId} [get]
func (c *HouseController) GetHousesByUser() {
	userID, err := strconv.ParseUint(c.Ctx.Param("userId"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid userId",
		})
		return
	}

	houses, err := c.houseService().GetHousesByUser(uint(userID))
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch houses",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"houses":  houses,
	})
}

// GetHouse returns a single house
// @Summary      Get House
// @Tags         Houses
// @Produce      json
// @Param        id path int true "House ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /houses/{id} [get]
func (c *HouseController) GetHouse() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid id",
		})
		return
	}

	house, err := c.houseService().GetHouseByID(uint(id))
	if err != nil {
		c.respondHouseError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"house":   house,
	})
}

// CreateHouse adds a house for a user
// @Summary      Create House
// @Tags         Houses
// @Accept       json
// @Produce      json
// @Param        request body CreateHouseRequest true "House"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /houses [post]
func (c *HouseController) CreateHouse() {
	var req CreateHouseRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.HouseName) == "" {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "user_id and house_name are required",
		})
		return
	}

	house := models.House{
		UserID:    req.UserID,
		HouseName: strings.TrimSpace(req.HouseName),
	}
	if err := c.houseService().CreateHouse(&house); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create house",
		})
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "House created successfully",
		"house":   house,
	})
}

// UpdateHouse renames a house
// @Summary      Update House
// @Tags         Houses
// @Accept       json
// @Produce      json
// @Param        id path int true "House ID"
// @Param        request body UpdateHouseRequest true "New name"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /houses/{id} [put]
func (c *HouseController) UpdateHouse() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid id",
		})
		return
	}

	var req UpdateHouseRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.HouseName) == "" {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "house_name is required",
		})
		return
	}

	house, err := c.houseService().UpdateHouse(uint(id), strings.TrimSpace(req.HouseName))
	if err != nil {
		c.respondHouseError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "House updated successfully",
		"house":   house,
	})
}

// DeleteHouse removes a house and all its rooms
// @Summary      Delete House
// @Tags         Houses
// @Produce      json
// @Param        id path int true "House ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /houses/{id} [delete]
func (c *HouseController) DeleteHouse() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid id",
		})
		return
	}

	if err := c.houseService().DeleteHouse(uint(id)); err != nil {
		c.respondHouseError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "House and its rooms deleted successfully",
	})
}

func (c *HouseController) respondHouseError(err error) {
	if errors.Is(err, services.ErrHouseNotFound) {
		c.Ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "House not found",
		})
		return
	}
	c.Ctx.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "House operation failed",
	})
}
