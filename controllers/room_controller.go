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

// InterfaceRoomController defines the room controller interface
type InterfaceRoomController interface {
	GetRoomsByHouse()
	GetRoom()
	CreateRoom()
	UpdateRoom()
	DeleteRoom()
}

// RoomController handles room requests
type RoomController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRoomController creates a new room controller
func NewRoomController(ctx *gin.Context, container *container.ServiceContainer) *RoomController {
	return &RoomController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateRoomRequest is the room creation body
type CreateRoomRequest struct {
	HouseID     uint   `json:"house_id" binding:"required" example:"1"`
	RoomName    string `json:"room_name" binding:"required" example:"Living Room"`
	RoomType    string `json:"room_type" example:"living"`
	Description string `json:"description" example:"Ground floor"`
}

// HandleRoomFunc returns a gin handler dispatching to the room controller
func HandleRoomFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRoomController(ctx, container)

		switch method {
		case "getRoomsByHouse":
			controller.GetRoomsByHouse()
		case "getRoom":
			controller.GetRoom()
		case "createRoom":
			controller.CreateRoom()
		case "updateRoom":
			controller.UpdateRoom()
		case "deleteRoom":
			controller.DeleteRoom()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid method",
			})
		}
	}
}

func (c *RoomController) roomService() services.InterfaceRoomService {
	return c.Container.GetService("room").(services.InterfaceRoomService)
}

func (c *RoomController) paramID(name string) (uint, bool) {
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

// GetRoomsByHouse lists a house's rooms in creation order
// @Summary      List Rooms By House
// @Tags         Rooms
// @Produce      json
// @Param        houseId path int true "House ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /rooms/house/{houseId} [get]
func (c *RoomController) GetRoomsByHouse() {
	houseID, ok := c.paramID("houseId")
	if !ok {
		return
	}

	rooms, err := c.roomService().GetRoomsByHouse(houseID)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch rooms",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"rooms":   rooms,
	})
}

// GetRoom returns a single room
// @Summary      Get Room
// @Tags         Rooms
// @Produce      json
// @Param        id path int true "Room ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /rooms/{id} [get]
func (c *RoomController) GetRoom() {
	id, ok := c.paramID("id")
	if !ok {
		return
	}

	room, err := c.roomService().GetRoomByID(id)
	if err != nil {
		c.respondRoomError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"room":    room,
	})
}

// CreateRoom adds a room to a house
// @Summary      Create Room
// @Tags         Rooms
// @Accept       json
// @Produce      json
// @Param        request body CreateRoomRequest true "Room"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /rooms [post]
func (c *RoomController) CreateRoom() {
	var req CreateRoomRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.RoomName) == "" {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "house_id and room_name are required",
		})
		return
	}

	room := models.Room{
		HouseID:     req.HouseID,
		RoomName:    strings.TrimSpace(req.RoomName),
		RoomType:    req.RoomType,
		Description: req.Description,
	}
	if err := c.roomService().CreateRoom(&room); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create room",
		})
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Room created successfully",
		"room":    room,
	})
}

// UpdateRoom applies partial updates to a room
// @Summary      Update Room
// @Tags         Rooms
// @Accept       json
// @Produce      json
// @Param        id path int true "Room ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /rooms/{id} [put]
func (c *RoomController) UpdateRoom() {
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

	room, err := c.roomService().UpdateRoom(id, updates)
	if err != nil {
		c.respondRoomError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Room updated successfully",
		"room":    room,
	})
}

// DeleteRoom removes a room, leaving devices in place
// @Summary      Delete Room
// @Tags         Rooms
// @Produce      json
// @Param        id path int true "Room ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /rooms/{id} [delete]
func (c *RoomController) DeleteRoom() {
	id, ok := c.paramID("id")
	if !ok {
		return
	}

	if err := c.roomService().DeleteRoom(id); err != nil {
		c.respondRoomError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Room deleted successfully",
	})
}

func (c *RoomController) respondRoomError(err error) {
	if errors.Is(err, services.ErrRoomNotFound) {
		c.Ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Room not found",
		})
		return
	}
	c.Ctx.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "Room operation failed",
	})
}
