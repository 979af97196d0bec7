package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/balu-16/smartHome-backend/models"
	"github.com/balu-16/smartHome-backend/services"
	"github.com/balu-16/smartHome-backend/services/container"
	"github.com/balu-16/smartHome-backend/utils"

	"github.com/gin-gonic/gin"
)

// InterfaceTechnicianController defines the technician controller interface
type InterfaceTechnicianController interface {
	GetTechnicians()
	GetTechnician()
	CreateTechnician()
	UpdateTechnician()
	ToggleActive()
	DeleteTechnician()
}

// TechnicianController handles technician requests
type TechnicianController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTechnicianController creates a new technician controller
func NewTechnicianController(ctx *gin.Context, container *container.ServiceContainer) *TechnicianController {
	return &TechnicianController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateTechnicianRequest is the technician creation body
type CreateTechnicianRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required" example:"9876543210"`
	FullName    string `json:"full_name" binding:"required" example:"Suresh Patil"`
	Email       string `json:"email" example:"suresh@example.com"`
	EmployeeID  string `json:"employee_id" example:"EMP-042"`
	AddedBy     uint   `json:"added_by" example:"1"`
}

// HandleTechnicianFunc returns a gin handler dispatching to the technician controller
func HandleTechnicianFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTechnicianController(ctx, container)

		switch method {
		case "getTechnicians":
			controller.GetTechnicians()
		case "getTechnician":
			controller.GetTechnician()
		case "createTechnician":
			controller.CreateTechnician()
		case "updateTechnician":
			controller.UpdateTechnician()
		case "toggleActive":
			controller.ToggleActive()
		case "deleteTechnician":
			controller.DeleteTechnician()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid method",
			})
		}
	}
}

func (c *TechnicianController) technicianService() services.InterfaceTechnicianService {
	return c.Container.GetService("technician").(services.InterfaceTechnicianService)
}

func (c *TechnicianController) paramID(name string) (uint, bool) {
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

// GetTechnicians lists all technicians, newest first
// @Summary      List Technicians
// @Tags         Technicians
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /technicians [get]
func (c *TechnicianController) GetTechnicians() {
	technicians, err := c.technicianService().GetAllTechnicians()
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch technicians",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"technicians": technicians,
	})
}

// GetTechnician returns a single technician
// @Summary      Get Technician
// @Tags         Technicians
// @Produce      json
// @Param        id path int true "Technician ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /technicians/{id} [get]
func (c *TechnicianController) GetTechnician() {
	id, ok := c.paramID("id")
	if !ok {
		return
	}

	technician, err := c.technicianService().GetTechnicianByID(id)
	if err != nil {
		c.respondTechnicianError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"technician": technician,
	})
}

// CreateTechnician registers a technician, rejecting duplicate phones
// @Summary      Create Technician
// @Tags         Technicians
// @Accept       json
// @Produce      json
// @Param        request body CreateTechnicianRequest true "Technician"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /technicians [post]
func (c *TechnicianController) CreateTechnician() {
	var req CreateTechnicianRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "phone_number and full_name are required",
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

	technician := models.Technician{
		PhoneNumber: phoneNumber,
		FullName:    strings.TrimSpace(req.FullName),
		Email:       req.Email,
		EmployeeID:  req.EmployeeID,
		IsActive:    true,
		AddedBy:     req.AddedBy,
	}
	if err := c.technicianService().CreateTechnician(&technician); err != nil {
		if errors.Is(err, services.ErrTechnicianExists) {
			c.Ctx.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   "A technician with this phone number already exists",
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create technician",
		})
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Technician created successfully",
		"technician": technician,
	})
}

// UpdateTechnician applies partial updates to a technician
// @Summary      Update Technician
// @Tags         Technicians
// @Accept       json
// @Produce      json
// @Param        id path int true "Technician ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /technicians/{id} [put]
func (c *TechnicianController) UpdateTechnician() {
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

	technician, err := c.technicianService().UpdateTechnician(id, updates)
	if err != nil {
		c.respondTechnicianError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Technician updated successfully",
		"technician": technician,
	})
}

// ToggleActive flips a technician's active flag
// @Summary      Toggle Technician Active
// @Tags         Technicians
// @Produce      json
// @Param        id path int true "Technician ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /technicians/{id}/toggle-active [post]
func (c *TechnicianController) ToggleActive() {
	id, ok := c.paramID("id")
	if !ok {
		return
	}

	technician, err := c.technicianService().ToggleActive(id)
	if err != nil {
		c.respondTechnicianError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Technician status updated",
		"technician": technician,
	})
}

// DeleteTechnician removes a technician
// @Summary      Delete Technician
// @Tags         Technicians
// @Produce      json
// @Param        id path int true "Technician ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /technicians/{id} [delete]
func (c *TechnicianController) DeleteTechnician() {
	id, ok := c.paramID("id")
	if !ok {
		return
	}

	if err := c.technicianService().DeleteTechnician(id); err != nil {
		c.respondTechnicianError(err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Technician deleted successfully",
	})
}

func (c *TechnicianController) respondTechnicianError(err error) {
	if errors.Is(err, services.ErrTechnicianNotFound) {
		c.Ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Technician not found",
		})
		return
	}
	c.Ctx.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "Technician operation failed",
	})
}
