package controllers

import (
	"net/http"
	"strconv"

	"github.com/balu-16/smartHome-backend/services"
	"github.com/balu-16/smartHome-backend/services/container"
	"github.com/balu-16/smartHome-backend/utils"

	"github.com/gin-gonic/gin"
)

// InterfaceUserController defines the user controller interface
type InterfaceUserController interface {
	FindByPhone()
	GetUser()
	GetSuperAdmins()
	GetAdmins()
	GetCustomers()
	GetTechnicians()
}

// UserController resolves identities across the role tables
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController creates a new user controller
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleUserFunc returns a gin handler dispatching to the user controller
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "findByPhone":
			controller.FindByPhone()
		case "getUser":
			controller.GetUser()
		case "getSuperAdmins":
			controller.GetSuperAdmins()
		case "getAdmins":
			controller.GetAdmins()
		case "getCustomers":
			controller.GetCustomers()
		case "getTechnicians":
			controller.GetTechnicians()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid method",
			})
		}
	}
}

func (c *UserController) userService() services.InterfaceUserService {
	return c.Container.GetService("user").(services.InterfaceUserService)
}

// FindByPhone resolves a phone number to an identity, honoring the
// superadmin > admin > technician > customer precedence
// @Summary      Find User By Phone
// @Tags         Users
// @Produce      json
// @Param        phone path string true "Phone number"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /users/phone/{phone} [get]
func (c *UserController) FindByPhone() {
	phoneNumber := utils.FormatPhoneNumber(c.Ctx.Param("phone"))
	if !utils.ValidatePhoneNumber(phoneNumber) {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid phone number format. Please enter a valid 10-digit Indian mobile number",
		})
		return
	}

	identity, err := c.userService().FindByPhone(phoneNumber)
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

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    identity,
	})
}

// GetUser resolves a numeric id across the role tables
// @Summary      Get User By ID
// @Tags         Users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (c *UserController) GetUser() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid id",
		})
		return
	}

	identity, err := c.userService().ResolveByID(uint(id))
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

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    identity,
	})
}

// GetSuperAdmins lists all super admins
// @Summary      List Super Admins
// @Tags         Users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /users/super-admins [get]
func (c *UserController) GetSuperAdmins() {
	superAdmins, err := c.userService().ListSuperAdmins()
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch super admins",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"superAdmins": superAdmins,
	})
}

// GetAdmins lists all admins
// @Summary      List Admins
// @Tags         Users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /users/admins [get]
func (c *UserController) GetAdmins() {
	admins, err := c.userService().ListAdmins()
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch admins",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"admins":  admins,
	})
}

// GetCustomers lists all customers
// @Summary      List Customers
// @Tags         Users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /users/customers [get]
func (c *UserController) GetCustomers() {
	customers, err := c.userService().ListCustomers()
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch customers",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"customers": customers,
	})
}

// GetTechnicians lists all technicians through the identity service
// @Summary      List Technicians (identity view)
// @Tags         Users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /users/technicians [get]
func (c *UserController) GetTechnicians() {
	technicians, err := c.userService().ListTechnicians()
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
