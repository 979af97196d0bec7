package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/balu-16/smartHome-backend/config"
	"github.com/balu-16/smartHome-backend/models"
	"github.com/balu-16/smartHome-backend/services"
	"github.com/balu-16/smartHome-backend/services/container"
	"github.com/balu-16/smartHome-backend/utils"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController defines the auth controller interface
type InterfaceAuthController interface {
	SendOtp()
	VerifyOtp()
	GetProfile()
	UpdateProfile()
	CleanupOtps()
}

// AuthController handles OTP login and profile requests
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// SendOtpRequest is the send-otp request body
type SendOtpRequest struct {
	PhoneNumber string `json:"phoneNumber" example:"+91 98765-43210"`
	Name        string `json:"name" example:"Ravi Kumar"`
}

// VerifyOtpRequest is the verify-otp request body
type VerifyOtpRequest struct {
	PhoneNumber string         `json:"phoneNumber" example:"9876543210"`
	Otp         string         `json:"otp" example:"123456"`
	Name        string         `json:"name" example:"Ravi Kumar"`
	Email       string         `json:"email" example:"ravi@example.com"`
	Location    *LoginLocation `json:"location,omitempty"`
}

// LoginLocation is an optional client-reported position attached to the login log
type LoginLocation struct {
	Latitude  float64 `json:"latitude" example:"17.3850"`
	Longitude float64 `json:"longitude" example:"78.4867"`
	Accuracy  float64 `json:"accuracy" example:"12.5"`
}

// UpdateProfileRequest is the profile update request body
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required" example:"Ravi Kumar"`
}

var otpPattern = regexp.MustCompile(`^\d{6}$`)

// HandleAuthFunc returns a gin handler dispatching to the auth controller
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "sendOtp":
			controller.SendOtp()
		case "verifyOtp":
			controller.VerifyOtp()
		case "getProfile":
			controller.GetProfile()
		case "updateProfile":
			controller.UpdateProfile()
		case "cleanupOtps":
			controller.CleanupOtps()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid method",
			})
		}
	}
}

// SendOtp generates a code for a phone number and dispatches it by SMS
// @Summary      Send OTP
// @Description  Normalize and validate the phone number, store a fresh OTP and send it via the SMS gateway
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body SendOtpRequest true "Phone number"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /auth/send-otp [post]
func (c *AuthController) SendOtp() {
	var req SendOtpRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if strings.TrimSpace(req.PhoneNumber) == "" {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Phone number is required",
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

	// Per-number cooldown, skipped when Redis is not configured
	if redisService, ok := c.Container.GetService("redis").(services.InterfaceRedisService); ok && redisService != nil {
		allowed, wait, err := redisService.AllowOTPRequest(phoneNumber)
		if err != nil {
			config.Warning("OTP cooldown check failed for %s: %v", phoneNumber, err)
		} else if !allowed {
			c.Ctx.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many OTP requests",
				"message": fmt.Sprintf("Please wait %d seconds before requesting another OTP", int(wait.Seconds())+1),
			})
			return
		}
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
	userExists := identity != nil

	otp := utils.GenerateOTP()

	otpService := c.Container.GetService("otp").(services.InterfaceOTPService)
	if _, err := otpService.StoreOTP(phoneNumber, otp); err != nil {
		config.Error("Failed to store OTP for %s: %v", phoneNumber, err)
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to generate OTP",
		})
		return
	}

	smsService := c.Container.GetService("sms").(services.InterfaceSMSService)
	smsResult := smsService.SendOtpSMS(phoneNumber, otp)
	if !smsResult.Success {
		config.Warning("SMS delivery failed for %s: %s", phoneNumber, smsResult.Error)
	}

	message := "OTP sent successfully"
	if !smsResult.Success {
		// OTP row exists and is verifiable even when the gateway fails
		message += " (SMS delivery may have failed)"
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     message,
		"phoneNumber": phoneNumber,
		"userExists":  userExists,
		"smsStatus":   smsResult.Success,
	})
}

// VerifyOtp checks a code and logs the caller in, registering a new
// customer when the number is unknown
// @Summary      Verify OTP
// @Description  Verify a pending OTP, create a customer account for unknown numbers and issue a session token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body VerifyOtpRequest true "Phone number and OTP"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/verify-otp [post]
func (c *AuthController) VerifyOtp() {
	var req VerifyOtpRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if strings.TrimSpace(req.PhoneNumber) == "" || strings.TrimSpace(req.Otp) == "" {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Phone number and OTP are required",
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

	if !otpPattern.MatchString(req.Otp) {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid OTP format. OTP must be 6 digits",
		})
		return
	}

	otpService := c.Container.GetService("otp").(services.InterfaceOTPService)
	if _, err := otpService.VerifyOTP(phoneNumber, req.Otp); err != nil {
		if errors.Is(err, services.ErrInvalidOTP) {
			c.Ctx.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid or expired OTP",
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to verify OTP",
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

	isNewUser := identity == nil
	if isNewUser {
		fullName := strings.TrimSpace(req.Name)
		if fullName == "" {
			fullName = "User_" + phoneNumber[len(phoneNumber)-4:]
		}
		identity, err = userService.CreateCustomer(phoneNumber, fullName, strings.TrimSpace(req.Email))
		if err != nil {
			config.Error("Failed to register customer %s: %v", phoneNumber, err)
			c.Ctx.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to create user account",
			})
			return
		}
	}

	meta := models.LoginMetadata{
		IPAddress: c.Ctx.ClientIP(),
		UserAgent: c.Ctx.GetHeader("User-Agent"),
	}
	if req.Location != nil {
		meta.Latitude = req.Location.Latitude
		meta.Longitude = req.Location.Longitude
		meta.Accuracy = req.Location.Accuracy
	}
	if err := userService.LogLogin(identity, meta); err != nil {
		config.Warning("Failed to record login for %s: %v", phoneNumber, err)
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	sessionToken, err := jwtService.GenerateToken(identity.ID, identity.UserType, identity.PhoneNumber)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create session",
		})
		return
	}

	message := "Login successful"
	if isNewUser {
		message = "Account created successfully"
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     message,
		"otpVerified": true,
		"isNewUser":   isNewUser,
		"userType":    identity.UserType,
		"user": gin.H{
			"id":          identity.ID,
			"phoneNumber": identity.PhoneNumber,
			"name":        identity.FullName,
			"createdAt":   identity.CreatedAt,
			"role":        identity.UserType,
		},
		"sessionToken": sessionToken,
	})
}

// GetProfile returns the identity behind a session token
// @Summary      Get Profile
// @Description  Resolve a session token to the caller's profile
// @Tags         Auth
// @Produce      json
// @Param        sessionToken path string true "Session token"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/profile/{sessionToken} [get]
func (c *AuthController) GetProfile() {
	identity, ok := c.resolveSession()
	if !ok {
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":          identity.ID,
			"phoneNumber": identity.PhoneNumber,
			"name":        identity.FullName,
			"email":       identity.Email,
			"createdAt":   identity.CreatedAt,
			"role":        identity.UserType,
		},
	})
}

// UpdateProfile changes the caller's display name
// @Summary      Update Profile
// @Description  Update the full name on the caller's profile
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        sessionToken path string true "Session token"
// @Param        request body UpdateProfileRequest true "New name"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/profile/{sessionToken} [put]
func (c *AuthController) UpdateProfile() {
	claims, ok := c.parseSessionToken()
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Name is required",
		})
		return
	}

	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Name must be at least 2 characters long",
		})
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	identity, err := userService.UpdateProfile(claims.UserID, name, claims.UserType)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to update profile",
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
		"message": "Profile updated successfully",
		"user": gin.H{
			"id":          identity.ID,
			"phoneNumber": identity.PhoneNumber,
			"name":        identity.FullName,
			"createdAt":   identity.CreatedAt,
			"role":        identity.UserType,
		},
	})
}

// CleanupOtps deletes expired and consumed OTP rows
// @Summary      Cleanup OTPs
// @Description  Remove expired and already-verified OTP records
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/cleanup-otps [post]
func (c *AuthController) CleanupOtps() {
	otpService := c.Container.GetService("otp").(services.InterfaceOTPService)
	deleted, err := otpService.CleanupExpiredOTPs()
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to clean up OTPs",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Expired OTPs cleaned up successfully",
		"deletedCount": deleted,
	})
}

// parseSessionToken validates the :sessionToken path param, writing the
// 401 response itself on failure
func (c *AuthController) parseSessionToken() (*services.SessionClaims, bool) {
	token := c.Ctx.Param("sessionToken")
	if token == "" {
		c.Ctx.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Session token is required",
		})
		return nil, false
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	claims, err := jwtService.ParseToken(token)
	if err != nil {
		c.Ctx.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Invalid or expired session token",
		})
		return nil, false
	}
	return claims, true
}

func (c *AuthController) resolveSession() (*services.Identity, bool) {
	claims, ok := c.parseSessionToken()
	if !ok {
		return nil, false
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	identity, err := userService.FindByID(claims.UserID, claims.UserType)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to look up user",
		})
		return nil, false
	}
	if identity == nil {
		c.Ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "User not found",
		})
		return nil, false
	}
	return identity, true
}
