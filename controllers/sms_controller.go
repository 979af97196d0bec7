package controllers

import (
	"net/http"
	"regexp"

	"github.com/balu-16/smartHome-backend/services"
	"github.com/balu-16/smartHome-backend/services/container"
	"github.com/balu-16/smartHome-backend/utils"

	"github.com/gin-gonic/gin"
)

// SendSmsRequest is the direct SMS relay request body
type SendSmsRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required" example:"9876543210"`
	Message     string `json:"message" binding:"required" example:"Your OTP is 123456"`
}

// smsOtpPattern extracts the 6-digit code the gateway template expects
var smsOtpPattern = regexp.MustCompile(`\d{6}`)

// SMSController handles direct SMS relay requests
type SMSController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSMSController creates a new SMS controller
func NewSMSController(ctx *gin.Context, container *container.ServiceContainer) *SMSController {
	return &SMSController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleSmsFunc returns a gin handler dispatching to the SMS controller
func HandleSmsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSMSController(ctx, container)

		switch method {
		case "sendSms":
			controller.SendSms()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid method",
			})
		}
	}
}

// SendSms relays a message through the SMS gateway. The gateway template
// only carries a one-time code, so the handler pulls the first 6-digit
// run out of the message and sends that.
// @Summary      Send SMS
// @Tags         SMS
// @Accept       json
// @Produce      json
// @Param        request body SendSmsRequest true "Recipient and message"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /sms/send [post]
func (c *SMSController) SendSms() {
	var req SendSmsRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "phoneNumber and message are required",
		})
		return
	}

	phoneNumber := utils.FormatPhoneNumber(req.PhoneNumber)
	if !utils.ValidatePhoneNumber(phoneNumber) {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid phone number format",
		})
		return
	}

	otp := smsOtpPattern.FindString(req.Message)
	if otp == "" {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Message must contain a 6-digit code",
		})
		return
	}

	smsService := c.Container.GetService("sms").(services.InterfaceSMSService)
	result := smsService.SendOtpSMS(phoneNumber, otp)
	if !result.Success {
		c.Ctx.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   "SMS delivery failed",
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "SMS sent successfully",
		"phoneNumber": phoneNumber,
	})
}
