package controllers

import (
	"net/http"

	"github.com/balu-16/smartHome-backend/services/container"
	"github.com/balu-16/smartHome-backend/utils"

	"github.com/gin-gonic/gin"
)

// HealthController reports service health
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a gin handler for the health endpoint
func HandleHealthFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		NewHealthController(ctx, container).Check()
	}
}

// Check pings the database and reports overall status
// @Summary      Health Check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health [get]
func (c *HealthController) Check() {
	database := gin.H{"status": "connected"}
	status := "ok"
	httpStatus := http.StatusOK

	sqlDB, err := c.Container.GetDB().DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		database = gin.H{"status": "disconnected", "error": err.Error()}
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.Ctx.JSON(httpStatus, gin.H{
		"status":    status,
		"timestamp": utils.NowIST(),
		"database":  database,
		"services": gin.H{
			"sms": "available",
			"otp": "available",
		},
	})
}
