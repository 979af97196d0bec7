package routes

import (
	"strings"

	"github.com/balu-16/smartHome-backend/config"
	"github.com/balu-16/smartHome-backend/controllers"
	_ "github.com/balu-16/smartHome-backend/docs"
	"github.com/balu-16/smartHome-backend/services/container"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config, redisEnabled bool) *gin.Engine {
	r := gin.Default()

	// CORS middleware driven by the configured origin list
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && originAllowed(origin, cfg.CORSOrigins) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// Tag every request so log lines can be correlated
	r.Use(func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg, redisEnabled)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

func originAllowed(origin string, allowed []string) bool {
	for _, o := range allowed {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

// registerRoutes configures all API routes
func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	r.GET("/health", controllers.HandleHealthFunc(container))

	auth := r.Group("/auth")
	{
		auth.POST("/send-otp", controllers.HandleAuthFunc(container, "sendOtp"))
		auth.POST("/verify-otp", controllers.HandleAuthFunc(container, "verifyOtp"))
		auth.GET("/profile/:sessionToken", controllers.HandleAuthFunc(container, "getProfile"))
		auth.PUT("/profile/:sessionToken", controllers.HandleAuthFunc(container, "updateProfile"))
		auth.POST("/cleanup-otps", controllers.HandleAuthFunc(container, "cleanupOtps"))
	}

	sms := r.Group("/sms")
	{
		sms.POST("/send", controllers.HandleSmsFunc(container, "sendSms"))
	}

	gps := r.Group("/gps-signal")
	{
		gps.POST("/update-location", controllers.HandleGpsFunc(container, "updateLocation"))
		gps.GET("/:device_code", controllers.HandleGpsFunc(container, "getLatestLocation"))
		gps.GET("/:device_code/history", controllers.HandleGpsFunc(container, "getHistory"))
		gps.GET("/device/:code/data", controllers.HandleGpsFunc(container, "getDeviceData"))
		gps.DELETE("/device/:code/clear", controllers.HandleGpsFunc(container, "clearDeviceData"))
		gps.POST("/device/:code/active", controllers.HandleGpsFunc(container, "setDeviceActive"))
	}

	devices := r.Group("/devices")
	{
		devices.GET("", controllers.HandleDeviceFunc(container, "getDevices"))
		devices.POST("", controllers.HandleDeviceFunc(container, "createDevice"))
		devices.GET("/:id", controllers.HandleDeviceFunc(container, "getDevice"))
		devices.PUT("/:id", controllers.HandleDeviceFunc(container, "updateDevice"))
		devices.DELETE("/:id", controllers.HandleDeviceFunc(container, "deleteDevice"))
		devices.GET("/code/:code", controllers.HandleDeviceFunc(container, "getDeviceByCode"))
		devices.GET("/user/:userId", controllers.HandleDeviceFunc(container, "getDevicesByUser"))
		devices.GET("/room/:roomId", controllers.HandleDeviceFunc(container, "getDevicesByRoom"))
		devices.GET("/shared-with/:userId", controllers.HandleDeviceFunc(container, "getSharedDevices"))
		devices.POST("/allocate", controllers.HandleDeviceFunc(container, "allocateDevice"))
		devices.POST("/:id/unassign", controllers.HandleDeviceFunc(container, "unassignDevice"))
		devices.POST("/:id/share", controllers.HandleDeviceFunc(container, "shareDevice"))
		devices.DELETE("/:id/share/:userId", controllers.HandleDeviceFunc(container, "unshareDevice"))
	}

	houses := r.Group("/houses")
	{
		houses.POST("", controllers.HandleHouseFunc(container, "createHouse"))
		houses.GET("/:id", controllers.HandleHouseFunc(container, "getHouse"))
		houses.PUT("/:id", controllers.HandleHouseFunc(container, "updateHouse"))
		houses.DELETE("/:id", controllers.HandleHouseFunc(container, "deleteHouse"))
		houses.GET("/user/:userId", controllers.HandleHouseFunc(container, "getHousesByUser"))
	}

	rooms := r.Group("/rooms")
	{
		rooms.POST("", controllers.HandleRoomFunc(container, "createRoom"))
		rooms.GET("/:id", controllers.HandleRoomFunc(container, "getRoom"))
		rooms.PUT("/:id", controllers.HandleRoomFunc(container, "updateRoom"))
		rooms.DELETE("/:id", controllers.HandleRoomFunc(container, "deleteRoom"))
		rooms.GET("/house/:houseId", controllers.HandleRoomFunc(container, "getRoomsByHouse"))
	}

	switches := r.Group("/switches")
	{
		switches.POST("", controllers.HandleSwitchFunc(container, "createSwitch"))
		switches.GET("/:id", controllers.HandleSwitchFunc(container, "getSwitch"))
		switches.GET("/device/:deviceId", controllers.HandleSwitchFunc(container, "getSwitchesByDevice"))
		switches.GET("/room/:roomId", controllers.HandleSwitchFunc(container, "getSwitchesByRoom"))
		switches.GET("/house/:houseId", controllers.HandleSwitchFunc(container, "getSwitchesByHouse"))
		switches.GET("/user/:userId", controllers.HandleSwitchFunc(container, "getSwitchesByUser"))
		switches.POST("/:id/toggle", controllers.HandleSwitchFunc(container, "toggleSwitch"))
		switches.PUT("/:id", controllers.HandleSwitchFunc(container, "updateSwitch"))
		switches.DELETE("/:id", controllers.HandleSwitchFunc(container, "deleteSwitch"))
	}

	technicians := r.Group("/technicians")
	{
		technicians.GET("", controllers.HandleTechnicianFunc(container, "getTechnicians"))
		technicians.POST("", controllers.HandleTechnicianFunc(container, "createTechnician"))
		technicians.GET("/:id", controllers.HandleTechnicianFunc(container, "getTechnician"))
		technicians.PUT("/:id", controllers.HandleTechnicianFunc(container, "updateTechnician"))
		technicians.POST("/:id/toggle-active", controllers.HandleTechnicianFunc(container, "toggleActive"))
		technicians.DELETE("/:id", controllers.HandleTechnicianFunc(container, "deleteTechnician"))
	}

	users := r.Group("/users")
	{
		users.GET("/phone/:phone", controllers.HandleUserFunc(container, "findByPhone"))
		users.GET("/super-admins", controllers.HandleUserFunc(container, "getSuperAdmins"))
		users.GET("/admins", controllers.HandleUserFunc(container, "getAdmins"))
		users.GET("/customers", controllers.HandleUserFunc(container, "getCustomers"))
		users.GET("/technicians", controllers.HandleUserFunc(container, "getTechnicians"))
		users.GET("/:id", controllers.HandleUserFunc(container, "getUser"))
	}
}
