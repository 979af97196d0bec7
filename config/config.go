package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Database
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Server
	ServerPort  string
	CORSOrigins []string

	// Redis
	RedisHost string
	RedisPort string
	RedisDB   int

	// SMS gateway
	SMSSecret  string
	SMSSender  string
	SMSTempID  string
	SMSRoute   string
	SMSMsgType string
	SMSBaseURL string

	// MQTT broker; switch/device events are skipped when empty
	MQTTBrokerURL string
	MQTTClientID  string

	// JWT Authentication
	JWTSecretKey string

	// Seed super admin, created on boot when the table is empty
	DefaultSuperAdminPhone string
	DefaultSuperAdminName  string
}

// LoadConfig loads config from environment variables
func LoadConfig() *Config {
	return &Config{
		// Database config
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "smarthome_db"),
		DBPort:     getEnv("DB_PORT", "3306"),

		// Server config
		ServerPort:  getEnv("SERVER_PORT", "3001"),
		CORSOrigins: splitAndTrim(getEnv("CORS_ORIGIN", "http://localhost:5173,http://localhost:3000,http://localhost:8080")),

		// Redis config
		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		// SMS gateway config
		SMSSecret:  getEnv("SMS_SECRET", "xledocqmXkNPrTesuqWr"),
		SMSSender:  getEnv("SMS_SENDER", "NIGHAI"),
		SMSTempID:  getEnv("SMS_TEMPID", "1207174264191607433"),
		SMSRoute:   getEnv("SMS_ROUTE", "TA"),
		SMSMsgType: getEnv("SMS_MSGTYPE", "1"),
		SMSBaseURL: getEnv("SMS_BASE_URL", "http://43.252.88.250/index.php/smsapi/httpapi/"),

		// MQTT config
		MQTTBrokerURL: getEnv("MQTT_BROKER_URL", ""),
		MQTTClientID:  getEnv("MQTT_CLIENT_ID", "smarthome-backend"),

		// JWT Config
		JWTSecretKey: getEnv("JWT_SECRET", "smarthome-jwt-secret-key-2024"),

		// Seed config
		DefaultSuperAdminPhone: getEnv("DEFAULT_SUPERADMIN_PHONE", ""),
		DefaultSuperAdminName:  getEnv("DEFAULT_SUPERADMIN_NAME", "Super Admin"),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
