package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/balu-16/smartHome-backend/config"

	"github.com/go-redis/redis/v8"
)

// InterfaceRedisService covers caching and OTP request throttling
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	AllowOTPRequest(phoneNumber string) (bool, time.Duration, error)
	CacheDeviceLocation(deviceCode string, fix interface{}) error
	GetDeviceLocation(deviceCode string, dest interface{}) error
	Ping() error
}

// RedisService handles Redis operations. When Redis is unreachable the
// container drops the service entirely and callers fall back to the database.
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

const (
	otpCooldown       = 30 * time.Second
	deviceLocationTTL = 5 * time.Minute
)

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// AllowOTPRequest enforces a per-number cooldown between send-otp calls.
// Returns false with the remaining wait when a request is too soon.
func (s *RedisService) AllowOTPRequest(phoneNumber string) (bool, time.Duration, error) {
	key := "otp:cooldown:" + phoneNumber

	ok, err := s.Client.SetNX(s.Ctx, key, "1", otpCooldown).Result()
	if err != nil {
		return false, 0, err
	}
	if ok {
		return true, 0, nil
	}

	ttl, err := s.Client.TTL(s.Ctx, key).Result()
	if err != nil {
		return false, 0, err
	}
	return false, ttl, nil
}

// CacheDeviceLocation stores the last-known fix keyed per device
func (s *RedisService) CacheDeviceLocation(deviceCode string, fix interface{}) error {
	return s.Set(fmt.Sprintf("gps:latest:%s", deviceCode), fix, deviceLocationTTL)
}

// GetDeviceLocation reads a device's cached last-known fix
func (s *RedisService) GetDeviceLocation(deviceCode string, dest interface{}) error {
	return s.Get(fmt.Sprintf("gps:latest:%s", deviceCode), dest)
}

// Ping checks the Redis connection
func (s *RedisService) Ping() error {
	ctx, cancel := context.WithTimeout(s.Ctx, 5*time.Second)
	defer cancel()
	return s.Client.Ping(ctx).Err()
}
