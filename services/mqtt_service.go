package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/balu-16/smartHome-backend/config"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// InterfaceMQTTService publishes device-facing events over MQTT
type InterfaceMQTTService interface {
	Connect() error
	Disconnect()
	PublishSwitchState(deviceCode string, switchOn bool) error
	PublishTrackingState(deviceCode string, isActive bool) error
}

// Topic layout: one topic per device, state pushed as retained JSON
const (
	topicSwitchFmt   = "smarthome/device/%s/switch"
	topicTrackingFmt = "smarthome/device/%s/tracking"
)

// SwitchStateMessage is pushed when a switch toggles
type SwitchStateMessage struct {
	DeviceCode string `json:"device_code"`
	SwitchOn   bool   `json:"switch_on"`
	Timestamp  int64  `json:"timestamp"`
}

// TrackingStateMessage is pushed when GPS tracking is enabled/disabled
type TrackingStateMessage struct {
	DeviceCode string `json:"device_code"`
	IsActive   bool   `json:"is_active"`
	Timestamp  int64  `json:"timestamp"`
}

// MQTTService relays state changes to devices. The broker is optional:
// when no broker URL is configured, publishes are silently skipped so the
// HTTP flows never depend on broker availability.
type MQTTService struct {
	Config         *config.Config
	Client         mqtt.Client
	IsConnected    bool
	connectedMutex sync.RWMutex
	publishMutex   sync.Mutex
}

// NewMQTTService creates a new MQTT service
func NewMQTTService(cfg *config.Config) InterfaceMQTTService {
	return &MQTTService{Config: cfg}
}

// Connect establishes the broker connection. A missing broker URL is not an
// error; the service stays in skip mode.
func (s *MQTTService) Connect() error {
	if s.Config.MQTTBrokerURL == "" {
		config.Warning("MQTT broker not configured, device events will be skipped")
		return nil
	}

	opts := mqtt.NewClientOptions().
		AddBroker(s.Config.MQTTBrokerURL).
		SetClientID(s.Config.MQTTClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second).
		SetKeepAlive(30 * time.Second)

	opts.OnConnect = func(client mqtt.Client) {
		s.setConnected(true)
		config.Info("MQTT connected to %s", s.Config.MQTTBrokerURL)
	}
	opts.OnConnectionLost = func(client mqtt.Client, err error) {
		s.setConnected(false)
		config.Warning("MQTT connection lost: %v", err)
	}

	s.Client = mqtt.NewClient(opts)
	token := s.Client.Connect()
	if !token.WaitTimeout(10*time.Second) || token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
	}

	s.setConnected(true)
	return nil
}

// Disconnect closes the broker connection
func (s *MQTTService) Disconnect() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
	s.setConnected(false)
}

// PublishSwitchState pushes the new switch position to the device topic
func (s *MQTTService) PublishSwitchState(deviceCode string, switchOn bool) error {
	msg := SwitchStateMessage{
		DeviceCode: deviceCode,
		SwitchOn:   switchOn,
		Timestamp:  time.Now().UnixMilli(),
	}
	return s.publish(fmt.Sprintf(topicSwitchFmt, deviceCode), msg)
}

// PublishTrackingState pushes the new tracking flag to the device topic
func (s *MQTTService) PublishTrackingState(deviceCode string, isActive bool) error {
	msg := TrackingStateMessage{
		DeviceCode: deviceCode,
		IsActive:   isActive,
		Timestamp:  time.Now().UnixMilli(),
	}
	return s.publish(fmt.Sprintf(topicTrackingFmt, deviceCode), msg)
}

func (s *MQTTService) publish(topic string, payload interface{}) error {
	if !s.connected() {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	s.publishMutex.Lock()
	defer s.publishMutex.Unlock()

	token := s.Client.Publish(topic, 1, true, data)
	if !token.WaitTimeout(5*time.Second) || token.Error() != nil {
		config.Warning("MQTT publish to %s failed: %v", topic, token.Error())
		return token.Error()
	}
	return nil
}

func (s *MQTTService) connected() bool {
	s.connectedMutex.RLock()
	defer s.connectedMutex.RUnlock()
	return s.IsConnected
}

func (s *MQTTService) setConnected(v bool) {
	s.connectedMutex.Lock()
	defer s.connectedMutex.Unlock()
	s.IsConnected = v
}
