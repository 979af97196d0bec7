package services

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/balu-16/smartHome-backend/config"
)

// InterfaceSMSService defines the SMS gateway client interface
type InterfaceSMSService interface {
	SendOtpSMS(phoneNumber, otp string) SMSResult
}

// SMSResult captures the gateway outcome; the raw response body is kept
// for diagnostics
type SMSResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	Error       string `json:"error,omitempty"`
	APIResponse string `json:"apiResponse,omitempty"`
	Status      int    `json:"status,omitempty"`
}

// SMSService sends messages through the configured HTTP gateway
type SMSService struct {
	Config *config.Config
	Client *http.Client
}

// NewSMSService creates a new SMS service. The gateway call carries an
// explicit timeout so a slow gateway cannot stall request handling.
func NewSMSService(cfg *config.Config) InterfaceSMSService {
	return &SMSService{
		Config: cfg,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// SendOtpSMS delivers the OTP template message. It never returns an error:
// network failures and non-200 gateway replies become a failed result so the
// caller can treat delivery as non-fatal.
func (s *SMSService) SendOtpSMS(phoneNumber, otp string) SMSResult {
	message := fmt.Sprintf("Welcome to NighaTech Global Your OTP for authentication is %s don't share with anybody Thank you", otp)

	params := url.Values{}
	params.Set("secret", s.Config.SMSSecret)
	params.Set("sender", s.Config.SMSSender)
	params.Set("tempid", s.Config.SMSTempID)
	params.Set("receiver", phoneNumber)
	params.Set("route", s.Config.SMSRoute)
	params.Set("msgtype", s.Config.SMSMsgType)
	params.Set("sms", message)

	smsURL := s.Config.SMSBaseURL + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, smsURL, nil)
	if err != nil {
		return SMSResult{Success: false, Error: fmt.Sprintf("Failed to send SMS: %v", err)}
	}
	req.Header.Set("User-Agent", "SmartHome SMS Service/1.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		config.Error("SMS gateway request failed for %s: %v", phoneNumber, err)
		return SMSResult{Success: false, Error: fmt.Sprintf("Failed to send SMS: %v", err)}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	responseText := string(body)

	if resp.StatusCode != http.StatusOK {
		config.Warning("SMS gateway returned status %d for %s", resp.StatusCode, phoneNumber)
		return SMSResult{
			Success:     false,
			Error:       fmt.Sprintf("SMS API returned status %d: %s", resp.StatusCode, responseText),
			APIResponse: responseText,
			Status:      resp.StatusCode,
		}
	}

	config.Info("SMS sent successfully to %s", phoneNumber)
	return SMSResult{
		Success:     true,
		Message:     fmt.Sprintf("SMS sent successfully to %s", phoneNumber),
		APIResponse: responseText,
		Status:      resp.StatusCode,
	}
}
