package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/balu-16/smartHome-backend/config"
)

func smsTestConfig(baseURL string) *config.Config {
	return &config.Config{
		SMSBaseURL: baseURL,
		SMSSecret:  "test-secret",
		SMSSender:  "NIGHAI",
		SMSTempID:  "1207174264191607433",
		SMSRoute:   "TA",
		SMSMsgType: "1",
	}
}

func TestSendOtpSMSSuccess(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("SMS-SHOOT"))
	}))
	defer server.Close()

	svc := NewSMSService(smsTestConfig(server.URL))
	result := svc.SendOtpSMS("9876543210", "123456")

	if !result.Success {
		t.Fatalf("result = %+v, want success", result)
	}
	if result.Status != http.StatusOK {
		t.Errorf("status = %d, want 200", result.Status)
	}
	if result.APIResponse != "SMS-SHOOT" {
		t.Errorf("apiResponse = %q", result.APIResponse)
	}

	if gotQuery["receiver"] != "9876543210" {
		t.Errorf("receiver = %q, want the phone number", gotQuery["receiver"])
	}
	if gotQuery["secret"] != "test-secret" || gotQuery["route"] != "TA" || gotQuery["msgtype"] != "1" {
		t.Errorf("gateway params = %v", gotQuery)
	}
	if !strings.Contains(gotQuery["sms"], "123456") {
		t.Errorf("message %q does not embed the OTP", gotQuery["sms"])
	}
}

func TestSendOtpSMSNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("gateway error"))
	}))
	defer server.Close()

	svc := NewSMSService(smsTestConfig(server.URL))
	result := svc.SendOtpSMS("9876543210", "123456")

	if result.Success {
		t.Fatalf("result = %+v, want failure", result)
	}
	if result.Status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", result.Status)
	}
	if result.APIResponse != "gateway error" {
		t.Errorf("apiResponse = %q, want raw body preserved", result.APIResponse)
	}
}

func TestSendOtpSMSUnreachable(t *testing.T) {
	// closed immediately so the request fails at the network level
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc := NewSMSService(smsTestConfig(server.URL))
	result := svc.SendOtpSMS("9876543210", "123456")

	if result.Success {
		t.Fatalf("result = %+v, want failure", result)
	}
	if result.Error == "" {
		t.Error("network failure should carry an error message")
	}
}
