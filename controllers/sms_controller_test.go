package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/balu-16/smartHome-backend/config"
	"github.com/balu-16/smartHome-backend/services/container"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newSmsTestContainer points the SMS service at the given gateway URL
func newSmsTestContainer(t *testing.T, baseURL string) *container.ServiceContainer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	cfg := &config.Config{
		ServerPort:   "3001",
		SMSBaseURL:   baseURL,
		SMSSecret:    "test-secret",
		SMSSender:    "NIGHAI",
		SMSTempID:    "1207174264191607433",
		SMSRoute:     "TA",
		SMSMsgType:   "1",
		JWTSecretKey: "test-jwt-secret",
	}
	return container.NewServiceContainer(db, cfg, false)
}

func TestSendSmsRelaysExtractedCode(t *testing.T) {
	var gotReceiver, gotSms string
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReceiver = r.URL.Query().Get("receiver")
		gotSms = r.URL.Query().Get("sms")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("SMS-SHOOT"))
	}))
	defer gateway.Close()

	c := newSmsTestContainer(t, gateway.URL+"/index.php/smsapi/httpapi/")
	handler := HandleSmsFunc(c, "sendSms")

	w := postJSON(t, handler, "/sms/send", gin.H{
		"phoneNumber": "+91 98765-43210",
		"message":     "Your OTP is 654321, do not share it",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["phoneNumber"] != "9876543210" {
		t.Errorf("phoneNumber = %v, want normalized 9876543210", body["phoneNumber"])
	}
	if gotReceiver != "9876543210" {
		t.Errorf("gateway receiver = %q, want 9876543210", gotReceiver)
	}
	if !strings.Contains(gotSms, "654321") {
		t.Errorf("gateway sms = %q, want the extracted code 654321", gotSms)
	}
}

func TestSendSmsRejectsMessageWithoutCode(t *testing.T) {
	c := newSmsTestContainer(t, "http://127.0.0.1:9/index.php/smsapi/httpapi/")
	handler := HandleSmsFunc(c, "sendSms")

	w := postJSON(t, handler, "/sms/send", gin.H{
		"phoneNumber": "9876543210",
		"message":     "hello there",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSendSmsGatewayFailure(t *testing.T) {
	// port 9 is unreachable, the relay reports a bad gateway
	c := newSmsTestContainer(t, "http://127.0.0.1:9/index.php/smsapi/httpapi/")
	handler := HandleSmsFunc(c, "sendSms")

	w := postJSON(t, handler, "/sms/send", gin.H{
		"phoneNumber": "9876543210",
		"message":     "Your OTP is 123456",
	})
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}
