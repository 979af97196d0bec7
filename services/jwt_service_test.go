package services

import (
	"testing"

	"github.com/balu-16/smartHome-backend/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	svc := NewJWTService(testConfig())

	token, err := svc.GenerateToken(42, models.UserTypeCustomer, "9876543210")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.UserType != models.UserTypeCustomer {
		t.Errorf("UserType = %s, want customer", claims.UserType)
	}
	if claims.PhoneNumber != "9876543210" {
		t.Errorf("PhoneNumber = %s, want 9876543210", claims.PhoneNumber)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService(testConfig())

	for _, bad := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := svc.ParseToken(bad); err == nil {
			t.Errorf("ParseToken(%q) accepted", bad)
		}
	}
}

func TestParseTokenRejectsTamperedSignature(t *testing.T) {
	svc := NewJWTService(testConfig())

	token, err := svc.GenerateToken(1, models.UserTypeAdmin, "9123456789")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.ParseToken(tampered); err == nil {
		t.Error("tampered token accepted")
	}
}
