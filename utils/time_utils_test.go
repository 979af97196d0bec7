package utils

import (
	"testing"
	"time"
)

func TestISTOffset(t *testing.T) {
	_, offset := time.Now().In(IST).Zone()
	want := 5*3600 + 30*60
	if offset != want {
		t.Errorf("IST offset = %d seconds, want %d", offset, want)
	}
}

func TestNowIST(t *testing.T) {
	now := NowIST()
	if now.Location() != IST {
		t.Errorf("NowIST() location = %v, want IST", now.Location())
	}
}

func TestOTPExpirationIST(t *testing.T) {
	before := NowIST()
	expiry := OTPExpirationIST()

	diff := expiry.Sub(before)
	if diff < 9*time.Minute+55*time.Second || diff > 10*time.Minute+5*time.Second {
		t.Errorf("OTP expiry %v from now, want about 10 minutes", diff)
	}
	if expiry.Location() != IST {
		t.Errorf("OTPExpirationIST() location = %v, want IST", expiry.Location())
	}
}
