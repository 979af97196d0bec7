package utils

import "time"

// IST is the canonical timestamp zone for all business logic (UTC+5:30)
var IST = time.FixedZone("IST", 5*3600+30*60)

const otpValidity = 10 * time.Minute

// NowIST returns the current time in the IST representation
func NowIST() time.Time {
	return time.Now().In(IST)
}

// ToIST converts a timestamp to the IST representation
func ToIST(t time.Time) time.Time {
	return t.In(IST)
}

// OTPExpirationIST returns the expiry timestamp for a freshly issued OTP,
// 10 minutes from now, in IST
func OTPExpirationIST() time.Time {
	return time.Now().Add(otpValidity).In(IST)
}
