package models

import "time"

// OtpVerification is an ephemeral one-time-passcode row. Issuing a new OTP
// marks all prior pending rows for the same number as verified; the flag
// therefore also means "superseded". Rows are purged by the cleanup sweep.
type OtpVerification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PhoneNumber string    `gorm:"type:varchar(20);index:idx_otp_lookup,priority:1;not null" json:"phone_number"`
	Otp         string    `gorm:"type:varchar(6);index:idx_otp_lookup,priority:2;not null" json:"otp"`
	ExpiresAt   time.Time `gorm:"not null" json:"expires_at"`
	IsVerified  bool      `gorm:"index:idx_otp_lookup,priority:3;default:false" json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
}

func (OtpVerification) TableName() string {
	return "otp_verifications"
}
