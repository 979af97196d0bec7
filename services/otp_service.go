package services

import (
	"errors"

	"github.com/balu-16/smartHome-backend/config"
	"github.com/balu-16/smartHome-backend/models"
	"github.com/balu-16/smartHome-backend/utils"

	"gorm.io/gorm"
)

// ErrInvalidOTP is returned when no pending, unexpired row matches
var ErrInvalidOTP = errors.New("Invalid or expired OTP")

// InterfaceOTPService defines the one-time-passcode lifecycle interface
type InterfaceOTPService interface {
	StoreOTP(phoneNumber, otp string) (*models.OtpVerification, error)
	VerifyOTP(phoneNumber, otp string) (*models.OtpVerification, error)
	CleanupExpiredOTPs() (int64, error)
}

// OTPService owns the otp_verifications table
type OTPService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewOTPService creates a new OTP service
func NewOTPService(db *gorm.DB, cfg *config.Config) InterfaceOTPService {
	return &OTPService{DB: db, Config: cfg}
}

// StoreOTP invalidates all pending codes for the number, then inserts a new
// row expiring in 10 minutes. The invalidate-then-create order is deliberate:
// only the newest code may verify.
func (s *OTPService) StoreOTP(phoneNumber, otp string) (*models.OtpVerification, error) {
	if err := s.DB.Model(&models.OtpVerification{}).
		Where("phone_number = ? AND is_verified = ?", phoneNumber, false).
		Update("is_verified", true).Error; err != nil {
		return nil, err
	}

	record := &models.OtpVerification{
		PhoneNumber: phoneNumber,
		Otp:         otp,
		ExpiresAt:   utils.OTPExpirationIST(),
		IsVerified:  false,
	}
	if err := s.DB.Create(record).Error; err != nil {
		return nil, err
	}

	config.Info("OTP stored successfully for %s", phoneNumber)
	return record, nil
}

// VerifyOTP finds the most recent pending, unexpired row matching the code,
// marks it verified and returns it. Returns ErrInvalidOTP when no row matches.
func (s *OTPService) VerifyOTP(phoneNumber, otp string) (*models.OtpVerification, error) {
	var record models.OtpVerification
	err := s.DB.
		Where("phone_number = ? AND otp = ? AND is_verified = ? AND expires_at > ?",
			phoneNumber, otp, false, utils.NowIST()).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			config.Warning("Invalid or expired OTP for %s", phoneNumber)
			return nil, ErrInvalidOTP
		}
		return nil, err
	}

	if err := s.DB.Model(&record).Update("is_verified", true).Error; err != nil {
		return nil, err
	}

	config.Info("OTP verified successfully for %s", phoneNumber)
	return &record, nil
}

// CleanupExpiredOTPs deletes all rows that are expired or already verified.
// Safe to call repeatedly; pending unexpired rows are untouched.
func (s *OTPService) CleanupExpiredOTPs() (int64, error) {
	result := s.DB.
		Where("expires_at < ? OR is_verified = ?", utils.NowIST(), true).
		Delete(&models.OtpVerification{})
	if result.Error != nil {
		return 0, result.Error
	}

	config.Info("Cleaned up %d expired/verified OTP rows", result.RowsAffected)
	return result.RowsAffected, nil
}
