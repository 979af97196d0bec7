package models

import "time"

// LoginMetadata is the request context captured with every login entry
type LoginMetadata struct {
	IPAddress string  `gorm:"type:varchar(45);column:ip_address" json:"ip_address,omitempty"`
	UserAgent string  `gorm:"type:varchar(255)" json:"user_agent,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Accuracy  float64 `json:"accuracy,omitempty"`
}

// SuperAdminLoginLog is an append-only audit entry for super admin logins
type SuperAdminLoginLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SuperAdminID uint      `gorm:"index;column:superadmin_id;not null" json:"superadmin_id"`
	PhoneNumber  string    `gorm:"type:varchar(20);not null" json:"phone_number"`
	LoginMetadata
	LoginTime time.Time `gorm:"autoCreateTime" json:"login_time"`
}

func (SuperAdminLoginLog) TableName() string {
	return "superadmin_login_logs"
}

// AdminLoginLog is an append-only audit entry for admin logins
type AdminLoginLog struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	AdminID     uint   `gorm:"index;not null" json:"admin_id"`
	PhoneNumber string `gorm:"type:varchar(20);not null" json:"phone_number"`
	LoginMetadata
	LoginTime time.Time `gorm:"autoCreateTime" json:"login_time"`
}

func (AdminLoginLog) TableName() string {
	return "admin_login_logs"
}

// TechnicianLoginLog is an append-only audit entry for technician logins
type TechnicianLoginLog struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	TechnicianID uint   `gorm:"index;not null" json:"technician_id"`
	PhoneNumber  string `gorm:"type:varchar(20);not null" json:"phone_number"`
	LoginMetadata
	LoginTime time.Time `gorm:"autoCreateTime" json:"login_time"`
}

func (TechnicianLoginLog) TableName() string {
	return "technician_login_logs"
}

// UserLoginLog is an append-only audit entry for customer logins
type UserLoginLog struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	PhoneNumber string `gorm:"type:varchar(20);not null" json:"phone_number"`
	LoginMetadata
	LoginTime time.Time `gorm:"autoCreateTime" json:"login_time"`
}

func (UserLoginLog) TableName() string {
	return "users_login_logs"
}
