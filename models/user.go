package models

import "time"

// UserType discriminates the four identity tables
type UserType string

const (
	UserTypeSuperAdmin UserType = "superadmin"
	UserTypeAdmin      UserType = "admin"
	UserTypeTechnician UserType = "technician"
	UserTypeCustomer   UserType = "customer"
)

// SuperAdmin represents platform owners
type SuperAdmin struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PhoneNumber string    `gorm:"type:varchar(20);unique;not null" json:"phone_number"`
	FullName    string    `gorm:"type:varchar(100);not null" json:"full_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func (SuperAdmin) TableName() string {
	return "super_admins"
}

// Admin represents back-office employees
type Admin struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PhoneNumber string    `gorm:"type:varchar(20);unique;not null" json:"phone_number"`
	FullName    string    `gorm:"type:varchar(100);not null" json:"full_name"`
	AdminID     string    `gorm:"type:varchar(50)" json:"admin_id,omitempty"`
	Email       string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}

// Customer represents end users who sign up through the app
type Customer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PhoneNumber string    `gorm:"type:varchar(20);unique;not null" json:"phone_number"`
	FullName    string    `gorm:"type:varchar(100);not null" json:"full_name"`
	Email       string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Customer) TableName() string {
	return "users"
}
