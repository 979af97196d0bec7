package models

import "time"

// Technician represents field installation/maintenance staff
type Technician struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PhoneNumber string    `gorm:"type:varchar(20);unique;not null" json:"phone_number"`
	FullName    string    `gorm:"type:varchar(100);not null" json:"full_name"`
	Email       string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	EmployeeID  string    `gorm:"type:varchar(50)" json:"employee_id,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	AddedBy     uint      `json:"added_by"` // SuperAdmin ID who added this technician
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Technician) TableName() string {
	return "technicians"
}
