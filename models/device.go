package models

import "time"

// Device represents a physical GPS/switch unit. A device exists independent
// of allocation; allocation fills the customer/room fields and materializes
// a Switch row.
type Device struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	DeviceCode            string     `gorm:"type:varchar(50);unique;not null" json:"device_code"`
	DeviceM2MNumber       string     `gorm:"type:varchar(13);column:device_m2m_number" json:"device_m2m_number"`
	DeviceName            string     `gorm:"type:varchar(100)" json:"device_name,omitempty"`
	AllocatedToCustomerID *uint      `json:"allocated_to_customer_id,omitempty"`
	AllocatedToCustomer   string     `gorm:"type:varchar(100);column:allocated_to_customer_name" json:"allocated_to_customer_name,omitempty"`
	AllocatedAt           *time.Time `json:"allocated_at,omitempty"`
	RoomID                *uint      `json:"room_id,omitempty"`
	ElectronicObject      string     `gorm:"type:varchar(50)" json:"electronic_object,omitempty"`
	DeviceIcon            string     `gorm:"type:varchar(50)" json:"device_icon,omitempty"`
	QRCode                string     `gorm:"type:varchar(100);column:qr_code" json:"qr_code,omitempty"`
	IsActive              bool       `gorm:"default:true" json:"is_active"`
	SwitchIsActive        bool       `gorm:"default:false" json:"switch_is_active"`
	CreatedAt             time.Time  `json:"created_at"`
}

func (Device) TableName() string {
	return "devices"
}

// DeviceShared is the join row granting a secondary user visibility into an
// allocated device without transferring allocation
type DeviceShared struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	DeviceID         uint      `gorm:"index:idx_device_shared,priority:1;not null" json:"device_id"`
	SharedWithUserID uint      `gorm:"index:idx_device_shared,priority:2;not null" json:"shared_with_user_id"`
	SharedAt         time.Time `json:"shared_at"`
}

func (DeviceShared) TableName() string {
	return "device_shared_with"
}
