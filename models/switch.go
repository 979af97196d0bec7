package models

import "time"

// Switch is the controllable record materialized when a device is allocated.
// One switch per device; allocation upserts it.
type Switch struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	DeviceID              uint       `gorm:"index;not null" json:"device_id"`
	DeviceCode            string     `gorm:"type:varchar(50);not null" json:"device_code"`
	DeviceName            string     `gorm:"type:varchar(100)" json:"device_name,omitempty"`
	DeviceM2MNumber       string     `gorm:"type:varchar(13);column:device_m2m_number" json:"device_m2m_number,omitempty"`
	RoomID                uint       `gorm:"index;not null" json:"room_id"`
	HouseID               uint       `gorm:"index;not null" json:"house_id"`
	AllocatedToCustomerID uint       `gorm:"index;not null" json:"allocated_to_customer_id"`
	AllocatedToCustomer   string     `gorm:"type:varchar(100);column:allocated_to_customer_name" json:"allocated_to_customer_name,omitempty"`
	ElectronicObject      string     `gorm:"type:varchar(50)" json:"electronic_object,omitempty"`
	DeviceIcon            string     `gorm:"type:varchar(50)" json:"device_icon,omitempty"`
	SwitchIsActive        bool       `gorm:"default:false" json:"switch_is_active"`
	AllocatedAt           *time.Time `json:"allocated_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func (Switch) TableName() string {
	return "switches"
}
