package models

import "time"

// House is owned by exactly one user
type House struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	HouseName string    `gorm:"type:varchar(100);not null" json:"house_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (House) TableName() string {
	return "houses"
}
