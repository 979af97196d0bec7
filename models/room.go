package models

import "time"

// Room is owned by exactly one house and cascade-deleted with it.
// Devices keep their room_id until an operator reassigns them.
type Room struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HouseID     uint      `gorm:"index;not null" json:"house_id"`
	RoomName    string    `gorm:"type:varchar(100);not null" json:"room_name"`
	RoomType    string    `gorm:"type:varchar(50)" json:"room_type,omitempty"`
	Description string    `gorm:"type:varchar(255)" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Room) TableName() string {
	return "rooms"
}
