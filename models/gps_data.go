package models

import "time"

// GpsData is an append-only ping log entry. Never updated; inserted on
// every report and deleted only in bulk.
type GpsData struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DeviceCode string    `gorm:"type:varchar(50);index:idx_gps_device_ts,priority:1;not null" json:"device_code"`
	Latitude   float64   `gorm:"not null" json:"latitude"`
	Longitude  float64   `gorm:"not null" json:"longitude"`
	UserID     *uint     `json:"user_id,omitempty"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
	Timestamp  time.Time `gorm:"index:idx_gps_device_ts,priority:2;not null" json:"timestamp"`
}

func (GpsData) TableName() string {
	return "gps_data"
}
