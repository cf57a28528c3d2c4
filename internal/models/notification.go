package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string         `gorm:"not null;index" json:"userId"`
	Type    string         `gorm:"not null" json:"type"` // "booking_confirmed", "account_created", ...
	Message string         `gorm:"not null" json:"message"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"` // {"availability_id": 42, ...}
	IsRead  bool           `gorm:"default:false" json:"read"`
	ReadAt  *time.Time     `json:"readAt,omitempty"`
}
