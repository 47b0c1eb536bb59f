package models

import (
	"time"
)

type ReportStatus string
type ReportCategory string

const (
	ReportPending  ReportStatus = "pending"
	ReportOngoing  ReportStatus = "ongoing"
	ReportResolved ReportStatus = "resolved"
)

const (
	CategoryMaintenance ReportCategory = "maintenance"
	CategorySafety      ReportCategory = "safety"
	CategoryCleanliness ReportCategory = "cleanliness"
	CategoryOther       ReportCategory = "other"
)

type Report struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null;size:200"`
	Description string         `json:"description" gorm:"type:text"`
	Latitude    float64        `json:"latitude" gorm:"type:decimal(10,7);not null"`
	Longitude   float64        `json:"longitude" gorm:"type:decimal(10,7);not null"`
	Category    ReportCategory `json:"category" gorm:"size:50;default:'other'"`
	Status      ReportStatus   `json:"status" gorm:"size:50;default:'pending'"`

	// Owner is optional; reports can be filed anonymously.
	UserID *uint `json:"-"`
	User   *User `json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Report) TableName() string {
	return "reports"
}
