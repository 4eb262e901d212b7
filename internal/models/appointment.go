package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:32" json:"id"`

	Name  string `gorm:"size:100" json:"name"`
	Email string `gorm:"size:255;index" json:"email"`
	Phone string `gorm:"size:30" json:"phone"`

	// Service name as shown in the catalog at booking time.
	Service  string `gorm:"size:100" json:"service"`
	Date     string `gorm:"size:10" json:"date"` // YYYY-MM-DD
	Time     string `gorm:"size:5" json:"time"`  // HH:MM
	Duration int    `json:"duration"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}
