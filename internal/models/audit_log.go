package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EventID        string `gorm:"size:36;uniqueIndex;not null" json:"event_id"`
	ProfessionalID string `gorm:"size:100;index;not null" json:"professional_id"`
	Action         string `gorm:"size:50;not null" json:"action"`

	Day      string `gorm:"size:10" json:"day"`
	Metadata string `gorm:"type:text" json:"metadata"`

	OccurredAt time.Time `json:"occurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}
