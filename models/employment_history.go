package models

import (
	"time"

	"gorm.io/gorm"
)

// EmploymentHistory is one organizational assignment interval of a user.
// A nil EndDate marks the current assignment.
type EmploymentHistory struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	TenantID   string         `gorm:"not null;index;type:uuid" json:"tenant_id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	StartDate  time.Time      `gorm:"not null;type:date" json:"start_date"`
	EndDate    *time.Time     `gorm:"type:date" json:"end_date"`
	Company    string         `gorm:"size:200" json:"company"`
	Branch     string         `gorm:"size:200" json:"branch"`
	Department string         `gorm:"size:200" json:"department"`
	Position   string         `gorm:"size:200" json:"position"`
}

// IsCurrent reports whether the entry is open-ended.
func (h *EmploymentHistory) IsCurrent() bool {
	return h.EndDate == nil
}
