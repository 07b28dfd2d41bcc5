package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:150" json:"username"`
	Email    string `gorm:"uniqueIndex;size:255" json:"email"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON

	// Role is assigned at creation and never changes.
	Role string `gorm:"size:32;index" json:"role"`

	// Role-specific fields: phone and loyalty points for guests,
	// position/salary/hire date for staff and receptionists.
	Phone         string  `gorm:"size:32" json:"phone,omitempty"`
	Position      string  `gorm:"size:100" json:"position,omitempty"`
	Salary        float64 `json:"salary,omitempty"`
	HireDate      string  `gorm:"size:10" json:"hire_date,omitempty"`
	LoyaltyPoints int     `gorm:"column:loyalty_points;default:0" json:"loyalty_points"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
