package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"uniqueIndex;size:100;not null" json:"username"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Email        string     `gorm:"uniqueIndex;size:255" json:"email"`
	FullName     string     `gorm:"size:255" json:"fullName"`
	Role         string     `gorm:"size:32;not null;default:faculty" json:"role"`
	Department   string     `gorm:"size:255" json:"department"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin"`
	IsActive     bool       `gorm:"not null;default:true" json:"isActive"`
}

// Account roles. Metadata only: no route today changes behavior based
// on role.
const (
	RoleAdmin      = "admin"
	RoleFaculty    = "faculty"
	RoleResearcher = "researcher"
	RoleStudent    = "student"
)
