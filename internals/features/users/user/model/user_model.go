package model

import (
	"time"

	"github.com/google/uuid"
)

// Dashboard roles. Only admin may enter the approval queue and
// user-management sections; enforcement lives in the role middleware.
const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleStaff       = "staff"
	RoleVolunteer   = "volunteer"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCoordinator, RoleStaff, RoleVolunteer:
		return true
	}
	return false
}

// UserModel represents the users table
type UserModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName       string     `gorm:"size:100;not null" json:"full_name"`
	Email          string     `gorm:"size:255;unique;not null" json:"email"`
	Password       string     `gorm:"not null" json:"-"`
	Role           string     `gorm:"type:varchar(20);not null;default:'staff'" json:"role"`
	IsActive       bool       `gorm:"not null;default:true" json:"is_active"`
	EmailConfirmed bool       `gorm:"not null;default:false" json:"email_confirmed"`
	LastSignInAt   *time.Time `gorm:"column:last_sign_in_at" json:"last_sign_in,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues fills defaults before insert
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = RoleStaff
	}
}
