package model

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetModel is a one-time reset token, stored hashed. Created
// either by the public forgot-password flow or by an admin reset action.
type PasswordResetModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash []byte     `gorm:"type:bytea;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (PasswordResetModel) TableName() string {
	return "password_reset_tokens"
}
