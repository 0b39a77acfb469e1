package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "betulabla_backend/internals/features/users/user/model"
)

// ============================
// Request DTOs
// ============================

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// ============================
// Response DTOs
// ============================

type UserDTO struct {
	ID             uuid.UUID  `json:"id"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	EmailConfirmed bool       `json:"email_confirmed"`
	LastSignIn     *time.Time `json:"last_sign_in"`
	CreatedAt      time.Time  `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	User        UserDTO `json:"user"`
}

// ============================
// Converter
// ============================

func ToUserDTO(u userModel.UserModel) UserDTO {
	return UserDTO{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		Role:           u.Role,
		EmailConfirmed: u.EmailConfirmed,
		LastSignIn:     u.LastSignInAt,
		CreatedAt:      u.CreatedAt,
	}
}
