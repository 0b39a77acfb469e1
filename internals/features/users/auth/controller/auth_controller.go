package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"betulabla_backend/internals/configs"
	"betulabla_backend/internals/features/users/auth/dto"
	authHelper "betulabla_backend/internals/features/users/auth/helper"
	authModel "betulabla_backend/internals/features/users/auth/model"
	"betulabla_backend/internals/features/users/auth/service"
	userModel "betulabla_backend/internals/features/users/user/model"
	helper "betulabla_backend/internals/helpers"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =======================
// Register
// =======================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	passwordHash, err := authHelper.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		FullName: body.FullName,
		Email:    strings.ToLower(strings.TrimSpace(body.Email)),
		Password: passwordHash,
	}
	user.SetDefaultValues()

	if err := ctrl.DB.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Registration successful", dto.ToUserDTO(user))
}

// =======================
// Login
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	err := ctrl.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(body.Email))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up user")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if !authHelper.CheckPassword(user.Password, body.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	now := time.Now().UTC()
	accessToken, err := service.SignAccessToken(configs.JWTSecret, user, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue access token")
	}
	refreshToken, err := service.SignRefreshToken(configs.JWTRefreshSecret, user.ID, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}

	if err := ctrl.DB.Create(&authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     service.ComputeRefreshHash(refreshToken, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(service.RefreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	// stamp last sign-in (best effort)
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("id = ?", user.ID).
		Update("last_sign_in_at", now).Error; err != nil {
		log.Printf("[WARN] last_sign_in_at update failed: %v", err)
	}
	user.LastSignInAt = &now

	setRefreshCookie(c, refreshToken, now)

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: accessToken,
		User:        dto.ToUserDTO(user),
	})
}

// =======================
// Refresh token (rotate)
// =======================
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	claims, err := service.ParseToken(configs.JWTRefreshSecret, refreshCookie)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	userID, err := service.SubjectFromClaims(claims)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	hash := service.ComputeRefreshHash(refreshCookie, configs.JWTRefreshSecret)
	var stored authModel.RefreshTokenModel
	err = ctrl.DB.
		Where("token = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		First(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token unknown or revoked")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	// ROTATE: drop the old hash before issuing the new pair
	if err := ctrl.DB.Delete(&stored).Error; err != nil {
		log.Printf("[WARN] refresh rotate delete failed: %v", err)
	}

	now := time.Now().UTC()
	newAccess, err := service.SignAccessToken(configs.JWTSecret, user, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue access token")
	}
	newRefresh, err := service.SignRefreshToken(configs.JWTRefreshSecret, user.ID, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}
	if err := ctrl.DB.Create(&authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     service.ComputeRefreshHash(newRefresh, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(service.RefreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	setRefreshCookie(c, newRefresh, now)

	return helper.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token": newAccess,
	})
}

// =======================
// Logout
// =======================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	// blacklist the current access token until its natural expiry
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	tokenString := ""
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		tokenString = strings.TrimSpace(parts[1])
	}
	if tokenString != "" {
		expiredAt := time.Now().Add(service.AccessTTLDefault)
		if claims, err := service.ParseToken(configs.JWTSecret, tokenString); err == nil {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
		if err := ctrl.DB.Create(&authModel.TokenBlacklistModel{
			Token:     tokenString,
			ExpiredAt: expiredAt,
		}).Error; err != nil {
			log.Printf("[WARN] blacklist insert failed: %v", err)
		}
	}

	// revoke the refresh token if present
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		hash := service.ComputeRefreshHash(refreshCookie, configs.JWTRefreshSecret)
		now := time.Now().UTC()
		if err := ctrl.DB.Model(&authModel.RefreshTokenModel{}).
			Where("token = ? AND revoked_at IS NULL", hash).
			Update("revoked_at", now).Error; err != nil {
			log.Printf("[WARN] refresh revoke failed: %v", err)
		}
	}

	clearRefreshCookie(c)

	return helper.JsonOK(c, "Logged out", nil)
}

// =======================
// Me
// =======================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "", dto.ToUserDTO(user))
}

// =======================
// Change password (self)
// =======================
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var body dto.ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if !authHelper.CheckPassword(user.Password, body.CurrentPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	newHash, err := authHelper.HashPassword(body.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	if err := ctrl.DB.Model(&user).Update("password", newHash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password updated", nil)
}

// =======================
// Forgot / reset password
// =======================
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var body dto.ForgotPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	err := ctrl.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(body.Email))).First(&user).Error
	if err == nil && user.IsActive {
		if err := IssueResetToken(ctrl.DB, user.ID); err != nil {
			log.Printf("[WARN] reset token issue failed: %v", err)
		}
	}

	// same response whether or not the account exists
	return helper.JsonOK(c, "If the account exists, a reset link has been sent", nil)
}

func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var body dto.ResetPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash := service.HashResetToken(body.Token)
	var reset authModel.PasswordResetModel
	err := ctrl.DB.
		Where("token_hash = ? AND used_at IS NULL AND expires_at > NOW()", hash).
		First(&reset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Reset token invalid or expired")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	newHash, err := authHelper.HashPassword(body.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	now := time.Now().UTC()
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).
			Where("id = ?", reset.UserID).
			Update("password", newHash).Error; err != nil {
			return err
		}
		if err := tx.Model(&reset).Update("used_at", now).Error; err != nil {
			return err
		}
		// invalidate existing sessions
		return tx.Model(&authModel.RefreshTokenModel{}).
			Where("user_id = ? AND revoked_at IS NULL", reset.UserID).
			Update("revoked_at", now).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}

	return helper.JsonUpdated(c, "Password has been reset", nil)
}

// IssueResetToken creates a one-time reset token for the user. The
// plaintext token is only logged for the mail hook; it never enters an
// API response.
func IssueResetToken(db *gorm.DB, userID uuid.UUID) error {
	plain, hash, err := service.GenerateResetToken()
	if err != nil {
		return err
	}
	if err := db.Create(&authModel.PasswordResetModel{
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: time.Now().UTC().Add(service.ResetTTLDefault),
	}).Error; err != nil {
		return err
	}
	// TODO(mailer): hand the plaintext token to the outgoing mail worker
	log.Printf("[INFO] password reset token issued for user=%s token=%s", userID, plain)
	return nil
}

/* ==========================
   small helpers
========================== */

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func setRefreshCookie(c *fiber.Ctx, token string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Expires:  now.Add(service.RefreshTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
