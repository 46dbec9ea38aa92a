package dto

import (
	"hoteloncall/infras/jwt"
	"hoteloncall/internal/domains/user/model"
	gModel "hoteloncall/shared/model"
	"hoteloncall/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=3"`
	UserType string `json:"userType" validate:"required,oneof=guest staff manager cook maintenance cleaner"`
}

func (r *RegisterRequest) ToModel(username, hashedPassword string) model.User {
	return model.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		UserType: r.UserType,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"userType" validate:"required,oneof=guest staff manager cook maintenance cleaner"`
}

// AuthResponse is the envelope the web client navigates on. Logical
// failures (wrong password, duplicate email) ride in it with Success=false
// and HTTP 200, matching the legacy client contract.
type AuthResponse struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	RedirectTo string         `json:"redirectTo,omitempty"`
	Email      string         `json:"email,omitempty"`
	Tokens     *jwt.TokenPair `json:"tokens,omitempty"`
}

type SendVerificationCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	Code        string `json:"code"        validate:"required,len=6"`
	NewPassword string `json:"newPassword" validate:"required,min=3"`
}

type MessageResponse struct {
	Message    string `json:"message"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=3"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required"`
}
