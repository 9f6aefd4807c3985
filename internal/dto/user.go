package dto

import (
	"time"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
)

// UserResponse is the full profile payload.
type UserResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone,omitempty"`
	UPIID       string             `json:"upiId,omitempty"`
	BankDetails domain.BankDetails `json:"bankDetails"`
	QRCode      string             `json:"qrcode,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// UpdateProfileRequest is bound from the multipart profile form. The
// optional QR image arrives as a separate file part.
type UpdateProfileRequest struct {
	Name        string `form:"name" binding:"required,max=80"`
	Email       string `form:"email" binding:"required,email"`
	Phone       string `form:"phone" binding:"omitempty,max=20"`
	UPIID       string `form:"upiId" binding:"omitempty,max=80"`
	BankDetails string `form:"bankDetails"` // JSON-encoded domain.BankDetails
}

// ResetPasswordRequest changes the password of the authenticated user.
type ResetPasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ProfileResponse wraps the profile payload with an explicit success flag,
// matching what the profile screens key on.
type ProfileResponse struct {
	Success bool         `json:"success"`
	Data    UserResponse `json:"data"`
}

// ToUserResponse converts a domain.User to its wire shape.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Phone:       user.Phone,
		UPIID:       user.UPIID,
		BankDetails: user.BankDetails,
		QRCode:      user.QRCodePath,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
