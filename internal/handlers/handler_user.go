package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/ramidarshan07/wealthtrack/internal/core/ports/services"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/ramidarshan07/wealthtrack/internal/middleware"
)

// UserHandler serves the profile endpoints.
type UserHandler struct {
	service portssvc.UserSvcFacade
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service portssvc.UserSvcFacade) *UserHandler {
	return &UserHandler{service: service}
}

func registerUserRoutes(rg *gin.RouterGroup, service portssvc.UserSvcFacade) {
	h := NewUserHandler(service)

	user := rg.Group("/user")
	{
		user.GET("/profile", h.GetProfile)
		user.PUT("/profile", h.UpdateProfile)
		user.POST("/reset-password", h.ResetPassword)
	}
}

// GetProfile godoc
// @Summary Get profile
// @Tags user
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.MessageResponse
// @Router /user/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{Success: true, Data: dto.ToUserResponse(user)})
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Updates the profile from a multipart form; the optional qrcode part replaces the stored QR image.
// @Tags user
// @Accept mpfd
// @Produce json
// @Param name formData string true "Display Name"
// @Param email formData string true "Email"
// @Param phone formData string false "Phone"
// @Param upiId formData string false "UPI ID"
// @Param bankDetails formData string false "Bank details as JSON"
// @Param qrcode formData file false "Payment QR image"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.MessageResponse
// @Router /user/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	// The QR image is optional; http.ErrMissingFile is not an error here.
	qrcode, err := c.FormFile("qrcode")
	if err != nil && err != http.ErrMissingFile {
		respondBadRequest(c, "Invalid qrcode upload")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, req, qrcode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{Success: true, Data: dto.ToUserResponse(user)})
}

// ResetPassword godoc
// @Summary Reset password
// @Description Verifies the old password before storing a new one.
// @Tags user
// @Accept json
// @Produce json
// @Param reset body dto.ResetPasswordRequest true "Passwords"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Router /user/reset-password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), userID, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}
