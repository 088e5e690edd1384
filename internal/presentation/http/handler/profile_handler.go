package handler

import (
	"github.com/clinicbook/receipts-api/internal/application/service"
	"github.com/clinicbook/receipts-api/internal/presentation/http/dto/request"
	"github.com/clinicbook/receipts-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get handles fetching the caller's profile
// @Summary Get profile
// @Description Get the caller's profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved successfully", gin.H{
		"profile":   profile,
		"photo_url": h.profileService.PhotoURL(profile),
	})
}

// Update handles updating the caller's profile
// @Summary Update profile
// @Description Update the caller's display name and phone
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} response.APIResponse
// @Router /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), &service.UpdateProfileInput{
		UserID:      *userID,
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated successfully", gin.H{
		"profile": profile,
	})
}

// UploadPhoto handles a multipart profile photo upload
// @Summary Upload profile photo
// @Description Store a profile image and record it on the profile
// @Tags profile
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Image file"
// @Success 200 {object} response.APIResponse
// @Router /profile/photo [post]
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		response.BadRequest(c, "A photo file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Unable to read the uploaded file")
		return
	}
	defer file.Close()

	profile, err := h.profileService.UploadPhoto(c.Request.Context(), *userID, fileHeader.Filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Photo uploaded successfully", gin.H{
		"profile":   profile,
		"photo_url": h.profileService.PhotoURL(profile),
	})
}
