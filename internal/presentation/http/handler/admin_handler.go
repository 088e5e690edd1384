package handler

import (
	"github.com/clinicbook/receipts-api/internal/application/service"
	"github.com/clinicbook/receipts-api/internal/presentation/http/dto/request"
	"github.com/clinicbook/receipts-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles administrative HTTP requests
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers handles listing all users with receipt counts
// @Summary List users
// @Description All registered users with per-user receipt counts
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var params struct {
		Page    int `form:"page"`
		PerPage int `form:"per_page"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	pag := newPaginationParams(params.Page, params.PerPage)
	result, err := h.adminService.ListUsers(c.Request.Context(), pag)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Users retrieved successfully", result)
}

// ListUserReceipts handles the admin drill-down into a user's receipts
// @Summary List a user's receipts
// @Description A given user's receipts, newest first
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /admin/users/{id}/receipts [get]
func (h *AdminHandler) ListUserReceipts(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var filter request.ReceiptFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := buildReceiptFilterParams(&filter)

	result, err := h.adminService.ListUserReceipts(c.Request.Context(), userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
}

// SetUserRole handles assigning the user/admin role tag
// @Summary Set user role
// @Description Assign the user or admin role to an account
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SetUserRoleRequest true "Role"
// @Success 200 {object} response.APIResponse
// @Router /admin/users/{id}/role [put]
func (h *AdminHandler) SetUserRole(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req request.SetUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.adminService.SetUserRole(c.Request.Context(), userID, req.Role); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Role updated successfully", nil)
}

// UpdateUserCredentials handles the credential-edit admin action
// @Summary Update user credentials
// @Tags admin
// @Security BearerAuth
// @Failure 501 {object} response.APIResponse
// @Router /admin/users/{id}/credentials [put]
func (h *AdminHandler) UpdateUserCredentials(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	response.Error(c, h.adminService.UpdateUserCredentials(c.Request.Context(), userID))
}

// BlockUser handles the block admin action
// @Summary Block user
// @Tags admin
// @Security BearerAuth
// @Failure 501 {object} response.APIResponse
// @Router /admin/users/{id}/block [post]
func (h *AdminHandler) BlockUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	response.Error(c, h.adminService.BlockUser(c.Request.Context(), userID))
}

// UnblockUser handles the unblock admin action
// @Summary Unblock user
// @Tags admin
// @Security BearerAuth
// @Failure 501 {object} response.APIResponse
// @Router /admin/users/{id}/unblock [post]
func (h *AdminHandler) UnblockUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	response.Error(c, h.adminService.UnblockUser(c.Request.Context(), userID))
}

// DeleteUser handles the account-removal admin action
// @Summary Delete user
// @Tags admin
// @Security BearerAuth
// @Failure 501 {object} response.APIResponse
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	response.Error(c, h.adminService.DeleteUser(c.Request.Context(), userID))
}

// ImpersonateUser handles the impersonation admin action
// @Summary Impersonate user
// @Tags admin
// @Security BearerAuth
// @Failure 501 {object} response.APIResponse
// @Router /admin/users/{id}/impersonate [post]
func (h *AdminHandler) ImpersonateUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	response.Error(c, h.adminService.ImpersonateUser(c.Request.Context(), userID))
}

func parseUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return uuid.Nil, false
	}
	return id, true
}
