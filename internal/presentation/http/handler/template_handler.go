package handler

import (
	"github.com/clinicbook/receipts-api/internal/application/service"
	"github.com/clinicbook/receipts-api/internal/presentation/http/dto/request"
	"github.com/clinicbook/receipts-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TemplateHandler handles visual template HTTP requests
type TemplateHandler struct {
	templateService *service.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// List handles listing all templates
// @Summary List templates
// @Description All visual templates available for rendering
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templateService.ListTemplates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Templates retrieved successfully", templates)
}

// Get handles getting a single template
// @Summary Get template
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /templates/{id} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	id, ok := parseTemplateID(c)
	if !ok {
		return
	}

	template, err := h.templateService.GetTemplate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Template retrieved successfully", template)
}

// Create handles creating a template
// @Summary Create template
// @Description Create a named visual template for receipt rendering
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateTemplateRequest true "Template fields"
// @Success 201 {object} response.APIResponse
// @Router /admin/templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	var req request.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), &service.CreateTemplateInput{
		Name:       req.Name,
		HeaderBg:   req.HeaderBg,
		HeaderText: req.HeaderText,
		BodyBg:     req.BodyBg,
		BodyText:   req.BodyText,
		Accent:     req.Accent,
		Font:       req.Font,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Template created successfully", template)
}

// Delete handles deleting a template
// @Summary Delete template
// @Description Delete a template; the default template cannot be deleted
// @Tags templates
// @Security BearerAuth
// @Success 204
// @Failure 409 {object} response.APIResponse
// @Router /admin/templates/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
	id, ok := parseTemplateID(c)
	if !ok {
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// SetDefault handles marking a template as the default
// @Summary Set default template
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /admin/templates/{id}/default [put]
func (h *TemplateHandler) SetDefault(c *gin.Context) {
	id, ok := parseTemplateID(c)
	if !ok {
		return
	}

	if err := h.templateService.SetDefaultTemplate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Default template updated successfully", nil)
}

func parseTemplateID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return uuid.Nil, false
	}
	return id, true
}
