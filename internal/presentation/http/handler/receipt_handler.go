package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/clinicbook/receipts-api/internal/application/service"
	"github.com/clinicbook/receipts-api/internal/domain/repository"
	"github.com/clinicbook/receipts-api/internal/presentation/http/dto/request"
	"github.com/clinicbook/receipts-api/internal/presentation/http/dto/response"
	"github.com/clinicbook/receipts-api/internal/render"
	"github.com/clinicbook/receipts-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService  *service.ReceiptService
	templateService *service.TemplateService
	renderer        render.Renderer
	pdfExporter     *render.PDFExporter
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(
	receiptService *service.ReceiptService,
	templateService *service.TemplateService,
	renderer render.Renderer,
	pdfExporter *render.PDFExporter,
) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService:  receiptService,
		templateService: templateService,
		renderer:        renderer,
		pdfExporter:     pdfExporter,
	}
}

// List handles listing the caller's receipts
// @Summary List receipts
// @Description List the caller's receipts, newest first
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var filter request.ReceiptFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := buildReceiptFilterParams(&filter)

	result, err := h.receiptService.ListReceipts(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
}

// Create handles creating a receipt
// @Summary Create receipt
// @Description Validate the receipt form, derive totals and persist
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateReceiptRequest true "Receipt form"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /receipts [post]
func (h *ReceiptHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var receiptDate time.Time
	if req.ReceiptDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ReceiptDate)
		if err != nil {
			response.BadRequest(c, "Receipt date must be in YYYY-MM-DD format")
			return
		}
		receiptDate = parsed
	}

	items := make([]service.ReceiptItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.ReceiptItemInput{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), &service.CreateReceiptInput{
		UserID:        *userID,
		CustomerName:  req.CustomerName,
		MobileNumber:  req.MobileNumber,
		Address:       req.Address,
		Branch:        req.Branch,
		Age:           req.Age,
		BloodPressure: req.BloodPressure,
		Pulse:         req.Pulse,
		ReceiptDate:   receiptDate,
		Items:         items,
		TaxRate:       req.TaxRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", receipt)
}

// Get handles getting a single receipt
// @Summary Get receipt
// @Description Get a receipt by ID
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /receipts/{id} [get]
func (h *ReceiptHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Delete handles deleting a receipt
// @Summary Delete receipt
// @Description Permanently delete a receipt by ID
// @Tags receipts
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} response.APIResponse
// @Router /receipts/{id} [delete]
func (h *ReceiptHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Render handles rendering a receipt as a printable HTML page
// @Summary Render receipt
// @Description Render a receipt in the requested layout with a visual template
// @Tags receipts
// @Security BearerAuth
// @Produce html
// @Param layout query string false "Layout variant" Enums(invoice, compact, overlay)
// @Param template_id query string false "Visual template ID"
// @Success 200 {string} string "HTML document"
// @Router /receipts/{id}/render [get]
func (h *ReceiptHandler) Render(c *gin.Context) {
	input, ok := h.buildRenderInput(c)
	if !ok {
		return
	}

	html, err := h.renderer.RenderHTML(*input)
	if err != nil {
		response.InternalServerError(c, "Failed to render receipt")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// ExportPDF handles exporting a receipt as a downloadable PDF
// @Summary Export receipt as PDF
// @Description Generate a single-page PDF for a receipt
// @Tags receipts
// @Security BearerAuth
// @Produce application/pdf
// @Param template_id query string false "Visual template ID"
// @Success 200 {file} file "PDF document"
// @Router /receipts/{id}/pdf [get]
func (h *ReceiptHandler) ExportPDF(c *gin.Context) {
	input, ok := h.buildRenderInput(c)
	if !ok {
		return
	}

	pdfBytes, err := h.pdfExporter.Export(*input)
	if err != nil {
		response.InternalServerError(c, "Failed to generate PDF")
		return
	}

	filename := fmt.Sprintf("receipt-%s.pdf", input.Receipt.ReceiptNo)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// buildRenderInput loads the receipt and resolves the layout and template
// from query parameters, writing the error response itself on failure
func (h *ReceiptHandler) buildRenderInput(c *gin.Context) (*render.RenderInput, bool) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return nil, false
	}

	layout, err := render.ParseLayout(c.Query("layout"))
	if err != nil {
		response.BadRequest(c, "Unknown layout")
		return nil, false
	}

	var templateID *uuid.UUID
	if raw := c.Query("template_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid template ID")
			return nil, false
		}
		templateID = &parsed
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}

	template, err := h.templateService.ResolveTemplate(c.Request.Context(), templateID)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}

	input := render.BuildRenderInput(receipt, template, layout)
	return &input, true
}

// buildReceiptFilterParams converts the bound query filter into repository
// filter params
func buildReceiptFilterParams(filter *request.ReceiptFilterRequest) *repository.ReceiptFilterParams {
	params := &repository.ReceiptFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
		Branch: filter.Branch,
	}
	params.Pagination.Validate()

	if filter.StartDate != "" {
		if start, err := time.Parse("2006-01-02", filter.StartDate); err == nil {
			params.StartDate = &start
		}
	}
	if filter.EndDate != "" {
		if end, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			params.EndDate = &end
		}
	}

	return params
}
