package request

// CreateTemplateRequest represents a template creation request. Colors are
// hex strings; blanks fall back to the stock palette.
type CreateTemplateRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	HeaderBg   string `json:"header_bg"`
	HeaderText string `json:"header_text"`
	BodyBg     string `json:"body_bg"`
	BodyText   string `json:"body_text"`
	Accent     string `json:"accent"`
	Font       string `json:"font"`
}
