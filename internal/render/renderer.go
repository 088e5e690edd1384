package render

import (
	"fmt"

	"github.com/clinicbook/receipts-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Layout selects one of the coexisting presentation variants of a receipt.
type Layout string

const (
	// LayoutInvoice is the full-page tax-invoice layout
	LayoutInvoice Layout = "invoice"
	// LayoutCompact is the half-page layout
	LayoutCompact Layout = "compact"
	// LayoutOverlay absolutely positions fields atop a prescription-style
	// background image; print rules hide the image so only text survives
	LayoutOverlay Layout = "overlay"
)

// ParseLayout parses a layout name, defaulting to the invoice layout
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "", string(LayoutInvoice):
		return LayoutInvoice, nil
	case string(LayoutCompact):
		return LayoutCompact, nil
	case string(LayoutOverlay):
		return LayoutOverlay, nil
	default:
		return "", fmt.Errorf("unknown layout %q", s)
	}
}

// TemplateView carries the visual styling consumed by the renderer
type TemplateView struct {
	Name       string
	HeaderBg   string
	HeaderText string
	BodyBg     string
	BodyText   string
	Accent     string
	Font       string
}

// ItemView is a line item projected for display
type ItemView struct {
	Name     string
	Quantity int
	Price    string
	Amount   string
}

// ReceiptView is the read-only projection of a persisted receipt. All
// amounts are pre-formatted to two decimals; the renderer never re-derives
// computed totals.
type ReceiptView struct {
	ReceiptNo     string
	CustomerName  string
	MobileNumber  string
	Address       string
	Branch        string
	Age           string
	BloodPressure string
	Pulse         string
	Date          string
	Items         []ItemView
	SubTotal      string
	TaxRate       string
	TaxAmount     string
	TotalAmount   string
}

// RenderInput is the deterministic input used for receipt rendering.
type RenderInput struct {
	Template TemplateView
	Receipt  ReceiptView
	Layout   Layout
}

// Renderer projects a receipt record onto an output document.
type Renderer interface {
	RenderHTML(input RenderInput) (string, error)
}

// BuildRenderInput projects persisted receipt fields and a visual template
// into a render input
func BuildRenderInput(receipt *entity.Receipt, tpl *entity.ReceiptTemplate, layout Layout) RenderInput {
	items := make([]ItemView, len(receipt.Items))
	for i, item := range receipt.Items {
		amount := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items[i] = ItemView{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price.StringFixed(2),
			Amount:   amount.StringFixed(2),
		}
	}

	view := ReceiptView{
		ReceiptNo:    receipt.ReceiptNo,
		CustomerName: receipt.CustomerName,
		MobileNumber: receipt.MobileNumber,
		Address:      receipt.Address,
		Branch:       receipt.Branch,
		Date:         receipt.ReceiptDate.Format("02 Jan 2006"),
		Items:        items,
		SubTotal:     receipt.SubTotal.StringFixed(2),
		TaxRate:      receipt.TaxRate.StringFixed(2),
		TaxAmount:    receipt.TaxAmount.StringFixed(2),
		TotalAmount:  receipt.TotalAmount.StringFixed(2),
	}
	if receipt.Age != nil {
		view.Age = fmt.Sprintf("%d", *receipt.Age)
	}
	if receipt.BloodPressure != nil {
		view.BloodPressure = *receipt.BloodPressure
	}
	if receipt.Pulse != nil {
		view.Pulse = *receipt.Pulse
	}

	return RenderInput{
		Template: TemplateView{
			Name:       tpl.Name,
			HeaderBg:   tpl.HeaderBg,
			HeaderText: tpl.HeaderText,
			BodyBg:     tpl.BodyBg,
			BodyText:   tpl.BodyText,
			Accent:     tpl.Accent,
			Font:       tpl.Font,
		},
		Receipt: view,
		Layout:  layout,
	}
}
