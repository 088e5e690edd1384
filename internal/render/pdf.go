package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
)

// PDFExporter renders a receipt as a single-page PDF from persisted fields.
type PDFExporter struct{}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Export produces the PDF bytes for a receipt. All amounts come from the
// view, nothing is recomputed here.
func (e *PDFExporter) Export(input RenderInput) ([]byte, error) {
	t := input.Template
	rc := input.Receipt

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Receipt %s", rc.ReceiptNo), false)
	pdf.AddPage()

	font := pdfFont(t.Font)

	// Header band
	hr, hg, hb := hexToRGB(t.HeaderBg, 30, 58, 95)
	pdf.SetFillColor(hr, hg, hb)
	pdf.Rect(0, 0, 210, 32, "F")
	tr, tg, tb := hexToRGB(t.HeaderText, 255, 255, 255)
	pdf.SetTextColor(tr, tg, tb)
	pdf.SetFont(font, "B", 18)
	pdf.SetXY(12, 8)
	pdf.CellFormat(0, 8, "Tax Invoice", "", 1, "L", false, 0, "")
	pdf.SetFont(font, "", 10)
	pdf.SetX(12)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s  %s", rc.ReceiptNo, rc.Date), "", 1, "L", false, 0, "")

	br, bg, bb := hexToRGB(t.BodyText, 31, 41, 51)
	pdf.SetTextColor(br, bg, bb)
	pdf.SetFont(font, "", 10)
	pdf.SetXY(12, 40)
	for _, row := range [][2]string{
		{"Patient", rc.CustomerName},
		{"Mobile", rc.MobileNumber},
		{"Address", rc.Address},
		{"Branch", rc.Branch},
	} {
		pdf.SetX(12)
		pdf.CellFormat(28, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}

	// Items table
	ar, ag, ab := hexToRGB(t.Accent, 47, 133, 90)
	pdf.Ln(4)
	pdf.SetFillColor(ar, ag, ab)
	pdf.SetTextColor(tr, tg, tb)
	pdf.SetFont(font, "B", 10)
	pdf.SetX(12)
	pdf.CellFormat(86, 8, "Item", "", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Price", "", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Amount", "", 1, "R", true, 0, "")

	pdf.SetTextColor(br, bg, bb)
	pdf.SetFont(font, "", 10)
	pdf.SetDrawColor(ar, ag, ab)
	for _, item := range rc.Items {
		pdf.SetX(12)
		pdf.CellFormat(86, 7, item.Name, "B", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, strconv.Itoa(item.Quantity), "B", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, item.Price, "B", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, item.Amount, "B", 1, "R", false, 0, "")
	}

	// Totals
	pdf.Ln(4)
	pdf.SetX(118)
	pdf.CellFormat(40, 6, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, rc.SubTotal, "", 1, "R", false, 0, "")
	pdf.SetX(118)
	pdf.CellFormat(40, 6, fmt.Sprintf("Tax (%s%%)", rc.TaxRate), "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, rc.TaxAmount, "", 1, "R", false, 0, "")
	pdf.SetX(118)
	pdf.SetFont(font, "B", 12)
	pdf.SetTextColor(ar, ag, ab)
	pdf.CellFormat(40, 8, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, rc.TotalAmount, "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pdfFont maps a template font family to one of the core PDF fonts.
func pdfFont(name string) string {
	switch strings.ToLower(name) {
	case "times", "georgia", "serif":
		return "Times"
	case "courier", "monospace":
		return "Courier"
	default:
		return "Helvetica"
	}
}

// hexToRGB parses "#rrggbb", falling back to the given defaults on bad input.
func hexToRGB(hex string, dr, dg, db int) (int, int, int) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return dr, dg, db
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return dr, dg, db
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
