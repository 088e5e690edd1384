package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/clinicbook/receipts-api/internal/domain/entity"
	"github.com/clinicbook/receipts-api/internal/render"
	"github.com/shopspring/decimal"
)

func sampleReceipt() *entity.Receipt {
	age := 34
	bp := "120/80"
	return &entity.Receipt{
		ReceiptNo:     "RCT-AB12CD34",
		CustomerName:  "Asha Verma",
		MobileNumber:  "9876543210",
		Address:       "12 MG Road",
		Branch:        "Indiranagar",
		Age:           &age,
		BloodPressure: &bp,
		ReceiptDate:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Items: entity.ReceiptItems{
			{Name: "Cleaning", Quantity: 1, Price: decimal.NewFromInt(500)},
			{Name: "X-Ray", Quantity: 2, Price: decimal.NewFromInt(150)},
		},
		TaxRate:     decimal.NewFromInt(18),
		SubTotal:    decimal.NewFromInt(800),
		TaxAmount:   decimal.NewFromInt(144),
		TotalAmount: decimal.NewFromInt(944),
	}
}

func sampleTemplate() *entity.ReceiptTemplate {
	tpl := &entity.ReceiptTemplate{Name: "Classic"}
	tpl.ApplyDefaults()
	return tpl
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		in      string
		want    render.Layout
		wantErr bool
	}{
		{in: "", want: render.LayoutInvoice},
		{in: "invoice", want: render.LayoutInvoice},
		{in: "compact", want: render.LayoutCompact},
		{in: "overlay", want: render.LayoutOverlay},
		{in: "poster", wantErr: true},
		{in: "Invoice", wantErr: true},
	}

	for _, tt := range tests {
		got, err := render.ParseLayout(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLayout(%q) expected an error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLayout(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLayout(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildRenderInputFormatsPersistedFields(t *testing.T) {
	input := render.BuildRenderInput(sampleReceipt(), sampleTemplate(), render.LayoutInvoice)

	rc := input.Receipt
	if rc.SubTotal != "800.00" || rc.TaxAmount != "144.00" || rc.TotalAmount != "944.00" {
		t.Errorf("amounts = %s / %s / %s", rc.SubTotal, rc.TaxAmount, rc.TotalAmount)
	}
	if rc.Date != "14 Mar 2026" {
		t.Errorf("date = %q", rc.Date)
	}
	if rc.Age != "34" || rc.BloodPressure != "120/80" || rc.Pulse != "" {
		t.Errorf("vitals = %q / %q / %q", rc.Age, rc.BloodPressure, rc.Pulse)
	}

	if len(rc.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(rc.Items))
	}
	if rc.Items[1].Amount != "300.00" {
		t.Errorf("second item amount = %q, want 300.00", rc.Items[1].Amount)
	}
	if input.Template.Font == "" || input.Template.HeaderBg == "" {
		t.Errorf("template view is missing styling: %+v", input.Template)
	}
}

func TestHTMLRendererLayouts(t *testing.T) {
	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		t.Fatalf("NewHTMLRenderer: %v", err)
	}

	for _, layout := range []render.Layout{render.LayoutInvoice, render.LayoutCompact, render.LayoutOverlay} {
		t.Run(string(layout), func(t *testing.T) {
			input := render.BuildRenderInput(sampleReceipt(), sampleTemplate(), layout)

			html, err := renderer.RenderHTML(input)
			if err != nil {
				t.Fatalf("RenderHTML: %v", err)
			}

			for _, want := range []string{"RCT-AB12CD34", "944.00", "@media print"} {
				if !strings.Contains(html, want) {
					t.Errorf("%s layout output is missing %q", layout, want)
				}
			}
		})
	}
}

func TestHTMLRendererEscapesUserContent(t *testing.T) {
	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		t.Fatalf("NewHTMLRenderer: %v", err)
	}

	receipt := sampleReceipt()
	receipt.CustomerName = `<script>alert("x")</script>`
	input := render.BuildRenderInput(receipt, sampleTemplate(), render.LayoutInvoice)

	html, err := renderer.RenderHTML(input)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Error("customer name was not escaped")
	}
}

func TestPDFExport(t *testing.T) {
	exporter := render.NewPDFExporter()
	input := render.BuildRenderInput(sampleReceipt(), sampleTemplate(), render.LayoutInvoice)

	pdfBytes, err := exporter.Export(input)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("empty PDF output")
	}
	if !strings.HasPrefix(string(pdfBytes[:5]), "%PDF-") {
		t.Errorf("output does not start with the PDF magic, got %q", pdfBytes[:5])
	}
}
