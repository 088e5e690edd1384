package render

import (
	"bytes"
	"html/template"
)

// HTMLRenderer is the single generic renderer. Layout differences are data:
// each variant is a parsed template fed the same RenderInput, styled by the
// visual template's colors and font.
type HTMLRenderer struct {
	templates *template.Template
}

// NewHTMLRenderer parses the built-in layout templates
func NewHTMLRenderer() (*HTMLRenderer, error) {
	t := template.New("receipt")
	var err error
	for name, body := range map[string]string{
		string(LayoutInvoice): invoiceLayout,
		string(LayoutCompact): compactLayout,
		string(LayoutOverlay): overlayLayout,
	} {
		if t, err = t.New(name).Parse(body); err != nil {
			return nil, err
		}
	}
	return &HTMLRenderer{templates: t}, nil
}

// RenderHTML projects the input onto the selected layout
func (r *HTMLRenderer) RenderHTML(input RenderInput) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, string(input.Layout), input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const invoiceLayout = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Receipt {{.Receipt.ReceiptNo}}</title>
<style>
  @page { size: A4; margin: 15mm; }
  @media print { .no-print { display: none; } }
  body { font-family: {{.Template.Font}}, sans-serif; background: {{.Template.BodyBg}}; color: {{.Template.BodyText}}; margin: 0; }
  .header { background: {{.Template.HeaderBg}}; color: {{.Template.HeaderText}}; padding: 24px; }
  .header h1 { margin: 0; font-size: 24px; }
  .meta { padding: 16px 24px; }
  .meta td { padding: 2px 12px 2px 0; }
  table.items { width: 100%; border-collapse: collapse; margin: 0 0 16px; }
  table.items th { background: {{.Template.Accent}}; color: {{.Template.HeaderText}}; text-align: left; padding: 8px; }
  table.items td { border-bottom: 1px solid {{.Template.Accent}}; padding: 8px; }
  .totals { text-align: right; padding: 0 24px 24px; }
  .totals .grand { color: {{.Template.Accent}}; font-size: 18px; font-weight: bold; }
</style>
</head>
<body>
<div class="no-print"><button onclick="window.print()">Print</button></div>
<div class="header">
  <h1>Tax Invoice</h1>
  <div>{{.Receipt.ReceiptNo}} &middot; {{.Receipt.Date}}</div>
</div>
<div class="meta">
<table>
  <tr><td>Patient</td><td>{{.Receipt.CustomerName}}</td></tr>
  <tr><td>Mobile</td><td>{{.Receipt.MobileNumber}}</td></tr>
  <tr><td>Address</td><td>{{.Receipt.Address}}</td></tr>
  <tr><td>Branch</td><td>{{.Receipt.Branch}}</td></tr>
</table>
</div>
<table class="items">
  <tr><th>Item</th><th>Qty</th><th>Price</th><th>Amount</th></tr>
  {{range .Receipt.Items}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td><td>{{.Amount}}</td></tr>
  {{end}}
</table>
<div class="totals">
  <div>Subtotal: {{.Receipt.SubTotal}}</div>
  <div>Tax ({{.Receipt.TaxRate}}%): {{.Receipt.TaxAmount}}</div>
  <div class="grand">Total: {{.Receipt.TotalAmount}}</div>
</div>
</body>
</html>`

const compactLayout = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Receipt {{.Receipt.ReceiptNo}}</title>
<style>
  @page { size: A5; margin: 10mm; }
  @media print { .no-print { display: none; } }
  body { font-family: {{.Template.Font}}, sans-serif; background: {{.Template.BodyBg}}; color: {{.Template.BodyText}}; margin: 0; font-size: 12px; }
  .header { background: {{.Template.HeaderBg}}; color: {{.Template.HeaderText}}; padding: 10px 14px; }
  .body { padding: 10px 14px; }
  table.items { width: 100%; border-collapse: collapse; }
  table.items th, table.items td { padding: 3px 6px; text-align: left; border-bottom: 1px dotted {{.Template.Accent}}; }
  .grand { color: {{.Template.Accent}}; font-weight: bold; }
</style>
</head>
<body>
<div class="no-print"><button onclick="window.print()">Print</button></div>
<div class="header">{{.Receipt.ReceiptNo}} &middot; {{.Receipt.Date}} &middot; {{.Receipt.Branch}}</div>
<div class="body">
  <div>{{.Receipt.CustomerName}} &middot; {{.Receipt.MobileNumber}}</div>
  <table class="items">
    {{range .Receipt.Items}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.Amount}}</td></tr>
    {{end}}
  </table>
  <div>Subtotal {{.Receipt.SubTotal}} &middot; Tax {{.Receipt.TaxAmount}} &middot; <span class="grand">Total {{.Receipt.TotalAmount}}</span></div>
</div>
</body>
</html>`

const overlayLayout = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Receipt {{.Receipt.ReceiptNo}}</title>
<style>
  @page { size: A5 portrait; margin: 0; }
  @media print {
    .no-print { display: none; }
    .template-bg { display: none; }
  }
  body { font-family: {{.Template.Font}}, sans-serif; color: {{.Template.BodyText}}; margin: 0; }
  .sheet { position: relative; width: 148mm; height: 210mm; }
  .template-bg { position: absolute; inset: 0; width: 100%; height: 100%; }
  .field { position: absolute; font-size: 11px; }
  .name { top: 42mm; left: 25mm; }
  .date { top: 42mm; left: 105mm; }
  .mobile { top: 49mm; left: 25mm; }
  .age { top: 49mm; left: 105mm; }
  .bp { top: 56mm; left: 25mm; }
  .pulse { top: 56mm; left: 105mm; }
  .items { top: 70mm; left: 20mm; right: 20mm; }
  .items td { font-size: 11px; padding: 1mm 2mm; }
  .total { top: 180mm; left: 105mm; font-weight: bold; color: {{.Template.Accent}}; }
</style>
</head>
<body>
<div class="no-print"><button onclick="window.print()">Print</button></div>
<div class="sheet">
  <img class="template-bg" src="/assets/prescription-bg.png" alt="">
  <span class="field name">{{.Receipt.CustomerName}}</span>
  <span class="field date">{{.Receipt.Date}}</span>
  <span class="field mobile">{{.Receipt.MobileNumber}}</span>
  <span class="field age">{{.Receipt.Age}}</span>
  <span class="field bp">{{.Receipt.BloodPressure}}</span>
  <span class="field pulse">{{.Receipt.Pulse}}</span>
  <table class="field items">
    {{range .Receipt.Items}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.Amount}}</td></tr>
    {{end}}
  </table>
  <span class="field total">{{.Receipt.TotalAmount}}</span>
</div>
</body>
</html>`
