// Package documents renders the six statutory billing documents from the
// engine's view models. Renderers are projections only: every figure they
// print comes off a view, none is recomputed here.
package documents

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/billing"
)

var tmplFuncs = template.FuncMap{
	"inr":   billing.FormatINR,
	"whole": billing.FormatINRWhole,
	"qty":   billing.FormatQty,
	"pct": func(p float64) string {
		return fmt.Sprintf("%g%%", p*100)
	},
}

// pageCSS is shared by all documents. The reverse variant flips to
// white-on-black for sites that photocopy onto tinted paper.
const pageCSS = `
@page { size: A4; margin: 12mm; }
body { font-family: Arial, sans-serif; font-size: 10pt; margin: 0; color: #000; background: #fff; }
body.reverse { color: #fff; background: #000; }
body.reverse th { background: #222; }
h1 { text-align: center; font-size: 14pt; margin: 0 0 10px 0; text-transform: uppercase; }
table { width: 100%; border-collapse: collapse; margin-top: 8px; }
th, td { border: 1px solid currentColor; padding: 4px 6px; text-align: left; vertical-align: top; }
th { background: #f0f0f0; text-align: center; }
td.num, th.num { text-align: right; }
.meta p { margin: 2px 0; }
.total-row td { font-weight: bold; }
.sign { margin-top: 48px; display: flex; justify-content: space-between; }
.sign div { text-align: center; width: 30%; border-top: 1px solid currentColor; padding-top: 4px; }
`

const metaBlock = `<div class="meta">
<p><strong>Agreement No:</strong> {{.Metadata.AgreementNo}}</p>
<p><strong>Name of Work:</strong> {{.Metadata.WorkName}}</p>
<p><strong>Name of Firm:</strong> {{.Metadata.FirmName}}</p>
<p><strong>Date of Commencement:</strong> {{.Metadata.DateCommencement}}</p>
<p><strong>Schedule Date of Completion:</strong> {{.Metadata.DateCompletion}}</p>
{{if .Metadata.ActualCompletion}}<p><strong>Actual Date of Completion:</strong> {{.Metadata.ActualCompletion}}</p>{{end}}
<p><strong>Bill:</strong> {{.Metadata.BillSerial}} ({{.Metadata.BillType}})</p>
</div>`

const firstPageHTML = `<!DOCTYPE html>
<html><head><title>Contractor Bill</title><style>{{css}}</style></head>
<body class="{{bodyClass}}">
<h1>Contractor Bill &mdash; First Page Summary</h1>
` + metaBlock + `
<table>
<thead><tr><th>Item No.</th><th>Description</th><th>Unit</th><th class="num">Quantity</th><th class="num">Rate</th><th class="num">Amount</th></tr></thead>
<tbody>
{{range .Items}}<tr><td>{{.ItemNo}}</td><td>{{.Description}}</td><td>{{.Unit}}</td><td class="num">{{qty .Quantity}}</td><td class="num">{{inr .Rate}}</td><td class="num">{{inr .Amount}}</td></tr>
{{end}}
<tr class="total-row"><td colspan="5">Total (Items as per Work Order)</td><td class="num">{{inr .Main.BaseTotal}}</td></tr>
<tr class="total-row"><td colspan="5">Tender Premium @ {{pct .Main.PremiumPercent}}</td><td class="num">{{inr .Main.PremiumAmount}}</td></tr>
<tr class="total-row"><td colspan="5">Grand Total</td><td class="num">{{inr .Main.GrandTotal}}</td></tr>
<tr class="total-row"><td colspan="5">Extra Items (incl. premium)</td><td class="num">{{inr .Extra.GrandTotal}}</td></tr>
<tr class="total-row"><td colspan="5">Gross Amount Payable</td><td class="num">{{inr .Payment.GrossPayable}}</td></tr>
<tr class="total-row"><td colspan="5">Amount Paid Vide Last Bill</td><td class="num">{{inr .Payment.AmountPaidLastBill}}</td></tr>
<tr class="total-row"><td colspan="5">Total Deductions</td><td class="num">{{inr .Payment.TotalDeductions}}</td></tr>
<tr class="total-row"><td colspan="5">Net Payable Amount</td><td class="num">{{whole .Payment.NetPayable}}</td></tr>
</tbody>
</table>
<div class="sign"><div>Contractor</div><div>Junior Engineer</div><div>Executive Engineer</div></div>
</body></html>`

const deviationHTML = `<!DOCTYPE html>
<html><head><title>Deviation Statement</title><style>{{css}}</style></head>
<body class="{{bodyClass}}">
<h1>Deviation Statement</h1>
` + metaBlock + `
<table>
<thead><tr>
<th rowspan="2">Item No.</th><th rowspan="2">Description</th><th rowspan="2">Unit</th><th rowspan="2" class="num">Rate</th>
<th colspan="2">As per Work Order</th><th colspan="2">As Executed</th><th colspan="2">Excess</th><th colspan="2">Saving</th><th rowspan="2">Remark</th>
</tr><tr>
<th class="num">Qty</th><th class="num">Amount</th><th class="num">Qty</th><th class="num">Amount</th><th class="num">Qty</th><th class="num">Amount</th><th class="num">Qty</th><th class="num">Amount</th>
</tr></thead>
<tbody>
{{range .Summary.Records}}<tr><td>{{.ItemNo}}</td><td>{{.Description}}</td><td>{{.Unit}}</td><td class="num">{{inr .Rate}}</td><td class="num">{{qty .WorkOrderQty}}</td><td class="num">{{inr .WorkOrderAmount}}</td><td class="num">{{qty .ExecutedQty}}</td><td class="num">{{inr .ExecutedAmount}}</td><td class="num">{{qty .ExcessQty}}</td><td class="num">{{inr .ExcessAmount}}</td><td class="num">{{qty .SavingQty}}</td><td class="num">{{inr .SavingAmount}}</td><td>{{.Remark}}</td></tr>
{{end}}
</tbody>
</table>
<table>
<tbody>
<tr><td>Work Order Amount</td><td class="num">{{inr .Summary.WorkOrderTotal}}</td><td>Premium</td><td class="num">{{inr .Summary.WorkOrderPremium}}</td><td>Grand Total</td><td class="num">{{inr .Summary.WorkOrderGrandTotal}}</td></tr>
<tr><td>Work Executed Amount</td><td class="num">{{inr .Summary.ExecutedTotal}}</td><td>Premium</td><td class="num">{{inr .Summary.ExecutedPremium}}</td><td>Grand Total</td><td class="num">{{inr .Summary.ExecutedGrandTotal}}</td></tr>
<tr><td>Overall Excess</td><td class="num">{{inr .Summary.ExcessTotal}}</td><td>Premium</td><td class="num">{{inr .Summary.ExcessPremium}}</td><td>Grand Total</td><td class="num">{{inr .Summary.ExcessGrandTotal}}</td></tr>
<tr><td>Overall Saving</td><td class="num">{{inr .Summary.SavingTotal}}</td><td>Premium</td><td class="num">{{inr .Summary.SavingPremium}}</td><td>Grand Total</td><td class="num">{{inr .Summary.SavingGrandTotal}}</td></tr>
<tr class="total-row"><td colspan="5">Net Difference (Excess &minus; Saving)</td><td class="num">{{inr .Summary.NetDifference}}</td></tr>
</tbody>
</table>
<div class="sign"><div>Contractor</div><div>Assistant Engineer</div><div>Executive Engineer</div></div>
</body></html>`

const extraItemsHTML = `<!DOCTYPE html>
<html><head><title>Extra Items Statement</title><style>{{css}}</style></head>
<body class="{{bodyClass}}">
<h1>Extra Items Statement</h1>
` + metaBlock + `
{{if .Items}}
<table>
<thead><tr><th>Item No.</th><th>Description</th><th>Unit</th><th class="num">Quantity</th><th class="num">Rate</th><th class="num">Amount</th></tr></thead>
<tbody>
{{range .Items}}<tr><td>{{.ItemNo}}</td><td>{{.Description}}</td><td>{{.Unit}}</td><td class="num">{{qty .Quantity}}</td><td class="num">{{inr .Rate}}</td><td class="num">{{inr .Amount}}</td></tr>
{{end}}
<tr class="total-row"><td colspan="5">Total Extra Items</td><td class="num">{{inr .Summary.BaseTotal}}</td></tr>
<tr class="total-row"><td colspan="5">Tender Premium @ {{pct .Summary.PremiumPercent}}</td><td class="num">{{inr .Summary.PremiumAmount}}</td></tr>
<tr class="total-row"><td colspan="5">Grand Total</td><td class="num">{{inr .Summary.GrandTotal}}</td></tr>
</tbody>
</table>
{{else}}<p>No extra items were executed on this work.</p>{{end}}
<div class="sign"><div>Contractor</div><div>Junior Engineer</div><div>Executive Engineer</div></div>
</body></html>`

const noteSheetHTML = `<!DOCTYPE html>
<html><head><title>Note Sheet</title><style>{{css}}</style></head>
<body class="{{bodyClass}}">
<h1>Final Bill Scrutiny Sheet</h1>
` + metaBlock + `
<table>
<thead><tr><th>S.No</th><th>Particulars</th><th class="num">Amount</th></tr></thead>
<tbody>
<tr><td>1</td><td>Value of work done (as per bill quantities)</td><td class="num">{{inr .Main.BaseTotal}}</td></tr>
<tr><td>2</td><td>Tender premium @ {{pct .Main.PremiumPercent}}</td><td class="num">{{inr .Main.PremiumAmount}}</td></tr>
<tr><td>3</td><td>Total value of work (1 + 2)</td><td class="num">{{inr .Main.GrandTotal}}</td></tr>
<tr><td>4</td><td>Extra items executed (incl. premium)</td><td class="num">{{inr .Extra.GrandTotal}}</td></tr>
<tr><td>5</td><td>Gross amount payable (3 + 4)</td><td class="num">{{inr .Payment.GrossPayable}}</td></tr>
<tr><td>6</td><td>Deductions:<br>
(a) Security Deposit {{inr .Payment.SecurityDeposit}}<br>
(b) Income Tax {{inr .Payment.IncomeTax}}<br>
(c) GST {{inr .Payment.GST}}<br>
(d) Labour Cess {{inr .Payment.LabourCess}}</td><td class="num">{{inr .Payment.TotalDeductions}}</td></tr>
<tr><td>7</td><td>Amount paid vide last bill</td><td class="num">{{inr .Payment.AmountPaidLastBill}}</td></tr>
<tr class="total-row"><td>8</td><td>Net amount payable this bill (5 &minus; 6 &minus; 7)</td><td class="num">{{whole .Payment.NetPayable}}</td></tr>
</tbody>
</table>
<div class="sign"><div>Bill Clerk</div><div>Divisional Accountant</div><div>Executive Engineer</div></div>
</body></html>`

const certificateIIHTML = `<!DOCTYPE html>
<html><head><title>Certificate II</title><style>{{css}}</style></head>
<body class="{{bodyClass}}">
<h1>Certificate II</h1>
` + metaBlock + `
<p>Certified that the work covered by this bill has been executed as per the
sanctioned specifications and the measurements on which this bill is based
were taken and recorded in the Measurement Book by the undersigned.</p>
<p>Certified further that the quality of work is satisfactory and the
quantities billed do not exceed the quantities actually executed.</p>
<p>Gross value of work billed: <strong>{{inr .Payment.GrossPayable}}</strong></p>
<div class="sign"><div>Junior Engineer</div><div>Assistant Engineer</div><div>Executive Engineer</div></div>
</body></html>`

const certificateIIIHTML = `<!DOCTYPE html>
<html><head><title>Certificate III</title><style>{{css}}</style></head>
<body class="{{bodyClass}}">
<h1>Certificate III &mdash; Memorandum of Payment</h1>
` + metaBlock + `
<table>
<thead><tr><th>S.No</th><th>Particulars</th><th class="num">Amount</th></tr></thead>
<tbody>
<tr><td>1</td><td>Total value of work done up to date</td><td class="num">{{inr .Payment.GrossPayable}}</td></tr>
<tr><td>2</td><td>Amount paid vide last bill</td><td class="num">{{inr .Payment.AmountPaidLastBill}}</td></tr>
<tr><td>3</td><td>Payments now to be made (1 &minus; 2)</td><td class="num">{{inr .Payment.PayableBeforeDeductions}}</td></tr>
<tr><td>4</td><td>Security Deposit</td><td class="num">{{inr .Payment.SecurityDeposit}}</td></tr>
<tr><td>5</td><td>Income Tax</td><td class="num">{{inr .Payment.IncomeTax}}</td></tr>
<tr><td>6</td><td>GST</td><td class="num">{{inr .Payment.GST}}</td></tr>
<tr><td>7</td><td>Labour Cess</td><td class="num">{{inr .Payment.LabourCess}}</td></tr>
<tr class="total-row"><td>8</td><td>Balance payable by cheque (cheque amount + deductions reconcile with the gross bill amount)</td><td class="num">{{whole .Payment.NetPayable}}</td></tr>
</tbody>
</table>
<p>Received <strong>{{whole .Payment.NetPayable}}</strong> as per above memorandum.</p>
<div class="sign"><div>Contractor (Witness)</div><div>Divisional Accountant</div><div>Executive Engineer</div></div>
</body></html>`

var htmlTemplates = map[string]string{
	billing.DocFirstPage:          firstPageHTML,
	billing.DocDeviationStatement: deviationHTML,
	billing.DocExtraItems:         extraItemsHTML,
	billing.DocNoteSheet:          noteSheetHTML,
	billing.DocCertificateII:      certificateIIHTML,
	billing.DocCertificateIII:     certificateIIIHTML,
}

// RenderHTML renders one document view to a standalone HTML page.
func RenderHTML(name string, view any, reverseFont bool) (string, error) {
	text, ok := htmlTemplates[name]
	if !ok {
		return "", fmt.Errorf("unknown document %q", name)
	}

	funcs := template.FuncMap{
		"css": func() template.CSS { return template.CSS(pageCSS) },
		"bodyClass": func() string {
			if reverseFont {
				return "reverse"
			}
			return ""
		},
	}
	for k, v := range tmplFuncs {
		funcs[k] = v
	}

	tmpl, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
