package documents

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/billing"
)

// RenderPDF renders one document view to PDF bytes.
func RenderPDF(name string, view any) ([]byte, error) {
	m := newDocument(name)

	switch v := view.(type) {
	case billing.FirstPageView:
		addTitle(m, "Contractor Bill - First Page Summary")
		addMetadata(m, v.Metadata)
		addItemTable(m, v.Items)
		addMoneyRows(m, []moneyRow{
			{"Total (Items as per Work Order)", v.Main.BaseTotal, false},
			{fmt.Sprintf("Tender Premium @ %g%%", v.Main.PremiumPercent * 100), v.Main.PremiumAmount, false},
			{"Grand Total", v.Main.GrandTotal, false},
			{"Extra Items (incl. premium)", v.Extra.GrandTotal, false},
			{"Gross Amount Payable", v.Payment.GrossPayable, false},
			{"Amount Paid Vide Last Bill", v.Payment.AmountPaidLastBill, false},
			{"Total Deductions", v.Payment.TotalDeductions, false},
			{"Net Payable Amount", v.Payment.NetPayable, true},
		})
	case billing.DeviationView:
		addTitle(m, "Deviation Statement")
		addMetadata(m, v.Metadata)
		addDeviationTable(m, v.Summary)
		addMoneyRows(m, []moneyRow{
			{"Work Order Grand Total", v.Summary.WorkOrderGrandTotal, false},
			{"Work Executed Grand Total", v.Summary.ExecutedGrandTotal, false},
			{"Overall Excess Grand Total", v.Summary.ExcessGrandTotal, false},
			{"Overall Saving Grand Total", v.Summary.SavingGrandTotal, false},
			{"Net Difference (Excess - Saving)", v.Summary.NetDifference, true},
		})
	case billing.ExtraItemsView:
		addTitle(m, "Extra Items Statement")
		addMetadata(m, v.Metadata)
		addItemTable(m, v.Items)
		addMoneyRows(m, []moneyRow{
			{"Total Extra Items", v.Summary.BaseTotal, false},
			{fmt.Sprintf("Tender Premium @ %g%%", v.Summary.PremiumPercent * 100), v.Summary.PremiumAmount, false},
			{"Grand Total", v.Summary.GrandTotal, true},
		})
	case billing.NoteSheetView:
		addTitle(m, "Final Bill Scrutiny Sheet")
		addMetadata(m, v.Metadata)
		addMoneyRows(m, []moneyRow{
			{"1. Value of work done", v.Main.BaseTotal, false},
			{fmt.Sprintf("2. Tender premium @ %g%%", v.Main.PremiumPercent * 100), v.Main.PremiumAmount, false},
			{"3. Total value of work", v.Main.GrandTotal, false},
			{"4. Extra items (incl. premium)", v.Extra.GrandTotal, false},
			{"5. Gross amount payable", v.Payment.GrossPayable, false},
			{"6. Deductions (SD + IT + GST + LC)", v.Payment.TotalDeductions, false},
			{"7. Amount paid vide last bill", v.Payment.AmountPaidLastBill, false},
			{"8. Net amount payable this bill", v.Payment.NetPayable, true},
		})
	case billing.CertificateView:
		if v.Kind == billing.DocCertificateIII {
			addTitle(m, "Certificate III - Memorandum of Payment")
			addMetadata(m, v.Metadata)
			addMoneyRows(m, []moneyRow{
				{"1. Total value of work done up to date", v.Payment.GrossPayable, false},
				{"2. Amount paid vide last bill", v.Payment.AmountPaidLastBill, false},
				{"3. Payments now to be made", v.Payment.PayableBeforeDeductions(), false},
				{"4. Security Deposit", v.Payment.SecurityDeposit, false},
				{"5. Income Tax", v.Payment.IncomeTax, false},
				{"6. GST", v.Payment.GST, false},
				{"7. Labour Cess", v.Payment.LabourCess, false},
				{"8. Balance payable by cheque", v.Payment.NetPayable, true},
			})
		} else {
			addTitle(m, "Certificate II")
			addMetadata(m, v.Metadata)
			addParagraph(m, "Certified that the work covered by this bill has been executed as per the sanctioned specifications and the measurements on which this bill is based were taken and recorded in the Measurement Book by the undersigned.")
			addParagraph(m, "Certified further that the quality of work is satisfactory and the quantities billed do not exceed the quantities actually executed.")
			addMoneyRows(m, []moneyRow{
				{"Gross value of work billed", v.Payment.GrossPayable, true},
			})
		}
	default:
		return nil, fmt.Errorf("unknown document view for %q", name)
	}

	addSignatures(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate %s pdf: %w", name, err)
	}
	return doc.GetBytes(), nil
}

func newDocument(name string) core.Maroto {
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
		})
	// The deviation statement's twelve columns need landscape.
	if name == billing.DocDeviationStatement {
		builder = builder.WithOrientation(orientation.Horizontal)
	}
	return maroto.New(builder.Build())
}

func addTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)
	m.AddRows(row.New(3))
}

func addMetadata(m core.Maroto, meta billing.ProjectMetadata) {
	labelText := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	valueText := props.Text{Size: 9, Align: align.Left}

	entries := []struct{ label, value string }{
		{"Agreement No:", meta.AgreementNo},
		{"Name of Work:", meta.WorkName},
		{"Name of Firm:", meta.FirmName},
		{"Commencement:", meta.DateCommencement},
		{"Completion:", meta.DateCompletion},
		{"Bill:", fmt.Sprintf("%s (%s)", meta.BillSerial, meta.BillType)},
	}
	for _, e := range entries {
		m.AddRows(
			row.New(6).Add(
				col.New(3).Add(text.New(e.label, labelText)),
				col.New(9).Add(text.New(e.value, valueText)),
			),
		)
	}
	m.AddRows(row.New(4))
}

func addParagraph(m core.Maroto, body string) {
	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(
				text.New(body, props.Text{Size: 9, Align: align.Left}),
			),
		),
	)
}

var pdfHeaderText = props.Text{
	Size:  8,
	Style: fontstyle.Bold,
	Align: align.Center,
	Color: &props.Color{Red: 255, Green: 255, Blue: 255},
}

var pdfHeaderCell = props.Cell{
	BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41},
}

func addItemTable(m core.Maroto, items []billing.LineItem) {
	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("Item", pdfHeaderText)).WithStyle(&pdfHeaderCell),
			col.New(5).Add(text.New("Description", pdfHeaderText)).WithStyle(&pdfHeaderCell),
			col.New(1).Add(text.New("Unit", pdfHeaderText)).WithStyle(&pdfHeaderCell),
			col.New(1).Add(text.New("Qty", pdfHeaderText)).WithStyle(&pdfHeaderCell),
			col.New(2).Add(text.New("Rate", pdfHeaderText)).WithStyle(&pdfHeaderCell),
			col.New(2).Add(text.New("Amount", pdfHeaderText)).WithStyle(&pdfHeaderCell),
		),
	)

	cellText := props.Text{Size: 8, Align: align.Center}
	leftText := props.Text{Size: 8, Align: align.Left}
	rightText := props.Text{Size: 8, Align: align.Right}

	for _, item := range items {
		m.AddRows(
			row.New(7).Add(
				col.New(1).Add(text.New(item.ItemNo, cellText)),
				col.New(5).Add(text.New(item.Description, leftText)),
				col.New(1).Add(text.New(item.Unit, cellText)),
				col.New(1).Add(text.New(billing.FormatQty(item.Quantity), rightText)),
				col.New(2).Add(text.New(billing.FormatINR(item.Rate), rightText)),
				col.New(2).Add(text.New(billing.FormatINR(item.Amount()), rightText)),
			),
		)
	}
}

func addDeviationTable(m core.Maroto, summary billing.DeviationSummary) {
	headers := []struct {
		label string
		width int
	}{
		{"Item", 1}, {"Description", 2}, {"Rate", 1},
		{"WO Qty", 1}, {"WO Amt", 1}, {"Exec Qty", 1}, {"Exec Amt", 1},
		{"Excess Qty", 1}, {"Excess Amt", 1}, {"Saving Qty", 1}, {"Saving Amt", 1},
	}
	headerCols := make([]core.Col, 0, len(headers)+1)
	for _, h := range headers {
		headerCols = append(headerCols, col.New(h.width).Add(text.New(h.label, pdfHeaderText)).WithStyle(&pdfHeaderCell))
	}
	m.AddRows(row.New(8).Add(headerCols...))

	cellText := props.Text{Size: 7, Align: align.Center}
	leftText := props.Text{Size: 7, Align: align.Left}
	rightText := props.Text{Size: 7, Align: align.Right}

	for _, rec := range summary.Records {
		m.AddRows(
			row.New(6).Add(
				col.New(1).Add(text.New(rec.ItemNo, cellText)),
				col.New(2).Add(text.New(rec.Description, leftText)),
				col.New(1).Add(text.New(billing.FormatINR(rec.Rate), rightText)),
				col.New(1).Add(text.New(billing.FormatQty(rec.WorkOrderQty), rightText)),
				col.New(1).Add(text.New(billing.FormatINR(rec.WorkOrderAmount), rightText)),
				col.New(1).Add(text.New(billing.FormatQty(rec.ExecutedQty), rightText)),
				col.New(1).Add(text.New(billing.FormatINR(rec.ExecutedAmount), rightText)),
				col.New(1).Add(text.New(billing.FormatQty(rec.ExcessQty), rightText)),
				col.New(1).Add(text.New(billing.FormatINR(rec.ExcessAmount), rightText)),
				col.New(1).Add(text.New(billing.FormatQty(rec.SavingQty), rightText)),
				col.New(1).Add(text.New(billing.FormatINR(rec.SavingAmount), rightText)),
			),
		)
	}
}

type moneyRow struct {
	label string
	value float64
	final bool
}

func addMoneyRows(m core.Maroto, rows []moneyRow) {
	m.AddRows(row.New(4))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	for _, r := range rows {
		labelText := props.Text{Size: 9, Align: align.Left}
		valueText := props.Text{Size: 9, Align: align.Right}
		amount := billing.FormatINR(r.value)
		if r.final {
			labelText.Style = fontstyle.Bold
			valueText.Style = fontstyle.Bold
			// Bottom lines print in whole rupees, like the HTML documents.
			amount = billing.FormatINRWhole(r.value)
		}
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(r.label, labelText)).WithStyle(summaryCell),
				col.New(4).Add(text.New(amount, valueText)).WithStyle(summaryCell),
			),
		)
	}
}

func addSignatures(m core.Maroto) {
	m.AddRows(row.New(16))
	signText := props.Text{Size: 9, Align: align.Center, Style: fontstyle.Bold}
	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New("Contractor", signText)),
			col.New(4).Add(text.New("Assistant Engineer", signText)),
			col.New(4).Add(text.New("Executive Engineer", signText)),
		),
	)
}
