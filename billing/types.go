// Package billing implements the bill computation and reconciliation engine:
// normalization of spreadsheet rows into canonical line items, premium and
// totals computation, work-order-vs-executed deviation reconciliation,
// statutory deductions, and assembly of the per-document views.
package billing

// BillType distinguishes interim bills from the closing bill of a work order.
type BillType string

const (
	BillTypeRunning BillType = "Running"
	BillTypeFinal   BillType = "Final"
)

// ItemSource tags the provenance of a line item.
type ItemSource string

const (
	SourceWorkOrder ItemSource = "work_order"
	SourceExecuted  ItemSource = "executed"
	SourceExtra     ItemSource = "extra"
)

// ProjectMetadata holds the Title-sheet fields. Created once by the
// normalizer and never modified afterwards.
type ProjectMetadata struct {
	AgreementNo        string
	WorkName           string
	FirmName           string
	DateCommencement   string
	DateCompletion     string
	ActualCompletion   string
	BillSerial         string
	BillType           BillType
	AmountPaidLastBill float64

	// HeaderRows keeps the raw Title rows for templates that reproduce the
	// sheet header verbatim.
	HeaderRows [][]string
}

// LineItem is one canonical row from the Work Order, Bill Quantity, or
// Extra Items sheet. ItemNo preserves the source numbering exactly; rows
// that carry no code keep an empty string, they are never auto-numbered.
type LineItem struct {
	ItemNo      string
	Description string
	Unit        string
	Quantity    float64
	Rate        float64
	Source      ItemSource
}

// Amount is always derived so quantity, rate, and amount cannot drift apart.
func (li LineItem) Amount() float64 {
	return li.Quantity * li.Rate
}

// NormalizedBill is the normalizer's output: the four canonical sequences
// plus any non-fatal diagnostics raised while coercing cell values.
type NormalizedBill struct {
	Metadata    ProjectMetadata
	WorkOrder   []LineItem
	Executed    []LineItem
	Extra       []LineItem
	Diagnostics []Diagnostic
}

// BillSummary carries the three figures every document must agree on for
// one group of items. GrandTotal = BaseTotal + PremiumAmount and
// PremiumAmount = BaseTotal * PremiumPercent; PremiumPercent may be
// negative to express a deducted premium.
type BillSummary struct {
	BaseTotal      float64
	PremiumPercent float64
	PremiumAmount  float64
	GrandTotal     float64
}

// DeviationRecord compares one item's ordered and executed quantities.
// Excess and saving are mutually exclusive: at most one side is nonzero.
type DeviationRecord struct {
	ItemNo          string
	Description     string
	Unit            string
	Rate            float64
	WorkOrderQty    float64
	WorkOrderAmount float64
	ExecutedQty     float64
	ExecutedAmount  float64
	ExcessQty       float64
	ExcessAmount    float64
	SavingQty       float64
	SavingAmount    float64
	Remark          string
}

// DeviationSummary aggregates the deviation statement's bottom block. The
// premium percentage is applied uniformly to all four base totals, and the
// net difference is derived from the two grand totals only.
type DeviationSummary struct {
	Records []DeviationRecord

	WorkOrderTotal      float64
	WorkOrderPremium    float64
	WorkOrderGrandTotal float64

	ExecutedTotal      float64
	ExecutedPremium    float64
	ExecutedGrandTotal float64

	ExcessTotal      float64
	ExcessPremium    float64
	ExcessGrandTotal float64

	SavingTotal      float64
	SavingPremium    float64
	SavingGrandTotal float64

	NetDifference float64
}

// DeductionRates are the statutory percentages applied to the gross
// payable, expressed as fractions (0.10 = 10%).
type DeductionRates struct {
	SecurityDeposit float64
	IncomeTax       float64
	GST             float64
	LabourCess      float64
}

// PaymentSummary is the single source of truth for every payable figure
// that appears on the First Page, Note Sheet, and certificates.
type PaymentSummary struct {
	GrossPayable       float64
	SecurityDeposit    float64
	IncomeTax          float64
	GST                float64
	LabourCess         float64
	TotalDeductions    float64
	AmountPaidLastBill float64
	NetPayable         float64
}

// PayableBeforeDeductions is the memorandum-of-payment row 3 figure:
// the gross payable net of the amount already paid, before deductions.
func (p PaymentSummary) PayableBeforeDeductions() float64 {
	return p.GrossPayable - p.AmountPaidLastBill
}

// BillingResult is the engine's sole output. It is owned by the caller
// that invoked the engine and must be treated as immutable once returned.
type BillingResult struct {
	Metadata ProjectMetadata

	WorkOrder []LineItem
	Executed  []LineItem
	Extra     []LineItem

	MainSummary  BillSummary
	ExtraSummary BillSummary

	// Deviation is nil for running bills.
	Deviation *DeviationSummary

	Payment PaymentSummary

	Diagnostics []Diagnostic
}
