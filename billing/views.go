package billing

// Document names, as keyed in the output contract with the renderers.
const (
	DocFirstPage          = "first_page"
	DocDeviationStatement = "deviation_statement"
	DocExtraItems         = "extra_items"
	DocNoteSheet          = "note_sheet"
	DocCertificateII      = "certificate_ii"
	DocCertificateIII     = "certificate_iii"
)

// FirstPageView backs the contractor bill summary page. Items are the
// executed quantities; every money figure is a projection of the shared
// summaries, never recomputed.
type FirstPageView struct {
	Metadata ProjectMetadata
	Items    []LineItem
	Main     BillSummary
	Extra    BillSummary
	Payment  PaymentSummary
}

// DeviationView backs the deviation statement (final bills only).
type DeviationView struct {
	Metadata ProjectMetadata
	Summary  DeviationSummary
}

// ExtraItemsView backs the extra-items statement.
type ExtraItemsView struct {
	Metadata ProjectMetadata
	Items    []LineItem
	Summary  BillSummary
}

// NoteSheetView backs the internal scrutiny sheet. Row 8's base figure is
// Payment.NetPayable, the same instance the First Page prints.
type NoteSheetView struct {
	Metadata ProjectMetadata
	Main     BillSummary
	Extra    BillSummary
	Payment  PaymentSummary
}

// CertificateView backs Certificates II and III. Certificate III's row 8
// identity (cheque amount + deductions = gross bill amount net of the last
// bill) holds by construction because all three figures come from the one
// PaymentSummary.
type CertificateView struct {
	Metadata ProjectMetadata
	Payment  PaymentSummary
	Kind     string
}

// DocumentViews is the set of per-document projections of one
// BillingResult. Deviation is nil for running bills.
type DocumentViews struct {
	FirstPage      FirstPageView
	Deviation      *DeviationView
	ExtraItems     ExtraItemsView
	NoteSheet      NoteSheetView
	CertificateII  CertificateView
	CertificateIII CertificateView
	Diagnostics    []Diagnostic
}

// Views projects the result into the six document view models. Each view
// holds references into the result; none performs independent arithmetic.
func (r *BillingResult) Views() DocumentViews {
	views := DocumentViews{
		FirstPage: FirstPageView{
			Metadata: r.Metadata,
			Items:    r.Executed,
			Main:     r.MainSummary,
			Extra:    r.ExtraSummary,
			Payment:  r.Payment,
		},
		ExtraItems: ExtraItemsView{
			Metadata: r.Metadata,
			Items:    r.Extra,
			Summary:  r.ExtraSummary,
		},
		NoteSheet: NoteSheetView{
			Metadata: r.Metadata,
			Main:     r.MainSummary,
			Extra:    r.ExtraSummary,
			Payment:  r.Payment,
		},
		CertificateII:  CertificateView{Metadata: r.Metadata, Payment: r.Payment, Kind: DocCertificateII},
		CertificateIII: CertificateView{Metadata: r.Metadata, Payment: r.Payment, Kind: DocCertificateIII},
		Diagnostics:    r.Diagnostics,
	}
	if r.Deviation != nil {
		views.Deviation = &DeviationView{Metadata: r.Metadata, Summary: *r.Deviation}
	}
	return views
}

// Map returns the views keyed by document name. Running bills have no
// deviation_statement key at all.
func (v DocumentViews) Map() map[string]any {
	m := map[string]any{
		DocFirstPage:      v.FirstPage,
		DocExtraItems:     v.ExtraItems,
		DocNoteSheet:      v.NoteSheet,
		DocCertificateII:  v.CertificateII,
		DocCertificateIII: v.CertificateIII,
	}
	if v.Deviation != nil {
		m[DocDeviationStatement] = *v.Deviation
	}
	return m
}
