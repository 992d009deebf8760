package billing

import (
	"fmt"
	"math"
)

// Options is the read-only computation configuration. It is safe to share
// one Options value across concurrent invocations; the engine never
// mutates it and never reads ambient state.
type Options struct {
	PremiumPercent float64
	Rates          DeductionRates
}

const consistencyTolerance = 1e-6

// Compute runs the whole pipeline for one workbook: normalize, total,
// reconcile (final bills only), pay, assemble. Any stage error aborts the
// invocation; no partial result is ever returned.
func Compute(wb RawWorkbook, opts Options) (*BillingResult, error) {
	nb, err := Normalize(wb)
	if err != nil {
		return nil, err
	}

	main, extra := ComputeTotals(nb, opts.PremiumPercent)

	var deviation *DeviationSummary
	if nb.Metadata.BillType == BillTypeFinal {
		var devDiags []Diagnostic
		deviation, devDiags = Reconcile(nb.WorkOrder, nb.Executed, opts.PremiumPercent)
		nb.Diagnostics = append(nb.Diagnostics, devDiags...)
	}

	payment, payDiags := CalcPayment(main, extra, nb.Metadata.AmountPaidLastBill, opts.Rates)
	nb.Diagnostics = append(nb.Diagnostics, payDiags...)

	return Assemble(nb, main, extra, deviation, payment)
}

// Assemble merges the stage outputs into one BillingResult and asserts the
// cross-document identities every template relies on. The assertions guard
// against future edits that recompute a figure in one path and not the
// others; they cannot fire from input data alone.
func Assemble(nb *NormalizedBill, main, extra BillSummary, deviation *DeviationSummary, payment PaymentSummary) (*BillingResult, error) {
	if err := checkSummary("main", main); err != nil {
		return nil, err
	}
	if err := checkSummary("extra items", extra); err != nil {
		return nil, err
	}

	gross := main.GrandTotal + extra.GrandTotal
	if math.Abs(payment.GrossPayable-gross) > consistencyTolerance {
		return nil, fmt.Errorf("payment gross %.6f does not match bill grand totals %.6f", payment.GrossPayable, gross)
	}
	net := payment.GrossPayable - payment.TotalDeductions - payment.AmountPaidLastBill
	if math.Abs(payment.NetPayable-net) > consistencyTolerance {
		return nil, fmt.Errorf("net payable %.6f does not match gross minus deductions minus last bill %.6f", payment.NetPayable, net)
	}

	if deviation != nil {
		want := deviation.ExcessGrandTotal - deviation.SavingGrandTotal
		if deviation.NetDifference != want {
			return nil, fmt.Errorf("deviation net difference %.6f does not match excess minus saving %.6f", deviation.NetDifference, want)
		}
	}

	return &BillingResult{
		Metadata:     nb.Metadata,
		WorkOrder:    nb.WorkOrder,
		Executed:     nb.Executed,
		Extra:        nb.Extra,
		MainSummary:  main,
		ExtraSummary: extra,
		Deviation:    deviation,
		Payment:      payment,
		Diagnostics:  nb.Diagnostics,
	}, nil
}

func checkSummary(name string, s BillSummary) error {
	if math.Abs(s.PremiumAmount-s.BaseTotal*s.PremiumPercent) > consistencyTolerance {
		return fmt.Errorf("%s premium %.6f does not match base %.6f at %.4f%%", name, s.PremiumAmount, s.BaseTotal, s.PremiumPercent*100)
	}
	if math.Abs(s.GrandTotal-(s.BaseTotal+s.PremiumAmount)) > consistencyTolerance {
		return fmt.Errorf("%s grand total %.6f does not match base plus premium", name, s.GrandTotal)
	}
	return nil
}
