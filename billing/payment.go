package billing

import "fmt"

// CalcPayment computes the statutory deductions and the net payable for
// the current bill. Deductions apply to the gross payable (main grand
// total plus extra-items grand total), before the amount already paid vide
// the last bill is subtracted.
//
// A negative net payable is preserved, never clamped: corrective final
// bills can legitimately recover money. It is flagged with a diagnostic so
// a reviewer sees it before documents go out.
func CalcPayment(main, extra BillSummary, amountPaidLastBill float64, rates DeductionRates) (PaymentSummary, []Diagnostic) {
	gross := main.GrandTotal + extra.GrandTotal

	pay := PaymentSummary{
		GrossPayable:       gross,
		SecurityDeposit:    gross * rates.SecurityDeposit,
		IncomeTax:          gross * rates.IncomeTax,
		GST:                gross * rates.GST,
		LabourCess:         gross * rates.LabourCess,
		AmountPaidLastBill: amountPaidLastBill,
	}
	pay.TotalDeductions = pay.SecurityDeposit + pay.IncomeTax + pay.GST + pay.LabourCess
	pay.NetPayable = gross - pay.TotalDeductions - amountPaidLastBill

	var diags []Diagnostic
	if pay.NetPayable < 0 {
		diags = append(diags, Diagnostic{
			Kind: DiagPaymentInconsistency,
			Message: fmt.Sprintf("net payable is negative (%.2f): gross %.2f, deductions %.2f, paid last bill %.2f",
				pay.NetPayable, gross, pay.TotalDeductions, amountPaidLastBill),
		})
	}
	return pay, diags
}
