package billing

// Reconcile pairs work-order items with executed items by exact item-code
// equality and prices every quantity delta at the work-order rate. Only
// final bills call this; running bills skip the deviation statement
// entirely.
//
// Unmatched rows are not errors: an executed item with no work-order
// counterpart counts as 100% excess at its own rate, and a work-order item
// never executed counts as 100% saving. Both raise a mismatch diagnostic.
func Reconcile(workOrder, executed []LineItem, premiumPercent float64) (*DeviationSummary, []Diagnostic) {
	woByCode := make(map[string]LineItem, len(workOrder))
	for _, wo := range workOrder {
		if wo.ItemNo == "" {
			continue
		}
		if _, dup := woByCode[wo.ItemNo]; !dup {
			woByCode[wo.ItemNo] = wo
		}
	}

	summary := &DeviationSummary{}
	var diags []Diagnostic
	matched := make(map[string]bool, len(executed))

	for _, ex := range executed {
		wo, ok := woByCode[ex.ItemNo]
		if ex.ItemNo == "" || !ok {
			// Executed outside the work order: the full billed amount is
			// excess, at the executed rate since no ordered rate exists.
			rec := DeviationRecord{
				ItemNo:         ex.ItemNo,
				Description:    ex.Description,
				Unit:           ex.Unit,
				Rate:           ex.Rate,
				ExecutedQty:    ex.Quantity,
				ExecutedAmount: ex.Amount(),
				ExcessQty:      ex.Quantity,
				ExcessAmount:   ex.Amount(),
				Remark:         "Not in work order",
			}
			summary.Records = append(summary.Records, rec)
			diags = append(diags, Diagnostic{
				Kind:    DiagDeviationMismatch,
				Sheet:   SheetBillQuantity,
				ItemNo:  ex.ItemNo,
				Message: "executed item has no work-order counterpart, treated as full excess",
			})
			continue
		}
		matched[ex.ItemNo] = true

		// The rate never changes between order and execution, so the
		// ordered rate prices both sides and the delta.
		rec := DeviationRecord{
			ItemNo:          ex.ItemNo,
			Description:     wo.Description,
			Unit:            wo.Unit,
			Rate:            wo.Rate,
			WorkOrderQty:    wo.Quantity,
			WorkOrderAmount: wo.Amount(),
			ExecutedQty:     ex.Quantity,
			ExecutedAmount:  ex.Quantity * wo.Rate,
		}
		switch {
		case ex.Quantity > wo.Quantity:
			rec.ExcessQty = ex.Quantity - wo.Quantity
			rec.ExcessAmount = rec.ExcessQty * wo.Rate
			rec.Remark = "Excess"
		case wo.Quantity > ex.Quantity:
			rec.SavingQty = wo.Quantity - ex.Quantity
			rec.SavingAmount = rec.SavingQty * wo.Rate
			rec.Remark = "Saving"
		}
		summary.Records = append(summary.Records, rec)
	}

	for _, wo := range workOrder {
		if wo.ItemNo == "" || matched[wo.ItemNo] {
			continue
		}
		rec := DeviationRecord{
			ItemNo:          wo.ItemNo,
			Description:     wo.Description,
			Unit:            wo.Unit,
			Rate:            wo.Rate,
			WorkOrderQty:    wo.Quantity,
			WorkOrderAmount: wo.Amount(),
			SavingQty:       wo.Quantity,
			SavingAmount:    wo.Amount(),
			Remark:          "Not executed",
		}
		summary.Records = append(summary.Records, rec)
		diags = append(diags, Diagnostic{
			Kind:    DiagDeviationMismatch,
			Sheet:   SheetWorkOrder,
			ItemNo:  wo.ItemNo,
			Message: "work-order item was never executed, treated as full saving",
		})
	}

	for _, rec := range summary.Records {
		summary.WorkOrderTotal += rec.WorkOrderAmount
		summary.ExecutedTotal += rec.ExecutedAmount
		summary.ExcessTotal += rec.ExcessAmount
		summary.SavingTotal += rec.SavingAmount
	}

	summary.WorkOrderPremium = summary.WorkOrderTotal * premiumPercent
	summary.WorkOrderGrandTotal = summary.WorkOrderTotal + summary.WorkOrderPremium
	summary.ExecutedPremium = summary.ExecutedTotal * premiumPercent
	summary.ExecutedGrandTotal = summary.ExecutedTotal + summary.ExecutedPremium
	summary.ExcessPremium = summary.ExcessTotal * premiumPercent
	summary.ExcessGrandTotal = summary.ExcessTotal + summary.ExcessPremium
	summary.SavingPremium = summary.SavingTotal * premiumPercent
	summary.SavingGrandTotal = summary.SavingTotal + summary.SavingPremium
	summary.NetDifference = summary.ExcessGrandTotal - summary.SavingGrandTotal

	return summary, diags
}
