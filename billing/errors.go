package billing

import "fmt"

// MissingSheetError aborts a file when one of the required sheets (Title,
// Work Order, Bill Quantity) is absent from the workbook.
type MissingSheetError struct {
	Sheet string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("required sheet %q is missing", e.Sheet)
}

// ColumnMappingError aborts a file when a required field has no resolvable
// column in a required sheet.
type ColumnMappingError struct {
	Sheet string
	Field string
}

func (e *ColumnMappingError) Error() string {
	return fmt.Sprintf("sheet %q has no column for required field %q", e.Sheet, e.Field)
}

// DiagnosticKind classifies the recoverable conditions collected during a
// run. Diagnostics never abort a pipeline; they ride along on the result
// so the rendering layer or a reviewer can surface them.
type DiagnosticKind string

const (
	// DiagNumericCoercion: a non-numeric cell was defaulted to zero.
	DiagNumericCoercion DiagnosticKind = "numeric_coercion"
	// DiagDeviationMismatch: an executed item had no work-order
	// counterpart, or a work-order item was never executed.
	DiagDeviationMismatch DiagnosticKind = "deviation_mismatch"
	// DiagPaymentInconsistency: the net payable came out negative.
	DiagPaymentInconsistency DiagnosticKind = "payment_inconsistency"
)

// Diagnostic is one recoverable finding, tied to an item code where one
// exists.
type Diagnostic struct {
	Kind    DiagnosticKind
	Sheet   string
	ItemNo  string
	Message string
}

func (d Diagnostic) String() string {
	if d.ItemNo != "" {
		return fmt.Sprintf("[%s] item %s: %s", d.Kind, d.ItemNo, d.Message)
	}
	return fmt.Sprintf("[%s] %s", d.Kind, d.Message)
}
