package installment

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("installment not found")
	ErrInvalidChargeType = errors.New("invalid charge type")
)

// AmountExceedsRemainingError carries the computed remaining amount so the
// caller can self-correct without a second round trip.
type AmountExceedsRemainingError struct {
	ChargeType ChargeType
	Requested  float64
	Remaining  float64
}

func (e *AmountExceedsRemainingError) Error() string {
	return fmt.Sprintf("installment amount %.2f exceeds remaining %.2f for %s",
		e.Requested, e.Remaining, e.ChargeType)
}

// DuplicateInstallmentNumberError also surfaces the remaining amount, for
// the same self-correction reason.
type DuplicateInstallmentNumberError struct {
	Number    int
	Remaining float64
}

func (e *DuplicateInstallmentNumberError) Error() string {
	return fmt.Sprintf("installment number %d already exists for this client", e.Number)
}
