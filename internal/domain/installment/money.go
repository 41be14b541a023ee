package installment

import "github.com/shopspring/decimal"

// Reconciliation helpers: pure ledger math over a client's installment
// rows. Sums and comparisons run in decimal so two-decimal money never
// accumulates float error.

// SumCharged totals the non-initial installment amounts for one charge
// type. Initial-payment rows are synthetic placeholders and stay outside
// the chargeable sum.
func SumCharged(rows []Installment, t ChargeType) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range rows {
		if r.ChargeType != t || r.IsInitialPayment {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(r.Amount))
	}
	return sum
}

// Remaining computes how much of the payable charge is still
// unallocated: payable - sum(non-initial amounts for the charge type).
func Remaining(payable float64, rows []Installment, t ChargeType) decimal.Decimal {
	return decimal.NewFromFloat(payable).Sub(SumCharged(rows, t))
}

// NextNumber assigns the next free installment number for a client:
// max(existing)+1, or 1 when no rows exist. Numbers are claimed across
// all charge types.
func NextNumber(rows []Installment) int {
	max := 0
	for _, r := range rows {
		if r.InstallmentNumber > max {
			max = r.InstallmentNumber
		}
	}
	return max + 1
}

// NumberTaken reports whether an installment number is already claimed.
func NumberTaken(rows []Installment, number int) bool {
	for _, r := range rows {
		if r.InstallmentNumber == number {
			return true
		}
	}
	return false
}
