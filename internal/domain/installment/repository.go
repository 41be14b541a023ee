package installment

import "context"

type Repository interface {
	Create(ctx context.Context, i *Installment) error
	Save(ctx context.Context, i *Installment) error
	Delete(ctx context.Context, i *Installment) error

	// Get by public installment_id
	GetByInstallmentID(ctx context.Context, installmentID string) (*Installment, error)

	// All rows for a client (numeric FK), installment_number ascending
	ListByClient(ctx context.Context, enrolledClientID uint64) ([]Installment, error)

	// Rows for one charge type
	ListByClientAndType(ctx context.Context, enrolledClientID uint64, t ChargeType) ([]Installment, error)

	// The reserved number-0 initial-payment row for a charge type, if any
	GetInitialPayment(ctx context.Context, enrolledClientID uint64, t ChargeType) (*Installment, error)
}
