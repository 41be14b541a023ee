package installmentmock

import (
	"context"

	domain "talenthire-backend/internal/domain/installment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies installment.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, i *domain.Installment) error
	SaveFn                func(ctx context.Context, i *domain.Installment) error
	DeleteFn              func(ctx context.Context, i *domain.Installment) error
	GetByInstallmentIDFn  func(ctx context.Context, installmentID string) (*domain.Installment, error)
	ListByClientFn        func(ctx context.Context, enrolledClientID uint64) ([]domain.Installment, error)
	ListByClientAndTypeFn func(ctx context.Context, enrolledClientID uint64, t domain.ChargeType) ([]domain.Installment, error)
	GetInitialPaymentFn   func(ctx context.Context, enrolledClientID uint64, t domain.ChargeType) (*domain.Installment, error)
}

func (m *Repo) Create(ctx context.Context, i *domain.Installment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, i)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, i *domain.Installment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, i)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, i *domain.Installment) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, i)
	}
	return nil
}

func (m *Repo) GetByInstallmentID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	if m.GetByInstallmentIDFn != nil {
		return m.GetByInstallmentIDFn(ctx, installmentID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByClient(ctx context.Context, enrolledClientID uint64) ([]domain.Installment, error) {
	if m.ListByClientFn != nil {
		return m.ListByClientFn(ctx, enrolledClientID)
	}
	return nil, nil
}

func (m *Repo) ListByClientAndType(ctx context.Context, enrolledClientID uint64, t domain.ChargeType) ([]domain.Installment, error) {
	if m.ListByClientAndTypeFn != nil {
		return m.ListByClientAndTypeFn(ctx, enrolledClientID, t)
	}
	return nil, nil
}

func (m *Repo) GetInitialPayment(ctx context.Context, enrolledClientID uint64, t domain.ChargeType) (*domain.Installment, error) {
	if m.GetInitialPaymentFn != nil {
		return m.GetInitialPaymentFn(ctx, enrolledClientID, t)
	}
	return nil, domain.ErrNotFound
}
