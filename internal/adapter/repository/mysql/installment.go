package mysql

import (
	"context"
	"errors"

	instDomain "talenthire-backend/internal/domain/installment"

	"gorm.io/gorm"
)

type InstallmentRepository struct{ db *gorm.DB }

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

func (r *InstallmentRepository) Create(ctx context.Context, i *instDomain.Installment) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *InstallmentRepository) Save(ctx context.Context, i *instDomain.Installment) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *InstallmentRepository) Delete(ctx context.Context, i *instDomain.Installment) error {
	return r.db.WithContext(ctx).Delete(i).Error
}

func (r *InstallmentRepository) GetByInstallmentID(ctx context.Context, installmentID string) (*instDomain.Installment, error) {
	var out instDomain.Installment
	res := r.db.WithContext(ctx).
		Where("installment_id = ?", installmentID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, instDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *InstallmentRepository) ListByClient(ctx context.Context, enrolledClientID uint64) ([]instDomain.Installment, error) {
	var out []instDomain.Installment
	res := r.db.WithContext(ctx).
		Where("enrolled_client_id = ?", enrolledClientID).
		Order("installment_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) ListByClientAndType(ctx context.Context, enrolledClientID uint64, t instDomain.ChargeType) ([]instDomain.Installment, error) {
	var out []instDomain.Installment
	res := r.db.WithContext(ctx).
		Where("enrolled_client_id = ? AND charge_type = ?", enrolledClientID, t).
		Order("installment_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) GetInitialPayment(ctx context.Context, enrolledClientID uint64, t instDomain.ChargeType) (*instDomain.Installment, error) {
	var out instDomain.Installment
	res := r.db.WithContext(ctx).
		Where("enrolled_client_id = ? AND charge_type = ? AND installment_number = ? AND is_initial_payment = ?",
			enrolledClientID, t, instDomain.InitialPaymentNumber, true).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, instDomain.ErrNotFound
	}
	return &out, res.Error
}
