package mysql

import (
	"context"
	"errors"

	leadDomain "talenthire-backend/internal/domain/lead"

	"gorm.io/gorm"
)

type LeadRepository struct{ db *gorm.DB }

func NewLeadRepository(db *gorm.DB) *LeadRepository { return &LeadRepository{db: db} }

func (r *LeadRepository) Create(ctx context.Context, l *leadDomain.Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LeadRepository) Save(ctx context.Context, l *leadDomain.Lead) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LeadRepository) GetByLeadID(ctx context.Context, leadID string) (*leadDomain.Lead, error) {
	var out leadDomain.Lead
	res := r.db.WithContext(ctx).Where("lead_id = ?", leadID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, leadDomain.ErrNotFound
	}
	return &out, res.Error
}
