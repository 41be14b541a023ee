package mysql

import (
	"context"
	"errors"

	clientDomain "talenthire-backend/internal/domain/client"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClientRepository struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) *ClientRepository { return &ClientRepository{db: db} }

func (r *ClientRepository) Create(ctx context.Context, c *clientDomain.EnrolledClient) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) Save(ctx context.Context, c *clientDomain.EnrolledClient) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClientRepository) GetByClientID(ctx context.Context, clientID string) (*clientDomain.EnrolledClient, error) {
	var out clientDomain.EnrolledClient
	res := r.db.WithContext(ctx).Where("client_id = ?", clientID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, clientDomain.ErrNotFound
	}
	return &out, res.Error
}

// GetByClientIDForUpdate locks the row with SELECT ... FOR UPDATE; callers
// must already be inside a transaction.
func (r *ClientRepository) GetByClientIDForUpdate(ctx context.Context, clientID string) (*clientDomain.EnrolledClient, error) {
	var out clientDomain.EnrolledClient
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("client_id = ?", clientID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, clientDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ClientRepository) GetByLeadID(ctx context.Context, leadID string) (*clientDomain.EnrolledClient, error) {
	var out clientDomain.EnrolledClient
	res := r.db.WithContext(ctx).Where("lead_id = ?", leadID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, clientDomain.ErrNotFound
	}
	return &out, res.Error
}

// Pending admin review: everything on the admin's side of the board —
// unapproved records, including sales-rejected counter-proposals
// (has_update without a sales approval). A submitted configuration is
// flag-identical to a fresh draft, so both appear here. Disjoint with
// ListPendingSalesReview.
func (r *ClientRepository) ListPendingAdminReview(ctx context.Context) ([]clientDomain.EnrolledClient, error) {
	var out []clientDomain.EnrolledClient
	res := r.db.WithContext(ctx).
		Where("approval_by_admin = ? AND NOT (has_update = ? AND approval_by_sales = ?)", false, true, true).
		Order("updated_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// Pending sales review: an admin counter-proposal awaits a previously
// approving sales party, in either phase.
func (r *ClientRepository) ListPendingSalesReview(ctx context.Context) ([]clientDomain.EnrolledClient, error) {
	var out []clientDomain.EnrolledClient
	res := r.db.WithContext(ctx).
		Where("(has_update = ? AND approval_by_sales = ?) OR (has_update_in_final = ? AND final_approval_sales = ?)",
			true, true, true, true).
		Order("updated_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
