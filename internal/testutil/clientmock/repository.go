package clientmock

import (
	"context"

	domain "talenthire-backend/internal/domain/client"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies client.Repository.
// Fill in only the function fields a test needs.
type Repo struct {
	CreateFn                 func(ctx context.Context, c *domain.EnrolledClient) error
	GetByClientIDFn          func(ctx context.Context, clientID string) (*domain.EnrolledClient, error)
	GetByClientIDForUpdateFn func(ctx context.Context, clientID string) (*domain.EnrolledClient, error)
	GetByLeadIDFn            func(ctx context.Context, leadID string) (*domain.EnrolledClient, error)
	SaveFn                   func(ctx context.Context, c *domain.EnrolledClient) error
	ListPendingAdminFn       func(ctx context.Context) ([]domain.EnrolledClient, error)
	ListPendingSalesFn       func(ctx context.Context) ([]domain.EnrolledClient, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.EnrolledClient) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByClientID(ctx context.Context, clientID string) (*domain.EnrolledClient, error) {
	if m.GetByClientIDFn != nil {
		return m.GetByClientIDFn(ctx, clientID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByClientIDForUpdate(ctx context.Context, clientID string) (*domain.EnrolledClient, error) {
	if m.GetByClientIDForUpdateFn != nil {
		return m.GetByClientIDForUpdateFn(ctx, clientID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByLeadID(ctx context.Context, leadID string) (*domain.EnrolledClient, error) {
	if m.GetByLeadIDFn != nil {
		return m.GetByLeadIDFn(ctx, leadID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, c *domain.EnrolledClient) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) ListPendingAdminReview(ctx context.Context) ([]domain.EnrolledClient, error) {
	if m.ListPendingAdminFn != nil {
		return m.ListPendingAdminFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListPendingSalesReview(ctx context.Context) ([]domain.EnrolledClient, error) {
	if m.ListPendingSalesFn != nil {
		return m.ListPendingSalesFn(ctx)
	}
	return nil, nil
}
