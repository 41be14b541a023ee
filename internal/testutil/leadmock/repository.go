package leadmock

import (
	"context"

	domain "talenthire-backend/internal/domain/lead"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies lead.Repository.
type Repo struct {
	CreateFn      func(ctx context.Context, l *domain.Lead) error
	GetByLeadIDFn func(ctx context.Context, leadID string) (*domain.Lead, error)
	SaveFn        func(ctx context.Context, l *domain.Lead) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Lead) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLeadID(ctx context.Context, leadID string) (*domain.Lead, error) {
	if m.GetByLeadIDFn != nil {
		return m.GetByLeadIDFn(ctx, leadID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, l *domain.Lead) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
