package lead

import "context"

type Repository interface {
	Create(ctx context.Context, l *Lead) error
	GetByLeadID(ctx context.Context, leadID string) (*Lead, error)
	Save(ctx context.Context, l *Lead) error
}
