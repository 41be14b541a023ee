package uow

import (
	"context"

	"talenthire-backend/internal/domain/client"
	"talenthire-backend/internal/domain/installment"
	"talenthire-backend/internal/domain/lead"
)

type Repos struct {
	Clients      client.Repository
	Installments installment.Repository
	Leads        lead.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the enrolled-client row first, then pass it in.
	// Every approval/ledger mutation goes through this so concurrent
	// operations on the same client serialize on the row lock.
	WithinClientTx(ctx context.Context, clientID string, fn func(r Repos, c *client.EnrolledClient) error) error
}
