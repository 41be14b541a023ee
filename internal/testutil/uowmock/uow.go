package uowmock

import (
	"context"
	"errors"

	"talenthire-backend/internal/domain/client"
	"talenthire-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn       func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinClientTxFn func(ctx context.Context, clientID string, fn func(r uow.Repos, c *client.EnrolledClient) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough builds a UoW whose transactions simply run the callback
// against the given repos, with cl as the locked client row. Covers the
// common test wiring in one line.
func Passthrough(r uow.Repos, cl *client.EnrolledClient) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinClientTxFn: func(ctx context.Context, clientID string, fn func(uow.Repos, *client.EnrolledClient) error) error {
			if cl == nil {
				return client.ErrNotFound
			}
			return fn(r, cl)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinClientTx(ctx context.Context, clientID string, fn func(r uow.Repos, c *client.EnrolledClient) error) error {
	if m.WithinClientTxFn != nil {
		return m.WithinClientTxFn(ctx, clientID, fn)
	}
	return errUnimplemented
}
