package mysql

import (
	"context"

	"talenthire-backend/internal/domain/client"
	"talenthire-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Clients:      &ClientRepository{db: tx},
		Installments: &InstallmentRepository{db: tx},
		Leads:        &LeadRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinClientTx(ctx context.Context, clientID string, fn func(r uow.Repos, c *client.EnrolledClient) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the enrolled-client row up-front to serialize concurrent
		// workflow operations on the same client
		c, err := r.Clients.GetByClientIDForUpdate(ctx, clientID)
		if err != nil {
			return err
		}
		return fn(r, c)
	})
}
