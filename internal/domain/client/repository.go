package client

import "context"

type Repository interface {
	// Create a new enrolled client (DB uniqueness ensures at most one per lead)
	Create(ctx context.Context, c *EnrolledClient) error

	// Get by public client_id
	GetByClientID(ctx context.Context, clientID string) (*EnrolledClient, error)

	// Same lookup with the row locked FOR UPDATE; every mutating workflow
	// operation goes through this inside a transaction.
	GetByClientIDForUpdate(ctx context.Context, clientID string) (*EnrolledClient, error)

	// Get by the originating lead's public id
	GetByLeadID(ctx context.Context, leadID string) (*EnrolledClient, error)

	Save(ctx context.Context, c *EnrolledClient) error

	// Listing reads for review dashboards; plain queries, eventual
	// visibility is acceptable.
	ListPendingAdminReview(ctx context.Context) ([]EnrolledClient, error)
	ListPendingSalesReview(ctx context.Context) ([]EnrolledClient, error)
}
