// Package portal declares the external collaborator interfaces the
// convergence trigger depends on: account provisioning and notification
// dispatch. Both are consumed, never implemented, by the core.
package portal

import (
	"context"
	"errors"
)

// ErrAccountExists signals the provisioning service already holds an
// account for the lead; the trigger treats this as success.
var ErrAccountExists = errors.New("portal account already exists")

// Account is the provisioning request: lead identity plus a one-time
// credential, pre-hashed so the plaintext never leaves the trigger except
// inside the welcome notification.
type Account struct {
	LeadID         string
	Name           string
	Email          string
	Phone          string
	CredentialHash string
}

type ProvisionedAccount struct {
	AccountID string
	LoginID   string
}

type Provisioner interface {
	CreatePortalAccount(ctx context.Context, a Account) (*ProvisionedAccount, error)
}

// Welcome carries the generated plaintext credential to the new portal
// user. Dispatch is fire-and-forget.
type Welcome struct {
	Name       string
	LoginID    string
	Credential string
	Contact    string
}

// Review notifies the counterpart party that a configuration awaits their
// review.
type Review struct {
	ClientID string
	ActorID  string
	Message  string
}

type Notifier interface {
	SendWelcomeNotification(ctx context.Context, w Welcome) error
	SendReviewNotification(ctx context.Context, r Review) error
}
