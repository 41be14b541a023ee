package enrollment

import (
	"context"
	"errors"
	"log"

	clientDomain "talenthire-backend/internal/domain/client"
	leadDomain "talenthire-backend/internal/domain/lead"
	"talenthire-backend/internal/domain/portal"
	"talenthire-backend/internal/domain/uow"
	"talenthire-backend/pkg/password"
)

// provisionOnConvergence is the Phase-1 convergence trigger. It runs
// inside the client-locked transaction, so the clientUserCreated guard is
// race-free: the flag transitions false→true at most once.
//
// Order matters: guard, mark the initial payment paid, provision, set the
// flag. Provisioning failures (other than "account already exists") are
// logged and leave the flag false so a later approval-adjacent call
// retries; they never fail the approval itself. A persistence failure is
// the only returned error and rolls back the whole operation.
//
// The returned Welcome, if any, must be dispatched after commit.
func (u *Usecase) provisionOnConvergence(ctx context.Context, r uow.Repos, c *clientDomain.EnrolledClient) (*portal.Welcome, error) {
	if !c.EnrollmentPhase().Converged() || c.ClientUserCreated {
		return nil, nil
	}

	if err := markInitialPaymentPaid(ctx, r, c.ID); err != nil {
		return nil, err
	}

	if u.provisioner == nil {
		log.Printf("no provisioner configured, portal account for client %s deferred", c.ClientID)
		return nil, nil
	}

	ld, err := r.Leads.GetByLeadID(ctx, c.LeadID)
	if err != nil {
		if errors.Is(err, leadDomain.ErrNotFound) {
			log.Printf("lead %s missing, portal account for client %s deferred", c.LeadID, c.ClientID)
			return nil, nil
		}
		return nil, err
	}

	credential, hash, err := password.Generate()
	if err != nil {
		log.Printf("credential generation for client %s failed: %v", c.ClientID, err)
		return nil, nil
	}

	acct, err := u.provisioner.CreatePortalAccount(ctx, portal.Account{
		LeadID:         ld.LeadID,
		Name:           ld.Name,
		Email:          ld.Email,
		Phone:          ld.Phone,
		CredentialHash: hash,
	})
	switch {
	case err == nil:
		c.ClientUserCreated = true
		return &portal.Welcome{
			Name:       ld.Name,
			LoginID:    acct.LoginID,
			Credential: credential,
			Contact:    ld.Email,
		}, nil
	case errors.Is(err, portal.ErrAccountExists):
		// idempotent success; no fresh credential to deliver
		c.ClientUserCreated = true
		return nil, nil
	default:
		log.Printf("portal provisioning for client %s failed: %v", c.ClientID, err)
		return nil, nil
	}
}
