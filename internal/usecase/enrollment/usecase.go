package enrollment

import (
	"context"
	"errors"
	"log"
	"time"

	clientDomain "talenthire-backend/internal/domain/client"
	instDomain "talenthire-backend/internal/domain/installment"
	leadDomain "talenthire-backend/internal/domain/lead"
	"talenthire-backend/internal/domain/portal"
	"talenthire-backend/internal/domain/uow"
	"talenthire-backend/pkg/id"
)

// Usecase drives the bilateral approval workflow: Phase-1 enrollment
// charge negotiation (with the provisioning side effect on convergence)
// and Phase-2 final configuration. Every mutation runs inside a
// client-locked transaction.
type Usecase struct {
	clientRepo  clientDomain.Repository
	leadRepo    leadDomain.Repository
	uow         uow.UnitOfWork
	provisioner portal.Provisioner
	notifier    portal.Notifier
}

func NewUsecase(
	clients clientDomain.Repository,
	leads leadDomain.Repository,
	tx uow.UnitOfWork,
	provisioner portal.Provisioner,
	notifier portal.Notifier,
) *Usecase {
	return &Usecase{
		clientRepo:  clients,
		leadRepo:    leads,
		uow:         tx,
		provisioner: provisioner,
		notifier:    notifier,
	}
}

// CreateEnrolledClient converts a lead into an enrolled client (1:1,
// enforced by uniqueness on lead_id) and marks the lead enrolled. The new
// record starts in Draft with zeroed payables.
func (u *Usecase) CreateEnrolledClient(ctx context.Context, in CreateEnrolledClientInput) (*EnrolledClientDTO, error) {
	if in.LeadID == "" || in.SalesPersonID == "" {
		return nil, &clientDomain.ValidationError{Field: "lead_id", Reason: "lead and sales person ids are required"}
	}

	var dto *EnrolledClientDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		ld, err := r.Leads.GetByLeadID(ctx, in.LeadID)
		if err != nil {
			return err
		}
		if _, err := r.Clients.GetByLeadID(ctx, in.LeadID); err == nil {
			return clientDomain.ErrLeadEnrolled
		} else if !errors.Is(err, clientDomain.ErrNotFound) {
			return err
		}

		c := &clientDomain.EnrolledClient{
			ClientID:      id.NewID32(),
			LeadID:        ld.LeadID,
			SalesPersonID: in.SalesPersonID,
			CreatedBy:     in.ActorID,
		}
		if err := r.Clients.Create(ctx, c); err != nil {
			return err
		}

		if ld.Status != leadDomain.StatusEnrolled {
			ld.Status = leadDomain.StatusEnrolled
			if err := r.Leads.Save(ctx, ld); err != nil {
				return err
			}
		}

		dto = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, clientID string) (*EnrolledClientDTO, error) {
	c, err := u.clientRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) ListPendingAdminReview(ctx context.Context) ([]EnrolledClientDTO, error) {
	return u.listWith(u.clientRepo.ListPendingAdminReview, ctx)
}

func (u *Usecase) ListPendingSalesReview(ctx context.Context) ([]EnrolledClientDTO, error) {
	return u.listWith(u.clientRepo.ListPendingSalesReview, ctx)
}

func (u *Usecase) listWith(list func(context.Context) ([]clientDomain.EnrolledClient, error), ctx context.Context) ([]EnrolledClientDTO, error) {
	rows, err := list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EnrolledClientDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

// SubmitConfiguration is the Phase-1 sales submission. A new submission
// always restarts the negotiation: both approvals and any outstanding
// counter-proposal are discarded.
func (u *Usecase) SubmitConfiguration(ctx context.Context, in SubmitConfigurationInput) (*EnrolledClientDTO, error) {
	if err := in.Charges.Validate(); err != nil {
		return nil, err
	}

	var dto *EnrolledClientDTO
	err := u.uow.WithinClientTx(ctx, in.ClientID, func(r uow.Repos, c *clientDomain.EnrolledClient) error {
		c.ApplyConfiguration(in.Charges)
		c.EnrollmentPhase().Submit()
		c.UpdatedBy = in.ActorID
		if err := r.Clients.Save(ctx, c); err != nil {
			return err
		}
		dto = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notifyReview(ctx, in.ClientID, in.ActorID, "enrollment configuration submitted for admin review")
	return dto, nil
}

// AdminReview handles both Phase-1 admin outcomes. Approval snapshots
// every canonical payable into its edited shadow (and likewise for every
// installment), then provisions the portal account if both parties have
// now converged. Rejection records the partial counter-proposal and hands
// the ball to sales.
func (u *Usecase) AdminReview(ctx context.Context, in AdminReviewInput) (*EnrolledClientDTO, error) {
	var (
		dto     *EnrolledClientDTO
		welcome *portal.Welcome
	)
	err := u.uow.WithinClientTx(ctx, in.ClientID, func(r uow.Repos, c *clientDomain.EnrolledClient) error {
		if in.Approved {
			c.EnrollmentPhase().AdminApprove()
			c.SnapshotEdits()
			if err := snapshotInstallments(ctx, r, c.ID); err != nil {
				return err
			}
		} else {
			c.EnrollmentPhase().AdminReject()
			c.ApplyProposed(in.Edits)
		}
		c.AdminID = in.AdminID
		c.UpdatedBy = in.AdminID

		if in.Approved {
			w, err := u.provisionOnConvergence(ctx, r, c)
			if err != nil {
				return err
			}
			welcome = w
		}

		if err := r.Clients.Save(ctx, c); err != nil {
			return err
		}
		dto = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.deliverWelcome(ctx, welcome)
	if !in.Approved {
		u.notifyReview(ctx, in.ClientID, in.AdminID, "admin proposed changes await sales review")
	}
	return dto, nil
}

// SalesReview is the sales reply to an open admin counter-proposal.
// Acceptance promotes every edited value (client fields and the pending
// installments) to canonical and marks both parties approved; rejection
// withdraws the sales approval but leaves the proposal open.
func (u *Usecase) SalesReview(ctx context.Context, in SalesReviewInput) (*EnrolledClientDTO, error) {
	var (
		dto     *EnrolledClientDTO
		welcome *portal.Welcome
	)
	err := u.uow.WithinClientTx(ctx, in.ClientID, func(r uow.Repos, c *clientDomain.EnrolledClient) error {
		if in.Approved {
			if err := c.EnrollmentPhase().SalesAccept(); err != nil {
				return err
			}
			c.AcceptEdits()
			if err := acceptPendingInstallments(ctx, r, c.ID); err != nil {
				return err
			}
		} else if err := c.EnrollmentPhase().SalesReject(); err != nil {
			return err
		}
		c.UpdatedBy = in.SalesPersonID

		if in.Approved {
			w, err := u.provisionOnConvergence(ctx, r, c)
			if err != nil {
				return err
			}
			welcome = w
		}

		if err := r.Clients.Save(ctx, c); err != nil {
			return err
		}
		dto = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.deliverWelcome(ctx, welcome)
	if !in.Approved {
		u.notifyReview(ctx, in.ClientID, in.SalesPersonID, "sales rejected the proposed changes")
	}
	return dto, nil
}

// snapshotInstallments aligns every installment's edited shadows with its
// canonical values, closing open admin proposals. Runs on admin approval.
func snapshotInstallments(ctx context.Context, r uow.Repos, enrolledClientID uint64) error {
	rows, err := r.Installments.ListByClient(ctx, enrolledClientID)
	if err != nil {
		return err
	}
	for i := range rows {
		rows[i].SnapshotEdits()
		if err := r.Installments.Save(ctx, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// acceptPendingInstallments rewrites only the rows carrying an
// unanswered admin proposal; everything else is untouched.
func acceptPendingInstallments(ctx context.Context, r uow.Repos, enrolledClientID uint64) error {
	rows, err := r.Installments.ListByClient(ctx, enrolledClientID)
	if err != nil {
		return err
	}
	for i := range rows {
		if !rows[i].NeedsSalesAcceptance() {
			continue
		}
		rows[i].AcceptAdminEdits()
		if err := r.Installments.Save(ctx, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// markInitialPaymentPaid flags the reserved number-0 enrollment row paid.
// Absence of the row is not an error.
func markInitialPaymentPaid(ctx context.Context, r uow.Repos, enrolledClientID uint64) error {
	init, err := r.Installments.GetInitialPayment(ctx, enrolledClientID, instDomain.ChargeEnrollment)
	if errors.Is(err, instDomain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	init.MarkPaid(time.Now())
	return r.Installments.Save(ctx, init)
}

func (u *Usecase) notifyReview(ctx context.Context, clientID, actorID, msg string) {
	if u.notifier == nil {
		return
	}
	err := u.notifier.SendReviewNotification(ctx, portal.Review{
		ClientID: clientID,
		ActorID:  actorID,
		Message:  msg,
	})
	if err != nil {
		log.Printf("review notification for %s failed: %v", clientID, err)
	}
}

func (u *Usecase) deliverWelcome(ctx context.Context, w *portal.Welcome) {
	if w == nil || u.notifier == nil {
		return
	}
	if err := u.notifier.SendWelcomeNotification(ctx, *w); err != nil {
		log.Printf("welcome notification for %s failed: %v", w.LoginID, err)
	}
}
