package enrollment

// Phase 2: the final-configuration negotiation over offer-letter and
// first-year charges. Same transition shape as Phase 1 over the final*
// flag triplet; no provisioning side effect is attached here.

import (
	"context"

	clientDomain "talenthire-backend/internal/domain/client"
	"talenthire-backend/internal/domain/uow"
)

// UpdateFinalConfiguration is the Phase-2 sales submission. Like the
// Phase-1 submit, it restarts the final negotiation and implicitly
// discards any outstanding review state.
func (u *Usecase) UpdateFinalConfiguration(ctx context.Context, in FinalConfigurationInput) (*EnrolledClientDTO, error) {
	cc := clientDomain.ChargeConfiguration{
		OfferLetterCharge:    in.OfferLetterCharge,
		FirstYearPercentage:  in.FirstYearPercentage,
		FirstYearFixedCharge: in.FirstYearFixedCharge,
		FirstYearSalary:      in.FirstYearSalary,
	}
	if err := cc.Validate(); err != nil {
		return nil, err
	}

	return u.finalSubmit(ctx, in.ClientID, in.ActorID, func(c *clientDomain.EnrolledClient) {
		c.PayableOfferLetterCharge = in.OfferLetterCharge
		applyFirstYear(c, cc)
	})
}

// UpdateOfferLetterCharge is the narrow Phase-2 variant touching only the
// offer-letter charge.
func (u *Usecase) UpdateOfferLetterCharge(ctx context.Context, in OfferLetterChargeInput) (*EnrolledClientDTO, error) {
	if in.Amount < 0 {
		return nil, &clientDomain.ValidationError{Field: "offer_letter_charge", Reason: "must not be negative"}
	}
	return u.finalSubmit(ctx, in.ClientID, in.ActorID, func(c *clientDomain.EnrolledClient) {
		c.PayableOfferLetterCharge = in.Amount
	})
}

// UpdateFirstYearCharge is the narrow Phase-2 variant touching only the
// first-year terms.
func (u *Usecase) UpdateFirstYearCharge(ctx context.Context, in FirstYearChargeInput) (*EnrolledClientDTO, error) {
	cc := clientDomain.ChargeConfiguration{
		FirstYearPercentage:  in.FirstYearPercentage,
		FirstYearFixedCharge: in.FirstYearFixedCharge,
		FirstYearSalary:      in.FirstYearSalary,
	}
	if err := cc.Validate(); err != nil {
		return nil, err
	}
	return u.finalSubmit(ctx, in.ClientID, in.ActorID, func(c *clientDomain.EnrolledClient) {
		applyFirstYear(c, cc)
	})
}

func applyFirstYear(c *clientDomain.EnrolledClient, cc clientDomain.ChargeConfiguration) {
	c.PayableFirstYearPercentage = 0
	c.PayableFirstYearFixedCharge = 0
	if cc.FirstYearPercentage != nil {
		c.PayableFirstYearPercentage = *cc.FirstYearPercentage
	}
	if cc.FirstYearFixedCharge != nil {
		c.PayableFirstYearFixedCharge = *cc.FirstYearFixedCharge
	}
	c.FirstYearSalary = cc.FirstYearSalary
	c.NetPayableFirstYearPrice = cc.NetFirstYearPrice()
}

func (u *Usecase) finalSubmit(ctx context.Context, clientID, actorID string, mutate func(*clientDomain.EnrolledClient)) (*EnrolledClientDTO, error) {
	var dto *EnrolledClientDTO
	err := u.uow.WithinClientTx(ctx, clientID, func(r uow.Repos, c *clientDomain.EnrolledClient) error {
		mutate(c)
		c.FinalPhase().Submit()
		c.UpdatedBy = actorID
		if err := r.Clients.Save(ctx, c); err != nil {
			return err
		}
		dto = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.notifyReview(ctx, clientID, actorID, "final configuration submitted for admin review")
	return dto, nil
}

// AdminFinalReview mirrors AdminReview for Phase 2: approval snapshots
// the final-negotiated fields and every installment; rejection stores the
// counter-proposal behind hasUpdateInFinal. No convergence trigger.
func (u *Usecase) AdminFinalReview(ctx context.Context, in AdminReviewInput) (*EnrolledClientDTO, error) {
	var dto *EnrolledClientDTO
	err := u.uow.WithinClientTx(ctx, in.ClientID, func(r uow.Repos, c *clientDomain.EnrolledClient) error {
		if in.Approved {
			c.FinalPhase().AdminApprove()
			c.SnapshotFinalEdits()
			if err := snapshotInstallments(ctx, r, c.ID); err != nil {
				return err
			}
		} else {
			c.FinalPhase().AdminReject()
			c.ApplyProposed(in.Edits)
		}
		c.AdminID = in.AdminID
		c.UpdatedBy = in.AdminID
		if err := r.Clients.Save(ctx, c); err != nil {
			return err
		}
		dto = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !in.Approved {
		u.notifyReview(ctx, in.ClientID, in.AdminID, "admin proposed final-configuration changes await sales review")
	}
	return dto, nil
}

// SalesFinalReview mirrors SalesReview for Phase 2.
func (u *Usecase) SalesFinalReview(ctx context.Context, in SalesReviewInput) (*EnrolledClientDTO, error) {
	var dto *EnrolledClientDTO
	err := u.uow.WithinClientTx(ctx, in.ClientID, func(r uow.Repos, c *clientDomain.EnrolledClient) error {
		if in.Approved {
			if err := c.FinalPhase().SalesAccept(); err != nil {
				return err
			}
			c.AcceptFinalEdits()
			if err := acceptPendingInstallments(ctx, r, c.ID); err != nil {
				return err
			}
		} else if err := c.FinalPhase().SalesReject(); err != nil {
			return err
		}
		c.UpdatedBy = in.SalesPersonID
		if err := r.Clients.Save(ctx, c); err != nil {
			return err
		}
		dto = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !in.Approved {
		u.notifyReview(ctx, in.ClientID, in.SalesPersonID, "sales rejected the proposed final-configuration changes")
	}
	return dto, nil
}
