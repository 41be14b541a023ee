package client

// PhaseState is the derived position of one bilateral approval phase.
type PhaseState string

const (
	StateDraft              PhaseState = "draft"
	StatePendingAdminReview PhaseState = "pending_admin_review"
	StatePendingSalesReview PhaseState = "pending_sales_review"
	StateApproved           PhaseState = "approved"
)

// Phase binds one bilateral approval round to its flag triplet on the
// EnrolledClient row. Phase 1 (enrollment charge) and Phase 2 (final
// configuration) share the same transition rules; only the bound fields
// differ, so the rules live here once.
//
// Invariant: pendingUpdate and adminApproved are never both true.
type Phase struct {
	salesApproved *bool
	adminApproved *bool
	pendingUpdate *bool
}

// EnrollmentPhase is Phase 1: the negotiation over the enrollment charge.
func (c *EnrolledClient) EnrollmentPhase() Phase {
	return Phase{&c.ApprovalBySales, &c.ApprovalByAdmin, &c.HasUpdate}
}

// FinalPhase is Phase 2: the negotiation over offer-letter and first-year
// charges.
func (c *EnrolledClient) FinalPhase() Phase {
	return Phase{&c.FinalApprovalSales, &c.FinalApprovalByAdmin, &c.HasUpdateInFinal}
}

func (p Phase) State() PhaseState {
	switch {
	case *p.salesApproved && *p.adminApproved:
		return StateApproved
	case *p.pendingUpdate && *p.salesApproved:
		return StatePendingSalesReview
	case *p.pendingUpdate || *p.salesApproved:
		return StatePendingAdminReview
	default:
		return StateDraft
	}
}

// Converged reports whether both parties have approved.
func (p Phase) Converged() bool { return *p.salesApproved && *p.adminApproved }

// PendingUpdate reports whether an admin counter-proposal awaits a sales
// reply.
func (p Phase) PendingUpdate() bool { return *p.pendingUpdate }

// Submit restarts the negotiation: a freshly submitted configuration
// clears both approvals and discards any outstanding review, whatever
// state the phase was in.
func (p Phase) Submit() {
	*p.salesApproved = false
	*p.adminApproved = false
	*p.pendingUpdate = false
}

// AdminApprove records the admin's agreement with the current canonical
// values and closes any outstanding counter-proposal.
func (p Phase) AdminApprove() {
	*p.adminApproved = true
	*p.pendingUpdate = false
}

// AdminReject records an admin counter-proposal: approval is withdrawn and
// the ball moves to sales.
func (p Phase) AdminReject() {
	*p.adminApproved = false
	*p.pendingUpdate = true
}

// SalesAccept takes the admin's outstanding counter-proposal. Acceptance
// implies agreement with the admin's last state, so both flags end true.
// Fails when no counter-proposal is open.
func (p Phase) SalesAccept() error {
	if !*p.pendingUpdate {
		return ErrInvalidTransition
	}
	*p.salesApproved = true
	*p.adminApproved = true
	*p.pendingUpdate = false
	return nil
}

// SalesReject declines the admin's outstanding counter-proposal: the
// sales approval is withdrawn and the proposal deliberately stays open,
// so the record reads "awaiting admin's next move" until the admin
// re-submits. Fails when no counter-proposal is open; without that guard
// a rejection against a converged phase would set pendingUpdate next to
// adminApproved and break the invariant.
func (p Phase) SalesReject() error {
	if !*p.pendingUpdate {
		return ErrInvalidTransition
	}
	*p.salesApproved = false
	return nil
}
