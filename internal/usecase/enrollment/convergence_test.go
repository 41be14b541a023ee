package enrollment

import (
	"context"
	"errors"
	"testing"

	instDomain "talenthire-backend/internal/domain/installment"
	"talenthire-backend/internal/domain/portal"
)

// Admin approval lands while sales already approved: the trigger fires,
// marks the initial payment paid, provisions the portal account and hands
// back a welcome notification.
func TestConvergence_AdminApprovalTriggersProvisioning(t *testing.T) {
	c := draftClient()
	c.ApprovalBySales = true
	f := newFixture(c, []instDomain.Installment{
		{InstallmentID: "i0", ChargeType: instDomain.ChargeEnrollment, InstallmentNumber: instDomain.InitialPaymentNumber, Amount: 15000, IsInitialPayment: true},
	})

	dto, err := f.uc.AdminReview(context.Background(), AdminReviewInput{
		ClientID: c.ClientID,
		AdminID:  "admin000000000000000000000000001",
		Approved: true,
	})
	if err != nil {
		t.Fatalf("AdminReview: %v", err)
	}
	if !dto.ClientUserCreated {
		t.Fatal("convergence must set clientUserCreated")
	}
	if got := f.prov.Calls(); got != 1 {
		t.Fatalf("provisioner calls = %d, want 1", got)
	}
	if !f.rows[0].Paid || f.rows[0].PaidDate == nil {
		t.Fatalf("initial payment not marked paid: %+v", f.rows[0])
	}
	if len(f.notifier.Welcomes) != 1 {
		t.Fatalf("welcome notifications = %d, want 1", len(f.notifier.Welcomes))
	}
	w := f.notifier.Welcomes[0]
	if w.Name != f.lead.Name || w.Contact != f.lead.Email || w.Credential == "" {
		t.Fatalf("welcome = %+v, want lead identity with a credential", w)
	}
}

// Sales acceptance of a counter-proposal is the other convergence path.
func TestConvergence_SalesAcceptanceTriggersProvisioning(t *testing.T) {
	c := draftClient()
	c.HasUpdate = true
	c.EditedEnrollmentCharge = 12000
	f := newFixture(c, nil)

	dto, err := f.uc.SalesReview(context.Background(), SalesReviewInput{
		ClientID:      c.ClientID,
		SalesPersonID: c.SalesPersonID,
		Approved:      true,
	})
	if err != nil {
		t.Fatalf("SalesReview: %v", err)
	}
	if !dto.ClientUserCreated {
		t.Fatal("convergence must set clientUserCreated")
	}
	if got := f.prov.Calls(); got != 1 {
		t.Fatalf("provisioner calls = %d, want 1", got)
	}
}

// A converged record stays provisioned-once: repeated approvals never
// reach the provisioner again.
func TestConvergence_ExactlyOnce(t *testing.T) {
	c := draftClient()
	c.ApprovalBySales = true
	f := newFixture(c, nil)

	in := AdminReviewInput{ClientID: c.ClientID, AdminID: "admin000000000000000000000000001", Approved: true}
	if _, err := f.uc.AdminReview(context.Background(), in); err != nil {
		t.Fatalf("first AdminReview: %v", err)
	}
	if _, err := f.uc.AdminReview(context.Background(), in); err != nil {
		t.Fatalf("second AdminReview: %v", err)
	}
	if got := f.prov.Calls(); got != 1 {
		t.Fatalf("provisioner calls = %d, want 1", got)
	}
	if len(f.notifier.Welcomes) != 1 {
		t.Fatalf("welcome notifications = %d, want 1", len(f.notifier.Welcomes))
	}
}

// One-sided approval never provisions.
func TestConvergence_NoPrematureProvisioning(t *testing.T) {
	f := newFixture(draftClient(), nil)

	if _, err := f.uc.AdminReview(context.Background(), AdminReviewInput{
		ClientID: f.client.ClientID,
		AdminID:  "admin000000000000000000000000001",
		Approved: true,
	}); err != nil {
		t.Fatalf("AdminReview: %v", err)
	}
	if got := f.prov.Calls(); got != 0 {
		t.Fatalf("provisioner calls = %d, want 0", got)
	}
	if f.client.ClientUserCreated {
		t.Fatal("clientUserCreated must stay false before convergence")
	}
}

// Provisioning failure must not fail or roll back the approval; the flag
// stays false so a later converged call can retry.
func TestConvergence_ProvisioningFailureKeepsApproval(t *testing.T) {
	c := draftClient()
	c.ApprovalBySales = true
	f := newFixture(c, nil)
	f.prov.CreateFn = func(ctx context.Context, a portal.Account) (*portal.ProvisionedAccount, error) {
		return nil, errors.New("portal unreachable")
	}

	dto, err := f.uc.AdminReview(context.Background(), AdminReviewInput{
		ClientID: c.ClientID,
		AdminID:  "admin000000000000000000000000001",
		Approved: true,
	})
	if err != nil {
		t.Fatalf("AdminReview: %v", err)
	}
	if !dto.ApprovalByAdmin || !dto.ApprovalBySales {
		t.Fatalf("approval lost: %+v", dto)
	}
	if dto.ClientUserCreated {
		t.Fatal("failed provisioning must leave clientUserCreated false")
	}
	if len(f.notifier.Welcomes) != 0 {
		t.Fatal("no welcome without a provisioned account")
	}
	if f.saves != 1 {
		t.Fatalf("saves = %d, want the approval committed", f.saves)
	}
}

// "Account already exists" is idempotent success: the flag is set but no
// fresh credential goes out.
func TestConvergence_AccountExists(t *testing.T) {
	c := draftClient()
	c.ApprovalBySales = true
	f := newFixture(c, nil)
	f.prov.CreateFn = func(ctx context.Context, a portal.Account) (*portal.ProvisionedAccount, error) {
		return nil, portal.ErrAccountExists
	}

	dto, err := f.uc.AdminReview(context.Background(), AdminReviewInput{
		ClientID: c.ClientID,
		AdminID:  "admin000000000000000000000000001",
		Approved: true,
	})
	if err != nil {
		t.Fatalf("AdminReview: %v", err)
	}
	if !dto.ClientUserCreated {
		t.Fatal("existing account must still set clientUserCreated")
	}
	if len(f.notifier.Welcomes) != 0 {
		t.Fatal("no welcome for an already-existing account")
	}
}

// The provisioning request carries the lead's identity and a bcrypt hash,
// never the plaintext credential.
func TestConvergence_AccountCarriesLeadIdentity(t *testing.T) {
	c := draftClient()
	c.ApprovalBySales = true
	f := newFixture(c, nil)

	var got portal.Account
	f.prov.CreateFn = func(ctx context.Context, a portal.Account) (*portal.ProvisionedAccount, error) {
		got = a
		return &portal.ProvisionedAccount{AccountID: "acct-1", LoginID: a.Email}, nil
	}

	if _, err := f.uc.AdminReview(context.Background(), AdminReviewInput{
		ClientID: c.ClientID,
		AdminID:  "admin000000000000000000000000001",
		Approved: true,
	}); err != nil {
		t.Fatalf("AdminReview: %v", err)
	}
	if got.LeadID != f.lead.LeadID || got.Name != f.lead.Name || got.Email != f.lead.Email {
		t.Fatalf("account = %+v, want lead identity", got)
	}
	if got.CredentialHash == "" || got.CredentialHash == f.notifier.Welcomes[0].Credential {
		t.Fatal("account must carry a hash distinct from the plaintext credential")
	}
}

// Welcome dispatch is fire-and-forget: a notifier failure never surfaces.
func TestConvergence_WelcomeFailureIgnored(t *testing.T) {
	c := draftClient()
	c.ApprovalBySales = true
	f := newFixture(c, nil)
	f.notifier.WelcomeFn = func(ctx context.Context, w portal.Welcome) error {
		return errors.New("smtp down")
	}

	dto, err := f.uc.AdminReview(context.Background(), AdminReviewInput{
		ClientID: c.ClientID,
		AdminID:  "admin000000000000000000000000001",
		Approved: true,
	})
	if err != nil {
		t.Fatalf("AdminReview: %v", err)
	}
	if !dto.ClientUserCreated {
		t.Fatal("notification failure must not undo provisioning")
	}
}

// A missing lead defers provisioning without failing the approval.
func TestConvergence_LeadMissingDefers(t *testing.T) {
	c := draftClient()
	c.ApprovalBySales = true
	c.LeadID = "feed00000000000000000000000000ff"
	f := newFixture(c, nil)
	f.lead.LeadID = "lead00000000000000000000000000aa" // fixture lead no longer matches

	dto, err := f.uc.AdminReview(context.Background(), AdminReviewInput{
		ClientID: c.ClientID,
		AdminID:  "admin000000000000000000000000001",
		Approved: true,
	})
	if err != nil {
		t.Fatalf("AdminReview: %v", err)
	}
	if dto.ClientUserCreated {
		t.Fatal("provisioning must be deferred when the lead is gone")
	}
	if got := f.prov.Calls(); got != 0 {
		t.Fatalf("provisioner calls = %d, want 0", got)
	}
}

// No number-0 row yet: convergence still succeeds, nothing to mark paid.
func TestConvergence_NoInitialPaymentRow(t *testing.T) {
	c := draftClient()
	c.ApprovalBySales = true
	f := newFixture(c, nil)

	dto, err := f.uc.AdminReview(context.Background(), AdminReviewInput{
		ClientID: c.ClientID,
		AdminID:  "admin000000000000000000000000001",
		Approved: true,
	})
	if err != nil {
		t.Fatalf("AdminReview: %v", err)
	}
	if !dto.ClientUserCreated {
		t.Fatal("missing initial payment row must not block provisioning")
	}
}
