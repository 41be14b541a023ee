package client

import (
	"errors"
	"testing"
)

func TestPhase_SubmitResetsEverything(t *testing.T) {
	c := &EnrolledClient{
		ApprovalBySales: true,
		ApprovalByAdmin: true,
		HasUpdate:       true,
	}
	c.EnrollmentPhase().Submit()

	if c.ApprovalBySales || c.ApprovalByAdmin || c.HasUpdate {
		t.Fatalf("submit must clear all flags, got %+v", c)
	}
	if got := c.EnrollmentPhase().State(); got != StateDraft {
		t.Fatalf("state = %s, want %s", got, StateDraft)
	}
}

func TestPhase_AdminApproveThenSalesAccept(t *testing.T) {
	c := &EnrolledClient{}
	p := c.EnrollmentPhase()

	p.AdminReject()
	if got := p.State(); got != StatePendingAdminReview {
		// sales never approved; the open proposal still parks the record
		// on admin's side of the board
		t.Fatalf("state after reject = %s", got)
	}
	if err := p.SalesAccept(); err != nil {
		t.Fatalf("SalesAccept: %v", err)
	}
	if !p.Converged() {
		t.Fatal("acceptance must converge both flags")
	}
	if c.HasUpdate {
		t.Fatal("acceptance must close the pending update")
	}
	if got := p.State(); got != StateApproved {
		t.Fatalf("state = %s, want %s", got, StateApproved)
	}
}

func TestPhase_SalesAcceptWithoutPendingUpdate(t *testing.T) {
	c := &EnrolledClient{ApprovalBySales: true}
	err := c.EnrollmentPhase().SalesAccept()
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

// The reject path never clears the pending flag; sales rejection leaves
// the record "awaiting admin's next move". Pinned on purpose.
func TestPhase_SalesRejectKeepsPendingUpdate(t *testing.T) {
	c := &EnrolledClient{ApprovalBySales: true, HasUpdate: true}
	p := c.EnrollmentPhase()

	if err := p.SalesReject(); err != nil {
		t.Fatalf("SalesReject: %v", err)
	}
	if c.ApprovalBySales {
		t.Fatal("rejection must withdraw the sales approval")
	}
	if !c.HasUpdate {
		t.Fatal("rejection must leave the pending update open")
	}
}

func TestPhase_SalesRejectWithoutPendingUpdate(t *testing.T) {
	c := &EnrolledClient{ApprovalBySales: true, ApprovalByAdmin: true}
	p := c.EnrollmentPhase()

	if err := p.SalesReject(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	// a converged phase must come out untouched
	if !c.ApprovalBySales || !c.ApprovalByAdmin || c.HasUpdate {
		t.Fatalf("flags disturbed by rejected transition: %+v", c)
	}
}

// hasUpdate and approvalByAdmin must never be true together.
func TestPhase_PendingAndAdminApprovalExclusive(t *testing.T) {
	c := &EnrolledClient{}
	p := c.EnrollmentPhase()

	ops := []struct {
		name string
		run  func()
	}{
		{"submit", p.Submit},
		{"admin_reject", p.AdminReject},
		{"admin_approve", p.AdminApprove},
		{"sales_accept", func() { p.AdminReject(); _ = p.SalesAccept() }},
		{"sales_reject", func() { p.AdminReject(); _ = p.SalesReject() }},
	}
	for _, op := range ops {
		op.run()
		if c.HasUpdate && c.ApprovalByAdmin {
			t.Fatalf("after %s: hasUpdate and approvalByAdmin both true", op.name)
		}
	}
}

func TestPhase_FinalTripletIsIndependent(t *testing.T) {
	c := &EnrolledClient{ApprovalBySales: true, ApprovalByAdmin: true}

	c.FinalPhase().AdminReject()

	if !c.HasUpdateInFinal {
		t.Fatal("final phase reject must set hasUpdateInFinal")
	}
	if c.HasUpdate {
		t.Fatal("final phase must not leak into phase 1 flags")
	}
	if !c.EnrollmentPhase().Converged() {
		t.Fatal("phase 1 convergence must survive phase 2 activity")
	}
}

func TestPhase_StateMapping(t *testing.T) {
	tests := []struct {
		name                  string
		sales, admin, pending bool
		want                  PhaseState
	}{
		{"draft", false, false, false, StateDraft},
		{"sales submitted", true, false, false, StatePendingAdminReview},
		{"admin countered", true, false, true, StatePendingSalesReview},
		{"sales rejected", false, false, true, StatePendingAdminReview},
		{"converged", true, true, false, StateApproved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &EnrolledClient{
				ApprovalBySales: tt.sales,
				ApprovalByAdmin: tt.admin,
				HasUpdate:       tt.pending,
			}
			if got := c.EnrollmentPhase().State(); got != tt.want {
				t.Fatalf("State() = %s, want %s", got, tt.want)
			}
		})
	}
}
