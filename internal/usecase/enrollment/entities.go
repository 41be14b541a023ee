package enrollment

import (
	"time"

	"talenthire-backend/internal/domain/client"
)

type CreateEnrolledClientInput struct {
	LeadID        string
	SalesPersonID string
	ActorID       string
}

// SubmitConfigurationInput is the Phase-1 sales submission: the full
// financial configuration for the enrolled client.
type SubmitConfigurationInput struct {
	ClientID string
	ActorID  string
	Charges  client.ChargeConfiguration
}

// AdminReviewInput drives Phase 1 from the admin side. Approved=true
// snapshots and (on convergence) provisions; Approved=false records the
// counter-proposal in Edits.
type AdminReviewInput struct {
	ClientID string
	AdminID  string
	Approved bool
	Edits    client.ProposedEdits
}

// SalesReviewInput is the sales reply to an open admin counter-proposal.
type SalesReviewInput struct {
	ClientID      string
	SalesPersonID string
	Approved      bool
}

// FinalConfigurationInput is the Phase-2 sales submission: offer-letter
// and first-year terms. The enrollment charge is not negotiable here.
type FinalConfigurationInput struct {
	ClientID             string
	ActorID              string
	OfferLetterCharge    float64
	FirstYearPercentage  *float64
	FirstYearFixedCharge *float64
	FirstYearSalary      float64
}

// OfferLetterChargeInput is the narrow Phase-2 variant touching only the
// offer-letter charge.
type OfferLetterChargeInput struct {
	ClientID string
	ActorID  string
	Amount   float64
}

// FirstYearChargeInput is the narrow Phase-2 variant touching only the
// first-year terms.
type FirstYearChargeInput struct {
	ClientID             string
	ActorID              string
	FirstYearPercentage  *float64
	FirstYearFixedCharge *float64
	FirstYearSalary      float64
}

type EnrolledClientDTO struct {
	ClientID string `json:"client_id"`
	LeadID   string `json:"lead_id"`

	PayableEnrollmentCharge     float64 `json:"payable_enrollment_charge"`
	PayableOfferLetterCharge    float64 `json:"payable_offer_letter_charge"`
	PayableFirstYearPercentage  float64 `json:"payable_first_year_percentage"`
	PayableFirstYearFixedCharge float64 `json:"payable_first_year_fixed_charge"`
	NetPayableFirstYearPrice    float64 `json:"net_payable_first_year_price"`
	FirstYearSalary             float64 `json:"first_year_salary"`

	EditedEnrollmentCharge     float64 `json:"edited_enrollment_charge"`
	EditedOfferLetterCharge    float64 `json:"edited_offer_letter_charge"`
	EditedFirstYearPercentage  float64 `json:"edited_first_year_percentage"`
	EditedFirstYearFixedCharge float64 `json:"edited_first_year_fixed_charge"`
	EditedNetFirstYearPrice    float64 `json:"edited_net_first_year_price"`
	EditedFirstYearSalary      float64 `json:"edited_first_year_salary"`

	ApprovalBySales bool `json:"approval_by_sales"`
	ApprovalByAdmin bool `json:"approval_by_admin"`
	HasUpdate       bool `json:"has_update"`

	FinalApprovalSales   bool `json:"final_approval_sales"`
	FinalApprovalByAdmin bool `json:"final_approval_by_admin"`
	HasUpdateInFinal     bool `json:"has_update_in_final"`

	ClientUserCreated bool `json:"client_user_created"`

	EnrollmentState string `json:"enrollment_state"`
	FinalState      string `json:"final_state"`

	SalesPersonID string    `json:"sales_person_id"`
	AdminID       string    `json:"admin_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toDTO(c *client.EnrolledClient) *EnrolledClientDTO {
	return &EnrolledClientDTO{
		ClientID: c.ClientID,
		LeadID:   c.LeadID,

		PayableEnrollmentCharge:     c.PayableEnrollmentCharge,
		PayableOfferLetterCharge:    c.PayableOfferLetterCharge,
		PayableFirstYearPercentage:  c.PayableFirstYearPercentage,
		PayableFirstYearFixedCharge: c.PayableFirstYearFixedCharge,
		NetPayableFirstYearPrice:    c.NetPayableFirstYearPrice,
		FirstYearSalary:             c.FirstYearSalary,

		EditedEnrollmentCharge:     c.EditedEnrollmentCharge,
		EditedOfferLetterCharge:    c.EditedOfferLetterCharge,
		EditedFirstYearPercentage:  c.EditedFirstYearPercentage,
		EditedFirstYearFixedCharge: c.EditedFirstYearFixedCharge,
		EditedNetFirstYearPrice:    c.EditedNetFirstYearPrice,
		EditedFirstYearSalary:      c.EditedFirstYearSalary,

		ApprovalBySales: c.ApprovalBySales,
		ApprovalByAdmin: c.ApprovalByAdmin,
		HasUpdate:       c.HasUpdate,

		FinalApprovalSales:   c.FinalApprovalSales,
		FinalApprovalByAdmin: c.FinalApprovalByAdmin,
		HasUpdateInFinal:     c.HasUpdateInFinal,

		ClientUserCreated: c.ClientUserCreated,

		EnrollmentState: string(c.EnrollmentPhase().State()),
		FinalState:      string(c.FinalPhase().State()),

		SalesPersonID: c.SalesPersonID,
		AdminID:       c.AdminID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
