package client

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Table: enrolled_clients. One row per enrolled lead (1:1, enforced by the
// unique index on lead_id). All payable fields are negotiated between the
// sales person and the admin through the bilateral approval phases; every
// canonical payable carries an edited_* shadow holding the admin's
// outstanding counter-proposal.
type EnrolledClient struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	ClientID string `gorm:"column:client_id;type:char(32);not null;uniqueIndex:ux_enrolled_clients_client_id_active"`
	// Public id of the originating lead
	LeadID string `gorm:"column:lead_id;type:char(32);not null;uniqueIndex:ux_enrolled_clients_lead_active"`

	// Canonical payable fields. Percentage and fixed first-year charge are
	// mutually exclusive; NetPayableFirstYearPrice is derived from whichever
	// of the two is in force.
	PayableEnrollmentCharge     float64 `gorm:"column:payable_enrollment_charge;type:decimal(18,2)"`
	PayableOfferLetterCharge    float64 `gorm:"column:payable_offer_letter_charge;type:decimal(18,2)"`
	PayableFirstYearPercentage  float64 `gorm:"column:payable_first_year_percentage;type:decimal(6,2)"`
	PayableFirstYearFixedCharge float64 `gorm:"column:payable_first_year_fixed_charge;type:decimal(18,2)"`
	NetPayableFirstYearPrice    float64 `gorm:"column:net_payable_first_year_price;type:decimal(18,2)"`
	FirstYearSalary             float64 `gorm:"column:first_year_salary;type:decimal(18,2)"`

	// Admin-proposed shadows, populated while a review round-trip is open.
	EditedEnrollmentCharge     float64 `gorm:"column:edited_enrollment_charge;type:decimal(18,2)"`
	EditedOfferLetterCharge    float64 `gorm:"column:edited_offer_letter_charge;type:decimal(18,2)"`
	EditedFirstYearPercentage  float64 `gorm:"column:edited_first_year_percentage;type:decimal(6,2)"`
	EditedFirstYearFixedCharge float64 `gorm:"column:edited_first_year_fixed_charge;type:decimal(18,2)"`
	EditedNetFirstYearPrice    float64 `gorm:"column:edited_net_first_year_price;type:decimal(18,2)"`
	EditedFirstYearSalary      float64 `gorm:"column:edited_first_year_salary;type:decimal(18,2)"`

	// Phase 1: enrollment-charge approval
	ApprovalBySales bool `gorm:"column:approval_by_sales;not null;default:false"`
	ApprovalByAdmin bool `gorm:"column:approval_by_admin;not null;default:false"`
	HasUpdate       bool `gorm:"column:has_update;not null;default:false"`

	// Phase 2: final-configuration approval
	FinalApprovalSales   bool `gorm:"column:final_approval_sales;not null;default:false"`
	FinalApprovalByAdmin bool `gorm:"column:final_approval_by_admin;not null;default:false"`
	HasUpdateInFinal     bool `gorm:"column:has_update_in_final;not null;default:false"`

	// Set exactly once, when portal provisioning succeeds after the first
	// Phase-1 convergence. Never reset.
	ClientUserCreated bool `gorm:"column:client_user_created;not null;default:false"`

	SalesPersonID string `gorm:"column:sales_person_id;type:char(32);not null;index"`
	AdminID       string `gorm:"column:admin_id;type:char(32)"`
	CreatedBy     string `gorm:"column:created_by;type:char(32);not null"`
	UpdatedBy     string `gorm:"column:updated_by;type:char(32)"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
	DeletedBy *string        `gorm:"column:deleted_by;type:char(32)"`
}

func (EnrolledClient) TableName() string { return "enrolled_clients" }

// ChargeConfiguration is a sales-submitted financial configuration.
// FirstYearPercentage and FirstYearFixedCharge are pointers so "not
// provided" is distinguishable from an explicit zero.
type ChargeConfiguration struct {
	EnrollmentCharge     float64
	OfferLetterCharge    float64
	FirstYearPercentage  *float64
	FirstYearFixedCharge *float64
	FirstYearSalary      float64
}

func (cc ChargeConfiguration) Validate() error {
	if cc.FirstYearPercentage != nil && cc.FirstYearFixedCharge != nil {
		return &ValidationError{
			Field:  "first_year_percentage",
			Reason: "percentage and fixed first-year charge are mutually exclusive",
		}
	}
	if cc.FirstYearPercentage != nil && (*cc.FirstYearPercentage < 0 || *cc.FirstYearPercentage > 100) {
		return &ValidationError{Field: "first_year_percentage", Reason: "must be between 0 and 100"}
	}
	if cc.FirstYearFixedCharge != nil && *cc.FirstYearFixedCharge < 0 {
		return &ValidationError{Field: "first_year_fixed_charge", Reason: "must not be negative"}
	}
	if cc.EnrollmentCharge < 0 {
		return &ValidationError{Field: "enrollment_charge", Reason: "must not be negative"}
	}
	if cc.OfferLetterCharge < 0 {
		return &ValidationError{Field: "offer_letter_charge", Reason: "must not be negative"}
	}
	if cc.FirstYearSalary < 0 {
		return &ValidationError{Field: "first_year_salary", Reason: "must not be negative"}
	}
	return nil
}

// NetFirstYearPrice derives the chargeable first-year amount:
// salary * percentage / 100 when the percentage form is used, otherwise the
// fixed charge. Computed in decimal so the stored figure is exact to 2dp.
func (cc ChargeConfiguration) NetFirstYearPrice() float64 {
	if cc.FirstYearPercentage != nil {
		salary := decimal.NewFromFloat(cc.FirstYearSalary)
		pct := decimal.NewFromFloat(*cc.FirstYearPercentage)
		f, _ := salary.Mul(pct).Div(decimal.NewFromInt(100)).Round(2).Float64()
		return f
	}
	if cc.FirstYearFixedCharge != nil {
		return *cc.FirstYearFixedCharge
	}
	return 0
}

// ApplyConfiguration writes the canonical payable fields from a validated
// configuration. Absent percentage/fixed-charge values clear their field,
// keeping the XOR invariant visible in the row itself.
func (c *EnrolledClient) ApplyConfiguration(cc ChargeConfiguration) {
	c.PayableEnrollmentCharge = cc.EnrollmentCharge
	c.PayableOfferLetterCharge = cc.OfferLetterCharge
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
