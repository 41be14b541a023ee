package installment

import (
	"time"

	"gorm.io/gorm"
)

type ChargeType string

const (
	ChargeEnrollment  ChargeType = "enrollment_charge"
	ChargeOfferLetter ChargeType = "offer_letter_charge"
	ChargeFirstYear   ChargeType = "first_year_charge"
)

func (t ChargeType) Valid() bool {
	switch t {
	case ChargeEnrollment, ChargeOfferLetter, ChargeFirstYear:
		return true
	}
	return false
}

// InitialPaymentNumber is reserved for the auto-generated payment row that
// represents the enrollment charge becoming payable on dual approval.
const InitialPaymentNumber = 0

// Table: installments. Many per enrolled client; installment_number is
// unique per client across all charge types.
type Installment struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	InstallmentID string `gorm:"column:installment_id;type:char(32);not null;uniqueIndex:ux_installments_installment_id_active"`
	// FK to enrolled_clients.id (numeric)
	EnrolledClientID  uint64     `gorm:"column:enrolled_client_id;not null;index;uniqueIndex:ux_installments_client_number"`
	ChargeType        ChargeType `gorm:"column:charge_type;type:enum('enrollment_charge','offer_letter_charge','first_year_charge');not null"`
	InstallmentNumber int        `gorm:"column:installment_number;not null;uniqueIndex:ux_installments_client_number"`

	Amount    float64    `gorm:"column:amount;type:decimal(18,2);not null"`
	NetAmount float64    `gorm:"column:net_amount;type:decimal(18,2);not null"`
	DueDate   *time.Time `gorm:"column:due_date;type:date"`
	Remark    string     `gorm:"column:remark;type:text"`

	// Admin-proposed shadow values, consumed by the sales acceptance
	// fan-out.
	EditedAmount   float64    `gorm:"column:edited_amount;type:decimal(18,2)"`
	EditedDueDate  *time.Time `gorm:"column:edited_due_date;type:date"`
	EditedRemark   string     `gorm:"column:edited_remark;type:text"`
	HasAdminUpdate bool       `gorm:"column:has_admin_update;not null;default:false"`
	SalesApproval  bool       `gorm:"column:sales_approval;not null;default:false"`

	IsInitialPayment bool       `gorm:"column:is_initial_payment;not null;default:false"`
	Paid             bool       `gorm:"column:paid;not null;default:false"`
	PaidDate         *time.Time `gorm:"column:paid_date"`

	CreatedBy string `gorm:"column:created_by;type:char(32);not null"`
	UpdatedBy string `gorm:"column:updated_by;type:char(32)"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Installment) TableName() string { return "installments" }

// SnapshotEdits aligns the edited shadows with the current canonical
// values and closes any open admin proposal. Called for every installment
// when the admin approves a phase.
func (i *Installment) SnapshotEdits() {
	i.EditedAmount = i.Amount
	i.EditedDueDate = i.DueDate
	i.EditedRemark = i.Remark
	i.HasAdminUpdate = false
}

// NeedsSalesAcceptance reports whether this row carries an admin proposal
// sales has not yet replied to.
func (i *Installment) NeedsSalesAcceptance() bool {
	return i.HasAdminUpdate && !i.SalesApproval
}

// AcceptAdminEdits promotes the admin's proposed values into the canonical
// fields. NetAmount tracks the accepted amount; absent due date or remark
// proposals leave the canonical value alone. The shadow values are
// retained, only the pending flag is cleared.
func (i *Installment) AcceptAdminEdits() {
	i.Amount = i.EditedAmount
	i.NetAmount = i.EditedAmount
	if i.EditedDueDate != nil {
		i.DueDate = i.EditedDueDate
	}
	if i.EditedRemark != "" {
		i.Remark = i.EditedRemark
	}
	i.SalesApproval = true
	i.HasAdminUpdate = false
}

// MarkPaid records payment at the given time. Idempotent.
func (i *Installment) MarkPaid(at time.Time) {
	i.Paid = true
	paidAt := at.UTC()
	i.PaidDate = &paidAt
}
