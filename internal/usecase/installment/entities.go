package installment

import (
	"time"

	instDomain "talenthire-backend/internal/domain/installment"
)

type CreateInstallmentInput struct {
	ClientID          string
	ActorID           string
	ChargeType        instDomain.ChargeType
	Amount            float64
	DueDate           *time.Time
	Remark            string
	InstallmentNumber *int
	IsInitialPayment  bool
}

type UpdateInstallmentInput struct {
	InstallmentID     string
	ActorID           string
	Amount            *float64
	DueDate           *time.Time
	Remark            *string
	InstallmentNumber *int
}

// AdminEditInput is a per-installment admin counter-proposal; it feeds the
// sales acceptance fan-out. Nil fields keep the previous edited value.
type AdminEditInput struct {
	InstallmentID string
	AdminID       string
	Amount        *float64
	DueDate       *time.Time
	Remark        *string
}

type InstallmentDTO struct {
	InstallmentID     string                `json:"installment_id"`
	ClientID          string                `json:"client_id"`
	ChargeType        instDomain.ChargeType `json:"charge_type"`
	InstallmentNumber int                   `json:"installment_number"`
	Amount            float64               `json:"amount"`
	NetAmount         float64               `json:"net_amount"`
	DueDate           *time.Time            `json:"due_date,omitempty"`
	Remark            string                `json:"remark,omitempty"`
	EditedAmount      float64               `json:"edited_amount"`
	EditedDueDate     *time.Time            `json:"edited_due_date,omitempty"`
	EditedRemark      string                `json:"edited_remark,omitempty"`
	HasAdminUpdate    bool                  `json:"has_admin_update"`
	SalesApproval     bool                  `json:"sales_approval"`
	IsInitialPayment  bool                  `json:"is_initial_payment"`
	Paid              bool                  `json:"paid"`
	PaidDate          *time.Time            `json:"paid_date,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
}

// CreateInstallmentDTO adds the advisory remaining-amount figures so the
// caller knows whether the charge is fully decomposed.
type CreateInstallmentDTO struct {
	Installment           InstallmentDTO `json:"installment"`
	RemainingAmount       float64        `json:"remaining_amount"`
	NeedsMoreInstallments bool           `json:"needs_more_installments"`
}

func toDTO(clientID string, i *instDomain.Installment) InstallmentDTO {
	return InstallmentDTO{
		InstallmentID:     i.InstallmentID,
		ClientID:          clientID,
		ChargeType:        i.ChargeType,
		InstallmentNumber: i.InstallmentNumber,
		Amount:            i.Amount,
		NetAmount:         i.NetAmount,
		DueDate:           i.DueDate,
		Remark:            i.Remark,
		EditedAmount:      i.EditedAmount,
		EditedDueDate:     i.EditedDueDate,
		EditedRemark:      i.EditedRemark,
		HasAdminUpdate:    i.HasAdminUpdate,
		SalesApproval:     i.SalesApproval,
		IsInitialPayment:  i.IsInitialPayment,
		Paid:              i.Paid,
		PaidDate:          i.PaidDate,
		CreatedAt:         i.CreatedAt,
	}
}
