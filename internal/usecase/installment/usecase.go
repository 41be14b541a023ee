package installment

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	clientDomain "talenthire-backend/internal/domain/client"
	instDomain "talenthire-backend/internal/domain/installment"
	"talenthire-backend/internal/domain/uow"
	"talenthire-backend/pkg/id"
)

// Usecase owns the installment ledger: decomposition of the payable
// charges into numbered payment rows under the remaining-amount bound.
// Creation and mutation run inside the client-locked transaction so the
// bound is checked against current persisted state.
type Usecase struct {
	clientRepo clientDomain.Repository
	instRepo   instDomain.Repository
	uow        uow.UnitOfWork
}

func NewUsecase(clients clientDomain.Repository, installments instDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{clientRepo: clients, instRepo: installments, uow: tx}
}

// payableFor maps a charge type to the client's canonical payable figure.
// The first-year column is the derived net price, not the raw percentage.
func payableFor(c *clientDomain.EnrolledClient, t instDomain.ChargeType) float64 {
	switch t {
	case instDomain.ChargeEnrollment:
		return c.PayableEnrollmentCharge
	case instDomain.ChargeOfferLetter:
		return c.PayableOfferLetterCharge
	case instDomain.ChargeFirstYear:
		return c.NetPayableFirstYearPrice
	}
	return 0
}

// Create adds an installment. Non-initial rows must fit the remaining
// chargeable amount for their charge type; initial-payment rows bypass
// that check since they are manufactured placeholders. Numbers are unique
// per client across charge types; an omitted number gets max(existing)+1.
func (u *Usecase) Create(ctx context.Context, in CreateInstallmentInput) (*CreateInstallmentDTO, error) {
	if !in.ChargeType.Valid() {
		return nil, instDomain.ErrInvalidChargeType
	}
	if in.Amount <= 0 {
		return nil, &clientDomain.ValidationError{Field: "amount", Reason: "must be positive"}
	}

	var dto *CreateInstallmentDTO
	err := u.uow.WithinClientTx(ctx, in.ClientID, func(r uow.Repos, c *clientDomain.EnrolledClient) error {
		rows, err := r.Installments.ListByClient(ctx, c.ID)
		if err != nil {
			return err
		}

		remaining := instDomain.Remaining(payableFor(c, in.ChargeType), rows, in.ChargeType)
		remainingF, _ := remaining.Float64()

		if !in.IsInitialPayment && remaining.LessThan(decimal.NewFromFloat(in.Amount)) {
			return &instDomain.AmountExceedsRemainingError{
				ChargeType: in.ChargeType,
				Requested:  in.Amount,
				Remaining:  remainingF,
			}
		}

		number := instDomain.NextNumber(rows)
		if in.InstallmentNumber != nil {
			number = *in.InstallmentNumber
			if instDomain.NumberTaken(rows, number) {
				return &instDomain.DuplicateInstallmentNumberError{Number: number, Remaining: remainingF}
			}
		}

		row := &instDomain.Installment{
			InstallmentID:     id.NewID32(),
			EnrolledClientID:  c.ID,
			ChargeType:        in.ChargeType,
			InstallmentNumber: number,
			Amount:            in.Amount,
			NetAmount:         in.Amount,
			DueDate:           in.DueDate,
			Remark:            in.Remark,
			IsInitialPayment:  in.IsInitialPayment,
			CreatedBy:         in.ActorID,
		}
		if err := r.Installments.Create(ctx, row); err != nil {
			return err
		}

		remainingAfter := remaining
		if !in.IsInitialPayment {
			remainingAfter = remaining.Sub(decimal.NewFromFloat(in.Amount))
		}
		after, _ := remainingAfter.Float64()
		dto = &CreateInstallmentDTO{
			Installment:           toDTO(c.ClientID, row),
			RemainingAmount:       after,
			NeedsMoreInstallments: remainingAfter.IsPositive(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Update mutates canonical fields directly. The only cross-record rule
// re-checked is number uniqueness when the number changes.
func (u *Usecase) Update(ctx context.Context, in UpdateInstallmentInput) (*InstallmentDTO, error) {
	var dto *InstallmentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		row, err := r.Installments.GetByInstallmentID(ctx, in.InstallmentID)
		if err != nil {
			return err
		}

		if in.InstallmentNumber != nil && *in.InstallmentNumber != row.InstallmentNumber {
			rows, err := r.Installments.ListByClient(ctx, row.EnrolledClientID)
			if err != nil {
				return err
			}
			if instDomain.NumberTaken(rows, *in.InstallmentNumber) {
				return &instDomain.DuplicateInstallmentNumberError{Number: *in.InstallmentNumber}
			}
			row.InstallmentNumber = *in.InstallmentNumber
		}
		if in.Amount != nil {
			row.Amount = *in.Amount
			row.NetAmount = *in.Amount
		}
		if in.DueDate != nil {
			row.DueDate = in.DueDate
		}
		if in.Remark != nil {
			row.Remark = *in.Remark
		}
		row.UpdatedBy = in.ActorID

		if err := r.Installments.Save(ctx, row); err != nil {
			return err
		}
		d := toDTO("", row)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Delete(ctx context.Context, installmentID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		row, err := r.Installments.GetByInstallmentID(ctx, installmentID)
		if err != nil {
			return err
		}
		return r.Installments.Delete(ctx, row)
	})
}

// ProposeAdminEdit records an admin counter-proposal on one installment.
// The row then waits for the bulk sales acceptance; a fresh proposal
// reopens a previously accepted one.
func (u *Usecase) ProposeAdminEdit(ctx context.Context, in AdminEditInput) (*InstallmentDTO, error) {
	var dto *InstallmentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		row, err := r.Installments.GetByInstallmentID(ctx, in.InstallmentID)
		if err != nil {
			return err
		}
		if in.Amount != nil {
			row.EditedAmount = *in.Amount
		}
		if in.DueDate != nil {
			row.EditedDueDate = in.DueDate
		}
		if in.Remark != nil {
			row.EditedRemark = *in.Remark
		}
		row.HasAdminUpdate = true
		row.SalesApproval = false
		row.UpdatedBy = in.AdminID

		if err := r.Installments.Save(ctx, row); err != nil {
			return err
		}
		d := toDTO("", row)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// List returns a client's installments, optionally filtered by charge
// type. Plain read, no transactional consistency needed.
func (u *Usecase) List(ctx context.Context, clientID string, t *instDomain.ChargeType) ([]InstallmentDTO, error) {
	if t != nil && !t.Valid() {
		return nil, instDomain.ErrInvalidChargeType
	}
	c, err := u.clientRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	var rows []instDomain.Installment
	if t != nil {
		rows, err = u.instRepo.ListByClientAndType(ctx, c.ID, *t)
	} else {
		rows, err = u.instRepo.ListByClient(ctx, c.ID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]InstallmentDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(c.ClientID, &rows[i]))
	}
	return out, nil
}

// MarkInitialPaymentPaid flags the reserved number-0 initial row for a
// charge type as paid now. No-op when the row does not exist.
func (u *Usecase) MarkInitialPaymentPaid(ctx context.Context, clientID string, t instDomain.ChargeType) error {
	if !t.Valid() {
		return instDomain.ErrInvalidChargeType
	}
	return u.uow.WithinClientTx(ctx, clientID, func(r uow.Repos, c *clientDomain.EnrolledClient) error {
		init, err := r.Installments.GetInitialPayment(ctx, c.ID, t)
		if err != nil {
			if errors.Is(err, instDomain.ErrNotFound) {
				return nil
			}
			return err
		}
		init.MarkPaid(time.Now())
		return r.Installments.Save(ctx, init)
	})
}
