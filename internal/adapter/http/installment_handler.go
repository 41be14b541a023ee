package http

import (
	"net/http"
	"time"

	instDomain "talenthire-backend/internal/domain/installment"
	"talenthire-backend/internal/usecase/installment"

	"github.com/labstack/echo/v4"
)

type InstallmentHandler struct{ uc *installment.Usecase }

func NewInstallmentHandler(uc *installment.Usecase) *InstallmentHandler {
	return &InstallmentHandler{uc: uc}
}

// Accept canonical date `YYYY-MM-DD` (aligns with schema DATE)
const dateLayout = "2006-01-02"

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}

type createInstallmentReq struct {
	EnrolledClientID  string  `json:"enrolled_client_id" validate:"required,hex32"`
	ActorID           string  `json:"actor_id"           validate:"required,hex32"`
	ChargeType        string  `json:"charge_type"        validate:"required,chargetype"`
	Amount            float64 `json:"amount"             validate:"required,gt=0,dec2"`
	DueDate           string  `json:"due_date"           validate:"omitempty,datetime=2006-01-02"`
	Remark            string  `json:"remark"`
	InstallmentNumber *int    `json:"installment_number" validate:"omitempty,gte=0"`
	IsInitialPayment  bool    `json:"is_initial_payment"`
}

// POST /installments
func (h *InstallmentHandler) CreateInstallment(c echo.Context) error {
	var req createInstallmentReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	due, err := parseDate(req.DueDate)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid due_date", nil)
	}
	dto, err := h.uc.Create(c.Request().Context(), installment.CreateInstallmentInput{
		ClientID:          req.EnrolledClientID,
		ActorID:           req.ActorID,
		ChargeType:        instDomain.ChargeType(req.ChargeType),
		Amount:            req.Amount,
		DueDate:           due,
		Remark:            req.Remark,
		InstallmentNumber: req.InstallmentNumber,
		IsInitialPayment:  req.IsInitialPayment,
	})
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, http.StatusCreated, "installment created", dto)
}

// GET /installments?enrolled_client_id=&charge_type=
func (h *InstallmentHandler) ListInstallments(c echo.Context) error {
	clientID := c.QueryParam("enrolled_client_id")
	if !reHex32.MatchString(clientID) {
		return fail(c, http.StatusBadRequest, "invalid enrolled_client_id", nil)
	}
	var chargeType *instDomain.ChargeType
	if raw := c.QueryParam("charge_type"); raw != "" {
		t := instDomain.ChargeType(raw)
		chargeType = &t
	}
	dtos, err := h.uc.List(c.Request().Context(), clientID, chargeType)
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, http.StatusOK, "installments", dtos)
}

type updateInstallmentReq struct {
	ActorID           string   `json:"actor_id"           validate:"required,hex32"`
	Amount            *float64 `json:"amount"             validate:"omitempty,gt=0,dec2"`
	DueDate           string   `json:"due_date"           validate:"omitempty,datetime=2006-01-02"`
	Remark            *string  `json:"remark"`
	InstallmentNumber *int     `json:"installment_number" validate:"omitempty,gte=0"`
}

// PUT /installments/:installment_id
func (h *InstallmentHandler) UpdateInstallment(c echo.Context) error {
	var req updateInstallmentReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	due, err := parseDate(req.DueDate)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid due_date", nil)
	}
	dto, err := h.uc.Update(c.Request().Context(), installment.UpdateInstallmentInput{
		InstallmentID:     c.Param("installment_id"),
		ActorID:           req.ActorID,
		Amount:            req.Amount,
		DueDate:           due,
		Remark:            req.Remark,
		InstallmentNumber: req.InstallmentNumber,
	})
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, http.StatusOK, "installment updated", dto)
}

// DELETE /installments/:installment_id
func (h *InstallmentHandler) DeleteInstallment(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("installment_id")); err != nil {
		return failDomain(c, err)
	}
	return ok(c, http.StatusOK, "installment deleted", nil)
}

type adminEditReq struct {
	AdminID string   `json:"admin_id" validate:"required,hex32"`
	Amount  *float64 `json:"amount"   validate:"omitempty,gt=0,dec2"`
	DueDate string   `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Remark  *string  `json:"remark"`
}

// POST /installments/:installment_id/admin-edit — per-installment admin
// counter-proposal, consumed by the bulk sales acceptance.
func (h *InstallmentHandler) ProposeAdminEdit(c echo.Context) error {
	var req adminEditReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	due, err := parseDate(req.DueDate)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid due_date", nil)
	}
	dto, err := h.uc.ProposeAdminEdit(c.Request().Context(), installment.AdminEditInput{
		InstallmentID: c.Param("installment_id"),
		AdminID:       req.AdminID,
		Amount:        req.Amount,
		DueDate:       due,
		Remark:        req.Remark,
	})
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, http.StatusOK, "installment edit recorded, awaiting sales review", dto)
}
