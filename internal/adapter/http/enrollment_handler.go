package http

import (
	"net/http"

	"talenthire-backend/internal/domain/client"
	"talenthire-backend/internal/usecase/enrollment"

	"github.com/labstack/echo/v4"
)

type EnrollmentHandler struct{ uc *enrollment.Usecase }

func NewEnrollmentHandler(uc *enrollment.Usecase) *EnrollmentHandler {
	return &EnrollmentHandler{uc: uc}
}

type createEnrolledClientReq struct {
	LeadID        string `json:"lead_id"         validate:"required,hex32"`
	SalesPersonID string `json:"sales_person_id" validate:"required,hex32"`
	ActorID       string `json:"actor_id"        validate:"required,hex32"`
}

func (h *EnrollmentHandler) CreateEnrolledClient(c echo.Context) error {
	var req createEnrolledClientReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.CreateEnrolledClient(c.Request().Context(), enrollment.CreateEnrolledClientInput{
		LeadID:        req.LeadID,
		SalesPersonID: req.SalesPersonID,
		ActorID:       req.ActorID,
	})
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, http.StatusCreated, "enrolled client created", dto)
}

func (h *EnrollmentHandler) GetEnrolledClient(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("client_id"))
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, http.StatusOK, "enrolled client", dto)
}

func (h *EnrollmentHandler) ListPendingAdminReview(c echo.Context) error {
	dtos, err := h.uc.ListPendingAdminReview(c.Request().Context())
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, http.StatusOK, "pending admin review", dtos)
}

func (h *EnrollmentHandler) ListPendingSalesReview(c echo.Context) error {
	dtos, err := h.uc.ListPendingSalesReview(c.Request().Context())
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, http.StatusOK, "pending sales review", dtos)
}

type salesUpdateReq struct {
	SalesPersonID        string   `json:"sales_person_id"         validate:"required,hex32"`
	EnrollmentCharge     float64  `json:"enrollment_charge"       validate:"gte=0,dec2"`
	OfferLetterCharge    float64  `json:"offer_letter_charge"     validate:"gte=0,dec2"`
	FirstYearPercentage  *float64 `json:"first_year_percentage"   validate:"omitempty,gte=0,lte=100"`
	FirstYearFixedCharge *float64 `json:"first_year_fixed_charge" validate:"omitempty,gte=0,dec2"`
	FirstYearSalary      float64  `json:"first_year_salary"       validate:"gte=0,dec2"`
}

// POST /enrolled-clients/:client_id/sales-update → SubmitConfiguration
func (h *EnrollmentHandler) SalesUpdate(c echo.Context) error {
	var req salesUpdateReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.SubmitConfiguration(c.Request().Context(), enrollment.SubmitConfigurationInput{
		ClientID: c.Param("client_id"),
		ActorID:  req.SalesPersonID,
		Charges: client.ChargeConfiguration{
			EnrollmentCharge:     req.EnrollmentCharge,
			OfferLetterCharge:    req.OfferLetterCharge,
			FirstYearPercentage:  req.FirstYearPercentage,
			FirstYearFixedCharge: req.FirstYearFixedCharge,
			FirstYearSalary:      req.FirstYearSalary,
		},
	})
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, http.StatusOK, "configuration submitted", dto)
}

type proposedEditsReq struct {
	EnrollmentCharge     *float64 `json:"enrollment_charge"       validate:"omitempty,gte=0,dec2"`
	OfferLetterCharge    *float64 `json:"offer_letter_charge"     validate:"omitempty,gte=0,dec2"`
	FirstYearPercentage  *float64 `json:"first_year_percentage"   validate:"omitempty,gte=0,lte=100"`
	FirstYearFixedCharge *float64 `json:"first_year_fixed_charge" validate:"omitempty,gte=0,dec2"`
	NetFirstYearPrice    *float64 `json:"net_first_year_price"    validate:"omitempty,gte=0,dec2"`
	FirstYearSalary      *float64 `json:"first_year_salary"       validate:"omitempty,gte=0,dec2"`
}

func (r proposedEditsReq) toDomain() client.ProposedEdits {
	return client.ProposedEdits{
		EnrollmentCharge:     r.EnrollmentCharge,
		OfferLetterCharge:    r.OfferLetterCharge,
		FirstYearPercentage:  r.FirstYearPercentage,
		FirstYearFixedCharge: r.FirstYearFixedCharge,
		NetFirstYearPrice:    r.NetFirstYearPrice,
		FirstYearSalary:      r.FirstYearSalary,
	}
}

type adminApprovalReq struct {
	AdminID  string           `json:"admin_id" validate:"required,hex32"`
	Approved *bool            `json:"approved" validate:"required"`
	Edits    proposedEditsReq `json:"edits"`
}

// POST /enrolled-clients/:client_id/admin-approval — branches on approved
func (h *EnrollmentHandler) AdminApproval(c echo.Context) error {
	var req adminApprovalReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.AdminReview(c.Request().Context(), enrollment.AdminReviewInput{
		ClientID: c.Param("client_id"),
		AdminID:  req.AdminID,
		Approved: *req.Approved,
		Edits:    req.Edits.toDomain(),
	})
	if err != nil {
		return failDomain(c, err)
	}
	if *req.Approved {
		return ok(c, http.StatusOK, "configuration approved by admin", dto)
	}
	return ok(c, http.StatusOK, "admin changes recorded, awaiting sales review", dto)
}

type salesApprovalReq struct {
	SalesPersonID string `json:"sales_person_id" validate:"required,hex32"`
	Approved      *bool  `json:"approved"        validate:"required"`
}

// POST /enrolled-clients/:client_id/sales-approval — branches on approved
func (h *EnrollmentHandler) SalesApproval(c echo.Context) error {
	var req salesApprovalReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.SalesReview(c.Request().Context(), enrollment.SalesReviewInput{
		ClientID:      c.Param("client_id"),
		SalesPersonID: req.SalesPersonID,
		Approved:      *req.Approved,
	})
	if err != nil {
		return failDomain(c, err)
	}
	if *req.Approved {
		return ok(c, http.StatusOK, "admin changes accepted", dto)
	}
	return ok(c, http.StatusOK, "admin changes rejected", dto)
}

type finalConfigurationReq struct {
	SalesPersonID        string   `json:"sales_person_id"         validate:"required,hex32"`
	OfferLetterCharge    float64  `json:"offer_letter_charge"     validate:"gte=0,dec2"`
	FirstYearPercentage  *float64 `json:"first_year_percentage"   validate:"omitempty,gte=0,lte=100"`
	FirstYearFixedCharge *float64 `json:"first_year_fixed_charge" validate:"omitempty,gte=0,dec2"`
	FirstYearSalary      float64  `json:"first_year_salary"       validate:"gte=0,dec2"`
}

// POST /enrolled-clients/:client_id/final-configuration
func (h *EnrollmentHandler) FinalConfiguration(c echo.Context) error {
	var req finalConfigurationReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.UpdateFinalConfiguration(c.Request().Context(), enrollment.FinalConfigurationInput{
		ClientID:             c.Param("client_id"),
		ActorID:              req.SalesPersonID,
		OfferLetterCharge:    req.OfferLetterCharge,
		FirstYearPercentage:  req.FirstYearPercentage,
		FirstYearFixedCharge: req.FirstYearFixedCharge,
		FirstYearSalary:      req.FirstYearSalary,
	})
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, http.StatusOK, "final configuration submitted", dto)
}

// POST /enrolled-clients/:client_id/final-approval — Phase-2 admin branch
func (h *EnrollmentHandler) FinalApproval(c echo.Context) error {
	var req adminApprovalReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.AdminFinalReview(c.Request().Context(), enrollment.AdminReviewInput{
		ClientID: c.Param("client_id"),
		AdminID:  req.AdminID,
		Approved: *req.Approved,
		Edits:    req.Edits.toDomain(),
	})
	if err != nil {
		return failDomain(c, err)
	}
	if *req.Approved {
		return ok(c, http.StatusOK, "final configuration approved by admin", dto)
	}
	return ok(c, http.StatusOK, "admin changes recorded, awaiting sales review", dto)
}

// POST /enrolled-clients/:client_id/accept-admin-changes — Phase-2 sales branch
func (h *EnrollmentHandler) AcceptAdminChanges(c echo.Context) error {
	var req salesApprovalReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.SalesFinalReview(c.Request().Context(), enrollment.SalesReviewInput{
		ClientID:      c.Param("client_id"),
		SalesPersonID: req.SalesPersonID,
		Approved:      *req.Approved,
	})
	if err != nil {
		return failDomain(c, err)
	}
	if *req.Approved {
		return ok(c, http.StatusOK, "admin final changes accepted", dto)
	}
	return ok(c, http.StatusOK, "admin final changes rejected", dto)
}

type offerLetterChargeReq struct {
	SalesPersonID string  `json:"sales_person_id" validate:"required,hex32"`
	Amount        float64 `json:"amount"          validate:"gte=0,dec2"`
}

// POST /enrolled-clients/:client_id/offer-letter-charge
func (h *EnrollmentHandler) OfferLetterCharge(c echo.Context) error {
	var req offerLetterChargeReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.UpdateOfferLetterCharge(c.Request().Context(), enrollment.OfferLetterChargeInput{
		ClientID: c.Param("client_id"),
		ActorID:  req.SalesPersonID,
		Amount:   req.Amount,
	})
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, http.StatusOK, "offer-letter charge submitted", dto)
}

type firstYearChargeReq struct {
	SalesPersonID        string   `json:"sales_person_id"         validate:"required,hex32"`
	FirstYearPercentage  *float64 `json:"first_year_percentage"   validate:"omitempty,gte=0,lte=100"`
	FirstYearFixedCharge *float64 `json:"first_year_fixed_charge" validate:"omitempty,gte=0,dec2"`
	FirstYearSalary      float64  `json:"first_year_salary"       validate:"gte=0,dec2"`
}

// POST /enrolled-clients/:client_id/first-year-charge
func (h *EnrollmentHandler) FirstYearCharge(c echo.Context) error {
	var req firstYearChargeReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.UpdateFirstYearCharge(c.Request().Context(), enrollment.FirstYearChargeInput{
		ClientID:             c.Param("client_id"),
		ActorID:              req.SalesPersonID,
		FirstYearPercentage:  req.FirstYearPercentage,
		FirstYearFixedCharge: req.FirstYearFixedCharge,
		FirstYearSalary:      req.FirstYearSalary,
	})
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, http.StatusOK, "first-year charge submitted", dto)
}
