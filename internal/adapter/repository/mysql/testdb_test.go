package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type enrolledClientSQLite struct {
	ID       uint64 `gorm:"primaryKey;column:id"`
	ClientID string `gorm:"size:32;column:client_id;uniqueIndex"`
	LeadID   string `gorm:"size:32;column:lead_id;uniqueIndex"`

	PayableEnrollmentCharge     float64 `gorm:"column:payable_enrollment_charge"`
	PayableOfferLetterCharge    float64 `gorm:"column:payable_offer_letter_charge"`
	PayableFirstYearPercentage  float64 `gorm:"column:payable_first_year_percentage"`
	PayableFirstYearFixedCharge float64 `gorm:"column:payable_first_year_fixed_charge"`
	NetPayableFirstYearPrice    float64 `gorm:"column:net_payable_first_year_price"`
	FirstYearSalary             float64 `gorm:"column:first_year_salary"`

	EditedEnrollmentCharge     float64 `gorm:"column:edited_enrollment_charge"`
	EditedOfferLetterCharge    float64 `gorm:"column:edited_offer_letter_charge"`
	EditedFirstYearPercentage  float64 `gorm:"column:edited_first_year_percentage"`
	EditedFirstYearFixedCharge float64 `gorm:"column:edited_first_year_fixed_charge"`
	EditedNetFirstYearPrice    float64 `gorm:"column:edited_net_first_year_price"`
	EditedFirstYearSalary      float64 `gorm:"column:edited_first_year_salary"`

	ApprovalBySales bool `gorm:"column:approval_by_sales"`
	ApprovalByAdmin bool `gorm:"column:approval_by_admin"`
	HasUpdate       bool `gorm:"column:has_update"`

	FinalApprovalSales   bool `gorm:"column:final_approval_sales"`
	FinalApprovalByAdmin bool `gorm:"column:final_approval_by_admin"`
	HasUpdateInFinal     bool `gorm:"column:has_update_in_final"`

	ClientUserCreated bool `gorm:"column:client_user_created"`

	SalesPersonID string `gorm:"size:32;column:sales_person_id"`
	AdminID       string `gorm:"size:32;column:admin_id"`
	CreatedBy     string `gorm:"size:32;column:created_by"`
	UpdatedBy     string `gorm:"size:32;column:updated_by"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy *string        `gorm:"column:deleted_by"`
}

func (enrolledClientSQLite) TableName() string { return "enrolled_clients" }

type installmentSQLite struct {
	ID                uint64     `gorm:"primaryKey;column:id"`
	InstallmentID     string     `gorm:"size:32;column:installment_id;uniqueIndex"`
	EnrolledClientID  uint64     `gorm:"column:enrolled_client_id;uniqueIndex:ux_installments_client_number"`
	ChargeType        string     `gorm:"type:text;column:charge_type"` // ← no enum
	InstallmentNumber int        `gorm:"column:installment_number;uniqueIndex:ux_installments_client_number"`
	Amount            float64    `gorm:"column:amount"`
	NetAmount         float64    `gorm:"column:net_amount"`
	DueDate           *time.Time `gorm:"column:due_date"`
	Remark            string     `gorm:"column:remark"`
	EditedAmount      float64    `gorm:"column:edited_amount"`
	EditedDueDate     *time.Time `gorm:"column:edited_due_date"`
	EditedRemark      string     `gorm:"column:edited_remark"`
	HasAdminUpdate    bool       `gorm:"column:has_admin_update"`
	SalesApproval     bool       `gorm:"column:sales_approval"`
	IsInitialPayment  bool       `gorm:"column:is_initial_payment"`
	Paid              bool       `gorm:"column:paid"`
	PaidDate          *time.Time `gorm:"column:paid_date"`
	CreatedBy         string     `gorm:"size:32;column:created_by"`
	UpdatedBy         string     `gorm:"size:32;column:updated_by"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (installmentSQLite) TableName() string { return "installments" }

type leadSQLite struct {
	ID     uint64 `gorm:"primaryKey;column:id"`
	LeadID string `gorm:"size:32;column:lead_id;uniqueIndex"`
	Name   string `gorm:"column:name"`
	Email  string `gorm:"column:email"`
	Phone  string `gorm:"column:phone"`
	Status string `gorm:"type:text;column:status"` // ← no enum

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (leadSQLite) TableName() string { return "leads" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&enrolledClientSQLite{}, &installmentSQLite{}, &leadSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
