package lead

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("lead not found")

type Status string

const (
	StatusOpen     Status = "open"
	StatusAssigned Status = "assigned"
	StatusEnrolled Status = "enrolled"
	StatusClosed   Status = "closed"
)

// Lead is the originating intake record. The enrollment workflow only
// reads it, for identity and contact fields at enrolled-client creation
// and portal provisioning time; intake CRUD lives elsewhere.
type Lead struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	LeadID string `gorm:"column:lead_id;type:char(32);not null;uniqueIndex:ux_leads_lead_id_active"`

	Name   string `gorm:"column:name;size:191;not null"`
	Email  string `gorm:"column:email;size:191;not null"`
	Phone  string `gorm:"column:phone;size:32"`
	Status Status `gorm:"column:status;type:enum('open','assigned','enrolled','closed');default:'open'"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Lead) TableName() string { return "leads" }
