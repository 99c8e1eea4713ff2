package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EpassportModel tracks an e-passport application. ghumti_service marks a
// doorstep pickup, which needs the target prefecture.
type EpassportModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"clientId"`
	ClientName string    `gorm:"size:150;not null" json:"clientName"`

	ApplicationType string `gorm:"size:100;not null" json:"applicationType"`
	GhumtiService   bool   `gorm:"not null;default:false" json:"ghumtiService"`
	Prefecture      string `gorm:"size:100" json:"prefecture"`

	Amount        int64  `gorm:"not null;default:0" json:"amount"`
	PaidAmount    int64  `gorm:"not null;default:0" json:"paidAmount"`
	Discount      int64  `gorm:"not null;default:0" json:"discount"`
	DueAmount     int64  `gorm:"not null;default:0" json:"dueAmount"`
	PaymentStatus string `gorm:"size:10;not null;default:'Due'" json:"paymentStatus"`

	HandledBy   string    `gorm:"size:150" json:"handledBy"`
	HandledByID uuid.UUID `gorm:"type:uuid" json:"handledById"`

	Deadline       *time.Time     `json:"deadline,omitempty"`
	SubmissionDate time.Time      `gorm:"not null" json:"submissionDate"`
	Notes          string         `gorm:"type:text" json:"notes"`
	Todos          datatypes.JSON `gorm:"type:jsonb" json:"todos,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (EpassportModel) TableName() string {
	return "epassport_applications"
}
