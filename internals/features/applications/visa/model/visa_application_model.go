package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VisaApplicationModel is the workflow record for a visa case. client_name and
// the handler name columns are snapshots taken at write time so the record
// stays readable after the referenced account changes or disappears.
type VisaApplicationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"clientId"`
	ClientName string    `gorm:"size:150;not null" json:"clientName"`

	Type    string `gorm:"size:50;not null" json:"type"`
	Country string `gorm:"size:100;not null" json:"country"`

	DocumentStatus       string `gorm:"size:50;default:'Not Yet'" json:"documentStatus"`
	DocumentsToTranslate int    `gorm:"default:0" json:"documentsToTranslate"`
	TranslationStatus    string `gorm:"size:50;default:'Under Process'" json:"translationStatus"`
	VisaStatus           string `gorm:"size:50;default:'Under Review'" json:"visaStatus"`

	VisaApplicationFee int64  `gorm:"not null;default:0" json:"visaApplicationFee"`
	TranslationFee     int64  `gorm:"not null;default:0" json:"translationFee"`
	PaidAmount         int64  `gorm:"not null;default:0" json:"paidAmount"`
	Discount           int64  `gorm:"not null;default:0" json:"discount"`
	DueAmount          int64  `gorm:"not null;default:0" json:"dueAmount"`
	PaymentStatus      string `gorm:"size:10;not null;default:'Due'" json:"paymentStatus"`

	HandledBy            string     `gorm:"size:150" json:"handledBy"`
	HandledByID          uuid.UUID  `gorm:"type:uuid" json:"handledById"`
	TranslationHandler   string     `gorm:"size:150" json:"translationHandler"`
	TranslationHandlerID *uuid.UUID `gorm:"type:uuid" json:"translationHandlerId,omitempty"`

	Deadline       *time.Time     `json:"deadline,omitempty"`
	SubmissionDate time.Time      `gorm:"not null" json:"submissionDate"`
	Notes          string         `gorm:"type:text" json:"notes"`
	Todos          datatypes.JSON `gorm:"type:jsonb" json:"todos,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (VisaApplicationModel) TableName() string {
	return "visa_applications"
}
