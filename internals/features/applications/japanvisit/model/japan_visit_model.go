package model

import (
	"time"

	"github.com/google/uuid"
)

// JapanVisitModel is a Japan visit support case. client_name and mobile_no are
// snapshots of the client record at submission time.
type JapanVisitModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"clientId"`
	ClientName string    `gorm:"size:150;not null" json:"clientName"`
	MobileNo   string    `gorm:"size:30" json:"mobileNo"`

	Package        string `gorm:"size:50;not null;default:'Standard Package'" json:"package"`
	NoOfApplicants int    `gorm:"not null;default:1" json:"noOfApplicants"`
	ReasonForVisit string `gorm:"size:50;not null;default:'General Visit'" json:"reasonForVisit"`
	OtherReason    string `gorm:"size:255" json:"otherReason,omitempty"`
	Status         string `gorm:"size:20;not null;default:'In Progress'" json:"status"`

	Amount         int64  `gorm:"not null;default:0" json:"amount"`
	PaidAmount     int64  `gorm:"not null;default:0" json:"paidAmount"`
	Discount       int64  `gorm:"not null;default:0" json:"discount"`
	DeliveryCharge int64  `gorm:"not null;default:0" json:"deliveryCharge"`
	DueAmount      int64  `gorm:"not null;default:0" json:"dueAmount"`
	PaymentStatus  string `gorm:"size:10;not null;default:'Due'" json:"paymentStatus"`
	PaymentMethod  string `gorm:"size:30" json:"paymentMethod,omitempty"`
	ModeOfDelivery string `gorm:"size:30;not null;default:'Office Pickup'" json:"modeOfDelivery"`

	HandledBy   string    `gorm:"size:150" json:"handledBy"`
	HandledByID uuid.UUID `gorm:"type:uuid" json:"handledById"`

	Date           *time.Time `json:"date,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	SubmissionDate time.Time  `gorm:"not null" json:"submissionDate"`
	Notes          string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (JapanVisitModel) TableName() string {
	return "japan_visit_applications"
}
