package model

import (
	"time"

	"github.com/google/uuid"
)

// Service request statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ServiceRequestModel is a public enquiry from the website contact form.
// It is not tied to a client account.
type ServiceRequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientName  string    `gorm:"size:150;not null" json:"clientName"`
	PhoneNumber string    `gorm:"size:30;not null" json:"phoneNumber"`
	ServiceName string    `gorm:"size:150;not null" json:"serviceName"`
	Message     string    `gorm:"type:text" json:"message"`
	Status      string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ServiceRequestModel) TableName() string {
	return "service_requests"
}
